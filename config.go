package multisplit

import "github.com/kdsplit/multisplit/geom"

// Config holds the tunables shared by every Item in one layout tree. It
// is created by NewRoot and propagated to descendants as they're
// parented.
type Config struct {
	// SeparatorThickness is the fixed gap, in host-surface units,
	// between sibling visible children along a container's orientation.
	SeparatorThickness int

	// HardMinSize is the absolute floor for any leaf's minimum size,
	// regardless of what a guest reports.
	HardMinSize geom.Size
}

func defaultConfig() *Config {
	return &Config{
		SeparatorThickness: 5,
		HardMinSize:        geom.Size{W: 50, H: 50},
	}
}

// RootOption configures a Root at construction time.
type RootOption func(*Config) error

// WithSeparatorThickness overrides the default 5-unit gap between
// sibling visible children. Must be non-negative.
func WithSeparatorThickness(n int) RootOption {
	return func(c *Config) error {
		if n < 0 {
			return ErrInvalidConfig
		}
		c.SeparatorThickness = n
		return nil
	}
}

// WithHardMinSize overrides the absolute floor applied to every leaf's
// minimum size, regardless of what its guest reports.
func WithHardMinSize(s geom.Size) RootOption {
	return func(c *Config) error {
		c.HardMinSize = s
		return nil
	}
}
