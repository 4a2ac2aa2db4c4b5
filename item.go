package multisplit

import "github.com/kdsplit/multisplit/geom"

// Item is any node in a layout tree: a [Leaf] holding at most one guest,
// or a [Container] holding an ordered list of children. Most callers
// work through [Root], [Leaf], and [Container] directly; Item exists so
// a Container can hold its children generically regardless of whether
// each one is itself a leaf or a nested container.
type Item interface {
	// Parent returns the container this item is a child of, or nil for
	// the root container.
	Parent() *Container

	// IsContainer reports whether this item is a Container. AsContainer
	// and AsLeaf are the corresponding type-safe downcasts; exactly one
	// of them returns non-nil for any Item.
	IsContainer() bool
	AsContainer() *Container
	AsLeaf() *Leaf

	// ObjectName is a short diagnostic identifier, unique only by
	// convention, used in log messages and dumpLayout output.
	ObjectName() string

	// IsVisible reports whether this item currently occupies space in
	// its parent's layout. A Leaf is invisible until a guest is first
	// attached and while it is a placeholder (DetachGuest alone does not
	// hide it); a Container is invisible when none of its
	// children are visible.
	IsVisible() bool

	// MinSize and MaxSize are this item's aggregate size constraints,
	// already including the hard floor from the owning Root's Config.
	MinSize() geom.Size
	MaxSize() geom.Size

	// setGeometry installs a new parent-relative rectangle, propagating
	// to descendants for a Container.
	setGeometry(r geom.Rect)

	sizing() *SizingInfo
	setParent(c *Container)
	rootTree() *Root
	setRootTree(r *Root)
	setVisible(v bool)

	checkSanity() []string
	dumpLayout(indent int) string
}

// itemBase holds the fields and behavior shared by Leaf and Container:
// tree position, cached geometry, visibility, and diagnostic naming.
type itemBase struct {
	parent *Container
	root   *Root

	info SizingInfo

	visible    bool
	objectName string
}

func (b *itemBase) Parent() *Container         { return b.parent }
func (b *itemBase) setParent(c *Container)     { b.parent = c }
func (b *itemBase) rootTree() *Root            { return b.root }
func (b *itemBase) setRootTree(r *Root)        { b.root = r }
func (b *itemBase) sizing() *SizingInfo        { return &b.info }
func (b *itemBase) IsVisible() bool            { return b.visible }
func (b *itemBase) setVisible(v bool)          { b.visible = v }
func (b *itemBase) ObjectName() string         { return b.objectName }

// config returns the owning Root's Config, or the package default if
// this item hasn't been parented into a Root yet (used by newly
// constructed Leaf/Container values before insertion).
func (b *itemBase) config() *Config {
	if b.root != nil {
		return b.root.config
	}
	return defaultConfig()
}

// hardMinSize returns the absolute floor every leaf's MinSize is
// clamped above, per the owning tree's Config.
func (b *itemBase) hardMinSize() geom.Size {
	return b.config().HardMinSize
}
