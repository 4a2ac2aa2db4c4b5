package multisplit

import "github.com/kdsplit/multisplit/geom"

// SizingInfo is the geometric cache every Item (Leaf or Container) owns:
// its parent-relative geometry, its size constraints, and the transient
// bookkeeping the engine needs to restore percentage splits and avoid
// accounting for items mid-insertion.
type SizingInfo struct {
	// Geometry is this item's rectangle, in coordinates relative to its
	// parent Container. Only the host boundary ever converts to root
	// coordinates.
	Geometry geom.Rect

	// MinSize and MaxSize are the cross-axis constraints a parent must
	// honor when laying this item out. For leaves, MinSize is always at
	// least the configured HardMinSize.
	MinSize geom.Size
	MaxSize geom.Size

	// IsBeingInserted is true for the short window between an item being
	// added to a container's children and that container finishing the
	// insertion's geometry bookkeeping. Items in this state are excluded
	// from visible-child accounting.
	IsBeingInserted bool

	// PercentageWithinParent is this item's share of its parent's usable
	// length, in (0,1]. It's 0 while hidden and is recomputed only by
	// Container.updateChildPercentages — never mid-operation — so that
	// consecutive resizes don't accumulate rounding drift.
	PercentageWithinParent float64
}

// Length returns the size's extent along o.
func (s SizingInfo) Length(o geom.Orientation) int { return s.Geometry.Length(o) }

// MinLength returns the minimum extent along o.
func (s SizingInfo) MinLength(o geom.Orientation) int { return s.MinSize.Length(o) }

// MaxLength returns the maximum extent along o.
func (s SizingInfo) MaxLength(o geom.Orientation) int { return s.MaxSize.Length(o) }

// AvailableLength returns how much slack this item has along o before
// hitting its minimum, never negative.
func (s SizingInfo) AvailableLength(o geom.Orientation) int {
	if a := s.Length(o) - s.MinLength(o); a > 0 {
		return a
	}
	return 0
}

// MissingLength returns how far this item's current length along o falls
// short of its minimum, never negative.
func (s SizingInfo) MissingLength(o geom.Orientation) int {
	if m := s.MinLength(o) - s.Length(o); m > 0 {
		return m
	}
	return 0
}

// MissingSize returns the per-axis shortfall between MinSize and the
// current Geometry size, never negative on either axis.
func (s SizingInfo) MissingSize() geom.Size {
	return geom.Size{
		W: max(s.MinSize.W-s.Geometry.Size.W, 0),
		H: max(s.MinSize.H-s.Geometry.Size.H, 0),
	}
}

// SetLength returns a copy of s with its geometry's extent along o
// replaced, position unchanged.
func (s SizingInfo) SetLength(length int, o geom.Orientation) SizingInfo {
	s.Geometry.Size = s.Geometry.Size.SetLength(length, o)
	return s
}

// lengthOnSide computes the combined length/minLength of the sizing
// infos in [start, end] (inclusive), used by splitGrowth and the
// drop-rect computation to figure out how much slack lies on one side
// of an index.
func lengthOnSide(sizes []SizingInfo, start, end int, o geom.Orientation) geom.LengthOnSide {
	if start < 0 || start >= len(sizes) || end < start {
		return geom.LengthOnSide{}
	}
	if end >= len(sizes) {
		end = len(sizes) - 1
	}
	var result geom.LengthOnSide
	for i := start; i <= end; i++ {
		result.Length += sizes[i].Length(o)
		result.MinLength += sizes[i].MinLength(o)
	}
	return result
}
