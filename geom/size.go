package geom

// Size is an integer width/height pair.
type Size struct {
	W, H int
}

// NewSize creates a Size with the given width and height.
func NewSize(w, h int) Size {
	return Size{W: w, H: h}
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.W == 0 && s.H == 0
}

// Add returns the component-wise sum of s and other.
func (s Size) Add(other Size) Size {
	return Size{W: s.W + other.W, H: s.H + other.H}
}

// Sub returns the component-wise difference of s and other, not clamped.
func (s Size) Sub(other Size) Size {
	return Size{W: s.W - other.W, H: s.H - other.H}
}

// ExpandedTo returns a Size whose dimensions are at least those of other.
func (s Size) ExpandedTo(other Size) Size {
	return Size{W: max(s.W, other.W), H: max(s.H, other.H)}
}

// BoundedBy clamps each dimension of s to be no less than min and no
// greater than max. If a max dimension is smaller than the corresponding
// min dimension, min wins, matching CSS min/max-size resolution.
func (s Size) BoundedBy(min, max Size) Size {
	return Size{W: clampDim(s.W, min.W, max.W), H: clampDim(s.H, min.H, max.H)}
}

func clampDim(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return max(hi, lo)
	}
	return v
}

// Length returns the component of s along o: W for Horizontal, H for Vertical.
func (s Size) Length(o Orientation) int {
	if o == Horizontal {
		return s.W
	}
	return s.H
}

// SetLength returns a copy of s with its component along o replaced by length.
func (s Size) SetLength(length int, o Orientation) Size {
	if o == Horizontal {
		s.W = length
	} else {
		s.H = length
	}
	return s
}
