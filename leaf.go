package multisplit

import "github.com/kdsplit/multisplit/geom"

// Leaf is a tree node that holds at most one guest. It participates in
// layout like any Item; when its guest is destroyed while refCount keeps
// it alive, or is reparented away from the host, it becomes a
// placeholder: invisible, but
// still occupying a slot in its parent's children so it can be restored
// later at the same index with the same relative share of space.
type Leaf struct {
	itemBase

	guest    Guest
	refCount int
}

// NewLeaf creates a detached, invisible Leaf with no guest. Give it a
// guest via AttachGuest before inserting it into a tree, or insert it
// bare and attach later — both are legal.
func NewLeaf(opts ...LeafOption) *Leaf {
	l := &Leaf{
		itemBase: itemBase{
			objectName: newObjectName(),
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LeafOption configures a Leaf at construction time.
type LeafOption func(*Leaf)

// WithObjectName overrides the default generated diagnostic name.
func WithObjectName(name string) LeafOption {
	return func(l *Leaf) { l.objectName = name }
}

func (l *Leaf) IsContainer() bool      { return false }
func (l *Leaf) AsContainer() *Container { return nil }
func (l *Leaf) AsLeaf() *Leaf           { return l }

// Guest returns the currently attached guest, or nil if detached or a
// placeholder.
func (l *Leaf) Guest() Guest { return l.guest }

// IsPlaceholder reports whether this leaf is currently hidden while
// preserving its slot in its parent's children.
func (l *Leaf) IsPlaceholder() bool { return !l.visible && l.parent != nil }

// SetVisible shows or hides this leaf. Hiding turns it into a
// placeholder (equivalent to TurnIntoPlaceholder); showing restores it
// into its parent's layout, growing it out of its siblings' slack the
// same way a freshly inserted item would. The restored length lands
// between the leaf's minLength and whatever length it had before being
// hidden, not necessarily the exact pre-hide value.
func (l *Leaf) SetVisible(visible bool) {
	if visible == l.visible {
		return
	}
	if !visible {
		l.TurnIntoPlaceholder()
		return
	}
	if l.parent == nil {
		l.visible = true
		return
	}
	l.visible = true
	l.parent.onChildVisibleChanged(l)
}

// RefCount returns the external hold count; see Ref and Unref.
func (l *Leaf) RefCount() int { return l.refCount }

// Geometry returns the leaf's current parent-relative rectangle.
func (l *Leaf) Geometry() geom.Rect { return l.info.Geometry }

// MinSize returns the leaf's minimum size, already clamped above the
// owning tree's hard floor.
func (l *Leaf) MinSize() geom.Size { return l.info.MinSize }

// MaxSize returns the leaf's maximum size. A leaf with no attached
// guest has no upper bound.
func (l *Leaf) MaxSize() geom.Size { return l.info.MaxSize }

func (l *Leaf) setGeometry(r geom.Rect) {
	l.info.Geometry = r
	if l.guest != nil && l.root != nil {
		l.root.host.NotifyGuestGeometry(l.guest, l.mapToRoot(r))
	}
}

// mapToRoot converts a rectangle expressed in this leaf's parent's
// coordinate space into root (host-surface) coordinates. Only the host
// boundary ever sees root coordinates; everything else is parent-relative.
func (l *Leaf) mapToRoot(r geom.Rect) geom.Rect {
	c := l.parent
	for c != nil {
		r = r.Translated(c.info.Geometry.Pos.X, c.info.Geometry.Pos.Y)
		c = c.parent
	}
	return r
}

func (l *Leaf) checkSanity() []string {
	var problems []string
	if l.guest == nil && l.visible {
		problems = append(problems, "leaf "+l.objectName+" is visible but has no guest")
	}
	if l.refCount < 0 {
		problems = append(problems, "leaf "+l.objectName+" has negative refCount")
	}
	if l.info.Geometry.Size.W <= 0 || l.info.Geometry.Size.H <= 0 {
		if l.visible {
			problems = append(problems, "leaf "+l.objectName+" has empty geometry while visible")
		}
	}
	return problems
}

func (l *Leaf) dumpLayout(indent int) string {
	pad := indentString(indent)
	status := "hidden"
	if l.visible {
		status = "visible"
	}
	guest := "no-guest"
	if l.guest != nil {
		guest = "guest"
	}
	return pad + "Leaf(" + l.objectName + ") " + status + " " + guest + " " + rectString(l.info.Geometry) + "\n"
}
