package multisplit

import "github.com/kdsplit/multisplit/geom"

// SetGeometry installs r as this leaf's parent-relative rectangle. A
// rectangle smaller than the leaf's minSize is still accepted (logged as
// a geometry-constraint violation); an empty rectangle is a programming
// error. The leaf's guest, if attached, is told to adopt
// the equivalent root-coordinate rect.
func (l *Leaf) SetGeometry(r geom.Rect) error {
	if r.IsEmpty() {
		assertf(l.rootContainer(), "SetGeometry called with empty rect on leaf %s", l.objectName)
		return ErrEmptyGeometry
	}
	if r.Size.W < l.info.MinSize.W || r.Size.H < l.info.MinSize.H {
		warnf("leaf %s: geometry %v smaller than minSize %v", l.objectName, r, l.info.MinSize)
	}
	l.setGeometry(r)
	return nil
}

// MissingSize reports, per axis, how far this leaf's current geometry
// falls short of its minimum size.
func (l *Leaf) MissingSize() geom.Size {
	return l.info.MissingSize()
}

// mapFromRoot converts a rectangle in root (host-surface) coordinates
// into this leaf's parent-relative coordinate space — the inverse of
// mapToRoot.
func (l *Leaf) mapFromRoot(r geom.Rect) geom.Rect {
	c := l.parent
	for c != nil {
		r = r.Translated(-c.info.Geometry.Pos.X, -c.info.Geometry.Pos.Y)
		c = c.parent
	}
	return r
}

// MapToRoot converts a parent-relative rectangle belonging to this leaf
// into root (host-surface) coordinates.
func (l *Leaf) MapToRoot(r geom.Rect) geom.Rect { return l.mapToRoot(r) }

// MapFromRoot converts a root-coordinate rectangle into this leaf's
// parent-relative coordinate space.
func (l *Leaf) MapFromRoot(r geom.Rect) geom.Rect { return l.mapFromRoot(r) }

// SetHostSurface retargets this leaf's entire tree onto newHost. A
// single host surface is shared by every item in a tree, so a leaf
// can't diverge from its siblings; this delegates to Root.SetHost,
// which reparents every attached guest and resizes the root container
// to newHost's bounds. A no-op if this leaf isn't parented into a tree.
func (l *Leaf) SetHostSurface(newHost Host) {
	if l.root == nil {
		return
	}
	l.root.SetHost(newHost)
}
