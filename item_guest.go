package multisplit

// AttachGuest binds guest to this leaf. The leaf must currently have no
// guest attached. On success the leaf becomes visible, its minSize is
// taken from the guest's reported minimum, and its geometry is seeded
// from the guest's current rectangle (mapped into this leaf's parent
// coordinate space) if the leaf's own geometry is still empty.
func (l *Leaf) AttachGuest(g Guest) error {
	if g == nil {
		return ErrAlreadyAttached
	}
	if l.guest != nil {
		return ErrAlreadyAttached
	}
	l.guest = g
	l.info.MinSize = g.MinimumSize().ExpandedTo(l.hardMinSize())
	l.visible = true

	if l.info.Geometry.IsEmpty() {
		l.info.Geometry = l.mapFromRoot(g.Geometry())
	}
	l.onVisibleChanged(true)
	return nil
}

// DetachGuest forgets the attached guest without changing visibility or
// refCount. A subsequent AttachGuest is legal. Callers that want the
// leaf to disappear should follow up with TurnIntoPlaceholder.
func (l *Leaf) DetachGuest() {
	l.guest = nil
}

// TurnIntoPlaceholder soft-removes this leaf from its parent: it stays
// in the parent's children, at the same index, but stops occupying
// space until restored by a later insertion at the same location or by
// the parent's restorePlaceholder path.
func (l *Leaf) TurnIntoPlaceholder() {
	if l.parent == nil {
		return
	}
	l.parent.removeItem(l, false)
}

// Ref increments the external hold count. While refCount is positive,
// the leaf survives guest destruction as a placeholder instead of being
// hard-removed.
func (l *Leaf) Ref() {
	l.refCount++
}

// Unref decrements the external hold count. Reaching zero on a
// non-root, already-invisible leaf causes its parent to hard-remove it.
// Unref below zero is a programming error, logged and, in debug
// builds, asserted.
func (l *Leaf) Unref() {
	if l.refCount <= 0 {
		assertf(l.rootContainer(), "unref below zero on leaf %s", l.objectName)
		return
	}
	l.refCount--
	if l.refCount == 0 && l.parent != nil && !l.visible {
		l.parent.removeItem(l, true)
	}
}

// OnGuestDestroyed is called by a Guest binding when its underlying
// widget is destroyed out from under the leaf. If refCount is positive
// the leaf becomes a placeholder; otherwise it is hard-removed from its
// parent.
func (l *Leaf) OnGuestDestroyed() {
	l.guest = nil
	if l.refCount > 0 {
		l.TurnIntoPlaceholder()
		return
	}
	if l.parent != nil {
		l.parent.removeItem(l, true)
	}
}

// OnGuestParentChanged is called by a Guest binding when the guest was
// reparented to a different Host out from under the leaf, without going
// through DetachGuest first. This is treated exactly like a detach
// followed by a placeholder transition.
func (l *Leaf) OnGuestParentChanged() {
	l.guest = nil
	l.TurnIntoPlaceholder()
}

// OnGuestGeometryChanged is called by a Guest binding that detects an
// external geometry change (the user dragged or resized the guest
// directly). The engine owns geometry decisions, so this simply
// reinstates the leaf's own rectangle rather than adopting the drift.
func (l *Leaf) OnGuestGeometryChanged() {
	if l.guest == nil {
		return
	}
	if l.root != nil {
		l.root.host.NotifyGuestGeometry(l.guest, l.mapToRoot(l.info.Geometry))
	}
}

// OnGuestLayoutInvalidated is called by a Guest binding when the
// guest's own minimum size changed (e.g. its content changed). It
// re-queries MinimumSize and, if that changed, propagates the new
// constraint up the tree through the parent's onChildMinSizeChanged.
func (l *Leaf) OnGuestLayoutInvalidated() {
	if l.guest == nil {
		return
	}
	newMin := l.guest.MinimumSize().ExpandedTo(l.hardMinSize())
	if newMin == l.info.MinSize {
		return
	}
	l.info.MinSize = newMin
	if l.parent != nil {
		l.parent.onChildMinSizeChanged(l)
	}
}

// onVisibleChanged notifies the parent of a visibility transition so it
// can update visible-child bookkeeping via onChildVisibleChanged.
func (l *Leaf) onVisibleChanged(visible bool) {
	l.visible = visible
	if l.guest != nil {
		l.guest.SetVisible(visible)
	}
	if l.parent != nil {
		l.parent.onChildVisibleChanged(l)
	}
}

// rootContainer returns the root Container of this leaf's tree, or nil
// if unparented, for use in diagnostic dumps.
func (l *Leaf) rootContainer() *Container {
	if l.root == nil {
		return nil
	}
	return l.root.container
}
