package multisplit

import "github.com/kdsplit/multisplit/geom"

// growthStrategy selects how slack is distributed among donors when an
// item needs to grow. BothSidesEqually is the only strategy the engine
// implements; growItemAmount and splitGrowth always apply it and take no
// strategy parameter.
type growthStrategy int

const (
	growBothSidesEqually growthStrategy = iota
)

// Resize changes this container's geometry to newSize, redistributing
// children proportionally to their existing percentageWithinParent and
// then enforcing minimums by pulling space from siblings with slack.
// It is a no-op if newSize doesn't change either dimension, and is
// rejected (logged, ignored) if newSize is smaller than this
// container's aggregate minSize.
func (c *Container) Resize(newSize geom.Size) error {
	min := c.MinSize()
	if newSize.W < min.W || newSize.H < min.H {
		warnf("Resize: newSize %v smaller than minSize %v on container %s", newSize, min, c.objectName)
		return nil
	}
	if newSize == c.info.Geometry.Size {
		return nil
	}

	lengthChanged := newSize.Length(c.orientation) != c.info.Geometry.Size.Length(c.orientation)
	c.info.Geometry.Size = newSize

	c.relayout(lengthChanged)
	c.updateChildPercentages()
	return nil
}

// repositionChildren re-lays out children to fill this container's
// current geometry, preserving their existing percentages, without
// touching those percentages afterward. Used when a neighbouring
// container's size changes as a side effect of growNeighbours rather
// than a direct Resize call.
func (c *Container) repositionChildren() {
	c.relayout(true)
}

// relayout performs the two-pass redistribution: a proportional
// assignment along the orientation axis
// (skipped, keeping existing lengths, when lengthChanged is false),
// followed by a minimum-enforcing pass that borrows slack from
// siblings. It ends by positioning children in order and applying
// geometries down into the tree.
func (c *Container) relayout(lengthChanged bool) {
	visible := c.visibleChildren()
	n := len(visible)
	if n == 0 {
		return
	}

	o := c.orientation
	sep := c.separatorThickness()
	usable := c.usableLength()
	cross := c.info.Geometry.CrossLength(o)

	sizes := make([]SizingInfo, n)
	for i, ch := range visible {
		sizes[i] = *ch.sizing()
	}

	if lengthChanged {
		total := 0
		for i := range sizes {
			pct := sizes[i].PercentageWithinParent
			l := int(pct*float64(usable) + 0.5)
			sizes[i] = sizes[i].SetLength(l, o)
			total += l
		}
		if n > 0 {
			remainder := usable - total
			last := &sizes[n-1]
			*last = last.SetLength(last.Length(o)+remainder, o)
		}
	}
	for i := range sizes {
		sizes[i].Geometry.Size = sizes[i].Geometry.Size.SetLength(cross, o.Opposite())
	}

	for i := range sizes {
		if missing := sizes[i].MissingLength(o); missing > 0 {
			growItemAmount(sizes, i, missing, o, sep)
		}
	}

	positionSizes(sizes, o, sep)

	for i, ch := range visible {
		ch.setGeometry(sizes[i].Geometry)
		if sub := ch.AsContainer(); sub != nil {
			sub.relayout(true)
		}
	}
}

// positionSizes lays out sizes in order along o, starting at 0 and
// advancing by each element's length plus the separator, writing the
// resulting position back into each element's Geometry.Pos.
func positionSizes(sizes []SizingInfo, o geom.Orientation, sep int) {
	offset := 0
	for i := range sizes {
		if o == geom.Horizontal {
			sizes[i].Geometry.Pos.X = offset
		} else {
			sizes[i].Geometry.Pos.Y = offset
		}
		offset += sizes[i].Length(o) + sep
	}
}

// growItemAmount grows sizes[i] by amount, taking the space from its
// neighbours split as evenly as possible between the two sides.
func growItemAmount(sizes []SizingInfo, i, amount int, o geom.Orientation, sep int) {
	if len(sizes) == 1 {
		sizes[i] = sizes[i].SetLength(sizes[i].Length(o)+amount, o)
		return
	}
	g1, g2 := splitGrowth(sizes, i, amount, o)
	squeezeDonors(sizes, i, g1, g2, o)
	sizes[i] = sizes[i].SetLength(sizes[i].Length(o)+amount, o)
}

// splitGrowth decides how much of amount should come from donors on
// each side of index i, preferring side1 in ties and letting one side
// absorb the remainder once the other saturates.
func splitGrowth(sizes []SizingInfo, i, amount int, o geom.Orientation) (g1, g2 int) {
	side1 := lengthOnSide(sizes, 0, i-1, o)
	side2 := lengthOnSide(sizes, i+1, len(sizes)-1, o)
	avail1, avail2 := side1.Available(), side2.Available()

	missing := amount
	for missing > 0 && (avail1 > 0 || avail2 > 0) {
		take := missing / 2
		if take < 1 {
			take = 1
		}
		took := false
		if avail1 > 0 {
			t := take
			if t > avail1 {
				t = avail1
			}
			g1 += t
			avail1 -= t
			missing -= t
			took = true
		}
		if missing <= 0 {
			break
		}
		if avail2 > 0 {
			t := take
			if t > avail2 {
				t = avail2
			}
			g2 += t
			avail2 -= t
			missing -= t
			took = true
		}
		if !took {
			break
		}
	}
	if missing > 0 {
		// amount exceeded available slack on both sides; this is a
		// precondition violation upstream, absorb what we can.
		if avail1 > 0 {
			g1 += avail1
			missing -= avail1
		}
		if missing > 0 && avail2 > 0 {
			g2 += avail2
		}
	}
	return g1, g2
}

// squeezeDonors shrinks the donors on either side of index i by a
// fair-share squeeze totalling g1 on side1 and g2 on side2, leaving
// sizes[i] itself untouched — callers decide separately how much (if
// any) sizes[i] itself should grow.
func squeezeDonors(sizes []SizingInfo, i, g1, g2 int, o geom.Orientation) {
	squeezes1 := calculateSqueezes(sizes[:i], g1, o)
	squeezes2 := calculateSqueezes(sizes[i+1:], g2, o)

	for j, sq := range squeezes1 {
		sizes[j] = sizes[j].SetLength(sizes[j].Length(o)-sq, o)
	}
	for j, sq := range squeezes2 {
		idx := i + 1 + j
		sizes[idx] = sizes[idx].SetLength(sizes[idx].Length(o)-sq, o)
	}
}

// calculateSqueezes distributes needed across the elements of rng that
// have slack (length above minLength), fair-share: each round, donors
// still with slack absorb max(1, remaining/donorCount), capped at their
// own remaining slack.
func calculateSqueezes(rng []SizingInfo, needed int, o geom.Orientation) []int {
	squeezes := make([]int, len(rng))
	if needed <= 0 || len(rng) == 0 {
		return squeezes
	}
	available := make([]int, len(rng))
	for i := range rng {
		available[i] = rng[i].AvailableLength(o)
	}

	missing := needed
	for missing > 0 {
		donors := 0
		for _, a := range available {
			if a > 0 {
				donors++
			}
		}
		if donors == 0 {
			break
		}
		quota := missing / donors
		if quota < 1 {
			quota = 1
		}
		progressed := false
		for i := range rng {
			if missing <= 0 {
				break
			}
			if available[i] <= 0 {
				continue
			}
			take := quota
			if take > available[i] {
				take = available[i]
			}
			if take > missing {
				take = missing
			}
			squeezes[i] += take
			available[i] -= take
			missing -= take
			progressed = true
		}
		if !progressed {
			break
		}
	}
	return squeezes
}

// restorePlaceholder is called when item is transitioning from hidden
// to visible, or right after it was inserted with grow=true. It grows
// item out of its neighbours' slack instead of leaving the container's
// geometry to a later full relayout.
func (c *Container) restorePlaceholder(item Item) {
	item.setVisible(true)
	if l := item.AsLeaf(); l != nil && l.guest != nil {
		l.guest.SetVisible(true)
	}

	visible := c.visibleChildren()
	if len(visible) == 1 {
		item.setGeometry(geom.NewRect(0, 0, c.info.Geometry.Size.W, c.info.Geometry.Size.H))
		item.sizing().PercentageWithinParent = 1
		if sub := item.AsContainer(); sub != nil {
			sub.repositionChildren()
		}
		return
	}

	o := c.orientation
	sep := c.separatorThickness()
	idx := c.indexOfVisibleChild(item)

	cross := c.info.Geometry.CrossLength(o)
	sizes := make([]SizingInfo, len(visible))
	for i, ch := range visible {
		sizes[i] = *ch.sizing()
		sizes[i].Geometry.Size = sizes[i].Geometry.Size.SetLength(cross, o.Opposite())
	}

	currentLength := sizes[idx].Length(o)
	proposed := currentLength
	if proposed == 0 {
		// A leaf that has never had geometry (a brand-new insertion, as
		// opposed to a placeholder with a remembered pre-hide length)
		// has nothing sensible to propose. Default it to an equal share
		// of the container's usable length so a fresh insertion splits
		// space with its neighbours instead of collapsing to its bare
		// minimum.
		n := len(visible)
		proposed = (c.usableLength() + n - 1) / n
	}
	minLen := sizes[idx].MinLength(o)
	maxAvail := currentLength
	for j, ch := range visible {
		if j == idx {
			continue
		}
		maxAvail += ch.sizing().AvailableLength(o)
	}
	target := proposed
	if target < minLen {
		target = minLen
	}
	if target > maxAvail {
		target = maxAvail
	}

	// The donor squeeze must free up target+sep worth of room (the
	// separator is a new gap this item didn't previously occupy), but
	// the item's own length only grows to target — squeezeDonors and
	// the item's own length are set independently, matching how the
	// item's length is fixed directly rather than derived from the
	// squeeze amount.
	squeezeAmount := target + sep
	if squeezeAmount > 0 {
		g1, g2 := splitGrowth(sizes, idx, squeezeAmount, o)
		squeezeDonors(sizes, idx, g1, g2, o)
	}
	sizes[idx] = sizes[idx].SetLength(target, o)
	positionSizes(sizes, o, sep)
	for i, ch := range visible {
		ch.setGeometry(sizes[i].Geometry)
		if sub := ch.AsContainer(); sub != nil {
			sub.repositionChildren()
		}
	}
}

// onChildMinSizeChanged is invoked by a child whose minSize just grew
// or shrank. If this container can no longer fit its children within
// its own minSize, the shortfall propagates: at the root, the host
// surface itself grows; elsewhere, it's relayed to this container's own
// parent via the same call.
func (c *Container) onChildMinSizeChanged(child Item) {
	missing := c.MissingSize()
	if !missing.IsZero() && c.root != nil && c.root.container == c {
		c.root.growHostBy(missing)
	} else if !missing.IsZero() && c.parent != nil {
		c.parent.onChildMinSizeChanged(c)
	}

	if c.numVisibleChildren() == 1 {
		if v := c.visibleChildren(); len(v) == 1 {
			v[0].setGeometry(geom.NewRect(0, 0, c.info.Geometry.Size.W, c.info.Geometry.Size.H))
		}
		return
	}
	if child.sizing().IsBeingInserted {
		return
	}

	missingForChild := child.sizing().MissingSize()
	if missingForChild.IsZero() {
		return
	}

	visible := c.visibleChildren()
	idx := c.indexOfVisibleChild(child)
	if idx < 0 {
		return
	}
	sizes := make([]SizingInfo, len(visible))
	for i, ch := range visible {
		sizes[i] = *ch.sizing()
	}
	growItemAmount(sizes, idx, missingForChild.Length(c.orientation), c.orientation, c.separatorThickness())
	positionSizes(sizes, c.orientation, c.separatorThickness())
	for i, ch := range visible {
		ch.setGeometry(sizes[i].Geometry)
	}
}

// onChildVisibleChanged is invoked by a child whenever its visibility
// flips, so this container can restore it into the layout (if now
// visible) and, since a Container's own IsVisible is derived from its
// children, keep that 0↔1 transition propagating up to its own parent.
func (c *Container) onChildVisibleChanged(child Item) {
	if child.IsVisible() {
		c.restorePlaceholder(child)
		c.updateChildPercentages()
		c.notifyParentOfVisibility(true)
		return
	}
	// Only a sub-Container reaches this branch (a Leaf's own hide path
	// goes through removeItem, which already grows its neighbours
	// itself): child just lost its last visible descendant, so treat it
	// like any other item vacating its slot.
	side1, side2 := c.visibleNeighboursOf(child)
	c.growNeighbours(side1, side2)
	c.updateChildPercentages()
	c.notifyParentOfVisibility(false)
}

// notifyParentOfVisibility propagates this container's own
// visible/invisible transition to its parent via onChildVisibleChanged,
// mirroring Leaf.onVisibleChanged's upward call. justBecameVisible
// tells it which edge to test for, since unlike a Leaf's stored flag,
// a Container's visibility is recomputed from numVisibleChildren each
// time. It's a no-op unless this specific transition just happened.
func (c *Container) notifyParentOfVisibility(justBecameVisible bool) {
	if c.parent == nil {
		return
	}
	n := c.numVisibleChildren()
	if justBecameVisible && n == 1 {
		c.parent.onChildVisibleChanged(c)
	} else if !justBecameVisible && n == 0 {
		c.parent.onChildVisibleChanged(c)
	}
}

// MissingSize reports, per axis, how far this container's length falls
// short of its own aggregate minSize.
func (c *Container) MissingSize() geom.Size {
	min := c.MinSize()
	return geom.Size{
		W: max(min.W-c.info.Geometry.Size.W, 0),
		H: max(min.H-c.info.Geometry.Size.H, 0),
	}
}

// aggregateMinSize sums children's minSize along the orientation axis
// (plus separators) and takes the max along the cross axis, bottom-up.
// An empty container has no minimum.
func (c *Container) aggregateMinSize() geom.Size {
	visible := c.visibleChildren()
	if len(visible) == 0 {
		return geom.Size{}
	}
	o := c.orientation
	along := (len(visible) - 1) * c.separatorThickness()
	cross := 0
	for _, ch := range visible {
		along += ch.MinSize().Length(o)
		if cl := ch.MinSize().Length(o.Opposite()); cl > cross {
			cross = cl
		}
	}
	return sizeFromLengths(along, cross, o)
}

// aggregateMaxSize sums children's maxSize along the orientation axis
// (plus separators) and takes the min along the cross axis. An empty
// container, or one where any child has no upper bound, has no maximum
// expressed as an effectively unbounded size.
func (c *Container) aggregateMaxSize() geom.Size {
	visible := c.visibleChildren()
	if len(visible) == 0 {
		return geom.Size{}
	}
	o := c.orientation
	const unbounded = 1 << 30
	along := (len(visible) - 1) * c.separatorThickness()
	cross := unbounded
	for _, ch := range visible {
		m := ch.MaxSize()
		alongLen := m.Length(o)
		if alongLen <= 0 {
			alongLen = unbounded
		}
		along += alongLen
		crossLen := m.Length(o.Opposite())
		if crossLen <= 0 {
			crossLen = unbounded
		}
		if crossLen < cross {
			cross = crossLen
		}
	}
	if along >= unbounded {
		along = 0
	}
	if cross >= unbounded {
		cross = 0
	}
	return sizeFromLengths(along, cross, o)
}

func sizeFromLengths(along, cross int, o geom.Orientation) geom.Size {
	if o == geom.Horizontal {
		return geom.Size{W: along, H: cross}
	}
	return geom.Size{W: cross, H: along}
}

// updateChildPercentages recomputes percentageWithinParent for every
// visible child from its current length, and zeroes it for hidden
// children. Called once at the end of a structural or resize
// operation, never mid-operation, so consecutive resizes don't
// accumulate rounding drift.
func (c *Container) updateChildPercentages() {
	usable := c.usableLength()
	for _, ch := range c.children {
		s := ch.sizing()
		if !isAccountedVisible(ch) {
			s.PercentageWithinParent = 0
			continue
		}
		if usable <= 0 {
			s.PercentageWithinParent = 0
			continue
		}
		s.PercentageWithinParent = float64(s.Length(c.orientation)) / float64(usable)
	}
}
