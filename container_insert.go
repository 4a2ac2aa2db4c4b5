package multisplit

import "github.com/kdsplit/multisplit/geom"

// InsertAtLocation inserts newItem relative to anchor, on the side
// given by loc. anchor must be a visible child of this container.
//
// If this container's orientation already matches loc (or the
// container has at most one visible child, so its orientation is still
// undecided), newItem becomes a sibling of anchor. Otherwise a new
// nested Container is spliced in in anchor's place, holding anchor
// alone, and the insertion is retried against that wrapper — this is
// the "exactly one new wrapper" boundary behaviour.
func (c *Container) InsertAtLocation(newItem Item, anchor Item, loc geom.Location) error {
	if loc == geom.LocationNone {
		warnf("InsertAtLocation: loc=None is invalid")
		return ErrNoLocation
	}
	if newItem.Parent() != nil {
		warnf("InsertAtLocation: item %s is already in a tree", newItem.ObjectName())
		return ErrItemAlreadyInTree
	}
	if anchor.Parent() != c {
		warnf("InsertAtLocation: anchor %s does not belong to container %s", anchor.ObjectName(), c.objectName)
		return ErrInvalidAnchor
	}

	wantOrientation := loc.Orientation()
	if c.orientation == wantOrientation || c.numVisibleChildren() <= 1 {
		if len(c.children) == 1 {
			c.orientation = wantOrientation
		}
		index := c.indexOfVisibleChild(anchor)
		if loc.Side() == geom.Side2 {
			index++
		}
		c.insertChild(newItem, index, true)
		c.checkSanityDebug()
		return nil
	}

	wrapper := NewContainer(c.orientation)
	wrapper.info.Geometry = anchor.sizing().Geometry
	wrapper.info.MinSize = anchor.sizing().MinSize
	wrapper.info.MaxSize = anchor.sizing().MaxSize
	wrapper.info.PercentageWithinParent = anchor.sizing().PercentageWithinParent

	idx := c.indexOfChild(anchor)
	c.children[idx] = wrapper
	c.adoptChild(wrapper)

	anchor.setParent(nil)
	wrapper.children = append(wrapper.children, anchor)
	wrapper.adoptChild(anchor)
	// anchor's geometry was parent-relative to anchorContainer; now that
	// wrapper occupies exactly the rect anchor used to, anchor's position
	// within wrapper is the origin.
	anchor.sizing().Geometry.Pos = geom.Point{}

	return wrapper.InsertAtLocation(newItem, anchor, loc)
}

// insertChild inserts item into this container's children at index,
// parenting it to c. If grow is true, restorePlaceholder is invoked so
// the newly inserted item claims space from its neighbours' slack
// instead of the container's geometry simply being recomputed blind.
func (c *Container) insertChild(item Item, index int, grow bool) {
	if index < 0 || index > len(c.children) {
		index = len(c.children)
	}
	item.sizing().IsBeingInserted = true
	c.children = append(c.children, nil)
	copy(c.children[index+1:], c.children[index:])
	c.children[index] = item
	c.adoptChild(item)

	item.sizing().IsBeingInserted = false
	item.setVisible(true)
	if l := item.AsLeaf(); l != nil {
		if l.guest != nil {
			// Re-derive the minimum now that the owning tree's hard floor
			// applies; a leaf attached before insertion got the default one.
			l.info.MinSize = l.guest.MinimumSize().ExpandedTo(l.hardMinSize())
			l.guest.SetVisible(true)
		}
	}

	if grow {
		c.restorePlaceholder(item)
	}
	c.updateChildPercentages()
}

// InsertIntoRoot inserts newItem at the root edge given by loc, with no
// anchor. Only legal on the root container. If the root's current
// orientation can't host loc and it has more than one visible child,
// a new wrapper container is spliced under root holding the old
// children; either way root's orientation becomes loc's.
func (c *Container) InsertIntoRoot(newItem Item, loc geom.Location) error {
	if c.root == nil || c.root.container != c {
		return ErrNotRoot
	}
	if loc == geom.LocationNone {
		warnf("InsertIntoRoot: loc=None is invalid")
		return ErrNoLocation
	}
	if newItem.Parent() != nil {
		return ErrItemAlreadyInTree
	}

	wantOrientation := loc.Orientation()
	if c.orientation != wantOrientation && c.numVisibleChildren() > 1 {
		wrapper := NewContainer(c.orientation)
		wrapper.info.Geometry = c.info.Geometry
		wrapper.children = c.children
		c.children = nil
		wrapper.setParent(c)
		c.adoptChild(wrapper)
		for _, ch := range wrapper.children {
			wrapper.adoptChild(ch)
		}
		wrapper.info.PercentageWithinParent = 1
		c.children = []Item{wrapper}
	}
	c.orientation = wantOrientation

	index := 0
	if loc.Side() == geom.Side2 {
		index = len(c.children)
	}
	c.insertChild(newItem, index, true)
	c.checkSanityDebug()
	return nil
}
