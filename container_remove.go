package multisplit

import "github.com/kdsplit/multisplit/geom"

// RemoveItem removes item from the tree rooted at c. item need not be a
// direct child: if it isn't found among c's children, the call is
// delegated to item.Parent().removeItem. hard tears the subtree down
// completely; soft turns it into a placeholder that keeps its slot.
func (c *Container) RemoveItem(item Item, hard bool) error {
	c.removeItem(item, hard)
	return nil
}

func (c *Container) removeItem(item Item, hard bool) {
	if c.indexOfChild(item) < 0 {
		if p := item.Parent(); p != nil {
			p.removeItem(item, hard)
		}
		return
	}

	side1, side2 := c.visibleNeighboursOf(item)

	if hard {
		idx := c.indexOfChild(item)
		c.children = append(c.children[:idx], c.children[idx+1:]...)
		item.setParent(nil)
	} else {
		if !item.IsVisible() {
			return
		}
		item.setVisible(false)
		item.sizing().PercentageWithinParent = 0
		if l := item.AsLeaf(); l != nil && l.guest != nil {
			l.guest.SetVisible(false)
		}
	}

	empty := false
	if hard {
		empty = len(c.children) == 0
	} else {
		empty = c.numVisibleChildren() == 0 && !c.hasPlaceholderChildren()
	}

	if empty && c.parent != nil {
		c.parent.removeItem(c, hard)
		return
	}

	c.growNeighbours(side1, side2)
	c.updateChildPercentages()
	c.notifyParentOfVisibility(false)
}

// hasPlaceholderChildren reports whether any child is an invisible Leaf
// still held in the tree as a placeholder (as opposed to simply being
// mid-removal).
func (c *Container) hasPlaceholderChildren() bool {
	for _, ch := range c.children {
		if l := ch.AsLeaf(); l != nil && l.IsPlaceholder() {
			return true
		}
	}
	return false
}

// visibleNeighboursOf returns the nearest visible siblings on either
// side of item, among c's children, or nil if there is none on that
// side.
func (c *Container) visibleNeighboursOf(item Item) (side1, side2 Item) {
	idx := c.indexOfChild(item)
	if idx < 0 {
		return nil, nil
	}
	for i := idx - 1; i >= 0; i-- {
		if isAccountedVisible(c.children[i]) {
			side1 = c.children[i]
			break
		}
	}
	for i := idx + 1; i < len(c.children); i++ {
		if isAccountedVisible(c.children[i]) {
			side2 = c.children[i]
			break
		}
	}
	return side1, side2
}

// growNeighbours reclaims the span freed by a removed or hidden item by
// growing its visible neighbours into it.
func (c *Container) growNeighbours(side1, side2 Item) {
	o := c.orientation
	sep := c.separatorThickness()

	switch {
	case side1 != nil && side2 != nil:
		g1 := side1.sizing().Geometry
		g2 := side2.sizing().Geometry
		freed := (g2.Pos1(o) - g1.Pos1(o) - g1.Length(o)) + sep
		half1 := freed / 2
		half2 := freed - half1
		side1.setGeometry(geom.AdjustedRect(g1, o, 0, half1))
		side2.setGeometry(geom.AdjustedRect(g2, o, -half2, 0))
	case side1 != nil:
		g1 := side1.sizing().Geometry
		newEnd := c.Length()
		delta := newEnd - (g1.Pos1(o) + g1.Length(o))
		side1.setGeometry(geom.AdjustedRect(g1, o, 0, delta))
	case side2 != nil:
		g2 := side2.sizing().Geometry
		delta := g2.Pos1(o) - 0
		side2.setGeometry(geom.AdjustedRect(g2, o, -delta, 0))
	default:
		return
	}

	if side1 != nil {
		if sub := side1.AsContainer(); sub != nil {
			sub.repositionChildren()
		}
	}
	if side2 != nil {
		if sub := side2.AsContainer(); sub != nil {
			sub.repositionChildren()
		}
	}
}
