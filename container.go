package multisplit

import "github.com/kdsplit/multisplit/geom"

// Container is a tree node that owns an ordered list of children and
// lays them out along its orientation, separated by a fixed gap. It
// accepts either orientation while it has at most one child; once a
// second child is added the orientation is fixed until the container is
// emptied back down to one child or fewer.
type Container struct {
	itemBase

	orientation geom.Orientation
	children    []Item
}

// NewContainer creates a detached, empty Container with the given
// orientation. Containers are usually created implicitly by
// InsertAtLocation's orientation-mismatch path rather than directly by
// callers.
func NewContainer(o geom.Orientation) *Container {
	return &Container{
		itemBase: itemBase{
			objectName: newObjectName(),
		},
		orientation: o,
	}
}

func (c *Container) IsContainer() bool      { return true }
func (c *Container) AsContainer() *Container { return c }
func (c *Container) AsLeaf() *Leaf           { return nil }

// IsVisible reports whether this container currently has at least one
// visible child. A Container has no independent visibility of its own
// the way a Leaf does — it's purely derived from its children, so it
// flips automatically as they're hidden or restored.
func (c *Container) IsVisible() bool { return c.numVisibleChildren() > 0 }

// Orientation returns the axis this container lays its children out
// along.
func (c *Container) Orientation() geom.Orientation { return c.orientation }

// Children returns a copy of this container's ordered child list. It is
// safe for the caller to retain; mutating it does not affect the tree.
func (c *Container) Children() []Item {
	out := make([]Item, len(c.children))
	copy(out, c.children)
	return out
}

// Geometry returns this container's current parent-relative rectangle.
func (c *Container) Geometry() geom.Rect { return c.info.Geometry }

// Length returns the container's extent along its own orientation.
func (c *Container) Length() int { return c.info.Geometry.Length(c.orientation) }

// indexOfChild returns the index of item in the full child list, or -1.
func (c *Container) indexOfChild(item Item) int {
	for i, ch := range c.children {
		if ch == item {
			return i
		}
	}
	return -1
}

// indexOfVisibleChild returns the index of item within the filtered
// visible-child list (placeholders and items being inserted excluded),
// or -1 if item isn't a visible child.
func (c *Container) indexOfVisibleChild(item Item) int {
	idx := 0
	for _, ch := range c.children {
		if !isAccountedVisible(ch) {
			continue
		}
		if ch == item {
			return idx
		}
		idx++
	}
	return -1
}

// visibleChildren returns the children currently counted in layout:
// visible and not mid-insertion.
func (c *Container) visibleChildren() []Item {
	out := make([]Item, 0, len(c.children))
	for _, ch := range c.children {
		if isAccountedVisible(ch) {
			out = append(out, ch)
		}
	}
	return out
}

func isAccountedVisible(it Item) bool {
	s := it.sizing()
	return it.IsVisible() && !s.IsBeingInserted
}

func (c *Container) numVisibleChildren() int {
	n := 0
	for _, ch := range c.children {
		if isAccountedVisible(ch) {
			n++
		}
	}
	return n
}

// Contains reports whether item is a direct child of c.
func (c *Container) Contains(item Item) bool {
	return c.indexOfChild(item) >= 0
}

// ContainsRecursive reports whether item is a direct or indirect
// descendant of c.
func (c *Container) ContainsRecursive(item Item) bool {
	for _, ch := range c.children {
		if ch == item {
			return true
		}
		if sub := ch.AsContainer(); sub != nil && sub.ContainsRecursive(item) {
			return true
		}
	}
	return false
}

func (c *Container) MinSize() geom.Size { return c.aggregateMinSize() }
func (c *Container) MaxSize() geom.Size { return c.aggregateMaxSize() }

func (c *Container) setGeometry(r geom.Rect) {
	c.info.Geometry = r
}

func (c *Container) separatorThickness() int {
	return c.config().SeparatorThickness
}

// usableLength returns the container's length along its orientation
// available to visible children, excluding separators.
func (c *Container) usableLength() int {
	n := c.numVisibleChildren()
	if n == 0 {
		return 0
	}
	return c.Length() - (n-1)*c.separatorThickness()
}

// availableLength returns how much slack the container has beyond its
// own minSize, along the orientation axis.
func (c *Container) availableLength() int {
	if a := c.Length() - c.MinSize().Length(c.orientation); a > 0 {
		return a
	}
	return 0
}

// SetHostSurface retargets this container's entire tree onto newHost,
// propagating to every descendant leaf's guest. See Leaf.SetHostSurface
// and Root.SetHost.
func (c *Container) SetHostSurface(newHost Host) {
	if c.root == nil {
		return
	}
	c.root.SetHost(newHost)
}

// adoptChild sets a child's parent and root-tree pointers to this
// container's, recursing into any sub-containers it already holds.
func (c *Container) adoptChild(item Item) {
	item.setParent(c)
	item.setRootTree(c.root)
	if sub := item.AsContainer(); sub != nil {
		for _, grandchild := range sub.children {
			sub.adoptChild(grandchild)
		}
	}
}
