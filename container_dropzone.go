package multisplit

import "github.com/kdsplit/multisplit/geom"

// SuggestedDropRect computes, without mutating the layout, where an
// item of candidateMinSize would land if inserted relative to anchor on
// the loc side. anchor may be nil to mean "drop on the whole
// container". The result is in root coordinates; invalid arguments
// yield an empty rect and a log line rather than an error — queries
// never fail loudly on bad arguments, they just return a zero result.
func (c *Container) SuggestedDropRect(candidateMinSize geom.Size, anchor Item, loc geom.Location) geom.Rect {
	if loc == geom.LocationNone {
		warnf("SuggestedDropRect: loc=None is invalid")
		return geom.Rect{}
	}
	if anchor != nil && (anchor.Parent() != c || !anchor.IsVisible()) {
		warnf("SuggestedDropRect: anchor invalid for container %s", c.objectName)
		return geom.Rect{}
	}

	o := loc.Orientation()

	if anchor == nil {
		along := candidateMinSize.Length(o)
		third := c.Length() / 3
		avail := c.availableLength() - c.separatorThickness()
		suggested := max(along, min(avail, third))
		return c.rootRectForEdge(suggested, loc)
	}

	if o == c.orientation {
		return c.dropRectSameOrientation(candidateMinSize, anchor, loc)
	}
	return c.dropRectPerpendicular(candidateMinSize, anchor, loc)
}

// rootRectForEdge computes the drop rect for a whole-container drop,
// anchored to the container's own edge given by loc, then maps it into
// root coordinates.
func (c *Container) rootRectForEdge(suggested int, loc geom.Location) geom.Rect {
	size := c.info.Geometry.Size
	var local geom.Rect
	switch loc {
	case geom.OnLeft:
		local = geom.NewRect(0, 0, suggested, size.H)
	case geom.OnRight:
		local = geom.NewRect(size.W-suggested, 0, suggested, size.H)
	case geom.OnTop:
		local = geom.NewRect(0, 0, size.W, suggested)
	case geom.OnBottom:
		local = geom.NewRect(0, size.H-suggested, size.W, suggested)
	}
	return c.mapRectToRoot(local)
}

// mapRectToRoot walks parents adding their origin, the container
// equivalent of Leaf.mapToRoot.
func (c *Container) mapRectToRoot(r geom.Rect) geom.Rect {
	cur := c
	for cur != nil {
		r = r.Translated(cur.info.Geometry.Pos.X, cur.info.Geometry.Pos.Y)
		cur = cur.parent
	}
	return r
}

// dropRectSameOrientation handles loc whose orientation matches c's: the
// new item would become a sibling of anchor along the existing axis.
func (c *Container) dropRectSameOrientation(candidateMinSize geom.Size, anchor Item, loc geom.Location) geom.Rect {
	o := c.orientation
	sep := c.separatorThickness()
	visible := c.visibleChildren()
	n := len(visible)
	usable := c.usableLength()

	equitable := 0
	if n+1 > 0 {
		equitable = usable / (n + 1)
	}
	anchorIdx := c.indexOfVisibleChild(anchor)
	side1 := lengthOnSide(toSizingInfos(visible), 0, anchorIdx-1, o)
	side2 := lengthOnSide(toSizingInfos(visible), anchorIdx+1, n-1, o)
	available := side1.Available() + side2.Available() + visible[anchorIdx].sizing().AvailableLength(o)

	suggested := max(candidateMinSize.Length(o), min(available-sep, equitable))
	if suggested < 0 {
		suggested = 0
	}

	anchorGeom := anchor.sizing().Geometry
	var pos int
	switch {
	case anchorIdx == 0 && loc.Side() == geom.Side1:
		pos = 0
	case anchorIdx == n-1 && loc.Side() == geom.Side2:
		pos = c.Length() - suggested
	case loc.Side() == geom.Side1:
		pos = anchorGeom.Pos1(o) - suggested - sep/2
	default:
		pos = anchorGeom.Pos1(o) + anchorGeom.Length(o) + sep/2
	}
	pos = clampPos(pos, 0, c.Length()-suggested)

	local := rectAt(o, pos, suggested, c.info.Geometry.CrossLength(o))
	return c.mapRectToRoot(local)
}

// dropRectPerpendicular handles loc whose orientation is perpendicular
// to c's: the new item would half-split anchor's own rect.
func (c *Container) dropRectPerpendicular(candidateMinSize geom.Size, anchor Item, loc geom.Location) geom.Rect {
	o := loc.Orientation()
	anchorGeom := anchor.sizing().Geometry
	available := anchorGeom.Length(o)
	third := anchorGeom.Length(o) / 3
	suggested := max(candidateMinSize.Length(o), min(available, third))

	var local geom.Rect
	switch loc {
	case geom.OnLeft:
		local = geom.NewRect(anchorGeom.X(), anchorGeom.Y(), suggested, anchorGeom.Height())
	case geom.OnRight:
		local = geom.NewRect(anchorGeom.Right()-suggested, anchorGeom.Y(), suggested, anchorGeom.Height())
	case geom.OnTop:
		local = geom.NewRect(anchorGeom.X(), anchorGeom.Y(), anchorGeom.Width(), suggested)
	case geom.OnBottom:
		local = geom.NewRect(anchorGeom.X(), anchorGeom.Bottom()-suggested, anchorGeom.Width(), suggested)
	}
	return c.mapRectToRoot(local)
}

func toSizingInfos(items []Item) []SizingInfo {
	out := make([]SizingInfo, len(items))
	for i, it := range items {
		out[i] = *it.sizing()
	}
	return out
}

func clampPos(pos, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if pos < lo {
		return lo
	}
	if pos > hi {
		return hi
	}
	return pos
}

func rectAt(o geom.Orientation, pos, length, cross int) geom.Rect {
	if o == geom.Horizontal {
		return geom.NewRect(pos, 0, length, cross)
	}
	return geom.NewRect(0, pos, cross, length)
}

// ItemAtRecursive returns the Leaf whose geometry contains p (given in
// root coordinates), descending into nested containers, or nil if p
// lands outside every visible leaf.
func (c *Container) ItemAtRecursive(p geom.Point) *Leaf {
	local := c.mapRootToLocal(p)
	for _, ch := range c.visibleChildren() {
		if !ch.sizing().Geometry.Contains(local.X, local.Y) {
			continue
		}
		if l := ch.AsLeaf(); l != nil {
			return l
		}
		if sub := ch.AsContainer(); sub != nil {
			return sub.ItemAtRecursive(p)
		}
	}
	return nil
}

func (c *Container) mapRootToLocal(p geom.Point) geom.Point {
	cur := c
	for cur != nil {
		p.X -= cur.info.Geometry.Pos.X
		p.Y -= cur.info.Geometry.Pos.Y
		cur = cur.parent
	}
	return p
}
