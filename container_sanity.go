package multisplit

import (
	"fmt"
	"math"

	"github.com/kdsplit/multisplit/geom"
)

// CheckSanity verifies every structural invariant of the tree rooted at
// c: parent back-edges, visible/placeholder consistency, axis packing,
// cross-axis span, containment within the container's own bounds, and
// percentage closure. It returns the list of violations found; a
// nil/empty result means the tree is sound. If recursive is true,
// descends into every child container.
func (c *Container) CheckSanity(recursive bool) []string {
	return c.checkSanity2(recursive)
}

// checkSanityDebug runs a non-recursive sanity check and logs (via
// assertf) if it fails, matching the "run sanity check in debug
// builds" step structural operations perform after mutating the tree.
func (c *Container) checkSanityDebug() {
	if !debugAssertions {
		return
	}
	if problems := c.checkSanity2(false); len(problems) > 0 {
		assertf(c.rootSelf(), "sanity check failed: %v", problems)
	}
}

func (c *Container) rootSelf() *Container {
	cur := c
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

func (c *Container) checkSanity() []string { return c.checkSanity2(false) }

func (c *Container) checkSanity2(recursive bool) []string {
	var problems []string

	if c.parent == nil && len(c.children) == 0 {
		// empty root is allowed; nothing further to check.
		return problems
	}
	if c.parent != nil && len(c.children) == 0 {
		problems = append(problems, "non-root container "+c.objectName+" has zero children")
	}

	for _, ch := range c.children {
		if ch.Parent() != c {
			problems = append(problems, "child "+ch.ObjectName()+" parent back-edge does not point at "+c.objectName)
		}
	}

	visible := c.visibleChildren()
	if c.parent != nil && len(visible) == 0 && !c.hasPlaceholderChildren() {
		problems = append(problems, "non-root container "+c.objectName+" has no visible and no placeholder children")
	}

	o := c.orientation
	expected := 0
	sep := c.separatorThickness()
	cross := c.info.Geometry.CrossLength(o)
	var pctSum float64

	for _, ch := range visible {
		s := ch.sizing()
		if s.Geometry.Pos1(o) != expected {
			problems = append(problems, fmt.Sprintf("child %s expected offset %d, got %d", ch.ObjectName(), expected, s.Geometry.Pos1(o)))
		}
		if s.Geometry.CrossLength(o) != cross {
			problems = append(problems, fmt.Sprintf("child %s cross-length %d does not match container %d", ch.ObjectName(), s.Geometry.CrossLength(o), cross))
		}
		if s.Length(o) < s.MinLength(o) {
			problems = append(problems, fmt.Sprintf("child %s length %d below minLength %d", ch.ObjectName(), s.Length(o), s.MinLength(o)))
		}
		containerBounds := geom.NewRect(0, 0, c.info.Geometry.Size.W, c.info.Geometry.Size.H)
		if !containerBounds.ContainsRect(s.Geometry) {
			problems = append(problems, fmt.Sprintf("child %s geometry %s not contained in container %s bounds", ch.ObjectName(), rectString(s.Geometry), c.objectName))
		}
		expected += s.Length(o) + sep
		pctSum += s.PercentageWithinParent
	}
	if len(visible) > 0 {
		expected -= sep
		if expected != c.Length() {
			problems = append(problems, fmt.Sprintf("container %s packed length %d does not equal container length %d", c.objectName, expected, c.Length()))
		}
		if math.Abs(pctSum-1.0) > 1e-6 {
			problems = append(problems, fmt.Sprintf("container %s visible-child percentages sum to %f, want 1.0", c.objectName, pctSum))
		}
	}

	if recursive {
		for _, ch := range c.children {
			if sub := ch.AsContainer(); sub != nil {
				problems = append(problems, sub.checkSanity2(true)...)
			} else if l := ch.AsLeaf(); l != nil {
				problems = append(problems, l.checkSanity()...)
			}
		}
	}

	return problems
}

func (c *Container) dumpLayout(indent int) string {
	pad := indentString(indent)
	out := fmt.Sprintf("%sContainer(%s) %s %s visible=%v\n", pad, c.objectName, c.orientation, rectString(c.info.Geometry), c.IsVisible())
	for _, ch := range c.children {
		out += fmt.Sprintf("%s  pct=%.3f\n", pad, ch.sizing().PercentageWithinParent)
		out += ch.dumpLayout(indent + 1)
	}
	return out
}

// DumpLayout produces a deterministic textual snapshot of the subtree
// rooted at c: indentation by level, orientation, rectangle, visibility,
// and each child's percentage share, for tests and debugging.
func (c *Container) DumpLayout(level int) string {
	return c.dumpLayout(level)
}
