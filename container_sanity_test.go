package multisplit

import (
	"strings"
	"testing"

	"github.com/kdsplit/multisplit/geom"
)

func TestCheckSanity_PassesOnFreshlyBuiltTree(t *testing.T) {
	root, _, _, _ := buildTwoWaySplitWithWrapper(t)
	if problems := root.CheckSanity(); len(problems) != 0 {
		t.Errorf("CheckSanity() = %v, want none", problems)
	}
}

func TestCheckSanity_DetectsGeometryOutsideParentBounds(t *testing.T) {
	root, a, _, _ := buildTwoWaySplitWithWrapper(t)
	a.sizing().Geometry = geom.NewRect(0, 0, 5000, 5000)

	problems := root.CheckSanity()
	if len(problems) == 0 {
		t.Error("CheckSanity() should flag a leaf whose geometry overflows its container")
	}
}

func TestCheckSanity_DetectsPercentageDrift(t *testing.T) {
	root, a, b, _ := buildTwoWaySplitWithWrapper(t)
	a.sizing().PercentageWithinParent = 0.1
	b.sizing().PercentageWithinParent = 0.1

	problems := root.CheckSanity()
	if len(problems) == 0 {
		t.Error("CheckSanity() should flag percentages that no longer sum to 1")
	}
}

func TestDumpLayout_IsDeterministicAndMentionsEveryLeaf(t *testing.T) {
	root, a, b, c := buildTwoWaySplitWithWrapper(t)

	first := root.DumpLayout()
	second := root.DumpLayout()
	if first != second {
		t.Error("DumpLayout() should be deterministic for an unchanged tree")
	}
	for _, leaf := range []*Leaf{a, b, c} {
		if !strings.Contains(first, leaf.ObjectName()) {
			t.Errorf("DumpLayout() output missing leaf %s", leaf.ObjectName())
		}
	}
}

func TestCheckSanity_RootOriginAndSizeMatchHost(t *testing.T) {
	root := newTestRoot(t, 800, 450)
	if got := root.Container().Geometry(); got.Pos != (geom.Point{}) {
		t.Errorf("root origin = %+v, want (0,0)", got.Pos)
	}
	if got := root.Container().Geometry().Size; got != geom.NewSize(800, 450) {
		t.Errorf("root size = %+v, want 800x450", got)
	}
}
