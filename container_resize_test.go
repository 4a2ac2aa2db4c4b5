package multisplit

import (
	"math"
	"testing"

	"github.com/kdsplit/multisplit/geom"
)

func buildThreeEqualSiblings(t *testing.T, width, height int) (root *Root, a, b, c *Leaf) {
	root = newTestRoot(t, width, height)
	a, _ = leafWithGuest(10, 10)
	b, _ = leafWithGuest(10, 10)
	c, _ = leafWithGuest(10, 10)
	if err := root.InsertIntoRoot(a, geom.OnLeft); err != nil {
		t.Fatalf("insert A: %v", err)
	}
	if err := root.InsertAtLocation(b, a, geom.OnRight); err != nil {
		t.Fatalf("insert B: %v", err)
	}
	if err := root.InsertAtLocation(c, b, geom.OnRight); err != nil {
		t.Fatalf("insert C: %v", err)
	}
	return root, a, b, c
}

func TestResize_PropagatesProportionally(t *testing.T) {
	root, a, b, c := buildThreeEqualSiblings(t, 1000, 600)

	if err := root.Resize(geom.NewSize(1300, 600)); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	lengths := []int{a.Geometry().Width(), b.Geometry().Width(), c.Geometry().Width()}
	total := lengths[0] + lengths[1] + lengths[2] + 2*root.Config().SeparatorThickness
	if total != 1300 {
		t.Errorf("sum of lengths plus separators = %d, want 1300", total)
	}
	for i, l := range lengths {
		if math.Abs(float64(l-430)) > 2 {
			t.Errorf("lengths[%d] = %d, want close to 430", i, l)
		}
	}
	for _, leaf := range []*Leaf{a, b, c} {
		pct := leaf.sizing().PercentageWithinParent
		if math.Abs(pct-1.0/3.0) > 1e-3 {
			t.Errorf("percentage = %v, want close to 1/3", pct)
		}
	}
	if problems := root.CheckSanity(); len(problems) != 0 {
		t.Errorf("CheckSanity() = %v, want none", problems)
	}
}

func TestResize_Idempotent(t *testing.T) {
	root, a, b, c := buildThreeEqualSiblings(t, 1000, 600)

	if err := root.Resize(geom.NewSize(1300, 600)); err != nil {
		t.Fatalf("first Resize: %v", err)
	}
	first := []geom.Rect{a.Geometry(), b.Geometry(), c.Geometry()}

	if err := root.Resize(geom.NewSize(1300, 600)); err != nil {
		t.Fatalf("second Resize: %v", err)
	}
	second := []geom.Rect{a.Geometry(), b.Geometry(), c.Geometry()}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("leaf %d geometry changed on repeated Resize: %+v -> %+v", i, first[i], second[i])
		}
	}
}

func TestResize_ThenBackMatchesSinglePass(t *testing.T) {
	rootA, a1, b1, c1 := buildThreeEqualSiblings(t, 1000, 600)
	if err := rootA.Resize(geom.NewSize(1000, 600)); err != nil {
		t.Fatalf("Resize A: %v", err)
	}
	baseline := []geom.Rect{a1.Geometry(), b1.Geometry(), c1.Geometry()}

	rootB, a2, b2, c2 := buildThreeEqualSiblings(t, 1000, 600)
	if err := rootB.Resize(geom.NewSize(1300, 600)); err != nil {
		t.Fatalf("Resize B: %v", err)
	}
	if err := rootB.Resize(geom.NewSize(1000, 600)); err != nil {
		t.Fatalf("Resize back to A: %v", err)
	}
	roundTrip := []geom.Rect{a2.Geometry(), b2.Geometry(), c2.Geometry()}

	for i := range baseline {
		if baseline[i] != roundTrip[i] {
			t.Errorf("leaf %d: resize(A);resize(B);resize(A) = %+v, want %+v (single resize(A))", i, roundTrip[i], baseline[i])
		}
	}
}

func TestResize_MinSizeClamp(t *testing.T) {
	root := newTestRoot(t, 1000, 600)
	a, _ := leafWithGuest(400, 100)
	b, _ := leafWithGuest(100, 100)
	c, _ := leafWithGuest(100, 100)
	if err := root.InsertIntoRoot(a, geom.OnLeft); err != nil {
		t.Fatalf("insert A: %v", err)
	}
	if err := root.InsertAtLocation(b, a, geom.OnRight); err != nil {
		t.Fatalf("insert B: %v", err)
	}
	if err := root.InsertAtLocation(c, b, geom.OnRight); err != nil {
		t.Fatalf("insert C: %v", err)
	}

	if err := root.Resize(geom.NewSize(700, 600)); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	if got := a.Geometry().Width(); got != 400 {
		t.Errorf("A.Geometry().Width() = %d, want 400 (clamped to min)", got)
	}
	bw, cw := b.Geometry().Width(), c.Geometry().Width()
	sep := root.Config().SeparatorThickness
	if total := a.Geometry().Width() + bw + cw + 2*sep; total != 700 {
		t.Errorf("total width = %d, want 700", total)
	}
	if bw < 100 || cw < 100 {
		t.Errorf("B/C widths = %d/%d, want both >= their 100 min", bw, cw)
	}
	if problems := root.CheckSanity(); len(problems) != 0 {
		t.Errorf("CheckSanity() = %v, want none", problems)
	}
}

func TestResize_RejectsBelowAggregateMinSize(t *testing.T) {
	root := newTestRoot(t, 1000, 600)
	a, _ := leafWithGuest(400, 100)
	b, _ := leafWithGuest(400, 100)
	if err := root.InsertIntoRoot(a, geom.OnLeft); err != nil {
		t.Fatalf("insert A: %v", err)
	}
	if err := root.InsertAtLocation(b, a, geom.OnRight); err != nil {
		t.Fatalf("insert B: %v", err)
	}
	before := []geom.Rect{a.Geometry(), b.Geometry()}

	if err := root.Resize(geom.NewSize(100, 600)); err != nil {
		t.Fatalf("Resize below min should be rejected quietly, not returned as an error: %v", err)
	}

	after := []geom.Rect{a.Geometry(), b.Geometry()}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("leaf %d geometry changed despite rejected resize: %+v -> %+v", i, before[i], after[i])
		}
	}
}
