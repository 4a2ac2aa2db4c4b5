package multisplit

import (
	"testing"

	"github.com/kdsplit/multisplit/geom"
)

func TestInsertIntoRoot_EmptyRoot_FillsWholeRect(t *testing.T) {
	r := newTestRoot(t, 1000, 600)
	a, _ := leafWithGuest(100, 100)

	if err := r.InsertIntoRoot(a, geom.OnLeft); err != nil {
		t.Fatalf("InsertIntoRoot: %v", err)
	}

	want := geom.NewRect(0, 0, 1000, 600)
	if a.Geometry() != want {
		t.Errorf("A.Geometry() = %+v, want %+v", a.Geometry(), want)
	}
}

func TestInsertAtLocation_TwoWaySplit(t *testing.T) {
	r := newTestRoot(t, 1000, 600)
	a, _ := leafWithGuest(100, 100)
	b, _ := leafWithGuest(100, 100)

	if err := r.InsertIntoRoot(a, geom.OnLeft); err != nil {
		t.Fatalf("insert A: %v", err)
	}
	if err := r.InsertAtLocation(b, a, geom.OnRight); err != nil {
		t.Fatalf("insert B: %v", err)
	}

	if got := r.Container().Orientation(); got != geom.Horizontal {
		t.Errorf("root.Orientation() = %s, want Horizontal", got)
	}
	wantA := geom.NewRect(0, 0, 497, 600)
	wantB := geom.NewRect(502, 0, 498, 600)
	if a.Geometry() != wantA {
		t.Errorf("A.Geometry() = %+v, want %+v", a.Geometry(), wantA)
	}
	if b.Geometry() != wantB {
		t.Errorf("B.Geometry() = %+v, want %+v", b.Geometry(), wantB)
	}
	if problems := r.CheckSanity(); len(problems) != 0 {
		t.Errorf("CheckSanity() = %v, want none", problems)
	}
}

func TestInsertAtLocation_PerpendicularWrapsInNewContainer(t *testing.T) {
	r := newTestRoot(t, 1000, 600)
	a, _ := leafWithGuest(100, 100)
	b, _ := leafWithGuest(100, 100)
	c, _ := leafWithGuest(100, 100)

	if err := r.InsertIntoRoot(a, geom.OnLeft); err != nil {
		t.Fatalf("insert A: %v", err)
	}
	if err := r.InsertAtLocation(b, a, geom.OnRight); err != nil {
		t.Fatalf("insert B: %v", err)
	}
	if err := r.InsertAtLocation(c, b, geom.OnBottom); err != nil {
		t.Fatalf("insert C: %v", err)
	}

	wrapper := c.Parent()
	if wrapper == nil || wrapper == r.Container() {
		t.Fatalf("C should be parented to a fresh wrapper container, got %v", wrapper)
	}
	if wrapper.Orientation() != geom.Vertical {
		t.Errorf("wrapper.Orientation() = %s, want Vertical", wrapper.Orientation())
	}
	if b.Parent() != wrapper {
		t.Errorf("B should share the wrapper with C")
	}
	if r.Container().Orientation() != geom.Horizontal {
		t.Errorf("root orientation should remain Horizontal")
	}

	wantA := geom.NewRect(0, 0, 497, 600)
	if a.Geometry() != wantA {
		t.Errorf("A.Geometry() = %+v, want %+v", a.Geometry(), wantA)
	}
	wantWrapper := geom.NewRect(502, 0, 498, 600)
	if wrapper.Geometry() != wantWrapper {
		t.Errorf("wrapper.Geometry() = %+v, want %+v", wrapper.Geometry(), wantWrapper)
	}
	if problems := r.CheckSanity(); len(problems) != 0 {
		t.Errorf("CheckSanity() = %v, want none", problems)
	}
}

func TestInsertAtLocation_RejectsForeignAnchor(t *testing.T) {
	r1 := newTestRoot(t, 1000, 600)
	r2 := newTestRoot(t, 1000, 600)
	a, _ := leafWithGuest(100, 100)
	if err := r1.InsertIntoRoot(a, geom.OnLeft); err != nil {
		t.Fatalf("insert A: %v", err)
	}
	other, _ := leafWithGuest(100, 100)
	if err := r2.InsertAtLocation(other, a, geom.OnRight); err == nil {
		t.Error("InsertAtLocation across trees should fail")
	}
}

func TestInsertAtLocation_RejectsAlreadyParentedItem(t *testing.T) {
	r := newTestRoot(t, 1000, 600)
	a, _ := leafWithGuest(100, 100)
	b, _ := leafWithGuest(100, 100)
	if err := r.InsertIntoRoot(a, geom.OnLeft); err != nil {
		t.Fatalf("insert A: %v", err)
	}
	if err := r.InsertAtLocation(b, a, geom.OnRight); err != nil {
		t.Fatalf("insert B: %v", err)
	}
	if err := r.InsertAtLocation(b, a, geom.OnLeft); err != ErrItemAlreadyInTree {
		t.Errorf("re-inserting B should fail with ErrItemAlreadyInTree, got %v", err)
	}
}
