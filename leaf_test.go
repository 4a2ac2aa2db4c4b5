package multisplit

import (
	"testing"

	"github.com/kdsplit/multisplit/geom"
)

func TestAttachGuest_SeedsMinSizeAndVisibility(t *testing.T) {
	l := NewLeaf()
	g := newFakeGuest(150, 80)

	if err := l.AttachGuest(g); err != nil {
		t.Fatalf("AttachGuest: %v", err)
	}
	if !l.IsVisible() {
		t.Error("leaf should become visible once a guest is attached")
	}
	if got := l.MinSize(); got != geom.NewSize(150, 80) {
		t.Errorf("MinSize() = %+v, want 150x80", got)
	}
	if l.Guest() != g {
		t.Error("Guest() should return the attached guest")
	}
}

func TestAttachGuest_RejectsDoubleAttach(t *testing.T) {
	l := NewLeaf()
	g1 := newFakeGuest(100, 100)
	g2 := newFakeGuest(100, 100)
	if err := l.AttachGuest(g1); err != nil {
		t.Fatalf("AttachGuest(g1): %v", err)
	}
	if err := l.AttachGuest(g2); err != ErrAlreadyAttached {
		t.Errorf("AttachGuest(g2) = %v, want ErrAlreadyAttached", err)
	}
}

func TestDetachGuest_LeavesVisibilityUnchanged(t *testing.T) {
	l, _ := leafWithGuest(100, 100)
	l.DetachGuest()
	if l.Guest() != nil {
		t.Error("Guest() should be nil after DetachGuest")
	}
	if !l.IsVisible() {
		t.Error("DetachGuest should not change visibility on its own")
	}
}

func TestOnGuestDestroyed_BecomesPlaceholderWhenRefCounted(t *testing.T) {
	root := newTestRoot(t, 1000, 600)
	a, _ := leafWithGuest(100, 100)
	if err := root.InsertIntoRoot(a, geom.OnLeft); err != nil {
		t.Fatalf("insert A: %v", err)
	}
	a.Ref()

	a.OnGuestDestroyed()

	if a.Guest() != nil {
		t.Error("guest should be forgotten after OnGuestDestroyed")
	}
	if !a.IsPlaceholder() {
		t.Error("a ref-held leaf should become a placeholder, not be removed")
	}
	if a.Parent() == nil {
		t.Error("a ref-held leaf should still be parented")
	}
}

func TestOnGuestDestroyed_HardRemovesWithoutRef(t *testing.T) {
	root := newTestRoot(t, 1000, 600)
	a, _ := leafWithGuest(100, 100)
	b, _ := leafWithGuest(100, 100)
	if err := root.InsertIntoRoot(a, geom.OnLeft); err != nil {
		t.Fatalf("insert A: %v", err)
	}
	if err := root.InsertAtLocation(b, a, geom.OnRight); err != nil {
		t.Fatalf("insert B: %v", err)
	}

	b.OnGuestDestroyed()

	if b.Parent() != nil {
		t.Error("an unreferenced leaf should be hard-removed on guest destruction")
	}
}

func TestUnref_BelowZeroIsLoggedNotPanicking(t *testing.T) {
	l := NewLeaf()
	l.Unref()
	if l.RefCount() != 0 {
		t.Errorf("RefCount() = %d, want 0 after an unref below zero", l.RefCount())
	}
}

func TestSetHostSurface_UnparentedLeafIsNoop(t *testing.T) {
	l, _ := leafWithGuest(100, 100)
	l.SetHostSurface(newFakeHost(1200, 800))
	if l.Parent() != nil {
		t.Error("an unparented leaf should stay unparented after SetHostSurface")
	}
}

func TestOnGuestLayoutInvalidated_PropagatesMinSizeGrowth(t *testing.T) {
	root := newTestRoot(t, 1000, 600)
	a, guestA := leafWithGuest(100, 100)
	b, _ := leafWithGuest(100, 100)
	if err := root.InsertIntoRoot(a, geom.OnLeft); err != nil {
		t.Fatalf("insert A: %v", err)
	}
	if err := root.InsertAtLocation(b, a, geom.OnRight); err != nil {
		t.Fatalf("insert B: %v", err)
	}

	guestA.minSize = geom.NewSize(700, 100)
	a.OnGuestLayoutInvalidated()

	if got := a.Geometry().Width(); got < 700 {
		t.Errorf("A.Geometry().Width() = %d, want at least 700 after min size grew", got)
	}
	if problems := root.CheckSanity(); len(problems) != 0 {
		t.Errorf("CheckSanity() = %v, want none", problems)
	}
}
