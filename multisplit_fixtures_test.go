package multisplit

import "github.com/kdsplit/multisplit/geom"

// fakeHost is a minimal Host for tests: a fixed-size surface that
// records the geometry it was last asked to apply to each guest.
type fakeHost struct {
	bounds    geom.Size
	notified  map[Guest]geom.Rect
	reparents int
}

func newFakeHost(w, h int) *fakeHost {
	return &fakeHost{bounds: geom.NewSize(w, h), notified: make(map[Guest]geom.Rect)}
}

func (h *fakeHost) Bounds() geom.Size { return h.bounds }

func (h *fakeHost) Reparent(guest Guest, newHost Host) { h.reparents++ }

func (h *fakeHost) NotifyGuestGeometry(guest Guest, rect geom.Rect) {
	h.notified[guest] = rect
}

// fakeGuest is a minimal Guest for tests: a fixed minimum size and a
// visibility flag that AttachGuest/TurnIntoPlaceholder drive.
type fakeGuest struct {
	minSize  geom.Size
	geometry geom.Rect
	visible  bool
}

func newFakeGuest(minW, minH int) *fakeGuest {
	return &fakeGuest{minSize: geom.NewSize(minW, minH)}
}

func (g *fakeGuest) MinimumSize() geom.Size { return g.minSize }
func (g *fakeGuest) Geometry() geom.Rect    { return g.geometry }
func (g *fakeGuest) SetVisible(v bool)      { g.visible = v }

// newTestRoot builds a Root over a w x h host with a zero hard
// minimum size, so leaf min sizes in tests are driven entirely by their
// attached guest.
func newTestRoot(t testingT, w, h int) *Root {
	host := newFakeHost(w, h)
	r, err := NewRoot(host, WithHardMinSize(geom.NewSize(0, 0)))
	if err != nil {
		t.Fatalf("NewRoot: %v", err)
	}
	return r
}

// leafWithGuest creates a parented-free Leaf with a guest of the given
// minimum size already attached.
func leafWithGuest(minW, minH int) (*Leaf, *fakeGuest) {
	l := NewLeaf()
	g := newFakeGuest(minW, minH)
	_ = l.AttachGuest(g)
	return l, g
}

// testingT is the subset of *testing.T the fixtures need, so they can
// be shared without importing "testing" into non-_test.go files.
type testingT interface {
	Fatalf(format string, args ...any)
}
