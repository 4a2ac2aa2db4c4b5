package multisplit

import "github.com/kdsplit/multisplit/geom"

// Root owns the single root Container of a layout tree and the Host it
// paints into. There is exactly one root Container per layout, and its
// geometry always equals the host surface rectangle.
type Root struct {
	host      Host
	container *Container
	config    *Config
}

// NewRoot creates a Root bound to host, with an empty root Container
// sized to host.Bounds(). Options override the default Config (5-unit
// separators, a 50x50 hard minimum leaf size).
func NewRoot(host Host, opts ...RootOption) (*Root, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	r := &Root{host: host, config: cfg}
	c := NewContainer(geom.Horizontal)
	c.info.Geometry = geom.NewRect(0, 0, host.Bounds().W, host.Bounds().H)
	c.root = r
	r.container = c
	return r, nil
}

// Container returns the root Container, for callers that need to work
// with the Container API directly (InsertAtLocation, RemoveItem,
// CheckSanity, DumpLayout, and so on).
func (r *Root) Container() *Container { return r.container }

// Config returns the tunables this tree was constructed with.
func (r *Root) Config() *Config { return r.config }

// Resize changes the host surface's extent and relayouts the root
// container to match. It is rejected (logged, ignored) if newSize is
// smaller than the root's aggregate minSize.
func (r *Root) Resize(newSize geom.Size) error {
	return r.container.Resize(newSize)
}

// InsertIntoRoot inserts newItem at the root edge given by loc, with no
// anchor — see Container.InsertIntoRoot.
func (r *Root) InsertIntoRoot(newItem Item, loc geom.Location) error {
	return r.container.InsertIntoRoot(newItem, loc)
}

// InsertAtLocation inserts newItem relative to anchor, which must
// already be part of this tree — see Container.InsertAtLocation.
func (r *Root) InsertAtLocation(newItem Item, anchor Item, loc geom.Location) error {
	ac := anchor.Parent()
	if ac == nil || !r.container.ContainsRecursive(anchor) {
		return ErrInvalidAnchor
	}
	return ac.InsertAtLocation(newItem, anchor, loc)
}

// RemoveItem removes item from the tree — see Container.RemoveItem.
func (r *Root) RemoveItem(item Item, hard bool) error {
	return r.container.RemoveItem(item, hard)
}

// ItemAtRecursive returns the Leaf under root-coordinate point p, or
// nil.
func (r *Root) ItemAtRecursive(p geom.Point) *Leaf {
	return r.container.ItemAtRecursive(p)
}

// CheckSanity verifies every invariant across the whole tree.
func (r *Root) CheckSanity() []string {
	return r.container.CheckSanity(true)
}

// DumpLayout produces a deterministic textual snapshot of the whole
// tree.
func (r *Root) DumpLayout() string {
	return r.container.DumpLayout(0)
}

// SetHost retargets this tree's host surface to newHost: every attached
// guest is reparented from the old host to the new one, and the root
// container is resized to newHost's bounds. A no-op if newHost is
// already the current host.
func (r *Root) SetHost(newHost Host) {
	if newHost == nil || newHost == r.host {
		return
	}
	reparentGuests(r.container, r.host, newHost)
	r.host = newHost
	r.container.Resize(newHost.Bounds())
}

// reparentGuests walks c's subtree reparenting every attached guest
// from oldHost to newHost, the transitive half of SetHost.
func reparentGuests(c *Container, oldHost, newHost Host) {
	for _, ch := range c.children {
		if l := ch.AsLeaf(); l != nil {
			if l.guest != nil {
				oldHost.Reparent(l.guest, newHost)
			}
			continue
		}
		if sub := ch.AsContainer(); sub != nil {
			reparentGuests(sub, oldHost, newHost)
		}
	}
}

// growHostBy grows the host surface by delta and relayouts the root
// container to match, the root-only half of onChildMinSizeChanged's
// upward propagation.
func (r *Root) growHostBy(delta geom.Size) {
	current := r.container.info.Geometry.Size
	newSize := current.Add(delta)
	r.container.info.Geometry.Size = newSize
	r.container.relayout(true)
	r.container.updateChildPercentages()
}
