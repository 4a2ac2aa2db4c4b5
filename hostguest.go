package multisplit

import "github.com/kdsplit/multisplit/geom"

// Host is the bounded 2D surface a layout tree paints into. The engine
// treats it as opaque: it never renders, it only queries bounds and
// instructs the host to reparent or reposition guests. A real binding
// (Qt widget, terminal pane, browser DOM node, ...) implements this;
// that binding lives outside this module.
type Host interface {
	// Bounds returns the host surface's current extent.
	Bounds() geom.Size

	// Reparent moves guest from its current host to newHost. It is a
	// no-op if guest is already hosted by newHost.
	Reparent(guest Guest, newHost Host)

	// NotifyGuestGeometry instructs guest to adopt rect, given in root
	// (host-surface) coordinates.
	NotifyGuestGeometry(guest Guest, rect geom.Rect)
}

// Guest is the opaque leaf payload a Leaf presents — a dockable widget,
// in the docking-framework domain this engine was extracted from. The
// engine holds no ownership over a Guest; it only queries it.
//
// The engine never polls or blocks waiting on a Guest: it is purely
// synchronous. A Guest binding that detects an external change (the
// user dragged the widget out, its content shrank, it was destroyed)
// calls back into the owning Leaf directly and synchronously — see
// Leaf.OnGuestGeometryChanged, Leaf.OnGuestParentChanged,
// Leaf.OnGuestLayoutInvalidated, and Leaf.OnGuestDestroyed. There is no
// event bus; the host/guest boundary is a direct call, the same as
// everything else inside the tree.
type Guest interface {
	// MinimumSize reports the guest's minimum size. Queried on attach
	// and whenever the guest calls Leaf.OnGuestLayoutInvalidated.
	MinimumSize() geom.Size

	// Geometry reports the guest's current geometry. Queried once, on
	// attach, to seed a freshly attached leaf's geometry.
	Geometry() geom.Rect

	// SetVisible is called on placeholder transitions: false when the
	// leaf becomes a placeholder, true when it's restored.
	SetVisible(visible bool)
}
