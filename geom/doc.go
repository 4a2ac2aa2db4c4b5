// Package geom provides the pure value types and geometry helpers the
// layout engine is built on: points, sizes, rectangles, orientation, and
// the side/location pairs used to describe where an item is inserted.
//
// Nothing in this package knows about items, containers, or guests; it
// has no dependencies and performs no I/O. The root package builds the
// layout tree on top of these types.
package geom
