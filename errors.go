package multisplit

import "errors"

// Sentinel errors for the invalid-argument / rejected-operation class of
// failures. Programming-error-class failures (invariant violations,
// unref below zero) are not returned as errors; they are logged via
// diagLogger and, in debug builds, asserted — see assert.go. An empty
// rectangle passed to Leaf.SetGeometry is both asserted and returned as
// ErrEmptyGeometry.
var (
	// ErrNoLocation is returned when a Location of LocationNone is passed
	// to an operation that requires a real side to insert against.
	ErrNoLocation = errors.New("multisplit: location must not be LocationNone")

	// ErrAlreadyAttached is returned by Leaf.AttachGuest when the leaf
	// already has a guest attached.
	ErrAlreadyAttached = errors.New("multisplit: leaf already has a guest attached")

	// ErrInvalidAnchor is returned when an anchor passed to InsertAtLocation
	// does not belong to the container it was passed to.
	ErrInvalidAnchor = errors.New("multisplit: anchor does not belong to this container")

	// ErrItemAlreadyInTree is returned when inserting an item that is
	// already attached to a container somewhere in the tree.
	ErrItemAlreadyInTree = errors.New("multisplit: item is already part of a layout tree")

	// ErrEmptyGeometry is returned by SetGeometry when given a rect with
	// non-positive width or height.
	ErrEmptyGeometry = errors.New("multisplit: geometry must have positive width and height")

	// ErrNotRoot is returned by root-only operations invoked on a non-root container.
	ErrNotRoot = errors.New("multisplit: operation is only valid on the root container")

	// ErrInvalidConfig is returned by a RootOption that was given an
	// out-of-range value, such as a negative separator thickness.
	ErrInvalidConfig = errors.New("multisplit: invalid configuration value")
)
