// Package multisplit implements a recursive, orientation-alternating
// layout engine for docking-style split layouts.
//
// A [Root] owns a tree of [Item] values: a [Container] holds an ordered,
// orientation-tagged list of children laid out side by side with a fixed
// separator between them; a [Leaf] holds at most one [Guest] payload and
// may become a placeholder that preserves its slot without occupying
// space. The engine computes geometry, propagates minimum-size
// constraints, preserves percentage splits across resizes, and suggests
// drop rectangles for interactive insertion — all synchronously, with no
// rendering, persistence, or concurrency of its own. See [Host] and
// [Guest] for the two narrow interfaces through which a caller hooks the
// engine up to an actual UI toolkit.
package multisplit
