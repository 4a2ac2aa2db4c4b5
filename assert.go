package multisplit

import "fmt"

// debugAssertions controls whether programming-error invariant violations
// panic instead of merely being logged. It defaults to off so that a
// release build degrades gracefully instead of crashing on a bug in a
// caller; EnableDebugAssertions turns it on.
var debugAssertions = false

// EnableDebugAssertions turns invariant-violation diagnostics into panics.
// Call it once at test or program startup; it is not safe to toggle
// concurrently with layout operations.
func EnableDebugAssertions(on bool) {
	debugAssertions = on
}

// assertf logs a programming-error diagnostic and, if debug assertions are
// enabled, panics. It never returns control differently than a normal
// function call when assertions are disabled — the engine continues in
// release builds wherever it safely can.
func assertf(root *Container, format string, args ...any) {
	withDump(root, format, args...)
	if debugAssertions {
		panic("multisplit: invariant violation: " + fmt.Sprintf(format, args...))
	}
}
