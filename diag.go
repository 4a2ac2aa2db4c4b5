package multisplit

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// diagLogger is the package-level sink for "log a warning, continue"
// diagnostics (programming errors, geometry-constraint violations,
// invalid-argument queries). It defaults to stderr and can be redirected
// with SetLogger, for example to capture diagnostics in a test.
var (
	diagMu     sync.Mutex
	diagLogger = log.New(os.Stderr, "multisplit: ", log.LstdFlags)
)

// SetLogger replaces the package-level diagnostic logger. Passing nil
// restores the default stderr logger.
func SetLogger(l *log.Logger) {
	diagMu.Lock()
	defer diagMu.Unlock()
	if l == nil {
		l = log.New(os.Stderr, "multisplit: ", log.LstdFlags)
	}
	diagLogger = l
}

func warnf(format string, args ...any) {
	diagMu.Lock()
	l := diagLogger
	diagMu.Unlock()
	l.Output(2, fmt.Sprintf(format, args...))
}

// withDump appends a full layout dump to a warning, so a programming
// error is never reported without the tree state that produced it.
func withDump(root *Container, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if root != nil {
		msg = msg + "\n" + root.DumpLayout(0)
	}
	warnf("%s", msg)
}
