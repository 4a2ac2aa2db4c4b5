package multisplit

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kdsplit/multisplit/geom"
)

// newObjectName generates a short, readable default diagnostic name for
// a Leaf or Container that wasn't given an explicit one. The truncated
// UUID convention keeps dumpLayout output scannable while still being
// unique enough in practice to tell items apart in a log.
func newObjectName() string {
	return uuid.New().String()[:8]
}

func indentString(depth int) string {
	return strings.Repeat("  ", depth)
}

func rectString(r geom.Rect) string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.Pos.X, r.Pos.Y, r.Size.W, r.Size.H)
}
