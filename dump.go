package arbor

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// --- Debugging helper ------------------------------------------------------

var (
	dumpRailColor  = color.New(color.Faint)
	dumpLabelColor = color.New(color.FgBlue)
)

// Dump writes an indented rendering of a tree to w, one node per line,
// pre-order. label produces the text shown for a node; when nil, nodes are
// rendered with %v. Colors are suppressed automatically on non-terminal
// writers (see package fatih/color).
func Dump[F any](w io.Writer, roots []F, children func(F) []F, label func(F) string) {
	assert(w != nil, "arbor.Dump requires a writer")
	assert(children != nil, "arbor.Dump requires a children accessor")
	if label == nil {
		label = func(node F) string { return fmt.Sprintf("%v", node) }
	}
	depth := 0
	walk(roots, children, func(node F) {
		if depth > 0 {
			dumpRailColor.Fprint(w, indent(depth))
		}
		dumpLabelColor.Fprintln(w, label(node))
		depth++
	}, func(F) {
		depth--
	})
}

func indent(d int) string {
	return strings.Repeat("· ", d)
}
