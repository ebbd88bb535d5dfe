package element

import (
	"fmt"
	"strings"
)

// Dump renders the tree below e as indented lines, one element per line.
// Nodes print as (kind); content-bearing tokens print their text in
// backticks.  The format is stable and used by the parser tests.
func Dump(e *Element) string {
	var b strings.Builder
	dump(&b, e, 0)
	return b.String()
}

func dump(b *strings.Builder, e *Element, depth int) {
	fmt.Fprintf(b, "%*s", depth*2, "")
	if e.IsNode() {
		fmt.Fprintf(b, "(%s)\n", e.NodeKind())
		for i := 0; i < e.ChildCount(); i++ {
			dump(b, e.Child(i), depth+1)
		}
		return
	}
	if e.TokenKind().HasContent() {
		fmt.Fprintf(b, "%s `%s`\n", e.TokenKind(), e.text)
		return
	}
	fmt.Fprintf(b, "%s\n", e.TokenKind())
}
