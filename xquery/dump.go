package xquery

import (
	"io"
	"strconv"
	"strings"
)

// Debug returns a one line dump of the tree rooted at e. Nodes are written as
// Kind[start:end](children) and leaves as quoted literals.
func Debug(e Element) string {
	var str strings.Builder
	debugElement(&str, e)
	return str.String()
}

func debugElement(w io.Writer, e Element) {
	switch v := e.(type) {
	case *Module:
		debugElement(w, &v.Node)
	case *Node:
		io.WriteString(w, v.kind.String())
		io.WriteString(w, v.Span().String())
		io.WriteString(w, "(")
		for i, c := range v.children {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			debugElement(w, c)
		}
		io.WriteString(w, ")")
	case *Leaf:
		io.WriteString(w, strconv.Quote(v.Literal))
	}
}
