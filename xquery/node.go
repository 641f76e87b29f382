package xquery

import (
	"iter"
	"slices"
)

// Element is either a Node or a Leaf of the syntax tree.
type Element interface {
	Span() Span
	Parent() *Node
	Text() string
}

type Leaf struct {
	Token
	parent *Node
}

func (l *Leaf) Parent() *Node {
	return l.parent
}

func (l *Leaf) Text() string {
	return l.Literal
}

func (l *Leaf) Is(kinds ...rune) bool {
	return slices.Contains(kinds, l.Type)
}

// Node is an inner node of the syntax tree. Its span is the union of the spans
// of its children. A node without children, like the Error node inserted in
// place of missing syntax, has a zero width span.
type Node struct {
	kind     Kind
	usage    Usage
	offset   int
	children []Element
	parent   *Node
	module   *Module
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) Is(kinds ...Kind) bool {
	return n != nil && slices.Contains(kinds, n.kind)
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Module() *Module {
	return n.module
}

func (n *Node) Span() Span {
	if len(n.children) == 0 {
		return Span{
			Start: n.offset,
			End:   n.offset,
		}
	}
	var (
		first = n.children[0].Span()
		last  = n.children[len(n.children)-1].Span()
	)
	return Span{
		Start: first.Start,
		End:   last.End,
	}
}

func (n *Node) Position() Position {
	if leaf := n.FirstLeaf(); leaf != nil {
		return leaf.Position
	}
	if n.module != nil {
		return n.module.position(n.offset)
	}
	return Position{}
}

func (n *Node) Text() string {
	if n.module == nil {
		return ""
	}
	span := n.Span()
	return n.module.source[span.Start:span.End]
}

func (n *Node) Len() int {
	return len(n.children)
}

func (n *Node) At(i int) Element {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *Node) Index(e Element) int {
	return slices.Index(n.children, e)
}

func (n *Node) Children() iter.Seq[Element] {
	return slices.Values(n.children)
}

// Nodes returns the child nodes matching one of the given kinds, or all the
// child nodes when no kind is given.
func (n *Node) Nodes(kinds ...Kind) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.children {
			x, ok := c.(*Node)
			if !ok || (len(kinds) > 0 && !x.Is(kinds...)) {
				continue
			}
			if !yield(x) {
				return
			}
		}
	}
}

func (n *Node) Child(kinds ...Kind) *Node {
	for c := range n.Nodes(kinds...) {
		return c
	}
	return nil
}

func (n *Node) Count(kinds ...Kind) int {
	var count int
	for range n.Nodes(kinds...) {
		count++
	}
	return count
}

// Token returns the first direct leaf of one of the given types.
func (n *Node) Token(types ...rune) *Leaf {
	for _, c := range n.children {
		if x, ok := c.(*Leaf); ok && x.Is(types...) {
			return x
		}
	}
	return nil
}

// Keyword returns the first direct leaf spelled as one of the given keywords.
func (n *Node) Keyword(keywords ...string) *Leaf {
	for _, c := range n.children {
		if x, ok := c.(*Leaf); ok && x.Type == Name && slices.Contains(keywords, x.Literal) {
			return x
		}
	}
	return nil
}

func (n *Node) HasKeyword(keywords ...string) bool {
	return n.Keyword(keywords...) != nil
}

func (n *Node) FirstLeaf() *Leaf {
	for _, c := range n.children {
		switch x := c.(type) {
		case *Leaf:
			return x
		case *Node:
			if leaf := x.FirstLeaf(); leaf != nil {
				return leaf
			}
		}
	}
	return nil
}

// Leaves returns all the leaves under n in source order.
func (n *Node) Leaves() iter.Seq[*Leaf] {
	return func(yield func(*Leaf) bool) {
		n.walkLeaves(yield)
	}
}

func (n *Node) walkLeaves(yield func(*Leaf) bool) bool {
	for _, c := range n.children {
		switch x := c.(type) {
		case *Leaf:
			if !yield(x) {
				return false
			}
		case *Node:
			if !x.walkLeaves(yield) {
				return false
			}
		}
	}
	return true
}

// Descendants returns all the nodes under n in document order, n excluded.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walkNodes(yield)
	}
}

func (n *Node) walkNodes(yield func(*Node) bool) bool {
	for c := range n.Nodes() {
		if !yield(c) || !c.walkNodes(yield) {
			return false
		}
	}
	return true
}

// Ancestor returns the nearest ancestor of one of the given kinds.
func (n *Node) Ancestor(kinds ...Kind) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.Is(kinds...) {
			return p
		}
	}
	return nil
}

func (n *Node) add(e Element) {
	switch x := e.(type) {
	case *Node:
		x.parent = n
	case *Leaf:
		x.parent = n
	}
	n.children = append(n.children, e)
}

func (n *Node) addLeaf(tok Token) *Leaf {
	leaf := Leaf{
		Token: tok,
	}
	n.add(&leaf)
	return &leaf
}

// Module is the root of a parsed source. It may hold several main modules
// separated by transaction separators.
type Module struct {
	Node
	file    string
	source  string
	dialect Dialect
	lines   []int
	errors  []error
}

func (m *Module) File() string {
	return m.file
}

func (m *Module) Source() string {
	return m.source
}

func (m *Module) Dialect() Dialect {
	return m.dialect
}

func (m *Module) Root() *Node {
	return &m.Node
}

// Errors returns the syntax errors found while parsing.
func (m *Module) Errors() []error {
	return slices.Clone(m.errors)
}

func (m *Module) Units() iter.Seq[*Node] {
	return m.Nodes(KindMainModule, KindLibraryModule)
}

func (m *Module) IsLibrary() bool {
	return m.Child(KindLibraryModule) != nil
}

func (m *Module) position(offset int) Position {
	i, found := slices.BinarySearch(m.lines, offset)
	if !found {
		i--
	}
	if i < 0 {
		return Position{Line: 1, Column: offset + 1}
	}
	return Position{
		Line:   i + 1,
		Column: offset - m.lines[i] + 1,
	}
}

// NodeAt returns the deepest node whose span contains offset.
func (m *Module) NodeAt(offset int) *Node {
	var (
		curr = &m.Node
		at   = Span{Start: offset, End: offset}
	)
	for {
		var next *Node
		for c := range curr.Nodes() {
			if c.Span().Contains(at) && c.Len() > 0 {
				next = c
				break
			}
		}
		if next == nil {
			return curr
		}
		curr = next
	}
}
