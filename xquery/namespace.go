package xquery

import (
	"maps"
	"slices"

	"github.com/midbel/xquery/environ"
	"github.com/midbel/xquery/literal"
	"github.com/midbel/xquery/version"
	"github.com/midbel/xquery/xdm"
)

// Namespaces is the static namespace context of a node: the statically known
// prefixes, the ones declared in the prolog and the ones declared by the
// enclosing direct element constructors.
type Namespaces struct {
	prefixes environ.Environ[string]
	element  string
	function string
}

// InScope computes the namespace context of n.
func InScope(n *Node) *Namespaces {
	ns := Namespaces{
		function: xdm.NamespaceFn,
	}
	base := make(map[string]string)
	if m := n.Module(); m != nil {
		for _, family := range m.Dialect().Families() {
			maps.Copy(base, version.Namespaces(family))
		}
	}
	maps.Copy(base, xdm.Known())
	ns.prefixes = environ.From(base)

	if unit := unitOf(n); unit != nil {
		ns.declare(unit)
	}
	var elems []*Node
	for p := n; p != nil; p = p.parent {
		if p.Is(KindDirElemConstructor) {
			elems = append(elems, p)
		}
	}
	for _, e := range slices.Backward(elems) {
		ns.enter(e)
	}
	return &ns
}

func (ns *Namespaces) Lookup(prefix string) (string, bool) {
	return ns.prefixes.Lookup(prefix)
}

func (ns *Namespaces) Prefixes() []string {
	return ns.prefixes.Names()
}

func (ns *Namespaces) DefaultElement() string {
	return ns.element
}

func (ns *Namespaces) DefaultFunction() string {
	return ns.function
}

// Expand returns the namespace of a name given its prefix and its usage.
func (ns *Namespaces) Expand(prefix string, usage Usage) (string, bool) {
	if prefix != "" {
		return ns.prefixes.Lookup(prefix)
	}
	switch usage {
	case UsageAnnotation:
		return xdm.NamespaceXQuery, true
	case UsageOption:
		return xdm.NamespaceOption, true
	case UsageFunctionDecl, UsageFunctionRef:
		return ns.function, true
	case UsageElement, UsageType:
		return ns.element, true
	case UsageUnknown:
		return "", false
	default:
		return "", true
	}
}

func (ns *Namespaces) declare(unit *Node) {
	ns.prefixes = environ.Enclosed(ns.prefixes)
	if decl := unit.Child(KindModuleDecl); decl != nil {
		ns.bind(decl)
	}
	prolog := unit.Child(KindProlog)
	if prolog == nil {
		return
	}
	for decl := range prolog.Nodes() {
		switch decl.kind {
		case KindNamespaceDecl, KindModuleImport:
			ns.bind(decl)
		case KindSchemaImport:
			prefix := decl.Child(KindSchemaPrefix)
			if prefix == nil {
				break
			}
			if prefix.HasKeyword("default") {
				ns.element = stringValue(decl.Child(KindStringLiteral))
				break
			}
			if name, ok := declaredPrefix(prefix); ok {
				ns.prefixes.Define(name, stringValue(decl.Child(KindStringLiteral)))
			}
		case KindDefaultNamespaceDecl:
			uri := stringValue(decl.Child(KindStringLiteral))
			if decl.HasKeyword("element") {
				ns.element = uri
			} else {
				ns.function = uri
			}
		}
	}
}

func (ns *Namespaces) bind(decl *Node) {
	name, ok := declaredPrefix(decl)
	if !ok {
		return
	}
	ns.prefixes.Define(name, stringValue(decl.Child(KindStringLiteral)))
}

// enter adds the namespaces declared by the xmlns attributes of a direct
// element constructor.
func (ns *Namespaces) enter(elem *Node) {
	ns.prefixes = environ.Enclosed(ns.prefixes)
	for attr := range elem.Nodes(KindDirAttribute) {
		name, ok := attr.firstName(UsageAttribute)
		if !ok {
			continue
		}
		value := attr.Child(KindDirAttributeValue)
		if value == nil {
			continue
		}
		switch {
		case name.Prefix == "" && name.Local == "xmlns":
			ns.element = literal.Unescape(value.Text())
		case name.Prefix == "xmlns":
			ns.prefixes.Define(name.Local, literal.Unescape(value.Text()))
		}
	}
}

// declaredPrefix returns the prefix found before the '=' of a declaration.
func declaredPrefix(decl *Node) (string, bool) {
	var prev *Leaf
	for c := range decl.Children() {
		leaf, ok := c.(*Leaf)
		if !ok {
			continue
		}
		if leaf.Type == Eq {
			return prefixOf(prev)
		}
		prev = leaf
	}
	return "", false
}

func prefixOf(leaf *Leaf) (string, bool) {
	if leaf == nil || leaf.Type != Name {
		return "", false
	}
	return leaf.Literal, true
}

// stringValue returns the decoded value of a string literal.
func stringValue(n *Node) string {
	if n == nil {
		return ""
	}
	return literal.Unescape(n.Text())
}

func unitOf(n *Node) *Node {
	for p := n; p != nil; p = p.parent {
		if p.Is(KindMainModule, KindLibraryModule) {
			return p
		}
	}
	return nil
}
