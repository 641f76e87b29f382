package xquery

import (
	"iter"
	"strings"

	"github.com/midbel/xquery/literal"
	"github.com/midbel/xquery/xdm"
)

// Attribute is an attribute of a constructed element. Value is nil for
// attributes built by a computed constructor.
type Attribute struct {
	Name  QName
	Node  *Node
	Value *xdm.Atomic
}

var braces = strings.NewReplacer("{{", "{", "}}", "}")

// Attributes returns the attributes of an element constructor. The direct
// attributes come first in source order, followed by the attributes built by
// the computed constructors of its content. Namespace declarations are not
// attributes.
func Attributes(elem *Node) []Attribute {
	var list []Attribute
	switch elem.kind {
	case KindDirElemConstructor:
		for attr := range elem.Nodes(KindDirAttribute) {
			name, ok := attr.firstName(UsageAttribute)
			if !ok || isNamespaceAttr(name) {
				continue
			}
			list = append(list, Attribute{
				Name:  name,
				Node:  attr,
				Value: xdm.Untyped(attributeValue(attr.Child(KindDirAttributeValue))),
			})
		}
		for expr := range elem.Nodes(KindEnclosedExpr) {
			list = computedAttributes(list, expr)
		}
	case KindCompElemConstructor:
		if expr := lastEnclosed(elem); expr != nil {
			list = computedAttributes(list, expr)
		}
	}
	return list
}

// lastEnclosed returns the content of a computed constructor whose name may
// also be an enclosed expression.
func lastEnclosed(elem *Node) *Node {
	var last *Node
	for expr := range elem.Nodes(KindEnclosedExpr) {
		last = expr
	}
	return last
}

func computedAttributes(list []Attribute, expr *Node) []Attribute {
	for c := range operands(expr) {
		if !c.Is(KindCompAttrConstructor) {
			continue
		}
		attr := Attribute{
			Node: c,
		}
		if name, ok := c.firstName(UsageAttribute); ok {
			attr.Name = name
		}
		list = append(list, attr)
	}
	return list
}

// operands returns the expressions of a comma separated sequence.
func operands(expr *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := range expr.Nodes() {
			if c.Is(KindExpr) {
				for x := range c.Nodes() {
					if !yield(x) {
						return
					}
				}
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

func isNamespaceAttr(name QName) bool {
	return name.Prefix == "xmlns" || (name.Prefix == "" && name.Local == "xmlns")
}

func attributeValue(value *Node) string {
	if value == nil {
		return ""
	}
	var (
		str   strings.Builder
		delim string
	)
	for c := range value.Children() {
		switch x := c.(type) {
		case *Leaf:
			switch x.Type {
			case AttrDelim:
				delim = x.Literal
			case XmlText:
				str.WriteString(braces.Replace(x.Literal))
			}
		case *Node:
			str.WriteString(x.Text())
		}
	}
	return literal.Unescape(delim + str.String() + delim)
}
