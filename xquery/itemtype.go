package xquery

import (
	"strings"

	"github.com/midbel/xquery/xdm"
)

var typeClasses = map[Kind]xdm.TypeClass{
	KindAnyItemTest:         xdm.ClassItem,
	KindAnyKindTest:         xdm.ClassNode,
	KindAnyNodeTest:         xdm.ClassNode,
	KindDocumentTest:        xdm.ClassDocument,
	KindElementTest:         xdm.ClassElement,
	KindAttributeTest:       xdm.ClassAttribute,
	KindSchemaElementTest:   xdm.ClassSchemaElement,
	KindSchemaAttributeTest: xdm.ClassSchemaAttribute,
	KindTextTest:            xdm.ClassText,
	KindCommentTest:         xdm.ClassComment,
	KindPITest:              xdm.ClassInstruction,
	KindNamespaceNodeTest:   xdm.ClassNamespace,
	KindAnyFunctionTest:     xdm.ClassFunction,
	KindTypedFunctionTest:   xdm.ClassFunction,
	KindAnyMapTest:          xdm.ClassMap,
	KindTypedMapTest:        xdm.ClassMap,
	KindAnyArrayTest:        xdm.ClassArray,
	KindTypedArrayTest:      xdm.ClassArray,
	KindRecordTest:          xdm.ClassRecord,
	KindAtomicOrUnionType:   xdm.ClassAtomic,
	KindEnumerationType:     xdm.ClassAtomic,
	KindUnionType:           xdm.ClassUnion,
	KindTypeAlias:           xdm.ClassAlias,
	KindBinaryTest:          xdm.ClassBinary,
	KindMapNodeTest:         xdm.ClassObjectNode,
	KindArrayNodeTest:       xdm.ClassArrayNode,
	KindNumberNodeTest:      xdm.ClassNumberNode,
	KindBooleanNodeTest:     xdm.ClassBooleanNode,
	KindNullNodeTest:        xdm.ClassNullNode,
}

var schemaClasses = map[string]xdm.TypeClass{
	"attribute-decl":  xdm.ClassAttributeDecl,
	"complex-type":    xdm.ClassComplexType,
	"element-decl":    xdm.ClassElementDecl,
	"schema-facet":    xdm.ClassSchemaComponent,
	"schema-particle": xdm.ClassSchemaParticle,
	"schema-root":     xdm.ClassSchemaRoot,
	"schema-type":     xdm.ClassSchemaType,
	"schema-wildcard": xdm.ClassSchemaWildcard,
	"simple-type":     xdm.ClassSimpleType,
}

// ItemType returns the type described by a sequence type, a single type, a
// type declaration or an item type.
func (n *Node) ItemType() (xdm.ItemType, bool) {
	switch n.kind {
	case KindTypeDeclaration:
		if c := n.Child(); c != nil {
			return c.ItemType()
		}
		return xdm.ItemType{}, false
	case KindSequenceType, KindSingleType:
		c := n.Child()
		if c == nil {
			return xdm.ItemType{}, false
		}
		it, ok := c.ItemType()
		if !ok {
			return it, false
		}
		if occ := n.Token(Question, Star, Plus); occ != nil {
			it = it.WithOccurrence(occ.Literal)
		}
		return it, true
	case KindEmptySequenceType:
		return xdm.Empty(), true
	case KindParenthesizedItemType:
		c := n.Child()
		if c == nil {
			return xdm.ItemType{}, false
		}
		it, ok := c.ItemType()
		if ok {
			it.Name = "(" + it.Name + ")"
		}
		return it, ok
	case KindSchemaComponentTest:
		kw := n.Token(Name)
		if kw == nil {
			return xdm.ItemType{}, false
		}
		return xdm.Single(typeName(n), schemaClasses[kw.Literal]), true
	}
	class, ok := typeClasses[n.kind]
	if !ok {
		return xdm.ItemType{}, false
	}
	return xdm.Single(typeName(n), class), true
}

// typeName returns the canonical presentation of a type.
func typeName(n *Node) string {
	var str strings.Builder
	writeType(&str, n)
	return str.String()
}

func writeType(w *strings.Builder, n *Node) {
	switch n.kind {
	case KindQName:
		w.WriteString(n.Text())
		return
	case KindEmptySequenceType:
		w.WriteString("empty-sequence()")
		return
	case KindRecordField:
		writeField(w, n)
		return
	}
	for c := range n.Children() {
		switch x := c.(type) {
		case *Node:
			writeType(w, x)
			if x.kind == KindAnnotation {
				w.WriteString(" ")
			}
		case *Leaf:
			switch {
			case x.Type == Comma:
				w.WriteString(", ")
			case x.Type == Pipe:
				w.WriteString(" | ")
			case x.Type == Name && x.Literal == "as":
				w.WriteString(" as ")
			default:
				w.WriteString(x.Literal)
			}
		}
	}
}

func writeField(w *strings.Builder, n *Node) {
	for i, c := range n.children {
		switch x := c.(type) {
		case *Node:
			writeType(w, x)
		case *Leaf:
			switch {
			case i == 0:
				w.WriteString(x.Literal)
			case x.Type == Elvis:
				w.WriteString("? as ")
			case x.Type == Colon || x.Type == Name:
				w.WriteString(" as ")
			default:
				w.WriteString(x.Literal)
			}
		}
	}
}
