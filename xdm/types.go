package xdm

import (
	"math"
)

// Unbounded is the upper occurrence bound of sequences without limit.
const Unbounded = math.MaxInt32

type TypeClass int8

const (
	ClassUnknown TypeClass = iota
	ClassEmpty
	ClassItem
	ClassNode
	ClassDocument
	ClassElement
	ClassAttribute
	ClassSchemaElement
	ClassSchemaAttribute
	ClassText
	ClassComment
	ClassInstruction
	ClassNamespace
	ClassFunction
	ClassMap
	ClassArray
	ClassRecord
	ClassAtomic
	ClassUnion
	ClassAlias
	ClassBinary
	ClassArrayNode
	ClassObjectNode
	ClassNumberNode
	ClassBooleanNode
	ClassNullNode
	ClassAttributeDecl
	ClassComplexType
	ClassElementDecl
	ClassSchemaComponent
	ClassSchemaParticle
	ClassSchemaRoot
	ClassSchemaType
	ClassSimpleType
	ClassSchemaWildcard
	ClassModelGroup
)

var classNames = map[TypeClass]string{
	ClassEmpty:           "empty-sequence",
	ClassItem:            "item",
	ClassNode:            "node",
	ClassDocument:        "document-node",
	ClassElement:         "element",
	ClassAttribute:       "attribute",
	ClassSchemaElement:   "schema-element",
	ClassSchemaAttribute: "schema-attribute",
	ClassText:            "text",
	ClassComment:         "comment",
	ClassInstruction:     "processing-instruction",
	ClassNamespace:       "namespace-node",
	ClassFunction:        "function",
	ClassMap:             "map",
	ClassArray:           "array",
	ClassRecord:          "record",
	ClassAtomic:          "atomic",
	ClassUnion:           "union",
	ClassAlias:           "alias",
	ClassBinary:          "binary",
	ClassArrayNode:       "array-node",
	ClassObjectNode:      "object-node",
	ClassNumberNode:      "number-node",
	ClassBooleanNode:     "boolean-node",
	ClassNullNode:        "null-node",
	ClassAttributeDecl:   "attribute-decl",
	ClassComplexType:     "complex-type",
	ClassElementDecl:     "element-decl",
	ClassSchemaComponent: "schema-component",
	ClassSchemaParticle:  "schema-particle",
	ClassSchemaRoot:      "schema-root",
	ClassSchemaType:      "schema-type",
	ClassSimpleType:      "simple-type",
	ClassSchemaWildcard:  "schema-wildcard",
	ClassModelGroup:      "model-group",
}

func (c TypeClass) String() string {
	if n, ok := classNames[c]; ok {
		return n
	}
	return "<unknown>"
}

// IsNode reports whether the items of the class are nodes.
func (c TypeClass) IsNode() bool {
	switch c {
	case ClassNode, ClassDocument, ClassElement, ClassAttribute, ClassSchemaElement,
		ClassSchemaAttribute, ClassText, ClassComment, ClassInstruction, ClassNamespace,
		ClassBinary, ClassArrayNode, ClassObjectNode, ClassNumberNode, ClassBooleanNode,
		ClassNullNode:
		return true
	default:
		return false
	}
}

// IsSchemaComponent reports whether the class is one of the schema component
// tests of MarkLogic.
func (c TypeClass) IsSchemaComponent() bool {
	return c >= ClassAttributeDecl && c <= ClassModelGroup
}

// ItemType describes a sequence type: its canonical presentation, the class
// of the items and the occurrence bounds.
type ItemType struct {
	Name  string
	Class TypeClass
	Lower int
	Upper int
}

func Single(name string, class TypeClass) ItemType {
	return ItemType{
		Name:  name,
		Class: class,
		Lower: 1,
		Upper: 1,
	}
}

func Empty() ItemType {
	return ItemType{
		Name:  "empty-sequence()",
		Class: ClassEmpty,
	}
}

// WithOccurrence applies an occurrence indicator ("?", "*" or "+").
func (t ItemType) WithOccurrence(indicator string) ItemType {
	switch indicator {
	case "?":
		t.Lower, t.Upper = 0, 1
	case "*":
		t.Lower, t.Upper = 0, Unbounded
	case "+":
		t.Lower, t.Upper = 1, Unbounded
	default:
		return t
	}
	t.Name += indicator
	return t
}

func (t ItemType) Optional() bool {
	return t.Lower == 0
}

func (t ItemType) Sequence() bool {
	return t.Upper > 1
}

func (t ItemType) String() string {
	return t.Name
}

// Atomic is a statically known atomic value.
type Atomic struct {
	Type  QName
	Value string
}

var UntypedAtomic = ExpandedName("untypedAtomic", "xs", NamespaceXS)

func Untyped(value string) *Atomic {
	return &Atomic{
		Type:  UntypedAtomic,
		Value: value,
	}
}

func (a Atomic) String() string {
	return a.Value
}
