package xquery

import (
	"iter"
	"slices"
	"strings"

	"github.com/midbel/xquery/xdm"
)

// Usage tells how a QName is used. It selects the default namespace applied
// to names without prefix.
type Usage int8

const (
	UsageUnknown Usage = iota
	UsageElement
	UsageAttribute
	UsageType
	UsageFunctionDecl
	UsageFunctionRef
	UsageVariable
	UsageAnnotation
	UsageOption
	UsagePragma
	UsageDecimalFormat
	UsageProcessingInstruction
)

var usageNames = map[Usage]string{
	UsageUnknown:               "unknown",
	UsageElement:               "element",
	UsageAttribute:             "attribute",
	UsageType:                  "type",
	UsageFunctionDecl:          "function-decl",
	UsageFunctionRef:           "function-ref",
	UsageVariable:              "variable",
	UsageAnnotation:            "annotation",
	UsageOption:                "option",
	UsagePragma:                "pragma",
	UsageDecimalFormat:         "decimal-format",
	UsageProcessingInstruction: "processing-instruction",
}

func (u Usage) String() string {
	if s, ok := usageNames[u]; ok {
		return s
	}
	return usageNames[UsageUnknown]
}

// QName is a name of the syntax tree together with the node it comes from.
type QName struct {
	xdm.QName
	Usage Usage
	node  *Node
}

func (n QName) Node() *Node {
	return n.node
}

func (n QName) String() string {
	return n.QName.String()
}

// Expand returns the expanded form of the name. A name without prefix gets
// the default namespace of its usage. Nothing is returned when the prefix is
// not bound.
func (n QName) Expand() iter.Seq[QName] {
	return func(yield func(QName) bool) {
		if n.node == nil || n.Zero() {
			return
		}
		if !n.Lexical {
			yield(n)
			return
		}
		ns := InScope(n.node)
		uri, ok := ns.Expand(n.Prefix, n.Usage)
		if !ok {
			return
		}
		x := n
		x.QName = n.QName.Expand(uri)
		yield(x)
	}
}

// Expanded returns the first result of Expand.
func (n QName) Expanded() (QName, bool) {
	for x := range n.Expand() {
		return x, true
	}
	return n, false
}

// QName returns the name held by a QName node. It fails when the node is not
// a QName or when parts of the name are missing.
func (n *Node) QName() (QName, bool) {
	var name QName
	if !n.Is(KindQName) || n.Len() == 0 {
		return name, false
	}
	name.node = n
	name.Usage = n.usage
	first, ok := n.At(0).(*Leaf)
	if !ok {
		return name, false
	}
	switch first.Type {
	case Name:
		qn, err := xdm.ParseName(first.Literal)
		if err != nil {
			return name, false
		}
		name.QName = qn
	case BracedURI:
		local, ok := n.At(1).(*Leaf)
		if !ok {
			return name, false
		}
		uri := strings.TrimSuffix(strings.TrimPrefix(first.Literal, "Q{"), "}")
		name.QName = xdm.ExpandedName(local.Literal, "", strings.Join(strings.Fields(uri), " "))
	default:
		return name, false
	}
	return name, !name.Zero()
}

// QNames returns the names defined or referenced directly by n.
func (n *Node) QNames(usages ...Usage) iter.Seq[QName] {
	return func(yield func(QName) bool) {
		for c := range n.Nodes(KindQName) {
			name, ok := c.QName()
			if !ok {
				continue
			}
			if len(usages) > 0 && !slices.Contains(usages, name.Usage) {
				continue
			}
			if !yield(name) {
				return
			}
		}
	}
}

func (n *Node) firstName(usages ...Usage) (QName, bool) {
	for name := range n.QNames(usages...) {
		return name, true
	}
	return QName{}, false
}

// FunctionName returns the name of the function declared or referenced by n.
func (n *Node) FunctionName() (QName, bool) {
	switch n.kind {
	case KindFunctionDecl:
		return n.firstName(UsageFunctionDecl)
	case KindFunctionCall, KindNamedFunctionRef:
		return n.firstName(UsageFunctionRef)
	case KindArrowFunctionSpecifier:
		return n.firstName(UsageFunctionRef)
	default:
		return QName{}, false
	}
}

// VariableName returns the name of the variable declared or referenced by n.
func (n *Node) VariableName() (QName, bool) {
	switch {
	case n.Is(KindVarRef, KindVarDecl, KindParam, KindCopyBinding, KindBlockVarBinding,
		KindForBinding, KindLetBinding, KindQuantifiedBinding, KindGroupingSpec,
		KindPositionalVar, KindFTScoreVar, KindCountClause, KindWindowClause,
		KindCurrentItem, KindPreviousItem, KindNextItem, KindCaseClause,
		KindDefaultCaseClause, KindCatchClause):
		return n.firstName(UsageVariable)
	case n.Is(KindAssignmentExpr):
		if ref := n.Child(KindVarRef); ref != nil {
			return ref.VariableName()
		}
	}
	return QName{}, false
}

// TypeName returns the name of the type declared or referenced by n.
func (n *Node) TypeName() (QName, bool) {
	switch n.kind {
	case KindAtomicOrUnionType, KindTypeDecl, KindTypeAlias, KindElementTest, KindAttributeTest, KindValidateExpr:
		return n.firstName(UsageType)
	case KindSingleType, KindSequenceType, KindTypeDeclaration:
		if c := n.Child(); c != nil {
			return c.TypeName()
		}
	}
	return QName{}, false
}
