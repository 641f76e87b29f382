package xquery

import (
	"iter"
	"slices"
	"strconv"

	"github.com/midbel/xquery/xdm"
)

var bindingKinds = []Kind{
	KindForClause,
	KindForMemberClause,
	KindForBinding,
	KindLetClause,
	KindLetBinding,
	KindPositionalVar,
	KindFTScoreVar,
	KindWindowClause,
	KindWindowStartCondition,
	KindWindowEndCondition,
	KindWindowVars,
	KindCurrentItem,
	KindPreviousItem,
	KindNextItem,
	KindCountClause,
	KindGroupByClause,
	KindGroupingSpec,
	KindQuantifiedBinding,
	KindCopyBinding,
	KindBlockVarDecl,
	KindBlockVarBinding,
	KindParamList,
	KindParam,
}

// hiddenKinds declare variables that are not in scope of their own children.
var hiddenKinds = []Kind{
	KindForBinding,
	KindLetBinding,
	KindQuantifiedBinding,
	KindCopyBinding,
	KindGroupingSpec,
	KindBlockVarBinding,
	KindVarDecl,
	KindParam,
	KindCountClause,
	KindPositionalVar,
}

// ResolveVariable returns the name declaring the variable referenced by ref,
// a variable reference or the name it holds. Nothing is returned when no
// declaration is in scope.
func ResolveVariable(ref *Node) (QName, bool) {
	if ref.Is(KindQName) {
		ref = ref.parent
	}
	if !ref.Is(KindVarRef) {
		return QName{}, false
	}
	name, ok := ref.VariableName()
	if !ok {
		return name, false
	}
	want, ok := name.Expanded()
	if !ok {
		return name, false
	}
	for child, parent := ref, ref.parent; parent != nil; child, parent = parent, parent.parent {
		if parent.Is(hiddenKinds...) {
			continue
		}
		ix := parent.Index(child)
		for _, e := range slices.Backward(parent.children[:ix]) {
			sib, ok := e.(*Node)
			if !ok || !sib.Is(bindingKinds...) {
				continue
			}
			if decl, ok := lookupExported(sib, want); ok {
				return decl, true
			}
		}
		if parent.Is(KindWindowClause) {
			continue
		}
		for _, e := range slices.Backward(parent.children[:ix]) {
			qn, ok := e.(*Node)
			if !ok || !qn.Is(KindQName) || qn.usage != UsageVariable {
				continue
			}
			if decl, ok := matchName(qn, want); ok {
				return decl, true
			}
		}
		if parent.Is(KindCatchClause) {
			if decl, ok := errorVariable(parent, want); ok {
				return decl, true
			}
		}
	}
	return lookupGlobal(ref, want)
}

// errorVariables are bound implicitly by a catch clause without variable.
var errorVariables = []string{
	"code",
	"description",
	"value",
	"module",
	"line-number",
	"column-number",
	"additional",
	"map",
}

// errorVariable returns the implicit declaration of an error variable. Its
// node is the catch clause itself.
func errorVariable(clause *Node, want QName) (QName, bool) {
	if want.Namespace != xdm.NamespaceErr || !slices.Contains(errorVariables, want.Local) {
		return QName{}, false
	}
	if _, ok := clause.VariableName(); ok {
		return QName{}, false
	}
	name := QName{
		QName: xdm.ExpandedName(want.Local, "err", xdm.NamespaceErr),
		Usage: UsageVariable,
		node:  clause,
	}
	return name, true
}

func lookupExported(n *Node, want QName) (QName, bool) {
	for _, e := range slices.Backward(n.children) {
		c, ok := e.(*Node)
		if !ok {
			continue
		}
		switch {
		case c.Is(KindQName) && c.usage == UsageVariable:
			if decl, ok := matchName(c, want); ok {
				return decl, true
			}
		case c.Is(bindingKinds...):
			if decl, ok := lookupExported(c, want); ok {
				return decl, true
			}
		}
	}
	return QName{}, false
}

func lookupGlobal(ref *Node, want QName) (QName, bool) {
	unit := unitOf(ref)
	if unit == nil {
		return QName{}, false
	}
	prolog := unit.Child(KindProlog)
	if prolog == nil {
		return QName{}, false
	}
	for decl := range prolog.Nodes(KindVarDecl) {
		if isAncestor(decl, ref) {
			continue
		}
		for qn := range decl.Nodes(KindQName) {
			if d, ok := matchName(qn, want); ok && qn.usage == UsageVariable {
				return d, true
			}
		}
	}
	return QName{}, false
}

func matchName(qn *Node, want QName) (QName, bool) {
	name, ok := qn.QName()
	if !ok {
		return name, false
	}
	got, ok := name.Expanded()
	if !ok || !got.QName.Equal(want.QName) {
		return name, false
	}
	return name, true
}

func isAncestor(parent, n *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p == parent {
			return true
		}
	}
	return false
}

// UseScope returns the smallest node in which the variable declared by decl
// can be referenced. decl is either the declaring name or the node holding
// it.
func UseScope(decl *Node) *Node {
	if decl.Is(KindQName) {
		decl = decl.parent
	}
	switch {
	case decl == nil:
		return nil
	case decl.Is(KindForBinding, KindLetBinding, KindPositionalVar, KindFTScoreVar,
		KindWindowClause, KindCurrentItem, KindPreviousItem, KindNextItem,
		KindCountClause, KindGroupingSpec):
		return decl.Ancestor(KindFLWORExpr)
	case decl.Is(KindQuantifiedBinding):
		return decl.Ancestor(KindQuantifiedExpr)
	case decl.Is(KindCopyBinding):
		return decl.Ancestor(KindCopyModifyExpr)
	case decl.Is(KindCaseClause, KindDefaultCaseClause, KindCatchClause):
		return decl
	case decl.Is(KindBlockVarBinding):
		if p := decl.Ancestor(KindBlockVarDecl); p != nil {
			return p.parent
		}
	case decl.Is(KindParam):
		return decl.Ancestor(KindFunctionDecl, KindInlineFunctionExpr)
	case decl.Is(KindVarDecl):
		return unitOf(decl)
	}
	return nil
}

// References returns the variable references bound to the declaration.
func References(decl *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		qn := decl
		if !qn.Is(KindQName) {
			name, ok := decl.VariableName()
			switch {
			case ok:
				qn = name.Node()
			case decl.Is(KindCatchClause):
			default:
				return
			}
		}
		scope := UseScope(qn)
		if scope == nil {
			return
		}
		for n := range scope.Descendants() {
			if !n.Is(KindVarRef) {
				continue
			}
			if got, ok := ResolveVariable(n); ok && got.Node() == qn {
				if !yield(n) {
					return
				}
			}
		}
	}
}

// ResolveFunction returns the declaration of the function called or referenced
// by ref. The name and the arity of the declaration must match.
func ResolveFunction(ref *Node) (*Node, bool) {
	name, ok := ref.FunctionName()
	if !ok {
		return nil, false
	}
	want, ok := name.Expanded()
	if !ok {
		return nil, false
	}
	arity, ok := Arity(ref)
	if !ok {
		return nil, false
	}
	m := ref.Module()
	if m == nil {
		return nil, false
	}
	for unit := range m.Units() {
		prolog := unit.Child(KindProlog)
		if prolog == nil {
			continue
		}
		for decl := range prolog.Nodes(KindFunctionDecl) {
			name, ok := decl.FunctionName()
			if !ok {
				continue
			}
			got, ok := name.Expanded()
			if !ok || !got.QName.Equal(want.QName) {
				continue
			}
			if lo, hi := paramCount(decl); arity >= lo && arity <= hi {
				return decl, true
			}
		}
	}
	return nil, false
}

// Arity returns the number of arguments given to a function call or expected
// by a function reference.
func Arity(ref *Node) (int, bool) {
	switch ref.kind {
	case KindFunctionCall:
		args := ref.Child(KindArgumentList)
		if args == nil {
			return 0, false
		}
		return args.Count(), true
	case KindNamedFunctionRef:
		lit := ref.Child(KindIntegerLiteral)
		if lit == nil {
			return 0, false
		}
		n, err := strconv.Atoi(lit.Text())
		return n, err == nil
	case KindArrowFunctionSpecifier:
		arrow := ref.parent
		if arrow == nil {
			return 0, false
		}
		args, ok := arrow.At(arrow.Index(ref) + 1).(*Node)
		if !ok || !args.Is(KindArgumentList) {
			return 1, true
		}
		return args.Count() + 1, true
	case KindFunctionDecl:
		_, hi := paramCount(ref)
		return hi, true
	default:
		return 0, false
	}
}

func paramCount(decl *Node) (int, int) {
	list := decl.Child(KindParamList)
	if list == nil {
		return 0, 0
	}
	var required, total int
	for param := range list.Nodes(KindParam) {
		total++
		if param.Token(Assign) == nil {
			required++
		}
	}
	return required, total
}
