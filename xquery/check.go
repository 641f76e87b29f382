package xquery

import (
	"fmt"
	"strings"

	"github.com/midbel/xquery/version"
)

// Check reports the nodes of the module whose syntax is not accepted by the
// target.
func Check(mod *Module, target version.Target) []SyntaxError {
	var list []SyntaxError
	for n := range mod.Descendants() {
		c, ok := n.Conformance()
		if !ok || c.Empty() || target.SatisfiesAny(c.Requires) {
			continue
		}
		var req []string
		for _, r := range c.Requires {
			req = append(req, r.String())
		}
		cause := fmt.Sprintf("%s requires %s", n.kind, strings.Join(req, " or "))
		list = append(list, mod.errorAt(CodeUnsupportedExpr, c.Element, cause))
	}
	return list
}

// Diagnose reports the names of the module that can not be resolved: names
// using an unbound prefix and references to undeclared variables.
func Diagnose(mod *Module) []SyntaxError {
	var list []SyntaxError
	for n := range mod.Descendants() {
		switch {
		case n.Is(KindQName):
			name, ok := n.QName()
			if !ok || !name.Lexical || name.Prefix == "" || name.Prefix == "xmlns" {
				break
			}
			if _, ok := name.Expanded(); !ok {
				cause := fmt.Sprintf("prefix %s is not bound", name.Prefix)
				list = append(list, mod.errorAt(CodeUnboundPrefix, n, cause))
			}
		case n.Is(KindVarRef):
			name, ok := n.VariableName()
			if !ok {
				break
			}
			if _, ok := name.Expanded(); !ok {
				break
			}
			if _, ok := ResolveVariable(n); !ok {
				cause := fmt.Sprintf("variable $%s is not declared", name.QualifiedName())
				list = append(list, mod.errorAt(CodeUndefinedVar, n, cause))
			}
		}
	}
	return list
}

func (m *Module) errorAt(code string, elem Element, cause string) SyntaxError {
	span := elem.Span()
	return SyntaxError{
		Code:     code,
		Expr:     elem.Text(),
		Cause:    cause,
		Span:     span,
		Position: m.position(span.Start),
	}
}
