package xquery

import (
	"slices"
	"testing"

	"github.com/midbel/xquery/version"
)

func collectConformance(mod *Module) []Conformance {
	var list []Conformance
	for n := range mod.Descendants() {
		if c, ok := n.Conformance(); ok && !c.Empty() {
			list = append(list, c)
		}
	}
	return list
}

func TestConformance(t *testing.T) {
	tests := []struct {
		Input    string
		Requires []version.Requirement
		Element  string
	}{
		{
			Input:    "() instance of element(*:test)",
			Requires: []version.Requirement{version.Since(version.Saxon100)},
			Element:  "*",
		},
		{
			Input: "() instance of empty()",
			Requires: []version.Requirement{
				version.Since(version.XQueryWD20030502),
				version.Since(version.MarkLogic09),
				version.Until(version.ExistDB40),
			},
			Element: "empty",
		},
		{
			Input:    "switch (1) case 1 return 2 default return 3",
			Requires: []version.Requirement{version.Since(version.XQuery30)},
			Element:  "switch",
		},
		{
			Input:    "'a' || 'b'",
			Requires: []version.Requirement{version.Since(version.XQuery30)},
			Element:  "||",
		},
		{
			Input:    "map { 'a': 1 }",
			Requires: []version.Requirement{version.Since(version.XQuery31)},
			Element:  "map",
		},
		{
			Input:    "map { 'a' := 1 }",
			Requires: []version.Requirement{version.Since(version.Saxon94), version.Until(version.Saxon97)},
			Element:  ":=",
		},
		{
			Input:    "'a' => string()",
			Requires: []version.Requirement{version.Since(version.XQuery31)},
			Element:  "=>",
		},
		{
			Input:    "'a' =!> string()",
			Requires: []version.Requirement{version.Since(version.XQuery40)},
			Element:  "=!>",
		},
		{
			Input:    "1 otherwise 2",
			Requires: []version.Requirement{version.Since(version.XQuery40), version.Since(version.Saxon100)},
			Element:  "otherwise",
		},
		{
			Input:    "1 andAlso 2",
			Requires: []version.Requirement{version.Since(version.Saxon99)},
			Element:  "andAlso",
		},
		{
			Input:    "try { 1 } catch * { 2 }",
			Requires: []version.Requirement{version.Since(version.XQuery30), version.Since(version.MarkLogic60)},
			Element:  "try",
		},
		{
			Input:    "Q{urn:a}b",
			Requires: []version.Requirement{version.Since(version.XQuery30)},
			Element:  "Q{urn:a}",
		},
	}
	for _, c := range tests {
		mod := Parse(c.Input)
		if errs := mod.Errors(); len(errs) > 0 {
			t.Errorf("%s: unexpected errors: %v", c.Input, errs)
			continue
		}
		list := collectConformance(mod)
		if len(list) != 1 {
			t.Errorf("%s: expected 1 conformance fact, got %d", c.Input, len(list))
			continue
		}
		got := list[0]
		if !slices.Equal(got.Requires, c.Requires) {
			t.Errorf("%s: requirements mismatched: want %v, got %v", c.Input, c.Requires, got.Requires)
		}
		if got.Element == nil || got.Element.Text() != c.Element {
			t.Errorf("%s: conformance element mismatched", c.Input)
		}
	}
}

func TestConformanceOperator(t *testing.T) {
	mod := Parse("1 and 2")
	and := findKind(&mod.Node, KindAndExpr)
	if and == nil {
		t.Fatalf("and expression expected")
	}
	c, ok := and.Conformance()
	if !ok {
		t.Fatalf("and expression should have conformance")
	}
	if !c.Empty() {
		t.Errorf("and expression should not have requirements, got %v", c.Requires)
	}
	leaf, ok := c.Element.(*Leaf)
	if !ok || leaf.Literal != "and" {
		t.Errorf("conformance element should be the and operator")
	}
}

func TestConformanceWildcard(t *testing.T) {
	mod := Parse("() instance of element(*:test)")
	test := findKind(&mod.Node, KindElementTest)
	if test == nil {
		t.Fatalf("element test expected")
	}
	c, _ := test.Conformance()
	leaf, ok := c.Element.(*Leaf)
	if !ok || leaf.Type != Star {
		t.Fatalf("conformance element should be the wildcard marker")
	}
	if leaf.Parent() == nil || leaf.Parent().kind != KindWildcard {
		t.Errorf("wildcard marker should belong to the wildcard")
	}
}

func TestConformanceIdempotent(t *testing.T) {
	const input = "for member $m in [1, 2] return $m ?: ()"
	var (
		first  = collectConformance(Parse(input))
		second = collectConformance(Parse(input))
	)
	if len(first) != len(second) {
		t.Fatalf("conformance facts mismatched: %d != %d", len(first), len(second))
	}
	for i := range first {
		if !slices.Equal(first[i].Requires, second[i].Requires) {
			t.Errorf("requirements mismatched at %d", i)
		}
		if first[i].Element.Span() != second[i].Element.Span() {
			t.Errorf("conformance element mismatched at %d", i)
		}
	}
}
