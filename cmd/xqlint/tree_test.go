package main

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/midbel/xquery/casing"
	"github.com/midbel/xquery/xquery"
)

func TestTreeDocument(t *testing.T) {
	tests := []struct {
		Input string
		Query string
		Want  []string
	}{
		{
			Input: "1 + 2",
			Query: "//AdditiveExpr/token",
			Want:  []string{"+"},
		},
		{
			Input: "1 + 2",
			Query: "//IntegerLiteral",
			Want:  []string{"1", "2"},
		},
		{
			Input: "let $x := 1 return $x",
			Query: "//VarRef/QName",
			Want:  []string{"x"},
		},
		{
			Input: "<a b='1'>{ 2 }</a>",
			Query: "//DirElemConstructor//IntegerLiteral",
			Want:  []string{"2"},
		},
		{
			Input: "1 +",
			Query: "//Error",
			Want:  []string{""},
		},
	}
	for _, c := range tests {
		mod := xquery.Parse(c.Input)
		str, err := treeDocument(mod, casing.DefaultCase).WriteToString()
		if err != nil {
			t.Errorf("%s: fail to write document: %s", c.Input, err)
			continue
		}
		doc, err := xmlquery.Parse(strings.NewReader(str))
		if err != nil {
			t.Errorf("%s: fail to parse document: %s", c.Input, err)
			continue
		}
		nodes, err := xmlquery.QueryAll(doc, c.Query)
		if err != nil {
			t.Errorf("%s: fail to query document: %s", c.Input, err)
			continue
		}
		if len(nodes) != len(c.Want) {
			t.Errorf("%s: %s: want %d nodes, got %d", c.Input, c.Query, len(c.Want), len(nodes))
			continue
		}
		for i := range nodes {
			if got := nodes[i].InnerText(); got != c.Want[i] {
				t.Errorf("%s: %s: text mismatched! want %q, got %q", c.Input, c.Query, c.Want[i], got)
			}
		}
	}
}

func TestTreeDocumentSpan(t *testing.T) {
	mod := xquery.Parse("1 + 2")
	doc := treeDocument(mod, casing.DefaultCase)
	el := doc.FindElement("//AdditiveExpr")
	if el == nil {
		t.Fatalf("AdditiveExpr element not found")
	}
	if got := el.SelectAttrValue("start", ""); got != "0" {
		t.Errorf("start mismatched! want 0, got %s", got)
	}
	if got := el.SelectAttrValue("end", ""); got != "5" {
		t.Errorf("end mismatched! want 5, got %s", got)
	}
	tok := el.SelectElement("token")
	if tok == nil {
		t.Fatalf("token element not found")
	}
	if got := tok.SelectAttrValue("type", ""); got != "add" {
		t.Errorf("token type mismatched! want add, got %s", got)
	}
}

func TestTokenType(t *testing.T) {
	tests := []struct {
		Token xquery.Token
		Want  string
	}{
		{Token: xquery.Token{Literal: "foo", Type: xquery.Name}, Want: "name"},
		{Token: xquery.Token{Literal: "12", Type: xquery.Integer}, Want: "integer"},
		{Token: xquery.Token{Literal: "+", Type: xquery.Plus}, Want: "add"},
		{Token: xquery.Token{Literal: "(", Type: xquery.LParen}, Want: "begin-group"},
	}
	for _, c := range tests {
		if got := tokenType(c.Token); got != c.Want {
			t.Errorf("%s: type mismatched! want %s, got %s", c.Token.Literal, c.Want, got)
		}
	}
}

func TestTreeDocumentCase(t *testing.T) {
	mod := xquery.Parse("for $x in 1 return $x")
	doc := treeDocument(mod, casing.KebabCase)
	if el := doc.FindElement("//flwor-expr/for-clause/for-binding"); el == nil {
		t.Errorf("kebab case element not found")
	}
	if el := doc.FindElement("//FLWORExpr"); el != nil {
		t.Errorf("default case element should not be found")
	}
}
