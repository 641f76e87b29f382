package casing_test

import (
	"testing"

	"github.com/midbel/xquery/casing"
)

func TestCasing(t *testing.T) {
	data := []struct {
		Input string
		Want  string
		Case  casing.CaseType
	}{
		{
			Input: "foobar",
			Want:  "foobar",
			Case:  casing.SnakeCase,
		},
		{
			Input: "AdditiveExpr",
			Want:  "additive-expr",
			Case:  casing.KebabCase,
		},
		{
			Input: "AdditiveExpr",
			Want:  "additive_expr",
			Case:  casing.SnakeCase,
		},
		{
			Input: "FLWORExpr",
			Want:  "flwor-expr",
			Case:  casing.KebabCase,
		},
		{
			Input: "FTScoreVar",
			Want:  "ft_score_var",
			Case:  casing.SnakeCase,
		},
		{
			Input: "QName",
			Want:  "q-name",
			Case:  casing.KebabCase,
		},
		{
			Input: "DirElemConstructor",
			Want:  "dirElemConstructor",
			Case:  casing.CamelCase,
		},
		{
			Input: "dir-elem-constructor",
			Want:  "DirElemConstructor",
			Case:  casing.PascalCase,
		},
		{
			Input: "foo___-___BAR",
			Want:  "foo-bar",
			Case:  casing.KebabCase,
		},
		{
			Input: "  ---foo_bar---  ",
			Want:  "foo-bar",
			Case:  casing.KebabCase,
		},
		{
			Input: "AdditiveExpr",
			Want:  "AdditiveExpr",
			Case:  casing.DefaultCase,
		},
	}
	for _, d := range data {
		got := casing.To(d.Case, d.Input)
		if got != d.Want {
			t.Errorf("%s: result mismatched! want %s, got %s", d.Input, d.Want, got)
		}
	}
}

func TestParse(t *testing.T) {
	data := []struct {
		Input string
		Want  casing.CaseType
		Err   bool
	}{
		{Input: "", Want: casing.DefaultCase},
		{Input: "kebab", Want: casing.KebabCase},
		{Input: "Snake", Want: casing.SnakeCase},
		{Input: "camel", Want: casing.CamelCase},
		{Input: "pascal", Want: casing.PascalCase},
		{Input: "upper", Err: true},
	}
	for _, d := range data {
		got, err := casing.Parse(d.Input)
		if d.Err {
			if err == nil {
				t.Errorf("%s: expected error", d.Input)
			}
			continue
		}
		if err != nil || got != d.Want {
			t.Errorf("%s: case mismatched! want %d, got %d (%v)", d.Input, d.Want, got, err)
		}
	}
}
