package xquery

import (
	"errors"
	"strings"
	"testing"
)

func findKind(n *Node, kind Kind) *Node {
	for c := range n.Descendants() {
		if c.kind == kind {
			return c
		}
	}
	return nil
}

func checkLeaves(t *testing.T, mod *Module) {
	t.Helper()
	offset := 0
	for leaf := range mod.Leaves() {
		if leaf.Offset < offset {
			t.Errorf("%s: leaf %q at %d overlaps previous leaf ending at %d", mod.Source(), leaf.Literal, leaf.Offset, offset)
		}
		if got := mod.Source()[leaf.Offset:leaf.End()]; got != leaf.Literal {
			t.Errorf("%s: leaf %q does not match source %q", mod.Source(), leaf.Literal, got)
		}
		offset = leaf.End()
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		Input   string
		Dialect Dialect
		Kinds   []Kind
	}{
		{
			Input: "1 + 2 * 3",
			Kinds: []Kind{KindAdditiveExpr, KindMultiplicativeExpr, KindIntegerLiteral},
		},
		{
			Input: "for $x in (1, 2, 3) where $x > 1 order by $x descending return $x * 2",
			Kinds: []Kind{KindFLWORExpr, KindForClause, KindForBinding, KindWhereClause, KindOrderByClause, KindOrderSpec, KindReturnClause},
		},
		{
			Input: "for $x at $i in ('a', 'b') let $y := $x, $z := $i return ($y, $z)",
			Kinds: []Kind{KindPositionalVar, KindLetClause, KindLetBinding, KindParenthesizedExpr},
		},
		{
			Input: "for $x in 1 to 10 group by $k := $x mod 2 count $c return $k",
			Kinds: []Kind{KindRangeExpr, KindGroupByClause, KindGroupingSpec, KindCountClause},
		},
		{
			Input: "for tumbling window $w in (1, 2, 3) start $s when true() end $e when false() return $w",
			Kinds: []Kind{KindWindowClause, KindWindowStartCondition, KindWindowEndCondition},
		},
		{
			Input: "some $x in (1, 2) satisfies $x = 1",
			Kinds: []Kind{KindQuantifiedExpr, KindQuantifiedBinding, KindComparisonExpr},
		},
		{
			Input: "if ($a) then 1 else 2",
			Kinds: []Kind{KindIfExpr},
		},
		{
			Input: "typeswitch ($a) case $i as xs:integer return $i default return ()",
			Kinds: []Kind{KindTypeswitchExpr, KindCaseClause, KindDefaultCaseClause, KindSequenceType},
		},
		{
			Input: "switch ($a) case 1 return 'one' default return 'other'",
			Kinds: []Kind{KindSwitchExpr, KindSwitchCaseClause, KindSwitchDefaultClause},
		},
		{
			Input: "try { 1 } catch * { 2 }",
			Kinds: []Kind{KindTryCatchExpr, KindCatchClause},
		},
		{
			Input: "/root/item[@id = 'a']//text()",
			Kinds: []Kind{KindPathExpr, KindPredicate, KindAbbrevForwardStep, KindTextTest},
		},
		{
			Input: "child::item/parent::node()",
			Kinds: []Kind{KindAxisStep, KindForwardAxis, KindReverseAxis, KindAnyKindTest},
		},
		{
			Input: "map { 'a': 1, 'b': 2 }?a",
			Kinds: []Kind{KindMapConstructor, KindMapConstructorEntry, KindLookup},
		},
		{
			Input: "[1, 2, 3]?*",
			Kinds: []Kind{KindSquareArrayConstructor, KindLookup},
		},
		{
			Input: "'abc' => upper-case() => string-length()",
			Kinds: []Kind{KindArrowExpr, KindArrowFunctionSpecifier, KindArgumentList},
		},
		{
			Input: "function($x as xs:integer) as xs:integer { $x + 1 }",
			Kinds: []Kind{KindInlineFunctionExpr, KindParam, KindTypeDeclaration},
		},
		{
			Input: "fn:concat#2",
			Kinds: []Kind{KindNamedFunctionRef},
		},
		{
			Input: "$a instance of xs:string+",
			Kinds: []Kind{KindInstanceofExpr, KindSequenceType, KindAtomicOrUnionType},
		},
		{
			Input: "$a cast as xs:integer?",
			Kinds: []Kind{KindCastExpr, KindSingleType},
		},
		{
			Input: "<a b='1'>{ $x }<c/>text</a>",
			Kinds: []Kind{KindDirElemConstructor, KindDirAttribute, KindDirAttributeValue, KindEnclosedExpr},
		},
		{
			Input: "<a><!-- c --><![CDATA[<x>]]><?pi x?></a>",
			Kinds: []Kind{KindDirElemConstructor, KindDirCommentConstructor, KindCDataSection, KindDirPIConstructor},
		},
		{
			Input: "element foo { attribute bar { 1 } }",
			Kinds: []Kind{KindCompElemConstructor, KindCompAttrConstructor},
		},
		{
			Input: "``[Hello `{$name}`!]``",
			Kinds: []Kind{KindStringConstructor, KindStringInterpolation, KindVarRef},
		},
		{
			Input: "declare namespace a = 'urn:a'; declare variable $v := 1; declare function a:f($x) { $x }; a:f($v)",
			Kinds: []Kind{KindProlog, KindNamespaceDecl, KindVarDecl, KindFunctionDecl, KindFunctionCall, KindQueryBody},
		},
		{
			Input: "xquery version '3.1'; 1",
			Kinds: []Kind{KindVersionDecl},
		},
		{
			Input: "module namespace m = 'urn:m'; declare function m:f() { 1 };",
			Kinds: []Kind{KindModuleDecl, KindFunctionDecl},
		},
		{
			Input: "(# saxon:stream #) { doc('a.xml') }",
			Kinds: []Kind{KindExtensionExpr, KindPragma},
		},
		{
			Input: "$a otherwise $b",
			Kinds: []Kind{KindOtherwiseExpr},
		},
		{
			Input: "$a || $b",
			Kinds: []Kind{KindStringConcatExpr},
		},
		{
			Input: "-1",
			Kinds: []Kind{KindUnaryExpr},
		},
		{
			Input: "$a ! string()",
			Kinds: []Kind{KindSimpleMapExpr},
		},
		{
			Input: "validate lax { $a }",
			Kinds: []Kind{KindValidateExpr},
		},
		{
			Input:   "$a contains text 'word' using stemming",
			Dialect: FullText,
			Kinds:   []Kind{KindFTContainsExpr, KindFTMatchOptions, KindFTStemOption},
		},
		{
			Input:   "insert node <a/> into $doc",
			Dialect: UpdateFacility,
			Kinds:   []Kind{KindInsertExpr, KindDirElemConstructor},
		},
		{
			Input:   "copy $c := $a modify delete node $c/b return $c",
			Dialect: UpdateFacility,
			Kinds:   []Kind{KindCopyModifyExpr, KindCopyBinding, KindDeleteExpr},
		},
		{
			Input:   "block { declare $x := 1; $x := 2; $x }",
			Dialect: Scripting,
			Kinds:   []Kind{KindBlockExpr, KindBlockVarDecl, KindAssignmentExpr, KindApplyExpr},
		},
		{
			Input:   "$a ?: $b",
			Dialect: BaseX,
			Kinds:   []Kind{KindElvisExpr},
		},
	}
	for _, c := range tests {
		dialect := c.Dialect
		if dialect == 0 {
			dialect = DialectAll
		}
		mod := Parse(c.Input, WithDialect(dialect))
		if errs := mod.Errors(); len(errs) > 0 {
			t.Errorf("%s: unexpected errors: %v", c.Input, errs)
			continue
		}
		for _, k := range c.Kinds {
			if findKind(&mod.Node, k) == nil {
				t.Errorf("%s: no %s node found in %s", c.Input, k, Debug(mod))
			}
		}
		checkLeaves(t, mod)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"for $x in",
		"if (1) then",
		"(1, 2",
		"<a></b>",
		"'abc",
		"1 +",
		"map { 'a' 1 }",
		"declare variable $x",
		"function($x) { $x",
		"<a b=1/>",
	}
	for _, str := range tests {
		mod := Parse(str)
		if len(mod.Errors()) == 0 {
			t.Errorf("%s: expected syntax errors", str)
		}
		checkLeaves(t, mod)
	}
}

func TestParseUnclosedComment(t *testing.T) {
	tests := []struct {
		Input string
		Count int
	}{
		{Input: "(: unclosed", Count: 1},
		{Input: "1 + 2 (: unclosed (: nested :)", Count: 1},
		{Input: "(: closed :) 1", Count: 0},
		{Input: "<a>(: text</a>", Count: 0},
	}
	for _, c := range tests {
		mod := Parse(c.Input)
		var count int
		for _, err := range mod.Errors() {
			var e SyntaxError
			if !errors.As(err, &e) || e.Code != CodeGenericError {
				continue
			}
			if strings.Contains(e.Cause, "unterminated comment") {
				count++
			}
		}
		if count != c.Count {
			t.Errorf("%s: unterminated comment errors mismatched! want %d, got %d (%v)", c.Input, c.Count, count, mod.Errors())
		}
		checkLeaves(t, mod)
	}
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		Input   string
		Dialect Dialect
		Kind    Kind
		Found   bool
	}{
		{
			Input:   "insert node <a/> into $doc",
			Dialect: DialectW3C,
			Kind:    KindInsertExpr,
		},
		{
			Input:   "insert node <a/> into $doc",
			Dialect: UpdateFacility,
			Kind:    KindInsertExpr,
			Found:   true,
		},
		{
			Input:   "$a contains text 'x'",
			Dialect: DialectW3C,
			Kind:    KindFTContainsExpr,
		},
		{
			Input:   "while (true()) { 1 }",
			Dialect: DialectW3C,
			Kind:    KindWhileExpr,
		},
		{
			Input:   "while (true()) { 1 }",
			Dialect: Scripting,
			Kind:    KindWhileExpr,
			Found:   true,
		},
		{
			Input:   "object-node { 'a': 1 }",
			Dialect: MarkLogic,
			Kind:    KindMapNodeConstructor,
			Found:   true,
		},
	}
	for _, c := range tests {
		mod := Parse(c.Input, WithDialect(c.Dialect))
		got := findKind(&mod.Node, c.Kind) != nil
		if got != c.Found {
			t.Errorf("%s (%s): %s found = %t, want %t", c.Input, c.Dialect, c.Kind, got, c.Found)
		}
	}
}

func TestParseElvisDialect(t *testing.T) {
	tests := []struct {
		Dialect Dialect
		Valid   bool
	}{
		{Dialect: BaseX, Valid: true},
		{Dialect: DialectAll, Valid: true},
		{Dialect: Saxon},
		{Dialect: DialectW3C},
	}
	for _, c := range tests {
		mod := Parse("$a ?: $b", WithDialect(c.Dialect))
		found := findKind(&mod.Node, KindElvisExpr) != nil
		if found != c.Valid {
			t.Errorf("%s: ElvisExpr found = %t, want %t", c.Dialect, found, c.Valid)
		}
		var code string
		for _, err := range mod.Errors() {
			var e SyntaxError
			if errors.As(err, &e) {
				code = e.Code
				break
			}
		}
		switch {
		case c.Valid && code != "":
			t.Errorf("%s: unexpected errors: %v", c.Dialect, mod.Errors())
		case !c.Valid && code != CodeGenericError:
			t.Errorf("%s: expected %s error, got %v", c.Dialect, CodeGenericError, mod.Errors())
		}
	}
}

func TestParseTransaction(t *testing.T) {
	mod := Parse("xquery version '1.0-ml'; 1; xquery version '1.0-ml'; 2", WithDialect(MarkLogic))
	if errs := mod.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	var count int
	for range mod.Units() {
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 main modules, got %d", count)
	}
	if mod.Count(KindTransactionSeparator) != 1 {
		t.Errorf("expected 1 transaction separator")
	}

	mod = Parse("1; 2", WithDialect(DialectW3C))
	if len(mod.Errors()) == 0 {
		t.Errorf("transaction separator accepted without MarkLogic")
	}

	mod = Parse("1; 2", WithDialect(Scripting))
	if errs := mod.Errors(); len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if findKind(&mod.Node, KindApplyExpr) == nil {
		t.Errorf("apply expression expected with scripting")
	}
}

func TestParseIdempotent(t *testing.T) {
	tests := []string{
		"for $x in (1, 2) return <a>{$x}</a>",
		"declare function local:f($a as xs:string?) { $a }; local:f('x')",
		"if (1) then (",
		"<a b='{1}'>",
	}
	for _, str := range tests {
		first := Debug(Parse(str))
		second := Debug(Parse(str))
		if first != second {
			t.Errorf("%s: parsing is not idempotent", str)
			t.Logf("first:  %s", first)
			t.Logf("second: %s", second)
		}
	}
}

func TestParseDepth(t *testing.T) {
	str := strings.Repeat("(", maxDepth*2) + strings.Repeat(")", maxDepth*2)
	mod := Parse(str)
	if len(mod.Errors()) == 0 {
		t.Errorf("expected an error for deeply nested expression")
	}
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		"for $x in (1, 2) return $x",
		"<a b='c'>{1}</a>",
		"``[x`{1}`]``",
		"declare namespace a = 'urn:a'; a:b()",
		"$a contains text 'x' using stemming",
		"(: comment",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, str string) {
		mod := Parse(str)
		checkLeaves(t, mod)
	})
}
