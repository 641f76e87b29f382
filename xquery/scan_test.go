package xquery

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		Input    string
		Expected []rune
	}{
		{
			Input:    "for $x in (1, 2) return $x",
			Expected: []rune{Name, Blank, Dollar, Name, Blank, Name, Blank, LParen, Integer, Comma, Blank, Integer, RParen, Blank, Name, Blank, Dollar, Name},
		},
		{
			Input:    "1 .5 1.5 1e3 1.5E-2",
			Expected: []rune{Integer, Blank, Decimal, Blank, Decimal, Blank, Double, Blank, Double},
		},
		{
			Input:    "'it''s' \"quoted\" 'open",
			Expected: []rune{Literal, Blank, Literal, Blank, UnclosedLiteral},
		},
		{
			Input:    "(: outer (: inner :) :)(: open",
			Expected: []rune{Comment, UnclosedComment},
		},
		{
			Input:    "Q{urn:test}local",
			Expected: []rune{BracedURI, Name},
		},
		{
			Input:    "xs:string fn:concat local",
			Expected: []rune{Name, Blank, Name, Blank, Name},
		},
		{
			Input:    "$x := a => b =!> c",
			Expected: []rune{Dollar, Name, Blank, Assign, Blank, Name, Blank, Arrow, Blank, Name, Blank, MappingArrow, Blank, Name},
		},
		{
			Input:    "a != b << c >> d <= e >= f",
			Expected: []rune{Name, Blank, Ne, Blank, Name, Blank, Before, Blank, Name, Blank, After, Blank, Name, Blank, Le, Blank, Name, Blank, Ge, Blank, Name},
		},
		{
			Input:    "a || b | c",
			Expected: []rune{Name, Blank, Concat, Blank, Name, Blank, Pipe, Blank, Name},
		},
		{
			Input:    "child::a/..//@b",
			Expected: []rune{Name, Axis, Name, Slash, DotDot, DoubleSlash, At, Name},
		},
		{
			Input:    "a ?: b ?? c !! d",
			Expected: []rune{Name, Blank, Elvis, Blank, Name, Blank, Ternary, Blank, Name, Blank, TernaryElse, Blank, Name},
		},
		{
			Input:    "(# ext:pragma #)",
			Expected: []rune{PragmaOpen, Blank, Name, Blank, PragmaClose},
		},
		{
			Input:    "``[",
			Expected: []rune{StringConstructorOpen},
		},
		{
			Input:    "<!-- comment --> <?pi data?>",
			Expected: []rune{XmlComment, Blank, XmlPI},
		},
		{
			Input:    "<!-- open",
			Expected: []rune{Invalid},
		},
	}
	for _, c := range tests {
		var got []rune
		for tok := range Tokenize(c.Input) {
			got = append(got, tok.Type)
		}
		if !slices.Equal(got, c.Expected) {
			t.Errorf("%s: token types mismatched", c.Input)
			t.Logf("want: %v", c.Expected)
			t.Logf("got:  %v", got)
		}
	}
}

func TestTokenizeLossless(t *testing.T) {
	tests := []string{
		"for $x in (1, 2) return $x",
		"declare namespace a = 'urn:a'; (: comment :) a:b()",
		"'unterminated",
		"1e + 2",
		"Q{urn:a",
	}
	for _, str := range tests {
		var (
			buf    strings.Builder
			offset int
		)
		for tok := range Tokenize(str) {
			if tok.Offset != offset {
				t.Errorf("%s: token %q starts at %d, want %d", str, tok.Literal, tok.Offset, offset)
			}
			buf.WriteString(tok.Literal)
			offset = tok.End()
		}
		if got := buf.String(); got != str {
			t.Errorf("tokens do not cover the source: want %q, got %q", str, got)
		}
	}
}

func TestScanContent(t *testing.T) {
	const input = "text &amp; {{x}}<![CDATA[<raw>]]><!-- c --><?pi x?>{1}</a>"
	scan := Scan(input)
	expected := []rune{XmlText, CDataSection, XmlComment, XmlPI, LCurly}
	for i, want := range expected {
		tok := scan.ScanContent()
		if tok.Type != want {
			t.Fatalf("token %d: want %d, got %d (%q)", i, want, tok.Type, tok.Literal)
		}
	}
	if tok := scan.Scan(); tok.Type != Integer {
		t.Fatalf("integer expected after enclosed expression, got %q", tok.Literal)
	}
	if tok := scan.Scan(); tok.Type != RCurly {
		t.Fatalf("'}' expected, got %q", tok.Literal)
	}
	if tok := scan.ScanContent(); tok.Type != EndTagOpen {
		t.Fatalf("end tag expected, got %q", tok.Literal)
	}
}

func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"for $x in (1, 2) return $x",
		"'it''s' || \"&amp;\"",
		"1.5e3 .5 5.",
		"(# ext:pragma content #) {}",
		"Q{urn:a}b",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, str string) {
		if !utf8.ValidString(str) {
			t.Skip()
		}
		var buf strings.Builder
		for tok := range Tokenize(str) {
			buf.WriteString(tok.Literal)
		}
		if got := buf.String(); got != str {
			t.Errorf("tokens do not cover the source: want %q, got %q", str, got)
		}
	})
}
