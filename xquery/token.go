package xquery

import (
	"fmt"
)

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d]", s.Start, s.End)
}

const (
	EOF rune = -(1 + iota)
	Invalid
	Blank
	Comment
	UnclosedComment
	Name
	BracedURI
	Literal
	UnclosedLiteral
	Integer
	Decimal
	Double
	Missing
)

const (
	LParen rune = -(iota + 1000)
	RParen
	LSquare
	RSquare
	LCurly
	RCurly
	Comma
	Semicolon
	Colon
	Assign
	Axis
	Dot
	DotDot
	Slash
	DoubleSlash
	At
	Dollar
	Hash
	Percent
	Question
	Elvis
	Ternary
	TernaryElse
	Bang
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Before
	After
	Plus
	Minus
	Star
	Pipe
	Concat
	Arrow
	MappingArrow
	Tilde
	PragmaOpen
	PragmaClose
	PragmaContents
	StringConstructorOpen
	StringConstructorClose
	StringConstructorChars
	InterpolationOpen
	InterpolationClose
	EmptyTagClose
	EndTagOpen
	AttrDelim
	XmlText
	XmlComment
	XmlPI
	CDataSection
)

// Token is a lexical unit of the source. Literal always holds the raw text of
// the token, so that the span of a token is derived from its offset and the
// length of its literal.
type Token struct {
	Literal string
	Type    rune
	Offset  int
	Position
}

func (t Token) Span() Span {
	return Span{
		Start: t.Offset,
		End:   t.Offset + len(t.Literal),
	}
}

func (t Token) End() int {
	return t.Offset + len(t.Literal)
}

func (t Token) IsTrivia() bool {
	return t.Type == Blank || t.Type == Comment || t.Type == UnclosedComment
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "<eof>"
	case Invalid:
		return fmt.Sprintf("invalid(%s)", t.Literal)
	case Missing:
		return "<missing>"
	case Blank:
		return "<blank>"
	case Comment:
		return fmt.Sprintf("comment(%s)", t.Literal)
	case UnclosedComment:
		return fmt.Sprintf("unclosed-comment(%s)", t.Literal)
	case Name:
		return fmt.Sprintf("name(%s)", t.Literal)
	case BracedURI:
		return fmt.Sprintf("braced-uri(%s)", t.Literal)
	case Literal:
		return fmt.Sprintf("literal(%s)", t.Literal)
	case UnclosedLiteral:
		return fmt.Sprintf("unclosed-literal(%s)", t.Literal)
	case Integer:
		return fmt.Sprintf("integer(%s)", t.Literal)
	case Decimal:
		return fmt.Sprintf("decimal(%s)", t.Literal)
	case Double:
		return fmt.Sprintf("double(%s)", t.Literal)
	case PragmaContents:
		return fmt.Sprintf("pragma-contents(%s)", t.Literal)
	case StringConstructorChars:
		return fmt.Sprintf("string-chars(%s)", t.Literal)
	case XmlText:
		return fmt.Sprintf("xml-text(%s)", t.Literal)
	case XmlComment:
		return fmt.Sprintf("xml-comment(%s)", t.Literal)
	case XmlPI:
		return fmt.Sprintf("xml-pi(%s)", t.Literal)
	case CDataSection:
		return fmt.Sprintf("cdata(%s)", t.Literal)
	case AttrDelim:
		return fmt.Sprintf("attr-delimiter(%s)", t.Literal)
	}
	if s, ok := punctuations[t.Type]; ok {
		return s
	}
	return "<unknown>"
}

var punctuations = map[rune]string{
	LParen:                 "<begin-group>",
	RParen:                 "<end-group>",
	LSquare:                "<begin-square>",
	RSquare:                "<end-square>",
	LCurly:                 "<begin-curly>",
	RCurly:                 "<end-curly>",
	Comma:                  "<comma>",
	Semicolon:              "<semicolon>",
	Colon:                  "<colon>",
	Assign:                 "<assignment>",
	Axis:                   "<axis>",
	Dot:                    "<current-item>",
	DotDot:                 "<parent-node>",
	Slash:                  "<current-level>",
	DoubleSlash:            "<any-level>",
	At:                     "<attribute>",
	Dollar:                 "<variable>",
	Hash:                   "<hash>",
	Percent:                "<annotation>",
	Question:               "<question>",
	Elvis:                  "<elvis>",
	Ternary:                "<ternary>",
	TernaryElse:            "<ternary-else>",
	Bang:                   "<simple-map>",
	Eq:                     "<equal>",
	Ne:                     "<not-equal>",
	Lt:                     "<lesser-than>",
	Le:                     "<lesser-eq>",
	Gt:                     "<greater-than>",
	Ge:                     "<greater-eq>",
	Before:                 "<before>",
	After:                  "<after>",
	Plus:                   "<add>",
	Minus:                  "<subtract>",
	Star:                   "<star>",
	Pipe:                   "<union>",
	Concat:                 "<concat>",
	Arrow:                  "<arrow>",
	MappingArrow:           "<mapping-arrow>",
	Tilde:                  "<tilde>",
	PragmaOpen:             "<begin-pragma>",
	PragmaClose:            "<end-pragma>",
	StringConstructorOpen:  "<begin-string-constructor>",
	StringConstructorClose: "<end-string-constructor>",
	InterpolationOpen:      "<begin-interpolation>",
	InterpolationClose:     "<end-interpolation>",
	EmptyTagClose:          "<empty-tag-close>",
	EndTagOpen:             "<end-tag-open>",
}
