package xquery

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

const eof = -1

// Scanner splits an XQuery source into tokens. The default mode is driven by
// Scan. The parser switches to the XML and string constructor modes by
// calling the dedicated Scan methods from the position following the last
// token it consumed.
type Scanner struct {
	input string
	pos   int
	next  int
	char  rune

	Position
	keepBlanks bool
	unclosed   Token
}

func Scan(input string) *Scanner {
	scan := Scanner{
		input: input,
	}
	scan.Line = 1
	scan.read()
	return &scan
}

// Tokenize returns the tokens of the source in default mode, blanks and
// comments included. Each call to the returned sequence starts a new scan.
func Tokenize(input string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		scan := Scan(input)
		scan.KeepBlanks()
		for {
			tok := scan.Scan()
			if tok.Type == EOF || !yield(tok) {
				return
			}
		}
	}
}

func (s *Scanner) KeepBlanks() {
	s.keepBlanks = true
}

func (s *Scanner) DiscardBlanks() {
	s.keepBlanks = false
}

func (s *Scanner) Offset() int {
	return s.pos
}

func (s *Scanner) Source() string {
	return s.input
}

func (s *Scanner) Scan() Token {
	for {
		tok := s.scan()
		if s.keepBlanks || !tok.IsTrivia() {
			return tok
		}
		if tok.Type == UnclosedComment {
			s.unclosed = tok
		}
	}
}

// Unclosed returns the unterminated comment skipped while discarding blanks.
// Such a comment always extends to the end of the input.
func (s *Scanner) Unclosed() (Token, bool) {
	return s.unclosed, s.unclosed.Type == UnclosedComment
}

func (s *Scanner) scan() Token {
	tok := s.start()
	if s.done() {
		tok.Type = EOF
		return tok
	}
	switch {
	case isBlank(s.char):
		s.skipBlank()
		tok.Type = Blank
	case s.char == lparen && s.peek() == colon:
		s.scanComment(&tok)
	case s.char == apos || s.char == quote:
		s.scanLiteral(&tok)
	case s.char == 'Q' && s.peek() == lcurly:
		s.scanBracedURI(&tok)
	case isDigit(s.char) || (s.char == dot && isDigit(s.peek())):
		s.scanNumber(&tok)
	case isNameStart(s.char):
		s.scanQName(&tok)
	case s.char == langle:
		s.scanAngle(&tok)
	default:
		s.scanPunct(&tok)
	}
	return s.finish(tok)
}

func (s *Scanner) scanPunct(tok *Token) {
	k := s.peek()
	switch s.char {
	case lparen:
		tok.Type = LParen
		if k == hash {
			s.read()
			tok.Type = PragmaOpen
		}
	case rparen:
		tok.Type = RParen
	case lsquare:
		tok.Type = LSquare
	case rsquare:
		tok.Type = RSquare
	case lcurly:
		tok.Type = LCurly
	case rcurly:
		tok.Type = RCurly
		if k == backtick {
			s.read()
			tok.Type = InterpolationClose
		}
	case backtick:
		tok.Type = Invalid
		if k == backtick && s.peekAt(2) == lsquare {
			s.read()
			s.read()
			tok.Type = StringConstructorOpen
		} else if k == lcurly {
			s.read()
			tok.Type = InterpolationOpen
		}
	case comma:
		tok.Type = Comma
	case semicolon:
		tok.Type = Semicolon
	case colon:
		tok.Type = Colon
		if k == colon {
			s.read()
			tok.Type = Axis
		} else if k == equal {
			s.read()
			tok.Type = Assign
		}
	case dot:
		tok.Type = Dot
		if k == dot {
			s.read()
			tok.Type = DotDot
		}
	case slash:
		tok.Type = Slash
		if k == slash {
			s.read()
			tok.Type = DoubleSlash
		}
	case arobase:
		tok.Type = At
	case dollar:
		tok.Type = Dollar
	case hash:
		tok.Type = Hash
		if k == rparen {
			s.read()
			tok.Type = PragmaClose
		}
	case percent:
		tok.Type = Percent
	case tilde:
		tok.Type = Tilde
	case question:
		tok.Type = Question
		if k == colon && s.peekAt(2) != equal {
			s.read()
			tok.Type = Elvis
		} else if k == question {
			s.read()
			tok.Type = Ternary
		}
	case bang:
		tok.Type = Bang
		if k == equal {
			s.read()
			tok.Type = Ne
		} else if k == bang {
			s.read()
			tok.Type = TernaryElse
		}
	case equal:
		tok.Type = Eq
		if k == rangle {
			s.read()
			tok.Type = Arrow
		} else if k == bang && s.peekAt(2) == rangle {
			s.read()
			s.read()
			tok.Type = MappingArrow
		}
	case rangle:
		tok.Type = Gt
		if k == equal {
			s.read()
			tok.Type = Ge
		} else if k == rangle {
			s.read()
			tok.Type = After
		}
	case plus:
		tok.Type = Plus
	case dash:
		tok.Type = Minus
	case star:
		tok.Type = Star
	case pipe:
		tok.Type = Pipe
		if k == pipe {
			s.read()
			tok.Type = Concat
		}
	default:
		tok.Type = Invalid
	}
	s.read()
}

func (s *Scanner) scanAngle(tok *Token) {
	switch k := s.peek(); {
	case k == equal:
		s.read()
		s.read()
		tok.Type = Le
	case k == langle:
		s.read()
		s.read()
		tok.Type = Before
	case s.hasPrefix("<!--"):
		s.scanDelimited(tok, "-->", XmlComment)
	case k == question && isNameStart(s.peekAt(2)):
		s.scanDelimited(tok, "?>", XmlPI)
	default:
		s.read()
		tok.Type = Lt
	}
}

func (s *Scanner) scanComment(tok *Token) {
	s.read()
	s.read()
	tok.Type = UnclosedComment
	for depth := 1; !s.done(); {
		switch k := s.peek(); {
		case s.char == lparen && k == colon:
			s.read()
			depth++
		case s.char == colon && k == rparen:
			s.read()
			depth--
		}
		s.read()
		if depth == 0 {
			tok.Type = Comment
			break
		}
	}
}

func (s *Scanner) scanLiteral(tok *Token) {
	delim := s.char
	s.read()
	tok.Type = UnclosedLiteral
	for !s.done() {
		if s.char == delim {
			if s.peek() != delim {
				s.read()
				tok.Type = Literal
				break
			}
			s.read()
		}
		s.read()
	}
}

func (s *Scanner) scanBracedURI(tok *Token) {
	s.read()
	s.read()
	for !s.done() && s.char != rcurly && s.char != lcurly {
		s.read()
	}
	tok.Type = Invalid
	if s.char == rcurly {
		s.read()
		tok.Type = BracedURI
	}
}

func (s *Scanner) scanNumber(tok *Token) {
	tok.Type = Integer
	for isDigit(s.char) {
		s.read()
	}
	if s.char == dot && s.peek() != dot {
		tok.Type = Decimal
		s.read()
		for isDigit(s.char) {
			s.read()
		}
	}
	if s.char != 'e' && s.char != 'E' {
		return
	}
	k := s.peek()
	if (k == plus || k == dash) && isDigit(s.peekAt(2)) {
		s.read()
	} else if !isDigit(k) {
		return
	}
	s.read()
	for isDigit(s.char) {
		s.read()
	}
	tok.Type = Double
}

func (s *Scanner) scanQName(tok *Token) {
	s.scanNCName()
	if s.char == colon && isNameStart(s.peek()) {
		s.read()
		s.scanNCName()
	}
	tok.Type = Name
}

func (s *Scanner) scanNCName() {
	for isNameChar(s.char) {
		s.read()
	}
}

func (s *Scanner) scanDelimited(tok *Token, end string, kind rune) {
	for !s.done() && !s.hasPrefix(end) {
		s.read()
	}
	if s.done() {
		tok.Type = Invalid
		return
	}
	for range end {
		s.read()
	}
	tok.Type = kind
}

// AtNameStart reports whether the character following the last consumed token
// can start a name.
func (s *Scanner) AtNameStart() bool {
	return isNameStart(s.char)
}

// AtBlank reports whether the character following the last consumed token is
// a white space.
func (s *Scanner) AtBlank() bool {
	return isBlank(s.char)
}

// ScanName scans a (possibly prefixed) name at the current position without
// skipping white spaces. A zero width Missing token is returned when no name
// is found.
func (s *Scanner) ScanName() Token {
	tok := s.start()
	if !isNameStart(s.char) {
		tok.Type = Missing
		return s.finish(tok)
	}
	s.scanQName(&tok)
	return s.finish(tok)
}

// ScanTag scans the inside of a start or end tag.
func (s *Scanner) ScanTag() Token {
	s.skipBlank()
	tok := s.start()
	switch {
	case s.done():
		tok.Type = EOF
	case s.char == slash && s.peek() == rangle:
		s.read()
		s.read()
		tok.Type = EmptyTagClose
	case s.char == rangle:
		s.read()
		tok.Type = Gt
	case s.char == equal:
		s.read()
		tok.Type = Eq
	case s.char == quote || s.char == apos:
		s.read()
		tok.Type = AttrDelim
	case isNameStart(s.char):
		s.scanQName(&tok)
	default:
		s.read()
		tok.Type = Invalid
	}
	return s.finish(tok)
}

// ScanAttrValue scans the content of an attribute value delimited by delim.
func (s *Scanner) ScanAttrValue(delim rune) Token {
	tok := s.start()
	switch k := s.peek(); {
	case s.done():
		tok.Type = EOF
	case s.char == delim && k != delim:
		s.read()
		tok.Type = AttrDelim
	case s.char == lcurly && k != lcurly:
		s.read()
		tok.Type = LCurly
	case s.char == rcurly && k != rcurly:
		s.read()
		tok.Type = Invalid
	default:
		tok.Type = XmlText
		for !s.done() {
			k = s.peek()
			if s.char == delim || s.char == lcurly || s.char == rcurly {
				if k != s.char {
					break
				}
				s.read()
			}
			s.read()
		}
	}
	return s.finish(tok)
}

// ScanContent scans the content of a direct element constructor.
func (s *Scanner) ScanContent() Token {
	tok := s.start()
	switch k := s.peek(); {
	case s.done():
		tok.Type = EOF
	case s.char == langle && k == slash:
		s.read()
		s.read()
		tok.Type = EndTagOpen
	case s.hasPrefix("<!--"):
		s.scanDelimited(&tok, "-->", XmlComment)
	case s.hasPrefix("<![CDATA["):
		s.scanDelimited(&tok, "]]>", CDataSection)
	case s.char == langle && k == question:
		s.scanDelimited(&tok, "?>", XmlPI)
	case s.char == langle:
		s.read()
		tok.Type = Lt
	case s.char == lcurly && k != lcurly:
		s.read()
		tok.Type = LCurly
	case s.char == rcurly && k != rcurly:
		s.read()
		tok.Type = Invalid
	default:
		tok.Type = XmlText
		for !s.done() && s.char != langle {
			k = s.peek()
			if s.char == lcurly || s.char == rcurly {
				if k != s.char {
					break
				}
				s.read()
			}
			s.read()
		}
	}
	return s.finish(tok)
}

// ScanUntil returns all the characters up to end, which is not consumed.
func (s *Scanner) ScanUntil(end string, kind rune) Token {
	tok := s.start()
	for !s.done() && !s.hasPrefix(end) {
		s.read()
	}
	tok.Type = kind
	return s.finish(tok)
}

// ScanStringConstructor scans the content of a string constructor.
func (s *Scanner) ScanStringConstructor() Token {
	tok := s.start()
	switch {
	case s.done():
		tok.Type = EOF
	case s.hasPrefix("]``"):
		s.read()
		s.read()
		s.read()
		tok.Type = StringConstructorClose
	case s.hasPrefix("`{"):
		s.read()
		s.read()
		tok.Type = InterpolationOpen
	default:
		tok.Type = StringConstructorChars
		for !s.done() && !s.hasPrefix("]``") && !s.hasPrefix("`{") {
			s.read()
		}
	}
	return s.finish(tok)
}

// Reset moves the scanner back to the given offset.
func (s *Scanner) Reset(offset int, pos Position) {
	s.pos = offset
	s.next = offset
	s.Position = pos
	if offset <= s.unclosed.End() {
		s.unclosed = Token{}
	}
	if offset >= len(s.input) {
		s.char = eof
		return
	}
	c, z := utf8.DecodeRuneInString(s.input[offset:])
	s.char = c
	s.next = offset + z
}

func (s *Scanner) start() Token {
	return Token{
		Offset:   s.pos,
		Position: s.Position,
	}
}

func (s *Scanner) finish(tok Token) Token {
	tok.Literal = s.input[tok.Offset:s.pos]
	return tok
}

func (s *Scanner) hasPrefix(str string) bool {
	return strings.HasPrefix(s.input[s.pos:], str)
}

func (s *Scanner) skipBlank() {
	for isBlank(s.char) {
		s.read()
	}
}

func (s *Scanner) read() {
	if s.char == nl {
		s.Column = 0
		s.Line++
	}
	if s.pos < len(s.input) || s.char != eof {
		s.Column++
	}
	s.pos = s.next
	if s.pos >= len(s.input) {
		s.char = eof
		return
	}
	c, z := utf8.DecodeRuneInString(s.input[s.pos:])
	s.char = c
	s.next = s.pos + z
}

func (s *Scanner) peek() rune {
	return s.peekAt(1)
}

func (s *Scanner) peekAt(n int) rune {
	offset := s.pos
	for i := 0; i < n; i++ {
		if offset >= len(s.input) {
			return eof
		}
		_, z := utf8.DecodeRuneInString(s.input[offset:])
		offset += z
	}
	if offset >= len(s.input) {
		return eof
	}
	c, _ := utf8.DecodeRuneInString(s.input[offset:])
	return c
}

func (s *Scanner) done() bool {
	return s.char == eof
}

const (
	langle     = '<'
	rangle     = '>'
	lsquare    = '['
	rsquare    = ']'
	lparen     = '('
	rparen     = ')'
	lcurly     = '{'
	rcurly     = '}'
	colon      = ':'
	semicolon  = ';'
	quote      = '"'
	apos       = '\''
	slash      = '/'
	question   = '?'
	bang       = '!'
	equal      = '='
	dash       = '-'
	underscore = '_'
	dot        = '.'
	arobase    = '@'
	comma      = ','
	plus       = '+'
	star       = '*'
	percent    = '%'
	pipe       = '|'
	dollar     = '$'
	hash       = '#'
	tilde      = '~'
	backtick   = '`'
	space      = ' '
	tab        = '\t'
	nl         = '\n'
	cr         = '\r'
)

func isBlank(c rune) bool {
	return c == space || c == tab || c == nl || c == cr
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isNameStart(c rune) bool {
	return c == underscore || unicode.IsLetter(c)
}

func isNameChar(c rune) bool {
	return isNameStart(c) || unicode.IsDigit(c) || c == dash || c == dot ||
		unicode.Is(unicode.Mn, c) || c == 0xB7
}
