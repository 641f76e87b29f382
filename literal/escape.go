// Package literal decodes XQuery string literals and maps offsets of the
// decoded text back to the raw source.
package literal

import (
	"html"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	apos      = '\''
	quote     = '"'
	ampersand = '&'
	semicolon = ';'
	hash      = '#'
)

type Range struct {
	Start int
	End   int
}

func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) valid(host string) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= len(host)
}

// Relevant returns the part of a literal between its delimiters. An
// unterminated literal extends to the end of the host.
func Relevant(host string) Range {
	if host == "" {
		return Range{}
	}
	q := host[0]
	if q != apos && q != quote {
		return Range{Start: 0, End: len(host)}
	}
	for i := 1; i < len(host); i++ {
		if host[i] != q {
			continue
		}
		if i+1 < len(host) && host[i+1] == q {
			i++
			continue
		}
		return Range{Start: 1, End: i}
	}
	return Range{Start: 1, End: len(host)}
}

// Escaper decodes one host literal. Offsets recorded by the last call to
// Decode are used by OffsetInHost.
type Escaper struct {
	host    string
	delim   byte
	rng     Range
	decoded bool
	offsets []int
}

func NewEscaper(host string) *Escaper {
	e := Escaper{
		host: host,
	}
	if host != "" && (host[0] == apos || host[0] == quote) {
		e.delim = host[0]
	}
	return &e
}

func (e *Escaper) Host() string {
	return e.host
}

// Decode writes the decoded content of r into out. Malformed references are
// written verbatim. It fails only when r is not inside the host.
func (e *Escaper) Decode(r Range, out *strings.Builder) bool {
	if !r.valid(e.host) {
		return false
	}
	e.rng = r
	e.decoded = true
	e.offsets = e.offsets[:0]

	for i := r.Start; i < r.End; {
		c := e.host[i]
		switch {
		case e.delim != 0 && c == e.delim && i+1 < r.End && e.host[i+1] == e.delim:
			e.emit(out, string(c), i)
			i += 2
		case c == ampersand:
			n, text, ok := reference(e.host[i:r.End])
			if ok {
				e.emit(out, text, i)
			} else {
				e.copy(out, i, n)
			}
			i += n
		default:
			_, z := utf8.DecodeRuneInString(e.host[i:r.End])
			e.copy(out, i, z)
			i += z
		}
	}
	return true
}

// OffsetInHost maps an offset of the decoded text to the offset in the host
// where the sequence producing it starts. It returns -1 outside of the
// decoded text.
func (e *Escaper) OffsetInHost(offset int, r Range) int {
	if !e.decoded || e.rng != r {
		var str strings.Builder
		if !e.Decode(r, &str) {
			return -1
		}
	}
	if offset < 0 || offset >= len(e.offsets) {
		return -1
	}
	return e.offsets[offset]
}

func (e *Escaper) emit(out *strings.Builder, text string, at int) {
	out.WriteString(text)
	for range len(text) {
		e.offsets = append(e.offsets, at)
	}
}

func (e *Escaper) copy(out *strings.Builder, at, n int) {
	text := e.host[at : at+n]
	out.WriteString(text)
	for i := 0; i < len(text); {
		_, z := utf8.DecodeRuneInString(text[i:])
		for range z {
			e.offsets = append(e.offsets, at+i)
		}
		i += z
	}
}

// Unescape decodes the content of a complete literal, delimiters excluded.
func Unescape(host string) string {
	var (
		str strings.Builder
		esc = NewEscaper(host)
	)
	esc.Decode(Relevant(host), &str)
	return str.String()
}

// reference decodes the entity or character reference at the start of str.
// It returns the number of bytes consumed and whether the reference was
// well formed.
func reference(str string) (int, string, bool) {
	if len(str) > 1 && str[1] == hash {
		return charReference(str)
	}
	j := 1
	for j < len(str) && isNameChar(str[j]) {
		j++
	}
	if j >= len(str) || str[j] != semicolon {
		return j, "", false
	}
	if j == 1 {
		return j + 1, "", false
	}
	name := str[:j+1]
	text := html.UnescapeString(name)
	if text == name || (strings.HasSuffix(text, ";") && name != "&semi;") {
		return j + 1, "", false
	}
	return j + 1, text, true
}

func charReference(str string) (int, string, bool) {
	var (
		j    = 2
		base = 10
	)
	if j < len(str) && str[j] == 'x' {
		base = 16
		j++
	}
	start := j
	for j < len(str) && isDigit(str[j], base) {
		j++
	}
	if j == start || j >= len(str) || str[j] != semicolon {
		return j, "", false
	}
	n, err := strconv.ParseUint(str[start:j], base, 32)
	if err != nil {
		return j + 1, "", false
	}
	r := rune(n)
	if r == 0 || !utf8.ValidRune(r) {
		return j + 1, "", false
	}
	return j + 1, string(r), true
}

func isNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isDigit(c byte, base int) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	if base != 16 {
		return false
	}
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
