// Package casing rewrites identifiers like the names of syntax tree kinds
// into another case family.
package casing

import (
	"fmt"
	"strings"
	"unicode"
)

type CaseType int8

const (
	DefaultCase CaseType = -(1 << iota)
	SnakeCase
	KebabCase
	CamelCase
	PascalCase
)

func Parse(name string) (CaseType, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return DefaultCase, nil
	case "snake":
		return SnakeCase, nil
	case "kebab":
		return KebabCase, nil
	case "camel":
		return CamelCase, nil
	case "pascal":
		return PascalCase, nil
	default:
		return DefaultCase, fmt.Errorf("%s: unknown case type", name)
	}
}

func To(to CaseType, str string) string {
	switch to {
	case SnakeCase:
		str = ToSnake(str)
	case KebabCase:
		str = ToKebab(str)
	case CamelCase:
		str = ToCamel(str)
	case PascalCase:
		str = ToPascal(str)
	default:
	}
	return str
}

func ToSnake(str string) string {
	return strings.Join(lowerWords(str), string(underscore))
}

func ToKebab(str string) string {
	return strings.Join(lowerWords(str), string(hyphen))
}

func ToPascal(str string) string {
	var parts []string
	for _, w := range lowerWords(str) {
		parts = append(parts, title(w))
	}
	return strings.Join(parts, "")
}

func ToCamel(str string) string {
	parts := lowerWords(str)
	for i := 1; i < len(parts); i++ {
		parts[i] = title(parts[i])
	}
	return strings.Join(parts, "")
}

const (
	hyphen     = '-'
	space      = ' '
	underscore = '_'
)

func isSep(r rune) bool {
	return r == hyphen || r == underscore || r == space
}

func title(str string) string {
	rs := []rune(str)
	if len(rs) > 0 {
		rs[0] = unicode.ToUpper(rs[0])
	}
	return string(rs)
}

func lowerWords(str string) []string {
	words := splitWords(str)
	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	return words
}

// splitWords cuts str on separators and on case changes. A run of upper case
// letters is one word, except its last letter when a lower case letter
// follows: FLWORExpr gives FLWOR and Expr.
func splitWords(str string) []string {
	var (
		words []string
		curr  []rune
		rs    = []rune(str)
	)
	flush := func() {
		if len(curr) > 0 {
			words = append(words, string(curr))
			curr = curr[:0]
		}
	}
	for i, r := range rs {
		switch {
		case isSep(r):
			flush()
			continue
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			continue
		case unicode.IsUpper(r) && i > 0:
			prev := rs[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				flush()
			} else if unicode.IsUpper(prev) && i+1 < len(rs) && unicode.IsLower(rs[i+1]) {
				flush()
			}
		}
		curr = append(curr, r)
	}
	flush()
	return words
}
