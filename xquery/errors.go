package xquery

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax     = errors.New("syntax error")
	ErrUnbound    = errors.New("unbound prefix")
	ErrUndefined  = errors.New("undefined reference")
	ErrConformity = errors.New("unsupported syntax")
)

const (
	CodeGenericError    = "XPST0003"
	CodeUnboundPrefix   = "XPST0081"
	CodeUndefinedVar    = "XPST0008"
	CodeUndefinedFunc   = "XPST0017"
	CodeUnsupportedExpr = "XQST0031"
)

type SyntaxError struct {
	Code  string
	Expr  string
	Cause string
	Span
	Position
}

func (e SyntaxError) Error() string {
	if e.Expr == "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Position, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s: %s", e.Code, e.Position, e.Expr, e.Cause)
}

func (e SyntaxError) Unwrap() error {
	switch e.Code {
	case CodeUnboundPrefix:
		return ErrUnbound
	case CodeUndefinedVar, CodeUndefinedFunc:
		return ErrUndefined
	case CodeUnsupportedExpr:
		return ErrConformity
	default:
		return ErrSyntax
	}
}
