package environ

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var ErrUndefined = errors.New("undefined identifier")

// Environ is a chain of lexical environments. Definitions in an inner
// environment shadow the ones of its parents.
type Environ[T any] interface {
	Resolve(string) (T, error)
	Lookup(string) (T, bool)
	Define(string, T)
	Names() []string
	Len() int
}

type Env[T any] struct {
	values map[string]T
	parent Environ[T]
}

func Empty[T any]() Environ[T] {
	return Enclosed[T](nil)
}

func Enclosed[T any](parent Environ[T]) Environ[T] {
	e := Env[T]{
		values: make(map[string]T),
		parent: parent,
	}
	return &e
}

// From creates a root environment holding a copy of the given values.
func From[T any](values map[string]T) Environ[T] {
	e := Env[T]{
		values: maps.Clone(values),
		parent: nil,
	}
	if e.values == nil {
		e.values = make(map[string]T)
	}
	return &e
}

func (e *Env[T]) Len() int {
	return len(e.values)
}

// Names returns the identifiers visible from this environment, each listed
// once and sorted.
func (e *Env[T]) Names() []string {
	names := slices.Collect(maps.Keys(e.values))
	if e.parent != nil {
		for _, n := range e.parent.Names() {
			if _, ok := e.values[n]; !ok {
				names = append(names, n)
			}
		}
	}
	slices.Sort(names)
	return names
}

func (e *Env[T]) Define(ident string, value T) {
	e.values[ident] = value
}

func (e *Env[T]) Lookup(ident string) (T, bool) {
	value, ok := e.values[ident]
	if ok {
		return value, ok
	}
	if e.parent != nil {
		return e.parent.Lookup(ident)
	}
	return value, false
}

func (e *Env[T]) Resolve(ident string) (T, error) {
	value, ok := e.Lookup(ident)
	if !ok {
		return value, fmt.Errorf("%s: %w", ident, ErrUndefined)
	}
	return value, nil
}

func (e *Env[T]) Unwrap() Environ[T] {
	if e.parent == nil {
		return e
	}
	return e.parent
}
