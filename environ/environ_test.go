package environ

import (
	"errors"
	"slices"
	"testing"
)

func TestEnviron(t *testing.T) {
	root := From(map[string]string{
		"xs": "http://www.w3.org/2001/XMLSchema",
		"fn": "http://www.w3.org/2005/xpath-functions",
	})
	inner := Enclosed(root)
	inner.Define("fn", "urn:override")
	inner.Define("a", "urn:a")

	tests := []struct {
		Ident string
		Want  string
		Err   error
	}{
		{Ident: "xs", Want: "http://www.w3.org/2001/XMLSchema"},
		{Ident: "fn", Want: "urn:override"},
		{Ident: "a", Want: "urn:a"},
		{Ident: "b", Err: ErrUndefined},
	}
	for _, c := range tests {
		got, err := inner.Resolve(c.Ident)
		if c.Err != nil {
			if !errors.Is(err, c.Err) {
				t.Errorf("%s: expected error %s, got %v", c.Ident, c.Err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.Ident, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%s: values mismatched! want %s, got %s", c.Ident, c.Want, got)
		}
	}
	if v, _ := root.Lookup("fn"); v != "http://www.w3.org/2005/xpath-functions" {
		t.Errorf("inner definition leaked into parent environment")
	}
	names := inner.Names()
	if !slices.Equal(names, []string{"a", "fn", "xs"}) {
		t.Errorf("unexpected names %v", names)
	}
	if inner.Len() != 2 {
		t.Errorf("expected 2 local definitions, got %d", inner.Len())
	}
}

func TestEmpty(t *testing.T) {
	env := Empty[int]()
	if _, ok := env.Lookup("x"); ok {
		t.Errorf("empty environment should not resolve anything")
	}
	env.Define("x", 1)
	if v, err := env.Resolve("x"); err != nil || v != 1 {
		t.Errorf("unexpected result %d, %v", v, err)
	}
}
