package xquery

import (
	"testing"

	"github.com/midbel/xquery/xdm"
)

func TestAttributes(t *testing.T) {
	tests := []struct {
		Input  string
		Names  []string
		Values []string
	}{
		{
			Input:  "<a one='1' two='2'>{attribute three{'3'}, attribute four{'4'}}</a>",
			Names:  []string{"one", "two", "three", "four"},
			Values: []string{"1", "2"},
		},
		{
			Input: "<a>{attribute three{'3'}}<b/>{attribute four{'4'}}</a>",
			Names: []string{"three", "four"},
		},
		{
			Input:  "<a xmlns='urn:a' xmlns:p='urn:p' p:one='&lt;1&gt;' two=\"a \"\"b\"\" {{c}}\"/>",
			Names:  []string{"p:one", "two"},
			Values: []string{"<1>", `a "b" {c}`},
		},
		{
			Input: "element a { attribute one {1}, 'text', attribute two {2} }",
			Names: []string{"one", "two"},
		},
	}
	for _, c := range tests {
		mod := Parse(c.Input)
		if errs := mod.Errors(); len(errs) > 0 {
			t.Errorf("%s: unexpected errors: %v", c.Input, errs)
			continue
		}
		elem := findKind(&mod.Node, KindDirElemConstructor)
		if elem == nil {
			elem = findKind(&mod.Node, KindCompElemConstructor)
		}
		if elem == nil {
			t.Errorf("%s: no element constructor found", c.Input)
			continue
		}
		attrs := Attributes(elem)
		if len(attrs) != len(c.Names) {
			t.Errorf("%s: expected %d attributes, got %d", c.Input, len(c.Names), len(attrs))
			continue
		}
		for i, a := range attrs {
			if got := a.Name.QualifiedName(); got != c.Names[i] {
				t.Errorf("%s: attribute %d: want %s, got %s", c.Input, i, c.Names[i], got)
			}
			if i < len(c.Values) {
				if a.Value == nil {
					t.Errorf("%s: attribute %s should have a value", c.Input, c.Names[i])
					continue
				}
				if a.Value.Value != c.Values[i] {
					t.Errorf("%s: attribute %s: want value %q, got %q", c.Input, c.Names[i], c.Values[i], a.Value.Value)
				}
				if !a.Value.Type.Equal(xdm.UntypedAtomic) {
					t.Errorf("%s: attribute %s should be untyped", c.Input, c.Names[i])
				}
			} else if a.Value != nil {
				t.Errorf("%s: computed attribute %s should not have a value", c.Input, c.Names[i])
			}
		}
	}
}
