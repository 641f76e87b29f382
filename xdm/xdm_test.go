package xdm

import (
	"testing"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		Input string
		Want  QName
		Fail  bool
	}{
		{
			Input: "fn:true",
			Want:  LexicalName("true", "fn"),
		},
		{
			Input: "local",
			Want:  LexicalName("local", ""),
		},
		{
			Input: "Q{http://www.w3.org/2001/XMLSchema}string",
			Want:  ExpandedName("string", "", NamespaceXS),
		},
		{
			Input: ":test",
			Fail:  true,
		},
		{
			Input: "Q{http://example.com",
			Fail:  true,
		},
	}
	for _, c := range tests {
		got, err := ParseName(c.Input)
		if c.Fail {
			if err == nil {
				t.Errorf("%s: expected error", c.Input)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.Input, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%s: names mismatched! want %#v, got %#v", c.Input, c.Want, got)
		}
	}
}

func TestQNameEqual(t *testing.T) {
	var (
		a = ExpandedName("string", "xs", NamespaceXS)
		b = ExpandedName("string", "xsd", NamespaceXS)
		c = LexicalName("string", "xs")
	)
	if !a.Equal(b) {
		t.Errorf("expanded names with same namespace should be equal")
	}
	if !a.Equal(c) {
		t.Errorf("lexical comparison should use prefix and local name")
	}
	if got := a.ExpandedName(); got != "Q{"+NamespaceXS+"}string" {
		t.Errorf("unexpected expanded name: %s", got)
	}
	if got := c.QualifiedName(); got != "xs:string" {
		t.Errorf("unexpected qualified name: %s", got)
	}
}

func TestOccurrence(t *testing.T) {
	tests := []struct {
		Indicator string
		Name      string
		Lower     int
		Upper     int
	}{
		{Indicator: "", Name: "xs:string", Lower: 1, Upper: 1},
		{Indicator: "?", Name: "xs:string?", Lower: 0, Upper: 1},
		{Indicator: "*", Name: "xs:string*", Lower: 0, Upper: Unbounded},
		{Indicator: "+", Name: "xs:string+", Lower: 1, Upper: Unbounded},
	}
	for _, c := range tests {
		it := Single("xs:string", ClassAtomic).WithOccurrence(c.Indicator)
		if it.Name != c.Name || it.Lower != c.Lower || it.Upper != c.Upper {
			t.Errorf("%q: unexpected item type %+v", c.Indicator, it)
		}
	}
	if e := Empty(); e.Upper != 0 || e.Class != ClassEmpty {
		t.Errorf("unexpected empty sequence type %+v", e)
	}
}

func TestTypeClass(t *testing.T) {
	if !ClassObjectNode.IsNode() {
		t.Errorf("object-node should be a node class")
	}
	if ClassMap.IsNode() {
		t.Errorf("map should not be a node class")
	}
	if !ClassModelGroup.IsSchemaComponent() || ClassElement.IsSchemaComponent() {
		t.Errorf("schema component classification mismatched")
	}
	if ClassMap.String() != "map" {
		t.Errorf("unexpected class name %s", ClassMap)
	}
}
