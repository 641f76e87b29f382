package version

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		Family string
		Label  string
		Want   Version
		Err    error
	}{
		{
			Family: "saxon",
			Label:  "10",
			Want:   Saxon100,
		},
		{
			Family: "Saxon",
			Label:  "9.8",
			Want:   Saxon98,
		},
		{
			Family: "marklogic",
			Label:  "1.0-ml",
			Want:   MarkLogic10,
		},
		{
			Family: "xquery-wd",
			Label:  "1.0-20030502",
			Want:   XQueryWD20030502,
		},
		{
			Family: "oracle",
			Label:  "1.0",
			Err:    ErrProduct,
		},
		{
			Family: "basex",
			Label:  "1.0",
			Err:    ErrVersion,
		},
	}
	for _, c := range tests {
		got, err := Lookup(c.Family, c.Label)
		if c.Err != nil {
			if !errors.Is(err, c.Err) {
				t.Errorf("%s/%s: expected error %s, got %v", c.Family, c.Label, c.Err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s/%s: unexpected error: %s", c.Family, c.Label, err)
			continue
		}
		if !got.Equal(c.Want) {
			t.Errorf("%s/%s: versions mismatched! want %s, got %s", c.Family, c.Label, c.Want, got)
		}
	}
}

func TestParse(t *testing.T) {
	v, err := Parse("exist-db/4.0")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !v.Equal(ExistDB40) {
		t.Errorf("versions mismatched! want %s, got %s", ExistDB40, v)
	}
	if _, err := Parse("saxon"); !errors.Is(err, ErrVersion) {
		t.Errorf("expected version error, got %v", err)
	}
}

func TestVersionsOrdered(t *testing.T) {
	list := Versions(FamilySaxon)
	if len(list) == 0 {
		t.Fatalf("no saxon versions registered")
	}
	for i := 1; i < len(list); i++ {
		if !list[i-1].Before(list[i]) {
			t.Errorf("%s should be before %s", list[i-1], list[i])
		}
	}
}

func TestRequirementString(t *testing.T) {
	if got := Since(Saxon100).String(); got != "Saxon 10.0" {
		t.Errorf("unexpected string: %s", got)
	}
	if got := Until(ExistDB40).String(); got != "until(eXist-db 4.0)" {
		t.Errorf("unexpected string: %s", got)
	}
}

func TestTargetSatisfies(t *testing.T) {
	empty := []Requirement{
		Since(XQueryWD20030502),
		Since(MarkLogic09),
		Until(ExistDB40),
	}
	tests := []struct {
		Product  Version
		Disabled []string
		Req      []Requirement
		Want     bool
	}{
		{
			Product: Saxon100,
			Req:     []Requirement{Since(Saxon100)},
			Want:    true,
		},
		{
			Product: Saxon99,
			Req:     []Requirement{Since(Saxon100)},
			Want:    false,
		},
		{
			Product: W3C31,
			Req:     empty,
			Want:    false,
		},
		{
			Product: MarkLogic80,
			Req:     empty,
			Want:    true,
		},
		{
			Product: ExistDB30,
			Req:     empty,
			Want:    true,
		},
		{
			Product: ExistDB50,
			Req:     []Requirement{Until(ExistDB40)},
			Want:    false,
		},
		{
			Product: W3C31,
			Req:     []Requirement{Since(XQuery30)},
			Want:    true,
		},
		{
			Product: W3C10,
			Req:     []Requirement{Since(XQuery30)},
			Want:    false,
		},
		{
			Product:  BaseX91,
			Disabled: []string{FamilyFullText},
			Req:      []Requirement{Since(FullText10)},
			Want:     false,
		},
		{
			Product: BaseX91,
			Req:     []Requirement{Since(FullText10)},
			Want:    true,
		},
		{
			Product: Saxon98,
			Req:     nil,
			Want:    true,
		},
	}
	for _, c := range tests {
		target := NewTarget(c.Product, c.Disabled...)
		if got := target.SatisfiesAny(c.Req); got != c.Want {
			t.Errorf("%s: %v: want %t, got %t", c.Product, c.Req, c.Want, got)
		}
	}
}

func TestNamespaces(t *testing.T) {
	ns := Namespaces(FamilySaxon)
	if ns["saxon"] != "http://saxon.sf.net/" {
		t.Errorf("saxon prefix not bound")
	}
	ns["saxon"] = "changed"
	if Namespaces(FamilySaxon)["saxon"] == "changed" {
		t.Errorf("registry should not be mutated through returned map")
	}
}
