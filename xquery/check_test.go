package xquery

import (
	"errors"
	"testing"

	"github.com/midbel/xquery/version"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		Input   string
		Release version.Version
		Count   int
	}{
		{
			Input:   "'a' || 'b'",
			Release: version.W3C10,
			Count:   1,
		},
		{
			Input:   "'a' || 'b'",
			Release: version.W3C30,
		},
		{
			Input:   "() instance of element(*:test)",
			Release: version.Saxon100,
		},
		{
			Input:   "() instance of element(*:test)",
			Release: version.Saxon99,
			Count:   1,
		},
		{
			Input:   "() instance of empty()",
			Release: version.MarkLogic09,
		},
		{
			Input:   "() instance of empty()",
			Release: version.ExistDB30,
		},
		{
			Input:   "() instance of empty()",
			Release: version.ExistDB40,
			Count:   1,
		},
		{
			Input:   "() instance of empty()",
			Release: version.W3C31,
			Count:   1,
		},
		{
			Input:   "map { 'a' := 1 }",
			Release: version.Saxon96,
		},
		{
			Input:   "map { 'a' := 1 }",
			Release: version.W3C31,
			Count:   1,
		},
		{
			Input:   "'a' || 'b', 1 otherwise 2",
			Release: version.W3C10,
			Count:   2,
		},
	}
	for _, c := range tests {
		mod := Parse(c.Input)
		errs := Check(mod, version.NewTarget(c.Release))
		if len(errs) != c.Count {
			t.Errorf("%s (%s): expected %d errors, got %d: %v", c.Input, c.Release, c.Count, len(errs), errs)
			continue
		}
		for _, err := range errs {
			if err.Code != CodeUnsupportedExpr || !errors.Is(err, ErrConformity) {
				t.Errorf("%s: unexpected error code %s", c.Input, err.Code)
			}
		}
	}
}

func TestCheckDisabledExtension(t *testing.T) {
	const input = "insert node <a/> into $doc"
	mod := Parse(input, WithDialect(UpdateFacility))

	target := version.NewTarget(version.W3C30)
	if errs := Check(mod, target); len(errs) != 0 {
		t.Errorf("update facility should be accepted: %v", errs)
	}
	target = version.NewTarget(version.W3C30, version.FamilyUpdate)
	if errs := Check(mod, target); len(errs) != 1 {
		t.Errorf("update facility should be rejected when disabled: %v", errs)
	}
}

func TestDiagnose(t *testing.T) {
	tests := []struct {
		Input string
		Codes []string
	}{
		{
			Input: "zz:y()",
			Codes: []string{CodeUnboundPrefix},
		},
		{
			Input: "$a",
			Codes: []string{CodeUndefinedVar},
		},
		{
			Input: "for $x in (1, 2) return ($x, $y)",
			Codes: []string{CodeUndefinedVar},
		},
		{
			Input: "try { 1 } catch * { $err:code }",
		},
		{
			Input: "try { 1 } catch * { $err:bogus }",
			Codes: []string{CodeUndefinedVar},
		},
		{
			Input: "$err:code",
			Codes: []string{CodeUndefinedVar},
		},
		{
			Input: "declare namespace zz = 'urn:zz'; let $v := 1 return zz:f($v)",
		},
		{
			Input: "<a xmlns:zz='urn:zz'>{ zz:b }</a>",
		},
		{
			Input: "<a xmlns:zz='urn:zz'/>, zz:b",
			Codes: []string{CodeUnboundPrefix},
		},
	}
	for _, c := range tests {
		mod := Parse(c.Input)
		errs := Diagnose(mod)
		if len(errs) != len(c.Codes) {
			t.Errorf("%s: expected %d errors, got %d: %v", c.Input, len(c.Codes), len(errs), errs)
			continue
		}
		for i := range errs {
			if errs[i].Code != c.Codes[i] {
				t.Errorf("%s: want code %s, got %s", c.Input, c.Codes[i], errs[i].Code)
			}
		}
	}
}
