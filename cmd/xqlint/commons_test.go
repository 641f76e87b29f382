package main

import (
	"testing"

	"github.com/midbel/xquery/xquery"
)

func TestParseDialects(t *testing.T) {
	tests := []struct {
		Input string
		Want  xquery.Dialect
		Err   bool
	}{
		{Input: "w3c", Want: xquery.DialectW3C},
		{Input: "saxon", Want: xquery.Saxon},
		{Input: "marklogic,full-text", Want: xquery.MarkLogic | xquery.FullText},
		{Input: "all", Want: xquery.DialectAll},
		{Input: "update, scripting", Want: xquery.UpdateFacility | xquery.Scripting},
		{Input: "oracle", Err: true},
	}
	for _, c := range tests {
		got, err := parseDialects(c.Input)
		if c.Err {
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
			t.Errorf("%s: dialect mismatched! want %s, got %s", c.Input, c.Want, got)
		}
	}
}

func TestSetup(t *testing.T) {
	cfg, options, err := ParserOptions{}.setup()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(options) != 1 {
		t.Errorf("options mismatched! want 1, got %d", len(options))
	}
	if got := cfg.Target.String(); got == "" {
		t.Errorf("default target expected")
	}
	mod := xquery.Parse("1", options...)
	if mod.Dialect() != xquery.DialectAll {
		t.Errorf("dialect mismatched! want %s, got %s", xquery.DialectAll, mod.Dialect())
	}
	if _, _, err := (ParserOptions{Dialect: "oracle"}).setup(); err == nil {
		t.Errorf("unknown dialect should fail")
	}
}
