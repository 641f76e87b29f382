package main

import (
	"strconv"
	"testing"

	"github.com/midbel/xquery/version"
	"github.com/midbel/xquery/xquery"
	"github.com/tidwall/gjson"
)

func TestCheckReport(t *testing.T) {
	target := version.NewTarget(version.W3C10)
	report, err := newReport(target)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	tests := []struct {
		File  string
		Input string
		Codes []string
	}{
		{
			File:  "concat.xq",
			Input: "'a' || 'b'",
			Codes: []string{xquery.CodeUnsupportedExpr},
		},
		{
			File:  "valid.xq",
			Input: "1 + 2",
		},
		{
			File:  "broken.xq",
			Input: "1 + $x",
			Codes: []string{xquery.CodeUndefinedVar},
		},
	}
	for i, c := range tests {
		mod := xquery.Parse(c.Input)
		report, err = writeJSON(report, i, c.File, checkModule(mod, target))
		if err != nil {
			t.Fatalf("%s: fail to write report: %s", c.File, err)
		}
	}
	doc := gjson.Parse(report)
	if got := doc.Get("target").String(); got != target.String() {
		t.Errorf("target mismatched! want %s, got %s", target, got)
	}
	for i, c := range tests {
		file := doc.Get("files." + strconv.Itoa(i))
		if got := file.Get("file").String(); got != c.File {
			t.Errorf("file mismatched! want %s, got %s", c.File, got)
		}
		errs := file.Get("errors").Array()
		if len(errs) != len(c.Codes) {
			t.Errorf("%s: errors mismatched! want %d, got %d", c.File, len(c.Codes), len(errs))
			continue
		}
		for j := range errs {
			if got := errs[j].Get("code").String(); got != c.Codes[j] {
				t.Errorf("%s: code mismatched! want %s, got %s", c.File, c.Codes[j], got)
			}
		}
	}
}
