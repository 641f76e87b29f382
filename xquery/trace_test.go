package xquery

import (
	"bytes"
	"strings"
	"testing"
)

func TestTraceWriter(t *testing.T) {
	tests := []struct {
		Input string
		Want  []string
	}{
		{
			Input: "1",
			Want: []string{
				`msg="start parse rule" rule=module depth=1`,
				`msg="start parse rule" rule=unit depth=2`,
				`msg="done parse rule" rule=unit depth=1`,
				`msg="done parse rule" rule=module depth=0`,
			},
		},
		{
			Input: "for $x in 1 return $x",
			Want: []string{
				"rule=flwor",
				"rule=for",
			},
		},
		{
			Input: "1 +",
			Want: []string{
				"level=ERROR",
				`msg="syntax error"`,
				"count=1",
			},
		},
	}
	for _, c := range tests {
		var buf bytes.Buffer
		Parse(c.Input, WithTracer(TraceWriter(&buf)))
		out := buf.String()
		for _, w := range c.Want {
			if !strings.Contains(out, w) {
				t.Errorf("%s: %q not found in trace:\n%s", c.Input, w, out)
			}
		}
	}
}

func TestTraceDiscard(t *testing.T) {
	mod := Parse("1 + 2", WithTracer(nil))
	if errs := mod.Errors(); len(errs) > 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}
