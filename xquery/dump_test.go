package xquery

import (
	"testing"
)

func TestDebug(t *testing.T) {
	tests := []struct {
		Input string
		Want  string
	}{
		{
			Input: "1",
			Want:  `Module[0:1](MainModule[0:1](QueryBody[0:1](IntegerLiteral[0:1]("1"))))`,
		},
		{
			Input: "$a",
			Want:  `Module[0:2](MainModule[0:2](QueryBody[0:2](VarRef[0:2]("$", QName[1:2]("a")))))`,
		},
		{
			Input: "1 +",
			Want:  `Module[0:3](MainModule[0:3](QueryBody[0:3](AdditiveExpr[0:3](IntegerLiteral[0:1]("1"), "+", Error[3:3]()))))`,
		},
	}
	for _, c := range tests {
		got := Debug(Parse(c.Input))
		if got != c.Want {
			t.Errorf("%s: dump mismatched", c.Input)
			t.Logf("want: %s", c.Want)
			t.Logf("got:  %s", got)
		}
	}
}
