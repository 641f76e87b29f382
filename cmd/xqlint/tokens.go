package main

import (
	"fmt"
	"os"

	"github.com/midbel/cli"
	"github.com/midbel/xquery/xquery"
)

var tokensCmd = cli.Command{
	Name:    "tokens",
	Summary: "print the tokens of a xquery module",
	Handler: &TokensCmd{},
}

type TokensCmd struct {
	Blank bool
}

func (c *TokensCmd) Run(args []string) error {
	set := cli.NewFlagSet("tokens")
	set.BoolVar(&c.Blank, "blank", false, "print blanks and comments")
	if err := set.Parse(args); err != nil {
		return err
	}
	src, err := readSource(set.Arg(0))
	if err != nil {
		return err
	}
	var invalid int
	for tok := range xquery.Tokenize(src) {
		if tok.IsTrivia() && !c.Blank {
			continue
		}
		if tok.Type == xquery.Invalid {
			invalid++
		}
		fmt.Fprintf(os.Stdout, "%-8s %-12s %s", tok.Position, tok.Span(), tok)
		fmt.Fprintln(os.Stdout)
	}
	if invalid > 0 {
		return errFail
	}
	return nil
}
