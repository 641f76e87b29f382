package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/midbel/cli"
	"github.com/midbel/xquery/literal"
)

var unescapeCmd = cli.Command{
	Name:    "unescape",
	Summary: "decode a xquery string literal and print the offsets of the decoded text in the literal",
	Handler: &UnescapeCmd{},
}

type UnescapeCmd struct {
	Offsets bool
}

func (c *UnescapeCmd) Run(args []string) error {
	set := cli.NewFlagSet("unescape")
	set.BoolVar(&c.Offsets, "offsets", false, "print the offset in the literal of each decoded byte")
	if err := set.Parse(args); err != nil {
		return err
	}
	for _, host := range set.Args() {
		var (
			esc = literal.NewEscaper(host)
			rng = literal.Relevant(host)
			str strings.Builder
		)
		if !esc.Decode(rng, &str) {
			return fmt.Errorf("%s: invalid literal", host)
		}
		fmt.Fprintln(os.Stdout, strconv.Quote(str.String()))
		if !c.Offsets {
			continue
		}
		decoded := str.String()
		for i := range len(decoded) {
			at := esc.OffsetInHost(i, rng)
			fmt.Fprintf(os.Stdout, "%4d %4d %q", i, at, decoded[i])
			fmt.Fprintln(os.Stdout)
		}
	}
	return nil
}
