package main

import (
	"fmt"
	"os"

	"github.com/midbel/cli"
	"github.com/midbel/xquery/casing"
	"github.com/midbel/xquery/xquery"
)

var dumpCmd = cli.Command{
	Name:    "dump",
	Alias:   []string{"ast"},
	Summary: "print the syntax tree of a xquery module",
	Handler: &DumpCmd{},
}

type DumpCmd struct {
	Xml    bool
	Indent int
	Case   string
	ParserOptions
}

func (c *DumpCmd) Run(args []string) error {
	set := cli.NewFlagSet("dump")
	set.BoolVar(&c.Xml, "xml", false, "print the syntax tree as a xml document")
	set.IntVar(&c.Indent, "indent", 2, "number of spaces used to indent xml output")
	set.StringVar(&c.Case, "case", "", "case family of element names in xml output (snake, kebab, camel)")
	set.StringVar(&c.Config, "config", "", "configuration file")
	set.StringVar(&c.Dialect, "dialect", "", "comma separated list of dialects to recognize")
	set.BoolVar(&c.Trace, "trace", false, "trace the parser rules")
	if err := set.Parse(args); err != nil {
		return err
	}
	_, options, err := c.setup()
	if err != nil {
		return err
	}
	mod, err := parseModule(set.Arg(0), options)
	if err != nil {
		return err
	}
	if c.Xml {
		ct, err := casing.Parse(c.Case)
		if err != nil {
			return err
		}
		doc := treeDocument(mod, ct)
		doc.Indent(c.Indent)
		if _, err := doc.WriteTo(os.Stdout); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(os.Stdout, xquery.Debug(mod))
	}
	printErrors(os.Stderr, mod)
	if len(mod.Errors()) > 0 {
		return errFail
	}
	return nil
}
