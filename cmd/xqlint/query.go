package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/midbel/cli"
	"github.com/midbel/xquery/casing"
)

var queryCmd = cli.Command{
	Name:    "query",
	Summary: "select nodes of the syntax tree of a xquery module with a xpath expression",
	Handler: &QueryCmd{},
}

type QueryCmd struct {
	Noout bool
	Text  bool
	Limit int
	Case  string
	ParserOptions
}

const queryInfo = "query took %s - %d nodes matching %q"

func (q *QueryCmd) Run(args []string) error {
	set := cli.NewFlagSet("query")
	set.IntVar(&q.Limit, "limit", 0, "limit number of results returned by query")
	set.BoolVar(&q.Noout, "quiet", false, "suppress output - default is to print the result nodes")
	set.BoolVar(&q.Text, "text", false, "print only value of node")
	set.StringVar(&q.Case, "case", "", "case family of element names (snake, kebab, camel)")
	set.StringVar(&q.Config, "config", "", "configuration file")
	set.StringVar(&q.Dialect, "dialect", "", "comma separated list of dialects to recognize")
	if err := set.Parse(args); err != nil {
		return err
	}
	expr, err := xpath.Compile(set.Arg(0))
	if err != nil {
		return err
	}
	_, options, err := q.setup()
	if err != nil {
		return err
	}
	mod, err := parseModule(set.Arg(1), options)
	if err != nil {
		return err
	}
	ct, err := casing.Parse(q.Case)
	if err != nil {
		return err
	}
	str, err := treeDocument(mod, ct).WriteToString()
	if err != nil {
		return err
	}
	doc, err := xmlquery.Parse(strings.NewReader(str))
	if err != nil {
		return err
	}

	now := time.Now()
	switch res := expr.Evaluate(xmlquery.CreateXPathNavigator(doc)).(type) {
	case *xpath.NodeIterator:
		var nodes []*xmlquery.Node
		for res.MoveNext() {
			nav, ok := res.Current().(*xmlquery.NodeNavigator)
			if !ok {
				continue
			}
			nodes = append(nodes, nav.Current())
			if q.Limit > 0 && len(nodes) >= q.Limit {
				break
			}
		}
		elapsed := time.Since(now)
		if !q.Noout {
			printNodes(nodes, q.Text)
		}
		fmt.Fprintf(os.Stdout, queryInfo, elapsed, len(nodes), set.Arg(0))
		fmt.Fprintln(os.Stdout)
		if len(nodes) == 0 {
			return errFail
		}
	default:
		fmt.Fprintln(os.Stdout, res)
	}
	return nil
}

func printNodes(nodes []*xmlquery.Node, text bool) {
	for _, n := range nodes {
		if text {
			fmt.Fprintln(os.Stdout, n.InnerText())
		} else {
			fmt.Fprintln(os.Stdout, n.OutputXML(true))
		}
	}
}
