package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/midbel/cli"
	"github.com/midbel/xquery/version"
	"github.com/midbel/xquery/xquery"
	"github.com/tidwall/sjson"
)

var checkCmd = cli.Command{
	Name:    "check",
	Alias:   []string{"lint"},
	Summary: "check that xquery modules are supported by a xquery processor",
	Handler: &CheckCmd{},
}

type CheckCmd struct {
	Product  string
	Json     bool
	FailFast bool
	ParserOptions
}

var (
	fileStyle  = lipgloss.NewStyle().Bold(true)
	codeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	posStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	exprStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	validStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func (c *CheckCmd) Run(args []string) error {
	set := cli.NewFlagSet("check")
	set.StringVar(&c.Product, "product", "", "product and version to check against (eg: saxon/10.0)")
	set.BoolVar(&c.Json, "json", false, "print findings as json")
	set.BoolVar(&c.FailFast, "fail-fast", false, "stop checking files as soon as first error is encountered")
	set.StringVar(&c.Config, "config", "", "configuration file")
	set.StringVar(&c.Dialect, "dialect", "", "comma separated list of dialects to recognize")
	set.BoolVar(&c.Trace, "trace", false, "trace the parser rules")
	if err := set.Parse(args); err != nil {
		return err
	}
	cfg, options, err := c.setup()
	if err != nil {
		return err
	}
	target := cfg.Target
	if c.Product != "" {
		product, err := version.Parse(c.Product)
		if err != nil {
			return err
		}
		target = version.NewTarget(product)
	}
	files := set.Args()
	if len(files) == 0 {
		files = append(files, "-")
	}
	report, err := newReport(target)
	if err != nil {
		return err
	}
	var failed bool
	for i, f := range files {
		mod, err := parseModule(f, options)
		if err != nil {
			return err
		}
		list := checkModule(mod, target)
		if c.Json {
			report, err = writeJSON(report, i, f, list)
			if err != nil {
				return err
			}
		} else {
			writeText(os.Stdout, f, list)
		}
		if len(list) > 0 {
			failed = true
			if c.FailFast {
				break
			}
		}
	}
	if c.Json {
		fmt.Fprintln(os.Stdout, report)
	}
	if failed {
		return errFail
	}
	return nil
}

// checkModule collects the syntax errors, the static errors and the
// unsupported constructs of a module ordered by their position.
func checkModule(mod *xquery.Module, target version.Target) []xquery.SyntaxError {
	var list []xquery.SyntaxError
	for _, err := range mod.Errors() {
		var e xquery.SyntaxError
		if errors.As(err, &e) {
			list = append(list, e)
		}
	}
	list = append(list, xquery.Diagnose(mod)...)
	list = append(list, xquery.Check(mod, target)...)
	slices.SortStableFunc(list, func(a, b xquery.SyntaxError) int {
		return a.Start - b.Start
	})
	return list
}

func writeText(w io.Writer, file string, list []xquery.SyntaxError) {
	if len(list) == 0 {
		fmt.Fprintln(w, fileStyle.Render(file), validStyle.Render("ok"))
		return
	}
	for _, e := range list {
		fmt.Fprint(w, fileStyle.Render(file), posStyle.Render(":"+e.Position.String()), " ")
		fmt.Fprint(w, codeStyle.Render(e.Code), " ")
		if e.Expr != "" {
			fmt.Fprint(w, exprStyle.Render(strconv.Quote(e.Expr)), " ")
		}
		fmt.Fprintln(w, e.Cause)
	}
}

func newReport(target version.Target) (string, error) {
	return sjson.Set(`{}`, "target", target.String())
}

func writeJSON(report string, index int, file string, list []xquery.SyntaxError) (string, error) {
	var (
		prefix = "files." + strconv.Itoa(index)
		err    error
	)
	if report, err = sjson.Set(report, prefix+".file", file); err != nil {
		return report, err
	}
	if report, err = sjson.SetRaw(report, prefix+".errors", "[]"); err != nil {
		return report, err
	}
	for i, e := range list {
		values := map[string]any{
			"code":   e.Code,
			"expr":   e.Expr,
			"cause":  e.Cause,
			"line":   e.Line,
			"column": e.Column,
			"start":  e.Start,
			"end":    e.End,
		}
		for k, v := range values {
			path := fmt.Sprintf("%s.errors.%d.%s", prefix, i, k)
			if report, err = sjson.Set(report, path, v); err != nil {
				return report, err
			}
		}
	}
	return report, nil
}
