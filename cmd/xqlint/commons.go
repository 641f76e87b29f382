package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/midbel/xquery/config"
	"github.com/midbel/xquery/xquery"
)

// ParserOptions are shared by the commands parsing xquery modules.
type ParserOptions struct {
	Config  string
	Dialect string
	Trace   bool
}

// setup returns the configuration and the parser options selected on the
// command line. Without configuration file every dialect is recognized.
func (o ParserOptions) setup() (config.Config, []xquery.Option, error) {
	var (
		cfg     = config.Default()
		dialect = xquery.DialectAll
		err     error
	)
	if o.Config != "" {
		cfg, err = config.Load(o.Config)
		if err != nil {
			return cfg, nil, err
		}
		dialect = cfg.Dialect
	}
	if o.Dialect != "" {
		dialect, err = parseDialects(o.Dialect)
		if err != nil {
			return cfg, nil, err
		}
	}
	options := []xquery.Option{
		xquery.WithDialect(dialect),
	}
	if o.Trace {
		options = append(options, xquery.WithTracer(xquery.TraceStderr()))
	}
	return cfg, options, nil
}

func parseDialects(str string) (xquery.Dialect, error) {
	var dialect xquery.Dialect
	for _, name := range strings.Split(str, ",") {
		d, err := xquery.ParseDialect(name)
		if err != nil {
			return 0, err
		}
		dialect |= d
	}
	return dialect, nil
}

func parseModule(file string, options []xquery.Option) (*xquery.Module, error) {
	if file == "" || file == "-" {
		return xquery.ParseReader(os.Stdin, options...)
	}
	return xquery.ParseFile(file, options...)
}

func readSource(file string) (string, error) {
	var (
		buf []byte
		err error
	)
	if file == "" || file == "-" {
		buf, err = io.ReadAll(os.Stdin)
	} else {
		buf, err = os.ReadFile(file)
	}
	return string(buf), err
}

func printErrors(w io.Writer, mod *xquery.Module) {
	for _, err := range mod.Errors() {
		if mod.File() != "" {
			fmt.Fprintf(w, "%s: ", mod.File())
		}
		fmt.Fprintln(w, err)
	}
}
