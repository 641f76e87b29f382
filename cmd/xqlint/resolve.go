package main

import (
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/midbel/cli"
	"github.com/midbel/xquery/xquery"
)

var resolveCmd = cli.Command{
	Name:    "resolve",
	Summary: "print the declarations bound to the variable and function references of a xquery module",
	Handler: &ResolveCmd{},
}

type ResolveCmd struct {
	Unresolved bool
	ParserOptions
}

var (
	refStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	unboundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (c *ResolveCmd) Run(args []string) error {
	set := cli.NewFlagSet("resolve")
	set.BoolVar(&c.Unresolved, "unresolved", false, "print only the references that can not be resolved")
	set.StringVar(&c.Config, "config", "", "configuration file")
	set.StringVar(&c.Dialect, "dialect", "", "comma separated list of dialects to recognize")
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
	var missing int
	for n := range mod.Descendants() {
		switch n.Kind() {
		case xquery.KindVarRef:
			name, ok := n.VariableName()
			if !ok {
				break
			}
			decl, ok := xquery.ResolveVariable(n)
			if !ok {
				missing++
				printUnresolved(os.Stdout, n, "$"+name.QualifiedName())
				break
			}
			if c.Unresolved {
				break
			}
			holder := decl.Node()
			if holder.Is(xquery.KindQName) {
				holder = holder.Parent()
			}
			printResolved(os.Stdout, n, "$"+name.QualifiedName(), holder)
		case xquery.KindFunctionCall, xquery.KindNamedFunctionRef, xquery.KindArrowFunctionSpecifier:
			name, ok := n.FunctionName()
			if !ok {
				break
			}
			arity, _ := xquery.Arity(n)
			ident := fmt.Sprintf("%s#%d", name.QualifiedName(), arity)
			decl, ok := xquery.ResolveFunction(n)
			if !ok {
				printUnresolved(os.Stdout, n, ident)
				break
			}
			if !c.Unresolved {
				printResolved(os.Stdout, n, ident, decl)
			}
		}
	}
	if missing > 0 {
		return errFail
	}
	return nil
}

func printResolved(w io.Writer, ref *xquery.Node, name string, decl *xquery.Node) {
	fmt.Fprintf(w, "%-8s %s -> %s %s", ref.Position(), refStyle.Render(name), decl.Kind(), decl.Position())
	if decl.Is(xquery.KindFunctionDecl) {
		fmt.Fprintln(w)
		return
	}
	if scope := xquery.UseScope(decl); scope != nil {
		fmt.Fprintf(w, " (scope: %s %s)", scope.Kind(), scope.Span())
	}
	fmt.Fprintln(w)
}

func printUnresolved(w io.Writer, ref *xquery.Node, name string) {
	fmt.Fprintf(w, "%-8s %s -> %s", ref.Position(), refStyle.Render(name), unboundStyle.Render("unresolved"))
	fmt.Fprintln(w)
}
