package main

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/midbel/cli"
	"github.com/midbel/xquery/xquery"
)

var exploreCmd = cli.Command{
	Name:    "explore",
	Summary: "browse interactively the syntax tree of a xquery module",
	Handler: &ExploreCmd{},
}

type ExploreCmd struct {
	ParserOptions
}

func (c *ExploreCmd) Run(args []string) error {
	set := cli.NewFlagSet("explore")
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
	_, err = tea.NewProgram(newExplorer(mod)).Run()
	return err
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("enter", "fold/unfold"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var (
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	kindStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	spanStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	sourceStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false)
)

const sourceLines = 6

type row struct {
	node  *xquery.Node
	depth int
}

type explorer struct {
	mod    *xquery.Module
	rows   []row
	folded map[*xquery.Node]bool
	cursor int
	view   viewport.Model
	width  int
}

func newExplorer(mod *xquery.Module) *explorer {
	e := explorer{
		mod:    mod,
		folded: make(map[*xquery.Node]bool),
		view:   viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
		width:  80,
	}
	e.refresh()
	return &e
}

func (e *explorer) Init() tea.Cmd {
	return nil
}

func (e *explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.view.SetWidth(msg.Width)
		e.view.SetHeight(max(1, msg.Height-sourceLines-2))
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return e, tea.Quit
		case key.Matches(msg, keys.Up):
			e.move(-1)
		case key.Matches(msg, keys.Down):
			e.move(1)
		case key.Matches(msg, keys.Toggle):
			e.toggle()
		}
	}
	e.render()
	return e, nil
}

func (e *explorer) View() tea.View {
	str := lipgloss.JoinVertical(lipgloss.Left, e.view.View(), e.source())
	v := tea.NewView(str)
	v.AltScreen = true
	return v
}

func (e *explorer) move(delta int) {
	e.cursor = min(max(e.cursor+delta, 0), len(e.rows)-1)
	if top := e.view.YOffset(); e.cursor < top {
		e.view.SetYOffset(e.cursor)
	} else if height := e.view.Height(); e.cursor >= top+height {
		e.view.SetYOffset(e.cursor - height + 1)
	}
}

func (e *explorer) toggle() {
	if e.cursor >= len(e.rows) {
		return
	}
	n := e.rows[e.cursor].node
	if n.Count() == 0 {
		return
	}
	e.folded[n] = !e.folded[n]
	e.refresh()
}

// refresh rebuilds the visible rows. Children of folded nodes are hidden.
func (e *explorer) refresh() {
	e.rows = e.rows[:0]
	var walk func(*xquery.Node, int)
	walk = func(n *xquery.Node, depth int) {
		e.rows = append(e.rows, row{node: n, depth: depth})
		if e.folded[n] {
			return
		}
		for c := range n.Nodes() {
			walk(c, depth+1)
		}
	}
	walk(e.mod.Root(), 0)
	e.cursor = min(e.cursor, len(e.rows)-1)
	e.render()
}

func (e *explorer) render() {
	var str strings.Builder
	for i, r := range e.rows {
		line := e.line(r)
		if i == e.cursor {
			line = selectedStyle.Render(line)
		}
		str.WriteString(line)
		str.WriteString("\n")
	}
	e.view.SetContent(str.String())
}

func (e *explorer) line(r row) string {
	marker := " "
	if r.node.Count() > 0 {
		marker = "▾"
		if e.folded[r.node] {
			marker = "▸"
		}
	}
	kind := kindStyle.Render(r.node.Kind().String())
	if r.node.Is(xquery.KindError) {
		kind = errorStyle.Render(r.node.Kind().String())
	}
	return fmt.Sprintf("%s%s %s %s", strings.Repeat("  ", r.depth), marker, kind, spanStyle.Render(r.node.Span().String()))
}

// source returns the text of the selected node and its requirements.
func (e *explorer) source() string {
	if e.cursor < 0 || e.cursor >= len(e.rows) {
		return ""
	}
	var (
		n     = e.rows[e.cursor].node
		lines = strings.Split(n.Text(), "\n")
	)
	if len(lines) > sourceLines-1 {
		lines = append(lines[:sourceLines-2], "...")
	}
	info := fmt.Sprintf("%s %s", n.Kind(), n.Position())
	if c, ok := n.Conformance(); ok && !c.Empty() {
		var list []string
		for _, r := range c.Requires {
			list = append(list, r.String())
		}
		info += " requires " + strings.Join(list, " or ")
	}
	lines = append([]string{spanStyle.Render(info)}, lines...)
	return sourceStyle.Width(e.width).Render(strings.Join(lines, "\n"))
}
