package main

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/midbel/xquery/xquery"
)

func TestExplorerFold(t *testing.T) {
	e := newExplorer(xquery.Parse("1 + 2"))
	if len(e.rows) != 6 {
		t.Fatalf("rows mismatched! want 6, got %d", len(e.rows))
	}
	e.move(3)
	if k := e.rows[e.cursor].node.Kind(); k != xquery.KindAdditiveExpr {
		t.Fatalf("selected node mismatched! want %s, got %s", xquery.KindAdditiveExpr, k)
	}
	e.toggle()
	if len(e.rows) != 4 {
		t.Errorf("rows mismatched after folding! want 4, got %d", len(e.rows))
	}
	e.toggle()
	if len(e.rows) != 6 {
		t.Errorf("rows mismatched after unfolding! want 6, got %d", len(e.rows))
	}
	e.move(10)
	if e.cursor != len(e.rows)-1 {
		t.Errorf("cursor should stop on the last row! got %d", e.cursor)
	}
	e.move(-10)
	if e.cursor != 0 {
		t.Errorf("cursor should stop on the first row! got %d", e.cursor)
	}
}

func TestExplorerQuit(t *testing.T) {
	e := newExplorer(xquery.Parse("1"))
	_, cmd := e.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatalf("quit command expected")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit message expected")
	}
}
