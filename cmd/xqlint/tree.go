package main

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/midbel/xquery/casing"
	"github.com/midbel/xquery/xquery"
)

// treeDocument converts the syntax tree into a xml document. Nodes become
// elements named after their kind. Leaves become token elements holding
// their literal. Kind names are rewritten in the given case family.
func treeDocument(mod *xquery.Module, ct casing.CaseType) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := writeNode(&doc.Element, mod.Root(), ct)
	if mod.File() != "" {
		root.CreateAttr("file", mod.File())
	}
	root.CreateAttr("dialect", mod.Dialect().String())
	return doc
}

func writeNode(parent *etree.Element, node *xquery.Node, ct casing.CaseType) *etree.Element {
	el := parent.CreateElement(casing.To(ct, node.Kind().String()))
	writeSpan(el, node.Span(), node.Position())
	for c := range node.Children() {
		switch c := c.(type) {
		case *xquery.Node:
			writeNode(el, c, ct)
		case *xquery.Leaf:
			writeLeaf(el, c)
		}
	}
	return el
}

func writeLeaf(parent *etree.Element, leaf *xquery.Leaf) {
	el := parent.CreateElement("token")
	el.CreateAttr("type", tokenType(leaf.Token))
	writeSpan(el, leaf.Span(), leaf.Position)
	el.SetText(leaf.Literal)
}

func writeSpan(el *etree.Element, span xquery.Span, pos xquery.Position) {
	el.CreateAttr("start", strconv.Itoa(span.Start))
	el.CreateAttr("end", strconv.Itoa(span.End))
	el.CreateAttr("line", strconv.Itoa(pos.Line))
	el.CreateAttr("column", strconv.Itoa(pos.Column))
}

// tokenType strips the literal from the description of a token.
func tokenType(tok xquery.Token) string {
	str := tok.String()
	if before, _, ok := strings.Cut(str, "("); ok && !strings.HasPrefix(str, "<") {
		return before
	}
	return strings.Trim(str, "<>")
}
