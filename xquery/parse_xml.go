package xquery

import (
	"strings"
)

// parseDirElement parses a direct element constructor. The scanner stands
// right after the opening '<' and is driven token by token until the end of
// the element.
func (p *Parser) parseDirElement() *Node {
	p.Enter("direct-element")
	defer p.Leave("direct-element")

	if !p.scan.AtNameStart() {
		return p.parseUnexpected()
	}
	elem := p.parseDirElem(p.curr)
	p.next()
	return elem
}

func (p *Parser) parseDirElem(open Token) *Node {
	elem := p.nodeAt(KindDirElemConstructor, open.Offset)
	elem.addLeaf(open)

	name := p.scan.ScanName()
	qn := p.nodeAt(KindQName, name.Offset)
	qn.usage = UsageElement
	qn.addLeaf(name)
	elem.add(qn)

	for {
		tok := p.scan.ScanTag()
		switch tok.Type {
		case Name:
			elem.add(p.parseDirAttribute(tok))
		case EmptyTagClose:
			elem.addLeaf(tok)
			return elem
		case Gt:
			elem.addLeaf(tok)
			p.parseDirContent(elem, name)
			return elem
		case EOF:
			p.errorAt(tok, "unterminated start tag")
			elem.add(p.nodeAt(KindError, tok.Offset))
			return elem
		default:
			p.errorAt(tok, "unexpected character in start tag")
			bad := p.nodeAt(KindError, tok.Offset)
			bad.addLeaf(tok)
			elem.add(bad)
		}
	}
}

func (p *Parser) parseDirAttribute(name Token) *Node {
	attr := p.nodeAt(KindDirAttribute, name.Offset)
	qn := p.nodeAt(KindQName, name.Offset)
	qn.usage = UsageAttribute
	qn.addLeaf(name)
	attr.add(qn)

	state := *p.scan
	tok := p.scan.ScanTag()
	if tok.Type != Eq {
		*p.scan = state
		p.errorAt(tok, "'=' expected")
		attr.add(p.nodeAt(KindError, tok.Offset))
		return attr
	}
	attr.addLeaf(tok)

	state = *p.scan
	tok = p.scan.ScanTag()
	if tok.Type != AttrDelim {
		*p.scan = state
		p.errorAt(tok, "attribute value expected")
		attr.add(p.nodeAt(KindError, tok.Offset))
		return attr
	}
	var (
		value = p.nodeAt(KindDirAttributeValue, tok.Offset)
		delim = rune(tok.Literal[0])
	)
	value.addLeaf(tok)
	attr.add(value)
	for {
		tok := p.scan.ScanAttrValue(delim)
		switch tok.Type {
		case AttrDelim:
			value.addLeaf(tok)
			return attr
		case XmlText:
			value.addLeaf(tok)
		case LCurly:
			p.parseDirEnclosed(value, tok)
		case EOF:
			p.errorAt(tok, "unterminated attribute value")
			value.add(p.nodeAt(KindError, tok.Offset))
			return attr
		default:
			p.errorAt(tok, "unescaped '}' in attribute value")
			bad := p.nodeAt(KindError, tok.Offset)
			bad.addLeaf(tok)
			value.add(bad)
		}
	}
}

// parseDirEnclosed parses an enclosed expression found in the content of a
// direct constructor. When it returns, the scanner stands right after the
// closing '}'.
func (p *Parser) parseDirEnclosed(n *Node, open Token) {
	expr := p.nodeAt(KindEnclosedExpr, open.Offset)
	expr.addLeaf(open)
	n.add(expr)

	p.next()
	if !p.is(RCurly) && !p.done() {
		expr.add(p.parseExpr())
	}
	if p.is(RCurly) {
		expr.addLeaf(p.curr)
		return
	}
	p.missing(expr, "'}'")
	p.rewind()
}

func (p *Parser) parseDirContent(elem *Node, name Token) {
	for {
		tok := p.scan.ScanContent()
		switch tok.Type {
		case XmlText:
			elem.addLeaf(tok)
		case CDataSection:
			cdata := p.nodeAt(KindCDataSection, tok.Offset)
			cdata.addLeaf(tok)
			elem.add(cdata)
		case XmlComment:
			comment := p.nodeAt(KindDirCommentConstructor, tok.Offset)
			comment.addLeaf(tok)
			elem.add(comment)
		case XmlPI:
			pi := p.nodeAt(KindDirPIConstructor, tok.Offset)
			pi.addLeaf(tok)
			elem.add(pi)
		case LCurly:
			p.parseDirEnclosed(elem, tok)
		case Lt:
			if !p.scan.AtNameStart() {
				p.errorAt(tok, "element name expected")
				bad := p.nodeAt(KindError, tok.Offset)
				bad.addLeaf(tok)
				elem.add(bad)
				break
			}
			elem.add(p.parseDirElem(tok))
		case EndTagOpen:
			elem.addLeaf(tok)
			p.parseEndTag(elem, name)
			return
		case EOF:
			p.errorAt(tok, "unterminated element")
			elem.add(p.nodeAt(KindError, tok.Offset))
			return
		default:
			p.errorAt(tok, "invalid element content")
			bad := p.nodeAt(KindError, tok.Offset)
			bad.addLeaf(tok)
			elem.add(bad)
		}
	}
}

func (p *Parser) parseEndTag(elem *Node, name Token) {
	end := p.scan.ScanName()
	switch {
	case end.Type == Missing:
		p.errorAt(end, "element name expected")
		elem.add(p.nodeAt(KindError, end.Offset))
	case end.Literal != name.Literal:
		p.errorAt(end, "end tag does not match start tag "+name.Literal)
		elem.addLeaf(end)
	default:
		elem.addLeaf(end)
	}

	state := *p.scan
	tok := p.scan.ScanTag()
	if tok.Type != Gt {
		*p.scan = state
		p.errorAt(tok, "'>' expected")
		elem.add(p.nodeAt(KindError, tok.Offset))
		return
	}
	elem.addLeaf(tok)
}

func (p *Parser) parseDirComment() *Node {
	comment := p.node(KindDirCommentConstructor)
	if strings.Contains(strings.TrimSuffix(p.curr.Literal[4:], "-->"), "--") {
		p.errorf("'--' is not allowed in comments")
	}
	p.take(comment)
	return comment
}

func (p *Parser) parseDirPI() *Node {
	pi := p.node(KindDirPIConstructor)
	p.take(pi)
	return pi
}

// parseStringConstructor parses a string constructor. Its content is scanned
// outside of the regular tokens up to its closing delimiter.
func (p *Parser) parseStringConstructor() *Node {
	p.Enter("string-constructor")
	defer p.Leave("string-constructor")

	str := p.node(KindStringConstructor)
	str.addLeaf(p.curr)
	for {
		tok := p.scan.ScanStringConstructor()
		switch tok.Type {
		case StringConstructorChars:
			str.addLeaf(tok)
		case InterpolationOpen:
			str.add(p.parseInterpolation(tok))
		case StringConstructorClose:
			str.addLeaf(tok)
			p.next()
			return str
		default:
			p.errorAt(tok, "unterminated string constructor")
			str.add(p.nodeAt(KindError, tok.Offset))
			p.next()
			return str
		}
	}
}

func (p *Parser) parseInterpolation(open Token) *Node {
	interp := p.nodeAt(KindStringInterpolation, open.Offset)
	interp.addLeaf(open)
	p.next()
	if !p.is(InterpolationClose) && !p.done() {
		interp.add(p.parseExpr())
	}
	if p.is(InterpolationClose) {
		interp.addLeaf(p.curr)
		return interp
	}
	p.missing(interp, "'}`'")
	p.rewind()
	return interp
}

func (p *Parser) parseComputedConstructor() *Node {
	p.Enter("computed-constructor")
	defer p.Leave("computed-constructor")

	var (
		kind  Kind
		usage Usage
	)
	switch p.curr.Literal {
	case "element":
		kind, usage = KindCompElemConstructor, UsageElement
	case "attribute":
		kind, usage = KindCompAttrConstructor, UsageAttribute
	case "namespace":
		kind = KindCompNamespaceConstructor
	default:
		kind, usage = KindCompPIConstructor, UsageProcessingInstruction
	}
	expr := p.node(kind)
	p.take(expr)
	switch {
	case p.is(LCurly):
		expr.add(p.parseEnclosedExpr())
	case kind == KindCompNamespaceConstructor:
		p.expectNCName(expr, "prefix")
	default:
		expr.add(p.parseEQName(usage))
	}
	expr.add(p.parseEnclosedExpr())
	return expr
}

func (p *Parser) parseMapNodeConstructor() *Node {
	p.Enter("object-node")
	defer p.Leave("object-node")

	expr := p.node(KindMapNodeConstructor)
	p.take(expr)
	p.take(expr)
	for !p.done() && !p.is(RCurly) {
		entry := p.node(KindMapNodeEntry)
		entry.add(p.parseExprSingle())
		p.expect(entry, Colon, ":")
		entry.add(p.parseExprSingle())
		expr.add(entry)
		if !p.is(Comma) {
			break
		}
		p.take(expr)
	}
	p.expect(expr, RCurly, "}")
	return expr
}

func (p *Parser) nodeAt(kind Kind, offset int) *Node {
	n := p.node(kind)
	n.offset = offset
	return n
}
