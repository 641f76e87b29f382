package xquery

func (p *Parser) parseFTContains(left *Node) *Node {
	p.Enter("ft-contains")
	defer p.Leave("ft-contains")

	expr := p.wrap(KindFTContainsExpr, left)
	p.take(expr)
	p.take(expr)
	expr.add(p.parseFTSelection())
	if p.isKeyword("without") && p.peekKeyword("content") {
		ignore := p.node(KindFTIgnoreOption)
		p.take(ignore)
		p.take(ignore)
		ignore.add(p.parseExprPow(powMul))
		expr.add(ignore)
	}
	return expr
}

func (p *Parser) parseFTSelection() *Node {
	p.Enter("ft-selection")
	defer p.Leave("ft-selection")

	sel := p.node(KindFTSelection)
	sel.add(p.parseFTOr())
	for {
		filter := p.parseFTPosFilter()
		if filter == nil {
			break
		}
		sel.add(filter)
	}
	return sel
}

func (p *Parser) parseFTPosFilter() *Node {
	var filter *Node
	switch {
	case p.isKeyword("ordered"):
		filter = p.node(KindFTOrder)
		p.take(filter)
	case p.isKeyword("window"):
		filter = p.node(KindFTWindow)
		p.take(filter)
		filter.add(p.parseExprPow(powRange))
		p.expectKeyword(filter, "words", "sentences", "paragraphs")
	case p.isKeyword("distance"):
		filter = p.node(KindFTDistance)
		p.take(filter)
		filter.add(p.parseFTRange(false))
		p.expectKeyword(filter, "words", "sentences", "paragraphs")
	case p.isKeyword("same", "different"):
		filter = p.node(KindFTScope)
		p.take(filter)
		p.expectKeyword(filter, "sentence", "paragraph")
	case p.isKeyword("at") && p.peekKeyword("start", "end"):
		filter = p.node(KindFTContent)
		p.take(filter)
		p.take(filter)
	case p.isKeyword("entire") && p.peekKeyword("content"):
		filter = p.node(KindFTContent)
		p.take(filter)
		p.take(filter)
	}
	return filter
}

func (p *Parser) parseFTOr() *Node {
	first := p.parseFTAnd()
	if !p.isKeyword("ftor") {
		return first
	}
	or := p.wrap(KindFTOr, first)
	for p.isKeyword("ftor") {
		p.take(or)
		or.add(p.parseFTAnd())
	}
	return or
}

func (p *Parser) parseFTAnd() *Node {
	first := p.parseFTMildNot()
	if !p.isKeyword("ftand") {
		return first
	}
	and := p.wrap(KindFTAnd, first)
	for p.isKeyword("ftand") {
		p.take(and)
		and.add(p.parseFTMildNot())
	}
	return and
}

func (p *Parser) parseFTMildNot() *Node {
	first := p.parseFTUnaryNot()
	if !p.isKeyword("not") || !p.peekKeyword("in") {
		return first
	}
	not := p.wrap(KindFTMildNot, first)
	for p.isKeyword("not") && p.peekKeyword("in") {
		p.take(not)
		p.take(not)
		not.add(p.parseFTUnaryNot())
	}
	return not
}

func (p *Parser) parseFTUnaryNot() *Node {
	if !p.isKeyword("ftnot") {
		return p.parseFTPrimaryWithOptions()
	}
	not := p.node(KindFTUnaryNot)
	p.take(not)
	not.add(p.parseFTPrimaryWithOptions())
	return not
}

func (p *Parser) parseFTPrimaryWithOptions() *Node {
	p.Enter("ft-primary")
	defer p.Leave("ft-primary")

	prim := p.node(KindFTPrimaryWithOptions)
	switch {
	case p.is(LParen):
		p.take(prim)
		prim.add(p.parseFTSelection())
		p.expect(prim, RParen, ")")
	case p.is(PragmaOpen):
		prim.add(p.parseFTExtensionSelection())
	default:
		words := p.node(KindFTWords)
		switch {
		case p.is(Literal) || p.is(UnclosedLiteral):
			words.add(p.parseStringLiteral())
		case p.is(LCurly):
			words.add(p.parseEnclosedExpr())
		default:
			p.missing(words, "words")
		}
		if opt := p.parseFTAnyallOption(); opt != nil {
			words.add(opt)
		}
		prim.add(words)
		if p.isKeyword("occurs") {
			times := p.node(KindFTTimes)
			p.take(times)
			times.add(p.parseFTRange(false))
			p.expectKeyword(times, "times")
			prim.add(times)
		}
	}
	if p.isKeyword("using") {
		prim.add(p.parseFTMatchOptions())
	}
	if p.isKeyword("weight") && p.peek().Type == LCurly {
		weight := p.node(KindFTWeight)
		p.take(weight)
		weight.add(p.parseEnclosedExpr())
		prim.add(weight)
	}
	return prim
}

func (p *Parser) parseFTExtensionSelection() *Node {
	sel := p.node(KindFTExtensionSelection)
	for p.is(PragmaOpen) {
		sel.add(p.parsePragma())
	}
	if !p.expect(sel, LCurly, "{") {
		return sel
	}
	if !p.is(RCurly) {
		sel.add(p.parseFTSelection())
	}
	p.expect(sel, RCurly, "}")
	return sel
}

func (p *Parser) parseFTAnyallOption() *Node {
	if !p.isKeyword("any", "all", "phrase") {
		return nil
	}
	opt := p.node(KindFTAnyallOption)
	word := p.curr.Literal
	p.take(opt)
	switch {
	case word == "any" && p.isKeyword("word"):
		p.take(opt)
	case word == "all" && p.isKeyword("words"):
		p.take(opt)
	}
	return opt
}

// parseFTRange parses a range of values. Literal ranges only accept integer
// literals as bounds.
func (p *Parser) parseFTRange(literal bool) *Node {
	rg := p.node(KindFTRange)
	bound := func() {
		if !literal {
			rg.add(p.parseExprPow(powRange))
			return
		}
		if p.is(Integer) {
			rg.add(p.parseNumber())
			return
		}
		p.missing(rg, "integer")
	}
	switch {
	case p.isKeyword("exactly"):
		p.take(rg)
		bound()
	case p.isKeyword("at"):
		p.take(rg)
		p.expectKeyword(rg, "least", "most")
		bound()
	case p.isKeyword("from"):
		p.take(rg)
		bound()
		p.expectKeyword(rg, "to")
		bound()
	default:
		p.missing(rg, "range")
	}
	return rg
}

func (p *Parser) parseFTOptionDecl() *Node {
	decl := p.node(KindFTOptionDecl)
	p.take(decl)
	p.take(decl)
	decl.add(p.parseFTMatchOptions())
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseFTMatchOptions() *Node {
	p.Enter("ft-match-options")
	defer p.Leave("ft-match-options")

	opts := p.node(KindFTMatchOptions)
	if !p.isKeyword("using") {
		p.missing(opts, "'using'")
		return opts
	}
	for p.isKeyword("using") {
		p.take(opts)
		opts.add(p.parseFTMatchOption())
	}
	return opts
}

func (p *Parser) parseFTMatchOption() *Node {
	var (
		word = p.curr.Literal
		next = p.peek()
	)
	if word == "no" && next.Type == Name {
		word = next.Literal
	}
	switch {
	case !p.is(Name):
	case word == "case" || word == "lowercase" || word == "uppercase":
		opt := p.node(KindFTCaseOption)
		p.take(opt)
		if word == "case" {
			p.expectKeyword(opt, "sensitive", "insensitive")
		}
		return opt
	case word == "diacritics":
		opt := p.node(KindFTDiacriticsOption)
		p.take(opt)
		p.expectKeyword(opt, "sensitive", "insensitive")
		return opt
	case word == "stemming":
		opt := p.node(KindFTStemOption)
		p.take(opt)
		if p.isKeyword("stemming") {
			p.take(opt)
		}
		return opt
	case word == "wildcards":
		opt := p.node(KindFTWildCardOption)
		p.take(opt)
		if p.isKeyword("wildcards") {
			p.take(opt)
		}
		return opt
	case word == "language":
		opt := p.node(KindFTLanguageOption)
		p.take(opt)
		p.expectLiteral(opt, "language")
		return opt
	case word == "thesaurus":
		return p.parseFTThesaurusOption()
	case word == "stop":
		return p.parseFTStopWordOption()
	case word == "option":
		opt := p.node(KindFTExtensionOption)
		p.take(opt)
		opt.add(p.parseEQName(UsageOption))
		p.expectLiteral(opt, "option value")
		return opt
	case word == "fuzzy" && p.dialect.Has(BaseX):
		opt := p.node(KindFTFuzzyOption)
		p.take(opt)
		return opt
	}
	opt := p.node(KindFTExtensionOption)
	p.missing(opt, "match option")
	return opt
}

func (p *Parser) parseFTThesaurusOption() *Node {
	opt := p.node(KindFTThesaurusOption)
	if p.isKeyword("no") {
		p.take(opt)
		p.take(opt)
		return opt
	}
	p.take(opt)
	if !p.is(LParen) {
		p.parseFTThesaurusID(opt)
		return opt
	}
	p.take(opt)
	for {
		p.parseFTThesaurusID(opt)
		if !p.is(Comma) {
			break
		}
		p.take(opt)
	}
	p.expect(opt, RParen, ")")
	return opt
}

func (p *Parser) parseFTThesaurusID(opt *Node) {
	if p.isKeyword("default") {
		p.take(opt)
		return
	}
	id := p.node(KindFTThesaurusID)
	if p.expectKeyword(id, "at") {
		p.expectLiteral(id, "thesaurus uri")
	}
	if p.isKeyword("relationship") {
		p.take(id)
		p.expectLiteral(id, "relationship")
	}
	if p.isKeyword("exactly", "at", "from") {
		id.add(p.parseFTRange(true))
		p.expectKeyword(id, "levels")
	}
	opt.add(id)
}

func (p *Parser) parseFTStopWordOption() *Node {
	opt := p.node(KindFTStopWordOption)
	if p.isKeyword("no") {
		p.take(opt)
		p.take(opt)
		p.expectKeyword(opt, "words")
		return opt
	}
	p.take(opt)
	p.expectKeyword(opt, "words")
	if p.isKeyword("default") {
		p.take(opt)
	} else {
		opt.add(p.parseFTStopWords())
	}
	for p.isKeyword("union", "except") {
		p.take(opt)
		opt.add(p.parseFTStopWords())
	}
	return opt
}

func (p *Parser) parseFTStopWords() *Node {
	words := p.node(KindFTStopWords)
	switch {
	case p.isKeyword("at"):
		p.take(words)
		p.expectLiteral(words, "stop words uri")
	case p.is(LParen):
		p.take(words)
		for {
			p.expectLiteral(words, "stop word")
			if !p.is(Comma) {
				break
			}
			p.take(words)
		}
		p.expect(words, RParen, ")")
	default:
		p.missing(words, "stop words")
	}
	return words
}

func (p *Parser) parseInsert() *Node {
	p.Enter("insert")
	defer p.Leave("insert")

	expr := p.node(KindInsertExpr)
	p.take(expr)
	p.take(expr)
	expr.add(p.parseUpdateOperand(KindSourceExpr))
	switch {
	case p.isKeyword("as"):
		p.take(expr)
		p.expectKeyword(expr, "first", "last")
		p.expectKeyword(expr, "into")
	case p.isKeyword("into", "after", "before"):
		p.take(expr)
	default:
		p.missing(expr, "'into', 'after' or 'before'")
	}
	expr.add(p.parseUpdateOperand(KindTargetExpr))
	return expr
}

func (p *Parser) parseDelete() *Node {
	expr := p.node(KindDeleteExpr)
	p.take(expr)
	p.take(expr)
	expr.add(p.parseUpdateOperand(KindTargetExpr))
	return expr
}

func (p *Parser) parseReplace() *Node {
	p.Enter("replace")
	defer p.Leave("replace")

	expr := p.node(KindReplaceExpr)
	p.take(expr)
	if p.isKeyword("value") {
		p.take(expr)
		p.expectKeyword(expr, "of")
	}
	p.expectKeyword(expr, "node")
	expr.add(p.parseUpdateOperand(KindTargetExpr))
	if p.expectKeyword(expr, "with") {
		expr.add(p.parseExprSingle())
	}
	return expr
}

func (p *Parser) parseRename() *Node {
	expr := p.node(KindRenameExpr)
	p.take(expr)
	p.take(expr)
	expr.add(p.parseUpdateOperand(KindTargetExpr))
	if p.expectKeyword(expr, "as") {
		expr.add(p.parseUpdateOperand(KindNewNameExpr))
	}
	return expr
}

func (p *Parser) parseUpdateOperand(kind Kind) *Node {
	n := p.node(kind)
	n.add(p.parseExprSingle())
	return n
}

func (p *Parser) parseCopyModify() *Node {
	p.Enter("copy-modify")
	defer p.Leave("copy-modify")

	expr := p.node(KindCopyModifyExpr)
	p.take(expr)
	for {
		bind := p.node(KindCopyBinding)
		p.expectVariable(bind)
		p.expect(bind, Assign, ":=")
		bind.add(p.parseExprSingle())
		expr.add(bind)
		if !p.is(Comma) {
			break
		}
		p.take(expr)
	}
	if p.expectKeyword(expr, "modify") {
		expr.add(p.parseExprSingle())
	}
	p.parseReturn(expr)
	return expr
}

func (p *Parser) parseUpdatingCall() *Node {
	call := p.node(KindUpdatingFunctionCall)
	p.take(call)
	p.take(call)
	call.add(p.parseExprPow(powPostfix))
	if p.is(LParen) {
		call.add(p.parseArgumentList())
	} else {
		p.missing(call, "argument list")
	}
	return call
}

func (p *Parser) parseBlock() *Node {
	p.Enter("block")
	defer p.Leave("block")

	block := p.node(KindBlockExpr)
	p.take(block)
	p.parseBlockContent(block)
	return block
}

func (p *Parser) parseBlockVarDecl() *Node {
	p.Enter("block-declaration")
	defer p.Leave("block-declaration")

	decl := p.node(KindBlockVarDecl)
	p.take(decl)
	for {
		bind := p.node(KindBlockVarBinding)
		p.expectVariable(bind)
		if p.isKeyword("as") {
			bind.add(p.parseTypeDeclaration())
		}
		if p.is(Assign) {
			p.take(bind)
			bind.add(p.parseExprSingle())
		}
		decl.add(bind)
		if !p.is(Comma) {
			break
		}
		p.take(decl)
	}
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseAssignment(ref *Node) *Node {
	expr := p.wrap(KindAssignmentExpr, ref)
	p.take(expr)
	expr.add(p.parseExprSingle())
	return expr
}

func (p *Parser) parseExit() *Node {
	expr := p.node(KindExitExpr)
	p.take(expr)
	p.take(expr)
	expr.add(p.parseExprSingle())
	return expr
}

func (p *Parser) parseWhile() *Node {
	p.Enter("while")
	defer p.Leave("while")

	expr := p.node(KindWhileExpr)
	p.take(expr)
	p.parseOperand(expr)
	expr.add(p.parseBody(KindBlockExpr))
	return expr
}

func (p *Parser) parseNonDeterministic() *Node {
	call := p.node(KindNonDeterministicFunctionCall)
	p.take(call)
	call.add(p.parseExprPow(powPath))
	return call
}
