package xquery

func (p *Parser) parseFLWOR() *Node {
	p.Enter("flwor")
	defer p.Leave("flwor")

	expr := p.node(KindFLWORExpr)
	for !p.done() {
		next := p.peek()
		switch {
		case p.isKeyword("for") && next.Type == Name && (next.Literal == "tumbling" || next.Literal == "sliding"):
			expr.add(p.parseWindowClause())
		case p.isKeyword("for") && next.Type == Name && next.Literal == "member":
			expr.add(p.parseForMemberClause())
		case p.isKeyword("for") && next.Type == Dollar:
			expr.add(p.parseForClause())
		case p.isKeyword("let") && (next.Type == Dollar || (next.Type == Name && next.Literal == "score")):
			expr.add(p.parseLetClause())
		case p.isKeyword("where"):
			expr.add(p.parseWhereClause())
		case p.isKeyword("group") && p.peekKeyword("by"):
			expr.add(p.parseGroupByClause())
		case p.isKeyword("order") && p.peekKeyword("by"):
			expr.add(p.parseOrderByClause())
		case p.isKeyword("stable") && p.peekKeyword("order"):
			expr.add(p.parseOrderByClause())
		case p.isKeyword("count") && next.Type == Dollar:
			expr.add(p.parseCountClause())
		case p.isKeyword("return"):
			ret := p.node(KindReturnClause)
			p.take(ret)
			ret.add(p.parseExprSingle())
			expr.add(ret)
			return expr
		default:
			p.missing(expr, "'return'")
			return expr
		}
	}
	p.missing(expr, "'return'")
	return expr
}

func (p *Parser) parseForClause() *Node {
	p.Enter("for")
	defer p.Leave("for")

	clause := p.node(KindForClause)
	p.take(clause)
	for {
		clause.add(p.parseForBinding())
		if !p.is(Comma) {
			break
		}
		p.take(clause)
	}
	return clause
}

func (p *Parser) parseForBinding() *Node {
	bind := p.node(KindForBinding)
	p.expectVariable(bind)
	if p.isKeyword("as") {
		bind.add(p.parseTypeDeclaration())
	}
	if p.isKeyword("allowing") {
		empty := p.node(KindAllowingEmpty)
		p.take(empty)
		p.expectKeyword(empty, "empty")
		bind.add(empty)
	}
	if p.isKeyword("at") {
		bind.add(p.parsePositionalVar())
	}
	if p.isKeyword("score") && p.dialect.Has(FullText) {
		bind.add(p.parseScoreVar())
	}
	p.expectKeyword(bind, "in")
	bind.add(p.parseExprSingle())
	return bind
}

func (p *Parser) parseForMemberClause() *Node {
	p.Enter("for-member")
	defer p.Leave("for-member")

	clause := p.node(KindForMemberClause)
	p.take(clause)
	p.take(clause)
	for {
		bind := p.node(KindForBinding)
		p.expectVariable(bind)
		if p.isKeyword("as") {
			bind.add(p.parseTypeDeclaration())
		}
		if p.isKeyword("at") {
			bind.add(p.parsePositionalVar())
		}
		p.expectKeyword(bind, "in")
		bind.add(p.parseExprSingle())
		clause.add(bind)
		if !p.is(Comma) {
			break
		}
		p.take(clause)
	}
	return clause
}

func (p *Parser) parsePositionalVar() *Node {
	pos := p.node(KindPositionalVar)
	p.take(pos)
	p.expectVariable(pos)
	return pos
}

func (p *Parser) parseScoreVar() *Node {
	score := p.node(KindFTScoreVar)
	p.take(score)
	p.expectVariable(score)
	return score
}

// expectVariable parses '$' followed by the name of a variable being
// declared.
func (p *Parser) expectVariable(n *Node) {
	if !p.expect(n, Dollar, "$") {
		return
	}
	n.add(p.parseEQName(UsageVariable))
}

func (p *Parser) parseLetClause() *Node {
	p.Enter("let")
	defer p.Leave("let")

	clause := p.node(KindLetClause)
	p.take(clause)
	for {
		bind := p.node(KindLetBinding)
		if p.isKeyword("score") {
			bind.add(p.parseScoreVar())
		} else {
			p.expectVariable(bind)
			if p.isKeyword("as") {
				bind.add(p.parseTypeDeclaration())
			}
		}
		p.expect(bind, Assign, ":=")
		bind.add(p.parseExprSingle())
		clause.add(bind)
		if !p.is(Comma) {
			break
		}
		p.take(clause)
	}
	return clause
}

func (p *Parser) parseWindowClause() *Node {
	p.Enter("window")
	defer p.Leave("window")

	clause := p.node(KindWindowClause)
	p.take(clause)
	p.take(clause)
	p.expectKeyword(clause, "window")
	p.expectVariable(clause)
	if p.isKeyword("as") {
		clause.add(p.parseTypeDeclaration())
	}
	p.expectKeyword(clause, "in")
	clause.add(p.parseExprSingle())

	start := p.node(KindWindowStartCondition)
	p.expectKeyword(start, "start")
	start.add(p.parseWindowVars())
	if p.expectKeyword(start, "when") {
		start.add(p.parseExprSingle())
	}
	clause.add(start)

	if p.isKeyword("only", "end") {
		end := p.node(KindWindowEndCondition)
		if p.isKeyword("only") {
			p.take(end)
		}
		p.expectKeyword(end, "end")
		end.add(p.parseWindowVars())
		if p.expectKeyword(end, "when") {
			end.add(p.parseExprSingle())
		}
		clause.add(end)
	}
	return clause
}

func (p *Parser) parseWindowVars() *Node {
	vars := p.node(KindWindowVars)
	if p.is(Dollar) {
		curr := p.node(KindCurrentItem)
		p.expectVariable(curr)
		vars.add(curr)
	}
	if p.isKeyword("at") {
		vars.add(p.parsePositionalVar())
	}
	if p.isKeyword("previous") {
		prev := p.node(KindPreviousItem)
		p.take(prev)
		p.expectVariable(prev)
		vars.add(prev)
	}
	if p.isKeyword("next") {
		next := p.node(KindNextItem)
		p.take(next)
		p.expectVariable(next)
		vars.add(next)
	}
	return vars
}

func (p *Parser) parseWhereClause() *Node {
	clause := p.node(KindWhereClause)
	p.take(clause)
	clause.add(p.parseExprSingle())
	return clause
}

func (p *Parser) parseGroupByClause() *Node {
	p.Enter("group-by")
	defer p.Leave("group-by")

	clause := p.node(KindGroupByClause)
	p.take(clause)
	p.take(clause)
	for {
		spec := p.node(KindGroupingSpec)
		p.expectVariable(spec)
		if p.isKeyword("as") {
			spec.add(p.parseTypeDeclaration())
		}
		if p.is(Assign) {
			p.take(spec)
			spec.add(p.parseExprSingle())
		}
		if p.isKeyword("collation") {
			p.take(spec)
			p.expectLiteral(spec, "collation")
		}
		clause.add(spec)
		if !p.is(Comma) {
			break
		}
		p.take(clause)
	}
	return clause
}

func (p *Parser) parseOrderByClause() *Node {
	p.Enter("order-by")
	defer p.Leave("order-by")

	clause := p.node(KindOrderByClause)
	if p.isKeyword("stable") {
		p.take(clause)
	}
	p.take(clause)
	p.expectKeyword(clause, "by")
	for {
		spec := p.node(KindOrderSpec)
		spec.add(p.parseExprSingle())
		mod := p.node(KindOrderModifier)
		if p.isKeyword("ascending", "descending") {
			p.take(mod)
		}
		if p.isKeyword("empty") {
			p.take(mod)
			p.expectKeyword(mod, "greatest", "least")
		}
		if p.isKeyword("collation") {
			p.take(mod)
			p.expectLiteral(mod, "collation")
		}
		if mod.Len() > 0 {
			spec.add(mod)
		}
		clause.add(spec)
		if !p.is(Comma) {
			break
		}
		p.take(clause)
	}
	return clause
}

func (p *Parser) parseCountClause() *Node {
	clause := p.node(KindCountClause)
	p.take(clause)
	p.expectVariable(clause)
	return clause
}

func (p *Parser) parseQuantified() *Node {
	p.Enter("quantified")
	defer p.Leave("quantified")

	expr := p.node(KindQuantifiedExpr)
	p.take(expr)
	for {
		bind := p.node(KindQuantifiedBinding)
		p.expectVariable(bind)
		if p.isKeyword("as") {
			bind.add(p.parseTypeDeclaration())
		}
		p.expectKeyword(bind, "in")
		bind.add(p.parseExprSingle())
		expr.add(bind)
		if !p.is(Comma) {
			break
		}
		p.take(expr)
	}
	if p.expectKeyword(expr, "satisfies") {
		expr.add(p.parseExprSingle())
	}
	return expr
}

func (p *Parser) parseSwitch() *Node {
	p.Enter("switch")
	defer p.Leave("switch")

	expr := p.node(KindSwitchExpr)
	p.take(expr)
	p.parseOperand(expr)
	for p.isKeyword("case") {
		clause := p.node(KindSwitchCaseClause)
		for p.isKeyword("case") {
			p.take(clause)
			clause.add(p.parseExprSingle())
		}
		p.parseReturn(clause)
		expr.add(clause)
	}
	if expr.Count(KindSwitchCaseClause) == 0 {
		p.missing(expr, "'case'")
	}
	def := p.node(KindSwitchDefaultClause)
	if p.expectKeyword(def, "default") {
		p.parseReturn(def)
	}
	expr.add(def)
	return expr
}

func (p *Parser) parseTypeswitch() *Node {
	p.Enter("typeswitch")
	defer p.Leave("typeswitch")

	expr := p.node(KindTypeswitchExpr)
	p.take(expr)
	p.parseOperand(expr)
	for p.isKeyword("case") {
		clause := p.node(KindCaseClause)
		p.take(clause)
		if p.is(Dollar) {
			p.expectVariable(clause)
			p.expectKeyword(clause, "as")
		}
		clause.add(p.parseSequenceTypeUnion())
		p.parseReturn(clause)
		expr.add(clause)
	}
	if expr.Count(KindCaseClause) == 0 {
		p.missing(expr, "'case'")
	}
	def := p.node(KindDefaultCaseClause)
	if p.expectKeyword(def, "default") {
		if p.is(Dollar) {
			p.expectVariable(def)
		}
		p.parseReturn(def)
	}
	expr.add(def)
	return expr
}

func (p *Parser) parseSequenceTypeUnion() *Node {
	first := p.parseSequenceType()
	if !p.is(Pipe) {
		return first
	}
	union := p.wrap(KindSequenceTypeUnion, first)
	for p.is(Pipe) {
		p.take(union)
		union.add(p.parseSequenceType())
	}
	return union
}

// parseOperand parses a parenthesized expression following a keyword.
func (p *Parser) parseOperand(n *Node) {
	if !p.expect(n, LParen, "(") {
		return
	}
	n.add(p.parseExpr())
	p.expect(n, RParen, ")")
}

func (p *Parser) parseReturn(n *Node) {
	if p.expectKeyword(n, "return") {
		n.add(p.parseExprSingle())
	}
}

func (p *Parser) parseIf() *Node {
	p.Enter("if")
	defer p.Leave("if")

	expr := p.node(KindIfExpr)
	p.take(expr)
	p.parseOperand(expr)

	braced := p.is(LCurly)
	switch {
	case braced:
		expr.add(p.parseEnclosedExpr())
	case p.isKeyword("then"):
		p.take(expr)
		expr.add(p.parseExprSingle())
	default:
		p.missing(expr, "'then'")
	}
	switch {
	case p.isKeyword("else"):
		p.take(expr)
		if braced && p.is(LCurly) {
			expr.add(p.parseEnclosedExpr())
		} else {
			expr.add(p.parseExprSingle())
		}
	case braced || p.dialect.Has(BaseX):
	default:
		p.missing(expr, "'else'")
	}
	return expr
}

func (p *Parser) parseTryCatch() *Node {
	p.Enter("try")
	defer p.Leave("try")

	expr := p.node(KindTryCatchExpr)
	try := p.node(KindTryClause)
	p.take(try)
	try.add(p.parseEnclosedExpr())
	expr.add(try)
	for p.isKeyword("catch") {
		expr.add(p.parseCatchClause())
	}
	if expr.Count(KindCatchClause) == 0 {
		p.missing(expr, "'catch'")
	}
	return expr
}

func (p *Parser) parseCatchClause() *Node {
	clause := p.node(KindCatchClause)
	p.take(clause)
	if p.is(LParen) && p.dialect.Has(MarkLogic) {
		p.take(clause)
		p.expectVariable(clause)
		p.expect(clause, RParen, ")")
		clause.add(p.parseEnclosedExpr())
		return clause
	}
	list := p.node(KindCatchErrorList)
	for {
		list.add(p.parseNodeTest(UsageElement))
		if !p.is(Pipe) {
			break
		}
		p.take(list)
	}
	clause.add(list)
	clause.add(p.parseEnclosedExpr())
	return clause
}
