package xquery

import (
	"slices"
	"strings"
)

const (
	powLowest = iota
	powTernary
	powElvis
	powOr
	powAnd
	powCmp
	powFTContains
	powOtherwise
	powConcat
	powRange
	powAdd
	powMul
	powUnion
	powIntersect
	powInstance
	powTreat
	powCastable
	powCast
	powTransform
	powArrow
	powUnary
	powMap
	powPath
	powPostfix
)

var bindings = map[rune]int{
	Ternary:      powTernary,
	Elvis:        powElvis,
	Eq:           powCmp,
	Ne:           powCmp,
	Lt:           powCmp,
	Le:           powCmp,
	Gt:           powCmp,
	Ge:           powCmp,
	Before:       powCmp,
	After:        powCmp,
	Concat:       powConcat,
	Plus:         powAdd,
	Minus:        powAdd,
	Star:         powMul,
	Pipe:         powUnion,
	Arrow:        powArrow,
	MappingArrow: powArrow,
	Bang:         powMap,
	Slash:        powPath,
	DoubleSlash:  powPath,
	LSquare:      powPostfix,
	LParen:       powPostfix,
	Question:     powPostfix,
}

type keywordOp struct {
	pow     int
	kind    Kind
	follow  string
	dialect Dialect
}

var keywordOps = map[string]keywordOp{
	"or":        {pow: powOr, kind: KindOrExpr},
	"orElse":    {pow: powOr, kind: KindOrExpr, dialect: Saxon},
	"and":       {pow: powAnd, kind: KindAndExpr},
	"andAlso":   {pow: powAnd, kind: KindAndExpr, dialect: Saxon},
	"eq":        {pow: powCmp, kind: KindComparisonExpr},
	"ne":        {pow: powCmp, kind: KindComparisonExpr},
	"lt":        {pow: powCmp, kind: KindComparisonExpr},
	"le":        {pow: powCmp, kind: KindComparisonExpr},
	"gt":        {pow: powCmp, kind: KindComparisonExpr},
	"ge":        {pow: powCmp, kind: KindComparisonExpr},
	"is":        {pow: powCmp, kind: KindComparisonExpr},
	"contains":  {pow: powFTContains, kind: KindFTContainsExpr, follow: "text", dialect: FullText},
	"otherwise": {pow: powOtherwise, kind: KindOtherwiseExpr},
	"to":        {pow: powRange, kind: KindRangeExpr},
	"div":       {pow: powMul, kind: KindMultiplicativeExpr},
	"idiv":      {pow: powMul, kind: KindMultiplicativeExpr},
	"mod":       {pow: powMul, kind: KindMultiplicativeExpr},
	"union":     {pow: powUnion, kind: KindUnionExpr},
	"intersect": {pow: powIntersect, kind: KindIntersectExceptExpr},
	"except":    {pow: powIntersect, kind: KindIntersectExceptExpr},
	"instance":  {pow: powInstance, kind: KindInstanceofExpr, follow: "of"},
	"treat":     {pow: powTreat, kind: KindTreatExpr, follow: "as"},
	"castable":  {pow: powCastable, kind: KindCastableExpr, follow: "as"},
	"cast":      {pow: powCast, kind: KindCastExpr, follow: "as"},
	"transform": {pow: powTransform, kind: KindTransformWithExpr, follow: "with", dialect: UpdateFacility},
	"update":    {pow: powTransform, kind: KindUpdateExpr, dialect: BaseX},
}

func (p *Parser) power() int {
	if p.is(Name) {
		op, ok := p.keywordOp()
		if !ok {
			return powLowest
		}
		return op.pow
	}
	if p.is(Elvis) && !p.dialect.Has(BaseX) {
		return powLowest
	}
	return bindings[p.curr.Type]
}

func (p *Parser) keywordOp() (keywordOp, bool) {
	op, ok := keywordOps[p.curr.Literal]
	if !ok || !p.dialect.Has(op.dialect) {
		return op, false
	}
	if op.follow != "" && !p.peekKeyword(op.follow) {
		return op, false
	}
	return op, true
}

func (p *Parser) parseExpr() *Node {
	p.Enter("expr")
	defer p.Leave("expr")

	first := p.parseExprSingle()
	if !p.is(Comma) {
		return first
	}
	expr := p.wrap(KindExpr, first)
	for p.is(Comma) {
		p.take(expr)
		expr.add(p.parseExprSingle())
	}
	return expr
}

// parseApplyExpr parses the semicolon separated expressions of the scripting
// extension. Without it, a semicolon ends the expression.
func (p *Parser) parseApplyExpr() *Node {
	expr := p.parseExpr()
	if !p.dialect.Has(Scripting) || !p.is(Semicolon) || p.atTransaction() {
		return expr
	}
	apply := p.wrap(KindApplyExpr, expr)
	for p.is(Semicolon) && !p.atTransaction() {
		p.take(apply)
		if p.done() || p.is(RCurly) || p.is(Semicolon) {
			break
		}
		apply.add(p.parseExpr())
	}
	return apply
}

// atTransaction reports whether the current semicolon separates two main
// modules.
func (p *Parser) atTransaction() bool {
	if !p.is(Semicolon) || !p.dialect.Has(MarkLogic) {
		return false
	}
	var (
		first  = p.peekAt(1)
		second = p.peekAt(2)
		is     = func(tok Token, words ...string) bool {
			return tok.Type == Name && slices.Contains(words, tok.Literal)
		}
	)
	switch {
	case is(first, "xquery"):
		return is(second, "version", "encoding")
	case is(first, "module"):
		return is(second, "namespace")
	case is(first, "import"):
		return is(second, "schema", "module")
	case is(first, "declare"):
		return second.Type == Percent || (second.Type == Name && second.Literal != "")
	default:
		return false
	}
}

func (p *Parser) parseExprSingle() *Node {
	return p.parseExprPow(powLowest)
}

func (p *Parser) parseExprPow(pow int) *Node {
	p.Enter("expr-single")
	defer p.Leave("expr-single")

	p.depth++
	defer func() {
		p.depth--
	}()
	if p.depth > maxDepth {
		p.errorf("expression nested too deeply")
		bad := p.node(KindError)
		if !p.done() {
			p.take(bad)
		}
		return bad
	}

	fn, ok := p.prefix[p.curr.Type]
	if !ok {
		return p.parseUnexpected()
	}
	left := fn()
	for !p.done() && pow < p.power() {
		fn, ok := p.infix[p.curr.Type]
		if !ok {
			break
		}
		left = fn(left)
	}
	return left
}

func (p *Parser) parseUnexpected() *Node {
	bad := p.node(KindError)
	if p.done() {
		p.errorf("expression expected")
		return bad
	}
	switch p.curr.Type {
	case RParen, RSquare, RCurly, Comma, Semicolon, InterpolationClose, PragmaClose:
		p.errorf("expression expected")
	default:
		p.errorf("unexpected token")
		p.take(bad)
	}
	return bad
}

func (p *Parser) parseKeywordInfix(left *Node) *Node {
	p.Enter("keyword-infix")
	defer p.Leave("keyword-infix")

	op, ok := p.keywordOp()
	if !ok {
		p.errorf("unexpected operator")
		bad := p.wrap(KindError, left)
		p.take(bad)
		return bad
	}
	switch op.kind {
	case KindInstanceofExpr, KindTreatExpr:
		expr := p.wrap(op.kind, left)
		p.take(expr)
		p.take(expr)
		expr.add(p.parseSequenceType())
		return expr
	case KindCastableExpr, KindCastExpr:
		expr := p.wrap(op.kind, left)
		p.take(expr)
		p.take(expr)
		expr.add(p.parseSingleType())
		return expr
	case KindFTContainsExpr:
		return p.parseFTContains(left)
	case KindTransformWithExpr:
		expr := p.wrap(op.kind, left)
		p.take(expr)
		p.take(expr)
		expr.add(p.parseEnclosedExpr())
		return expr
	case KindUpdateExpr:
		expr := p.wrap(op.kind, left)
		p.take(expr)
		if p.is(LCurly) {
			expr.add(p.parseEnclosedExpr())
		} else {
			expr.add(p.parseExprSingle())
		}
		return expr
	case KindComparisonExpr, KindRangeExpr:
		return p.parseBinary(left, op.kind, op.pow, false)
	default:
		return p.parseBinary(left, op.kind, op.pow, true)
	}
}

// parseBinary parses the right operand of a binary operator. Left associative
// operators of the same kind are flattened in a single node.
func (p *Parser) parseBinary(left *Node, kind Kind, pow int, flatten bool) *Node {
	p.Enter("binary")
	defer p.Leave("binary")

	expr := left
	if !flatten || left.kind != kind {
		expr = p.wrap(kind, left)
	}
	p.take(expr)
	expr.add(p.parseExprPow(pow))
	return expr
}

func (p *Parser) parseComparison(left *Node) *Node {
	return p.parseBinary(left, KindComparisonExpr, powCmp, false)
}

func (p *Parser) parseConcat(left *Node) *Node {
	return p.parseBinary(left, KindStringConcatExpr, powConcat, true)
}

func (p *Parser) parseAdditive(left *Node) *Node {
	return p.parseBinary(left, KindAdditiveExpr, powAdd, true)
}

func (p *Parser) parseMultiplicative(left *Node) *Node {
	return p.parseBinary(left, KindMultiplicativeExpr, powMul, true)
}

func (p *Parser) parseUnion(left *Node) *Node {
	return p.parseBinary(left, KindUnionExpr, powUnion, true)
}

func (p *Parser) parseSimpleMap(left *Node) *Node {
	return p.parseBinary(left, KindSimpleMapExpr, powMap, true)
}

func (p *Parser) parseElvis(left *Node) *Node {
	return p.parseBinary(left, KindElvisExpr, powElvis, true)
}

func (p *Parser) parseTernary(left *Node) *Node {
	p.Enter("ternary")
	defer p.Leave("ternary")

	expr := p.wrap(KindTernaryExpr, left)
	p.take(expr)
	expr.add(p.parseExprPow(powTernary))
	if p.expect(expr, TernaryElse, "!!") {
		expr.add(p.parseExprPow(powTernary - 1))
	}
	return expr
}

func (p *Parser) parseArrow(left *Node) *Node {
	p.Enter("arrow")
	defer p.Leave("arrow")

	expr := left
	if left.kind != KindArrowExpr {
		expr = p.wrap(KindArrowExpr, left)
	}
	p.take(expr)

	spec := p.node(KindArrowFunctionSpecifier)
	switch {
	case p.is(Name) && p.curr.Literal == "function" && p.peek().Type == LParen:
		spec.add(p.parseInlineFunction())
	case p.is(Name) || p.is(BracedURI):
		spec.add(p.parseEQName(UsageFunctionRef))
	case p.is(Dollar):
		spec.add(p.parseVarRef())
	case p.is(LParen):
		spec.add(p.parseParenthesized())
	case p.is(Percent):
		spec.add(p.parseInlineFunction())
	default:
		p.missing(spec, "function specifier")
	}
	expr.add(spec)
	if p.is(LParen) {
		expr.add(p.parseArgumentList())
	} else {
		p.missing(expr, "argument list")
	}
	return expr
}

func (p *Parser) parseStep(left *Node) *Node {
	p.Enter("step")
	defer p.Leave("step")

	expr := left
	if left.kind != KindPathExpr {
		expr = p.wrap(KindPathExpr, left)
	}
	p.take(expr)
	expr.add(p.parseExprPow(powPath))
	return expr
}

func (p *Parser) parseRoot() *Node {
	p.Enter("root")
	defer p.Leave("root")

	expr := p.node(KindPathExpr)
	double := p.is(DoubleSlash)
	p.take(expr)
	if p.canStartStep() {
		expr.add(p.parseExprPow(powPath))
	} else if double {
		p.missing(expr, "step")
	}
	return expr
}

func (p *Parser) canStartStep() bool {
	switch p.curr.Type {
	case Name:
		if op, ok := p.keywordOp(); ok && op.pow > powLowest {
			return false
		}
		return true
	case BracedURI, Star, At, Dot, DotDot, Dollar, LParen, Literal, UnclosedLiteral,
		Integer, Decimal, Double, StringConstructorOpen, LSquare, Percent,
		XmlComment, XmlPI, PragmaOpen:
		return true
	case Lt:
		return p.scan.AtNameStart()
	default:
		return false
	}
}

func isStep(n *Node) bool {
	switch n.kind {
	case KindAxisStep, KindNameTest, KindWildcard, KindAbbrevForwardStep, KindAbbrevReverseStep:
		return true
	default:
		return isKindTestNode(n.kind)
	}
}

func (p *Parser) parsePredicate(left *Node) *Node {
	p.Enter("predicate")
	defer p.Leave("predicate")

	var expr *Node
	switch {
	case left.kind == KindAxisStep || left.kind == KindPostfixExpr:
		expr = left
	case isStep(left):
		expr = p.wrap(KindAxisStep, left)
	default:
		expr = p.wrap(KindPostfixExpr, left)
	}
	pred := p.node(KindPredicate)
	p.take(pred)
	pred.add(p.parseExpr())
	p.expect(pred, RSquare, "]")
	expr.add(pred)
	return expr
}

func (p *Parser) parseDynamicCall(left *Node) *Node {
	expr := left
	if left.kind != KindPostfixExpr {
		expr = p.wrap(KindPostfixExpr, left)
	}
	expr.add(p.parseArgumentList())
	return expr
}

func (p *Parser) parseLookup(left *Node) *Node {
	p.Enter("lookup")
	defer p.Leave("lookup")

	expr := left
	if left.kind != KindPostfixExpr {
		expr = p.wrap(KindPostfixExpr, left)
	}
	lookup := p.node(KindLookup)
	p.take(lookup)
	p.parseKeySpecifier(lookup)
	expr.add(lookup)
	return expr
}

func (p *Parser) parseUnaryLookup() *Node {
	p.Enter("unary-lookup")
	defer p.Leave("unary-lookup")

	lookup := p.node(KindUnaryLookup)
	p.take(lookup)
	p.parseKeySpecifier(lookup)
	return lookup
}

func (p *Parser) parseKeySpecifier(lookup *Node) {
	switch {
	case p.is(Name) && !strings.Contains(p.curr.Literal, ":"):
		p.take(lookup)
	case p.is(Integer):
		lookup.add(p.parseNumber())
	case p.is(Literal) || p.is(UnclosedLiteral):
		lookup.add(p.parseStringLiteral())
	case p.is(LParen):
		lookup.add(p.parseParenthesized())
	case p.is(Dollar):
		lookup.add(p.parseVarRef())
	case p.is(Star):
		p.take(lookup)
	default:
		p.missing(lookup, "key specifier")
	}
}

func (p *Parser) parseArgumentList() *Node {
	p.Enter("argument-list")
	defer p.Leave("argument-list")

	args := p.node(KindArgumentList)
	p.expect(args, LParen, "(")
	for !p.done() && !p.is(RParen) {
		switch next := p.peek(); {
		case p.is(Question) && (next.Type == Comma || next.Type == RParen):
			arg := p.node(KindArgumentPlaceholder)
			p.take(arg)
			args.add(arg)
		case p.is(Name) && next.Type == Assign && !strings.Contains(p.curr.Literal, ":"):
			arg := p.node(KindKeywordArgument)
			p.take(arg)
			p.take(arg)
			arg.add(p.parseExprSingle())
			args.add(arg)
		default:
			args.add(p.parseExprSingle())
		}
		if !p.is(Comma) {
			break
		}
		p.take(args)
	}
	p.expect(args, RParen, ")")
	return args
}

func (p *Parser) parseStringLiteral() *Node {
	lit := p.node(KindStringLiteral)
	if p.is(UnclosedLiteral) {
		p.errorf("unterminated string literal")
	}
	p.take(lit)
	return lit
}

func (p *Parser) parseNumber() *Node {
	var kind Kind
	switch p.curr.Type {
	case Decimal:
		kind = KindDecimalLiteral
	case Double:
		kind = KindDoubleLiteral
	default:
		kind = KindIntegerLiteral
	}
	lit := p.node(kind)
	p.take(lit)
	return lit
}

func (p *Parser) parseLiteralValue() *Node {
	switch p.curr.Type {
	case Literal, UnclosedLiteral:
		return p.parseStringLiteral()
	default:
		return p.parseNumber()
	}
}

func (p *Parser) parseVarRef() *Node {
	p.Enter("variable")
	defer p.Leave("variable")

	ref := p.node(KindVarRef)
	p.take(ref)
	ref.add(p.parseEQName(UsageVariable))
	if p.is(Assign) && p.dialect.Has(Scripting) && !p.noAssign {
		return p.parseAssignment(ref)
	}
	return ref
}

func (p *Parser) parseParenthesized() *Node {
	p.Enter("parenthesized")
	defer p.Leave("parenthesized")

	expr := p.node(KindParenthesizedExpr)
	p.take(expr)
	if !p.is(RParen) {
		noAssign := p.noAssign
		p.noAssign = false
		expr.add(p.parseExpr())
		p.noAssign = noAssign
	}
	p.expect(expr, RParen, ")")
	return expr
}

func (p *Parser) parseContextItem() *Node {
	if p.dialect.Has(Saxon) && p.peek().Type == LCurly {
		expr := p.node(KindContextItemFunctionExpr)
		p.take(expr)
		expr.add(p.parseEnclosedExpr())
		return expr
	}
	expr := p.node(KindContextItemExpr)
	p.take(expr)
	return expr
}

func (p *Parser) parseAbbrevReverseStep() *Node {
	step := p.node(KindAbbrevReverseStep)
	p.take(step)
	return step
}

func (p *Parser) parseAbbrevForwardStep() *Node {
	p.Enter("attribute-step")
	defer p.Leave("attribute-step")

	step := p.node(KindAbbrevForwardStep)
	p.take(step)
	step.add(p.parseNodeTest(UsageAttribute))
	return step
}

func (p *Parser) parseNameTestStep() *Node {
	return p.parseNodeTest(UsageElement)
}

func (p *Parser) parseUnary() *Node {
	p.Enter("unary")
	defer p.Leave("unary")

	expr := p.node(KindUnaryExpr)
	for p.is(Minus) || p.is(Plus) {
		p.take(expr)
	}
	expr.add(p.parseExprPow(powUnary))
	return expr
}

func (p *Parser) parseSquareArray() *Node {
	p.Enter("square-array")
	defer p.Leave("square-array")

	arr := p.node(KindSquareArrayConstructor)
	p.take(arr)
	for !p.done() && !p.is(RSquare) {
		arr.add(p.parseExprSingle())
		if !p.is(Comma) {
			break
		}
		p.take(arr)
	}
	p.expect(arr, RSquare, "]")
	return arr
}

func (p *Parser) parseKeywordPrefix() *Node {
	var (
		next = p.peek()
		is   = func(tok Token, words ...string) bool {
			return tok.Type == Name && slices.Contains(words, tok.Literal)
		}
	)
	switch p.curr.Literal {
	case "for":
		if next.Type == Dollar || is(next, "tumbling", "sliding", "member") {
			return p.parseFLWOR()
		}
	case "let":
		if next.Type == Dollar || (p.dialect.Has(FullText) && is(next, "score")) {
			return p.parseFLWOR()
		}
	case "some", "every":
		if next.Type == Dollar {
			return p.parseQuantified()
		}
	case "switch":
		if next.Type == LParen {
			return p.parseSwitch()
		}
	case "typeswitch":
		if next.Type == LParen {
			return p.parseTypeswitch()
		}
	case "if":
		if next.Type == LParen {
			return p.parseIf()
		}
	case "try":
		if next.Type == LCurly {
			return p.parseTryCatch()
		}
	case "validate":
		if next.Type == LCurly || is(next, "lax", "strict", "type") || (p.dialect.Has(MarkLogic) && is(next, "as")) {
			return p.parseValidate()
		}
	case "ordered", "unordered":
		if next.Type == LCurly {
			if p.curr.Literal == "unordered" {
				return p.parseKeywordEnclosed(KindUnorderedExpr)
			}
			return p.parseKeywordEnclosed(KindOrderedExpr)
		}
	case "map":
		if next.Type == LCurly {
			return p.parseMapConstructor()
		}
	case "array":
		if next.Type == LCurly {
			return p.parseKeywordEnclosed(KindCurlyArrayConstructor)
		}
	case "function":
		if next.Type == LParen {
			return p.parseInlineFunction()
		}
	case "fn":
		if next.Type == LCurly && p.dialect.Has(Saxon) {
			return p.parseKeywordEnclosed(KindSimpleInlineFunctionExpr)
		}
	case "_":
		if next.Type == LCurly && p.dialect.Has(Saxon) {
			return p.parseKeywordEnclosed(KindLambdaFunctionExpr)
		}
	case "document":
		if next.Type == LCurly {
			return p.parseKeywordEnclosed(KindCompDocConstructor)
		}
	case "text":
		if next.Type == LCurly {
			return p.parseKeywordEnclosed(KindCompTextConstructor)
		}
	case "comment":
		if next.Type == LCurly {
			return p.parseKeywordEnclosed(KindCompCommentConstructor)
		}
	case "element", "attribute", "namespace", "processing-instruction":
		if next.Type == LCurly || p.isNamedConstructor() {
			return p.parseComputedConstructor()
		}
	case "object-node":
		if next.Type == LCurly && p.dialect.Has(MarkLogic) {
			return p.parseMapNodeConstructor()
		}
	case "array-node", "number-node", "boolean-node", "null-node", "binary":
		if next.Type == LCurly && p.dialect.Has(MarkLogic) {
			return p.parseKeywordEnclosed(jsonConstructors[p.curr.Literal])
		}
	case "insert", "delete":
		if is(next, "node", "nodes") && p.dialect.Has(UpdateFacility) {
			if p.curr.Literal == "insert" {
				return p.parseInsert()
			}
			return p.parseDelete()
		}
	case "replace":
		if is(next, "node", "value") && p.dialect.Has(UpdateFacility) {
			return p.parseReplace()
		}
	case "rename":
		if is(next, "node") && p.dialect.Has(UpdateFacility) {
			return p.parseRename()
		}
	case "copy":
		if next.Type == Dollar && p.dialect.Has(UpdateFacility) {
			return p.parseCopyModify()
		}
	case "invoke":
		if is(next, "updating") && p.dialect.Has(UpdateFacility) {
			return p.parseUpdatingCall()
		}
	case "block":
		if next.Type == LCurly && p.dialect.Has(Scripting) {
			return p.parseBlock()
		}
	case "exit":
		if is(next, "returning") && p.dialect.Has(Scripting) {
			return p.parseExit()
		}
	case "while":
		if next.Type == LParen && p.dialect.Has(Scripting) {
			return p.parseWhile()
		}
	case "non-deterministic":
		if next.Type != LParen && next.Type != Hash && p.dialect.Has(BaseX) {
			return p.parseNonDeterministic()
		}
	}
	return p.parseNamePrefix()
}

var jsonConstructors = map[string]Kind{
	"array-node":   KindArrayNodeConstructor,
	"number-node":  KindNumberConstructor,
	"boolean-node": KindBooleanConstructor,
	"null-node":    KindNullConstructor,
	"binary":       KindBinaryConstructor,
}

// isNamedConstructor reports whether the current keyword is followed by a
// name and an opening curly bracket.
func (p *Parser) isNamedConstructor() bool {
	next := p.peekAt(1)
	switch next.Type {
	case Name:
		return p.peekAt(2).Type == LCurly
	case BracedURI:
		return p.peekAt(2).Type == Name && p.peekAt(3).Type == LCurly
	default:
		return false
	}
}

func (p *Parser) parseKeywordEnclosed(kind Kind) *Node {
	p.Enter(kind.String())
	defer p.Leave(kind.String())

	expr := p.node(kind)
	p.take(expr)
	expr.add(p.parseEnclosedExpr())
	return expr
}

func (p *Parser) parseNamePrefix() *Node {
	p.Enter("name")
	defer p.Leave("name")

	next := p.peek()
	if p.is(Name) {
		switch {
		case next.Type == Axis && isAxis(p.curr.Literal):
			return p.parseAxisStep()
		case next.Type == LParen && isKindTest(p.curr.Literal, p.dialect):
			return p.parseKindTest()
		case next.Type == Colon && p.adjacent() && p.peekAt(2).Type == Star:
			return p.parseNodeTest(UsageElement)
		}
	}
	if p.is(BracedURI) && next.Type == Star {
		return p.parseNodeTest(UsageElement)
	}
	name := p.parseEQName(UsageFunctionRef)
	switch {
	case p.is(LParen):
		call := p.wrap(KindFunctionCall, name)
		call.add(p.parseArgumentList())
		return call
	case p.is(Hash):
		ref := p.wrap(KindNamedFunctionRef, name)
		p.take(ref)
		if p.is(Integer) {
			ref.add(p.parseNumber())
		} else {
			p.missing(ref, "arity")
		}
		return ref
	default:
		name.usage = UsageElement
		return p.wrap(KindNameTest, name)
	}
}

func (p *Parser) parseAxisStep() *Node {
	p.Enter("axis-step")
	defer p.Leave("axis-step")

	var (
		step  = p.node(KindAxisStep)
		axis  = p.node(KindForwardAxis)
		usage = UsageElement
	)
	if isReverseAxis(p.curr.Literal) {
		axis.kind = KindReverseAxis
	}
	if p.curr.Literal == "attribute" {
		usage = UsageAttribute
	}
	p.take(axis)
	p.take(axis)
	step.add(axis)
	step.add(p.parseNodeTest(usage))
	return step
}

// parseNodeTest parses a kind test, a wildcard or a name test.
func (p *Parser) parseNodeTest(usage Usage) *Node {
	next := p.peek()
	switch {
	case p.is(Star):
		return p.parseWildcard()
	case p.is(BracedURI) && next.Type == Star:
		return p.parseWildcard()
	case p.is(Name) && next.Type == Colon && p.adjacent():
		return p.parseWildcard()
	case p.is(Name) && next.Type == LParen && isKindTest(p.curr.Literal, p.dialect):
		return p.parseKindTest()
	case p.is(Name) || p.is(BracedURI):
		name := p.parseEQName(usage)
		return p.wrap(KindNameTest, name)
	default:
		test := p.node(KindNameTest)
		p.missing(test, "node test")
		return test
	}
}

func (p *Parser) parseWildcard() *Node {
	p.Enter("wildcard")
	defer p.Leave("wildcard")

	wc := p.node(KindWildcard)
	switch {
	case p.is(Star):
		end := p.curr.End()
		p.take(wc)
		if p.is(Colon) && p.curr.Offset == end && p.adjacent() && p.peek().Type == Name {
			p.take(wc)
			p.take(wc)
		}
	case p.is(Name):
		p.take(wc)
		p.take(wc)
		p.expect(wc, Star, "*")
	case p.is(BracedURI):
		p.take(wc)
		p.expect(wc, Star, "*")
	}
	return wc
}

var forwardAxes = []string{
	"child",
	"descendant",
	"attribute",
	"self",
	"descendant-or-self",
	"following-sibling",
	"following",
	"namespace",
	"property",
}

var reverseAxes = []string{
	"parent",
	"ancestor",
	"preceding-sibling",
	"preceding",
	"ancestor-or-self",
}

func isAxis(name string) bool {
	return slices.Contains(forwardAxes, name) || isReverseAxis(name)
}

func isReverseAxis(name string) bool {
	return slices.Contains(reverseAxes, name)
}

func (p *Parser) parseInlineFunction() *Node {
	p.Enter("inline-function")
	defer p.Leave("inline-function")

	fn := p.node(KindInlineFunctionExpr)
	for p.is(Percent) {
		fn.add(p.parseAnnotation())
	}
	if !p.expectKeyword(fn, "function") {
		return fn
	}
	fn.add(p.parseParamList())
	if p.isKeyword("as") {
		fn.add(p.parseTypeDeclaration())
	}
	fn.add(p.parseBody(KindFunctionBody))
	return fn
}

func (p *Parser) parseMapConstructor() *Node {
	p.Enter("map")
	defer p.Leave("map")

	m := p.node(KindMapConstructor)
	p.take(m)
	p.take(m)
	for !p.done() && !p.is(RCurly) {
		entry := p.node(KindMapConstructorEntry)

		noAssign := p.noAssign
		p.noAssign = true
		entry.add(p.parseExprSingle())
		p.noAssign = noAssign

		switch {
		case p.is(Colon):
			p.take(entry)
		case p.is(Assign) && p.dialect.Has(Saxon):
			p.take(entry)
		default:
			p.missing(entry, "':'")
		}
		entry.add(p.parseExprSingle())
		m.add(entry)
		if !p.is(Comma) {
			break
		}
		p.take(m)
	}
	p.expect(m, RCurly, "}")
	return m
}

func (p *Parser) parseValidate() *Node {
	p.Enter("validate")
	defer p.Leave("validate")

	expr := p.node(KindValidateExpr)
	p.take(expr)
	switch {
	case p.isKeyword("lax", "strict"):
		p.take(expr)
	case p.isKeyword("type", "as"):
		p.take(expr)
		expr.add(p.parseEQName(UsageType))
	}
	expr.add(p.parseEnclosedExpr())
	return expr
}

func (p *Parser) parseExtensionExpr() *Node {
	p.Enter("extension")
	defer p.Leave("extension")

	expr := p.node(KindExtensionExpr)
	for p.is(PragmaOpen) {
		expr.add(p.parsePragma())
	}
	expr.add(p.parseEnclosedExpr())
	return expr
}

func (p *Parser) parsePragma() *Node {
	pragma := p.node(KindPragma)
	p.take(pragma)
	pragma.add(p.parseEQName(UsagePragma))
	if p.is(PragmaClose) {
		p.take(pragma)
		return pragma
	}
	p.rewind()
	if tok := p.scan.ScanUntil("#)", PragmaContents); tok.Literal != "" {
		pragma.addLeaf(tok)
	}
	p.next()
	p.expect(pragma, PragmaClose, "#)")
	return pragma
}
