package xquery

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

const maxDepth = 512

// Parser builds the syntax tree of a module. It never fails: syntax errors
// are recorded on the module and zero width Error nodes stand for the
// missing parts.
type Parser struct {
	scan    *Scanner
	curr    Token
	mod     *Module
	file    string
	dialect Dialect
	depth   int

	noAssign bool

	Tracer

	infix  map[rune]func(*Node) *Node
	prefix map[rune]func() *Node
}

func NewParser(input string, options ...Option) *Parser {
	p := Parser{
		scan:    Scan(input),
		dialect: DialectAll,
		Tracer:  discardTracer{},
	}
	for _, o := range options {
		o(&p)
	}
	p.mod = &Module{
		file:    p.file,
		source:  input,
		dialect: p.dialect,
		lines:   lineOffsets(input),
	}
	p.mod.kind = KindModule
	p.mod.module = p.mod

	p.infix = map[rune]func(*Node) *Node{
		Name:         p.parseKeywordInfix,
		Ternary:      p.parseTernary,
		Elvis:        p.parseElvis,
		Eq:           p.parseComparison,
		Ne:           p.parseComparison,
		Lt:           p.parseComparison,
		Le:           p.parseComparison,
		Gt:           p.parseComparison,
		Ge:           p.parseComparison,
		Before:       p.parseComparison,
		After:        p.parseComparison,
		Concat:       p.parseConcat,
		Plus:         p.parseAdditive,
		Minus:        p.parseAdditive,
		Star:         p.parseMultiplicative,
		Pipe:         p.parseUnion,
		Arrow:        p.parseArrow,
		MappingArrow: p.parseArrow,
		Bang:         p.parseSimpleMap,
		Slash:        p.parseStep,
		DoubleSlash:  p.parseStep,
		LSquare:      p.parsePredicate,
		LParen:       p.parseDynamicCall,
		Question:     p.parseLookup,
	}
	p.prefix = map[rune]func() *Node{
		Name:                  p.parseKeywordPrefix,
		BracedURI:             p.parseNamePrefix,
		Literal:               p.parseStringLiteral,
		UnclosedLiteral:       p.parseStringLiteral,
		Integer:               p.parseNumber,
		Decimal:               p.parseNumber,
		Double:                p.parseNumber,
		Dollar:                p.parseVarRef,
		LParen:                p.parseParenthesized,
		Dot:                   p.parseContextItem,
		DotDot:                p.parseAbbrevReverseStep,
		At:                    p.parseAbbrevForwardStep,
		Star:                  p.parseNameTestStep,
		Slash:                 p.parseRoot,
		DoubleSlash:           p.parseRoot,
		Minus:                 p.parseUnary,
		Plus:                  p.parseUnary,
		Lt:                    p.parseDirElement,
		XmlComment:            p.parseDirComment,
		XmlPI:                 p.parseDirPI,
		StringConstructorOpen: p.parseStringConstructor,
		LSquare:               p.parseSquareArray,
		Question:              p.parseUnaryLookup,
		PragmaOpen:            p.parseExtensionExpr,
		Percent:               p.parseInlineFunction,
	}

	p.next()
	return &p
}

// Parse parses a complete XQuery source.
func Parse(input string, options ...Option) *Module {
	return NewParser(input, options...).Parse()
}

func ParseReader(r io.Reader, options ...Option) (*Module, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(buf), options...), nil
}

func ParseFile(file string, options ...Option) (*Module, error) {
	buf, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	options = append(slices.Clone(options), WithFile(file))
	return Parse(string(buf), options...), nil
}

func (p *Parser) Parse() *Module {
	p.Enter("module")
	defer p.Leave("module")

	root := &p.mod.Node
	for {
		root.add(p.parseUnit())
		if !p.is(Semicolon) {
			break
		}
		sep := p.node(KindTransactionSeparator)
		if !p.dialect.Has(MarkLogic) {
			p.errorf("transaction separator is not supported")
		}
		p.take(sep)
		root.add(sep)
		if p.done() {
			break
		}
	}
	if tok, ok := p.scan.Unclosed(); ok {
		p.errorAt(tok, "unterminated comment")
	}
	return p.mod
}

func (p *Parser) parseUnit() *Node {
	p.Enter("unit")
	defer p.Leave("unit")

	unit := p.node(KindMainModule)
	if p.isKeyword("xquery") && p.peekKeyword("version", "encoding") {
		unit.add(p.parseVersionDecl())
	}
	if p.isKeyword("module") && p.peekKeyword("namespace") {
		unit.kind = KindLibraryModule
		unit.add(p.parseModuleDecl())
	}
	if prolog := p.parseProlog(); prolog.Len() > 0 {
		unit.add(prolog)
	}
	if unit.kind == KindMainModule && !p.done() && !p.is(Semicolon) {
		body := p.node(KindQueryBody)
		body.add(p.parseApplyExpr())
		unit.add(body)
	}
	for !p.done() && !p.is(Semicolon) {
		p.errorf("unexpected token")
		bad := p.node(KindError)
		p.take(bad)
		unit.add(bad)
	}
	return unit
}

func (p *Parser) parseVersionDecl() *Node {
	p.Enter("version-decl")
	defer p.Leave("version-decl")

	decl := p.node(KindVersionDecl)
	p.take(decl)
	if p.isKeyword("version") {
		p.take(decl)
		p.expectLiteral(decl, "version")
	}
	if p.isKeyword("encoding") {
		p.take(decl)
		p.expectLiteral(decl, "encoding")
	}
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseModuleDecl() *Node {
	p.Enter("module-decl")
	defer p.Leave("module-decl")

	decl := p.node(KindModuleDecl)
	p.take(decl)
	p.take(decl)
	p.expectNCName(decl, "namespace prefix")
	p.expect(decl, Eq, "=")
	p.expectLiteral(decl, "namespace uri")
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseProlog() *Node {
	p.Enter("prolog")
	defer p.Leave("prolog")

	prolog := p.node(KindProlog)
	for !p.done() {
		var decl *Node
		switch {
		case p.isKeyword("declare"):
			decl = p.parseDeclaration()
		case p.isKeyword("import") && p.peekKeyword("schema", "module"):
			decl = p.parseImport()
		}
		if decl == nil {
			break
		}
		prolog.add(decl)
	}
	return prolog
}

func (p *Parser) parseDeclaration() *Node {
	next := p.peek()
	if next.Type == Percent {
		return p.parseAnnotatedDecl()
	}
	if next.Type != Name {
		return nil
	}
	switch next.Literal {
	case "boundary-space":
		return p.parseSetter(KindBoundarySpaceDecl, "preserve", "strip")
	case "base-uri":
		return p.parseURIDecl(KindBaseURIDecl)
	case "construction":
		return p.parseSetter(KindConstructionDecl, "strip", "preserve")
	case "ordering":
		return p.parseSetter(KindOrderingModeDecl, "ordered", "unordered")
	case "copy-namespaces":
		return p.parseCopyNamespacesDecl()
	case "decimal-format":
		return p.parseDecimalFormatDecl()
	case "namespace":
		return p.parseNamespaceDecl()
	case "default":
		return p.parseDefaultDecl()
	case "context":
		return p.parseContextItemDecl()
	case "option":
		return p.parseOptionDecl()
	case "ft-option":
		if !p.dialect.Has(FullText) {
			return nil
		}
		return p.parseFTOptionDecl()
	case "revalidation":
		if !p.dialect.Has(UpdateFacility) {
			return nil
		}
		return p.parseSetter(KindRevalidationDecl, "strict", "lax", "skip")
	case "type", "item-type":
		return p.parseTypeDecl()
	case "variable", "function":
		return p.parseAnnotatedDecl()
	default:
		if isCompatibilityAnnotation(next.Literal, p.dialect) {
			return p.parseAnnotatedDecl()
		}
		return nil
	}
}

func (p *Parser) parseSetter(kind Kind, values ...string) *Node {
	p.Enter("setter")
	defer p.Leave("setter")

	decl := p.node(kind)
	p.take(decl)
	p.take(decl)
	p.expectKeyword(decl, values...)
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseURIDecl(kind Kind) *Node {
	decl := p.node(kind)
	p.take(decl)
	p.take(decl)
	p.expectLiteral(decl, "uri")
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseCopyNamespacesDecl() *Node {
	p.Enter("copy-namespaces-decl")
	defer p.Leave("copy-namespaces-decl")

	decl := p.node(KindCopyNamespacesDecl)
	p.take(decl)
	p.take(decl)
	p.expectKeyword(decl, "preserve", "no-preserve")
	p.expect(decl, Comma, ",")
	p.expectKeyword(decl, "inherit", "no-inherit")
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseDecimalFormatDecl() *Node {
	p.Enter("decimal-format-decl")
	defer p.Leave("decimal-format-decl")

	decl := p.node(KindDecimalFormatDecl)
	p.take(decl)
	if p.isKeyword("default") {
		p.take(decl)
		p.take(decl)
	} else {
		p.take(decl)
		decl.add(p.parseEQName(UsageDecimalFormat))
	}
	for p.is(Name) {
		prop := p.node(KindDFPropertyName)
		p.take(prop)
		p.expect(prop, Eq, "=")
		p.expectLiteral(prop, "property value")
		decl.add(prop)
	}
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseNamespaceDecl() *Node {
	p.Enter("namespace-decl")
	defer p.Leave("namespace-decl")

	decl := p.node(KindNamespaceDecl)
	p.take(decl)
	p.take(decl)
	p.expectNCName(decl, "namespace prefix")
	p.expect(decl, Eq, "=")
	p.expectLiteral(decl, "namespace uri")
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseDefaultDecl() *Node {
	p.Enter("default-decl")
	defer p.Leave("default-decl")

	var (
		save = p.save()
		decl *Node
	)
	p.next()
	p.next()
	switch {
	case p.isKeyword("element", "function"):
		decl = p.node(KindDefaultNamespaceDecl)
	case p.isKeyword("collation"):
		decl = p.node(KindDefaultCollationDecl)
	case p.isKeyword("order"):
		decl = p.node(KindEmptyOrderDecl)
	case p.isKeyword("decimal-format"):
		p.restore(save)
		return p.parseDecimalFormatDecl()
	default:
		decl = p.node(KindError)
	}
	p.restore(save)
	p.take(decl)
	p.take(decl)
	switch decl.kind {
	case KindDefaultNamespaceDecl:
		p.take(decl)
		p.expectKeyword(decl, "namespace")
		p.expectLiteral(decl, "namespace uri")
	case KindDefaultCollationDecl:
		p.take(decl)
		p.expectLiteral(decl, "collation uri")
	case KindEmptyOrderDecl:
		p.take(decl)
		p.expectKeyword(decl, "empty")
		p.expectKeyword(decl, "greatest", "least")
	default:
		p.errorf("unexpected default declaration")
	}
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseContextItemDecl() *Node {
	p.Enter("context-item-decl")
	defer p.Leave("context-item-decl")

	decl := p.node(KindContextItemDecl)
	p.take(decl)
	p.take(decl)
	p.expectKeyword(decl, "item")
	if p.isKeyword("as") {
		td := p.node(KindTypeDeclaration)
		p.take(td)
		td.add(p.parseItemType())
		decl.add(td)
	}
	p.parseInitializer(decl)
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseInitializer(decl *Node) {
	switch {
	case p.is(Assign):
		p.take(decl)
		decl.add(p.parseExprSingle())
	case p.isKeyword("external"):
		p.take(decl)
		if p.is(Assign) {
			p.take(decl)
			decl.add(p.parseExprSingle())
		}
	default:
		p.missing(decl, "':=' or 'external'")
	}
}

func (p *Parser) parseOptionDecl() *Node {
	p.Enter("option-decl")
	defer p.Leave("option-decl")

	decl := p.node(KindOptionDecl)
	p.take(decl)
	p.take(decl)
	decl.add(p.parseEQName(UsageOption))
	p.expectLiteral(decl, "option value")
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseTypeDecl() *Node {
	p.Enter("type-decl")
	defer p.Leave("type-decl")

	decl := p.node(KindTypeDecl)
	p.take(decl)
	p.take(decl)
	decl.add(p.parseEQName(UsageType))
	if p.is(Eq) || p.isKeyword("as") {
		p.take(decl)
	} else {
		p.missing(decl, "'as' or '='")
	}
	decl.add(p.parseItemType())
	p.expectSeparator(decl)
	return decl
}

func (p *Parser) parseAnnotatedDecl() *Node {
	p.Enter("annotated-decl")
	defer p.Leave("annotated-decl")

	decl := p.node(KindVarDecl)
	p.take(decl)
	p.parseAnnotations(decl)
	switch {
	case p.isKeyword("variable"):
		p.take(decl)
		p.expect(decl, Dollar, "$")
		decl.add(p.parseEQName(UsageVariable))
		if p.isKeyword("as") {
			decl.add(p.parseTypeDeclaration())
		}
		p.parseInitializer(decl)
	case p.isKeyword("function"):
		decl.kind = KindFunctionDecl
		p.take(decl)
		decl.add(p.parseEQName(UsageFunctionDecl))
		decl.add(p.parseParamList())
		if p.isKeyword("as") {
			decl.add(p.parseTypeDeclaration())
		}
		if p.isKeyword("external") {
			p.take(decl)
		} else {
			decl.add(p.parseBody(KindFunctionBody))
		}
	default:
		p.missing(decl, "'variable' or 'function'")
	}
	p.expectSeparator(decl)
	return decl
}

// parseAnnotations parses both the annotations of XQuery 3.0 and the
// keywords some extensions put before variable and function declarations.
func (p *Parser) parseAnnotations(decl *Node) {
	for {
		switch {
		case p.is(Percent):
			decl.add(p.parseAnnotation())
		case p.is(Name) && isCompatibilityAnnotation(p.curr.Literal, p.dialect):
			ann := p.node(KindCompatibilityAnnotation)
			p.take(ann)
			decl.add(ann)
		default:
			return
		}
	}
}

func (p *Parser) parseAnnotation() *Node {
	p.Enter("annotation")
	defer p.Leave("annotation")

	ann := p.node(KindAnnotation)
	p.take(ann)
	ann.add(p.parseEQName(UsageAnnotation))
	if !p.is(LParen) {
		return ann
	}
	p.take(ann)
	for !p.done() && !p.is(RParen) {
		switch p.curr.Type {
		case Literal, UnclosedLiteral, Integer, Decimal, Double:
			ann.add(p.parseLiteralValue())
		default:
			p.missing(ann, "literal")
		}
		if !p.is(Comma) {
			break
		}
		p.take(ann)
	}
	p.expect(ann, RParen, ")")
	return ann
}

func isCompatibilityAnnotation(word string, dialect Dialect) bool {
	switch word {
	case "updating":
		return dialect.Has(UpdateFacility)
	case "sequential", "simple", "assignable", "unassignable":
		return dialect.Has(Scripting)
	case "private":
		return dialect.Has(MarkLogic)
	default:
		return false
	}
}

func (p *Parser) parseParamList() *Node {
	p.Enter("param-list")
	defer p.Leave("param-list")

	list := p.node(KindParamList)
	if !p.expect(list, LParen, "(") {
		return list
	}
	for p.is(Dollar) {
		param := p.node(KindParam)
		p.take(param)
		param.add(p.parseEQName(UsageVariable))
		if p.isKeyword("as") {
			param.add(p.parseTypeDeclaration())
		}
		if p.is(Assign) {
			p.take(param)
			param.add(p.parseExprSingle())
		}
		list.add(param)
		if !p.is(Comma) {
			break
		}
		p.take(list)
	}
	p.expect(list, RParen, ")")
	return list
}

func (p *Parser) parseImport() *Node {
	p.Enter("import")
	defer p.Leave("import")

	decl := p.node(KindModuleImport)
	p.take(decl)
	if p.isKeyword("schema") {
		decl.kind = KindSchemaImport
		p.take(decl)
		switch {
		case p.isKeyword("namespace"):
			prefix := p.node(KindSchemaPrefix)
			p.take(prefix)
			p.expectNCName(prefix, "namespace prefix")
			p.expect(prefix, Eq, "=")
			decl.add(prefix)
		case p.isKeyword("default"):
			prefix := p.node(KindSchemaPrefix)
			p.take(prefix)
			p.expectKeyword(prefix, "element")
			p.expectKeyword(prefix, "namespace")
			decl.add(prefix)
		}
	} else {
		p.take(decl)
		if p.isKeyword("namespace") {
			p.take(decl)
			p.expectNCName(decl, "namespace prefix")
			p.expect(decl, Eq, "=")
		}
	}
	p.expectLiteral(decl, "namespace uri")
	if p.isKeyword("at") {
		p.take(decl)
		p.expectLiteral(decl, "location")
		for p.is(Comma) {
			p.take(decl)
			p.expectLiteral(decl, "location")
		}
	}
	p.expectSeparator(decl)
	return decl
}

// parseBody parses a function body or a block. Block declarations are only
// recognized when the scripting extension is enabled.
func (p *Parser) parseBody(kind Kind) *Node {
	p.Enter("body")
	defer p.Leave("body")

	body := p.node(kind)
	p.parseBlockContent(body)
	return body
}

func (p *Parser) parseBlockContent(body *Node) {
	if !p.expect(body, LCurly, "{") {
		return
	}
	for p.dialect.Has(Scripting) && p.isKeyword("declare") && p.peek().Type == Dollar {
		body.add(p.parseBlockVarDecl())
	}
	if !p.is(RCurly) {
		body.add(p.parseApplyExpr())
	}
	p.expect(body, RCurly, "}")
}

func (p *Parser) parseEnclosedExpr() *Node {
	p.Enter("enclosed-expr")
	defer p.Leave("enclosed-expr")

	expr := p.node(KindEnclosedExpr)
	if !p.expect(expr, LCurly, "{") {
		return expr
	}
	if !p.is(RCurly) {
		expr.add(p.parseExpr())
	}
	p.expect(expr, RCurly, "}")
	return expr
}

func (p *Parser) parseTypeDeclaration() *Node {
	td := p.node(KindTypeDeclaration)
	p.take(td)
	td.add(p.parseSequenceType())
	return td
}

// parseEQName parses a lexical name or a URI qualified name.
func (p *Parser) parseEQName(usage Usage) *Node {
	qn := p.node(KindQName)
	qn.usage = usage
	switch {
	case p.is(Name):
		p.take(qn)
	case p.is(BracedURI):
		end := p.curr.End()
		p.take(qn)
		if p.is(Name) && p.curr.Offset == end && !strings.Contains(p.curr.Literal, ":") {
			p.take(qn)
		} else {
			p.missing(qn, "local name")
		}
	default:
		p.errorf("name expected")
		qn.kind = KindError
	}
	return qn
}

func (p *Parser) expectNCName(n *Node, what string) {
	if p.is(Name) && !strings.Contains(p.curr.Literal, ":") {
		p.take(n)
		return
	}
	p.missing(n, what)
}

func (p *Parser) expectLiteral(n *Node, what string) {
	if p.is(Literal) || p.is(UnclosedLiteral) {
		n.add(p.parseStringLiteral())
		return
	}
	p.missing(n, what)
}

func (p *Parser) expectKeyword(n *Node, keywords ...string) bool {
	if p.isKeyword(keywords...) {
		p.take(n)
		return true
	}
	p.missing(n, fmt.Sprintf("%q", keywords))
	return false
}

func (p *Parser) expect(n *Node, kind rune, what string) bool {
	if p.is(kind) {
		p.take(n)
		return true
	}
	p.missing(n, fmt.Sprintf("'%s'", what))
	return false
}

func (p *Parser) expectSeparator(n *Node) {
	p.expect(n, Semicolon, ";")
}

func (p *Parser) missing(n *Node, what string) {
	p.errorf("%s expected", what)
	n.add(p.node(KindError))
}

func (p *Parser) errorf(format string, args ...any) {
	p.errorAt(p.curr, fmt.Sprintf(format, args...))
}

func (p *Parser) errorAt(tok Token, cause string) {
	err := SyntaxError{
		Code:     CodeGenericError,
		Expr:     tok.Literal,
		Cause:    cause,
		Span:     tok.Span(),
		Position: tok.Position,
	}
	if tok.Type == EOF {
		err.Expr = ""
		err.Cause = cause + " (end of input)"
	}
	p.mod.errors = append(p.mod.errors, err)
	p.Error("parse", err)
}

func (p *Parser) node(kind Kind) *Node {
	return &Node{
		kind:   kind,
		offset: p.curr.Offset,
		module: p.mod,
	}
}

// wrap creates a node of the given kind with left as first child.
func (p *Parser) wrap(kind Kind, left *Node) *Node {
	n := p.node(kind)
	n.offset = left.Span().Start
	n.add(left)
	return n
}

func (p *Parser) take(n *Node) *Leaf {
	leaf := n.addLeaf(p.curr)
	p.next()
	return leaf
}

func (p *Parser) next() {
	p.curr = p.scan.Scan()
}

func (p *Parser) peek() Token {
	scan := *p.scan
	return scan.Scan()
}

func (p *Parser) peekAt(n int) Token {
	var (
		scan = *p.scan
		tok  Token
	)
	for range n {
		tok = scan.Scan()
	}
	return tok
}

type state struct {
	scan Scanner
	curr Token
}

func (p *Parser) save() state {
	return state{
		scan: *p.scan,
		curr: p.curr,
	}
}

func (p *Parser) restore(s state) {
	*p.scan = s.scan
	p.curr = s.curr
}

// rewind makes the scanner restart at the beginning of the current token.
func (p *Parser) rewind() {
	p.scan.Reset(p.curr.Offset, p.curr.Position)
}

func (p *Parser) peekKeyword(keywords ...string) bool {
	tok := p.peek()
	return tok.Type == Name && slices.Contains(keywords, tok.Literal)
}

func (p *Parser) isKeyword(keywords ...string) bool {
	return p.is(Name) && slices.Contains(keywords, p.curr.Literal)
}

func (p *Parser) is(kind rune) bool {
	return p.curr.Type == kind
}

func (p *Parser) done() bool {
	return p.is(EOF)
}

// adjacent reports whether the next token starts right after the current
// one.
func (p *Parser) adjacent() bool {
	return p.peek().Offset == p.curr.End()
}

func lineOffsets(input string) []int {
	lines := []int{0}
	for i := 0; i < len(input); i++ {
		if input[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return lines
}
