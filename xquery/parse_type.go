package xquery

import (
	"slices"
)

var kindTests = map[string]Kind{
	"node":                   KindAnyKindTest,
	"text":                   KindTextTest,
	"comment":                KindCommentTest,
	"namespace-node":         KindNamespaceNodeTest,
	"document-node":          KindDocumentTest,
	"element":                KindElementTest,
	"attribute":              KindAttributeTest,
	"schema-element":         KindSchemaElementTest,
	"schema-attribute":       KindSchemaAttributeTest,
	"processing-instruction": KindPITest,
}

var jsonTests = map[string]Kind{
	"object-node":  KindMapNodeTest,
	"array-node":   KindArrayNodeTest,
	"number-node":  KindNumberNodeTest,
	"boolean-node": KindBooleanNodeTest,
	"null-node":    KindNullNodeTest,
	"binary":       KindBinaryTest,
}

var schemaComponents = []string{
	"attribute-decl",
	"complex-type",
	"element-decl",
	"schema-facet",
	"schema-particle",
	"schema-root",
	"schema-type",
	"schema-wildcard",
	"simple-type",
}

// isKindTest reports whether name followed by an opening parenthesis starts
// a kind test rather than a function call.
func isKindTest(name string, dialect Dialect) bool {
	if _, ok := kindTests[name]; ok {
		return true
	}
	if !dialect.Has(MarkLogic) {
		return false
	}
	if _, ok := jsonTests[name]; ok {
		return true
	}
	return slices.Contains(schemaComponents, name)
}

func isKindTestNode(kind Kind) bool {
	switch kind {
	case KindAnyKindTest, KindTextTest, KindCommentTest, KindNamespaceNodeTest,
		KindDocumentTest, KindElementTest, KindAttributeTest, KindSchemaElementTest,
		KindSchemaAttributeTest, KindPITest, KindMapNodeTest, KindArrayNodeTest,
		KindNumberNodeTest, KindBooleanNodeTest, KindNullNodeTest, KindBinaryTest,
		KindAnyNodeTest, KindSchemaComponentTest:
		return true
	default:
		return false
	}
}

func (p *Parser) parseKindTest() *Node {
	p.Enter("kind-test")
	defer p.Leave("kind-test")

	name := p.curr.Literal
	kind, ok := kindTests[name]
	if !ok {
		kind, ok = jsonTests[name]
	}
	if !ok {
		kind = KindSchemaComponentTest
	}
	test := p.node(kind)
	p.take(test)
	p.take(test)
	switch kind {
	case KindAnyKindTest:
		if (p.is(Literal) || p.is(UnclosedLiteral)) && p.dialect.Has(MarkLogic) {
			test.kind = KindAnyNodeTest
			test.add(p.parseStringLiteral())
		}
	case KindMapNodeTest, KindArrayNodeTest, KindNumberNodeTest, KindBooleanNodeTest, KindNullNodeTest:
		if p.is(Literal) || p.is(UnclosedLiteral) {
			test.add(p.parseStringLiteral())
		}
	case KindDocumentTest:
		if p.isKeyword("element", "schema-element") && p.peek().Type == LParen {
			test.add(p.parseKindTest())
		}
	case KindElementTest, KindAttributeTest:
		usage := UsageElement
		if kind == KindAttributeTest {
			usage = UsageAttribute
		}
		if p.is(RParen) {
			break
		}
		test.add(p.parseNameOrWildcard(usage))
		if p.is(Comma) {
			p.take(test)
			test.add(p.parseEQName(UsageType))
			if p.is(Question) && kind == KindElementTest {
				p.take(test)
			}
		}
	case KindSchemaElementTest:
		test.add(p.parseEQName(UsageElement))
	case KindSchemaAttributeTest:
		test.add(p.parseEQName(UsageAttribute))
	case KindPITest:
		switch {
		case p.is(Literal) || p.is(UnclosedLiteral):
			test.add(p.parseStringLiteral())
		case p.is(Name):
			p.expectNCName(test, "target")
		}
	}
	p.expect(test, RParen, ")")
	return test
}

// parseNameOrWildcard parses the name of an element or attribute test. Saxon
// extends the wildcard with the forms allowed in name tests.
func (p *Parser) parseNameOrWildcard(usage Usage) *Node {
	next := p.peek()
	switch {
	case p.is(Star):
		return p.parseWildcard()
	case p.is(BracedURI) && next.Type == Star:
		return p.parseWildcard()
	case p.is(Name) && next.Type == Colon && p.adjacent():
		return p.parseWildcard()
	default:
		return p.parseEQName(usage)
	}
}

func (p *Parser) parseSequenceType() *Node {
	p.Enter("sequence-type")
	defer p.Leave("sequence-type")

	st := p.node(KindSequenceType)
	if p.isKeyword("empty-sequence", "empty") && p.peek().Type == LParen {
		empty := p.node(KindEmptySequenceType)
		p.take(empty)
		p.take(empty)
		p.expect(empty, RParen, ")")
		st.add(empty)
		return st
	}
	st.add(p.parseItemType())
	switch p.curr.Type {
	case Question, Star, Plus:
		p.take(st)
	}
	return st
}

func (p *Parser) parseSingleType() *Node {
	st := p.node(KindSingleType)
	st.add(p.parseItemType())
	if p.is(Question) {
		p.take(st)
	}
	return st
}

func (p *Parser) parseItemType() *Node {
	p.Enter("item-type")
	defer p.Leave("item-type")

	next := p.peek()
	switch {
	case p.is(LParen):
		return p.parseParenthesizedItemType()
	case p.is(Percent):
		return p.parseFunctionTest()
	case p.is(Tilde):
		alias := p.node(KindTypeAlias)
		p.take(alias)
		alias.add(p.parseEQName(UsageType))
		return alias
	case p.is(Name) && next.Type == LParen:
	case p.is(Name) || p.is(BracedURI):
		return p.wrap(KindAtomicOrUnionType, p.parseEQName(UsageType))
	default:
		test := p.node(KindAtomicOrUnionType)
		p.missing(test, "item type")
		return test
	}
	switch name := p.curr.Literal; {
	case name == "item":
		test := p.node(KindAnyItemTest)
		p.take(test)
		p.take(test)
		p.expect(test, RParen, ")")
		return test
	case name == "function":
		return p.parseFunctionTest()
	case name == "map":
		return p.parseMapTest()
	case name == "array":
		return p.parseArrayTest()
	case name == "record" || name == "tuple":
		return p.parseRecordTest()
	case name == "union" && p.dialect.Has(Saxon):
		return p.parseUnionType()
	case name == "enum":
		return p.parseEnumerationType()
	case isKindTest(name, p.dialect):
		return p.parseKindTest()
	default:
		return p.wrap(KindAtomicOrUnionType, p.parseEQName(UsageType))
	}
}

// parseParenthesizedItemType parses a parenthesized item type or a choice
// between several item types.
func (p *Parser) parseParenthesizedItemType() *Node {
	test := p.node(KindParenthesizedItemType)
	p.take(test)
	test.add(p.parseItemType())
	if p.is(Pipe) {
		test.kind = KindUnionType
		for p.is(Pipe) {
			p.take(test)
			test.add(p.parseItemType())
		}
	}
	p.expect(test, RParen, ")")
	return test
}

func (p *Parser) parseFunctionTest() *Node {
	test := p.node(KindAnyFunctionTest)
	for p.is(Percent) {
		test.add(p.parseAnnotation())
	}
	if !p.expectKeyword(test, "function") {
		return test
	}
	p.expect(test, LParen, "(")
	if p.is(Star) {
		p.take(test)
		p.expect(test, RParen, ")")
		return test
	}
	test.kind = KindTypedFunctionTest
	for !p.done() && !p.is(RParen) {
		test.add(p.parseSequenceType())
		if !p.is(Comma) {
			break
		}
		p.take(test)
	}
	p.expect(test, RParen, ")")
	if p.expectKeyword(test, "as") {
		test.add(p.parseSequenceType())
	}
	return test
}

func (p *Parser) parseMapTest() *Node {
	test := p.node(KindAnyMapTest)
	p.take(test)
	p.take(test)
	if p.is(Star) {
		p.take(test)
	} else {
		test.kind = KindTypedMapTest
		test.add(p.parseItemType())
		p.expect(test, Comma, ",")
		test.add(p.parseSequenceType())
	}
	p.expect(test, RParen, ")")
	return test
}

func (p *Parser) parseArrayTest() *Node {
	test := p.node(KindAnyArrayTest)
	p.take(test)
	p.take(test)
	if p.is(Star) {
		p.take(test)
	} else {
		test.kind = KindTypedArrayTest
		test.add(p.parseSequenceType())
	}
	p.expect(test, RParen, ")")
	return test
}

// parseRecordTest parses both the record test and the tuple type of Saxon.
// A trailing '*' marks an extensible record.
func (p *Parser) parseRecordTest() *Node {
	p.Enter("record-test")
	defer p.Leave("record-test")

	test := p.node(KindRecordTest)
	p.take(test)
	p.take(test)
	for !p.done() && !p.is(RParen) {
		if p.is(Star) {
			p.take(test)
			break
		}
		field := p.node(KindRecordField)
		switch {
		case p.is(Literal) || p.is(UnclosedLiteral):
			field.add(p.parseStringLiteral())
		default:
			p.expectNCName(field, "field name")
		}
		if p.is(Question) {
			p.take(field)
		}
		switch {
		case p.is(Colon) || p.isKeyword("as"):
			p.take(field)
			field.add(p.parseSequenceType())
		case p.is(Elvis):
			// "name?:" is scanned as a single elvis operator
			p.take(field)
			field.add(p.parseSequenceType())
		}
		test.add(field)
		if !p.is(Comma) {
			break
		}
		p.take(test)
	}
	p.expect(test, RParen, ")")
	return test
}

func (p *Parser) parseUnionType() *Node {
	test := p.node(KindUnionType)
	p.take(test)
	p.take(test)
	for !p.done() && !p.is(RParen) {
		test.add(p.parseEQName(UsageType))
		if !p.is(Comma) {
			break
		}
		p.take(test)
	}
	p.expect(test, RParen, ")")
	return test
}

func (p *Parser) parseEnumerationType() *Node {
	test := p.node(KindEnumerationType)
	p.take(test)
	p.take(test)
	for !p.done() && !p.is(RParen) {
		p.expectLiteral(test, "string literal")
		if !p.is(Comma) {
			break
		}
		p.take(test)
	}
	p.expect(test, RParen, ")")
	return test
}
