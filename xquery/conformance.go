package xquery

import (
	"github.com/midbel/xquery/version"
)

// Conformance lists the specifications or products whose syntax a node
// requires. Any of them is enough for the node to be accepted. Element is the
// part of the node triggering the requirements.
type Conformance struct {
	Requires []version.Requirement
	Element  Element
}

func (c Conformance) Empty() bool {
	return len(c.Requires) == 0
}

type conformanceRule func(*Node) Conformance

var conformanceRules = map[Kind]conformanceRule{
	KindVersionDecl:                  conformVersionDecl,
	KindSwitchExpr:                   keywordRule(version.XQuery30),
	KindTryCatchExpr:                 conformTryCatch,
	KindCatchClause:                  conformCatch,
	KindGroupByClause:                keywordRule(version.XQuery30),
	KindWindowClause:                 keywordRule(version.XQuery30),
	KindCountClause:                  keywordRule(version.XQuery30),
	KindAllowingEmpty:                keywordRule(version.XQuery30),
	KindInlineFunctionExpr:           conformInlineFunction,
	KindNamedFunctionRef:             tokenRule(Hash, version.XQuery30),
	KindArgumentPlaceholder:          firstRule(version.XQuery30),
	KindStringConcatExpr:             tokenRule(Concat, version.XQuery30),
	KindSimpleMapExpr:                tokenRule(Bang, version.XQuery30),
	KindQName:                        conformQName,
	KindWildcard:                     conformWildcard,
	KindAnnotation:                   firstRule(version.XQuery30),
	KindCompatibilityAnnotation:      conformCompatibility,
	KindValidateExpr:                 conformValidate,
	KindContextItemDecl:              keywordRule(version.XQuery30),
	KindDecimalFormatDecl:            keywordRule(version.XQuery30),
	KindCompNamespaceConstructor:     keywordRule(version.XQuery30),
	KindNamespaceNodeTest:            keywordRule(version.XQuery30),
	KindAnyFunctionTest:              conformFunctionTest,
	KindTypedFunctionTest:            conformFunctionTest,
	KindParenthesizedItemType:        tokenRule(LParen, version.XQuery30),
	KindSequenceTypeUnion:            tokenRule(Pipe, version.XQuery30),
	KindPostfixExpr:                  conformPostfix,
	KindMapConstructor:               conformMap,
	KindSquareArrayConstructor:       firstRule(version.XQuery31),
	KindCurlyArrayConstructor:        keywordRule(version.XQuery31),
	KindArrowExpr:                    conformArrow,
	KindUnaryLookup:                  firstRule(version.XQuery31),
	KindStringConstructor:            firstRule(version.XQuery31),
	KindAnyMapTest:                   keywordRule(version.XQuery31),
	KindTypedMapTest:                 keywordRule(version.XQuery31),
	KindAnyArrayTest:                 keywordRule(version.XQuery31),
	KindTypedArrayTest:               keywordRule(version.XQuery31),
	KindOtherwiseExpr:                keywordRule(version.XQuery40, version.Saxon100),
	KindForMemberClause:              conformForMember,
	KindKeywordArgument:              tokenRule(Assign, version.XQuery40),
	KindParam:                        conformParam,
	KindIfExpr:                       conformIf,
	KindTernaryExpr:                  tokenRule(Ternary, version.XQuery40),
	KindEnumerationType:              keywordRule(version.XQuery40),
	KindRecordTest:                   conformRecord,
	KindRecordField:                  conformRecordField,
	KindUnionType:                    conformUnionType,
	KindTypeAlias:                    tokenRule(Tilde, version.Saxon98),
	KindTypeDecl:                     conformTypeDecl,
	KindOrExpr:                       operatorRule("orElse", version.Saxon99),
	KindAndExpr:                      operatorRule("andAlso", version.Saxon99),
	KindElvisExpr:                    tokenRule(Elvis, version.BaseX91),
	KindSimpleInlineFunctionExpr:     keywordRule(version.Saxon98),
	KindContextItemFunctionExpr:      tokenRule(Dot, version.Saxon100),
	KindLambdaFunctionExpr:           keywordRule(version.Saxon100),
	KindNonDeterministicFunctionCall: keywordRule(version.BaseX84),
	KindUpdateExpr:                   keywordRule(version.BaseX78),
	KindTransformWithExpr:            keywordRule(version.Update30, version.BaseX85),
	KindUpdatingFunctionCall:         keywordRule(version.Update30),
	KindInsertExpr:                   keywordRule(version.Update10),
	KindDeleteExpr:                   keywordRule(version.Update10),
	KindReplaceExpr:                  keywordRule(version.Update10),
	KindRenameExpr:                   keywordRule(version.Update10),
	KindCopyModifyExpr:               keywordRule(version.Update10),
	KindRevalidationDecl:             keywordRule(version.Update10),
	KindFTContainsExpr:               keywordRule(version.FullText10),
	KindFTOptionDecl:                 keywordRule(version.FullText10),
	KindFTScoreVar:                   keywordRule(version.FullText10),
	KindFTFuzzyOption:                keywordRule(version.BaseX84),
	KindBlockExpr:                    firstRule(version.Scripting10),
	KindBlockVarDecl:                 keywordRule(version.Scripting10),
	KindAssignmentExpr:               tokenRule(Assign, version.Scripting10),
	KindExitExpr:                     keywordRule(version.Scripting10),
	KindWhileExpr:                    keywordRule(version.Scripting10),
	KindApplyExpr:                    tokenRule(Semicolon, version.Scripting10),
	KindMapNodeConstructor:           keywordRule(version.MarkLogic80),
	KindArrayNodeConstructor:         keywordRule(version.MarkLogic80),
	KindNumberConstructor:            keywordRule(version.MarkLogic80),
	KindBooleanConstructor:           keywordRule(version.MarkLogic80),
	KindNullConstructor:              keywordRule(version.MarkLogic80),
	KindMapNodeTest:                  keywordRule(version.MarkLogic80),
	KindArrayNodeTest:                keywordRule(version.MarkLogic80),
	KindNumberNodeTest:               keywordRule(version.MarkLogic80),
	KindBooleanNodeTest:              keywordRule(version.MarkLogic80),
	KindNullNodeTest:                 keywordRule(version.MarkLogic80),
	KindAnyNodeTest:                  tokenRule(Literal, version.MarkLogic80),
	KindBinaryConstructor:            keywordRule(version.MarkLogic60),
	KindBinaryTest:                   keywordRule(version.MarkLogic60),
	KindSchemaComponentTest:          keywordRule(version.MarkLogic70),
	KindTransactionSeparator:         firstRule(version.MarkLogic60),
	KindEmptySequenceType:            conformEmptySequence,
	KindElementTest:                  conformNameTest,
	KindAttributeTest:                conformNameTest,
}

// Conformance returns the requirements of n. It fails for the kinds of node
// whose shape never depends on the targeted implementation.
func (n *Node) Conformance() (Conformance, bool) {
	rule, ok := conformanceRules[n.kind]
	if !ok {
		return Conformance{}, false
	}
	return rule(n), true
}

func conform(elem Element, list ...version.Requirement) Conformance {
	return Conformance{
		Requires: list,
		Element:  elem,
	}
}

func since(vs ...version.Version) []version.Requirement {
	list := make([]version.Requirement, 0, len(vs))
	for _, v := range vs {
		list = append(list, version.Since(v))
	}
	return list
}

// first returns the first child of n, or n itself when it has no children.
func first(n *Node) Element {
	if e := n.At(0); e != nil {
		return e
	}
	return n
}

func firstRule(vs ...version.Version) conformanceRule {
	return func(n *Node) Conformance {
		return conform(first(n), since(vs...)...)
	}
}

// keywordRule attaches the requirements to the first keyword of the node.
func keywordRule(vs ...version.Version) conformanceRule {
	return func(n *Node) Conformance {
		if kw := n.Token(Name); kw != nil {
			return conform(kw, since(vs...)...)
		}
		return conform(first(n), since(vs...)...)
	}
}

func tokenRule(kind rune, vs ...version.Version) conformanceRule {
	return func(n *Node) Conformance {
		if tok := n.Token(kind); tok != nil {
			return conform(tok, since(vs...)...)
		}
		return conform(first(n), since(vs...)...)
	}
}

// operatorRule requires the given versions when one of the operators is
// spelled as keyword. Otherwise the first operator is reported without
// requirements.
func operatorRule(keyword string, vs ...version.Version) conformanceRule {
	return func(n *Node) Conformance {
		if kw := n.Keyword(keyword); kw != nil {
			return conform(kw, since(vs...)...)
		}
		if op := n.Token(Name); op != nil {
			return conform(op)
		}
		return conform(first(n))
	}
}

func conformVersionDecl(n *Node) Conformance {
	if !n.HasKeyword("version") {
		if kw := n.Keyword("encoding"); kw != nil {
			return conform(kw, since(version.XQuery30)...)
		}
	}
	return conform(first(n))
}

func conformTryCatch(n *Node) Conformance {
	try := n.Child(KindTryClause)
	if try == nil {
		return conform(first(n), since(version.XQuery30, version.MarkLogic60)...)
	}
	return conform(first(try), since(version.XQuery30, version.MarkLogic60)...)
}

func conformCatch(n *Node) Conformance {
	if paren := n.Token(LParen); paren != nil {
		return conform(paren, since(version.MarkLogic60)...)
	}
	return conform(first(n))
}

func conformInlineFunction(n *Node) Conformance {
	if kw := n.Keyword("function"); kw != nil {
		return conform(kw, since(version.XQuery30)...)
	}
	return conform(first(n), since(version.XQuery30)...)
}

func conformQName(n *Node) Conformance {
	if uri := n.Token(BracedURI); uri != nil {
		return conform(uri, since(version.XQuery30)...)
	}
	return conform(first(n))
}

func conformWildcard(n *Node) Conformance {
	if uri := n.Token(BracedURI); uri != nil {
		return conform(uri, since(version.XQuery30)...)
	}
	return conform(first(n))
}

func conformCompatibility(n *Node) Conformance {
	leaf := n.Token(Name)
	if leaf == nil {
		return conform(first(n))
	}
	switch leaf.Literal {
	case "updating":
		return conform(leaf, since(version.Update10)...)
	case "private":
		return conform(leaf, since(version.MarkLogic60)...)
	default:
		return conform(leaf, since(version.Scripting10)...)
	}
}

func conformValidate(n *Node) Conformance {
	if kw := n.Keyword("as"); kw != nil {
		return conform(kw, since(version.MarkLogic60)...)
	}
	if kw := n.Keyword("type"); kw != nil {
		return conform(kw, since(version.XQuery30)...)
	}
	return conform(first(n))
}

func conformFunctionTest(n *Node) Conformance {
	if kw := n.Keyword("function"); kw != nil {
		return conform(kw, since(version.XQuery30)...)
	}
	return conform(first(n), since(version.XQuery30)...)
}

func conformPostfix(n *Node) Conformance {
	for c := range n.Nodes(KindArgumentList, KindLookup) {
		if c.Is(KindLookup) {
			return conform(first(c), since(version.XQuery31)...)
		}
		return conform(first(c), since(version.XQuery30)...)
	}
	return conform(first(n))
}

func conformMap(n *Node) Conformance {
	for entry := range n.Nodes(KindMapConstructorEntry) {
		if assign := entry.Token(Assign); assign != nil {
			return conform(assign, version.Since(version.Saxon94), version.Until(version.Saxon97))
		}
	}
	return conform(first(n), since(version.XQuery31)...)
}

func conformArrow(n *Node) Conformance {
	if op := n.Token(MappingArrow); op != nil {
		return conform(op, since(version.XQuery40)...)
	}
	return tokenRule(Arrow, version.XQuery31)(n)
}

func conformForMember(n *Node) Conformance {
	if kw := n.Keyword("member"); kw != nil {
		return conform(kw, since(version.XQuery40, version.Saxon100)...)
	}
	return conform(first(n), since(version.XQuery40, version.Saxon100)...)
}

func conformParam(n *Node) Conformance {
	if assign := n.Token(Assign); assign != nil {
		return conform(assign, since(version.XQuery40)...)
	}
	return conform(first(n))
}

func conformIf(n *Node) Conformance {
	if n.Child(KindEnclosedExpr) != nil && n.Keyword("then") == nil {
		return conform(first(n), since(version.XQuery40)...)
	}
	if !n.HasKeyword("else") {
		return conform(first(n), since(version.BaseX91)...)
	}
	return conform(first(n))
}

// conformRecord distinguishes the record test from the tuple type of Saxon
// whose syntax changed between releases.
func conformRecord(n *Node) Conformance {
	kw := n.Token(Name)
	if kw == nil {
		return conform(first(n))
	}
	if kw.Literal == "record" {
		return conform(kw, since(version.XQuery40, version.Saxon110)...)
	}
	var (
		elem Element = kw
		want         = version.Saxon98
	)
	if star := n.Token(Star); star != nil {
		elem, want = star, version.Saxon99
	}
	for field := range n.Nodes(KindRecordField) {
		if as := field.Keyword("as"); as != nil {
			return conform(as, since(version.Saxon100)...)
		}
		if opt := field.Token(Question, Elvis); opt != nil && want.Before(version.Saxon99) {
			elem, want = opt, version.Saxon99
		}
	}
	return conform(elem, since(want)...)
}

func conformRecordField(n *Node) Conformance {
	if as := n.Keyword("as"); as != nil {
		return conform(as, since(version.Saxon100)...)
	}
	if opt := n.Token(Question, Elvis); opt != nil {
		return conform(opt, since(version.Saxon99)...)
	}
	if colon := n.Token(Colon); colon != nil {
		return conform(colon, since(version.Saxon98)...)
	}
	return conform(first(n))
}

func conformUnionType(n *Node) Conformance {
	if kw := n.Keyword("union"); kw != nil {
		return conform(kw, since(version.Saxon98)...)
	}
	return tokenRule(Pipe, version.XQuery40)(n)
}

func conformTypeDecl(n *Node) Conformance {
	if kw := n.Keyword("item-type"); kw != nil {
		return conform(kw, since(version.XQuery40)...)
	}
	if kw := n.Keyword("type"); kw != nil {
		return conform(kw, since(version.Saxon98)...)
	}
	return conform(first(n), since(version.Saxon98)...)
}

func conformEmptySequence(n *Node) Conformance {
	kw := n.Keyword("empty")
	if kw == nil {
		return conform(first(n))
	}
	return conform(kw, version.Since(version.XQueryWD20030502), version.Since(version.MarkLogic09), version.Until(version.ExistDB40))
}

// conformNameTest reports the wildcards allowed in element and attribute
// tests by Saxon.
func conformNameTest(n *Node) Conformance {
	wc := n.Child(KindWildcard)
	if wc == nil || wc.Len() == 1 {
		return conform(first(n))
	}
	if star := wc.Token(Star); star != nil {
		return conform(star, since(version.Saxon100)...)
	}
	return conform(wc, since(version.Saxon100)...)
}
