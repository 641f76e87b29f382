package xquery

// Kind identifies the grammar production a Node was built from.
type Kind int

const (
	KindError Kind = iota
	KindModule
	KindMainModule
	KindLibraryModule
	KindVersionDecl
	KindModuleDecl
	KindProlog
	KindTransactionSeparator
	KindBoundarySpaceDecl
	KindDefaultCollationDecl
	KindBaseURIDecl
	KindConstructionDecl
	KindOrderingModeDecl
	KindEmptyOrderDecl
	KindCopyNamespacesDecl
	KindDecimalFormatDecl
	KindDFPropertyName
	KindNamespaceDecl
	KindDefaultNamespaceDecl
	KindSchemaImport
	KindSchemaPrefix
	KindModuleImport
	KindContextItemDecl
	KindVarDecl
	KindFunctionDecl
	KindParamList
	KindParam
	KindAnnotation
	KindCompatibilityAnnotation
	KindOptionDecl
	KindTypeDecl
	KindQueryBody
	KindEnclosedExpr
	KindFunctionBody
	KindQName
	KindWildcard
	KindExpr
	KindFLWORExpr
	KindForClause
	KindForBinding
	KindForMemberClause
	KindAllowingEmpty
	KindPositionalVar
	KindLetClause
	KindLetBinding
	KindWindowClause
	KindWindowStartCondition
	KindWindowEndCondition
	KindWindowVars
	KindCurrentItem
	KindPreviousItem
	KindNextItem
	KindWhereClause
	KindGroupByClause
	KindGroupingSpec
	KindOrderByClause
	KindOrderSpec
	KindOrderModifier
	KindCountClause
	KindReturnClause
	KindQuantifiedExpr
	KindQuantifiedBinding
	KindSwitchExpr
	KindSwitchCaseClause
	KindSwitchDefaultClause
	KindTypeswitchExpr
	KindCaseClause
	KindDefaultCaseClause
	KindSequenceTypeUnion
	KindIfExpr
	KindTryCatchExpr
	KindTryClause
	KindCatchClause
	KindCatchErrorList
	KindOrExpr
	KindAndExpr
	KindComparisonExpr
	KindOtherwiseExpr
	KindStringConcatExpr
	KindRangeExpr
	KindAdditiveExpr
	KindMultiplicativeExpr
	KindUnionExpr
	KindIntersectExceptExpr
	KindInstanceofExpr
	KindTreatExpr
	KindCastableExpr
	KindCastExpr
	KindArrowExpr
	KindArrowFunctionSpecifier
	KindUnaryExpr
	KindSimpleMapExpr
	KindPathExpr
	KindAxisStep
	KindForwardAxis
	KindReverseAxis
	KindAbbrevForwardStep
	KindAbbrevReverseStep
	KindNameTest
	KindPredicate
	KindPostfixExpr
	KindArgumentList
	KindArgumentPlaceholder
	KindKeywordArgument
	KindLookup
	KindUnaryLookup
	KindVarRef
	KindParenthesizedExpr
	KindContextItemExpr
	KindFunctionCall
	KindNamedFunctionRef
	KindInlineFunctionExpr
	KindMapConstructor
	KindMapConstructorEntry
	KindSquareArrayConstructor
	KindCurlyArrayConstructor
	KindStringLiteral
	KindIntegerLiteral
	KindDecimalLiteral
	KindDoubleLiteral
	KindOrderedExpr
	KindUnorderedExpr
	KindValidateExpr
	KindExtensionExpr
	KindPragma
	KindStringConstructor
	KindStringInterpolation
	KindDirElemConstructor
	KindDirAttribute
	KindDirAttributeValue
	KindDirCommentConstructor
	KindDirPIConstructor
	KindCDataSection
	KindCompDocConstructor
	KindCompElemConstructor
	KindCompAttrConstructor
	KindCompNamespaceConstructor
	KindCompTextConstructor
	KindCompCommentConstructor
	KindCompPIConstructor
	KindTypeDeclaration
	KindSequenceType
	KindEmptySequenceType
	KindAtomicOrUnionType
	KindAnyItemTest
	KindAnyKindTest
	KindDocumentTest
	KindTextTest
	KindCommentTest
	KindNamespaceNodeTest
	KindPITest
	KindAttributeTest
	KindElementTest
	KindSchemaAttributeTest
	KindSchemaElementTest
	KindAnyFunctionTest
	KindTypedFunctionTest
	KindAnyMapTest
	KindTypedMapTest
	KindAnyArrayTest
	KindTypedArrayTest
	KindParenthesizedItemType
	KindSingleType

	// full text
	KindFTContainsExpr
	KindFTSelection
	KindFTOr
	KindFTAnd
	KindFTMildNot
	KindFTUnaryNot
	KindFTPrimaryWithOptions
	KindFTWords
	KindFTAnyallOption
	KindFTTimes
	KindFTRange
	KindFTOrder
	KindFTWindow
	KindFTDistance
	KindFTScope
	KindFTContent
	KindFTWeight
	KindFTMatchOptions
	KindFTCaseOption
	KindFTDiacriticsOption
	KindFTStemOption
	KindFTThesaurusOption
	KindFTThesaurusID
	KindFTStopWordOption
	KindFTStopWords
	KindFTLanguageOption
	KindFTWildCardOption
	KindFTExtensionOption
	KindFTFuzzyOption
	KindFTIgnoreOption
	KindFTExtensionSelection
	KindFTScoreVar
	KindFTOptionDecl

	// update facility
	KindInsertExpr
	KindDeleteExpr
	KindReplaceExpr
	KindRenameExpr
	KindCopyModifyExpr
	KindCopyBinding
	KindTransformWithExpr
	KindUpdatingFunctionCall
	KindRevalidationDecl
	KindSourceExpr
	KindTargetExpr
	KindNewNameExpr

	// scripting extension
	KindBlockExpr
	KindBlockVarDecl
	KindBlockVarBinding
	KindAssignmentExpr
	KindExitExpr
	KindWhileExpr
	KindApplyExpr

	// vendor extensions
	KindRecordTest
	KindRecordField
	KindUnionType
	KindEnumerationType
	KindTypeAlias
	KindElvisExpr
	KindTernaryExpr
	KindContextItemFunctionExpr
	KindLambdaFunctionExpr
	KindSimpleInlineFunctionExpr
	KindNonDeterministicFunctionCall
	KindUpdateExpr
	KindBinaryConstructor
	KindBooleanConstructor
	KindNullConstructor
	KindNumberConstructor
	KindMapNodeConstructor
	KindMapNodeEntry
	KindArrayNodeConstructor
	KindBinaryTest
	KindBooleanNodeTest
	KindNullNodeTest
	KindNumberNodeTest
	KindMapNodeTest
	KindArrayNodeTest
	KindAnyNodeTest
	KindSchemaComponentTest
)

var kindNames = map[Kind]string{
	KindError:                        "Error",
	KindModule:                       "Module",
	KindMainModule:                   "MainModule",
	KindLibraryModule:                "LibraryModule",
	KindVersionDecl:                  "VersionDecl",
	KindModuleDecl:                   "ModuleDecl",
	KindProlog:                       "Prolog",
	KindTransactionSeparator:         "TransactionSeparator",
	KindBoundarySpaceDecl:            "BoundarySpaceDecl",
	KindDefaultCollationDecl:         "DefaultCollationDecl",
	KindBaseURIDecl:                  "BaseURIDecl",
	KindConstructionDecl:             "ConstructionDecl",
	KindOrderingModeDecl:             "OrderingModeDecl",
	KindEmptyOrderDecl:               "EmptyOrderDecl",
	KindCopyNamespacesDecl:           "CopyNamespacesDecl",
	KindDecimalFormatDecl:            "DecimalFormatDecl",
	KindDFPropertyName:               "DFPropertyName",
	KindNamespaceDecl:                "NamespaceDecl",
	KindDefaultNamespaceDecl:         "DefaultNamespaceDecl",
	KindSchemaImport:                 "SchemaImport",
	KindSchemaPrefix:                 "SchemaPrefix",
	KindModuleImport:                 "ModuleImport",
	KindContextItemDecl:              "ContextItemDecl",
	KindVarDecl:                      "VarDecl",
	KindFunctionDecl:                 "FunctionDecl",
	KindParamList:                    "ParamList",
	KindParam:                        "Param",
	KindAnnotation:                   "Annotation",
	KindCompatibilityAnnotation:      "CompatibilityAnnotation",
	KindOptionDecl:                   "OptionDecl",
	KindTypeDecl:                     "TypeDecl",
	KindQueryBody:                    "QueryBody",
	KindEnclosedExpr:                 "EnclosedExpr",
	KindFunctionBody:                 "FunctionBody",
	KindQName:                        "QName",
	KindWildcard:                     "Wildcard",
	KindExpr:                         "Expr",
	KindFLWORExpr:                    "FLWORExpr",
	KindForClause:                    "ForClause",
	KindForBinding:                   "ForBinding",
	KindForMemberClause:              "ForMemberClause",
	KindAllowingEmpty:                "AllowingEmpty",
	KindPositionalVar:                "PositionalVar",
	KindLetClause:                    "LetClause",
	KindLetBinding:                   "LetBinding",
	KindWindowClause:                 "WindowClause",
	KindWindowStartCondition:         "WindowStartCondition",
	KindWindowEndCondition:           "WindowEndCondition",
	KindWindowVars:                   "WindowVars",
	KindCurrentItem:                  "CurrentItem",
	KindPreviousItem:                 "PreviousItem",
	KindNextItem:                     "NextItem",
	KindWhereClause:                  "WhereClause",
	KindGroupByClause:                "GroupByClause",
	KindGroupingSpec:                 "GroupingSpec",
	KindOrderByClause:                "OrderByClause",
	KindOrderSpec:                    "OrderSpec",
	KindOrderModifier:                "OrderModifier",
	KindCountClause:                  "CountClause",
	KindReturnClause:                 "ReturnClause",
	KindQuantifiedExpr:               "QuantifiedExpr",
	KindQuantifiedBinding:            "QuantifiedBinding",
	KindSwitchExpr:                   "SwitchExpr",
	KindSwitchCaseClause:             "SwitchCaseClause",
	KindSwitchDefaultClause:          "SwitchDefaultClause",
	KindTypeswitchExpr:               "TypeswitchExpr",
	KindCaseClause:                   "CaseClause",
	KindDefaultCaseClause:            "DefaultCaseClause",
	KindSequenceTypeUnion:            "SequenceTypeUnion",
	KindIfExpr:                       "IfExpr",
	KindTryCatchExpr:                 "TryCatchExpr",
	KindTryClause:                    "TryClause",
	KindCatchClause:                  "CatchClause",
	KindCatchErrorList:               "CatchErrorList",
	KindOrExpr:                       "OrExpr",
	KindAndExpr:                      "AndExpr",
	KindComparisonExpr:               "ComparisonExpr",
	KindOtherwiseExpr:                "OtherwiseExpr",
	KindStringConcatExpr:             "StringConcatExpr",
	KindRangeExpr:                    "RangeExpr",
	KindAdditiveExpr:                 "AdditiveExpr",
	KindMultiplicativeExpr:           "MultiplicativeExpr",
	KindUnionExpr:                    "UnionExpr",
	KindIntersectExceptExpr:          "IntersectExceptExpr",
	KindInstanceofExpr:               "InstanceofExpr",
	KindTreatExpr:                    "TreatExpr",
	KindCastableExpr:                 "CastableExpr",
	KindCastExpr:                     "CastExpr",
	KindArrowExpr:                    "ArrowExpr",
	KindArrowFunctionSpecifier:       "ArrowFunctionSpecifier",
	KindUnaryExpr:                    "UnaryExpr",
	KindSimpleMapExpr:                "SimpleMapExpr",
	KindPathExpr:                     "PathExpr",
	KindAxisStep:                     "AxisStep",
	KindForwardAxis:                  "ForwardAxis",
	KindReverseAxis:                  "ReverseAxis",
	KindAbbrevForwardStep:            "AbbrevForwardStep",
	KindAbbrevReverseStep:            "AbbrevReverseStep",
	KindNameTest:                     "NameTest",
	KindPredicate:                    "Predicate",
	KindPostfixExpr:                  "PostfixExpr",
	KindArgumentList:                 "ArgumentList",
	KindArgumentPlaceholder:          "ArgumentPlaceholder",
	KindKeywordArgument:              "KeywordArgument",
	KindLookup:                       "Lookup",
	KindUnaryLookup:                  "UnaryLookup",
	KindVarRef:                       "VarRef",
	KindParenthesizedExpr:            "ParenthesizedExpr",
	KindContextItemExpr:              "ContextItemExpr",
	KindFunctionCall:                 "FunctionCall",
	KindNamedFunctionRef:             "NamedFunctionRef",
	KindInlineFunctionExpr:           "InlineFunctionExpr",
	KindMapConstructor:               "MapConstructor",
	KindMapConstructorEntry:          "MapConstructorEntry",
	KindSquareArrayConstructor:       "SquareArrayConstructor",
	KindCurlyArrayConstructor:        "CurlyArrayConstructor",
	KindStringLiteral:                "StringLiteral",
	KindIntegerLiteral:               "IntegerLiteral",
	KindDecimalLiteral:               "DecimalLiteral",
	KindDoubleLiteral:                "DoubleLiteral",
	KindOrderedExpr:                  "OrderedExpr",
	KindUnorderedExpr:                "UnorderedExpr",
	KindValidateExpr:                 "ValidateExpr",
	KindExtensionExpr:                "ExtensionExpr",
	KindPragma:                       "Pragma",
	KindStringConstructor:            "StringConstructor",
	KindStringInterpolation:          "StringInterpolation",
	KindDirElemConstructor:           "DirElemConstructor",
	KindDirAttribute:                 "DirAttribute",
	KindDirAttributeValue:            "DirAttributeValue",
	KindDirCommentConstructor:        "DirCommentConstructor",
	KindDirPIConstructor:             "DirPIConstructor",
	KindCDataSection:                 "CDataSection",
	KindCompDocConstructor:           "CompDocConstructor",
	KindCompElemConstructor:          "CompElemConstructor",
	KindCompAttrConstructor:          "CompAttrConstructor",
	KindCompNamespaceConstructor:     "CompNamespaceConstructor",
	KindCompTextConstructor:          "CompTextConstructor",
	KindCompCommentConstructor:       "CompCommentConstructor",
	KindCompPIConstructor:            "CompPIConstructor",
	KindTypeDeclaration:              "TypeDeclaration",
	KindSequenceType:                 "SequenceType",
	KindEmptySequenceType:            "EmptySequenceType",
	KindAtomicOrUnionType:            "AtomicOrUnionType",
	KindAnyItemTest:                  "AnyItemTest",
	KindAnyKindTest:                  "AnyKindTest",
	KindDocumentTest:                 "DocumentTest",
	KindTextTest:                     "TextTest",
	KindCommentTest:                  "CommentTest",
	KindNamespaceNodeTest:            "NamespaceNodeTest",
	KindPITest:                       "PITest",
	KindAttributeTest:                "AttributeTest",
	KindElementTest:                  "ElementTest",
	KindSchemaAttributeTest:          "SchemaAttributeTest",
	KindSchemaElementTest:            "SchemaElementTest",
	KindAnyFunctionTest:              "AnyFunctionTest",
	KindTypedFunctionTest:            "TypedFunctionTest",
	KindAnyMapTest:                   "AnyMapTest",
	KindTypedMapTest:                 "TypedMapTest",
	KindAnyArrayTest:                 "AnyArrayTest",
	KindTypedArrayTest:               "TypedArrayTest",
	KindParenthesizedItemType:        "ParenthesizedItemType",
	KindSingleType:                   "SingleType",
	KindFTContainsExpr:               "FTContainsExpr",
	KindFTSelection:                  "FTSelection",
	KindFTOr:                         "FTOr",
	KindFTAnd:                        "FTAnd",
	KindFTMildNot:                    "FTMildNot",
	KindFTUnaryNot:                   "FTUnaryNot",
	KindFTPrimaryWithOptions:         "FTPrimaryWithOptions",
	KindFTWords:                      "FTWords",
	KindFTAnyallOption:               "FTAnyallOption",
	KindFTTimes:                      "FTTimes",
	KindFTRange:                      "FTRange",
	KindFTOrder:                      "FTOrder",
	KindFTWindow:                     "FTWindow",
	KindFTDistance:                   "FTDistance",
	KindFTScope:                      "FTScope",
	KindFTContent:                    "FTContent",
	KindFTWeight:                     "FTWeight",
	KindFTMatchOptions:               "FTMatchOptions",
	KindFTCaseOption:                 "FTCaseOption",
	KindFTDiacriticsOption:           "FTDiacriticsOption",
	KindFTStemOption:                 "FTStemOption",
	KindFTThesaurusOption:            "FTThesaurusOption",
	KindFTThesaurusID:                "FTThesaurusID",
	KindFTStopWordOption:             "FTStopWordOption",
	KindFTStopWords:                  "FTStopWords",
	KindFTLanguageOption:             "FTLanguageOption",
	KindFTWildCardOption:             "FTWildCardOption",
	KindFTExtensionOption:            "FTExtensionOption",
	KindFTFuzzyOption:                "FTFuzzyOption",
	KindFTIgnoreOption:               "FTIgnoreOption",
	KindFTExtensionSelection:         "FTExtensionSelection",
	KindFTScoreVar:                   "FTScoreVar",
	KindFTOptionDecl:                 "FTOptionDecl",
	KindInsertExpr:                   "InsertExpr",
	KindDeleteExpr:                   "DeleteExpr",
	KindReplaceExpr:                  "ReplaceExpr",
	KindRenameExpr:                   "RenameExpr",
	KindCopyModifyExpr:               "CopyModifyExpr",
	KindCopyBinding:                  "CopyBinding",
	KindTransformWithExpr:            "TransformWithExpr",
	KindUpdatingFunctionCall:         "UpdatingFunctionCall",
	KindRevalidationDecl:             "RevalidationDecl",
	KindSourceExpr:                   "SourceExpr",
	KindTargetExpr:                   "TargetExpr",
	KindNewNameExpr:                  "NewNameExpr",
	KindBlockExpr:                    "BlockExpr",
	KindBlockVarDecl:                 "BlockVarDecl",
	KindBlockVarBinding:              "BlockVarBinding",
	KindAssignmentExpr:               "AssignmentExpr",
	KindExitExpr:                     "ExitExpr",
	KindWhileExpr:                    "WhileExpr",
	KindApplyExpr:                    "ApplyExpr",
	KindRecordTest:                   "RecordTest",
	KindRecordField:                  "RecordField",
	KindUnionType:                    "UnionType",
	KindEnumerationType:              "EnumerationType",
	KindTypeAlias:                    "TypeAlias",
	KindElvisExpr:                    "ElvisExpr",
	KindTernaryExpr:                  "TernaryExpr",
	KindContextItemFunctionExpr:      "ContextItemFunctionExpr",
	KindLambdaFunctionExpr:           "LambdaFunctionExpr",
	KindSimpleInlineFunctionExpr:     "SimpleInlineFunctionExpr",
	KindNonDeterministicFunctionCall: "NonDeterministicFunctionCall",
	KindUpdateExpr:                   "UpdateExpr",
	KindBinaryConstructor:            "BinaryConstructor",
	KindBooleanConstructor:           "BooleanConstructor",
	KindNullConstructor:              "NullConstructor",
	KindNumberConstructor:            "NumberConstructor",
	KindMapNodeConstructor:           "MapNodeConstructor",
	KindMapNodeEntry:                 "MapNodeEntry",
	KindArrayNodeConstructor:         "ArrayNodeConstructor",
	KindBinaryTest:                   "BinaryTest",
	KindBooleanNodeTest:              "BooleanNodeTest",
	KindNullNodeTest:                 "NullNodeTest",
	KindNumberNodeTest:               "NumberNodeTest",
	KindMapNodeTest:                  "MapNodeTest",
	KindArrayNodeTest:                "ArrayNodeTest",
	KindAnyNodeTest:                  "AnyNodeTest",
	KindSchemaComponentTest:          "SchemaComponentTest",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
