// Package element implements the hash-consed syntax element store: a
// content-addressed cache uniquely representing every token and node so
// that structurally equal subtrees share identity, plus the builder and
// editor that produce and functionally update trees of cached elements.
package element

// NodeKind identifies a syntax node kind.
type NodeKind int

// The node kinds.
const (
	KindRoot NodeKind = iota
	KindError

	KindTLCModule
	KindTLCFunction
	KindTLCExtern

	KindAttribute
	KindFunctionParameter

	KindTypeFunction
	KindTypePointer
	KindTypeArray
	KindTypeTuple
	KindTypeStruct
	KindTypeReference
	KindStructMember

	KindStmtBlock
	KindStmtNoop
	KindStmtDeclaration
	KindStmtExpression
	KindStmtReturn
	KindStmtIf
	KindStmtWhile
	KindStmtSwitch
	KindSwitchCase

	KindExprLiteralNumeric
	KindExprLiteralString
	KindExprLiteralChar
	KindExprLiteralBool
	KindExprBinary
	KindExprUnary
	KindExprVariable
	KindExprCall
	KindExprTuple
	KindExprCast
	KindExprIndex
	KindExprSelector

	nodeKindCount
)

var nodeNames = [nodeKindCount]string{
	KindRoot:  "root",
	KindError: "error",

	KindTLCModule:   "tlc.module",
	KindTLCFunction: "tlc.function",
	KindTLCExtern:   "tlc.extern",

	KindAttribute:         "attribute",
	KindFunctionParameter: "function.parameter",

	KindTypeFunction:  "type.function",
	KindTypePointer:   "type.pointer",
	KindTypeArray:     "type.array",
	KindTypeTuple:     "type.tuple",
	KindTypeStruct:    "type.struct",
	KindTypeReference: "type.reference",
	KindStructMember:  "struct.member",

	KindStmtBlock:       "stmt.block",
	KindStmtNoop:        "stmt.noop",
	KindStmtDeclaration: "stmt.declaration",
	KindStmtExpression:  "stmt.expression",
	KindStmtReturn:      "stmt.return",
	KindStmtIf:          "stmt.if",
	KindStmtWhile:       "stmt.while",
	KindStmtSwitch:      "stmt.switch",
	KindSwitchCase:      "switch.case",

	KindExprLiteralNumeric: "expr.literal_numeric",
	KindExprLiteralString:  "expr.literal_string",
	KindExprLiteralChar:    "expr.literal_char",
	KindExprLiteralBool:    "expr.literal_bool",
	KindExprBinary:         "expr.binary",
	KindExprUnary:          "expr.unary",
	KindExprVariable:       "expr.variable",
	KindExprCall:           "expr.call",
	KindExprTuple:          "expr.tuple",
	KindExprCast:           "expr.cast",
	KindExprIndex:          "expr.index",
	KindExprSelector:       "expr.selector",
}

// String returns the kind's display name.
func (k NodeKind) String() string {
	if k < 0 || k >= nodeKindCount {
		return "(invalid)"
	}
	return nodeNames[k]
}

// IsType reports whether the kind is a type node.
func (k NodeKind) IsType() bool {
	return k >= KindTypeFunction && k <= KindTypeReference
}
