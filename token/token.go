// Package token defines the closed set of token kinds recognised by the
// lexer.  The set is generated from the declarative table below: adding a
// token to the language means adding one entry.
package token

// Kind identifies a token kind.
type Kind int

// Token is a lexed token.  Text is set only for kinds with content; all
// instances of a content-less kind are identical.
type Token struct {
	Kind Kind
	Text string
}

// The token kinds.  Declaration order is the lexer's match order: first
// match wins, so keywords precede Identifier and multi-byte operators
// precede their prefixes.
const (
	Unknown Kind = iota
	EOF

	KeywordModule
	KeywordFn
	KeywordExtern
	KeywordLet
	KeywordReturn
	KeywordIf
	KeywordElse
	KeywordWhile
	KeywordSwitch
	KeywordCase
	KeywordDefault
	KeywordStruct
	KeywordAs
	KeywordTrue
	KeywordFalse

	Identifier

	NumberHex
	NumberBin
	NumberOct
	NumberDec
	String
	Char

	Ellipsis
	Arrow
	Eq
	NotEq
	Gte
	Lte

	ParenthesesLeft
	ParenthesesRight
	BraceLeft
	BraceRight
	BracketLeft
	BracketRight
	Semicolon
	Colon
	Comma
	Dot
	At

	Assign
	Plus
	Minus
	Star
	Slash
	Percent
	Not
	Amp
	Gt
	Lt

	kindCount
)

// KindCount is the number of declared kinds, sentinels included.
const KindCount = int(kindCount)

// Spec is one row of the token table.
type Spec struct {
	Kind       Kind
	Name       string // display name, used in diagnostics
	Pattern    string // lexer pattern; empty for sentinels
	HasContent bool   // true when instances carry varying text
}

// table is indexed by Kind.  Sentinels have no pattern.
var table = [kindCount]Spec{
	Unknown: {Name: "(unknown)"},
	EOF:     {Name: "(eof)"},

	KeywordModule:  {Name: "module", Pattern: `module\b`},
	KeywordFn:      {Name: "fn", Pattern: `fn\b`},
	KeywordExtern:  {Name: "extern", Pattern: `extern\b`},
	KeywordLet:     {Name: "let", Pattern: `let\b`},
	KeywordReturn:  {Name: "return", Pattern: `return\b`},
	KeywordIf:      {Name: "if", Pattern: `if\b`},
	KeywordElse:    {Name: "else", Pattern: `else\b`},
	KeywordWhile:   {Name: "while", Pattern: `while\b`},
	KeywordSwitch:  {Name: "switch", Pattern: `switch\b`},
	KeywordCase:    {Name: "case", Pattern: `case\b`},
	KeywordDefault: {Name: "default", Pattern: `default\b`},
	KeywordStruct:  {Name: "struct", Pattern: `struct\b`},
	KeywordAs:      {Name: "as", Pattern: `as\b`},
	KeywordTrue:    {Name: "true", Pattern: `true\b`},
	KeywordFalse:   {Name: "false", Pattern: `false\b`},

	Identifier: {Name: "identifier", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, HasContent: true},

	NumberHex: {Name: "number", Pattern: `0x[0-9a-fA-F]+`, HasContent: true},
	NumberBin: {Name: "number", Pattern: `0b[01]+`, HasContent: true},
	NumberOct: {Name: "number", Pattern: `0o[0-7]+`, HasContent: true},
	NumberDec: {Name: "number", Pattern: `[0-9]+`, HasContent: true},
	String:    {Name: "string", Pattern: `"(?:\\.|[^"\\])*"`, HasContent: true},
	Char:      {Name: "char", Pattern: `'(?:\\.|[^'\\])*'`, HasContent: true},

	Ellipsis: {Name: "...", Pattern: `\.\.\.`},
	Arrow:    {Name: "->", Pattern: `->`},
	Eq:       {Name: "==", Pattern: `==`},
	NotEq:    {Name: "!=", Pattern: `!=`},
	Gte:      {Name: ">=", Pattern: `>=`},
	Lte:      {Name: "<=", Pattern: `<=`},

	ParenthesesLeft:  {Name: "(", Pattern: `\(`},
	ParenthesesRight: {Name: ")", Pattern: `\)`},
	BraceLeft:        {Name: "{", Pattern: `\{`},
	BraceRight:       {Name: "}", Pattern: `\}`},
	BracketLeft:      {Name: "[", Pattern: `\[`},
	BracketRight:     {Name: "]", Pattern: `\]`},
	Semicolon:        {Name: ";", Pattern: `;`},
	Colon:            {Name: ":", Pattern: `:`},
	Comma:            {Name: ",", Pattern: `,`},
	Dot:              {Name: ".", Pattern: `\.`},
	At:               {Name: "@", Pattern: `@`},

	Assign:  {Name: "=", Pattern: `=`},
	Plus:    {Name: "+", Pattern: `\+`},
	Minus:   {Name: "-", Pattern: `-`},
	Star:    {Name: "*", Pattern: `\*`},
	Slash:   {Name: "/", Pattern: `/`},
	Percent: {Name: "%", Pattern: `%`},
	Not:     {Name: "!", Pattern: `!`},
	Amp:     {Name: "&", Pattern: `&`},
	Gt:      {Name: ">", Pattern: `>`},
	Lt:      {Name: "<", Pattern: `<`},
}

// String returns the kind's display name.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return table[Unknown].Name
	}
	return table[k].Name
}

// HasContent reports whether tokens of this kind carry varying text.
func (k Kind) HasContent() bool {
	if k < 0 || k >= kindCount {
		return false
	}
	return table[k].HasContent
}

// Pattern returns the kind's lexer pattern, or "" for sentinels.
func (k Kind) Pattern() string {
	if k < 0 || k >= kindCount {
		return ""
	}
	return table[k].Pattern
}

// Specs returns the token table in declaration order, sentinels included.
func Specs() []Spec {
	var specs = make([]Spec, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		var s = table[k]
		s.Kind = k
		specs = append(specs, s)
	}
	return specs
}
