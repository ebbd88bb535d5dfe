// Package diag defines the diagnostics emitted by the lexer and parser,
// and renders them against their source.
package diag

import (
	"fmt"
	"strings"

	"github.com/charon-lang/charon/source"
	"github.com/charon-lang/charon/token"
)

// Kind identifies a diagnostic kind.
type Kind int

const (
	KindUnexpectedSymbol Kind = iota

	KindUnfinishedModule

	KindExpected
	KindExpectedStatement
	KindExpectedBinaryOperation
	KindExpectedPrimaryExpression
	KindExpectedTopLevel
	KindExpectedNumericLiteral
	KindExpectedAttributeArgument

	KindTooLargeCharLiteral
	KindTooLargeEscapeSequence
	KindTooLargeNumericConstant

	KindEmptyCharLiteral

	KindDuplicateDefault

	kindCount
)

// templates maps each kind to its printf-style message template.  A loaded
// catalog may override a template by its untranslated form.
var templates = [kindCount]string{
	KindUnexpectedSymbol: "unexpected symbol",

	KindUnfinishedModule: "unfinished module `%s`",

	KindExpected:                  "expected %s got %s",
	KindExpectedStatement:         "expected a statement",
	KindExpectedBinaryOperation:   "expected a binary operation",
	KindExpectedPrimaryExpression: "expected a primary expression",
	KindExpectedTopLevel:          "expected a top level construct",
	KindExpectedNumericLiteral:    "expected a numeric literal",
	KindExpectedAttributeArgument: "expected an attribute argument",

	KindTooLargeCharLiteral:     "char literal is too large",
	KindTooLargeEscapeSequence:  "escape sequence is too large",
	KindTooLargeNumericConstant: "numeric constant is too large",

	KindEmptyCharLiteral: "char literal is empty",

	KindDuplicateDefault: "duplicate default",
}

func message(kind Kind, args ...interface{}) string {
	var tmpl = templates[kind]
	if t, ok := translate(tmpl); ok {
		tmpl = t
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Diagnostic is a kinded error carrying the source span it concerns.
type Diagnostic interface {
	error
	Kind() Kind
	Location() source.Location
}

// Reporter consumes diagnostics as they are produced.
type Reporter func(Diagnostic)

// UnexpectedSymbol reports an input byte no token pattern matches.
type UnexpectedSymbol struct {
	Loc source.Location
}

func (d UnexpectedSymbol) Kind() Kind                { return KindUnexpectedSymbol }
func (d UnexpectedSymbol) Location() source.Location { return d.Loc }
func (d UnexpectedSymbol) Error() string             { return message(KindUnexpectedSymbol) }

// UnfinishedModule reports a module body left open at end of input.
type UnfinishedModule struct {
	Loc  source.Location
	Name string
}

func (d UnfinishedModule) Kind() Kind                { return KindUnfinishedModule }
func (d UnfinishedModule) Location() source.Location { return d.Loc }
func (d UnfinishedModule) Error() string             { return message(KindUnfinishedModule, d.Name) }

// Expected reports a token mismatch.
type Expected struct {
	Loc      source.Location
	Expected []token.Kind
	Got      token.Kind
}

func (d Expected) Kind() Kind                { return KindExpected }
func (d Expected) Location() source.Location { return d.Loc }

func (d Expected) Error() string {
	var names = make([]string, len(d.Expected))
	for i, k := range d.Expected {
		names[i] = k.String()
	}
	return message(KindExpected, strings.Join(names, ", "), d.Got.String())
}

// ExpectedStatement reports a token that starts no statement.
type ExpectedStatement struct {
	Loc source.Location
}

func (d ExpectedStatement) Kind() Kind                { return KindExpectedStatement }
func (d ExpectedStatement) Location() source.Location { return d.Loc }
func (d ExpectedStatement) Error() string             { return message(KindExpectedStatement) }

// ExpectedBinaryOperation reports a token where only a binary operation
// could continue an expression.
type ExpectedBinaryOperation struct {
	Loc source.Location
}

func (d ExpectedBinaryOperation) Kind() Kind                { return KindExpectedBinaryOperation }
func (d ExpectedBinaryOperation) Location() source.Location { return d.Loc }
func (d ExpectedBinaryOperation) Error() string             { return message(KindExpectedBinaryOperation) }

// ExpectedPrimaryExpression reports a token that starts no expression.
type ExpectedPrimaryExpression struct {
	Loc source.Location
}

func (d ExpectedPrimaryExpression) Kind() Kind                { return KindExpectedPrimaryExpression }
func (d ExpectedPrimaryExpression) Location() source.Location { return d.Loc }
func (d ExpectedPrimaryExpression) Error() string             { return message(KindExpectedPrimaryExpression) }

// ExpectedTopLevel reports a token that starts no top-level construct.
type ExpectedTopLevel struct {
	Loc source.Location
}

func (d ExpectedTopLevel) Kind() Kind                { return KindExpectedTopLevel }
func (d ExpectedTopLevel) Location() source.Location { return d.Loc }
func (d ExpectedTopLevel) Error() string             { return message(KindExpectedTopLevel) }

// ExpectedNumericLiteral reports a non-numeric token where a numeric
// literal is required.
type ExpectedNumericLiteral struct {
	Loc source.Location
}

func (d ExpectedNumericLiteral) Kind() Kind                { return KindExpectedNumericLiteral }
func (d ExpectedNumericLiteral) Location() source.Location { return d.Loc }
func (d ExpectedNumericLiteral) Error() string             { return message(KindExpectedNumericLiteral) }

// ExpectedAttributeArgument reports an attribute argument that is neither
// a string nor a number.
type ExpectedAttributeArgument struct {
	Loc source.Location
}

func (d ExpectedAttributeArgument) Kind() Kind                { return KindExpectedAttributeArgument }
func (d ExpectedAttributeArgument) Location() source.Location { return d.Loc }
func (d ExpectedAttributeArgument) Error() string             { return message(KindExpectedAttributeArgument) }

// TooLargeCharLiteral reports a char literal holding more than one
// character.
type TooLargeCharLiteral struct {
	Loc source.Location
}

func (d TooLargeCharLiteral) Kind() Kind                { return KindTooLargeCharLiteral }
func (d TooLargeCharLiteral) Location() source.Location { return d.Loc }
func (d TooLargeCharLiteral) Error() string             { return message(KindTooLargeCharLiteral) }

// TooLargeEscapeSequence reports an escape sequence beyond the valid
// character range.
type TooLargeEscapeSequence struct {
	Loc source.Location
}

func (d TooLargeEscapeSequence) Kind() Kind                { return KindTooLargeEscapeSequence }
func (d TooLargeEscapeSequence) Location() source.Location { return d.Loc }
func (d TooLargeEscapeSequence) Error() string             { return message(KindTooLargeEscapeSequence) }

// TooLargeNumericConstant reports a numeric literal that overflows.
type TooLargeNumericConstant struct {
	Loc source.Location
}

func (d TooLargeNumericConstant) Kind() Kind                { return KindTooLargeNumericConstant }
func (d TooLargeNumericConstant) Location() source.Location { return d.Loc }
func (d TooLargeNumericConstant) Error() string             { return message(KindTooLargeNumericConstant) }

// EmptyCharLiteral reports a char literal with no character.
type EmptyCharLiteral struct {
	Loc source.Location
}

func (d EmptyCharLiteral) Kind() Kind                { return KindEmptyCharLiteral }
func (d EmptyCharLiteral) Location() source.Location { return d.Loc }
func (d EmptyCharLiteral) Error() string             { return message(KindEmptyCharLiteral) }

// DuplicateDefault reports a second default case in one switch.
type DuplicateDefault struct {
	Loc source.Location
}

func (d DuplicateDefault) Kind() Kind                { return KindDuplicateDefault }
func (d DuplicateDefault) Location() source.Location { return d.Loc }
func (d DuplicateDefault) Error() string             { return message(KindDuplicateDefault) }
