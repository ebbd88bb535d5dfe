// Package parse converts charon source into a syntax tree of cached
// elements.  Parsing is total: every input produces a tree rooted at
// KindRoot, with error nodes standing in wherever a construct could not be
// recognised, and one diagnostic reported per error node.
package parse

import (
	"github.com/charon-lang/charon/diag"
	"github.com/charon-lang/charon/element"
	"github.com/charon-lang/charon/lex"
	"github.com/charon-lang/charon/pool"
	"github.com/charon-lang/charon/source"
	"github.com/charon-lang/charon/token"
)

type parser struct {
	tz     *lex.Tokenizer
	b      *element.Builder
	report diag.Reporter
}

func newParser(tz *lex.Tokenizer, cache *element.Cache, report diag.Reporter) *parser {
	return &parser{tz: tz, b: element.NewBuilder(cache, element.KindRoot), report: report}
}

// Root parses the whole input as a sequence of top-level constructs.
func Root(tz *lex.Tokenizer, cache *element.Cache, p *pool.Pool, report diag.Reporter) *element.Rooted {
	var ps = newParser(tz, cache, report)
	for ps.peek().Kind != token.EOF {
		ps.tlc()
	}
	return ps.b.Finish(p)
}

// TLC parses a single top-level construct.
func TLC(tz *lex.Tokenizer, cache *element.Cache, p *pool.Pool, report diag.Reporter) *element.Rooted {
	var ps = newParser(tz, cache, report)
	ps.tlc()
	return ps.b.Finish(p)
}

// Stmt parses a single statement.
func Stmt(tz *lex.Tokenizer, cache *element.Cache, p *pool.Pool, report diag.Reporter) *element.Rooted {
	var ps = newParser(tz, cache, report)
	ps.stmt()
	return ps.b.Finish(p)
}

// Expr parses a single expression.
func Expr(tz *lex.Tokenizer, cache *element.Cache, p *pool.Pool, report diag.Reporter) *element.Rooted {
	var ps = newParser(tz, cache, report)
	ps.expr(0)
	return ps.b.Finish(p)
}

// Helpers ----------

func (p *parser) peek() lex.Token {
	return p.tz.Peek()
}

// advance consumes the next token and appends it to the tree.
func (p *parser) advance() lex.Token {
	var tok = p.tz.Advance()
	p.b.Token(tok.Kind, p.tz.Text(tok))
	return tok
}

func (p *parser) loc(tok lex.Token) source.Location {
	return p.tz.Location(tok)
}

// tryConsume consumes the next token iff it has the given kind.
func (p *parser) tryConsume(kind token.Kind) bool {
	if p.peek().Kind == kind {
		p.advance()
		return true
	}
	return false
}

// consume requires the next token to have the given kind.  On a mismatch
// it reports a diagnostic, leaves an error node in the slot and does not
// consume the offending token.
func (p *parser) consume(kind token.Kind) bool {
	if p.tryConsume(kind) {
		return true
	}
	var tok = p.peek()
	p.report(diag.Expected{Loc: p.loc(tok), Expected: []token.Kind{kind}, Got: tok.Kind})
	p.errorNode()
	return false
}

// errorNode leaves an empty error node at the current position.
func (p *parser) errorNode() {
	p.b.NodeStart(element.KindError)
	p.b.NodeEnd()
}

// errorAdvance wraps the offending token in an error node.
func (p *parser) errorAdvance() {
	p.b.NodeStart(element.KindError)
	p.advance()
	p.b.NodeEnd()
}

// errorConsume recovers by consuming the offending token into an error
// node, guaranteeing progress.  Used where the caller loops over
// constructs and nothing else would consume the token.
func (p *parser) errorConsume() {
	if p.peek().Kind == token.EOF {
		p.errorNode()
		return
	}
	p.errorAdvance()
}

// errorRecover recovers from an unrecognised token: tokens that likely
// belong to an enclosing construct are left for it, anything else is
// consumed into the error node.
func (p *parser) errorRecover() {
	switch p.peek().Kind {
	case token.EOF, token.BraceRight, token.ParenthesesRight, token.BracketRight,
		token.Semicolon, token.Colon, token.Comma:
		p.errorNode()
	default:
		p.errorAdvance()
	}
}

// Top-level constructs ----------

// tlc:
//	attribute* (module | function | extern)
//
// Attributes attach as siblings immediately before the construct they
// annotate.
func (p *parser) tlc() {
	for p.peek().Kind == token.At {
		p.attribute()
	}
	switch p.peek().Kind {
	case token.KeywordModule:
		p.module()
	case token.KeywordFn:
		p.function()
	case token.KeywordExtern:
		p.extern()
	default:
		p.report(diag.ExpectedTopLevel{Loc: p.loc(p.peek())})
		p.errorConsume()
	}
}

// module:
//	"module" IDENT "{" tlc* "}"
func (p *parser) module() {
	p.b.NodeStart(element.KindTLCModule)
	p.advance()

	var name = ""
	if p.peek().Kind == token.Identifier {
		name = p.tz.Text(p.peek())
		p.advance()
	} else {
		var tok = p.peek()
		p.report(diag.Expected{Loc: p.loc(tok), Expected: []token.Kind{token.Identifier}, Got: tok.Kind})
		p.errorNode()
	}

	p.consume(token.BraceLeft)
	for {
		if p.tryConsume(token.BraceRight) {
			break
		}
		if p.peek().Kind == token.EOF {
			p.report(diag.UnfinishedModule{Loc: p.loc(p.peek()), Name: name})
			p.errorNode()
			break
		}
		p.tlc()
	}
	p.b.NodeEnd()
}

// function:
//	"fn" IDENT prototype block
func (p *parser) function() {
	p.b.NodeStart(element.KindTLCFunction)
	p.advance()
	p.consume(token.Identifier)
	p.prototype()
	if p.peek().Kind == token.BraceLeft {
		p.block()
	} else {
		var tok = p.peek()
		p.report(diag.Expected{Loc: p.loc(tok), Expected: []token.Kind{token.BraceLeft}, Got: tok.Kind})
		p.errorNode()
	}
	p.b.NodeEnd()
}

// extern:
//	"extern" "fn" IDENT prototype ";"
func (p *parser) extern() {
	p.b.NodeStart(element.KindTLCExtern)
	p.advance()
	p.consume(token.KeywordFn)
	p.consume(token.Identifier)
	p.prototype()
	p.consume(token.Semicolon)
	p.b.NodeEnd()
}

// prototype:
//	"(" (param ("," param)* ("," "...")?)? ")" (":" type)?
func (p *parser) prototype() {
	p.b.NodeStart(element.KindTypeFunction)
	p.consume(token.ParenthesesLeft)
	if !p.tryConsume(token.ParenthesesRight) {
		for {
			if p.tryConsume(token.Ellipsis) {
				p.consume(token.ParenthesesRight)
				break
			}
			p.parameter()
			if p.tryConsume(token.Comma) {
				continue
			}
			p.consume(token.ParenthesesRight)
			break
		}
	}
	if p.tryConsume(token.Colon) {
		p.typ()
	}
	p.b.NodeEnd()
}

// param:
//	IDENT ":" type
func (p *parser) parameter() {
	p.b.NodeStart(element.KindFunctionParameter)
	p.consume(token.Identifier)
	p.consume(token.Colon)
	p.typ()
	p.b.NodeEnd()
}

// attribute:
//	"@" IDENT ("(" attr-arg ("," attr-arg)* ")")?
func (p *parser) attribute() {
	p.b.NodeStart(element.KindAttribute)
	p.advance()
	p.consume(token.Identifier)
	if p.tryConsume(token.ParenthesesLeft) && !p.tryConsume(token.ParenthesesRight) {
		for {
			switch p.peek().Kind {
			case token.String, token.NumberDec, token.NumberHex, token.NumberBin, token.NumberOct:
				p.advance()
			default:
				p.report(diag.ExpectedAttributeArgument{Loc: p.loc(p.peek())})
				p.errorRecover()
			}
			if p.tryConsume(token.Comma) {
				continue
			}
			p.consume(token.ParenthesesRight)
			break
		}
	}
	p.b.NodeEnd()
}
