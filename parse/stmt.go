package parse

import (
	"github.com/charon-lang/charon/diag"
	"github.com/charon-lang/charon/element"
	"github.com/charon-lang/charon/token"
)

func (p *parser) stmt() {
	switch p.peek().Kind {
	case token.BraceLeft:
		p.block()
	case token.Semicolon:
		p.b.NodeStart(element.KindStmtNoop)
		p.advance()
		p.b.NodeEnd()
	case token.KeywordLet:
		p.declaration()
	case token.KeywordReturn:
		p.returnStmt()
	case token.KeywordIf:
		p.ifStmt()
	case token.KeywordWhile:
		p.whileStmt()
	case token.KeywordSwitch:
		p.switchStmt()
	default:
		if startsExpr(p.peek().Kind) {
			p.b.NodeStart(element.KindStmtExpression)
			p.expr(0)
			p.consume(token.Semicolon)
			p.b.NodeEnd()
			return
		}
		p.report(diag.ExpectedStatement{Loc: p.loc(p.peek())})
		p.errorConsume()
	}
}

// block:
//	"{" stmt* "}"
func (p *parser) block() {
	p.b.NodeStart(element.KindStmtBlock)
	p.consume(token.BraceLeft)
	for {
		if p.tryConsume(token.BraceRight) {
			break
		}
		if p.peek().Kind == token.EOF {
			p.report(diag.Expected{Loc: p.loc(p.peek()), Expected: []token.Kind{token.BraceRight}, Got: token.EOF})
			p.errorNode()
			break
		}
		p.stmt()
	}
	p.b.NodeEnd()
}

// declaration:
//	"let" IDENT (":" type)? ("=" expr)? ";"
func (p *parser) declaration() {
	p.b.NodeStart(element.KindStmtDeclaration)
	p.advance()
	p.consume(token.Identifier)
	if p.tryConsume(token.Colon) {
		p.typ()
	}
	if p.tryConsume(token.Assign) {
		p.expr(0)
	}
	p.consume(token.Semicolon)
	p.b.NodeEnd()
}

// returnStmt:
//	"return" expr? ";"
func (p *parser) returnStmt() {
	p.b.NodeStart(element.KindStmtReturn)
	p.advance()
	if p.peek().Kind != token.Semicolon {
		p.expr(0)
	}
	p.consume(token.Semicolon)
	p.b.NodeEnd()
}

// ifStmt:
//	"if" "(" expr ")" stmt ("else" stmt)?
func (p *parser) ifStmt() {
	p.b.NodeStart(element.KindStmtIf)
	p.advance()
	p.consume(token.ParenthesesLeft)
	p.expr(0)
	p.consume(token.ParenthesesRight)
	p.stmt()
	if p.tryConsume(token.KeywordElse) {
		p.stmt()
	}
	p.b.NodeEnd()
}

// whileStmt:
//	"while" "(" expr ")" stmt
func (p *parser) whileStmt() {
	p.b.NodeStart(element.KindStmtWhile)
	p.advance()
	p.consume(token.ParenthesesLeft)
	p.expr(0)
	p.consume(token.ParenthesesRight)
	p.stmt()
	p.b.NodeEnd()
}

// switchStmt:
//	"switch" "(" expr ")" "{" (("case" expr | "default") ":" stmt*)* "}"
//
// A second default case is reported and parsed into an error node.
func (p *parser) switchStmt() {
	p.b.NodeStart(element.KindStmtSwitch)
	p.advance()
	p.consume(token.ParenthesesLeft)
	p.expr(0)
	p.consume(token.ParenthesesRight)
	p.consume(token.BraceLeft)

	var seenDefault = false
	for {
		if p.tryConsume(token.BraceRight) {
			break
		}
		switch p.peek().Kind {
		case token.KeywordCase:
			p.b.NodeStart(element.KindSwitchCase)
			p.advance()
			p.expr(0)
			p.consume(token.Colon)
			p.caseBody()
			p.b.NodeEnd()
		case token.KeywordDefault:
			var kind = element.KindSwitchCase
			if seenDefault {
				p.report(diag.DuplicateDefault{Loc: p.loc(p.peek())})
				kind = element.KindError
			}
			seenDefault = true
			p.b.NodeStart(kind)
			p.advance()
			p.consume(token.Colon)
			p.caseBody()
			p.b.NodeEnd()
		case token.EOF:
			p.report(diag.Expected{Loc: p.loc(p.peek()), Expected: []token.Kind{token.BraceRight}, Got: token.EOF})
			p.errorNode()
			p.b.NodeEnd()
			return
		default:
			p.report(diag.Expected{
				Loc:      p.loc(p.peek()),
				Expected: []token.Kind{token.KeywordCase, token.KeywordDefault, token.BraceRight},
				Got:      p.peek().Kind,
			})
			var before = p.peek()
			p.errorRecover()
			if p.peek() == before {
				// No way back into the case list; give up on this switch.
				p.b.NodeEnd()
				return
			}
		}
	}
	p.b.NodeEnd()
}

func (p *parser) caseBody() {
	for {
		switch p.peek().Kind {
		case token.KeywordCase, token.KeywordDefault, token.BraceRight, token.EOF:
			return
		}
		p.stmt()
	}
}

func startsExpr(kind token.Kind) bool {
	switch kind {
	case token.Identifier, token.NumberDec, token.NumberHex, token.NumberBin, token.NumberOct,
		token.String, token.Char, token.KeywordTrue, token.KeywordFalse,
		token.ParenthesesLeft, token.Not, token.Minus, token.Star, token.Amp:
		return true
	}
	return false
}
