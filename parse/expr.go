package parse

import (
	"github.com/charon-lang/charon/diag"
	"github.com/charon-lang/charon/element"
	"github.com/charon-lang/charon/token"
)

// precedence of the binary operators; assignment binds loosest.
var precedence = map[token.Kind]int{
	token.Assign:  1,
	token.Eq:      2,
	token.NotEq:   2,
	token.Gt:      3,
	token.Gte:     3,
	token.Lt:      3,
	token.Lte:     3,
	token.Plus:    4,
	token.Minus:   4,
	token.Star:    5,
	token.Slash:   5,
	token.Percent: 5,
}

// expr parses an expression with binary operators of at least the given
// precedence, by precedence climbing.  The left operand is built first and
// adopted into a binary node once an operator is recognised.
func (p *parser) expr(prec int) {
	var cp = p.b.Checkpoint()
	p.exprUnary()
	for {
		var tok = p.peek()
		var q, ok = precedence[tok.Kind]
		if !ok || q < prec {
			return
		}
		if tok.Kind != token.Assign {
			// Assignment is right-associative, everything else left.
			q++
		}
		p.b.NodeStartAt(cp, element.KindExprBinary)
		p.advance()
		p.expr(q)
		p.b.NodeEnd()
	}
}

func (p *parser) exprUnary() {
	switch p.peek().Kind {
	case token.Not, token.Minus, token.Star, token.Amp:
		p.b.NodeStart(element.KindExprUnary)
		p.advance()
		p.exprUnary()
		p.b.NodeEnd()
		return
	}
	p.exprPostfix()
}

func (p *parser) exprPostfix() {
	var cp = p.b.Checkpoint()
	p.exprPrimary()
	for {
		switch p.peek().Kind {
		case token.BracketLeft:
			p.b.NodeStartAt(cp, element.KindExprIndex)
			p.advance()
			p.expr(0)
			p.consume(token.BracketRight)
			p.b.NodeEnd()
		case token.Dot:
			p.b.NodeStartAt(cp, element.KindExprSelector)
			p.advance()
			switch p.peek().Kind {
			case token.NumberDec:
				// Constant tuple index.
				p.advance()
			default:
				p.consume(token.Identifier)
			}
			p.b.NodeEnd()
		case token.KeywordAs:
			p.b.NodeStartAt(cp, element.KindExprCast)
			p.advance()
			p.typ()
			p.b.NodeEnd()
		default:
			return
		}
	}
}

func (p *parser) exprPrimary() {
	var tok = p.peek()
	switch tok.Kind {
	case token.NumberDec, token.NumberHex, token.NumberBin, token.NumberOct:
		p.literalNumeric()
	case token.String:
		p.literalString()
	case token.Char:
		p.literalChar()
	case token.KeywordTrue, token.KeywordFalse:
		p.b.NodeStart(element.KindExprLiteralBool)
		p.advance()
		p.b.NodeEnd()
	case token.Identifier:
		var cp = p.b.Checkpoint()
		p.advance()
		if p.peek().Kind == token.ParenthesesLeft {
			p.b.NodeStartAt(cp, element.KindExprCall)
			p.advance()
			p.exprList(false)
			p.b.NodeEnd()
			return
		}
		p.b.NodeStartAt(cp, element.KindExprVariable)
		p.b.NodeEnd()
	case token.ParenthesesLeft:
		// Parenthesised expressions are single-element tuples.
		p.b.NodeStart(element.KindExprTuple)
		p.advance()
		p.exprList(true)
		p.b.NodeEnd()
	default:
		p.report(diag.ExpectedPrimaryExpression{Loc: p.loc(tok)})
		p.errorRecover()
	}
}

// exprList parses expressions separated by commas up to the closing
// parenthesis, which is consumed.  The opening parenthesis is already
// part of the enclosing node.
func (p *parser) exprList(requireOne bool) {
	if !requireOne && p.tryConsume(token.ParenthesesRight) {
		return
	}
	for {
		p.expr(0)
		if p.tryConsume(token.Comma) {
			continue
		}
		if p.tryConsume(token.ParenthesesRight) {
			return
		}
		if p.peek().Kind == token.EOF {
			p.report(diag.Expected{Loc: p.loc(p.peek()), Expected: []token.Kind{token.ParenthesesRight}, Got: token.EOF})
			p.errorNode()
			return
		}
		// Only a binary operation could continue the expression here.
		p.report(diag.ExpectedBinaryOperation{Loc: p.loc(p.peek())})
		var before = p.peek()
		p.errorRecover()
		if p.peek() == before {
			return
		}
	}
}
