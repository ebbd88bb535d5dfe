package parse

import (
	"github.com/charon-lang/charon/diag"
	"github.com/charon-lang/charon/element"
	"github.com/charon-lang/charon/token"
)

// typ parses a type, preceded by any attributes:
//	attribute* ( "struct" "{" (member)* "}"
//	           | "(" type ("," type)* ")"
//	           | "[" NUMBER "]" type
//	           | "*" type
//	           | IDENT )
//
// Attributes attach as siblings immediately before the type node.
func (p *parser) typ() {
	for p.peek().Kind == token.At {
		p.attribute()
	}
	switch p.peek().Kind {
	case token.KeywordStruct:
		p.structType()
	case token.ParenthesesLeft:
		p.tupleType()
	case token.BracketLeft:
		p.arrayType()
	case token.Star:
		p.b.NodeStart(element.KindTypePointer)
		p.advance()
		p.typ()
		p.b.NodeEnd()
	case token.Identifier:
		p.b.NodeStart(element.KindTypeReference)
		p.advance()
		p.b.NodeEnd()
	default:
		var tok = p.peek()
		p.report(diag.Expected{Loc: p.loc(tok), Expected: []token.Kind{token.Identifier}, Got: tok.Kind})
		p.errorNode()
	}
}

// structType:
//	"struct" "{" (IDENT ":" type ";")* "}"
func (p *parser) structType() {
	p.b.NodeStart(element.KindTypeStruct)
	p.advance()
	p.consume(token.BraceLeft)
	for {
		if p.tryConsume(token.BraceRight) {
			break
		}
		switch p.peek().Kind {
		case token.Identifier:
			p.structMember()
		case token.EOF:
			p.report(diag.Expected{Loc: p.loc(p.peek()), Expected: []token.Kind{token.BraceRight}, Got: token.EOF})
			p.errorNode()
			p.b.NodeEnd()
			return
		default:
			p.report(diag.Expected{
				Loc:      p.loc(p.peek()),
				Expected: []token.Kind{token.Identifier, token.BraceRight},
				Got:      p.peek().Kind,
			})
			var before = p.peek()
			p.errorRecover()
			if p.peek() == before {
				p.b.NodeEnd()
				return
			}
		}
	}
	p.b.NodeEnd()
}

// structMember:
//	IDENT ":" type ";"
func (p *parser) structMember() {
	p.b.NodeStart(element.KindStructMember)
	p.advance()
	p.consume(token.Colon)
	p.typ()
	p.consume(token.Semicolon)
	p.b.NodeEnd()
}

// tupleType:
//	"(" type ("," type)* ")"
func (p *parser) tupleType() {
	p.b.NodeStart(element.KindTypeTuple)
	p.advance()
	for {
		p.typ()
		if p.tryConsume(token.Comma) {
			continue
		}
		p.consume(token.ParenthesesRight)
		break
	}
	p.b.NodeEnd()
}

// arrayType:
//	"[" NUMBER "]" type
func (p *parser) arrayType() {
	p.b.NodeStart(element.KindTypeArray)
	p.advance()
	switch p.peek().Kind {
	case token.NumberDec, token.NumberHex, token.NumberBin, token.NumberOct:
		p.literalNumeric()
	default:
		p.report(diag.ExpectedNumericLiteral{Loc: p.loc(p.peek())})
		p.errorNode()
	}
	p.consume(token.BracketRight)
	p.typ()
	p.b.NodeEnd()
}
