package parse

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charon-lang/charon/diag"
	"github.com/charon-lang/charon/element"
	"github.com/charon-lang/charon/token"
)

var (
	errEmptyChar      = errors.New("char literal is empty")
	errCharTooLarge   = errors.New("char literal is too large")
	errEscapeTooLarge = errors.New("escape sequence is too large")
	errNumberTooLarge = errors.New("numeric constant is too large")
)

// literalNumeric parses a numeric literal, validating that its value fits.
func (p *parser) literalNumeric() {
	var tok = p.peek()
	if _, err := decodeNumber(tok.Kind, p.tz.Text(tok)); err != nil {
		p.report(diag.TooLargeNumericConstant{Loc: p.loc(tok)})
		p.errorAdvance()
		return
	}
	p.b.NodeStart(element.KindExprLiteralNumeric)
	p.advance()
	p.b.NodeEnd()
}

func (p *parser) literalString() {
	var tok = p.peek()
	if _, err := decodeString(p.tz.Text(tok)); err != nil {
		p.report(diag.TooLargeEscapeSequence{Loc: p.loc(tok)})
		p.errorAdvance()
		return
	}
	p.b.NodeStart(element.KindExprLiteralString)
	p.advance()
	p.b.NodeEnd()
}

func (p *parser) literalChar() {
	var tok = p.peek()
	if _, err := decodeChar(p.tz.Text(tok)); err != nil {
		switch {
		case errors.Is(err, errEmptyChar):
			p.report(diag.EmptyCharLiteral{Loc: p.loc(tok)})
		case errors.Is(err, errCharTooLarge):
			p.report(diag.TooLargeCharLiteral{Loc: p.loc(tok)})
		default:
			p.report(diag.TooLargeEscapeSequence{Loc: p.loc(tok)})
		}
		p.errorAdvance()
		return
	}
	p.b.NodeStart(element.KindExprLiteralChar)
	p.advance()
	p.b.NodeEnd()
}

// decodeNumber returns the value of a numeric literal's source text.
func decodeNumber(kind token.Kind, text string) (uint64, error) {
	var base = 10
	switch kind {
	case token.NumberHex:
		base = 16
	case token.NumberBin:
		base = 2
	case token.NumberOct:
		base = 8
	}
	if base != 10 {
		text = text[2:]
	}
	var value, err = strconv.ParseUint(text, base, 64)
	if err != nil {
		return 0, errNumberTooLarge
	}
	return value, nil
}

// decodeString returns the value of a string literal's source text,
// quotes stripped and escapes resolved.
func decodeString(text string) (string, error) {
	return unescape(text[1 : len(text)-1])
}

// decodeChar returns the character of a char literal's source text.  The
// literal must hold exactly one character after escape resolution.
func decodeChar(text string) (rune, error) {
	var value, err = unescape(text[1 : len(text)-1])
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, errEmptyChar
	}
	var r, size = utf8.DecodeRuneInString(value)
	if size != len(value) {
		return 0, errCharTooLarge
	}
	return r, nil
}

// unescape resolves the escape sequences of a literal body:
// \n \t \r \0 \\ \' \", \xNN for a byte, and \u{...} for a character.
func unescape(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case 'x':
			if i+2 >= len(s) {
				b.WriteByte(s[i])
				continue
			}
			var value, err = strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", errEscapeTooLarge
			}
			b.WriteByte(byte(value))
			i += 2
		case 'u':
			var end = strings.IndexByte(s[i:], '}')
			if i+1 >= len(s) || s[i+1] != '{' || end < 0 {
				return "", errEscapeTooLarge
			}
			var value, err = strconv.ParseUint(s[i+2:i+end], 16, 32)
			if err != nil || value > utf8.MaxRune {
				return "", errEscapeTooLarge
			}
			b.WriteRune(rune(value))
			i += end
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
