package lex

import (
	"github.com/charon-lang/charon/diag"
	"github.com/charon-lang/charon/source"
	"github.com/charon-lang/charon/token"
)

// Token is a lexed token as a span of its source.
type Token struct {
	Kind   token.Kind
	Offset int
	Size   int
}

// Tokenizer produces tokens from a source with one token of lookahead.
// There is no back-tracking beyond that token.
type Tokenizer struct {
	src       *source.Source
	input     string
	report    diag.Reporter
	cursor    int
	lookahead Token
}

// New creates a tokenizer over src.  Bytes no pattern matches are reported
// to report as UnexpectedSymbol and skipped.
func New(src *source.Source, report diag.Reporter) *Tokenizer {
	specOnce.Do(compileSpec)
	var t = &Tokenizer{src: src, input: src.Text.String(), report: report}
	t.lookahead = t.next()
	return t
}

// Peek returns the next token without consuming it.
func (t *Tokenizer) Peek() Token {
	return t.lookahead
}

// Advance consumes and returns the next token.
func (t *Tokenizer) Advance() Token {
	var tok = t.lookahead
	t.lookahead = t.next()
	return tok
}

// EOF reports whether the cursor is at the end of the input.  The
// lookahead token may still be pending.
func (t *Tokenizer) EOF() bool {
	return t.cursor >= t.src.Len()
}

// Source returns the tokenizer's source.
func (t *Tokenizer) Source() *source.Source {
	return t.src
}

// Text returns the source text of tok.
func (t *Tokenizer) Text(tok Token) string {
	return t.input[tok.Offset : tok.Offset+tok.Size]
}

// Location returns tok's span as a source location.
func (t *Tokenizer) Location(tok Token) source.Location {
	return source.Location{Source: t.src, Offset: tok.Offset, Length: tok.Size}
}

func (t *Tokenizer) next() Token {
	for {
		if t.cursor >= t.src.Len() {
			return Token{Kind: token.EOF, Offset: t.src.Len()}
		}

		var offset = t.cursor
		var kind, size = specMatch(t.input[offset:])

		if size == 0 {
			t.report(diag.UnexpectedSymbol{Loc: source.Location{Source: t.src, Offset: t.cursor, Length: 1}})
			t.cursor++
			continue
		}

		t.cursor += size
		if kind == ignoreKind {
			continue
		}
		return Token{Kind: kind, Offset: offset, Size: size}
	}
}
