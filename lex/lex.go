// Package lex turns source text into tokens.  The lexer spec is an
// ordered pattern list — the ignore patterns first, then the token table —
// matched first-match-wins at the cursor.
package lex

import (
	"regexp"
	"sync"

	"github.com/charon-lang/charon/charonlog"
	"github.com/charon-lang/charon/token"
)

// ignoreKind marks spec entries whose matches produce no token.
const ignoreKind token.Kind = -1

type rawEntry struct {
	kind    token.Kind
	pattern string
}

type entry struct {
	kind    token.Kind
	pattern *regexp.Regexp
}

// rawSpec is assembled once per process: whitespace and the three comment
// forms, then the token table in declared order.
func rawSpec() []rawEntry {
	var raw = []rawEntry{
		{ignoreKind, `\s+`},            // whitespace
		{ignoreKind, `//[^\n]*`},       // single line comment
		{ignoreKind, `/\*[\s\S]*?\*/`}, // multi line comment
		{ignoreKind, `#[^\n]*`},        // hashtag comment
	}
	for _, s := range token.Specs() {
		if s.Pattern == "" {
			continue
		}
		raw = append(raw, rawEntry{s.Kind, s.Pattern})
	}
	return raw
}

var (
	specOnce sync.Once
	spec     []entry
)

func compileSpec() {
	for _, raw := range rawSpec() {
		var pattern, err = regexp.Compile(`\A(?:` + raw.pattern + `)`)
		if err != nil {
			charonlog.Fatalf("failed compiling pattern %q (%v)", raw.pattern, err)
		}
		spec = append(spec, entry{raw.kind, pattern})
	}
}

// specMatch returns the first non-empty match at the start of s, or an
// ignoreKind match of size 0 when nothing matches.
func specMatch(s string) (kind token.Kind, size int) {
	for _, e := range spec {
		var loc = e.pattern.FindStringIndex(s)
		if loc == nil || loc[1] == 0 {
			continue
		}
		return e.kind, loc[1]
	}
	return ignoreKind, 0
}
