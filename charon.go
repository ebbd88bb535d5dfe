// Package charon ties the front-end core together: it collects sources,
// parses them through the incremental query engine and keeps the trees
// fresh as files change on disk.
package charon

import (
	"fmt"

	"github.com/charon-lang/charon/diag"
	"github.com/charon-lang/charon/element"
	"github.com/charon-lang/charon/lex"
	"github.com/charon-lang/charon/parse"
	"github.com/charon-lang/charon/pool"
	"github.com/charon-lang/charon/query"
	"github.com/charon-lang/charon/source"
)

// ParseResult is the value of the parse query for one source: the total
// syntax tree plus the diagnostics reported while producing it.
type ParseResult struct {
	Tree  *element.Rooted
	Diags []diag.Diagnostic
}

func hashString(s string) uint64 {
	var h uint64 = 0xcbf29ce484222325
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 0x100000001b3
	}
	return h
}

// ParseQuery parses one source, keyed by source name.  Executing it twice
// for the same name reuses the memoised tree until the source is
// invalidated.
var ParseQuery = &query.Descriptor[string, ParseResult]{
	Name:  "parse",
	Hash:  hashString,
	Equal: func(a, b string) bool { return a == b },
	Compute: func(e *query.Engine, ctx *query.Context, name string) (ParseResult, error) {
		var src, ok = ctx.Sources[name]
		if !ok {
			return ParseResult{}, fmt.Errorf("unknown source %q", name)
		}
		var diags []diag.Diagnostic
		var report = func(d diag.Diagnostic) { diags = append(diags, d) }
		var tree = parse.Root(lex.New(src, report), ctx.Cache, ctx.Pool, report)
		return ParseResult{Tree: tree, Diags: diags}, nil
	},
}

// Compilation owns the element cache, the resource pool and the query
// engine for one set of sources.  It is single-threaded: one logical
// thread of control drives it at a time.
type Compilation struct {
	ctx    *query.Context
	engine *query.Engine
}

// NewCompilation creates an empty compilation.
func NewCompilation() *Compilation {
	var ctx = &query.Context{
		Pool:    pool.New(),
		Cache:   element.NewCache(),
		Sources: make(map[string]*source.Source),
	}
	return &Compilation{ctx: ctx, engine: query.NewEngine(ctx)}
}

// Context returns the compilation's query context.
func (c *Compilation) Context() *query.Context {
	return c.ctx
}

// Engine returns the compilation's query engine.
func (c *Compilation) Engine() *query.Engine {
	return c.engine
}

// AddSource registers (or replaces) a source under its name and
// invalidates any tree previously parsed from it.
func (c *Compilation) AddSource(src *source.Source) {
	c.ctx.Sources[src.Name] = src
	query.Invalidate(c.engine, ParseQuery, src.Name)
}

// Tree returns the parse result for the named source, parsing at most
// once per invalidation.
func (c *Compilation) Tree(name string) (ParseResult, error) {
	return query.Execute(c.engine, ParseQuery, name)
}

// Invalidate marks the named source's parse entry stale, along with every
// query result that depends on it.
func (c *Compilation) Invalidate(name string) {
	query.Invalidate(c.engine, ParseQuery, name)
}

// Close discards all query entries and releases the pool.
func (c *Compilation) Close() {
	c.engine.Close()
	c.ctx.Pool.ReleaseAll()
}
