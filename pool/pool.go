// Package pool implements the scoped resource pool owning ad-hoc
// allocations that belong to one compilation.  A pool is not safe for
// concurrent use and is always passed explicitly; there is no hidden
// process-wide pool.
package pool

import "github.com/charon-lang/charon/charonlog"

// Releaser is implemented by handles that hold resources needing explicit
// release.  Release is called exactly once, when the handle is freed or the
// pool is released wholesale.
type Releaser interface {
	Release()
}

// Pool tracks registered handles for the duration of a compilation.
type Pool struct {
	entries []interface{}
	freed   []interface{}
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{}
}

func index(entries []interface{}, handle interface{}) int {
	for i, e := range entries {
		if e == handle {
			return i
		}
	}
	return -1
}

// Register tracks handle and returns it.  Registering the same handle twice
// is fatal.
func (p *Pool) Register(handle interface{}) interface{} {
	if index(p.entries, handle) >= 0 || index(p.freed, handle) >= 0 {
		charonlog.Fatalf("double register of %v", handle)
	}
	p.entries = append(p.entries, handle)
	return handle
}

// Resize replaces the registration of old with new, returning new.  A nil
// old behaves like Register.
func (p *Pool) Resize(old, new interface{}) interface{} {
	if old == nil {
		return p.Register(new)
	}
	var i = index(p.entries, old)
	if i < 0 {
		charonlog.Fatalf("resize of handle %v not managed by pool", old)
	}
	p.entries[i] = new
	return new
}

// Free releases handle and forgets it.  Freeing an already-freed handle is
// a no-op; freeing a handle the pool never saw is fatal.
func (p *Pool) Free(handle interface{}) {
	if handle == nil {
		return
	}
	var i = index(p.entries, handle)
	if i < 0 {
		if index(p.freed, handle) >= 0 {
			return
		}
		charonlog.Fatalf("free of handle %v not managed by pool", handle)
	}
	release(p.entries[i])
	p.entries = append(p.entries[:i], p.entries[i+1:]...)
	p.freed = append(p.freed, handle)
}

// ReleaseAll frees every live handle and resets the pool.
func (p *Pool) ReleaseAll() {
	for _, e := range p.entries {
		release(e)
	}
	p.entries = nil
	p.freed = nil
}

// Len returns the number of live handles.
func (p *Pool) Len() int {
	return len(p.entries)
}

func release(handle interface{}) {
	if r, ok := handle.(Releaser); ok {
		r.Release()
	}
}
