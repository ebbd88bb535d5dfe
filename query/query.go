// Package query implements the incremental query engine: a memoising
// evaluator over user-defined query descriptors with dependency tracking
// and selective invalidation.
package query

import (
	"errors"
	"fmt"

	"github.com/charon-lang/charon/element"
	"github.com/charon-lang/charon/pool"
	"github.com/charon-lang/charon/source"
)

// ErrCyclicQuery is returned when a compute function re-enters its own
// active query.
var ErrCyclicQuery = errors.New("cyclic query")

// Context is the compilation context handed to compute functions.  It
// bundles the per-compilation resources so queries never reach for hidden
// globals.
type Context struct {
	Pool    *pool.Pool
	Cache   *element.Cache
	Sources map[string]*source.Source
}

// Descriptor identifies a family of memoisable computations over keys of
// type K producing values of type V.  Descriptors live for the process;
// their identity is their address.
//
// Compute must be a pure function of its key, the context and the values
// of the sub-queries it executes.  That obligation is the caller's; the
// engine neither checks nor enforces it.
type Descriptor[K, V any] struct {
	Name    string
	Hash    func(K) uint64
	Equal   func(K, K) bool
	Compute func(e *Engine, ctx *Context, key K) (V, error)

	// KeyDrop and ValueDrop, when set, run exactly once for each key and
	// value the engine discards.
	KeyDrop   func(K)
	ValueDrop func(V)
}

// descriptor is the type-erased face of a Descriptor used inside the
// engine.  The pointer itself is the descriptor's identity.
type descriptor interface {
	name() string
	hashKey(key interface{}) uint64
	equalKey(a, b interface{}) bool
	compute(e *Engine, ctx *Context, key interface{}) (interface{}, error)
	dropKey(key interface{})
	dropValue(value interface{})
}

func (d *Descriptor[K, V]) name() string {
	return d.Name
}

func (d *Descriptor[K, V]) hashKey(key interface{}) uint64 {
	return d.Hash(key.(K))
}

func (d *Descriptor[K, V]) equalKey(a, b interface{}) bool {
	return d.Equal(a.(K), b.(K))
}

func (d *Descriptor[K, V]) compute(e *Engine, ctx *Context, key interface{}) (interface{}, error) {
	return d.Compute(e, ctx, key.(K))
}

func (d *Descriptor[K, V]) dropKey(key interface{}) {
	if d.KeyDrop != nil {
		d.KeyDrop(key.(K))
	}
}

func (d *Descriptor[K, V]) dropValue(value interface{}) {
	if d.ValueDrop != nil {
		d.ValueDrop(value.(V))
	}
}

type state int

const (
	stateComputing state = iota
	stateReady
	stateStale
)

// depRef names a (descriptor, key) dependency.
type depRef struct {
	desc descriptor
	key  interface{}
}

type entry struct {
	desc  descriptor
	key   interface{}
	value interface{}
	state state
	deps  []depRef
	next  *entry // bucket chain
}

// bucketCount is a tuning parameter; the table does not resize.
const bucketCount = 8192

// Engine memoises query results and tracks the dependencies discovered
// while computing them.  It is owned by a single logical thread of
// control.
type Engine struct {
	ctx     *Context
	buckets [bucketCount]*entry
	active  []*entry // stack of entries being computed
}

// NewEngine creates an engine over the given compilation context.
func NewEngine(ctx *Context) *Engine {
	return &Engine{ctx: ctx}
}

// Context returns the engine's compilation context.
func (e *Engine) Context() *Context {
	return e.ctx
}

// Execute returns the value of (d, key), computing it on a miss and
// memoising the result.  Re-entrant calls made by d.Compute record
// dependency edges used for selective invalidation.
func Execute[K, V any](e *Engine, d *Descriptor[K, V], key K) (V, error) {
	var value, err = e.execute(d, key)
	if err != nil {
		var zero V
		return zero, err
	}
	return value.(V), nil
}

func (e *Engine) execute(d descriptor, key interface{}) (interface{}, error) {
	e.recordDependency(d, key)

	var index = d.hashKey(key) % bucketCount
	var ent = e.lookup(index, d, key)
	switch {
	case ent == nil:
		ent = &entry{desc: d, key: key, state: stateComputing, next: e.buckets[index]}
		e.buckets[index] = ent
	case ent.state == stateReady:
		return ent.value, nil
	case ent.state == stateComputing:
		return nil, fmt.Errorf("%s: %w", d.name(), ErrCyclicQuery)
	default:
		// Stale: recompute from scratch, dropping the superseded value.
		d.dropValue(ent.value)
		ent.value = nil
		ent.deps = nil
		ent.state = stateComputing
	}

	var value, err = e.compute(ent)
	if err != nil {
		e.remove(index, ent)
		d.dropKey(ent.key)
		return nil, err
	}
	return value, nil
}

func (e *Engine) compute(ent *entry) (interface{}, error) {
	e.active = append(e.active, ent)
	var value, err = ent.desc.compute(e, e.ctx, ent.key)
	e.active = e.active[:len(e.active)-1]
	if err != nil {
		return nil, err
	}
	ent.value = value
	ent.state = stateReady
	return value, nil
}

// recordDependency adds (d, key) to the dependencies of the query being
// computed, in discovery order.
func (e *Engine) recordDependency(d descriptor, key interface{}) {
	if len(e.active) == 0 {
		return
	}
	var current = e.active[len(e.active)-1]
	for _, dep := range current.deps {
		if dep.desc == d && d.equalKey(dep.key, key) {
			return
		}
	}
	current.deps = append(current.deps, depRef{desc: d, key: key})
}

func (e *Engine) lookup(index uint64, d descriptor, key interface{}) *entry {
	for ent := e.buckets[index]; ent != nil; ent = ent.next {
		if ent.desc == d && d.equalKey(ent.key, key) {
			return ent
		}
	}
	return nil
}

func (e *Engine) remove(index uint64, ent *entry) {
	var prev *entry
	for cur := e.buckets[index]; cur != nil; cur = cur.next {
		if cur == ent {
			if prev == nil {
				e.buckets[index] = cur.next
			} else {
				prev.next = cur.next
			}
			return
		}
		prev = cur
	}
}

// Invalidate marks (d, key) stale, along with every entry that depends on
// it transitively.  Stale entries recompute on their next execution.
func Invalidate[K, V any](e *Engine, d *Descriptor[K, V], key K) {
	var index = d.hashKey(key) % bucketCount
	var ent = e.lookup(index, d, key)
	if ent == nil {
		return
	}
	e.staleClosure([]*entry{ent})
}

// InvalidateDescriptor marks every entry of d stale, along with all their
// transitive dependents.
func InvalidateDescriptor[K, V any](e *Engine, d *Descriptor[K, V]) {
	var seeds []*entry
	e.each(func(ent *entry) {
		if ent.desc == descriptor(d) {
			seeds = append(seeds, ent)
		}
	})
	e.staleClosure(seeds)
}

// InvalidateAll marks every entry stale.
func (e *Engine) InvalidateAll() {
	e.each(func(ent *entry) {
		if ent.state == stateReady {
			ent.state = stateStale
		}
	})
}

// staleClosure marks the seed entries and their transitive dependents
// stale.
func (e *Engine) staleClosure(seeds []*entry) {
	for _, ent := range seeds {
		if ent.state == stateReady {
			ent.state = stateStale
		}
	}
	for {
		var changed = false
		e.each(func(ent *entry) {
			if ent.state != stateReady {
				return
			}
			for _, dep := range ent.deps {
				var target = e.lookup(dep.desc.hashKey(dep.key)%bucketCount, dep.desc, dep.key)
				if target != nil && target.state == stateStale {
					ent.state = stateStale
					changed = true
					return
				}
			}
		})
		if !changed {
			return
		}
	}
}

func (e *Engine) each(fn func(*entry)) {
	for i := range e.buckets {
		for ent := e.buckets[i]; ent != nil; ent = ent.next {
			fn(ent)
		}
	}
}

// Close discards every entry, running the drop hooks exactly once each.
// The engine is unusable afterwards.
func (e *Engine) Close() {
	e.each(func(ent *entry) {
		if ent.value != nil {
			ent.desc.dropValue(ent.value)
		}
		ent.desc.dropKey(ent.key)
	})
	e.buckets = [bucketCount]*entry{}
}
