package element

import "github.com/charon-lang/charon/charonlog"

// Rooted is a transient view of an interned element together with its
// parent chain.  Interned elements are shared and parentless; the rooted
// view exists only while navigating or editing a particular tree, and at
// most one live rooted view per navigation context refers to an element.
type Rooted struct {
	elem   *Element
	parent *Rooted
	index  int // position of elem among the parent's children
}

// Element unwraps the interned element.
func (r *Rooted) Element() *Element {
	return r.elem
}

// Parent returns the parent view, or nil at the root.
func (r *Rooted) Parent() *Rooted {
	return r.parent
}

// Child descends into the i-th child, extending the parent chain.
func (r *Rooted) Child(i int) *Rooted {
	return &Rooted{elem: r.elem.Child(i), parent: r, index: i}
}

// SwapChild returns the interned node identical to e except that child
// index is newChild.  When newChild already occupies that slot the result
// is e itself.
func (c *Cache) SwapChild(e *Element, index int, newChild *Element) *Element {
	if !e.IsNode() {
		charonlog.Fatalf("swap child of token element %s", e.tokenKind)
	}
	var children = e.Children()
	children[index] = newChild
	return c.Node(e.nodeKind, children...)
}

// Swap replaces the subtree at the rooted view with newSubtree and rebuilds
// the spine up to the root, sharing every untouched subtree.  It returns
// the new root element; no interned element is mutated.
func Swap(c *Cache, old *Rooted, newSubtree *Element) *Element {
	var current = old
	for current.parent != nil {
		newSubtree = c.SwapChild(current.parent.elem, current.index, newSubtree)
		current = current.parent
	}
	return newSubtree
}

// Walk visits e and every element below it, depth-first, parents before
// children.
func Walk(e *Element, fn func(*Element)) {
	fn(e)
	if !e.IsNode() {
		return
	}
	for i := 0; i < e.ChildCount(); i++ {
		Walk(e.Child(i), fn)
	}
}
