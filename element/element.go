package element

import (
	"github.com/charon-lang/charon/charonlog"
	"github.com/charon-lang/charon/token"
)

// Element is a cached token or node.  Elements are immutable after
// interning; two structurally equal elements are the same object.
type Element struct {
	hash   uint64
	length int

	node      bool
	tokenKind token.Kind
	text      string
	nodeKind  NodeKind
	children  []*Element

	next *Element // bucket chain
}

// IsNode reports whether the element is a node.
func (e *Element) IsNode() bool {
	return e.node
}

// IsToken reports whether the element is a token.
func (e *Element) IsToken() bool {
	return !e.node
}

// Hash returns the element's structural hash.
func (e *Element) Hash() uint64 {
	return e.hash
}

// Length returns the total byte length of the element's span: for a token
// the length of its text (of its display name for content-less kinds,
// zero for EOF and Unknown), for a node the sum of the children's lengths.
func (e *Element) Length() int {
	return e.length
}

// TokenKind returns the token kind of a token element.
func (e *Element) TokenKind() token.Kind {
	if e.node {
		charonlog.Fatalf("token kind of node element %s", e.nodeKind)
	}
	return e.tokenKind
}

// TokenText returns the text of a token element.  Content-less kinds
// report their display name.
func (e *Element) TokenText() string {
	if e.node {
		charonlog.Fatalf("token text of node element %s", e.nodeKind)
	}
	if !e.tokenKind.HasContent() {
		return e.tokenKind.String()
	}
	return e.text
}

// NodeKind returns the node kind of a node element.
func (e *Element) NodeKind() NodeKind {
	if !e.node {
		charonlog.Fatalf("node kind of token element %s", e.tokenKind)
	}
	return e.nodeKind
}

// ChildCount returns the number of children of a node element.
func (e *Element) ChildCount() int {
	return len(e.children)
}

// Child returns the i-th child of a node element.
func (e *Element) Child(i int) *Element {
	return e.children[i]
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	var c = make([]*Element, len(e.children))
	copy(c, e.children)
	return c
}

// FNV-1a constants, 64-bit.
const (
	fnvOffset = 0xcbf29ce484222325
	fnvPrime  = 0x100000001b3
)

// bucketCount is a tuning parameter; the table does not resize.
const bucketCount = 8192

func hashToken(kind token.Kind, text string) uint64 {
	var h uint64 = fnvOffset
	h ^= uint64(kind)
	h *= fnvPrime
	for i := 0; i < len(text); i++ {
		h ^= uint64(text[i])
		h *= fnvPrime
	}
	return h
}

func hashNode(kind NodeKind, children []*Element) uint64 {
	var h uint64 = fnvOffset
	h ^= uint64(kind)
	h *= fnvPrime
	h ^= uint64(len(children))
	h *= fnvPrime
	for _, child := range children {
		// Children are already interned, so their hash is their identity.
		h ^= child.hash
		h *= fnvPrime
	}
	return h
}

// Cache is the content-addressed element store.  It owns every element it
// hands out; elements are never freed individually.
type Cache struct {
	buckets [bucketCount]*Element
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Token interns a token element.  The text is ignored for content-less
// kinds.  Interning is idempotent and never fails.
func (c *Cache) Token(kind token.Kind, text string) *Element {
	if !kind.HasContent() {
		text = ""
	}
	var hash = hashToken(kind, text)
	var index = hash % bucketCount
	for e := c.buckets[index]; e != nil; e = e.next {
		if e.node || e.tokenKind != kind || e.text != text {
			continue
		}
		return e
	}
	var length = len(text)
	if !kind.HasContent() && kind != token.EOF && kind != token.Unknown {
		length = len(kind.String())
	}
	var e = &Element{
		hash:      hash,
		length:    length,
		tokenKind: kind,
		text:      text,
		next:      c.buckets[index],
	}
	c.buckets[index] = e
	return e
}

// Node interns a node element over already-interned children.
func (c *Cache) Node(kind NodeKind, children ...*Element) *Element {
	var hash = hashNode(kind, children)
	var index = hash % bucketCount
	for e := c.buckets[index]; e != nil; e = e.next {
		if !e.node || e.nodeKind != kind || len(e.children) != len(children) {
			continue
		}
		var equal = true
		for i, child := range children {
			// Pointer equality suffices by the interning invariant.
			if e.children[i] != child {
				equal = false
				break
			}
		}
		if equal {
			return e
		}
	}
	var length = 0
	var owned = make([]*Element, len(children))
	for i, child := range children {
		length += child.length
		owned[i] = child
	}
	var e = &Element{
		hash:     hash,
		length:   length,
		node:     true,
		nodeKind: kind,
		children: owned,
		next:     c.buckets[index],
	}
	c.buckets[index] = e
	return e
}
