package element

import (
	"github.com/charon-lang/charon/charonlog"
	"github.com/charon-lang/charon/pool"
	"github.com/charon-lang/charon/token"
)

// openNode is the transient scaffold of a node under construction.
type openNode struct {
	parent   *openNode
	kind     NodeKind
	children []*Element
}

// Builder constructs trees push-down into an element cache.  Every
// NodeStart must be paired with a NodeEnd; after Finish the builder is
// unusable.
type Builder struct {
	cache   *Cache
	current *openNode
}

// NewBuilder creates a builder with a single open scaffold of rootKind.
func NewBuilder(cache *Cache, rootKind NodeKind) *Builder {
	return &Builder{cache: cache, current: &openNode{kind: rootKind}}
}

// NodeStart opens a new node under the current one.
func (b *Builder) NodeStart(kind NodeKind) {
	if b.current == nil {
		charonlog.Fatalf("node start on finished builder")
	}
	b.current = &openNode{parent: b.current, kind: kind}
}

// NodeEnd seals the current node into the cache and appends it to its
// parent scaffold.
func (b *Builder) NodeEnd() {
	var node = b.current
	if node == nil {
		charonlog.Fatalf("node end on finished builder")
	}
	if node.parent == nil {
		charonlog.Fatalf("node end without matching node start")
	}
	b.current = node.parent
	b.current.children = append(b.current.children, b.seal(node))
}

// Token interns a token and appends it to the current scaffold.
func (b *Builder) Token(kind token.Kind, text string) {
	if b.current == nil {
		charonlog.Fatalf("token on finished builder")
	}
	b.current.children = append(b.current.children, b.cache.Token(kind, text))
}

// Checkpoint marks the current scaffold position for a later NodeStartAt.
func (b *Builder) Checkpoint() int {
	if b.current == nil {
		charonlog.Fatalf("checkpoint on finished builder")
	}
	return len(b.current.children)
}

// NodeStartAt opens a new node of kind that adopts every child appended to
// the current scaffold since the checkpoint was taken.  It lets the parser
// wrap an already-built operand once an infix construct is recognised.
func (b *Builder) NodeStartAt(checkpoint int, kind NodeKind) {
	if b.current == nil {
		charonlog.Fatalf("node start on finished builder")
	}
	if checkpoint < 0 || checkpoint > len(b.current.children) {
		charonlog.Fatalf("node start at invalid checkpoint %d", checkpoint)
	}
	var adopted = append([]*Element(nil), b.current.children[checkpoint:]...)
	b.current.children = b.current.children[:checkpoint]
	b.current = &openNode{parent: b.current, kind: kind, children: adopted}
}

// Finish asserts the builder is back down to the root scaffold, seals it
// and returns a rooted view anchored in p.
func (b *Builder) Finish(p *pool.Pool) *Rooted {
	if b.current == nil {
		charonlog.Fatalf("finish on finished builder")
	}
	if b.current.parent != nil {
		charonlog.Fatalf("finish with %s still open", b.current.kind)
	}
	var root = &Rooted{elem: b.seal(b.current)}
	b.current = nil
	p.Register(root)
	return root
}

func (b *Builder) seal(node *openNode) *Element {
	return b.cache.Node(node.kind, node.children...)
}
