// Package ast provides typed views over cached syntax elements.  A view
// is a zero-cost wrapper around an element handle: it locates children by
// position and kind and owns no storage of its own.
package ast

import (
	"github.com/charon-lang/charon/element"
	"github.com/charon-lang/charon/token"
)

// Child slot positions fixed by the grammar.
const (
	nameIndex         = 1 // keyword, then the name identifier
	firstPossibleType = 2
	firstPossibleBody = 3
	firstPossibleTLC  = 3 // module: keyword, name, "{", then the body
)

// name returns the identifier text at the fixed name slot, or ok=false
// when the slot holds an error node.
func name(e *element.Element) (string, bool) {
	if e.ChildCount() <= nameIndex {
		return "", false
	}
	var child = e.Child(nameIndex)
	if !child.IsToken() || child.TokenKind() != token.Identifier {
		return "", false
	}
	return child.TokenText(), true
}

// Root views a KindRoot element.
type Root struct {
	el *element.Element
}

// AsRoot wraps e when it is a root node.
func AsRoot(e *element.Element) (Root, bool) {
	if !e.IsNode() || e.NodeKind() != element.KindRoot {
		return Root{}, false
	}
	return Root{e}, true
}

// Element unwraps the view.
func (r Root) Element() *element.Element {
	return r.el
}

// TLCs returns the top-level construct nodes, error nodes included.
// Attribute nodes annotating a construct are not constructs themselves
// and are skipped.
func (r Root) TLCs() []*element.Element {
	return constructChildren(r.el, 0)
}

// Module views a KindTLCModule element.
type Module struct {
	el *element.Element
}

// AsModule wraps e when it is a module node.
func AsModule(e *element.Element) (Module, bool) {
	if !e.IsNode() || e.NodeKind() != element.KindTLCModule {
		return Module{}, false
	}
	return Module{e}, true
}

func (m Module) Element() *element.Element {
	return m.el
}

// Name returns the module name, or ok=false when the name slot holds an
// error node.
func (m Module) Name() (string, bool) {
	return name(m.el)
}

// TLCs returns the constructs of the module body.
func (m Module) TLCs() []*element.Element {
	return constructChildren(m.el, firstPossibleTLC)
}

// Function views a KindTLCFunction element.
type Function struct {
	el *element.Element
}

// AsFunction wraps e when it is a function node.
func AsFunction(e *element.Element) (Function, bool) {
	if !e.IsNode() || e.NodeKind() != element.KindTLCFunction {
		return Function{}, false
	}
	return Function{e}, true
}

func (f Function) Element() *element.Element {
	return f.el
}

// Name returns the function name, or ok=false when the name slot holds an
// error node.
func (f Function) Name() (string, bool) {
	return name(f.el)
}

// Prototype returns the function's type node.
func (f Function) Prototype() (Prototype, bool) {
	for i := firstPossibleType; i < f.el.ChildCount(); i++ {
		var child = f.el.Child(i)
		if child.IsNode() && child.NodeKind() == element.KindTypeFunction {
			return Prototype{child}, true
		}
	}
	return Prototype{}, false
}

// Body returns the function's block, absent for malformed functions.
func (f Function) Body() (Block, bool) {
	for i := firstPossibleBody; i < f.el.ChildCount(); i++ {
		var child = f.el.Child(i)
		if child.IsNode() && child.NodeKind() == element.KindStmtBlock {
			return Block{child}, true
		}
	}
	return Block{}, false
}

// Prototype views a KindTypeFunction element.
type Prototype struct {
	el *element.Element
}

func (p Prototype) Element() *element.Element {
	return p.el
}

// Parameters returns the parameter nodes.
func (p Prototype) Parameters() []Parameter {
	var params []Parameter
	for i := 0; i < p.el.ChildCount(); i++ {
		var child = p.el.Child(i)
		if child.IsNode() && child.NodeKind() == element.KindFunctionParameter {
			params = append(params, Parameter{child})
		}
	}
	return params
}

// Varargs reports whether the parameter list ends in "...".
func (p Prototype) Varargs() bool {
	for i := 0; i < p.el.ChildCount(); i++ {
		var child = p.el.Child(i)
		if child.IsToken() && child.TokenKind() == token.Ellipsis {
			return true
		}
	}
	return false
}

// ReturnType returns the declared return type node, absent when the
// function returns nothing.
func (p Prototype) ReturnType() (*element.Element, bool) {
	// The return type is the type node following the closing parenthesis.
	var closed = false
	for i := 0; i < p.el.ChildCount(); i++ {
		var child = p.el.Child(i)
		if child.IsToken() && child.TokenKind() == token.ParenthesesRight {
			closed = true
			continue
		}
		if closed && child.IsNode() && child.NodeKind().IsType() {
			return child, true
		}
	}
	return nil, false
}

// Parameter views a KindFunctionParameter element.
type Parameter struct {
	el *element.Element
}

func (p Parameter) Element() *element.Element {
	return p.el
}

// Name returns the parameter name, or ok=false for malformed parameters.
func (p Parameter) Name() (string, bool) {
	if p.el.ChildCount() == 0 {
		return "", false
	}
	var child = p.el.Child(0)
	if !child.IsToken() || child.TokenKind() != token.Identifier {
		return "", false
	}
	return child.TokenText(), true
}

// Type returns the parameter's type node.
func (p Parameter) Type() (*element.Element, bool) {
	for i := 0; i < p.el.ChildCount(); i++ {
		var child = p.el.Child(i)
		if child.IsNode() && child.NodeKind().IsType() {
			return child, true
		}
	}
	return nil, false
}

// Block views a KindStmtBlock element.
type Block struct {
	el *element.Element
}

// AsBlock wraps e when it is a block node.
func AsBlock(e *element.Element) (Block, bool) {
	if !e.IsNode() || e.NodeKind() != element.KindStmtBlock {
		return Block{}, false
	}
	return Block{e}, true
}

func (b Block) Element() *element.Element {
	return b.el
}

// Statements returns the block's statement nodes.
func (b Block) Statements() []*element.Element {
	return nodeChildren(b.el, 0)
}

// nodeChildren returns the node children of e starting at index from.
func nodeChildren(e *element.Element, from int) []*element.Element {
	var nodes []*element.Element
	for i := from; i < e.ChildCount(); i++ {
		if e.Child(i).IsNode() {
			nodes = append(nodes, e.Child(i))
		}
	}
	return nodes
}

// constructChildren is nodeChildren minus attribute nodes.
func constructChildren(e *element.Element, from int) []*element.Element {
	var nodes []*element.Element
	for _, child := range nodeChildren(e, from) {
		if child.NodeKind() == element.KindAttribute {
			continue
		}
		nodes = append(nodes, child)
	}
	return nodes
}
