// Package ast holds the in-memory tree for one or more parsed programs:
// the closed set of statement, expression and clause variants, the scope
// nodes that host declarations, shallow child enumeration, and the
// double-dispatch visitors that let passes pattern-match the tree without
// touching node definitions.
//
// Trees are built bottom-up by an external parser, which is responsible
// for wiring parent links (see Adopt) and spans. Passes then walk the tree
// through ForEach or the visitors. Concurrent read-only traversal is safe;
// any mutation requires exclusive ownership of the tree.
package ast

import "jsast/source"

// Node is implemented by every element of the tree.
type Node interface {
	// Base exposes the identity fields shared by all variants.
	Base() *NodeBase
	// ForEach invokes fn exactly once per immediate child, in source
	// order. Structurally absent children are skipped, never passed as
	// nil. The order is part of the API: passes that depend on
	// left-to-right evaluation order rely on it.
	ForEach(fn func(Node))
	// Accept dispatches to the Visitor method matching the node's
	// concrete variant and returns that handler's result.
	Accept(v Visitor) any
	// AcceptContext is Accept with one caller-supplied value threaded
	// through to the handler.
	AcceptContext(v ContextVisitor, ctx any) any
}

// Statement is the tag interface for statement variants.
type Statement interface {
	Node
	stmtNode()
}

// Expression is the tag interface for expression variants.
type Expression interface {
	Node
	exprNode()
}

// NodeBase carries the identity every node has: a non-owning parent link
// and an optional source position. All fields are plain mutable data.
// Parent is nil only for roots and freshly constructed orphan nodes; after
// ad hoc edits, keeping it consistent with the parent's children is the
// caller's job (Adopt is the blessed way to wire links).
type NodeBase struct {
	Parent Node
	Span   source.Span // zero = unknown
	Line   uint32      // 1-based, 0 = unknown
}

func (b *NodeBase) Base() *NodeBase { return b }

// Adopt points each child's parent link at parent and returns parent for
// chaining. Nil children are skipped, so optional fields can be passed
// blindly. It does not insert children into parent's fields; callers
// assign the fields themselves and Adopt makes the back-links agree.
func Adopt(parent Node, children ...Node) Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Base().Parent = parent
	}
	return parent
}

// Orphan clears n's parent link. Any reference the former parent still
// holds is the caller's edit to remove.
func Orphan(n Node) {
	n.Base().Parent = nil
}
