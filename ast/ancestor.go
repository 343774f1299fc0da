package ast

import "fmt"

// Upward parent-chain queries. Orphaned subtrees — nodes not (yet)
// reachable from a Program root — are a normal transient state during
// construction and transformation, so every query here reports absence
// instead of failing.

// EnclosingProgram returns the Program root containing n, following
// parent links. n itself counts, so a Program returns itself. Returns nil
// when the chain ends without reaching a Program.
func EnclosingProgram(n Node) *Program {
	for cur := n; cur != nil; cur = cur.Base().Parent {
		if p, ok := cur.(*Program); ok {
			return p
		}
	}
	return nil
}

// EnclosingFunction returns the nearest function node at or above n —
// either a FunctionLiteral or an ArrowFunctionLiteral. Returns nil when
// there is none.
func EnclosingFunction(n Node) Function {
	for cur := n; cur != nil; cur = cur.Base().Parent {
		if f, ok := cur.(Function); ok {
			return f
		}
	}
	return nil
}

// EnclosingScope returns the nearest declaration-hosting node at or above
// n. Resolvers use it to find where a declaration lands.
func EnclosingScope(n Node) Scope {
	for cur := n; cur != nil; cur = cur.Base().Parent {
		if s, ok := cur.(Scope); ok {
			return s
		}
	}
	return nil
}

// Filename returns the filename of the Program containing n. ok is false
// for orphans.
func Filename(n Node) (string, bool) {
	p := EnclosingProgram(n)
	if p == nil {
		return "", false
	}
	return p.Filename, true
}

// Location renders a human-readable "file:line" position for diagnostics.
// The line part is omitted when the node carries no line; the result is ""
// when n is unreachable from any Program.
func Location(n Node) string {
	p := EnclosingProgram(n)
	if p == nil {
		return ""
	}
	if line := n.Base().Line; line != 0 {
		return fmt.Sprintf("%s:%d", p.Filename, line)
	}
	return p.Filename
}
