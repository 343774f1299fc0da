// Package walk provides generic deep traversals over the tree, built
// entirely on the shallow ForEach contract — no per-variant logic lives
// here.
package walk

import "jsast/ast"

// Inspect performs a recursive pre-order traversal of the subtree rooted
// at n. fn's return value controls descent: false prunes the node's
// children. Recursion depth equals tree depth; for sources nested deeply
// enough to threaten the stack, use InspectDeep.
func Inspect(n ast.Node, fn func(ast.Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	n.ForEach(func(child ast.Node) {
		Inspect(child, fn)
	})
}

// InspectDeep visits the same nodes in the same pre-order as Inspect, but
// drives the traversal from an explicit work stack, so pathological
// nesting depth costs heap instead of goroutine stack.
func InspectDeep(root ast.Node, fn func(ast.Node) bool) {
	if root == nil {
		return
	}
	stack := []ast.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			continue
		}
		// Push children reversed so the leftmost child pops first.
		mark := len(stack)
		n.ForEach(func(child ast.Node) {
			stack = append(stack, child)
		})
		for i, j := mark, len(stack)-1; i < j; i, j = i+1, j-1 {
			stack[i], stack[j] = stack[j], stack[i]
		}
	}
}
