// Package tree implements the recursive insert/search/delete/iteration
// algorithms over the node package's adaptive layouts. It holds no state
// of its own: every function takes the current root (or subtree root) as
// an explicit argument and, where the tree shape can change, returns the
// new root the caller must store back.
package tree

import "github.com/blackwithwhite666/goart/internal/node"

// Search walks from root looking for key, returning its value and true
// if found. It never allocates and never changes the tree shape.
func Search[T any](root node.Node[T], key []byte) (T, bool) {
	var zero T

	cur := root
	depth := 0

	for cur != nil {
		if leaf, ok := cur.(*node.Leaf[T]); ok {
			if leaf.Matches(key) {
				return leaf.Value, true
			}

			return zero, false
		}

		if cur.PrefixLen() > 0 {
			matched := node.CheckFullPrefix(cur, key, depth)
			if matched != cur.PrefixLen() {
				return zero, false
			}

			depth += matched
		}

		if depth == len(key) {
			if end := cur.End(); end != nil {
				return end.Value, true
			}

			return zero, false
		}

		child := cur.FindChild(key[depth])
		if child == nil {
			return zero, false
		}

		cur = child
		depth++
	}

	return zero, false
}
