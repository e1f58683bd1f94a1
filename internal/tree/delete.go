package tree

import (
	"github.com/blackwithwhite666/goart/internal/debug"
	"github.com/blackwithwhite666/goart/internal/node"
	"github.com/blackwithwhite666/goart/pkg/arena"
)

// Delete removes key from the subtree rooted at cur, returning the
// subtree's new root (nil if the subtree became empty), the removed
// value, and whether key was found at all. Nodes freed along the way are
// released back to a.
func Delete[T any](a *arena.Arena, cur node.Node[T], key []byte, depth int) (node.Node[T], T, bool) {
	var zero T

	if cur == nil {
		return nil, zero, false
	}

	if leaf, ok := cur.(*node.Leaf[T]); ok {
		if !leaf.Matches(key) {
			return cur, zero, false
		}

		old := leaf.Value
		leaf.Release(a)

		return nil, old, true
	}

	if cur.PrefixLen() > 0 {
		matched := node.CheckFullPrefix(cur, key, depth)
		if matched != cur.PrefixLen() {
			return cur, zero, false
		}

		depth += matched
	}

	if depth == len(key) {
		end := cur.End()
		if end == nil {
			return cur, zero, false
		}

		old := end.Value
		end.Release(a)
		cur.SetEnd(nil)

		return cur.Shrink(a), old, true
	}

	b := key[depth]

	child := cur.FindChild(b)
	if child == nil {
		return cur, zero, false
	}

	if leaf, ok := child.(*node.Leaf[T]); ok {
		if !leaf.Matches(key) {
			return cur, zero, false
		}

		old := leaf.Value
		leaf.Release(a)
		cur.RemoveChild(a, b)

		return cur.Shrink(a), old, true
	}

	newChild, old, deleted := Delete(a, child, key, depth+1)
	if !deleted {
		return cur, zero, false
	}

	switch {
	case newChild == nil:
		cur.RemoveChild(a, b)
	case newChild != child:
		debug.Assert(cur.FindChild(b) == child, "child byte must still reference the old child")
		cur = cur.AddChild(a, b, newChild)
	}

	return cur.Shrink(a), old, true
}
