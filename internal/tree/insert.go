package tree

import (
	"github.com/blackwithwhite666/goart/internal/debug"
	"github.com/blackwithwhite666/goart/internal/node"
	"github.com/blackwithwhite666/goart/pkg/arena"
)

// Insert adds key/value under cur (which may be nil for an empty
// subtree) and returns the subtree's new root, the value previously
// stored at key (zero if none), and whether a prior value existed. When
// replace is false, a pre-existing key keeps its old value but
// "existed" is still reported true, matching InsertNoReplace semantics.
func Insert[T any](a *arena.Arena, cur node.Node[T], key []byte, value T, depth int, replace bool) (node.Node[T], T, bool) {
	var zero T

	if cur == nil {
		return node.NewLeaf(a, key, value), zero, false
	}

	if leaf, ok := cur.(*node.Leaf[T]); ok {
		if leaf.Matches(key) {
			old := leaf.Value
			if replace {
				leaf.Value = value
			}

			return leaf, old, true
		}

		return splitLeaf(a, leaf, key, value, depth), zero, false
	}

	if cur.PrefixLen() > 0 {
		matched := node.CheckFullPrefix(cur, key, depth)
		if matched != cur.PrefixLen() {
			return splitPrefix(a, cur, key, value, depth, matched), zero, false
		}

		depth += matched
	}

	if depth == len(key) {
		if end := cur.End(); end != nil {
			old := end.Value
			if replace {
				end.Value = value
			}

			return cur, old, true
		}

		cur.SetEnd(node.NewLeaf(a, key, value))

		return cur, zero, false
	}

	b := key[depth]

	child := cur.FindChild(b)
	if child == nil {
		return cur.AddChild(a, b, node.NewLeaf(a, key, value)), zero, false
	}

	newChild, old, existed := Insert(a, child, key, value, depth+1, replace)
	if newChild != child {
		debug.Assert(newChild != nil, "insert must not turn a child into nil")
		cur = cur.AddChild(a, b, newChild)
	}

	return cur, old, existed
}

// longestCommonPrefix returns how many bytes l and r share starting at
// depth in both slices.
func longestCommonPrefix(l, r []byte, depth int) int {
	maxLen := len(l)
	if len(r) < maxLen {
		maxLen = len(r)
	}

	i := depth
	for i < maxLen && l[i] == r[i] {
		i++
	}

	return i - depth
}

// splitLeaf replaces a leaf that does not match key with a new Node4
// holding both the old leaf and a fresh leaf for key/value, diverging at
// their longest common prefix beyond depth.
func splitLeaf[T any](a *arena.Arena, leaf *node.Leaf[T], key []byte, value T, depth int) node.Node[T] {
	lcp := longestCommonPrefix(leaf.Key, key, depth)
	splitAt := depth + lcp

	n4 := arena.New(a, node.Node4[T]{})
	n4.SetPrefix(key[depth:splitAt])

	addChildOrEnd(a, n4, leaf.Key, splitAt, leaf)
	addChildOrEnd(a, n4, key, splitAt, node.NewLeaf(a, key, value))

	return n4
}

// addChildOrEnd attaches leaf under n4 as the child keyed by
// fullKey[splitAt], or as n4's end-of-key leaf if fullKey is exhausted
// exactly at splitAt.
func addChildOrEnd[T any](a *arena.Arena, n4 *node.Node4[T], fullKey []byte, splitAt int, leaf *node.Leaf[T]) {
	if splitAt == len(fullKey) {
		n4.SetEnd(leaf)

		return
	}

	n4.AddChild(a, fullKey[splitAt], leaf)
}

// splitPrefix handles inserting key into cur when cur's compressed
// prefix only partially matches key at depth: cur's prefix is severed at
// the mismatch point (matched bytes in), a new Node4 takes over as
// parent with the common leading bytes as its own prefix, and cur
// (carrying its remaining prefix) and the new key's leaf become its two
// children. The diverging byte for cur's own path is recovered from its
// minimum leaf, since bytes beyond MaxPrefixLen are never materialized
// on cur itself.
func splitPrefix[T any](a *arena.Arena, cur node.Node[T], key []byte, value T, depth, matched int) node.Node[T] {
	minLeaf := cur.Minimum()

	n4 := arena.New(a, node.Node4[T]{})
	n4.SetPrefixFull(key[depth:depth+matched], matched)

	curEdgePos := depth + matched
	curEdge := minLeaf.Key[curEdgePos]

	remainderStart := curEdgePos + 1
	remainderLen := cur.PrefixLen() - matched - 1

	remainderEnd := remainderStart + remainderLen
	if remainderEnd > len(minLeaf.Key) {
		remainderEnd = len(minLeaf.Key)
	}

	cur.SetPrefixFull(minLeaf.Key[remainderStart:remainderEnd], remainderLen)
	n4.AddChild(a, curEdge, cur)

	if curEdgePos == len(key) {
		n4.SetEnd(node.NewLeaf(a, key, value))
	} else {
		n4.AddChild(a, key[curEdgePos], node.NewLeaf(a, key, value))
	}

	return n4
}
