package tree

import "github.com/blackwithwhite666/goart/internal/node"

// Visit walks every key/value pair reachable from n in ascending key
// order, calling fn for each. It stops and returns fn's error as soon as
// one is returned, without visiting any further entries. Leaf keys are
// yielded directly from storage: a leaf always holds its complete
// original key, so no prefix reconstruction is needed during traversal.
func Visit[T any](n node.Node[T], fn func(key []byte, value T) error) error {
	if n == nil {
		return nil
	}

	if leaf, ok := n.(*node.Leaf[T]); ok {
		return fn(leaf.Key, leaf.Value)
	}

	var outErr error

	n.Each(func(_ int, child node.Node[T]) bool {
		if err := Visit(child, fn); err != nil {
			outErr = err

			return true
		}

		return false
	})

	return outErr
}

// VisitPrefix walks every key/value pair reachable from n whose key has
// prefix as a leading prefix, in ascending key order. It descends the
// tree following prefix one byte at a time; once the search prefix is
// fully consumed (whether exactly at a node boundary or partway through
// a node's compressed prefix) the remaining subtree is known to match in
// its entirety and is handed off to Visit.
func VisitPrefix[T any](n node.Node[T], prefix []byte, fn func(key []byte, value T) error) error {
	cur := n
	depth := 0

	for cur != nil {
		if leaf, ok := cur.(*node.Leaf[T]); ok {
			if leaf.MatchesPrefix(prefix) {
				return fn(leaf.Key, leaf.Value)
			}

			return nil
		}

		if cur.PrefixLen() > 0 {
			avail := len(prefix) - depth
			matched := node.CheckFullPrefix(cur, prefix, depth)

			if avail <= cur.PrefixLen() {
				if matched == avail {
					return Visit(cur, fn)
				}

				return nil
			}

			if matched != cur.PrefixLen() {
				return nil
			}

			depth += matched
		}

		if depth == len(prefix) {
			return Visit(cur, fn)
		}

		child := cur.FindChild(prefix[depth])
		if child == nil {
			return nil
		}

		cur = child
		depth++
	}

	return nil
}

// PrefixRoot returns the subtree of n that contains exactly the keys
// with prefix as a leading prefix: nil if none match, a *node.Leaf if a
// single matching key remains, or an inner node whose entire subtree
// matches. It implements the same descent as VisitPrefix but hands back
// the matching root instead of visiting it, so a Cursor can walk it
// incrementally from outside.
func PrefixRoot[T any](n node.Node[T], prefix []byte) node.Node[T] {
	cur := n
	depth := 0

	for cur != nil {
		if leaf, ok := cur.(*node.Leaf[T]); ok {
			if leaf.MatchesPrefix(prefix) {
				return leaf
			}

			return nil
		}

		if cur.PrefixLen() > 0 {
			avail := len(prefix) - depth
			matched := node.CheckFullPrefix(cur, prefix, depth)

			if avail <= cur.PrefixLen() {
				if matched == avail {
					return cur
				}

				return nil
			}

			if matched != cur.PrefixLen() {
				return nil
			}

			depth += matched
		}

		if depth == len(prefix) {
			return cur
		}

		child := cur.FindChild(prefix[depth])
		if child == nil {
			return nil
		}

		cur = child
		depth++
	}

	return nil
}
