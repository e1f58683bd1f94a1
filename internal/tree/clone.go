package tree

import (
	"github.com/blackwithwhite666/goart/internal/node"
	"github.com/blackwithwhite666/goart/pkg/arena"
)

// Clone returns an independent deep copy of the subtree rooted at n,
// allocated from a. A nil subtree clones to nil.
func Clone[T any](a *arena.Arena, n node.Node[T]) node.Node[T] {
	if n == nil {
		return nil
	}

	return n.Clone(a)
}
