package art

import (
	"github.com/blackwithwhite666/goart/internal/node"
	"github.com/blackwithwhite666/goart/internal/tree"
)

// Cursor is an explicit, resumable external iterator over a Tree: unlike
// Visit/Iter, which drive a callback or a range-over-func loop body,
// a Cursor is driven one step at a time by repeated calls to Next,
// and its position survives across calls that do not themselves mutate
// the tree. It is built on a work stack rather than recursion so it can
// be advanced from arbitrary calling contexts.
type Cursor[T any] struct {
	stack []node.Node[T]
	key   []byte
	value T
}

// NewCursor returns a Cursor over every key/value pair of t, in
// ascending key order.
func (t *Tree[T]) NewCursor() *Cursor[T] {
	return newCursor(t.root)
}

// NewCursorPrefix returns a Cursor over every key/value pair of t whose
// key has prefix as a leading prefix, in ascending key order.
func (t *Tree[T]) NewCursorPrefix(prefix []byte) *Cursor[T] {
	return newCursor(tree.PrefixRoot(t.root, prefix))
}

func newCursor[T any](root node.Node[T]) *Cursor[T] {
	c := &Cursor[T]{}
	if root != nil {
		c.stack = append(c.stack, root)
	}

	return c
}

// Next advances the cursor to the next key/value pair and reports
// whether one was found. Once Next returns false the cursor is
// exhausted and will keep returning false.
func (c *Cursor[T]) Next() bool {
	for len(c.stack) > 0 {
		n := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]

		if leaf, ok := n.(*node.Leaf[T]); ok {
			c.key = leaf.Key
			c.value = leaf.Value

			return true
		}

		var children []node.Node[T]

		n.Each(func(_ int, child node.Node[T]) bool {
			children = append(children, child)

			return false
		})

		for i := len(children) - 1; i >= 0; i-- {
			c.stack = append(c.stack, children[i])
		}
	}

	return false
}

// Key returns the key at the cursor's current position. Its result is
// only meaningful after a call to Next has returned true.
func (c *Cursor[T]) Key() []byte { return c.key }

// Value returns the value at the cursor's current position. Its result
// is only meaningful after a call to Next has returned true.
func (c *Cursor[T]) Value() T { return c.value }
