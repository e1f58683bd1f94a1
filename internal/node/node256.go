package node

import "github.com/blackwithwhite666/goart/pkg/arena"

// Node256 is the largest inner node: children are indexed directly by
// byte, giving O(1) lookup at the cost of a full 256-entry array
// regardless of how many children are actually present.
type Node256[T any] struct {
	Base[T]

	Children [256]Node[T]
}

var _ Node[int] = (*Node256[int])(nil)

func (n *Node256[T]) Kind() Kind { return KindNode256 }
func (n *Node256[T]) Full() bool { return n.num == 256 }

func (n *Node256[T]) Minimum() *Leaf[T] {
	if n.end != nil {
		return n.end
	}

	for b := 0; b < 256; b++ {
		if n.Children[b] != nil {
			return n.Children[b].Minimum()
		}
	}

	return nil
}

func (n *Node256[T]) Maximum() *Leaf[T] {
	for b := 255; b >= 0; b-- {
		if n.Children[b] != nil {
			return n.Children[b].Maximum()
		}
	}

	return n.end
}

func (n *Node256[T]) FindChild(b byte) Node[T] { return n.Children[b] }

func (n *Node256[T]) AddChild(a *arena.Arena, b byte, child Node[T]) Node[T] {
	if n.Children[b] == nil {
		n.num++
	}

	n.Children[b] = child

	return n
}

func (n *Node256[T]) RemoveChild(a *arena.Arena, b byte) {
	if n.Children[b] != nil {
		n.Children[b] = nil
		n.num--
	}
}

// Shrink demotes this Node256 to a Node48 once its child count drops to
// 37.
func (n *Node256[T]) Shrink(a *arena.Arena) Node[T] {
	if n.num != 37 {
		return n
	}

	demoted := arena.New(a, Node48[T]{})
	demoted.Base = n.Base

	slot := 0

	for b := 0; b < 256; b++ {
		if n.Children[b] == nil {
			continue
		}

		demoted.Children[slot] = n.Children[b]
		demoted.Index[b] = uint8(slot + 1)
		slot++
	}

	arena.Free(a, n)

	return demoted
}

func (n *Node256[T]) Each(fn func(b int, child Node[T]) bool) bool {
	if n.end != nil && fn(-1, n.end) {
		return true
	}

	for b := 0; b < 256; b++ {
		if n.Children[b] != nil && fn(b, n.Children[b]) {
			return true
		}
	}

	return false
}

func (n *Node256[T]) Release(a *arena.Arena) { arena.Free(a, n) }

func (n *Node256[T]) Clone(a *arena.Arena) Node[T] {
	cp := arena.New(a, Node256[T]{})
	cp.Base = cloneBase(a, n.Base)

	for b := 0; b < 256; b++ {
		if n.Children[b] != nil {
			cp.Children[b] = n.Children[b].Clone(a)
		}
	}

	return cp
}
