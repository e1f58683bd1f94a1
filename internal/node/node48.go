package node

import "github.com/blackwithwhite666/goart/pkg/arena"

// Node48 stores up to 48 children behind a 256-entry byte-to-slot index:
// Index[b] is 0 if byte b has no child, otherwise slot+1. Slots are kept
// compact in [0, num) so that adding a child is an O(1) append and
// removing one is an O(1) swap with the last occupied slot; the byte
// index, not slot order, carries the child ordering.
type Node48[T any] struct {
	Base[T]

	Index    [256]uint8
	Children [48]Node[T]
}

var _ Node[int] = (*Node48[int])(nil)

func (n *Node48[T]) Kind() Kind { return KindNode48 }
func (n *Node48[T]) Full() bool { return n.num == 48 }

func (n *Node48[T]) Minimum() *Leaf[T] {
	if n.end != nil {
		return n.end
	}

	for b := 0; b < 256; b++ {
		if idx := n.Index[b]; idx != 0 {
			return n.Children[idx-1].Minimum()
		}
	}

	return nil
}

func (n *Node48[T]) Maximum() *Leaf[T] {
	for b := 255; b >= 0; b-- {
		if idx := n.Index[b]; idx != 0 {
			return n.Children[idx-1].Maximum()
		}
	}

	return n.end
}

func (n *Node48[T]) FindChild(b byte) Node[T] {
	idx := n.Index[b]
	if idx == 0 {
		return nil
	}

	return n.Children[idx-1]
}

// AddChild installs child under byte b. An existing child for b is
// replaced in place; a new one takes the next free slot and records it
// in the byte index, since Node48's compact slot array carries no
// ordering of its own. Returns this Node48, unless it was full, in
// which case it grows to a Node256 first and the grown replacement is
// returned (see grow).
func (n *Node48[T]) AddChild(a *arena.Arena, b byte, child Node[T]) Node[T] {
	if idx := n.Index[b]; idx != 0 {
		n.Children[idx-1] = child

		return n
	}

	if n.Full() {
		grown := n.grow(a)

		return grown.AddChild(a, b, child)
	}

	slot := n.num
	n.Children[slot] = child
	n.Index[b] = uint8(slot + 1)
	n.num++

	return n
}

func (n *Node48[T]) RemoveChild(a *arena.Arena, b byte) {
	idx := n.Index[b]
	if idx == 0 {
		return
	}

	slot := int(idx) - 1
	last := n.num - 1

	if slot != last {
		n.Children[slot] = n.Children[last]

		for i := range n.Index {
			if int(n.Index[i])-1 == last {
				n.Index[i] = uint8(slot + 1)

				break
			}
		}
	}

	n.Children[last] = nil
	n.Index[b] = 0
	n.num--
}

// Shrink demotes this Node48 to a Node16 once its child count drops to
// 12, rebuilding the sorted Node16 arrays by scanning the byte index in
// ascending order.
func (n *Node48[T]) Shrink(a *arena.Arena) Node[T] {
	if n.num != 12 {
		return n
	}

	demoted := arena.New(a, Node16[T]{})
	demoted.Base = n.Base

	slot := 0

	for b := 0; b < 256; b++ {
		idx := n.Index[b]
		if idx == 0 {
			continue
		}

		demoted.Keys[slot] = byte(b)
		demoted.Children[slot] = n.Children[idx-1]
		slot++
	}

	arena.Free(a, n)

	return demoted
}

func (n *Node48[T]) Each(fn func(b int, child Node[T]) bool) bool {
	if n.end != nil && fn(-1, n.end) {
		return true
	}

	for b := 0; b < 256; b++ {
		idx := n.Index[b]
		if idx == 0 {
			continue
		}

		if fn(b, n.Children[idx-1]) {
			return true
		}
	}

	return false
}

func (n *Node48[T]) Release(a *arena.Arena) { arena.Free(a, n) }

func (n *Node48[T]) Clone(a *arena.Arena) Node[T] {
	cp := arena.New(a, Node48[T]{})
	cp.Base = cloneBase(a, n.Base)
	cp.Index = n.Index

	for b := 0; b < 256; b++ {
		if idx := n.Index[b]; idx != 0 {
			cp.Children[idx-1] = n.Children[idx-1].Clone(a)
		}
	}

	return cp
}

// grow promotes this full Node48 to a Node256 by scattering each
// occupied slot directly into the byte-indexed child array, dropping
// the indirection through Index now that there is a slot per byte.
func (n *Node48[T]) grow(a *arena.Arena) Node[T] {
	grown := arena.New(a, Node256[T]{})
	grown.Base = n.Base

	for b := 0; b < 256; b++ {
		if idx := n.Index[b]; idx != 0 {
			grown.Children[b] = n.Children[idx-1]
		}
	}

	arena.Free(a, n)

	return grown
}
