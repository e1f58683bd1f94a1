package node

import (
	"github.com/blackwithwhite666/goart/internal/debug"
	"github.com/blackwithwhite666/goart/pkg/arena"
)

// Node4 is the smallest inner node, storing up to 4 children in parallel
// sorted arrays. It is the node created whenever a leaf splits or an
// inner node's prefix splits, and is also the demotion target when a
// Node16 shrinks down to 3 children.
type Node4[T any] struct {
	Base[T]

	Keys     [4]byte
	Children [4]Node[T]
}

var _ Node[int] = (*Node4[int])(nil)

func (n *Node4[T]) Kind() Kind { return KindNode4 }
func (n *Node4[T]) Full() bool { return n.num == 4 }

func (n *Node4[T]) Minimum() *Leaf[T] {
	if n.end != nil {
		return n.end
	}

	if n.num == 0 {
		return nil
	}

	return n.Children[0].Minimum()
}

func (n *Node4[T]) Maximum() *Leaf[T] {
	if n.num > 0 {
		return n.Children[n.num-1].Maximum()
	}

	return n.end
}

func (n *Node4[T]) FindChild(b byte) Node[T] {
	for i := 0; i < n.num; i++ {
		if n.Keys[i] == b {
			return n.Children[i]
		}
	}

	return nil
}

// AddChild installs child under byte b, inserting it in sorted position
// among the existing keys so Minimum/Maximum and ordered iteration keep
// working without a separate sort step. An existing child for b is
// replaced in place; a new one shifts every key and child at or past the
// insertion point one slot to the right to make room.
//
// Parameters:
//   - b: the key byte the child is reached by.
//   - child: the node to install; replaces any existing child for b.
//
// Returns the node to use going forward: this Node4 unless it was full,
// in which case it grows to a Node16 first and the grown replacement is
// returned (see grow).
//
// Performance: O(n) for the shift, n ≤ 4.
func (n *Node4[T]) AddChild(a *arena.Arena, b byte, child Node[T]) Node[T] {
	i := 0
	for i < n.num && n.Keys[i] < b {
		i++
	}

	if i < n.num && n.Keys[i] == b {
		n.Children[i] = child

		return n
	}

	if n.Full() {
		grown := n.grow(a)

		return grown.AddChild(a, b, child)
	}

	debug.Assert(!n.Full(), "node must not be full")

	copy(n.Keys[i+1:n.num+1], n.Keys[i:n.num])
	copy(n.Children[i+1:n.num+1], n.Children[i:n.num])
	n.Keys[i] = b
	n.Children[i] = child
	n.num++

	return n
}

func (n *Node4[T]) RemoveChild(a *arena.Arena, b byte) {
	for i := 0; i < n.num; i++ {
		if n.Keys[i] == b {
			copy(n.Keys[i:], n.Keys[i+1:n.num])
			copy(n.Children[i:], n.Children[i+1:n.num])
			n.Children[n.num-1] = nil
			n.num--

			return
		}
	}
}

// Shrink collapses this Node4 into its sole remaining child once removal
// has left it with at most one real child, merging this node's
// compressed prefix and the edge byte into the child's prefix. A node
// with zero real children but an end-of-key leaf collapses directly
// into that leaf.
//
// A node that still carries an end-of-key leaf alongside its one real
// child is NOT collapsed: the end leaf and the child are two distinct
// effective edges (a stored key terminating here, and a stored key
// continuing through the child), so num==1 does not by itself mean
// degree-1. Collapsing into the child in that case would silently drop
// the key held by the end leaf.
//
// Algorithm:
//   - num > 1: nothing to do, return n unchanged.
//   - num == 0: the end leaf (if any) is the whole remaining subtree.
//   - num == 1 and end != nil: two effective edges, return n unchanged.
//   - num == 1 and end == nil: true degree-1 collapse — prepend n's
//     prefix and the edge byte onto the child's prefix (truncating to
//     MaxPrefixLen as usual, true length always exact) and return the
//     child in n's place.
//
// Returns the node to use in n's place: n itself, the end leaf, or the
// sole child, all released from this node's slot in the arena once
// collapsed.
func (n *Node4[T]) Shrink(a *arena.Arena) Node[T] {
	if n.num > 1 {
		return n
	}

	if n.num == 0 {
		end := n.end
		arena.Free(a, n)

		return end
	}

	if n.end != nil {
		return n
	}

	edge := n.Keys[0]
	child := n.Children[0]

	merged := make([]byte, 0, MaxPrefixLen)
	merged = append(merged, n.Prefix()...)
	merged = append(merged, edge)

	if len(merged) < MaxPrefixLen {
		childPrefix := child.Prefix()
		room := MaxPrefixLen - len(merged)

		if room > len(childPrefix) {
			room = len(childPrefix)
		}

		merged = append(merged, childPrefix[:room]...)
	}

	newTrueLen := n.PrefixLen() + 1 + child.PrefixLen()
	child.SetPrefixFull(merged, newTrueLen)

	arena.Free(a, n)

	return child
}

func (n *Node4[T]) Each(fn func(b int, child Node[T]) bool) bool {
	if n.end != nil && fn(-1, n.end) {
		return true
	}

	for i := 0; i < n.num; i++ {
		if fn(int(n.Keys[i]), n.Children[i]) {
			return true
		}
	}

	return false
}

func (n *Node4[T]) Release(a *arena.Arena) { arena.Free(a, n) }

func (n *Node4[T]) Clone(a *arena.Arena) Node[T] {
	cp := arena.New(a, Node4[T]{})
	cp.Base = cloneBase(a, n.Base)
	cp.Keys = n.Keys

	for i := 0; i < n.num; i++ {
		cp.Children[i] = n.Children[i].Clone(a)
	}

	return cp
}

// grow promotes this full Node4 to a Node16: the header (prefix, child
// count, end leaf) carries over as-is, and the 4 sorted keys/children
// copy directly into the front of the 16-slot arrays, since Node16 uses
// the identical sorted-array layout at a larger capacity. n is released
// back to a; callers must use the returned Node16 going forward.
func (n *Node4[T]) grow(a *arena.Arena) Node[T] {
	grown := arena.New(a, Node16[T]{})
	grown.Base = n.Base

	copy(grown.Keys[:], n.Keys[:n.num])
	copy(grown.Children[:], n.Children[:n.num])

	arena.Free(a, n)

	return grown
}
