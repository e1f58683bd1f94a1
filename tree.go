// Package art implements an in-memory Adaptive Radix Tree: an ordered,
// byte-slice-keyed map whose internal nodes adapt their fan-out layout
// (Node4/Node16/Node48/Node256) to the number of children actually
// present, with path compression collapsing single-child chains.
package art

import (
	"iter"

	"github.com/blackwithwhite666/goart/internal/node"
	"github.com/blackwithwhite666/goart/internal/tree"
	"github.com/blackwithwhite666/goart/pkg/arena"
)

// MaxPrefixLen is the number of compressed-prefix bytes materialized
// inline on an inner node; longer shared prefixes are still tracked by
// true length and recovered on demand from a leaf.
const MaxPrefixLen = node.MaxPrefixLen

// Tree is an Adaptive Radix Tree mapping byte-slice keys to values of
// type T. The zero value is not usable; construct one with NewTree.
type Tree[T any] struct {
	root node.Node[T]
	size int
	a    *arena.Arena
}

// NewTree returns an empty tree.
func NewTree[T any]() *Tree[T] {
	return &Tree[T]{a: new(arena.Arena)}
}

// Len returns the number of keys currently stored.
func (t *Tree[T]) Len() int {
	return t.size
}

// Search looks up key and returns its value. err is ErrNotFound if key
// is absent, or ErrInvalidKey if key is nil.
func (t *Tree[T]) Search(key []byte) (value T, err error) {
	if key == nil {
		return value, ErrInvalidKey
	}

	v, ok := tree.Search(t.root, key)
	if !ok {
		return value, ErrNotFound
	}

	return v, nil
}

// Insert stores value under key, overwriting any existing value. It
// returns the previous value (if any) and whether one existed.
func (t *Tree[T]) Insert(key []byte, value T) (prev T, hadPrev bool, err error) {
	return t.insert(key, value, true)
}

// InsertNoReplace stores value under key only if key is not already
// present. It always reports any pre-existing value, same as Insert, but
// leaves it untouched rather than overwriting it.
func (t *Tree[T]) InsertNoReplace(key []byte, value T) (prev T, hadPrev bool, err error) {
	return t.insert(key, value, false)
}

func (t *Tree[T]) insert(key []byte, value T, replace bool) (prev T, hadPrev bool, err error) {
	if key == nil {
		return prev, false, ErrInvalidKey
	}

	newRoot, old, existed := tree.Insert(t.a, t.root, key, value, 0, replace)
	t.root = newRoot

	if !existed {
		t.size++
	}

	return old, existed, nil
}

// Delete removes key, returning its value. err is ErrNotFound if key was
// not present, or ErrInvalidKey if key is nil.
func (t *Tree[T]) Delete(key []byte) (value T, err error) {
	if key == nil {
		return value, ErrInvalidKey
	}

	newRoot, old, deleted := tree.Delete(t.a, t.root, key, 0)
	if !deleted {
		return value, ErrNotFound
	}

	t.root = newRoot
	t.size--

	return old, nil
}

// Minimum returns the lexicographically smallest key/value pair stored.
// err is ErrEmpty if the tree holds no entries.
func (t *Tree[T]) Minimum() (key []byte, value T, err error) {
	if t.root == nil {
		return nil, value, ErrEmpty
	}

	leaf := t.root.Minimum()
	if leaf == nil {
		return nil, value, ErrEmpty
	}

	return leaf.Key, leaf.Value, nil
}

// Maximum returns the lexicographically largest key/value pair stored.
// err is ErrEmpty if the tree holds no entries.
func (t *Tree[T]) Maximum() (key []byte, value T, err error) {
	if t.root == nil {
		return nil, value, ErrEmpty
	}

	leaf := t.root.Maximum()
	if leaf == nil {
		return nil, value, ErrEmpty
	}

	return leaf.Key, leaf.Value, nil
}

// Visit calls fn for every key/value pair in ascending key order. If fn
// returns a non-nil error, traversal stops immediately and Visit returns
// that error unchanged.
func (t *Tree[T]) Visit(fn func(key []byte, value T) error) error {
	return tree.Visit(t.root, fn)
}

// VisitPrefix calls fn for every key/value pair whose key has prefix as
// a leading prefix, in ascending key order, with the same early-abort
// contract as Visit.
func (t *Tree[T]) VisitPrefix(prefix []byte, fn func(key []byte, value T) error) error {
	return tree.VisitPrefix(t.root, prefix, fn)
}

// Iter returns a range-over-func iterator over every key/value pair in
// ascending key order.
func (t *Tree[T]) Iter() iter.Seq2[[]byte, T] {
	return func(yield func([]byte, T) bool) {
		_ = tree.Visit(t.root, func(key []byte, value T) error {
			if !yield(key, value) {
				return errStopIteration
			}

			return nil
		})
	}
}

// IterPrefix returns a range-over-func iterator over every key/value
// pair whose key has prefix as a leading prefix, in ascending key order.
func (t *Tree[T]) IterPrefix(prefix []byte) iter.Seq2[[]byte, T] {
	return func(yield func([]byte, T) bool) {
		_ = tree.VisitPrefix(t.root, prefix, func(key []byte, value T) error {
			if !yield(key, value) {
				return errStopIteration
			}

			return nil
		})
	}
}

// Clone returns a deep copy of t: every inner node and leaf key is
// duplicated into a fresh tree with its own allocator. Leaf values are
// copied by Go assignment, so a value of reference type (pointer, slice,
// map, interface) is shared with the original tree rather than
// deep-copied.
func (t *Tree[T]) Clone() *Tree[T] {
	clone := &Tree[T]{a: new(arena.Arena), size: t.size}
	clone.root = tree.Clone(clone.a, t.root)

	return clone
}

// errStopIteration is a private sentinel Visit never sees escape: Iter
// and IterPrefix use it internally to unwind out of tree.Visit /
// tree.VisitPrefix the moment a range-over-func loop body breaks.
var errStopIteration = errInternal("goart: iteration stopped")

type errInternal string

func (e errInternal) Error() string { return string(e) }
