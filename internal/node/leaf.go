package node

import "github.com/blackwithwhite666/goart/pkg/arena"

// Leaf is the terminal node of the tree: it holds the complete original
// key and its associated value. Lazy expansion means a subtree with a
// single descendant is represented as just a Leaf, not a chain of
// single-child inner nodes.
type Leaf[T any] struct {
	Key   []byte
	Value T
}

var _ Node[int] = (*Leaf[int])(nil)

// NewLeaf allocates a leaf for key/value from a, copying key so the leaf
// owns its bytes independently of the caller's slice.
func NewLeaf[T any](a *arena.Arena, key []byte, value T) *Leaf[T] {
	owned := make([]byte, len(key))
	copy(owned, key)

	return arena.New(a, Leaf[T]{Key: owned, Value: value})
}

func (l *Leaf[T]) Kind() Kind { return KindLeaf }

func (l *Leaf[T]) Prefix() []byte                             { return nil }
func (l *Leaf[T]) PrefixLen() int                             { return 0 }
func (l *Leaf[T]) SetPrefixFull(materialized []byte, n int)   {}
func (l *Leaf[T]) NumChildren() int                           { return 0 }
func (l *Leaf[T]) Full() bool                                 { return true }
func (l *Leaf[T]) End() *Leaf[T]                              { return nil }
func (l *Leaf[T]) SetEnd(*Leaf[T])                            {}
func (l *Leaf[T]) Minimum() *Leaf[T]                          { return l }
func (l *Leaf[T]) Maximum() *Leaf[T]                          { return l }

func (l *Leaf[T]) FindChild(b byte) Node[T] { panic("goart: leaf cannot have children") }
func (l *Leaf[T]) AddChild(a *arena.Arena, b byte, child Node[T]) Node[T] {
	panic("goart: leaf cannot have children")
}
func (l *Leaf[T]) RemoveChild(a *arena.Arena, b byte) { panic("goart: leaf cannot have children") }
func (l *Leaf[T]) Shrink(a *arena.Arena) Node[T]      { panic("goart: leaf cannot have children") }
func (l *Leaf[T]) Each(fn func(b int, child Node[T]) bool) bool {
	panic("goart: leaf cannot have children")
}

// Release returns this leaf's storage to a. The key backing array is
// owned by Go's GC (it was not arena-allocated), so only the leaf struct
// itself is recycled.
func (l *Leaf[T]) Release(a *arena.Arena) {
	arena.Free(a, l)
}

// Matches reports whether this leaf's full key equals key exactly.
func (l *Leaf[T]) Matches(key []byte) bool {
	return string(l.Key) == string(key)
}

// MatchesPrefix reports whether prefix is a prefix of this leaf's key.
func (l *Leaf[T]) MatchesPrefix(prefix []byte) bool {
	if len(prefix) > len(l.Key) {
		return false
	}

	return string(l.Key[:len(prefix)]) == string(prefix)
}

// Clone returns an independent copy of this leaf: the key is duplicated,
// the value is copied by assignment (shared by handle if T is itself a
// reference type).
func (l *Leaf[T]) Clone(a *arena.Arena) Node[T] {
	return NewLeaf(a, l.Key, l.Value)
}
