// Package bst implements an unbalanced binary search tree over a
// user-supplied comparator. It performs no automatic balancing on
// mutation; callers who need a shape guarantee call Rebalance explicitly.
//
// Thread Safety:
// Tree is not thread-safe. Concurrent access requires external
// synchronization; the containers in this module make no provision for it.
package bst

import (
	"fmt"

	"github.com/barnowlsnest/ordset/pkg/compare"
)

// Tree is an ordered set of opaque elements of type E, compared
// exclusively through the comparator fixed at construction.
type Tree[E any] struct {
	root *elemNode[E]
	cmp  compare.Func[E]
	size int
}

// New creates an empty Tree ordered by cmp. cmp must not be nil.
func New[E any](cmp compare.Func[E]) (*Tree[E], error) {
	if cmp == nil {
		return nil, fmt.Errorf("new tree: %w", ErrNilComparator)
	}
	return &Tree[E]{cmp: cmp}, nil
}

// IsEmpty reports whether the tree holds no elements.
func (t *Tree[E]) IsEmpty() bool { return t.root == nil }

// Size returns the number of elements currently stored.
func (t *Tree[E]) Size() int { return t.size }

// Comparator returns the ordering this tree was constructed with, so
// derived containers (Copy, set algebra) can share it without the caller
// re-threading it through every call.
func (t *Tree[E]) Comparator() compare.Func[E] { return t.cmp }
