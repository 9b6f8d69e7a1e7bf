// Package rbt implements a red-black tree: a self-balancing binary
// search tree that keeps its height within a constant factor of
// optimal by maintaining a node coloring invariant instead of tracking
// exact subtree heights. Every mutation is a single top-down pass, with
// rotations and recolors applied on the way down rather than unwound
// afterward on the way back up.
//
// Thread Safety:
// Tree is not thread-safe. Concurrent access requires external
// synchronization; the containers in this module make no provision for it.
package rbt

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

// Comparator returns the ordering this tree was constructed with.
func (t *Tree[E]) Comparator() compare.Func[E] { return t.cmp }
