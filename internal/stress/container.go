// Package stress runs the concrete end-to-end scenarios and randomized
// property checks that exercise all three tree families together. It
// sits outside pkg/ deliberately: it is a test harness, not a library
// consumers import, and unlike the containers it fans out across
// goroutines with golang.org/x/sync/errgroup.
package stress

import "io"

// Container captures the operation surface shared verbatim by
// pkg/bst.Tree, pkg/rbt.Tree, and pkg/spt.Tree, letting one generic
// harness drive all three families without duplicating every scenario
// per package. Set-algebra methods (Copy/Union/Intersection/Diff/SymDiff)
// are deliberately excluded: each returns the concrete family's own type,
// which a single interface cannot express without losing the one thing
// those methods are for.
type Container[E any] interface {
	Insert(E) (E, bool)
	InsertMin(E) (E, error)
	InsertMax(E) (E, error)
	Search(E) (E, bool)
	Min() (E, bool)
	Max() (E, bool)
	Prev(E) (E, bool)
	Next(E) (E, bool)
	Remove(E) (E, bool)
	RemoveMin() (E, bool)
	RemoveMax() (E, bool)
	RemoveAll()
	Size() int
	IsEmpty() bool
	CheckInvariants() error
	Print(io.Writer, func(E) string)
}

// drainAscending reads every element back out of c via repeated Next
// calls starting from Min, the same technique the tree packages' own
// test helpers use, generalized here to any Container.
func drainAscending[E any](c Container[E]) []E {
	var out []E
	cur, ok := c.Min()
	for ok {
		out = append(out, cur)
		cur, ok = c.Next(cur)
	}
	return out
}
