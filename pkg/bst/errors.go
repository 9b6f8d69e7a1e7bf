package bst

import "errors"

var (
	// ErrNilComparator is returned by New when constructed without an
	// ordering; a container with no way to compare elements cannot exist.
	ErrNilComparator = errors.New("bst: nil comparator")

	// ErrOutOfOrder is returned by InsertMin/InsertMax when the supplied
	// element would violate the precondition that it extends the current
	// extreme rather than landing somewhere in the middle of the tree.
	ErrOutOfOrder = errors.New("bst: element violates insert-extreme precondition")

	// ErrBrokenInvariant is the root cause wrapped by CheckInvariants.
	ErrBrokenInvariant = errors.New("bst: invariant violated")
)
