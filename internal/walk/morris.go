// Package walk implements the Morris-style threaded in-order traversal
// shared by all three tree families for Copy and the set-algebra
// operators. It is the one piece of this module that must run in O(1)
// extra space regardless of tree shape: no recursion, no explicit stack.
//
// The splay tree only ever drives this walker for those one-shot,
// non-splaying reads. Every other splay tree operation reshapes the
// tree on every access, so threading a walk through it while it is
// also being splayed under it would fight itself — that is why Insert,
// Search, Remove and friends never touch this package.
package walk

// Linked is implemented by the node pointer type of a tree family that
// wants to participate in a threaded walk. N is the pointer type itself:
// the walker never needs a distinct "no node" sentinel beyond N's own zero
// value, which for a pointer type is nil.
type Linked[N comparable] interface {
	comparable
	GetLeft() N
	SetLeft(N)
	GetRight() N
	SetRight(N)
}

// Walker drives one Morris-threaded in-order traversal. Every thread it
// installs while descending is guaranteed restored once the walk reaches
// Done, including when a caller abandons the walk early and calls Drain
// instead of exhausting Next.
type Walker[N Linked[N]] struct {
	cur N
}

// Start begins a threaded walk rooted at root. root may be the zero value
// (nil), in which case the walk is immediately Done.
func Start[N Linked[N]](root N) *Walker[N] {
	return &Walker[N]{cur: root}
}

// Done reports whether the walk has no more nodes to visit.
func (w *Walker[N]) Done() bool {
	var zero N
	return w.cur == zero
}

// Next returns the next node in symmetric order and advances the walker.
// It must not be called once Done reports true.
func (w *Walker[N]) Next() N {
	var zero N
	for w.cur != zero {
		left := w.cur.GetLeft()
		if left == zero {
			visited := w.cur
			w.cur = w.cur.GetRight()
			return visited
		}

		pred := left
		for pred.GetRight() != zero && pred.GetRight() != w.cur {
			pred = pred.GetRight()
		}

		if pred.GetRight() == zero {
			// First arrival at w.cur via this left subtree: thread the
			// predecessor's right link back to w.cur so the walk can find
			// its way back up without a stack, then descend left.
			pred.SetRight(w.cur)
			w.cur = left
			continue
		}

		// Second arrival: the thread did its job, tear it down before the
		// caller ever observes it, then fall through to visiting w.cur.
		pred.SetRight(zero)
		visited := w.cur
		w.cur = w.cur.GetRight()
		return visited
	}

	panic("walk: Next called on a Done walker")
}

// Drain exhausts the walker without returning results. A set operation
// that short-circuits (one operand empty or exhausted) must Drain the
// other operand rather than abandoning it mid-walk, or the thread it
// installed is left dangling in the caller's tree.
func (w *Walker[N]) Drain() {
	for !w.Done() {
		w.Next()
	}
}

// Copy visits root in symmetric order, invoking emit with each element in
// ascending order. It is the degenerate one-input case of Merge below.
func Copy[N Linked[N], E any](root N, value func(N) E, emit func(E)) {
	w := Start(root)
	for !w.Done() {
		emit(value(w.Next()))
	}
}

// Op selects which classical set combination Merge computes.
type Op int

const (
	Union Op = iota
	Intersection
	Diff
	SymDiff
)

// Merge walks left and right in lockstep symmetric order and invokes emit
// once per element belonging to the chosen combination, strictly
// ascending. Both walkers are always driven to completion — even past the
// point emit stops being called for one side — so their threads are
// always fully restored before Merge returns. Intersection and Diff
// depend on this: their early-empty-result cases must still leave both
// operands exactly as they were.
func Merge[N Linked[N], E any](leftRoot, rightRoot N, value func(N) E, cmp func(E, E) int, op Op, emit func(E)) {
	lw, rw := Start(leftRoot), Start(rightRoot)

	var lNode, rNode N
	lHas, rHas := !lw.Done(), !rw.Done()
	if lHas {
		lNode = lw.Next()
	}
	if rHas {
		rNode = rw.Next()
	}

	advanceLeft := func() {
		lHas = !lw.Done()
		if lHas {
			lNode = lw.Next()
		}
	}
	advanceRight := func() {
		rHas = !rw.Done()
		if rHas {
			rNode = rw.Next()
		}
	}

	for lHas && rHas {
		lv, rv := value(lNode), value(rNode)
		switch c := cmp(lv, rv); {
		case c < 0:
			if op == Union || op == Diff || op == SymDiff {
				emit(lv)
			}
			advanceLeft()
		case c > 0:
			if op == Union || op == SymDiff {
				emit(rv)
			}
			advanceRight()
		default:
			if op == Union || op == Intersection {
				emit(lv)
			}
			advanceLeft()
			advanceRight()
		}
	}

	for lHas {
		if op == Union || op == Diff || op == SymDiff {
			emit(value(lNode))
		}
		advanceLeft()
	}
	for rHas {
		if op == Union || op == SymDiff {
			emit(value(rNode))
		}
		advanceRight()
	}
}
