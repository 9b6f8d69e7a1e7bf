package bst

import "github.com/barnowlsnest/ordset/internal/walk"

// Copy returns a new tree containing every element of t, sharing t's
// comparator. The source tree is walked with the Morris threader so the
// copy costs no extra space beyond the result itself.
func (t *Tree[E]) Copy() *Tree[E] {
	out := &Tree[E]{cmp: t.cmp}
	walk.Copy[*elemNode[E]](t.root, elemValue[E], func(e E) {
		appendExtreme(out, e)
	})
	return out
}

// Union, Intersection, Diff and SymDiff each combine t with other under
// t's comparator and return a freshly built result tree; neither input
// is mutated. other must share an equivalent ordering, otherwise the
// merge produces nonsense silently; this trusts the caller rather than
// validating orderings at every call site.
func (t *Tree[E]) Union(other *Tree[E]) *Tree[E] {
	return t.combine(other, walk.Union)
}

func (t *Tree[E]) Intersection(other *Tree[E]) *Tree[E] {
	return t.combine(other, walk.Intersection)
}

func (t *Tree[E]) Diff(other *Tree[E]) *Tree[E] {
	return t.combine(other, walk.Diff)
}

func (t *Tree[E]) SymDiff(other *Tree[E]) *Tree[E] {
	return t.combine(other, walk.SymDiff)
}

func (t *Tree[E]) combine(other *Tree[E], op walk.Op) *Tree[E] {
	out := &Tree[E]{cmp: t.cmp}
	walk.Merge[*elemNode[E]](t.root, other.root, elemValue[E], t.cmp, op, func(e E) {
		appendExtreme(out, e)
	})
	return out
}

func elemValue[E any](n *elemNode[E]) E { return n.elem }

// appendExtreme appends e as the new maximum of out. Because Copy and
// combine always emit elements in strictly ascending order, this is
// always a right-spine descent, so building the result this way instead
// of via Insert skips every comparator call Insert's descent would
// otherwise make.
func appendExtreme[E any](out *Tree[E], e E) {
	leaf := newElemNode(e)
	if out.root == nil {
		out.root = leaf
		out.size++
		return
	}
	cur := out.root
	for cur.right != nil {
		cur = cur.right
	}
	cur.right = leaf
	out.size++
}
