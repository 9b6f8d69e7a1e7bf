package spt

import "github.com/barnowlsnest/ordset/internal/walk"

// Copy returns a new tree holding the same elements in independent
// storage. A splay tree has no stable shape worth copying structurally:
// every Search/Min/Max access reshapes the source, so Copy instead reads
// it out once with the same Morris-threaded walker bst/rbt use for the
// same purpose. That walker is safe here even though elemNode also backs
// the splay-driven operations above: this is a one-shot, non-splaying
// read, not a repeated access pattern, so nothing fights it mid-walk.
func (t *Tree[E]) Copy() *Tree[E] {
	out := &Tree[E]{cmp: t.cmp}
	walk.Copy[*elemNode[E]](t.root, elemValue[E], func(e E) {
		appendExtreme(out, e)
	})
	return out
}

// Union returns a new tree holding every element present in t or other.
func (t *Tree[E]) Union(other *Tree[E]) *Tree[E] {
	return t.combine(other, walk.Union)
}

// Intersection returns a new tree holding every element present in both
// t and other.
func (t *Tree[E]) Intersection(other *Tree[E]) *Tree[E] {
	return t.combine(other, walk.Intersection)
}

// Diff returns a new tree holding every element present in t but not
// other.
func (t *Tree[E]) Diff(other *Tree[E]) *Tree[E] {
	return t.combine(other, walk.Diff)
}

// SymDiff returns a new tree holding every element present in exactly
// one of t or other.
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

// appendExtreme appends e as the new maximum of out via a plain
// right-spine descent, skipping Insert's splay entirely. Copy and
// combine always emit elements in strictly ascending order, so every
// append lands at the current rightmost position; building the result
// this way also avoids handing a freshly built, already-sorted tree to
// Insert only to have it immediately overwrite what InsertMax would
// have done anyway.
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
