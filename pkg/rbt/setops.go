package rbt

import "github.com/barnowlsnest/ordset/internal/walk"

// Copy returns a new tree containing every element of t, sharing t's
// comparator. The source is walked with the Morris threader and each
// element is re-inserted through the normal top-down path, so the copy
// carries its own independent, correctly balanced and colored structure
// rather than sharing any nodes with t.
func (t *Tree[E]) Copy() *Tree[E] {
	out := &Tree[E]{cmp: t.cmp}
	walk.Copy[*elemNode[E]](t.root, elemValue[E], func(e E) {
		out.Insert(e)
	})
	return out
}

// Union, Intersection, Diff and SymDiff each combine t with other under
// t's comparator and return a freshly built result tree; neither input
// is mutated.
func (t *Tree[E]) Union(other *Tree[E]) *Tree[E]        { return t.combine(other, walk.Union) }
func (t *Tree[E]) Intersection(other *Tree[E]) *Tree[E] { return t.combine(other, walk.Intersection) }
func (t *Tree[E]) Diff(other *Tree[E]) *Tree[E]         { return t.combine(other, walk.Diff) }
func (t *Tree[E]) SymDiff(other *Tree[E]) *Tree[E]      { return t.combine(other, walk.SymDiff) }

func (t *Tree[E]) combine(other *Tree[E], op walk.Op) *Tree[E] {
	out := &Tree[E]{cmp: t.cmp}
	walk.Merge[*elemNode[E]](t.root, other.root, elemValue[E], t.cmp, op, func(e E) {
		out.Insert(e)
	})
	return out
}

func elemValue[E any](n *elemNode[E]) E { return n.elem }
