package spt

import "fmt"

// Insert adds e to the tree. It splays first, which makes the
// subsequent insert a constant amount of surgery at the root: the
// splayed node becomes either e's new left or right child, donating the
// subtree on the other side of e to the new node wholesale. If an
// equivalent element (cmp == 0) is already present, it is overwritten
// and the displaced element is returned with ok == true; otherwise a new
// root is installed and the zero value is returned with ok == false.
func (t *Tree[E]) Insert(e E) (displaced E, ok bool) {
	var zero E
	if t.root == nil {
		t.root = newElemNode(e)
		t.size++
		return zero, false
	}

	t.splay(e)
	switch c := t.cmp(e, t.root.elem); {
	case c < 0:
		n := newElemNode(e)
		n.left = t.root.left
		n.right = t.root
		t.root.left = nil
		t.root = n
		t.size++
		return zero, false
	case c > 0:
		n := newElemNode(e)
		n.right = t.root.right
		n.left = t.root
		t.root.right = nil
		t.root = n
		t.size++
		return zero, false
	default:
		displaced = t.root.elem
		t.root.elem = e
		return displaced, true
	}
}

// InsertMin attaches e as the new leftmost element. e must compare less
// than or equal to every element currently stored; violating that
// precondition returns ErrOutOfOrder without storing e (the current
// minimum has already been splayed to the root by then).
func (t *Tree[E]) InsertMin(e E) (E, error) {
	return t.insertExtreme(e, false)
}

// InsertMax attaches e as the new rightmost element. e must compare
// greater than or equal to every element currently stored; violating
// that precondition returns ErrOutOfOrder without storing e (the current
// maximum has already been splayed to the root by then).
func (t *Tree[E]) InsertMax(e E) (E, error) {
	return t.insertExtreme(e, true)
}

func (t *Tree[E]) insertExtreme(e E, dir bool) (E, error) {
	var zero E

	if t.root != nil {
		t.splayExtreme(dir)
		c := t.cmp(e, t.root.elem)
		violates := c > 0
		if dir {
			violates = c < 0
		}
		if violates {
			return zero, fmt.Errorf("insert extreme: %w", ErrOutOfOrder)
		}
	}

	displaced, ok := t.Insert(e)
	if !ok {
		return zero, nil
	}
	return displaced, nil
}

// Search splays the node matching key to the root and reports whether
// it was found. Calling Search even for a miss still reshapes the tree,
// which is what lets a splay tree's amortized cost track the access
// pattern instead of the worst case over all possible queries.
func (t *Tree[E]) Search(key E) (E, bool) {
	if t.root == nil {
		var zero E
		return zero, false
	}
	t.splay(key)
	if t.cmp(key, t.root.elem) == 0 {
		return t.root.elem, true
	}
	var zero E
	return zero, false
}

// Min splays the smallest element to the root and returns it.
func (t *Tree[E]) Min() (E, bool) {
	if t.root == nil {
		var zero E
		return zero, false
	}
	t.splayExtreme(false)
	return t.root.elem, true
}

// Max splays the largest element to the root and returns it.
func (t *Tree[E]) Max() (E, bool) {
	if t.root == nil {
		var zero E
		return zero, false
	}
	t.splayExtreme(true)
	return t.root.elem, true
}

// Prev splays key (or its would-be position) to the root, then returns
// the greatest stored element strictly less than key.
func (t *Tree[E]) Prev(key E) (E, bool) {
	var zero E
	if t.root == nil {
		return zero, false
	}
	t.splay(key)

	if t.cmp(key, t.root.elem) > 0 {
		return t.root.elem, true
	}
	if t.root.left == nil {
		return zero, false
	}
	// The splayed root's left subtree holds everything smaller; its
	// maximum is key's predecessor. Splaying that element to the root
	// of the whole tree keeps future accesses near it fast too.
	n := t.root.left
	for n.right != nil {
		n = n.right
	}
	t.splay(n.elem)
	return t.root.elem, true
}

// Next splays key (or its would-be position) to the root, then returns
// the smallest stored element strictly greater than key.
func (t *Tree[E]) Next(key E) (E, bool) {
	var zero E
	if t.root == nil {
		return zero, false
	}
	t.splay(key)

	if t.cmp(key, t.root.elem) < 0 {
		return t.root.elem, true
	}
	if t.root.right == nil {
		return zero, false
	}
	n := t.root.right
	for n.left != nil {
		n = n.left
	}
	t.splay(n.elem)
	return t.root.elem, true
}
