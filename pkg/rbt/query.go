package rbt

import "fmt"

// InsertMin attaches e as the new leftmost element, rebalancing exactly
// as Insert would. e must compare less than or equal to every element
// currently stored; violating that precondition returns ErrOutOfOrder
// and leaves the tree untouched.
func (t *Tree[E]) InsertMin(e E) (E, error) {
	return t.insertExtreme(e, false)
}

// InsertMax attaches e as the new rightmost element, rebalancing exactly
// as Insert would. e must compare greater than or equal to every element
// currently stored; violating that precondition returns ErrOutOfOrder
// and leaves the tree untouched.
func (t *Tree[E]) InsertMax(e E) (E, error) {
	return t.insertExtreme(e, true)
}

func (t *Tree[E]) insertExtreme(e E, dir bool) (E, error) {
	var zero E

	if t.root != nil {
		extreme, _ := t.extreme(dir)
		c := t.cmp(e, extreme)
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

// Search returns the stored element equivalent to key, if any.
func (t *Tree[E]) Search(key E) (E, bool) {
	cur := t.root
	for cur != nil {
		switch c := t.cmp(key, cur.elem); {
		case c == 0:
			return cur.elem, true
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	var zero E
	return zero, false
}

// Min returns the smallest stored element, or ok == false if empty.
func (t *Tree[E]) Min() (E, bool) {
	return t.extreme(false)
}

// Max returns the largest stored element, or ok == false if empty.
func (t *Tree[E]) Max() (E, bool) {
	return t.extreme(true)
}

func (t *Tree[E]) extreme(dir bool) (E, bool) {
	if t.root == nil {
		var zero E
		return zero, false
	}
	cur := t.root
	for cur.child(dir) != nil {
		cur = cur.child(dir)
	}
	return cur.elem, true
}

// Prev returns the greatest stored element strictly less than key.
func (t *Tree[E]) Prev(key E) (E, bool) {
	var candidate *elemNode[E]
	cur := t.root
	for cur != nil {
		if t.cmp(key, cur.elem) > 0 {
			candidate = cur
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	if candidate == nil {
		var zero E
		return zero, false
	}
	return candidate.elem, true
}

// Next returns the smallest stored element strictly greater than key.
func (t *Tree[E]) Next(key E) (E, bool) {
	var candidate *elemNode[E]
	cur := t.root
	for cur != nil {
		if t.cmp(key, cur.elem) < 0 {
			candidate = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if candidate == nil {
		var zero E
		return zero, false
	}
	return candidate.elem, true
}
