package rbt

// Remove deletes the element equivalent to key, if present, and returns
// it. Like Insert, this is a single top-down pass: instead of deleting
// and then rebalancing on the way back up, the descent pushes a red
// node down ahead of it at every level, so by the time it reaches the
// node to remove, that node is guaranteed red (or a black leaf), which
// can always be spliced out without creating a black-height violation.
func (t *Tree[E]) Remove(key E) (E, bool) {
	var zero E
	if t.root == nil {
		return zero, false
	}

	var head elemNode[E]
	head.right = t.root

	var g, p *elemNode[E]
	q := &head
	dir := true
	var found *elemNode[E]

	for q.child(dir) != nil {
		last := dir
		g, p = p, q
		q = q.child(dir)

		c := t.cmp(key, q.elem)
		dir = c > 0
		if c == 0 {
			found = q
		}

		p = pushRedDown(g, p, q, last, dir)
	}

	var removed E
	ok := found != nil
	if ok {
		removed = found.elem
		found.elem = q.elem
		repl := q.child(q.left == nil)
		p.setChild(p.right == q, repl)
		t.size--
	}

	t.root = head.right
	if t.root != nil {
		t.root.color = black
	}

	return removed, ok
}

// RemoveMin deletes and returns the smallest element.
func (t *Tree[E]) RemoveMin() (E, bool) {
	return t.removeExtreme(false)
}

// RemoveMax deletes and returns the largest element.
func (t *Tree[E]) RemoveMax() (E, bool) {
	return t.removeExtreme(true)
}

// removeExtreme specializes Remove's push-down descent to a fixed
// direction instead of comparator-guided search, and handles the
// single-black-root tree through the same loop: the loop body always
// runs at least once (head.right is non-nil by the IsEmpty guard above
// it), so there is no separate shortcut path for the one-node case to
// diverge from.
func (t *Tree[E]) removeExtreme(extreme bool) (E, bool) {
	var zero E
	if t.root == nil {
		return zero, false
	}

	var head elemNode[E]
	head.right = t.root

	var g, p *elemNode[E]
	q := &head
	dir := true

	for q.child(dir) != nil {
		last := dir
		g, p = p, q
		q = q.child(dir)
		dir = extreme

		p = pushRedDown(g, p, q, last, dir)
	}

	removed := q.elem
	repl := q.child(q.left == nil)
	p.setChild(p.right == q, repl)
	t.size--

	t.root = head.right
	if t.root != nil {
		t.root.color = black
	}

	return removed, true
}

// pushRedDown ensures q is red, or has a red child in direction dir,
// before the descent continues past it. It returns the parent pointer
// to use for the rest of this iteration, which only changes in the case
// where q's own subtree was rotated.
func pushRedDown[E any](g, p, q *elemNode[E], last, dir bool) *elemNode[E] {
	if isRed(q) || isRed(q.child(dir)) {
		return p
	}

	if isRed(q.child(!dir)) {
		newRoot := rotateSingle(q, dir)
		p.setChild(last, newRoot)
		return newRoot
	}

	s := p.child(!last)
	if s == nil {
		return p
	}

	if !isRed(s.child(!last)) && !isRed(s.child(last)) {
		p.color = black
		s.color = red
		q.color = red
		return p
	}

	dir2 := g.right == p
	var newRoot *elemNode[E]
	if isRed(s.child(last)) {
		newRoot = rotateDouble(p, last)
	} else {
		newRoot = rotateSingle(p, last)
	}
	g.setChild(dir2, newRoot)
	q.color = red
	newRoot.color = red
	newRoot.left.color = black
	newRoot.right.color = black

	return p
}

// RemoveAll empties the tree. There is no balance to preserve once every
// node is going away, so this reuses the same vine-flattening teardown
// pkg/bst uses rather than a recursive walk.
func (t *Tree[E]) RemoveAll() {
	cur := t.root
	for cur != nil {
		if cur.left != nil {
			newRoot := cur.left
			cur.left = newRoot.right
			newRoot.right = cur
			cur = newRoot
			continue
		}
		next := cur.right
		cur.left, cur.right = nil, nil
		cur = next
	}
	t.root = nil
	t.size = 0
}
