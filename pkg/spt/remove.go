package spt

// Remove splays key to the root and, if found, joins its left and right
// subtrees into one: the left subtree's maximum is splayed to its own
// root (now guaranteed to have no right child), which is then free to
// adopt the right subtree wholesale.
func (t *Tree[E]) Remove(key E) (E, bool) {
	var zero E
	if t.root == nil {
		return zero, false
	}
	t.splay(key)
	if t.cmp(key, t.root.elem) != 0 {
		return zero, false
	}

	removed := t.root.elem
	t.root = joinSubtrees(t.root.left, t.root.right)
	t.size--
	return removed, true
}

// RemoveMin splays the smallest element to the root and detaches it.
func (t *Tree[E]) RemoveMin() (E, bool) { return t.removeExtreme(false) }

// RemoveMax splays the largest element to the root and detaches it.
func (t *Tree[E]) RemoveMax() (E, bool) { return t.removeExtreme(true) }

func (t *Tree[E]) removeExtreme(dir bool) (E, bool) {
	var zero E
	if t.root == nil {
		return zero, false
	}
	t.splayExtreme(dir)
	removed := t.root.elem
	t.root = t.root.child(!dir)
	t.size--
	return removed, true
}

// RemoveAll discards every element. Unlike pkg/bst and pkg/rbt, it does
// not first flatten the tree into a vine and unlink each node: dropping
// the root reference is enough, the collector reclaims the rest.
func (t *Tree[E]) RemoveAll() {
	t.root = nil
	t.size = 0
}

// joinSubtrees merges two subtrees known to satisfy left < right into
// one, given that left may be nil.
func joinSubtrees[E any](left, right *elemNode[E]) *elemNode[E] {
	if left == nil {
		return right
	}
	left = splaySubtreeExtreme(left, true)
	left.right = right
	return left
}

// splaySubtreeExtreme is splayExtreme's logic lifted to operate on a
// bare subtree root rather than a whole Tree, so joinSubtrees can reuse
// it without a comparator or a Tree receiver.
func splaySubtreeExtreme[E any](root *elemNode[E], dir bool) *elemNode[E] {
	if root == nil {
		return nil
	}

	var header elemNode[E]
	l, r := &header, &header

	for root.child(dir) != nil {
		if dir {
			l.right = root
			l = root
			root = root.right
		} else {
			r.left = root
			r = root
			root = root.left
		}
	}

	l.right = root.left
	r.left = root.right
	root.left = header.right
	root.right = header.left
	return root
}
