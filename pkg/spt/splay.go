package spt

// splay brings the node matching key to the root. If no such node
// exists, the last node visited while searching for it — its would-be
// parent — ends up at the root instead, following Sleator and Tarjan's
// top-down simple splay: a single pass down the tree, with no revisit
// of any node and no recursion, that reassembles two partial trees (one
// holding everything smaller than key, one holding everything larger)
// around whichever node it stops at.
//
// It is a no-op on an empty tree.
func (t *Tree[E]) splay(key E) {
	root := t.root
	if root == nil {
		return
	}

	var header elemNode[E]
	l, r := &header, &header

	for {
		switch c := t.cmp(key, root.elem); {
		case c < 0:
			if root.left == nil {
				goto done
			}
			if t.cmp(key, root.left.elem) < 0 {
				y := root.left
				root.left = y.right
				y.right = root
				root = y
				if root.left == nil {
					goto done
				}
			}
			r.left = root
			r = root
			root = root.left
		case c > 0:
			if root.right == nil {
				goto done
			}
			if t.cmp(key, root.right.elem) > 0 {
				y := root.right
				root.right = y.left
				y.left = root
				root = y
				if root.right == nil {
					goto done
				}
			}
			l.right = root
			l = root
			root = root.right
		default:
			goto done
		}
	}

done:
	l.right = root.left
	r.left = root.right
	root.left = header.right
	root.right = header.left
	t.root = root
}

// splayExtreme brings the smallest (dir == false) or largest (dir ==
// true) element to the root. It uses the same two-partial-tree
// reassembly as splay, driven by always preferring one direction instead
// of a comparator, so it needs no key and cannot stop early at an exact
// match. Unlike splay it performs no zig-zig rotation: each node on the
// path is linked into the opposite partial tree as it is, so the path's
// depth is not compressed.
func (t *Tree[E]) splayExtreme(dir bool) {
	root := t.root
	if root == nil {
		return
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
	t.root = root
}
