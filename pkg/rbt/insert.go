package rbt

// Insert adds e to the tree in a single top-down pass: violations of the
// red-black invariants are fixed as they are created, on the way down,
// instead of being unwound afterward on the way back up. If an
// equivalent element (cmp == 0) is already present, it is overwritten
// and the displaced element is returned with ok == true; otherwise a new
// leaf is attached and the zero value is returned with ok == false.
func (t *Tree[E]) Insert(e E) (displaced E, ok bool) {
	var zero E

	if t.root == nil {
		t.root = newElemNode(e)
		t.root.color = black
		t.size++
		return zero, false
	}

	var head elemNode[E]
	head.right = t.root

	var gg *elemNode[E] // great-grandparent: &head while g is nil
	var g *elemNode[E]  // grandparent
	var p *elemNode[E]  // parent
	q := t.root

	gg = &head
	var dir, last bool
	created := false

	for {
		switch {
		case q == nil:
			created = true
			leaf := newElemNode(e)
			p.setChild(dir, leaf)
			q = leaf
		case isRed(q.left) && isRed(q.right):
			q.color = red
			q.left.color = black
			q.right.color = black
		}

		if isRed(q) && isRed(p) {
			dir2 := gg.right == g
			if q == p.child(last) {
				gg.setChild(dir2, rotateSingle(g, !last))
			} else {
				gg.setChild(dir2, rotateDouble(g, !last))
			}
		}

		if created {
			t.size++
			break
		}

		if c := t.cmp(e, q.elem); c == 0 {
			displaced = q.elem
			q.elem = e
			ok = true
			break
		} else {
			last = dir
			dir = c > 0
		}

		if g != nil {
			gg = g
		}
		g, p = p, q
		q = q.child(dir)
	}

	t.root = head.right
	t.root.color = black

	if created {
		return zero, false
	}
	return displaced, ok
}
