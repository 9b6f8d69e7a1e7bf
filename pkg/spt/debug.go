package spt

import (
	"fmt"
	"io"
	"strings"

	"github.com/barnowlsnest/ordset/pkg/list"
)

// CheckInvariants verifies the binary-search-tree ordering property and
// that the recorded Size matches an independent node count. A splay
// tree carries no balance invariant beyond ordering, so unlike pkg/rbt
// there is no color or black-height check to run alongside it.
func (t *Tree[E]) CheckInvariants() error {
	if err := t.checkOrder(t.root, nil, nil); err != nil {
		return err
	}

	counted := t.iterativeCount()
	if counted != t.size {
		return fmt.Errorf("%w: size field reports %d, iterative count found %d", ErrBrokenInvariant, t.size, counted)
	}
	return nil
}

func (t *Tree[E]) checkOrder(n *elemNode[E], lo, hi *E) error {
	if n == nil {
		return nil
	}
	if lo != nil && t.cmp(n.elem, *lo) <= 0 {
		return fmt.Errorf("%w: node does not exceed its lower bound", ErrBrokenInvariant)
	}
	if hi != nil && t.cmp(n.elem, *hi) >= 0 {
		return fmt.Errorf("%w: node does not precede its upper bound", ErrBrokenInvariant)
	}
	if err := t.checkOrder(n.left, lo, &n.elem); err != nil {
		return err
	}
	return t.checkOrder(n.right, &n.elem, hi)
}

// iterativeCount walks the tree with an explicit pkg/list.Stack instead
// of recursion, cross-checking the recursive ordering walk above against
// an independently-derived node count.
func (t *Tree[E]) iterativeCount() int {
	if t.root == nil {
		return 0
	}

	stack := list.NewStack()
	stack.Push(t.root.Node)
	byID := map[uint64]*elemNode[E]{t.root.ID(): t.root}

	count := 0
	for !stack.IsEmpty() {
		top := stack.Pop()
		n := byID[top.ID()]
		count++

		if n.left != nil {
			byID[n.left.ID()] = n.left
			stack.Push(n.left.Node)
		}
		if n.right != nil {
			byID[n.right.ID()] = n.right
			stack.Push(n.right.Node)
		}
	}
	return count
}

// Height returns the tree's height in nodes (an empty tree has height
// 0). A splay tree has no balance guarantee, so unlike pkg/rbt this is
// purely informational — useful for observing how a given access
// pattern has shaped the tree, not for asserting a bound.
func (t *Tree[E]) Height() int {
	if t.root == nil {
		return 0
	}

	type leveled struct {
		n     *elemNode[E]
		depth int
	}

	queue := list.NewQueue()
	queue.Enqueue(t.root.Node)
	byID := map[uint64]leveled{t.root.ID(): {t.root, 1}}

	height := 0
	for !queue.IsEmpty() {
		front := queue.Dequeue()
		cur := byID[front.ID()]
		if cur.depth > height {
			height = cur.depth
		}

		if cur.n.left != nil {
			byID[cur.n.left.ID()] = leveled{cur.n.left, cur.depth + 1}
			queue.Enqueue(cur.n.left.Node)
		}
		if cur.n.right != nil {
			byID[cur.n.right.ID()] = leveled{cur.n.right, cur.depth + 1}
			queue.Enqueue(cur.n.right.Node)
		}
	}
	return height
}

// Print renders the tree to w as an indented level-order listing, one
// line per node, using pkg/list.Queue to drive the breadth-first walk.
func (t *Tree[E]) Print(w io.Writer, format func(E) string) {
	if t.root == nil {
		fmt.Fprintln(w, "<empty>")
		return
	}

	type leveled struct {
		n     *elemNode[E]
		depth int
	}

	queue := list.NewQueue()
	queue.Enqueue(t.root.Node)
	byID := map[uint64]leveled{t.root.ID(): {t.root, 0}}

	for !queue.IsEmpty() {
		front := queue.Dequeue()
		cur := byID[front.ID()]

		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", cur.depth), format(cur.n.elem))

		if cur.n.left != nil {
			byID[cur.n.left.ID()] = leveled{cur.n.left, cur.depth + 1}
			queue.Enqueue(cur.n.left.Node)
		}
		if cur.n.right != nil {
			byID[cur.n.right.ID()] = leveled{cur.n.right, cur.depth + 1}
			queue.Enqueue(cur.n.right.Node)
		}
	}
}
