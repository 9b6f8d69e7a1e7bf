package rbt

import (
	"fmt"
	"io"
	"strings"

	"github.com/barnowlsnest/ordset/pkg/list"
)

// CheckInvariants verifies the binary-search ordering property, the
// red-black coloring rules (root is black, no red node has a red
// child), and a constant black-height across every root-to-nil path. It
// also cross-checks the recorded Size against an independent iterative
// node count taken with pkg/list.Stack.
func (t *Tree[E]) CheckInvariants() error {
	if t.root != nil && isRed(t.root) {
		return fmt.Errorf("%w: root is red", ErrBrokenInvariant)
	}
	if err := t.checkOrder(t.root, nil, nil); err != nil {
		return err
	}
	if _, err := blackHeight(t.root); err != nil {
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
	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return fmt.Errorf("%w: red node has a red child", ErrBrokenInvariant)
	}
	if err := t.checkOrder(n.left, lo, &n.elem); err != nil {
		return err
	}
	return t.checkOrder(n.right, &n.elem, hi)
}

// blackHeight returns the number of black nodes on every root-to-nil
// path below n, erroring the moment two such paths disagree.
func blackHeight[E any](n *elemNode[E]) (int, error) {
	if n == nil {
		return 1, nil
	}
	lh, err := blackHeight(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := blackHeight(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: black height differs across subtrees", ErrBrokenInvariant)
	}
	if n.color == black {
		return lh + 1, nil
	}
	return lh, nil
}

// Height returns the tree's height in nodes (an empty tree has height
// 0), computed iteratively level by level with pkg/list.Queue so a
// pathological, nearly-unbalanced input cannot overflow the call stack.
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

// Print renders the tree to w as an indented level-order listing, one
// line per node, prefixed with R or B for the node's color.
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

		marker := "R"
		if cur.n.color == black {
			marker = "B"
		}
		fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", cur.depth), marker, format(cur.n.elem))

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
