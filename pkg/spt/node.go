package spt

import (
	"github.com/barnowlsnest/ordset/pkg/node"
	"github.com/barnowlsnest/ordset/pkg/serial"
)

const idShard = "spt"

// elemNode is a single splay tree node. It implements walk.Linked so the
// set-algebra operators in setops.go can read it with the same
// Morris-threaded in-order walker pkg/bst and pkg/rbt use, but nothing
// on the splay-driven paths below (Insert, Search, Remove, ...) ever
// touches that walker itself: every splay access reshapes the tree it
// touches, so a walk threaded through a tree that is also being splayed
// under it would fight itself.
type elemNode[E any] struct {
	*node.Node
	elem  E
	left  *elemNode[E]
	right *elemNode[E]
}

func newElemNode[E any](e E) *elemNode[E] {
	return &elemNode[E]{
		Node: node.New(serial.Seq().Next(idShard), nil, nil),
		elem: e,
	}
}

// child returns n's child in direction dir (false == left, true == right).
func (n *elemNode[E]) child(dir bool) *elemNode[E] {
	if dir {
		return n.right
	}
	return n.left
}

func (n *elemNode[E]) setChild(dir bool, c *elemNode[E]) {
	if dir {
		n.right = c
	} else {
		n.left = c
	}
}

func (n *elemNode[E]) GetLeft() *elemNode[E]  { return n.left }
func (n *elemNode[E]) SetLeft(c *elemNode[E]) { n.left = c }

func (n *elemNode[E]) GetRight() *elemNode[E]  { return n.right }
func (n *elemNode[E]) SetRight(c *elemNode[E]) { n.right = c }
