package rbt

import (
	"github.com/barnowlsnest/ordset/pkg/node"
	"github.com/barnowlsnest/ordset/pkg/serial"
)

const idShard = "rbt"

const (
	red   = false
	black = true
)

// elemNode is a single red-black tree node. color uses black == true, so
// a zero-valued elemNode (such as the sentinel head Insert and Remove
// declare) reads as red; newElemNode also starts nodes red. Nil
// children count as black through isRed.
type elemNode[E any] struct {
	*node.Node
	elem  E
	color bool
	left  *elemNode[E]
	right *elemNode[E]
}

func newElemNode[E any](e E) *elemNode[E] {
	return &elemNode[E]{
		Node:  node.New(serial.Seq().Next(idShard), nil, nil),
		elem:  e,
		color: red,
	}
}

// The following four methods satisfy walk.Linked[*elemNode[E]] so Copy
// and the set-algebra operators can share the Morris walker with pkg/bst
// without this package depending on anything in it.
func (n *elemNode[E]) GetLeft() *elemNode[E]   { return n.left }
func (n *elemNode[E]) SetLeft(m *elemNode[E])  { n.left = m }
func (n *elemNode[E]) GetRight() *elemNode[E]  { return n.right }
func (n *elemNode[E]) SetRight(m *elemNode[E]) { n.right = m }

func isRed[E any](n *elemNode[E]) bool {
	return n != nil && n.color == red
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

// rotateSingle rotates n in the direction opposite dir: rotateSingle(n,
// false) promotes n.right (a left rotation), rotateSingle(n, true)
// promotes n.left (a right rotation). It also recolors: the promoted
// node becomes black, the demoted one red. That recoloring is only
// sound in the specific contexts insert and remove call it from, never
// as a general-purpose rotation.
func rotateSingle[E any](n *elemNode[E], dir bool) *elemNode[E] {
	root := n.child(!dir)
	n.setChild(!dir, root.child(dir))
	root.setChild(dir, n)
	n.color = red
	root.color = black
	return root
}

// rotateDouble rotates n's child in direction !dir away from n, then
// rotates n itself, resolving a "zig-zag" shape in a single call.
func rotateDouble[E any](n *elemNode[E], dir bool) *elemNode[E] {
	n.setChild(!dir, rotateSingle(n.child(!dir), !dir))
	return rotateSingle(n, dir)
}
