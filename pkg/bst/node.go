package bst

import (
	"github.com/barnowlsnest/ordset/pkg/node"
	"github.com/barnowlsnest/ordset/pkg/serial"
)

// idShard is the key this family draws node identifiers with from the
// shared serial generator. IDs are unique among BST nodes; "bst", "rbt"
// and "spt" map to separate counters that each start at 1, so the same
// number can appear on nodes of different families.
const idShard = "bst"

// elemNode is a single BST node. It carries no parent link: every
// operation that needs an ancestor (Remove, Rebalance, ToList) tracks it
// on the way down instead: a node is only an element plus two child
// links.
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

// The following four methods satisfy walk.Linked[*elemNode[E]], letting
// the shared Morris walker drive Copy and the set-algebra operators over
// this node type without this package needing to know anything about
// threading.
func (n *elemNode[E]) GetLeft() *elemNode[E]  { return n.left }
func (n *elemNode[E]) SetLeft(m *elemNode[E]) { n.left = m }
func (n *elemNode[E]) GetRight() *elemNode[E] { return n.right }
func (n *elemNode[E]) SetRight(m *elemNode[E]) { n.right = m }
