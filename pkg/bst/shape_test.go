package bst

import (
	"testing"

	"github.com/barnowlsnest/ordset/pkg/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ShapeTestSuite struct {
	suite.Suite
}

func TestShapeTestSuite(t *testing.T) {
	suite.Run(t, new(ShapeTestSuite))
}

// TestToListAscending checks that ToList's vine has every node's left
// child nil and its right-link chain holds the elements in ascending
// order, matching the spine shape Rebalance's own first phase builds.
func (s *ShapeTestSuite) TestToListAscending() {
	tr, _ := New(compare.FromOrdered[int]())
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		tr.Insert(v)
	}
	tr.ToList()

	assert.Equal(s.T(), []int{20, 30, 40, 50, 60, 70, 80}, rightVineElems(tr.root))
	for n := tr.root; n != nil; n = n.right {
		assert.Nil(s.T(), n.left)
	}
}

// TestToReversedList is ToList's mirror: a left-leaning vine rooted at
// the maximum, every node's right child nil.
func (s *ShapeTestSuite) TestToReversedList() {
	tr, _ := New(compare.FromOrdered[int]())
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		tr.Insert(v)
	}
	tr.ToReversedList()

	assert.Equal(s.T(), []int{80, 70, 60, 50, 40, 30, 20}, leftVineElems(tr.root))
	for n := tr.root; n != nil; n = n.left {
		assert.Nil(s.T(), n.right)
	}
}

// TestRebalanceDegenerateChain builds the worst case for an unbalanced
// BST, an ascending-insert chain, and checks that Rebalance both
// preserves the element set and leaves the tree logarithmically deep.
func (s *ShapeTestSuite) TestRebalanceDegenerateChain() {
	tr, _ := New(compare.FromOrdered[int]())
	const n = 63
	for i := 1; i <= n; i++ {
		tr.Insert(i)
	}

	before := ascending(tr)
	tr.Rebalance()
	after := ascending(tr)

	assert.Equal(s.T(), before, after)
	assert.NoError(s.T(), tr.CheckInvariants())
	assert.LessOrEqual(s.T(), treeHeight(tr.root), 7)
}

func (s *ShapeTestSuite) TestRebalanceSmallSizes() {
	for n := 0; n <= 8; n++ {
		tr, _ := New(compare.FromOrdered[int]())
		for i := 1; i <= n; i++ {
			tr.Insert(i)
		}
		tr.Rebalance()
		assert.NoError(s.T(), tr.CheckInvariants(), "n=%d", n)
		assert.Equal(s.T(), n, tr.Size(), "n=%d", n)
	}
}

func treeHeight[E any](n *elemNode[E]) int {
	if n == nil {
		return 0
	}
	l, r := treeHeight(n.left), treeHeight(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// ascending reads t's elements back out via repeated Next from Min,
// leaving t's shape untouched. Used in place of the old ToList-as-reader
// idiom now that ToList mutates its receiver into a vine.
func ascending[E any](t *Tree[E]) []E {
	out := make([]E, 0, t.size)
	cur, ok := t.Min()
	for ok {
		out = append(out, cur)
		cur, ok = t.Next(cur)
	}
	return out
}

// rightVineElems reads off a right-leaning vine's elements top to bottom.
func rightVineElems[E any](n *elemNode[E]) []E {
	var out []E
	for n != nil {
		out = append(out, n.elem)
		n = n.right
	}
	return out
}

// leftVineElems reads off a left-leaning vine's elements top to bottom.
func leftVineElems[E any](n *elemNode[E]) []E {
	var out []E
	for n != nil {
		out = append(out, n.elem)
		n = n.left
	}
	return out
}
