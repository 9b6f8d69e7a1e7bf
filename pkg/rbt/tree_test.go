package rbt

import (
	"testing"

	"github.com/barnowlsnest/ordset/pkg/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TreeTestSuite struct {
	suite.Suite
	t *Tree[int]
}

func (s *TreeTestSuite) SetupTest() {
	tr, err := New(compare.FromOrdered[int]())
	s.Require().NoError(err)
	s.t = tr
}

func TestTreeTestSuite(t *testing.T) {
	suite.Run(t, new(TreeTestSuite))
}

func (s *TreeTestSuite) TestNewRejectsNilComparator() {
	tr, err := New[int](nil)
	assert.Nil(s.T(), tr)
	assert.ErrorIs(s.T(), err, ErrNilComparator)
}

func (s *TreeTestSuite) TestNewIsEmpty() {
	assert.True(s.T(), s.t.IsEmpty())
	assert.Equal(s.T(), 0, s.t.Size())
	assert.Equal(s.T(), 0, s.t.Height())
}
