package rbt

import (
	"testing"

	"github.com/barnowlsnest/ordset/pkg/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RemoveTestSuite struct {
	suite.Suite
	t *Tree[int]
}

func (s *RemoveTestSuite) SetupTest() {
	tr, err := New(compare.FromOrdered[int]())
	s.Require().NoError(err)
	s.t = tr
}

func TestRemoveTestSuite(t *testing.T) {
	suite.Run(t, new(RemoveTestSuite))
}

func (s *RemoveTestSuite) TestRemoveSingleton() {
	s.t.Insert(42)
	v, ok := s.t.Remove(42)
	assert.True(s.T(), ok)
	assert.Equal(s.T(), 42, v)
	assert.True(s.T(), s.t.IsEmpty())
	assert.NoError(s.T(), s.t.CheckInvariants())
}

func (s *RemoveTestSuite) TestRemoveMinMaxSingleton() {
	s.t.Insert(7)
	v, ok := s.t.RemoveMin()
	assert.True(s.T(), ok)
	assert.Equal(s.T(), 7, v)
	assert.True(s.T(), s.t.IsEmpty())

	s.t.Insert(9)
	v, ok = s.t.RemoveMax()
	assert.True(s.T(), ok)
	assert.Equal(s.T(), 9, v)
	assert.True(s.T(), s.t.IsEmpty())
}

func (s *RemoveTestSuite) TestRemoveMissing() {
	s.t.Insert(1)
	_, ok := s.t.Remove(999)
	assert.False(s.T(), ok)
	assert.Equal(s.T(), 1, s.t.Size())
}

// TestRemoveEveryOrderPreservesInvariants builds a moderately sized tree
// and removes every element in ascending key order, checking invariants
// after each deletion, then repeats removing in descending order on a
// fresh tree.
func (s *RemoveTestSuite) TestRemoveEveryOrderPreservesInvariants() {
	const n = 150

	build := func() []int {
		keys := make([]int, n)
		for i := range keys {
			keys[i] = i
		}
		return keys
	}

	s.Run("ascending removal", func() {
		s.SetupTest()
		keys := build()
		for _, k := range keys {
			s.t.Insert(k)
		}
		for _, k := range keys {
			_, ok := s.t.Remove(k)
			assert.True(s.T(), ok)
			assert.NoError(s.T(), s.t.CheckInvariants(), "after removing %d", k)
		}
		assert.True(s.T(), s.t.IsEmpty())
	})

	s.Run("descending removal", func() {
		s.SetupTest()
		keys := build()
		for _, k := range keys {
			s.t.Insert(k)
		}
		for i := len(keys) - 1; i >= 0; i-- {
			_, ok := s.t.Remove(keys[i])
			assert.True(s.T(), ok)
			assert.NoError(s.T(), s.t.CheckInvariants(), "after removing %d", keys[i])
		}
		assert.True(s.T(), s.t.IsEmpty())
	})

	s.Run("remove-min repeatedly", func() {
		s.SetupTest()
		keys := build()
		for _, k := range keys {
			s.t.Insert(k)
		}
		for range keys {
			_, ok := s.t.RemoveMin()
			assert.True(s.T(), ok)
			assert.NoError(s.T(), s.t.CheckInvariants())
		}
	})

	s.Run("remove-max repeatedly", func() {
		s.SetupTest()
		keys := build()
		for _, k := range keys {
			s.t.Insert(k)
		}
		for range keys {
			_, ok := s.t.RemoveMax()
			assert.True(s.T(), ok)
			assert.NoError(s.T(), s.t.CheckInvariants())
		}
	})
}

func (s *RemoveTestSuite) TestRemoveAll() {
	for i := 0; i < 50; i++ {
		s.t.Insert(i)
	}
	s.t.RemoveAll()
	assert.True(s.T(), s.t.IsEmpty())
	assert.Equal(s.T(), 0, s.t.Size())
}
