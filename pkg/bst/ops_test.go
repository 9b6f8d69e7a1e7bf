package bst

import (
	"testing"

	"github.com/barnowlsnest/ordset/pkg/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type OpsTestSuite struct {
	suite.Suite
	t *Tree[int]
}

func (s *OpsTestSuite) SetupTest() {
	tr, err := New(compare.FromOrdered[int]())
	s.Require().NoError(err)
	s.t = tr
}

func TestOpsTestSuite(t *testing.T) {
	suite.Run(t, new(OpsTestSuite))
}

func (s *OpsTestSuite) buildTree(values []int) {
	for _, v := range values {
		s.t.Insert(v)
	}
}

func (s *OpsTestSuite) TestInsert() {
	testCases := []struct {
		name         string
		insertValues []int
		expectedSize int
	}{
		{"single node", []int{50}, 1},
		{"multiple nodes", []int{50, 30, 70, 20, 40}, 5},
		{"duplicate collapses", []int{50, 50, 50}, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.buildTree(tc.insertValues)
			assert.Equal(s.T(), tc.expectedSize, s.t.Size())
			assert.False(s.T(), s.t.IsEmpty())
		})
	}
}

func (s *OpsTestSuite) TestInsertReturnsDisplaced() {
	s.t.Insert(10)
	_, ok := s.t.Insert(20)
	assert.False(s.T(), ok)

	displaced, ok := s.t.Insert(10)
	assert.True(s.T(), ok)
	assert.Equal(s.T(), 10, displaced)
	assert.Equal(s.T(), 2, s.t.Size())
}

func (s *OpsTestSuite) TestInsertMinMax() {
	s.buildTree([]int{50, 30, 70})

	_, err := s.t.InsertMin(10)
	assert.NoError(s.T(), err)

	_, err = s.t.InsertMax(100)
	assert.NoError(s.T(), err)

	_, err = s.t.InsertMin(60)
	assert.ErrorIs(s.T(), err, ErrOutOfOrder)

	_, err = s.t.InsertMax(5)
	assert.ErrorIs(s.T(), err, ErrOutOfOrder)

	assert.Equal(s.T(), 5, s.t.Size())
}

func (s *OpsTestSuite) TestSearch() {
	s.buildTree([]int{50, 30, 70, 20, 40})

	v, ok := s.t.Search(40)
	assert.True(s.T(), ok)
	assert.Equal(s.T(), 40, v)

	_, ok = s.t.Search(999)
	assert.False(s.T(), ok)
}

func (s *OpsTestSuite) TestMinMax() {
	_, ok := s.t.Min()
	assert.False(s.T(), ok)

	s.buildTree([]int{50, 30, 70, 20, 40})

	min, ok := s.t.Min()
	assert.True(s.T(), ok)
	assert.Equal(s.T(), 20, min)

	max, ok := s.t.Max()
	assert.True(s.T(), ok)
	assert.Equal(s.T(), 70, max)
}

func (s *OpsTestSuite) TestPrevNext() {
	s.buildTree([]int{50, 30, 70, 20, 40, 60, 80})

	testCases := []struct {
		name     string
		key      int
		fn       func(int) (int, bool)
		expected int
		found    bool
	}{
		{"prev of 50", 50, s.t.Prev, 40, true},
		{"next of 50", 50, s.t.Next, 60, true},
		{"prev of min", 20, s.t.Prev, 0, false},
		{"next of max", 80, s.t.Next, 0, false},
		{"prev of absent key between nodes", 45, s.t.Prev, 40, true},
		{"next of absent key between nodes", 45, s.t.Next, 50, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			v, ok := tc.fn(tc.key)
			assert.Equal(s.T(), tc.found, ok)
			if tc.found {
				assert.Equal(s.T(), tc.expected, v)
			}
		})
	}
}
