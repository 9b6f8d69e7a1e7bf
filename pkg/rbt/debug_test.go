package rbt

import (
	"strconv"
	"strings"
	"testing"

	"github.com/barnowlsnest/ordset/pkg/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DebugTestSuite struct {
	suite.Suite
	t *Tree[int]
}

func (s *DebugTestSuite) SetupTest() {
	tr, _ := New(compare.FromOrdered[int]())
	s.t = tr
}

func TestDebugTestSuite(t *testing.T) {
	suite.Run(t, new(DebugTestSuite))
}

func (s *DebugTestSuite) TestCheckInvariantsOnEmpty() {
	assert.NoError(s.T(), s.t.CheckInvariants())
}

func (s *DebugTestSuite) TestCheckInvariantsCatchesRedRoot() {
	s.t.Insert(1)
	s.t.root.color = red

	err := s.t.CheckInvariants()
	assert.ErrorIs(s.T(), err, ErrBrokenInvariant)
}

func (s *DebugTestSuite) TestCheckInvariantsCatchesRedRedViolation() {
	s.t.Insert(1)
	s.t.Insert(2)
	s.t.root.color = red
	s.t.root.right.color = red

	err := s.t.CheckInvariants()
	assert.ErrorIs(s.T(), err, ErrBrokenInvariant)
}

func (s *DebugTestSuite) TestHeightGrowsLogarithmically() {
	for i := 1; i <= 100; i++ {
		s.t.Insert(i)
	}
	assert.LessOrEqual(s.T(), s.t.Height(), 14)
	assert.Greater(s.T(), s.t.Height(), 0)
}

func (s *DebugTestSuite) TestPrintNonEmpty() {
	s.t.Insert(50)
	s.t.Insert(30)
	s.t.Insert(70)

	var sb strings.Builder
	s.t.Print(&sb, func(v int) string { return strconv.Itoa(v) })

	out := sb.String()
	assert.Contains(s.T(), out, "50")
	assert.Contains(s.T(), out, "B")
	assert.Contains(s.T(), out, "R")
}

func (s *DebugTestSuite) TestPrintEmpty() {
	var sb strings.Builder
	s.t.Print(&sb, func(v int) string { return strconv.Itoa(v) })
	assert.Equal(s.T(), "<empty>\n", sb.String())
}
