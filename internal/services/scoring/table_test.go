package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
)

type TableSuite struct {
	suite.Suite
	table *Table
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableSuite))
}

func (s *TableSuite) SetupTest() {
	table, err := NewTable([]model.LetterValue{
		{Letter: 'E', Count: 15, Points: 1},
		{Letter: 'A', Count: 9, Points: 1},
		{Letter: 'B', Count: 2, Points: 3},
		{Letter: 'Z', Count: 1, Points: 10},
		{Letter: 'R', Count: 6, Points: 1},
		{Letter: model.Blank, Count: 2, Points: 0},
	})
	s.Require().NoError(err)
	s.table = table
}

func (s *TableSuite) TestAlphabetKeepsDistributionOrderWithoutBlank() {
	s.Equal([]model.Letter{'E', 'A', 'B', 'Z', 'R'}, s.table.Alphabet())
}

func (s *TableSuite) TestAlphabetIsACopy() {
	alphabet := s.table.Alphabet()
	alphabet[0] = 'Q'
	s.Equal(model.Letter('E'), s.table.Alphabet()[0])
}

func (s *TableSuite) TestCountPoints() {
	score, err := s.table.CountPoints("ZEBRE")
	s.Require().NoError(err)
	s.Equal(10+1+3+1+1, score)
}

func (s *TableSuite) TestCountPointsFoldsDiacritics() {
	plain, err := s.table.CountPoints("zebre")
	s.Require().NoError(err)
	accented, err := s.table.CountPoints("Zèbre")
	s.Require().NoError(err)
	s.Equal(plain, accented)
}

func (s *TableSuite) TestCountPointsIsAdditive() {
	for _, word := range []string{"ABBE", "ZEZE", "RAZ", "BÉBÉ"} {
		score, err := s.table.CountPoints(word)
		s.Require().NoError(err)

		sum := 0
		for _, l := range dictionary.FoldLetters(word) {
			p, err := s.table.Points(l)
			s.Require().NoError(err)
			sum += p
		}
		s.Equal(sum, score, word)
	}
}

func (s *TableSuite) TestCountPointsUnknownLetter() {
	_, err := s.table.CountPoints("QAT")
	s.ErrorIs(err, model.ErrUnknownLetter)
}

func (s *TableSuite) TestPackageLevelCountPoints() {
	score, err := CountPoints(s.table, "BAR")
	s.Require().NoError(err)
	s.Equal(5, score)
}

func (s *TableSuite) TestBlankScoresZero() {
	p, err := s.table.Points(model.Blank)
	s.Require().NoError(err)
	s.Equal(0, p)

	sum, err := s.table.Sum([]model.Letter{'Z', model.Blank, 'A'})
	s.Require().NoError(err)
	s.Equal(11, sum)
}

func (s *TableSuite) TestKnows() {
	s.True(s.table.Knows('Z'))
	s.True(s.table.Knows(model.Blank))
	s.False(s.table.Knows('Q'))
}

func (s *TableSuite) TestSortByPointsIsStable() {
	rack := []model.Letter{'Z', 'R', 'B', model.Blank, 'A', 'E'}

	s.Equal([]model.Letter{model.Blank, 'R', 'A', 'E', 'B', 'Z'}, s.table.SortByPoints(rack))
	// Input untouched
	s.Equal([]model.Letter{'Z', 'R', 'B', model.Blank, 'A', 'E'}, rack)
}

func (s *TableSuite) TestNewTableRejectsDuplicates() {
	_, err := NewTable([]model.LetterValue{{Letter: 'A', Points: 1}, {Letter: 'A', Points: 2}})
	s.ErrorIs(err, model.ErrInvalidDistribution)
}

func (s *TableSuite) TestNewTableRejectsNegativePoints() {
	_, err := NewTable([]model.LetterValue{{Letter: 'A', Points: -1}})
	s.ErrorIs(err, model.ErrInvalidDistribution)
}

func (s *TableSuite) TestFromPointsOrdersAlphabetically() {
	table, err := FromPoints(map[model.Letter]int{'E': 1, 'B': 3, 'A': 1})
	s.Require().NoError(err)
	s.Equal([]model.Letter{'A', 'B', 'E'}, table.Alphabet())

	score, err := table.CountPoints("ABE")
	s.Require().NoError(err)
	s.Equal(5, score)
}
