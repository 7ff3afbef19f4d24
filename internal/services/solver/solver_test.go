package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
	"github.com/mcoot/wordtiles/internal/services/scoring"
)

func newTable(s *suite.Suite, rows ...model.LetterValue) *scoring.Table {
	table, err := scoring.NewTable(rows)
	s.Require().NoError(err)
	return table
}

func rack(s *suite.Suite, text string) model.Rack {
	r, err := model.ParseRack(text)
	s.Require().NoError(err)
	return r
}

// formable reports whether the letters can be laid from the rack, each blank
// covering one missing letter
func formable(letters []model.Letter, r model.Rack) bool {
	held := make(map[model.Letter]int)
	for _, l := range r {
		held[l]++
	}
	for _, l := range letters {
		switch {
		case held[l] > 0:
			held[l]--
		case held[model.Blank] > 0:
			held[model.Blank]--
		default:
			return false
		}
	}
	return true
}

type ExpandSuite struct {
	suite.Suite
	alphabet []model.Letter
}

func TestExpandSuite(t *testing.T) {
	suite.Run(t, new(ExpandSuite))
}

func (s *ExpandSuite) SetupTest() {
	s.alphabet = []model.Letter{'E', 'A', 'R', 'T'}
}

func (s *ExpandSuite) collect(r model.Rack) []Candidate {
	var out []Candidate
	for c := range Expand(s.alphabet, r) {
		out = append(out, c)
	}
	return out
}

func (s *ExpandSuite) TestNoBlankYieldsRackUnchanged() {
	r := rack(&s.Suite, "TAR")
	got := s.collect(r)

	s.Require().Len(got, 1)
	s.Equal(r, got[0].Letters)
	s.Empty(got[0].Substitutes)
}

func (s *ExpandSuite) TestOneBlankYieldsAlphabet() {
	r := rack(&s.Suite, "?TAR")
	got := s.collect(r)

	s.Require().Len(got, len(s.alphabet))
	for i, c := range got {
		s.Equal(model.Rack{s.alphabet[i], 'T', 'A', 'R'}, c.Letters)
		s.Equal([]model.Letter{s.alphabet[i]}, c.Substitutes)
		s.Len(c.Letters, len(r), "only the blank is substituted")
	}
	// Rack untouched
	s.Equal(model.Rack{model.Blank, 'T', 'A', 'R'}, r)
}

func (s *ExpandSuite) TestTwoBlanksYieldProduct() {
	got := s.collect(rack(&s.Suite, "A??"))

	s.Require().Len(got, len(s.alphabet)*len(s.alphabet))
	seen := make(map[[2]model.Letter]bool)
	for _, c := range got {
		s.Equal(model.Letter('A'), c.Letters[0])
		seen[[2]model.Letter{c.Letters[1], c.Letters[2]}] = true
	}
	s.Len(seen, 16)

	// First blank is the outer loop
	s.Equal(model.Rack{'A', 'E', 'E'}, got[0].Letters)
	s.Equal(model.Rack{'A', 'E', 'A'}, got[1].Letters)
	s.Equal(model.Rack{'A', 'A', 'E'}, got[4].Letters)
}

func (s *ExpandSuite) TestTooManyBlanksYieldsNothing() {
	s.Empty(s.collect(rack(&s.Suite, "???")))
}

func (s *ExpandSuite) TestStopsEarly() {
	n := 0
	for range Expand(s.alphabet, rack(&s.Suite, "??")) {
		n++
		if n == 3 {
			break
		}
	}
	s.Equal(3, n)
}

type TiersSuite struct {
	suite.Suite
	table *scoring.Table
}

func TestTiersSuite(t *testing.T) {
	suite.Run(t, new(TiersSuite))
}

func (s *TiersSuite) SetupTest() {
	s.table = newTable(&s.Suite,
		model.LetterValue{Letter: 'A', Points: 1},
		model.LetterValue{Letter: 'B', Points: 3},
		model.LetterValue{Letter: 'E', Points: 1},
		model.LetterValue{Letter: 'Z', Points: 10},
	)
}

func (s *TiersSuite) TestSizesDecreaseByOne() {
	r := rack(&s.Suite, "ZABE?")
	var sizes []int
	for k, racks := range Tiers(s.table, r) {
		s.Require().NotEmpty(racks)
		for _, sub := range racks {
			s.Len(sub, len(r)-k)
		}
		sizes = append(sizes, len(racks[0]))
	}
	s.Equal([]int{5, 4, 3, 2}, sizes)
}

func (s *TiersSuite) TestTierZeroIsRack() {
	r := rack(&s.Suite, "ABE")
	for k, racks := range Tiers(s.table, r) {
		s.Equal(0, k)
		s.Equal([]model.Rack{r}, racks)
		break
	}
}

func (s *TiersSuite) TestRemovesCheapestFirst() {
	r := rack(&s.Suite, "ABE")
	var tier1 []model.Rack
	for k, racks := range Tiers(s.table, r) {
		if k == 1 {
			tier1 = racks
		}
	}
	// A and E tie on 1 point and go in rack order, B goes last
	s.Equal([]model.Rack{{'B', 'E'}, {'A', 'B'}, {'A', 'E'}}, tier1)
}

func (s *TiersSuite) TestNoDeduplication() {
	var tier1 []model.Rack
	for k, racks := range Tiers(s.table, rack(&s.Suite, "AAB")) {
		if k == 1 {
			tier1 = racks
		}
	}
	s.Equal([]model.Rack{{'A', 'B'}, {'A', 'B'}, {'A', 'A'}}, tier1)
}

func (s *TiersSuite) TestRestartable() {
	r := rack(&s.Suite, "ZABE")
	count := func() int {
		n := 0
		for _, racks := range Tiers(s.table, r) {
			n += len(racks)
		}
		return n
	}
	// 1 + 4 + 12
	s.Equal(17, count())
	s.Equal(count(), count())
}

func (s *TiersSuite) TestShortRackOnlyTierZero() {
	n := 0
	for range Tiers(s.table, rack(&s.Suite, "A")) {
		n++
	}
	s.Equal(1, n)
}

type FinderSuite struct {
	suite.Suite
	table *scoring.Table
}

func TestFinderSuite(t *testing.T) {
	suite.Run(t, new(FinderSuite))
}

func (s *FinderSuite) SetupTest() {
	s.table = newTable(&s.Suite,
		model.LetterValue{Letter: 'A', Count: 1, Points: 1},
		model.LetterValue{Letter: 'B', Count: 1, Points: 3},
		model.LetterValue{Letter: 'E', Count: 1, Points: 1},
		model.LetterValue{Letter: 'R', Count: 1, Points: 1},
		model.LetterValue{Letter: 'T', Count: 1, Points: 1},
		model.LetterValue{Letter: 'Z', Count: 1, Points: 10},
		model.LetterValue{Letter: model.Blank, Count: 2, Points: 0},
	)
}

func (s *FinderSuite) find(words []string, text string) Result {
	res, err := FindBest(s.table, dictionary.Build(words), rack(&s.Suite, text))
	s.Require().NoError(err)
	return res
}

func (s *FinderSuite) TestTieGoesToFirstEncountered() {
	res := s.find([]string{"BE", "AB", "ABE"}, "ABE")

	s.Require().True(res.Found())
	s.Equal("ABE", res.Word, "full rack wins when spelled")

	res = s.find([]string{"BE", "AB"}, "ABE")
	s.Require().True(res.Found())
	s.Equal("BE", res.Word)
	s.Equal(4, res.Score)
	s.Equal(1, res.Tier)
}

func (s *FinderSuite) TestTieFollowsTierOrderNotDictionaryOrder() {
	res := s.find([]string{"AB", "BE"}, "ABE")
	s.Equal("BE", res.Word)
}

func (s *FinderSuite) TestBlankSubstitutesWithoutInventingTiles() {
	res := s.find([]string{"RAT"}, "?TAR")

	s.Require().True(res.Found())
	s.Equal("RAT", res.Word)
	s.Equal(3, res.Score)
	s.Equal(1, res.Tier)
	s.Equal(model.Rack{'R', 'A', 'T'}, res.Tiles)
	s.Equal([]model.Letter{'R', 'A', 'T'}, res.Letters)
}

func (s *FinderSuite) TestBlankScoresZero() {
	res := s.find([]string{"ZEBRE"}, "ZE?RE")

	s.Require().True(res.Found())
	s.Equal("ZEBRE", res.Word)
	s.Equal(0, res.Tier)
	s.Equal(13, res.Score, "B is played by the blank")
	s.Equal(model.Rack{'Z', 'E', model.Blank, 'R', 'E'}, res.Tiles)
}

func (s *FinderSuite) TestTwoBlanks() {
	res := s.find([]string{"ZEBRE"}, "Z??RE")

	s.Require().True(res.Found())
	s.Equal("ZEBRE", res.Word)
	s.Equal(12, res.Score)
}

func (s *FinderSuite) TestPrefersHigherScoreWithinTier() {
	// Tier 2 of ZBAE meets [B E] before [Z A]
	res := s.find([]string{"BE", "ZA"}, "ZBAE")
	s.Require().True(res.Found())
	s.Equal("ZA", res.Word)
	s.Equal(11, res.Score)
	s.Equal(2, res.Tier)
}

func (s *FinderSuite) TestKeepsHighValueTilesInEarlierTiers() {
	res := s.find([]string{"AB", "ZEB", "BE"}, "ZABE")
	s.Require().True(res.Found())
	s.Equal("ZEB", res.Word)
	s.Equal(14, res.Score)
	s.Equal(1, res.Tier)
}

func (s *FinderSuite) TestStopsAtFirstTierWithMatch() {
	// RAT in tier 1 beats the far more valuable ZA in tier 2
	res := s.find([]string{"ZA", "RAT"}, "RATZ")
	s.Require().True(res.Found())
	s.Equal("RAT", res.Word)
	s.Equal(1, res.Tier)
}

func (s *FinderSuite) TestDiacriticWordsMatchFoldedTiles() {
	res := s.find([]string{"zèbre"}, "ZEBRE")
	s.Require().True(res.Found())
	s.Equal("zèbre", res.Word)
	s.Equal(16, res.Score)
}

func (s *FinderSuite) TestExhausted() {
	res := s.find([]string{"ZZZ"}, "ABE")
	s.False(res.Found())
	s.Equal(Result{}, res)

	res = s.find(nil, "")
	s.False(res.Found())
}

func (s *FinderSuite) TestIdempotent() {
	finder := New(s.table, dictionary.Build([]string{"BE", "AB", "TA", "RAT", "BETA"}))
	r := rack(&s.Suite, "?ABTE")
	snapshot := r.Clone()

	first, err := finder.FindBest(r)
	s.Require().NoError(err)
	second, err := finder.FindBest(r)
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(snapshot, r, "rack is not mutated")
}

func (s *FinderSuite) TestResultIsFormableFromRack() {
	words := []string{"BE", "AB", "ABE", "RAT", "TARE", "BETA", "ZEBRE", "BAR", "ART", "ZA"}
	finder := New(s.table, dictionary.Build(words))
	for _, text := range []string{"ZEBRAT", "??", "A?", "TREZ", "B?TA", "ZZ", "ERE?B", "AAAA"} {
		r := rack(&s.Suite, text)
		res, err := finder.FindBest(r)
		s.Require().NoError(err)
		if !res.Found() {
			continue
		}
		s.True(formable(res.Letters, r), "%s from %s", res.Word, text)
		s.True(formable(res.Tiles, r), "tiles of %s from %s", res.Word, text)
		s.LessOrEqual(len(res.Tiles), len(r))
	}
}

func (s *FinderSuite) TestUnknownLetter() {
	_, err := FindBest(s.table, dictionary.Build([]string{"BE"}), model.Rack{'B', 'E', 'Q'})
	s.ErrorIs(err, model.ErrUnknownLetter)
}

func (s *FinderSuite) TestTooManyBlanks() {
	_, err := FindBest(s.table, dictionary.Build([]string{"BE"}), model.Rack{model.Blank, model.Blank, model.Blank})
	s.ErrorIs(err, model.ErrTooManyBlanks)
}

func (s *FinderSuite) TestRackTooLarge() {
	_, err := FindBest(s.table, dictionary.Build([]string{"BE"}), model.Rack{'A', 'B', 'E', 'R', 'T', 'Z', 'A', 'B'})
	s.ErrorIs(err, model.ErrRackTooLarge)
}

func TestParseRackFoldsAccents(t *testing.T) {
	rack, err := ParseRack("zèbre?")
	require.NoError(t, err)
	assert.Equal(t, model.Rack{'Z', 'E', 'B', 'R', 'E', model.Blank}, rack)

	_, err = ParseRack("ab1")
	assert.ErrorIs(t, err, model.ErrInvalidLetter)
}
