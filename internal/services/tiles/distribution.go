package tiles

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
	"github.com/mcoot/wordtiles/internal/services/scoring"
)

// Distribution is the set of tiles a game is played with, in file order
type Distribution struct {
	rows []model.LetterValue
}

// NewDistribution validates rows and builds a distribution from them
func NewDistribution(rows []model.LetterValue) (*Distribution, error) {
	seen := make(map[model.Letter]bool, len(rows))
	for _, row := range rows {
		if seen[row.Letter] {
			return nil, fmt.Errorf("%w: duplicate letter %s", model.ErrInvalidDistribution, row.Letter)
		}
		if row.Count < 0 || row.Points < 0 {
			return nil, fmt.Errorf("%w: negative value for %s", model.ErrInvalidDistribution, row.Letter)
		}
		seen[row.Letter] = true
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no letters", model.ErrInvalidDistribution)
	}
	return &Distribution{rows: rows}, nil
}

// ParseDistribution reads a CSV distribution with a letter,number,points
// header. The blank tile is written as "blank" or "?".
func ParseDistribution(r io.Reader) (*Distribution, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", model.ErrInvalidDistribution)
		}
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidDistribution, err)
	}
	if !strings.EqualFold(header[0], "letter") {
		return nil, fmt.Errorf("%w: missing letter,number,points header", model.ErrInvalidDistribution)
	}

	var rows []model.LetterValue
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidDistribution, err)
		}
		row, err := parseRow(record)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return NewDistribution(rows)
}

func parseRow(record []string) (model.LetterValue, error) {
	name := strings.TrimSpace(record[0])
	var letter model.Letter
	switch {
	case strings.EqualFold(name, model.BlankName):
		letter = model.Blank
	case utf8.RuneCountInString(name) == 1:
		if err := letter.UnmarshalText([]byte(name)); err != nil {
			return model.LetterValue{}, fmt.Errorf("%w: %v", model.ErrInvalidDistribution, err)
		}
		// Words are matched in folded form, so an accented tile could never be played
		if !letter.IsBlank() && dictionary.Fold(name) != letter.String() {
			return model.LetterValue{}, fmt.Errorf("%w: letter %q is not in folded form", model.ErrInvalidDistribution, name)
		}
	default:
		return model.LetterValue{}, fmt.Errorf("%w: bad letter %q", model.ErrInvalidDistribution, name)
	}

	count, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return model.LetterValue{}, fmt.Errorf("%w: count of %s: %v", model.ErrInvalidDistribution, name, err)
	}
	points, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return model.LetterValue{}, fmt.Errorf("%w: points of %s: %v", model.ErrInvalidDistribution, name, err)
	}
	return model.LetterValue{Letter: letter, Count: count, Points: points}, nil
}

// LoadDistributionFile parses the distribution stored at path
func LoadDistributionFile(path string) (*Distribution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open distribution: %w", err)
	}
	defer f.Close()

	d, err := ParseDistribution(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

// Rows returns a copy of the distribution rows
func (d *Distribution) Rows() []model.LetterValue {
	return append([]model.LetterValue(nil), d.rows...)
}

// Letters returns every tile kind, blank included, in file order
func (d *Distribution) Letters() []model.Letter {
	return lo.Map(d.rows, func(row model.LetterValue, _ int) model.Letter { return row.Letter })
}

// ScoreTable builds the point table for this distribution
func (d *Distribution) ScoreTable() (*scoring.Table, error) {
	return scoring.NewTable(d.rows)
}

// Counts returns how many tiles of each kind a fresh pool holds
func (d *Distribution) Counts() map[model.Letter]int {
	return lo.SliceToMap(d.rows, func(row model.LetterValue) (model.Letter, int) {
		return row.Letter, row.Count
	})
}

// TotalTiles is the size of a fresh pool
func (d *Distribution) TotalTiles() int {
	return lo.SumBy(d.rows, func(row model.LetterValue) int { return row.Count })
}
