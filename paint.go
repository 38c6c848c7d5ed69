package tanktemp

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// paintRow is one CSV record of Table 7.1-6: a paint color and its solar
// absorptance under each paint condition.
type paintRow struct {
	Color   string  `csv:"color"`
	New     float64 `csv:"new"`
	Average float64 `csv:"average"`
	Aged    float64 `csv:"aged"`
}

// PaintTable maps paint color and condition to solar absorptance
// (Table 7.1-6: paint solar absorptance).
type PaintTable struct {
	alpha map[PaintColor]map[PaintCondition]float64
}

// LoadPaintTable reads a paint absorptance table from CSV, one row per color
// with a column per paint condition.
func LoadPaintTable(r io.Reader) (*PaintTable, error) {
	var rows []*paintRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse paint table: %w", err)
	}

	alpha := make(map[PaintColor]map[PaintCondition]float64, len(rows))
	for _, row := range rows {
		color, err := ParsePaintColor(row.Color)
		if err != nil {
			return nil, fmt.Errorf("parse paint table: %w", err)
		}
		alpha[color] = map[PaintCondition]float64{
			ConditionNew:     row.New,
			ConditionAverage: row.Average,
			ConditionAged:    row.Aged,
		}
	}

	return &PaintTable{alpha: alpha}, nil
}

// Absorptance returns the solar absorptance for the given color and condition.
func (t *PaintTable) Absorptance(c PaintColor, pc PaintCondition) (float64, error) {
	conditions, ok := t.alpha[c]
	if !ok {
		return 0, fmt.Errorf("%w: no absorptance data for color %q", ErrInvalidInput, c)
	}
	a, ok := conditions[pc]
	if !ok {
		return 0, fmt.Errorf("%w: no absorptance data for condition %q", ErrInvalidInput, pc)
	}
	return a, nil
}

func loadEmbeddedPaintTable() (*PaintTable, error) {
	f, err := dataFS.Open("data/paint_absorptance.csv")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPaintTable(f)
}
