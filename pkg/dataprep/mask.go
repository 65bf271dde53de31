package dataprep

import (
	"math"
	"math/rand"
	"sort"
)

// Cell addresses one value of a rows x columns matrix.
type Cell struct {
	Row, Col int
}

// Mask is a set of cells chosen to be hidden from the imputer.
//
// Rows are drawn with replacement, so a column receiving n draws has at most
// n distinct masked cells. Sampled counts draws; Cells holds the distinct
// cells ordered by column, then row.
type Mask struct {
	Rows, Cols int
	Sampled    int
	Cells      []Cell
	set        map[Cell]struct{}
}

// SampleCount is the number of draws per column for a fraction of rows,
// rounded half to even.
func SampleCount(fraction float64, rows int) int {
	return int(math.RoundToEven(fraction * float64(rows)))
}

// NewMask draws SampleCount(fraction, rows) row positions with replacement for
// each column in order. The same rng state always yields the same mask.
func NewMask(rows, cols int, fraction float64, rng *rand.Rand) (*Mask, error) {
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return nil, ErrInvalidFraction
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	n := SampleCount(fraction, rows)
	m := &Mask{Rows: rows, Cols: cols, set: make(map[Cell]struct{})}
	for j := 0; j < cols; j++ {
		for _i := 0; _i < n; _i++ {
			c := Cell{Row: rng.Intn(rows), Col: j}
			m.Sampled++
			if _, dup := m.set[c]; dup {
				continue
			}
			m.set[c] = struct{}{}
			m.Cells = append(m.Cells, c)
		}
	}
	sort.Slice(m.Cells, func(a, b int) bool {
		if m.Cells[a].Col != m.Cells[b].Col {
			return m.Cells[a].Col < m.Cells[b].Col
		}
		return m.Cells[a].Row < m.Cells[b].Row
	})
	return m, nil
}

// Len returns the number of distinct masked cells.
func (m *Mask) Len() int { return len(m.Cells) }

// Has reports whether cell (row, col) is masked.
func (m *Mask) Has(row, col int) bool {
	_, ok := m.set[Cell{Row: row, Col: col}]
	return ok
}

// RowsAffected counts rows with at least one masked cell.
func (m *Mask) RowsAffected() int {
	rows := make(map[int]struct{})
	for _, c := range m.Cells {
		rows[c.Row] = struct{}{}
	}
	return len(rows)
}

// ColumnCount counts distinct masked cells in column col.
func (m *Mask) ColumnCount(col int) int {
	n := 0
	for _, c := range m.Cells {
		if c.Col == col {
			n++
		}
	}
	return n
}

// Apply sets every masked cell of X to NaN in place.
func (m *Mask) Apply(X [][]float64) {
	for _, c := range m.Cells {
		X[c.Row][c.Col] = math.NaN()
	}
}

// Values reads the masked cells of X in Cells order.
func (m *Mask) Values(X [][]float64) []float64 {
	out := make([]float64, len(m.Cells))
	for i, c := range m.Cells {
		out[i] = X[c.Row][c.Col]
	}
	return out
}

// InjectMissing masks X in place and returns the mask.
func InjectMissing(X [][]float64, fraction float64, rng *rand.Rand) (*Mask, error) {
	rows, cols := len(X), 0
	if rows > 0 {
		cols = len(X[0])
	}
	m, err := NewMask(rows, cols, fraction, rng)
	if err != nil {
		return nil, err
	}
	m.Apply(X)
	return m, nil
}
