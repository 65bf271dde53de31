package dataprep

import (
	"math"
	"runtime"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/model"
)

var _ model.Transformer = (*KNNImputer)(nil)

// KNNImputer fills NaN cells with the mean of that column over the k nearest
// rows that observe it.
//
// Distance between two rows is the NaN-aware Euclidean distance: squared
// differences are summed over coordinates present in both rows and scaled up
// by features/present. Rows sharing no observed coordinate are never
// neighbours. Equal distances keep the lower row index first.
//
// A cell without any donor takes the mean of the column's observed values. A
// column with no observed value at all takes the fallback value given with
// WithFallback, or makes Transform fail with *AllMissingError.
type KNNImputer struct {
	K        int
	Weighted bool

	fallback   []float64
	donors     [][]float64
	means      []float64
	allMissing []int
	fit        bool
}

// KNNOption configures a KNNImputer.
type KNNOption func(*KNNImputer)

// WithDistanceWeighting averages donors by inverse distance instead of uniformly.
func WithDistanceWeighting() KNNOption { return func(m *KNNImputer) { m.Weighted = true } }

// WithFallback sets per-column values used for columns with no observed value.
func WithFallback(values []float64) KNNOption {
	return func(m *KNNImputer) { m.fallback = append([]float64(nil), values...) }
}

// NewKNNImputer creates an imputer using k neighbours.
func NewKNNImputer(k int, opts ...KNNOption) *KNNImputer {
	m := &KNNImputer{K: k}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Fit stores X as the donor pool and learns the observed column means.
func (m *KNNImputer) Fit(X [][]float64) error {
	if m.K < 1 {
		return ErrBadNeighbors
	}
	cols, err := width(X)
	if err != nil {
		return err
	}

	m.donors = cloneMatrix(X)
	m.means = make([]float64, cols)
	for j := 0; j < cols; j++ {
		var observed []float64
		for _, row := range X {
			if !math.IsNaN(row[j]) {
				observed = append(observed, row[j])
			}
		}
		if len(observed) == 0 {
			m.means[j] = math.NaN()
			continue
		}
		m.means[j] = stat.Mean(observed, nil)
	}
	m.fit = true
	return nil
}

// Transform returns a copy of X with every NaN cell imputed. Distances are
// always taken on the rows as given, so imputed values never feed back, and
// rows are split across GOMAXPROCS goroutines.
func (m *KNNImputer) Transform(X [][]float64) ([][]float64, error) {
	if !m.fit {
		return nil, ErrNotFitted
	}
	cols, err := width(X)
	if err != nil {
		return nil, err
	}
	if cols != len(m.means) {
		return nil, ErrShape
	}

	m.allMissing = nil
	for j := 0; j < cols; j++ {
		if !math.IsNaN(m.means[j]) || !columnHasNaN(X, j) {
			continue
		}
		if j >= len(m.fallback) {
			return nil, &AllMissingError{Column: j}
		}
		m.allMissing = append(m.allMissing, j)
	}

	out := cloneMatrix(X)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (len(X) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, len(X))
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				m.imputeRow(X[i], out[i])
			}
		}(start, end)
	}
	wg.Wait()
	return out, nil
}

// imputeRow writes the imputed values of row's NaN cells into dst.
func (m *KNNImputer) imputeRow(row, dst []float64) {
	if !rowHasNaN(row) {
		return
	}
	nbrs := m.rank(row)
	for j, v := range row {
		if math.IsNaN(v) {
			dst[j] = m.impute(nbrs, j)
		}
	}
}

// FitTransform fits on X and imputes it.
func (m *KNNImputer) FitTransform(X [][]float64) ([][]float64, error) {
	if err := m.Fit(X); err != nil {
		return nil, err
	}
	return m.Transform(X)
}

// AllMissingColumns lists the columns the last Transform filled from the
// fallback values.
func (m *KNNImputer) AllMissingColumns() []int { return m.allMissing }

type neighbor struct {
	d   float64
	row int
}

// rank orders every donor sharing at least one observed coordinate with xi by
// distance, then row index.
func (m *KNNImputer) rank(xi []float64) []neighbor {
	nbrs := make([]neighbor, 0, len(m.donors))
	for j, xj := range m.donors {
		if d, ok := nanEuclidean(xi, xj); ok {
			nbrs = append(nbrs, neighbor{d: d, row: j})
		}
	}
	sort.SliceStable(nbrs, func(a, b int) bool { return nbrs[a].d < nbrs[b].d })
	return nbrs
}

func (m *KNNImputer) impute(nbrs []neighbor, col int) float64 {
	if math.IsNaN(m.means[col]) {
		return m.fallback[col]
	}

	picked := make([]neighbor, 0, m.K)
	for _, n := range nbrs {
		if math.IsNaN(m.donors[n.row][col]) {
			continue
		}
		picked = append(picked, n)
		if len(picked) == m.K {
			break
		}
	}
	if len(picked) == 0 {
		return m.means[col]
	}

	vals := make([]float64, len(picked))
	for i, n := range picked {
		vals[i] = m.donors[n.row][col]
	}
	if !m.Weighted {
		return stat.Mean(vals, nil)
	}
	return stat.Mean(vals, inverseDistance(picked))
}

// inverseDistance weights donors by 1/d. When some donors sit at distance
// zero, only they count.
func inverseDistance(nbrs []neighbor) []float64 {
	w := make([]float64, len(nbrs))
	exact := false
	for i, n := range nbrs {
		if n.d == 0 {
			w[i] = 1
			exact = true
		}
	}
	if exact {
		return w
	}
	for i, n := range nbrs {
		w[i] = 1 / n.d
	}
	return w
}

// nanEuclidean is the Euclidean distance over coordinates observed in both
// rows, scaled by the share of present coordinates. ok is false when no
// coordinate is shared.
func nanEuclidean(a, b []float64) (d float64, ok bool) {
	sum, present := 0.0, 0
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		diff := a[i] - b[i]
		sum += diff * diff
		present++
	}
	if present == 0 {
		return 0, false
	}
	return math.Sqrt(float64(len(a)) / float64(present) * sum), true
}

func width(X [][]float64) (int, error) {
	if len(X) == 0 || len(X[0]) == 0 {
		return 0, ErrShape
	}
	cols := len(X[0])
	for _, row := range X {
		if len(row) != cols {
			return 0, ErrShape
		}
	}
	return cols, nil
}

func rowHasNaN(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

func columnHasNaN(X [][]float64, col int) bool {
	for _, row := range X {
		if math.IsNaN(row[col]) {
			return true
		}
	}
	return false
}

func cloneMatrix(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
