package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/model"
)

var (
	// ErrNotFitted indicates Transform or InverseTransform before Fit.
	ErrNotFitted = errors.New("stats: scaler is not fitted")
	// ErrShape indicates an empty, ragged or mismatched matrix.
	ErrShape = errors.New("stats: matrix shape mismatch")
)

var _ model.Inverter = (*MinMaxScaler)(nil)

// MinMaxScaler maps each column linearly onto [0, 1] using the column min and
// max seen by Fit.
//
// A constant column (Min == Max) transforms to 0 and inverse-transforms to
// Min. NaN cells pass through both directions untouched.
type MinMaxScaler struct {
	Min []float64
	Max []float64
	fit bool
}

// NewMinMaxScaler returns an unfitted scaler.
func NewMinMaxScaler() *MinMaxScaler { return &MinMaxScaler{} }

// Fit learns per-column min and max, ignoring NaN cells.
func (s *MinMaxScaler) Fit(X [][]float64) error {
	cols, err := width(X)
	if err != nil {
		return err
	}
	s.Min = make([]float64, cols)
	s.Max = make([]float64, cols)
	col := make([]float64, 0, len(X))
	for j := 0; j < cols; j++ {
		col = col[:0]
		for _, row := range X {
			if !math.IsNaN(row[j]) {
				col = append(col, row[j])
			}
		}
		if len(col) == 0 {
			s.Min[j], s.Max[j] = math.NaN(), math.NaN()
			continue
		}
		s.Min[j], s.Max[j] = floats.Min(col), floats.Max(col)
	}
	s.fit = true
	return nil
}

// Transform scales X into [0, 1] (values outside the fitted range land
// outside it).
func (s *MinMaxScaler) Transform(X [][]float64) ([][]float64, error) {
	return s.apply(X, func(v float64, j int) float64 {
		span := s.Max[j] - s.Min[j]
		if span == 0 {
			return 0
		}
		return (v - s.Min[j]) / span
	})
}

// FitTransform fits on X and scales it.
func (s *MinMaxScaler) FitTransform(X [][]float64) ([][]float64, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform maps scaled values back to the fitted ranges.
func (s *MinMaxScaler) InverseTransform(X [][]float64) ([][]float64, error) {
	return s.apply(X, func(v float64, j int) float64 {
		return s.Min[j] + v*(s.Max[j]-s.Min[j])
	})
}

func (s *MinMaxScaler) apply(X [][]float64, f func(v float64, j int) float64) ([][]float64, error) {
	if !s.fit {
		return nil, ErrNotFitted
	}
	cols, err := width(X)
	if err != nil {
		return nil, err
	}
	if cols != len(s.Min) {
		return nil, ErrShape
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		out[i] = make([]float64, cols)
		for j, v := range row {
			if math.IsNaN(v) {
				out[i][j] = v
				continue
			}
			out[i][j] = f(v, j)
		}
	}
	return out, nil
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
