package model

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MSE is the mean squared error. It is 0 for empty input.
func MSE(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	d := make([]float64, len(yTrue))
	floats.SubTo(d, yPred, yTrue)
	return floats.Dot(d, d) / float64(len(yTrue))
}

// MAE is the mean absolute error. It is 0 for empty input.
func MAE(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	return floats.Distance(yTrue, yPred, 1) / float64(len(yTrue))
}

// RMSE is the root mean squared error. It is 0 for empty input.
func RMSE(yTrue, yPred []float64) float64 { return math.Sqrt(MSE(yTrue, yPred)) }

// WithinTolerance reports whether |a-b| <= eps.
func WithinTolerance(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

// CountWithin counts positions where prediction and truth agree within eps.
func CountWithin(yTrue, yPred []float64, eps float64) int {
	c := 0
	for i := range yTrue {
		if WithinTolerance(yTrue[i], yPred[i], eps) {
			c++
		}
	}
	return c
}

// Percent returns part/whole*100, or 0 when whole is 0.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
