package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/model"
)

func TestErrors(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}
	yPred := []float64{1, 4, 3, 2}

	assert.InDelta(t, 2.0, model.MSE(yTrue, yPred), 1e-12)
	assert.InDelta(t, math.Sqrt(2), model.RMSE(yTrue, yPred), 1e-12)
	assert.InDelta(t, 1.0, model.MAE(yTrue, yPred), 1e-12)

	assert.Zero(t, model.MSE(nil, nil))
	assert.Zero(t, model.RMSE(nil, nil))
	assert.Zero(t, model.MAE(nil, nil))
}

func TestWithinTolerance(t *testing.T) {
	cases := []struct {
		a, b, eps float64
		want      bool
	}{
		{1, 1, 0, true},
		{1, 1.004, 0.005, true},
		{1, 1.006, 0.005, false},
		{2, 1.996, 0.005, true},
		{0, math.Copysign(0, -1), 0, true},
		{1, math.NaN(), 0.005, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, model.WithinTolerance(tc.a, tc.b, tc.eps), "a=%v b=%v eps=%v", tc.a, tc.b, tc.eps)
	}
}

func TestCountWithinAndPercent(t *testing.T) {
	assert.Equal(t, 2, model.CountWithin([]float64{1, 2, 3}, []float64{1, 2.5, 3.001}, 0.005))
	assert.Equal(t, 25.0, model.Percent(1, 4))
	assert.Equal(t, 0.0, model.Percent(3, 0))
}
