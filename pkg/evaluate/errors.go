package evaluate

import (
	"errors"

	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/dataprep"
)

var (
	// ErrInvalidFraction indicates a missing fraction outside [0, 1].
	ErrInvalidFraction = dataprep.ErrInvalidFraction
	// ErrAllMissing indicates a feature column left without any observed value.
	ErrAllMissing = dataprep.ErrAllMissing
	// ErrTooFewRows indicates fewer rows than neighbours.
	ErrTooFewRows = errors.New("evaluate: dataset has fewer rows than neighbours")
	// ErrNoFeatures indicates a dataset with no column besides the target.
	ErrNoFeatures = errors.New("evaluate: dataset has no feature columns")
	// ErrInvalidNeighbors indicates a neighbour count below one.
	ErrInvalidNeighbors = errors.New("evaluate: neighbours must be at least 1")
	// ErrInvalidEpsilon indicates a negative or NaN tolerance.
	ErrInvalidEpsilon = errors.New("evaluate: epsilon must be a non-negative number")
)
