package dataprep

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFraction indicates a missing fraction outside [0, 1].
	ErrInvalidFraction = errors.New("dataprep: fraction must be within [0, 1]")
	// ErrNilRand indicates sampling without a random source.
	ErrNilRand = errors.New("dataprep: random source is nil")
	// ErrBadNeighbors indicates a neighbour count below one.
	ErrBadNeighbors = errors.New("dataprep: neighbour count must be at least 1")
	// ErrNotFitted indicates Transform before Fit.
	ErrNotFitted = errors.New("dataprep: imputer is not fitted")
	// ErrShape indicates an empty, ragged or mismatched matrix.
	ErrShape = errors.New("dataprep: matrix shape mismatch")
	// ErrAllMissing indicates a column without a single observed value.
	ErrAllMissing = errors.New("dataprep: column has no observed values")
)

// AllMissingError reports the column that could not be imputed.
type AllMissingError struct {
	Column int
}

func (e *AllMissingError) Error() string {
	return fmt.Sprintf("dataprep: column %d has no observed values", e.Column)
}

// Is lets errors.Is match ErrAllMissing.
func (e *AllMissingError) Is(target error) bool { return target == ErrAllMissing }
