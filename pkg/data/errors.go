package data

import "errors"

var (
	// ErrNoColumns indicates a dataset was built without any column.
	ErrNoColumns = errors.New("data: dataset must have at least one column")
	// ErrEmptyDataset indicates a dataset with no rows where rows are required.
	ErrEmptyDataset = errors.New("data: dataset has no rows")
	// ErrEmptyName indicates a column without a name.
	ErrEmptyName = errors.New("data: column name must not be empty")
	// ErrDuplicateColumn indicates two columns share a name.
	ErrDuplicateColumn = errors.New("data: duplicate column name")
	// ErrRaggedColumns indicates columns or records of differing lengths.
	ErrRaggedColumns = errors.New("data: all columns must have the same length")
	// ErrUnknownColumn indicates a column name that is not in the dataset.
	ErrUnknownColumn = errors.New("data: unknown column")
	// ErrNotNumeric indicates a categorical column where numbers are required.
	ErrNotNumeric = errors.New("data: column is not numeric")
	// ErrMissingValue indicates a NaN in the source data.
	ErrMissingValue = errors.New("data: column contains missing values")
	// ErrUnsupportedFormat indicates a file extension the loaders cannot read.
	ErrUnsupportedFormat = errors.New("data: unsupported file format")
)
