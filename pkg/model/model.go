package model

// Transformer is a preprocessing step fitted on one matrix and applied to
// matrices of the same width.
type Transformer interface {
	Fit(X [][]float64) error
	Transform(X [][]float64) ([][]float64, error)
	FitTransform(X [][]float64) ([][]float64, error)
}

// Inverter is a Transformer that can map transformed values back.
type Inverter interface {
	Transformer
	InverseTransform(X [][]float64) ([][]float64, error)
}
