package evaluate

import (
	"fmt"
	"io"

	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/dataprep"
	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/model"
)

// Report summarises one evaluation. Counts of missing cells are distinct
// cells; SampledCells also counts repeated draws.
type Report struct {
	Target       string   `json:"target"`
	FeatureNames []string `json:"features"`
	Fraction     float64  `json:"fraction"`
	Neighbors    int      `json:"neighbors"`
	Epsilon      float64  `json:"epsilon"`
	Seed         *int64   `json:"seed,omitempty"`

	Rows               int     `json:"rows"`
	TotalCells         int     `json:"total_cells"`
	SampledCells       int     `json:"sampled_cells"`
	MissingCells       int     `json:"missing_cells"`
	MissingPct         float64 `json:"missing_pct"`
	RowsWithMissing    int     `json:"rows_with_missing"`
	RowsWithMissingPct float64 `json:"rows_with_missing_pct"`

	Perfect   int `json:"perfect"`
	Imperfect int `json:"imperfect"`
	// RMSE is 0 and RMSEDefined false when nothing was masked.
	RMSE        float64 `json:"rmse"`
	RMSEDefined bool    `json:"rmse_defined"`

	AllMissingColumns []string      `json:"all_missing_columns,omitempty"`
	Columns           []ColumnScore `json:"columns"`
	Cells             []CellResult  `json:"cells"`
}

// ColumnScore is the per-feature breakdown.
type ColumnScore struct {
	Name    string  `json:"name"`
	Missing int     `json:"missing"`
	Perfect int     `json:"perfect"`
	RMSE    float64 `json:"rmse"`
}

// CellResult is one masked cell, in encoded units.
type CellResult struct {
	Row      int     `json:"row"`
	Column   string  `json:"column"`
	Original float64 `json:"original"`
	Imputed  float64 `json:"imputed"`
	Error    float64 `json:"error"`
	Perfect  bool    `json:"perfect"`
}

// score compares imputed with original at the masked cells only.
func score(original, imputed [][]float64, mask *dataprep.Mask, features []string, eps float64) *Report {
	rows := len(original)
	r := &Report{
		FeatureNames:    features,
		Rows:            rows,
		TotalCells:      rows * len(features),
		SampledCells:    mask.Sampled,
		MissingCells:    mask.Len(),
		RowsWithMissing: mask.RowsAffected(),
	}
	r.MissingPct = model.Percent(r.MissingCells, r.TotalCells)
	r.RowsWithMissingPct = model.Percent(r.RowsWithMissing, rows)

	truth := mask.Values(original)
	guess := mask.Values(imputed)
	r.Perfect = model.CountWithin(truth, guess, eps)
	r.Imperfect = r.MissingCells - r.Perfect
	r.RMSE = model.RMSE(truth, guess)
	r.RMSEDefined = r.MissingCells > 0

	r.Cells = make([]CellResult, len(mask.Cells))
	byCol := make([][2][]float64, len(features))
	for i, c := range mask.Cells {
		r.Cells[i] = CellResult{
			Row:      c.Row,
			Column:   features[c.Col],
			Original: truth[i],
			Imputed:  guess[i],
			Error:    guess[i] - truth[i],
			Perfect:  model.WithinTolerance(truth[i], guess[i], eps),
		}
		byCol[c.Col][0] = append(byCol[c.Col][0], truth[i])
		byCol[c.Col][1] = append(byCol[c.Col][1], guess[i])
	}

	r.Columns = make([]ColumnScore, len(features))
	for j, name := range features {
		t, g := byCol[j][0], byCol[j][1]
		r.Columns[j] = ColumnScore{
			Name:    name,
			Missing: len(t),
			Perfect: model.CountWithin(t, g, eps),
			RMSE:    model.RMSE(t, g),
		}
	}
	return r
}

// Print writes the human-readable summary.
func (r *Report) Print(w io.Writer) error {
	rmse := "n/a"
	if r.RMSEDefined {
		rmse = fmt.Sprintf("%.4f", r.RMSE)
	}
	if _, err := fmt.Fprintf(w,
		"Target column:           %s\n"+
			"Neighbours (k):          %d\n"+
			"Total feature cells:     %d\n"+
			"Missing cells:           %d (%.2f%%), %d draws\n"+
			"Rows with missing cells: %d of %d (%.2f%%)\n"+
			"Perfect imputations:     %d\n"+
			"Imperfect imputations:   %d\n"+
			"RMSE:                    %s\n",
		r.Target, r.Neighbors, r.TotalCells,
		r.MissingCells, r.MissingPct, r.SampledCells,
		r.RowsWithMissing, r.Rows, r.RowsWithMissingPct,
		r.Perfect, r.Imperfect, rmse,
	); err != nil {
		return err
	}
	if len(r.AllMissingColumns) > 0 {
		if _, err := fmt.Fprintf(w, "Fully masked columns:    %v\n", r.AllMissingColumns); err != nil {
			return err
		}
	}
	for _, c := range r.Columns {
		if _, err := fmt.Fprintf(w, "  %-22s missing=%-4d perfect=%-4d rmse=%.4f\n",
			c.Name, c.Missing, c.Perfect, c.RMSE); err != nil {
			return err
		}
	}
	return nil
}
