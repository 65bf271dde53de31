// Package viz draws evaluation results.
package viz

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/evaluate"
	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/model"
)

// ErrNoCells indicates a report without masked cells to draw.
var ErrNoCells = errors.New("viz: report has no masked cells")

// ImputedScatter builds a plot of original against imputed value for every
// masked cell, with the y = x line a perfect imputer would follow.
func ImputedScatter(r *evaluate.Report) (*plot.Plot, error) {
	if len(r.Cells) == 0 {
		return nil, ErrNoCells
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("KNN imputation: %.1f%% perfect", model.Percent(r.Perfect, r.MissingCells))
	p.X.Label.Text = "Original (encoded)"
	p.Y.Label.Text = "Imputed"

	var exact, off plotter.XYs
	lo, hi := r.Cells[0].Original, r.Cells[0].Original
	for _, c := range r.Cells {
		pt := plotter.XY{X: c.Original, Y: c.Imputed}
		if c.Perfect {
			exact = append(exact, pt)
		} else {
			off = append(off, pt)
		}
		lo = min(lo, c.Original, c.Imputed)
		hi = max(hi, c.Original, c.Imputed)
	}

	diag, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return nil, err
	}
	diag.LineStyle.Color = color.Gray{Y: 160}
	diag.LineStyle.Width = vg.Points(1)
	p.Add(diag)

	if err := addScatter(p, exact, color.RGBA{G: 160, A: 255}, "perfect"); err != nil {
		return nil, err
	}
	if err := addScatter(p, off, color.RGBA{R: 220, B: 40, A: 255}, "imperfect"); err != nil {
		return nil, err
	}
	return p, nil
}

func addScatter(p *plot.Plot, pts plotter.XYs, c color.Color, label string) error {
	if len(pts) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = c
	p.Add(s)
	p.Legend.Add(label, s)
	return nil
}

// ColumnRMSE builds a bar chart of RMSE per feature column.
func ColumnRMSE(r *evaluate.Report) (*plot.Plot, error) {
	if len(r.Cells) == 0 {
		return nil, ErrNoCells
	}
	vals := make(plotter.Values, len(r.Columns))
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		vals[i] = c.RMSE
		names[i] = c.Name
	}

	p := plot.New()
	p.Title.Text = "RMSE per column"
	p.Y.Label.Text = "RMSE"
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// Save writes p to filename; the extension picks the format (.png, .svg,
// .pdf).
func Save(p *plot.Plot, filename string) error {
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
