package dataprep

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"

	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/data"
)

// Codebook lists, per encoded column, the categories in code order: the code
// of a value is its index in the slice.
type Codebook map[string][]string

// Code returns the code for value in column, or -1 if it is unknown.
func (cb Codebook) Code(column, value string) int {
	return slices.Index(cb[column], value)
}

// LabelEncode maps strings to integer codes in sorted order of the distinct
// values. It returns the codes and the ordered categories.
func LabelEncode(vals []string) ([]float64, []string) {
	seen := make(map[string]struct{}, len(vals))
	var cats []string
	for _, v := range vals {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			cats = append(cats, v)
		}
	}
	sort.Strings(cats)

	index := make(map[string]int, len(cats))
	for i, c := range cats {
		index[c] = i
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(index[v])
	}
	return out, cats
}

// LabelEncodeFloats is LabelEncode for numeric values, ordered numerically.
func LabelEncodeFloats(vals []float64) ([]float64, []string) {
	uniq := slices.Clone(vals)
	slices.Sort(uniq)
	uniq = slices.Compact(uniq)

	out := make([]float64, len(vals))
	for i, v := range vals {
		code, _ := slices.BinarySearch(uniq, v)
		out[i] = float64(code)
	}
	cats := make([]string, len(uniq))
	for i, u := range uniq {
		cats[i] = strconv.FormatFloat(u, 'g', -1, 64)
	}
	return out, cats
}

// CategoricalColumns returns the names of the categorical columns, in order.
func CategoricalColumns(ds *data.Dataset) []string {
	var names []string
	for _, name := range ds.Names() {
		c, _ := ds.Column(name)
		if c.Kind == data.Categorical {
			names = append(names, name)
		}
	}
	return names
}

// CatCodes returns a copy of ds where every named column is replaced by the
// integer codes of its categories. Other columns are untouched.
func CatCodes(ds *data.Dataset, columns ...string) (*data.Dataset, error) {
	out, _, err := CatCodesWithCodebook(ds, columns...)
	return out, err
}

// CatCodesWithCodebook is CatCodes that also returns the categories behind
// each code. A NaN or blank label in a listed column is a missing value, not a
// category, and fails with data.ErrMissingValue.
func CatCodesWithCodebook(ds *data.Dataset, columns ...string) (*data.Dataset, Codebook, error) {
	out := ds.Clone()
	book := make(Codebook, len(columns))
	for _, name := range columns {
		c, err := out.Column(name)
		if err != nil {
			return nil, nil, fmt.Errorf("encode: %w", err)
		}
		if i := firstMissing(c); i >= 0 {
			return nil, nil, fmt.Errorf("encode: %q row %d: %w", name, i, data.ErrMissingValue)
		}

		var (
			codes []float64
			cats  []string
		)
		if c.Kind == data.Numeric {
			codes, cats = LabelEncodeFloats(c.Floats)
		} else {
			codes, cats = LabelEncode(c.Strings)
		}
		if err := out.Replace(data.NumericColumn(name, codes...)); err != nil {
			return nil, nil, fmt.Errorf("encode: %w", err)
		}
		book[name] = cats
	}
	return out, book, nil
}

// firstMissing returns the row of the first NaN or blank cell in c, or -1.
func firstMissing(c *data.Column) int {
	if c.Kind == data.Numeric {
		return slices.IndexFunc(c.Floats, math.IsNaN)
	}
	return slices.Index(c.Strings, "")
}
