package data_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/data"
)

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		cols []data.Column
		err  error
	}{
		{"NoColumns", nil, data.ErrNoColumns},
		{"EmptyName", []data.Column{data.NumericColumn("", 1)}, data.ErrEmptyName},
		{"Duplicate", []data.Column{data.NumericColumn("a", 1), data.NumericColumn("a", 2)}, data.ErrDuplicateColumn},
		{"Ragged", []data.Column{data.NumericColumn("a", 1, 2), data.CategoricalColumn("b", "x")}, data.ErrRaggedColumns},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := data.New(tc.cols...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	vals := []float64{1, 2, 3}
	ds, err := data.New(data.NumericColumn("a", vals...))
	require.NoError(t, err)

	vals[0] = 99
	c, err := ds.Column("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Floats[0])
}

func TestFromRecords_InfersKinds(t *testing.T) {
	ds, err := data.FromRecords(
		[]string{"size", "color"},
		[][]string{{"1.5", "red"}, {"2", "blue"}, {"-3e1", "red"}},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Nrow())
	assert.Equal(t, []string{"size", "color"}, ds.Names())

	size, err := ds.Column("size")
	require.NoError(t, err)
	assert.Equal(t, data.Numeric, size.Kind)
	assert.Equal(t, []float64{1.5, 2, -30}, size.Floats)

	color, err := ds.Column("color")
	require.NoError(t, err)
	assert.Equal(t, data.Categorical, color.Kind)

	_, err = data.FromRecords([]string{"a", "b"}, [][]string{{"1"}})
	assert.ErrorIs(t, err, data.ErrRaggedColumns)
}

func TestRowAndWithout(t *testing.T) {
	ds, err := data.New(
		data.NumericColumn("a", 1, 2),
		data.CategoricalColumn("b", "x", "y"),
		data.NumericColumn("c", 3, 4),
	)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"a": 2.0, "b": "y", "c": 4.0}, ds.Row(1))
	assert.Equal(t, []string{"a", "c"}, ds.Without("b"))
	assert.True(t, ds.Has("c"))
	assert.False(t, ds.Has("d"))
}

func TestCloneAndReplace(t *testing.T) {
	ds, err := data.New(data.CategoricalColumn("b", "x", "y"), data.NumericColumn("a", 1, 2))
	require.NoError(t, err)

	cp := ds.Clone()
	require.NoError(t, cp.Replace(data.NumericColumn("b", 0, 1)))
	assert.Equal(t, []string{"b", "a"}, cp.Names())

	orig, _ := ds.Column("b")
	assert.Equal(t, data.Categorical, orig.Kind, "replace must not touch the source dataset")

	assert.ErrorIs(t, cp.Replace(data.NumericColumn("zz", 0, 1)), data.ErrUnknownColumn)
	assert.ErrorIs(t, cp.Replace(data.NumericColumn("a", 0)), data.ErrRaggedColumns)
}

func TestMatrix(t *testing.T) {
	ds, err := data.New(
		data.NumericColumn("a", 1, 2),
		data.CategoricalColumn("b", "x", "y"),
		data.NumericColumn("c", 3, math.NaN()),
	)
	require.NoError(t, err)

	X, err := ds.Matrix("a")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}, {2}}, X)

	_, err = ds.Matrix("b")
	assert.ErrorIs(t, err, data.ErrNotNumeric)
	_, err = ds.Matrix("c")
	assert.ErrorIs(t, err, data.ErrMissingValue)
	_, err = ds.Matrix("nope")
	assert.ErrorIs(t, err, data.ErrUnknownColumn)
}

func TestDense(t *testing.T) {
	ds, err := data.New(data.NumericColumn("a", 1, 2), data.NumericColumn("b", 3, 4))
	require.NoError(t, err)

	m, err := ds.Dense("b", "a")
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 3.0, m.At(0, 0))
	assert.Equal(t, 2.0, m.At(1, 1))

	_, err = ds.Dense()
	assert.ErrorIs(t, err, data.ErrEmptyDataset)
}
