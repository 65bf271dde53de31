package dataprep_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmauss/KNN-Imputation-Evaluation/internal/testutil"
	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/data"
	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/dataprep"
)

func TestLabelEncode_SortedOrder(t *testing.T) {
	codes, cats := dataprep.LabelEncode([]string{"b", "a", "c", "a"})
	assert.Equal(t, []float64{1, 0, 2, 0}, codes)
	assert.Equal(t, []string{"a", "b", "c"}, cats)
}

func TestLabelEncodeFloats_NumericOrder(t *testing.T) {
	codes, cats := dataprep.LabelEncodeFloats([]float64{10, 1, 10, 2})
	assert.Equal(t, []float64{2, 0, 2, 1}, codes)
	assert.Equal(t, []string{"1", "2", "10"}, cats)
}

func TestCatCodes(t *testing.T) {
	ds := testutil.Iris()

	enc, book, err := dataprep.CatCodesWithCodebook(ds, "habitat")
	require.NoError(t, err)

	habitat, err := enc.Column("habitat")
	require.NoError(t, err)
	assert.Equal(t, data.Numeric, habitat.Kind)
	assert.Equal(t, []float64{2, 2, 1, 1, 0, 0, 2, 1, 0, 2}, habitat.Floats)
	assert.Equal(t, []string{"forest", "meadow", "shore"}, book["habitat"])
	assert.Equal(t, 1, book.Code("habitat", "meadow"))
	assert.Equal(t, -1, book.Code("habitat", "desert"))

	// Unlisted columns and the source dataset stay as they were.
	species, err := enc.Column("species")
	require.NoError(t, err)
	assert.Equal(t, data.Categorical, species.Kind)
	src, err := ds.Column("habitat")
	require.NoError(t, err)
	assert.Equal(t, data.Categorical, src.Kind)
}

func TestCatCodes_SingleValue(t *testing.T) {
	ds, err := data.New(data.CategoricalColumn("c", "same", "same", "same"))
	require.NoError(t, err)

	enc, err := dataprep.CatCodes(ds, "c")
	require.NoError(t, err)
	c, err := enc.Column("c")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, c.Floats)
}

func TestCatCodes_UnknownColumn(t *testing.T) {
	_, err := dataprep.CatCodes(testutil.Iris(), "colour")
	assert.ErrorIs(t, err, data.ErrUnknownColumn)
}

func TestCatCodes_MissingValues(t *testing.T) {
	ds, err := data.New(
		data.NumericColumn("x", 1, math.NaN(), 3, 4),
		data.CategoricalColumn("h", "a", "b", "", "a"),
	)
	require.NoError(t, err)

	_, err = dataprep.CatCodes(ds, "x")
	assert.ErrorIs(t, err, data.ErrMissingValue)
	assert.ErrorContains(t, err, `"x" row 1`)

	_, err = dataprep.CatCodes(ds, "h")
	assert.ErrorIs(t, err, data.ErrMissingValue)
	assert.ErrorContains(t, err, `"h" row 2`)
}

func TestCategoricalColumns(t *testing.T) {
	assert.Equal(t, []string{"habitat", "species"}, dataprep.CategoricalColumns(testutil.Iris()))
	assert.Empty(t, dataprep.CategoricalColumns(testutil.TwoFeatures()))
}
