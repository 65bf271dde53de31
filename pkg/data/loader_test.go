package data_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/data"
)

const irisCSV = `sepal_length,petal_width,species
5.1,0.2,setosa
7.0,1.4,versicolor
6.3,2.5,virginica
`

func TestReadCSV(t *testing.T) {
	ds, err := data.ReadCSV(strings.NewReader(irisCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Nrow())
	assert.Equal(t, []string{"sepal_length", "petal_width", "species"}, ds.Names())

	sl, err := ds.Column("sepal_length")
	require.NoError(t, err)
	assert.Equal(t, data.Numeric, sl.Kind)
	assert.InDeltaSlice(t, []float64{5.1, 7.0, 6.3}, sl.Floats, 1e-12)

	sp, err := ds.Column("species")
	require.NoError(t, err)
	assert.Equal(t, data.Categorical, sp.Kind)
	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, sp.Strings)
}

func TestLoad_CSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iris.csv")
	require.NoError(t, os.WriteFile(path, []byte(irisCSV), 0o644))

	ds, err := data.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Ncol())
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iris.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"sepal_length", "species"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{5.1, "setosa"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{7, "versicolor"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := data.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Nrow())

	sl, err := ds.Column("sepal_length")
	require.NoError(t, err)
	assert.Equal(t, data.Numeric, sl.Kind)
	assert.InDeltaSlice(t, []float64{5.1, 7}, sl.Floats, 1e-12)
}

func TestLoad_Unsupported(t *testing.T) {
	_, err := data.Load("iris.parquet", "")
	assert.ErrorIs(t, err, data.ErrUnsupportedFormat)
}
