package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmauss/KNN-Imputation-Evaluation/internal/cli"
	_ "github.com/bmauss/KNN-Imputation-Evaluation/internal/testutil"
	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/evaluate"
)

const irisCSV = `sepal_length,petal_length,habitat,species
5.1,1.4,shore,setosa
4.9,1.4,shore,setosa
4.7,1.3,meadow,setosa
7.0,4.7,meadow,versicolor
6.4,4.5,forest,versicolor
6.9,4.9,forest,versicolor
6.3,6.0,shore,virginica
5.8,5.1,meadow,virginica
7.1,5.9,forest,virginica
6.3,5.6,shore,virginica
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvaluateCommand_JSON(t *testing.T) {
	input := writeFile(t, "iris.csv", irisCSV)
	out, err := run(t, "evaluate", "--input", input, "--target", "species",
		"--seed", "42", "--neighbors", "3", "--fraction", "0.2", "--output", "json")
	require.NoError(t, err)

	var r evaluate.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "species", r.Target)
	assert.Equal(t, 3, r.Neighbors)
	assert.Equal(t, 30, r.TotalCells)
	assert.Equal(t, 6, r.SampledCells)
	require.NotNil(t, r.Seed)
	assert.Equal(t, int64(42), *r.Seed)
}

func TestEvaluateCommand_TextAndPlots(t *testing.T) {
	input := writeFile(t, "iris.csv", irisCSV)
	dir := t.TempDir()
	scatter := filepath.Join(dir, "scatter.png")
	columns := filepath.Join(dir, "columns.png")

	out, err := run(t, "evaluate", "-i", input, "-t", "species", "--seed", "1", "-k", "3",
		"-f", "0.3", "--plot", scatter, "--plot-columns", columns)
	require.NoError(t, err)
	assert.Contains(t, out, "Target column:           species")
	assert.FileExists(t, scatter)
	assert.FileExists(t, columns)
}

func TestEvaluateCommand_ConfigAndEnv(t *testing.T) {
	input := writeFile(t, "iris.csv", irisCSV)
	cfg := writeFile(t, "knneval.yaml", "target: species\nfraction: 0\nseed: 7\noutput: json\n")
	t.Setenv("KNNEVAL_NEIGHBORS", "2")

	out, err := run(t, "--config", cfg, "evaluate", "--input", input)
	require.NoError(t, err)

	var r evaluate.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "species", r.Target)
	assert.Equal(t, 2, r.Neighbors)
	assert.Zero(t, r.MissingCells)
	require.NotNil(t, r.Seed)
	assert.Equal(t, int64(7), *r.Seed)
}

func TestEvaluateCommand_Errors(t *testing.T) {
	_, err := run(t, "evaluate", "--target", "species")
	assert.Error(t, err)

	input := writeFile(t, "iris.csv", irisCSV)
	_, err = run(t, "evaluate", "--input", input, "--target", "colour")
	assert.Error(t, err)

	_, err = run(t, "evaluate", "--input", input, "--target", "species", "--fraction", "2")
	assert.ErrorIs(t, err, evaluate.ErrInvalidFraction)

	_, err = run(t, "evaluate", "--input", input, "--target", "species", "--output", "yaml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestEncodeCommand(t *testing.T) {
	input := writeFile(t, "iris.csv", irisCSV)

	out, err := run(t, "encode", "--input", input)
	require.NoError(t, err)
	assert.Contains(t, out, "habitat:\n  0\tforest\n  1\tmeadow\n  2\tshore\n")
	assert.Contains(t, out, "species:\n  0\tsetosa\n")

	out, err = run(t, "encode", "--input", input, "--columns", "species")
	require.NoError(t, err)
	assert.NotContains(t, out, "habitat")
}
