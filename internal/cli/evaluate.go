package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/data"
	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/evaluate"
	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/viz"
)

var errNoInput = errors.New("an input file is required (--input)")

func newEvaluateCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Mask, impute and score a dataset",
		Long: `Load a CSV or XLSX dataset, mask a fraction of every feature column,
impute it with KNN and report how well the hidden values were recovered.`,
		Example: `  knneval evaluate --input iris.csv --target species --fraction 0.1 --seed 42
  knneval evaluate --input flights.xlsx --sheet data --target delayed --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			return runEvaluate(cmd, v)
		},
	}

	f := cmd.Flags()
	f.StringP("input", "i", "", "dataset file (.csv or .xlsx)")
	f.String("sheet", "", "workbook sheet (default: first sheet)")
	f.StringP("target", "t", "", "target column excluded from masking")
	f.Float64P("fraction", "f", evaluate.DefaultFraction, "fraction of rows masked per feature column")
	f.IntP("neighbors", "k", evaluate.DefaultNeighbors, "number of neighbours")
	f.Int64("seed", 0, "random seed (default: time based)")
	f.Float64("epsilon", evaluate.DefaultEpsilon, "tolerance for a perfect recovery")
	f.StringSlice("categorical", nil, "extra columns to encode as categories")
	f.Bool("weighted", false, "weight neighbours by inverse distance")
	f.Bool("clamp", false, "lower k on datasets with fewer rows than neighbours")
	f.Bool("strict", false, "fail when a feature column is fully masked")
	f.StringP("output", "o", "text", "report format: text or json")
	f.String("plot", "", "write an original-vs-imputed scatter plot to this file")
	f.String("plot-columns", "", "write a per-column RMSE bar chart to this file")
	return cmd
}

func runEvaluate(cmd *cobra.Command, v *viper.Viper) error {
	input := v.GetString("input")
	if input == "" {
		return errNoInput
	}
	ds, err := data.Load(input, v.GetString("sheet"))
	if err != nil {
		return err
	}
	log.Info().Str("input", input).Int("rows", ds.Nrow()).Int("columns", ds.Ncol()).Msg("loaded dataset")

	opts := []evaluate.Option{
		evaluate.WithFraction(v.GetFloat64("fraction")),
		evaluate.WithNeighbors(v.GetInt("neighbors")),
		evaluate.WithEpsilon(v.GetFloat64("epsilon")),
	}
	if v.IsSet("seed") {
		opts = append(opts, evaluate.WithSeed(v.GetInt64("seed")))
	}
	if cols := v.GetStringSlice("categorical"); len(cols) > 0 {
		opts = append(opts, evaluate.WithCategorical(cols...))
	}
	if v.GetBool("weighted") {
		opts = append(opts, evaluate.WithDistanceWeighting())
	}
	if v.GetBool("clamp") {
		opts = append(opts, evaluate.WithClampNeighbors())
	}
	if v.GetBool("strict") {
		opts = append(opts, evaluate.WithStrictAllMissing())
	}

	report, err := evaluate.Evaluate(ds, v.GetString("target"), opts...)
	if err != nil {
		return err
	}

	if err := writePlots(report, v.GetString("plot"), v.GetString("plot-columns")); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch v.GetString("output") {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "text", "":
		return report.Print(out)
	default:
		return fmt.Errorf("unknown output format %q", v.GetString("output"))
	}
}

func writePlots(r *evaluate.Report, scatterPath, columnsPath string) error {
	if scatterPath == "" && columnsPath == "" {
		return nil
	}
	if r.MissingCells == 0 {
		log.Warn().Msg("nothing was masked, skipping plots")
		return nil
	}
	if scatterPath != "" {
		p, err := viz.ImputedScatter(r)
		if err != nil {
			return err
		}
		if err := viz.Save(p, scatterPath); err != nil {
			return err
		}
		log.Info().Str("file", scatterPath).Msg("saved scatter plot")
	}
	if columnsPath != "" {
		p, err := viz.ColumnRMSE(r)
		if err != nil {
			return err
		}
		if err := viz.Save(p, columnsPath); err != nil {
			return err
		}
		log.Info().Str("file", columnsPath).Msg("saved column RMSE chart")
	}
	return nil
}
