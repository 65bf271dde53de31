package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/data"
	"github.com/bmauss/KNN-Imputation-Evaluation/pkg/dataprep"
)

func newEncodeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the category codes of a dataset's columns",
		Long: `Print the integer code assigned to every category. Without --columns
all string-valued columns are encoded.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			input := v.GetString("input")
			if input == "" {
				return errNoInput
			}
			ds, err := data.Load(input, v.GetString("sheet"))
			if err != nil {
				return err
			}
			cols := v.GetStringSlice("columns")
			if len(cols) == 0 {
				cols = dataprep.CategoricalColumns(ds)
			}
			_, book, err := dataprep.CatCodesWithCodebook(ds, cols...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, col := range cols {
				fmt.Fprintf(out, "%s:\n", col)
				for code, cat := range book[col] {
					fmt.Fprintf(out, "  %d\t%s\n", code, cat)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringP("input", "i", "", "dataset file (.csv or .xlsx)")
	f.String("sheet", "", "workbook sheet (default: first sheet)")
	f.StringSlice("columns", nil, "columns to encode (default: all categorical)")
	return cmd
}
