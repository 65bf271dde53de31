package data

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

// FromDataFrame converts a gota dataframe. Int and float series become
// numeric columns, everything else becomes categorical. Blank cells load as
// NaN in numeric columns and as "" in categorical ones; both count as missing
// once the column is encoded or read as a matrix.
func FromDataFrame(df dataframe.DataFrame) (*Dataset, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("dataframe: %w", df.Err)
	}
	names := df.Names()
	cols := make([]Column, 0, len(names))
	for _, name := range names {
		s := df.Col(name)
		switch s.Type() {
		case series.Int, series.Float:
			cols = append(cols, NumericColumn(name, s.Float()...))
		default:
			cols = append(cols, CategoricalColumn(name, s.Records()...))
		}
	}
	return New(cols...)
}

// ReadCSV reads a CSV stream with a header row, detecting column types.
func ReadCSV(r io.Reader) (*Dataset, error) {
	df := dataframe.ReadCSV(bufio.NewReader(r),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	)
	return FromDataFrame(df)
}

// LoadCSV reads a CSV file with a header row.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ds, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// LoadXLSX reads one sheet of a workbook; the first row is the header. An
// empty sheet name selects the first sheet.
func LoadXLSX(path, sheet string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrNoColumns)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s[%s]: %w", path, sheet, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s[%s]: %w", path, sheet, ErrNoColumns)
	}

	// excelize trims trailing empty cells, so pad every row to the header width.
	width := len(rows[0])
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		rec := make([]string, width)
		copy(rec, row)
		records = append(records, rec)
	}

	ds, err := FromDataFrame(dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	))
	if err != nil {
		return nil, fmt.Errorf("%s[%s]: %w", path, sheet, err)
	}
	return ds, nil
}

// Load picks a loader by file extension (.csv, .xlsx). sheet only applies to
// workbooks.
func Load(path, sheet string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return LoadCSV(path)
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}
