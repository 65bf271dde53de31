package data

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Kind is the storage type of a column.
type Kind int

const (
	// Numeric columns hold float64 values.
	Numeric Kind = iota
	// Categorical columns hold string labels.
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Column is a named, typed sequence of values. Exactly one of Floats or
// Strings is used, depending on Kind.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Strings []string
}

// NumericColumn builds a numeric column.
func NumericColumn(name string, vals ...float64) Column {
	return Column{Name: name, Kind: Numeric, Floats: vals}
}

// CategoricalColumn builds a categorical column.
func CategoricalColumn(name string, vals ...string) Column {
	return Column{Name: name, Kind: Categorical, Strings: vals}
}

// Len returns the number of values in the column.
func (c *Column) Len() int {
	if c.Kind == Numeric {
		return len(c.Floats)
	}
	return len(c.Strings)
}

// Value returns the i-th value as float64 or string.
func (c *Column) Value(i int) any {
	if c.Kind == Numeric {
		return c.Floats[i]
	}
	return c.Strings[i]
}

func (c *Column) clone() *Column {
	out := &Column{Name: c.Name, Kind: c.Kind}
	if c.Floats != nil {
		out.Floats = append([]float64(nil), c.Floats...)
	}
	if c.Strings != nil {
		out.Strings = append([]string(nil), c.Strings...)
	}
	return out
}

// Dataset is an ordered collection of rows over named columns.
// Every column has the same length.
type Dataset struct {
	cols  []*Column
	index map[string]int
}

// New builds a dataset from columns, checking names are unique and non-empty
// and that all columns have the same length. The column slices are copied.
func New(cols ...Column) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	d := &Dataset{
		cols:  make([]*Column, 0, len(cols)),
		index: make(map[string]int, len(cols)),
	}
	n := cols[0].Len()
	for i := range cols {
		c := cols[i]
		if c.Name == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyName)
		}
		if _, dup := d.index[c.Name]; dup {
			return nil, fmt.Errorf("%q: %w", c.Name, ErrDuplicateColumn)
		}
		if c.Len() != n {
			return nil, fmt.Errorf("%q has %d rows, want %d: %w", c.Name, c.Len(), n, ErrRaggedColumns)
		}
		d.index[c.Name] = len(d.cols)
		d.cols = append(d.cols, c.clone())
	}
	return d, nil
}

// FromRecords builds a dataset from a header and string records. A column is
// numeric when every value parses as a float, categorical otherwise.
func FromRecords(header []string, records [][]string) (*Dataset, error) {
	if len(header) == 0 {
		return nil, ErrNoColumns
	}
	for r, rec := range records {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("record %d has %d fields, want %d: %w", r, len(rec), len(header), ErrRaggedColumns)
		}
	}

	cols := make([]Column, len(header))
	for j, name := range header {
		raw := make([]string, len(records))
		for i := range records {
			raw[i] = records[i][j]
		}
		if nums, ok := parseFloats(raw); ok {
			cols[j] = NumericColumn(name, nums...)
		} else {
			cols[j] = CategoricalColumn(name, raw...)
		}
	}
	return New(cols...)
}

func parseFloats(raw []string) ([]float64, bool) {
	nums := make([]float64, len(raw))
	for i, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		nums[i] = f
	}
	return nums, true
}

// Nrow returns the number of rows.
func (d *Dataset) Nrow() int {
	if len(d.cols) == 0 {
		return 0
	}
	return d.cols[0].Len()
}

// Ncol returns the number of columns.
func (d *Dataset) Ncol() int { return len(d.cols) }

// Names returns the column names in order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name
	}
	return names
}

// Has reports whether the dataset has a column called name.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Column returns the named column. The returned column is shared with the
// dataset; use Clone before mutating.
func (d *Dataset) Column(name string) (*Column, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}
	return d.cols[i], nil
}

// Row returns row i as a map from column name to value.
func (d *Dataset) Row(i int) map[string]any {
	row := make(map[string]any, len(d.cols))
	for _, c := range d.cols {
		row[c.Name] = c.Value(i)
	}
	return row
}

// Clone deep copies the dataset.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		cols:  make([]*Column, len(d.cols)),
		index: make(map[string]int, len(d.index)),
	}
	for i, c := range d.cols {
		out.cols[i] = c.clone()
		out.index[c.Name] = i
	}
	return out
}

// Replace swaps the column with the same name for c, keeping its position.
func (d *Dataset) Replace(c Column) error {
	i, ok := d.index[c.Name]
	if !ok {
		return fmt.Errorf("%q: %w", c.Name, ErrUnknownColumn)
	}
	if c.Len() != d.Nrow() {
		return fmt.Errorf("%q has %d rows, want %d: %w", c.Name, c.Len(), d.Nrow(), ErrRaggedColumns)
	}
	d.cols[i] = c.clone()
	return nil
}

// Without returns the column names except the excluded ones, in order.
func (d *Dataset) Without(excluded ...string) []string {
	skip := make(map[string]struct{}, len(excluded))
	for _, e := range excluded {
		skip[e] = struct{}{}
	}
	var names []string
	for _, c := range d.cols {
		if _, ok := skip[c.Name]; !ok {
			names = append(names, c.Name)
		}
	}
	return names
}

// Matrix copies the named numeric columns into a rows x len(names) matrix.
// NaN cells are rejected since they are indistinguishable from masked ones.
func (d *Dataset) Matrix(names ...string) ([][]float64, error) {
	cols := make([]*Column, len(names))
	for j, name := range names {
		c, err := d.Column(name)
		if err != nil {
			return nil, err
		}
		if c.Kind != Numeric {
			return nil, fmt.Errorf("%q: %w", name, ErrNotNumeric)
		}
		cols[j] = c
	}

	rows := d.Nrow()
	X := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		X[i] = make([]float64, len(cols))
		for j, c := range cols {
			v := c.Floats[i]
			if math.IsNaN(v) {
				return nil, fmt.Errorf("%q row %d: %w", c.Name, i, ErrMissingValue)
			}
			X[i][j] = v
		}
	}
	return X, nil
}

// Dense is Matrix as a gonum dense matrix.
func (d *Dataset) Dense(names ...string) (*mat.Dense, error) {
	X, err := d.Matrix(names...)
	if err != nil {
		return nil, err
	}
	if len(X) == 0 || len(names) == 0 {
		return nil, ErrEmptyDataset
	}
	m := mat.NewDense(len(X), len(names), nil)
	for i, row := range X {
		m.SetRow(i, row)
	}
	return m, nil
}
