package matrix

import (
	"slices"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/namedseq/pkg/names"
)

// Dense is a row-major matrix of float64 values with optional row and
// column names.
type Dense struct {
	rows, cols int
	data       []float64
	rowNames   *names.Names
	colNames   *names.Names
}

// NewDense creates a rows x cols matrix from row-major data. Name options
// must match the respective dimension.
func NewDense(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if rows < 0 || cols < 0 {
		return nil, goerr.New("matrix dimensions should be non-negative",
			goerr.V("rows", rows), goerr.V("cols", cols))
	}
	if len(data) != rows*cols {
		return nil, goerr.New("data length should equal rows*cols",
			goerr.V("data", len(data)), goerr.V("rows", rows), goerr.V("cols", cols))
	}

	rn, cn, err := cfg.build(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Dense{
		rows:     rows,
		cols:     cols,
		data:     slices.Clone(data),
		rowNames: rn,
		colNames: cn,
	}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the value at (r, c). Positions must be in range.
func (m *Dense) At(r, c int) float64 {
	return m.data[r*m.cols+c]
}

// Set replaces the value at (r, c). Positions must be in range.
func (m *Dense) Set(r, c int, v float64) {
	m.data[r*m.cols+c] = v
}

// RowIndex returns the position of the named row, or -1.
func (m *Dense) RowIndex(name string) int {
	if m.rowNames == nil {
		return -1
	}
	return m.rowNames.Map(name)
}

// ColIndex returns the position of the named column, or -1.
func (m *Dense) ColIndex(name string) int {
	if m.colNames == nil {
		return -1
	}
	return m.colNames.Map(name)
}

// AtName returns the value addressed by row and column name.
func (m *Dense) AtName(rowName, colName string) (float64, error) {
	r, err := resolveName(m.rowNames, rowName, "row")
	if err != nil {
		return 0, err
	}
	c, err := resolveName(m.colNames, colName, "column")
	if err != nil {
		return 0, err
	}
	return m.At(r, c), nil
}

// SetName replaces the value addressed by row and column name.
func (m *Dense) SetName(rowName, colName string, v float64) error {
	r, err := resolveName(m.rowNames, rowName, "row")
	if err != nil {
		return err
	}
	c, err := resolveName(m.colNames, colName, "column")
	if err != nil {
		return err
	}
	m.Set(r, c, v)
	return nil
}

// RowNames returns a copy of the row names, or nil when unnamed.
func (m *Dense) RowNames() []string {
	if m.rowNames == nil {
		return nil
	}
	return m.rowNames.Values()
}

// ColNames returns a copy of the column names, or nil when unnamed.
func (m *Dense) ColNames() []string {
	if m.colNames == nil {
		return nil
	}
	return m.colNames.Values()
}

// SetRowNames replaces the row names. Pass nil to remove them.
func (m *Dense) SetRowNames(rowNames []string) error {
	if rowNames == nil {
		m.rowNames = nil
		return nil
	}
	if len(rowNames) != m.rows {
		return goerr.New("number of row names should match number of rows",
			goerr.V("names", len(rowNames)), goerr.V("rows", m.rows))
	}
	m.rowNames = names.New(rowNames...)
	return nil
}

// SetColNames replaces the column names. Pass nil to remove them.
func (m *Dense) SetColNames(colNames []string) error {
	if colNames == nil {
		m.colNames = nil
		return nil
	}
	if len(colNames) != m.cols {
		return goerr.New("number of column names should match number of columns",
			goerr.V("names", len(colNames)), goerr.V("columns", m.cols))
	}
	m.colNames = names.New(colNames...)
	return nil
}

// Row returns a copy of row r.
func (m *Dense) Row(r int) []float64 {
	return slices.Clone(m.data[r*m.cols : (r+1)*m.cols])
}

// Col returns a copy of column c.
func (m *Dense) Col(c int) []float64 {
	out := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = m.At(r, c)
	}
	return out
}

// Slice returns a new matrix holding the given rows and columns, in the
// given order. A nil index slice keeps the full axis. Names follow the
// selection.
func (m *Dense) Slice(rowIdx, colIdx []int) (*Dense, error) {
	rowIdx, colIdx, err := m.normalizeSlice(rowIdx, colIdx)
	if err != nil {
		return nil, err
	}

	data := make([]float64, 0, len(rowIdx)*len(colIdx))
	for _, r := range rowIdx {
		for _, c := range colIdx {
			data = append(data, m.At(r, c))
		}
	}

	rn, err := subsetNames(m.rowNames, rowIdx)
	if err != nil {
		return nil, err
	}
	cn, err := subsetNames(m.colNames, colIdx)
	if err != nil {
		return nil, err
	}

	return &Dense{
		rows:     len(rowIdx),
		cols:     len(colIdx),
		data:     data,
		rowNames: rn,
		colNames: cn,
	}, nil
}

// SliceRows returns a new matrix holding the given rows.
func (m *Dense) SliceRows(rowIdx []int) (*Dense, error) {
	return m.Slice(rowIdx, nil)
}

// SliceCols returns a new matrix holding the given columns.
func (m *Dense) SliceCols(colIdx []int) (*Dense, error) {
	return m.Slice(nil, colIdx)
}

// SliceNames returns a new matrix selecting rows and columns by name. A
// nil name slice keeps the full axis.
func (m *Dense) SliceNames(rowNames, colNames []string) (*Dense, error) {
	var rowIdx, colIdx []int
	var err error
	if rowNames != nil {
		if rowIdx, err = resolveNames(m.rowNames, rowNames, "row"); err != nil {
			return nil, err
		}
	}
	if colNames != nil {
		if colIdx, err = resolveNames(m.colNames, colNames, "column"); err != nil {
			return nil, err
		}
	}
	return m.Slice(rowIdx, colIdx)
}

// Transpose returns a new matrix with rows and columns (and their names)
// swapped.
func (m *Dense) Transpose() *Dense {
	data := make([]float64, len(m.data))
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			data[c*m.rows+r] = m.At(r, c)
		}
	}
	out := &Dense{rows: m.cols, cols: m.rows, data: data}
	if m.colNames != nil {
		out.rowNames = m.colNames.Copy()
	}
	if m.rowNames != nil {
		out.colNames = m.rowNames.Copy()
	}
	return out
}

// Add returns the element-wise sum. The result keeps the receiver's names.
func (m *Dense) Add(other *Dense) (*Dense, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, goerr.New("matrix dimensions should match",
			goerr.V("left", []int{m.rows, m.cols}), goerr.V("right", []int{other.rows, other.cols}))
	}
	out := m.Clone()
	for i := range out.data {
		out.data[i] += other.data[i]
	}
	return out, nil
}

// Scale returns a new matrix with every value multiplied by f.
func (m *Dense) Scale(f float64) *Dense {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= f
	}
	return out
}

// MatMul returns the matrix product m x other. The result takes its row
// names from m and its column names from other.
func (m *Dense) MatMul(other *Dense) (*Dense, error) {
	if m.cols != other.rows {
		return nil, goerr.New("inner matrix dimensions should match",
			goerr.V("left_cols", m.cols), goerr.V("right_rows", other.rows))
	}

	data := make([]float64, m.rows*other.cols)
	for r := 0; r < m.rows; r++ {
		for k := 0; k < m.cols; k++ {
			v := m.At(r, k)
			if v == 0 {
				continue
			}
			for c := 0; c < other.cols; c++ {
				data[r*other.cols+c] += v * other.At(k, c)
			}
		}
	}

	out := &Dense{rows: m.rows, cols: other.cols, data: data}
	if m.rowNames != nil {
		out.rowNames = m.rowNames.Copy()
	}
	if other.colNames != nil {
		out.colNames = other.colNames.Copy()
	}
	return out, nil
}

// Clone returns a copy that shares no state with the receiver.
func (m *Dense) Clone() *Dense {
	out := &Dense{rows: m.rows, cols: m.cols, data: slices.Clone(m.data)}
	if m.rowNames != nil {
		out.rowNames = m.rowNames.Copy()
	}
	if m.colNames != nil {
		out.colNames = m.colNames.Copy()
	}
	return out
}

// String renders the matrix as an aligned table with a name gutter and
// header.
func (m *Dense) String() string {
	return formatGrid(m.rows, m.cols, m.At, m.rowNames, m.colNames)
}

func (m *Dense) normalizeSlice(rowIdx, colIdx []int) ([]int, []int, error) {
	if rowIdx == nil {
		rowIdx = make([]int, m.rows)
		for i := range rowIdx {
			rowIdx[i] = i
		}
	} else if err := checkIndices(rowIdx, m.rows, "row"); err != nil {
		return nil, nil, err
	}
	if colIdx == nil {
		colIdx = make([]int, m.cols)
		for i := range colIdx {
			colIdx[i] = i
		}
	} else if err := checkIndices(colIdx, m.cols, "column"); err != nil {
		return nil, nil, err
	}
	return rowIdx, colIdx, nil
}
