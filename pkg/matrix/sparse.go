package matrix

import (
	"fmt"
	"slices"
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/namedseq/pkg/names"
)

// denseRenderLimit caps the number of cells rendered as a full grid by
// Sparse.String.
const denseRenderLimit = 1000

// Entry is one non-zero element of a sparse matrix.
type Entry struct {
	Row, Col int
	Value    float64
}

// Sparse is a coordinate-format matrix of float64 values with optional row
// and column names. Entries are kept sorted row-major; duplicated
// coordinates are summed on construction and explicit zeros are dropped.
type Sparse struct {
	rows, cols int
	entries    []Entry
	rowNames   *names.Names
	colNames   *names.Names
}

// NewSparse creates a rows x cols sparse matrix from coordinate entries.
func NewSparse(rows, cols int, entries []Entry, opts ...Option) (*Sparse, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if rows < 0 || cols < 0 {
		return nil, goerr.New("matrix dimensions should be non-negative",
			goerr.V("rows", rows), goerr.V("cols", cols))
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, goerr.New("entry out of range",
				goerr.V("row", e.Row), goerr.V("col", e.Col),
				goerr.V("rows", rows), goerr.V("cols", cols))
		}
	}

	rn, cn, err := cfg.build(rows, cols)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	// Sum duplicated coordinates, drop zeros.
	compact := sorted[:0]
	for _, e := range sorted {
		if n := len(compact); n > 0 && compact[n-1].Row == e.Row && compact[n-1].Col == e.Col {
			compact[n-1].Value += e.Value
			continue
		}
		compact = append(compact, e)
	}
	nonzero := make([]Entry, 0, len(compact))
	for _, e := range compact {
		if e.Value != 0 {
			nonzero = append(nonzero, e)
		}
	}

	return &Sparse{rows: rows, cols: cols, entries: nonzero, rowNames: rn, colNames: cn}, nil
}

// FromDense converts a dense matrix, keeping its names.
func FromDense(m *Dense) *Sparse {
	var entries []Entry
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if v := m.At(r, c); v != 0 {
				entries = append(entries, Entry{Row: r, Col: c, Value: v})
			}
		}
	}
	out := &Sparse{rows: m.Rows(), cols: m.Cols(), entries: entries}
	if m.rowNames != nil {
		out.rowNames = m.rowNames.Copy()
	}
	if m.colNames != nil {
		out.colNames = m.colNames.Copy()
	}
	return out
}

// Rows returns the number of rows.
func (m *Sparse) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Sparse) Cols() int { return m.cols }

// NNZ returns the number of stored non-zero entries.
func (m *Sparse) NNZ() int { return len(m.entries) }

// Entries returns a copy of the stored entries in row-major order.
func (m *Sparse) Entries() []Entry {
	return slices.Clone(m.entries)
}

// At returns the value at (r, c), or 0 when no entry is stored there.
func (m *Sparse) At(r, c int) float64 {
	if i, ok := m.find(r, c); ok {
		return m.entries[i].Value
	}
	return 0
}

// Set stores the value at (r, c). Setting zero removes the entry.
func (m *Sparse) Set(r, c int, v float64) {
	i, ok := m.find(r, c)
	switch {
	case ok && v == 0:
		m.entries = slices.Delete(m.entries, i, i+1)
	case ok:
		m.entries[i].Value = v
	case v != 0:
		m.entries = slices.Insert(m.entries, i, Entry{Row: r, Col: c, Value: v})
	}
}

// RowIndex returns the position of the named row, or -1.
func (m *Sparse) RowIndex(name string) int {
	if m.rowNames == nil {
		return -1
	}
	return m.rowNames.Map(name)
}

// ColIndex returns the position of the named column, or -1.
func (m *Sparse) ColIndex(name string) int {
	if m.colNames == nil {
		return -1
	}
	return m.colNames.Map(name)
}

// AtName returns the value addressed by row and column name.
func (m *Sparse) AtName(rowName, colName string) (float64, error) {
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

// SetName stores the value addressed by row and column name.
func (m *Sparse) SetName(rowName, colName string, v float64) error {
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
func (m *Sparse) RowNames() []string {
	if m.rowNames == nil {
		return nil
	}
	return m.rowNames.Values()
}

// ColNames returns a copy of the column names, or nil when unnamed.
func (m *Sparse) ColNames() []string {
	if m.colNames == nil {
		return nil
	}
	return m.colNames.Values()
}

// SetRowNames replaces the row names. Pass nil to remove them.
func (m *Sparse) SetRowNames(rowNames []string) error {
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
func (m *Sparse) SetColNames(colNames []string) error {
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

// Transpose returns a new matrix with rows and columns (and their names)
// swapped.
func (m *Sparse) Transpose() *Sparse {
	entries := make([]Entry, len(m.entries))
	for i, e := range m.entries {
		entries[i] = Entry{Row: e.Col, Col: e.Row, Value: e.Value}
	}
	out, _ := NewSparse(m.cols, m.rows, entries)
	if m.colNames != nil {
		out.rowNames = m.colNames.Copy()
	}
	if m.rowNames != nil {
		out.colNames = m.rowNames.Copy()
	}
	return out
}

// Add returns the element-wise sum. The result keeps the receiver's names.
func (m *Sparse) Add(other *Sparse) (*Sparse, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, goerr.New("matrix dimensions should match",
			goerr.V("left", []int{m.rows, m.cols}), goerr.V("right", []int{other.rows, other.cols}))
	}
	merged := append(slices.Clone(m.entries), other.entries...)
	out, err := NewSparse(m.rows, m.cols, merged)
	if err != nil {
		return nil, err
	}
	if m.rowNames != nil {
		out.rowNames = m.rowNames.Copy()
	}
	if m.colNames != nil {
		out.colNames = m.colNames.Copy()
	}
	return out, nil
}

// Scale returns a new matrix with every stored value multiplied by f.
// Scaling by zero drops all entries.
func (m *Sparse) Scale(f float64) *Sparse {
	var entries []Entry
	if f != 0 {
		entries = make([]Entry, len(m.entries))
		for i, e := range m.entries {
			entries[i] = Entry{Row: e.Row, Col: e.Col, Value: e.Value * f}
		}
	}
	out := &Sparse{rows: m.rows, cols: m.cols, entries: entries}
	if m.rowNames != nil {
		out.rowNames = m.rowNames.Copy()
	}
	if m.colNames != nil {
		out.colNames = m.colNames.Copy()
	}
	return out
}

// Slice returns a new matrix holding the given rows and columns, in the
// given order. A nil index slice keeps the full axis.
func (m *Sparse) Slice(rowIdx, colIdx []int) (*Sparse, error) {
	if rowIdx == nil {
		rowIdx = make([]int, m.rows)
		for i := range rowIdx {
			rowIdx[i] = i
		}
	} else if err := checkIndices(rowIdx, m.rows, "row"); err != nil {
		return nil, err
	}
	if colIdx == nil {
		colIdx = make([]int, m.cols)
		for i := range colIdx {
			colIdx[i] = i
		}
	} else if err := checkIndices(colIdx, m.cols, "column"); err != nil {
		return nil, err
	}

	rowPos := make(map[int][]int, len(rowIdx))
	for i, r := range rowIdx {
		rowPos[r] = append(rowPos[r], i)
	}
	colPos := make(map[int][]int, len(colIdx))
	for i, c := range colIdx {
		colPos[c] = append(colPos[c], i)
	}

	var entries []Entry
	for _, e := range m.entries {
		for _, r := range rowPos[e.Row] {
			for _, c := range colPos[e.Col] {
				entries = append(entries, Entry{Row: r, Col: c, Value: e.Value})
			}
		}
	}

	out, err := NewSparse(len(rowIdx), len(colIdx), entries)
	if err != nil {
		return nil, err
	}
	if out.rowNames, err = subsetNames(m.rowNames, rowIdx); err != nil {
		return nil, err
	}
	if out.colNames, err = subsetNames(m.colNames, colIdx); err != nil {
		return nil, err
	}
	return out, nil
}

// SliceNames returns a new matrix selecting rows and columns by name. A
// nil name slice keeps the full axis.
func (m *Sparse) SliceNames(rowNames, colNames []string) (*Sparse, error) {
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

// ToDense expands the matrix, keeping its names.
func (m *Sparse) ToDense() *Dense {
	data := make([]float64, m.rows*m.cols)
	for _, e := range m.entries {
		data[e.Row*m.cols+e.Col] = e.Value
	}
	out := &Dense{rows: m.rows, cols: m.cols, data: data}
	if m.rowNames != nil {
		out.rowNames = m.rowNames.Copy()
	}
	if m.colNames != nil {
		out.colNames = m.colNames.Copy()
	}
	return out
}

// String renders small matrices as a full grid and larger ones as a
// one-line summary.
func (m *Sparse) String() string {
	if m.rows*m.cols < denseRenderLimit {
		return formatGrid(m.rows, m.cols, m.At, m.rowNames, m.colNames)
	}
	return fmt.Sprintf("<Sparse: shape=(%d, %d), nnz=%d>", m.rows, m.cols, len(m.entries))
}

// find returns the position of (r, c) in the sorted entries, or the
// insertion point when absent.
func (m *Sparse) find(r, c int) (int, bool) {
	i := sort.Search(len(m.entries), func(i int) bool {
		e := m.entries[i]
		if e.Row != r {
			return e.Row >= r
		}
		return e.Col >= c
	})
	if i < len(m.entries) && m.entries[i].Row == r && m.entries[i].Col == c {
		return i, true
	}
	return i, false
}
