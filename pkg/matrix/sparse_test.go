package matrix_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/namedseq/pkg/matrix"
)

func newSparse(t *testing.T) *matrix.Sparse {
	t.Helper()
	m, err := matrix.NewSparse(3, 3, []matrix.Entry{
		{Row: 2, Col: 0, Value: 7},
		{Row: 0, Col: 1, Value: 2},
		{Row: 1, Col: 1, Value: 5},
	},
		matrix.WithRowNames([]string{"r1", "r2", "r3"}),
		matrix.WithColNames([]string{"a", "b", "c"}))
	gt.NoError(t, err)
	return m
}

func TestNewSparse(t *testing.T) {
	m := newSparse(t)
	gt.Equal(t, m.Rows(), 3)
	gt.Equal(t, m.NNZ(), 3)
	gt.Equal(t, m.At(0, 1), 2.0)
	gt.Equal(t, m.At(0, 0), 0.0)

	// Entries are normalized: sorted row-major, duplicates summed,
	// zeros dropped.
	dup, err := matrix.NewSparse(2, 2, []matrix.Entry{
		{Row: 1, Col: 1, Value: 1},
		{Row: 0, Col: 0, Value: 3},
		{Row: 1, Col: 1, Value: 2},
		{Row: 0, Col: 1, Value: 0},
	})
	gt.NoError(t, err)
	gt.Equal(t, dup.NNZ(), 2)
	gt.Equal(t, dup.Entries(), []matrix.Entry{
		{Row: 0, Col: 0, Value: 3},
		{Row: 1, Col: 1, Value: 3},
	})

	_, err = matrix.NewSparse(2, 2, []matrix.Entry{{Row: 2, Col: 0, Value: 1}})
	gt.Error(t, err)
}

func TestSparseSet(t *testing.T) {
	m := newSparse(t)

	m.Set(0, 0, 9)
	gt.Equal(t, m.At(0, 0), 9.0)
	gt.Equal(t, m.NNZ(), 4)

	// Overwrite keeps the entry count.
	m.Set(0, 0, 4)
	gt.Equal(t, m.At(0, 0), 4.0)
	gt.Equal(t, m.NNZ(), 4)

	// Setting to zero removes the entry.
	m.Set(0, 0, 0)
	gt.Equal(t, m.At(0, 0), 0.0)
	gt.Equal(t, m.NNZ(), 3)
}

func TestSparseNameAccess(t *testing.T) {
	m := newSparse(t)

	v, err := m.AtName("r2", "b")
	gt.NoError(t, err)
	gt.Equal(t, v, 5.0)

	gt.NoError(t, m.SetName("r1", "a", 1))
	gt.Equal(t, m.At(0, 0), 1.0)

	_, err = m.AtName("r9", "b")
	gt.Error(t, err)
}

func TestSparseTranspose(t *testing.T) {
	m := newSparse(t)
	tr := m.Transpose()
	gt.Equal(t, tr.Rows(), 3)
	gt.Equal(t, tr.Cols(), 3)
	gt.Equal(t, tr.At(0, 2), 7.0)
	gt.Equal(t, tr.At(1, 0), 2.0)
	gt.Equal(t, tr.RowNames(), []string{"a", "b", "c"})
	gt.Equal(t, tr.ColNames(), []string{"r1", "r2", "r3"})
}

func TestSparseArithmetic(t *testing.T) {
	m := newSparse(t)

	other, err := matrix.NewSparse(3, 3, []matrix.Entry{
		{Row: 0, Col: 1, Value: -2},
		{Row: 0, Col: 2, Value: 1},
	})
	gt.NoError(t, err)

	sum, err := m.Add(other)
	gt.NoError(t, err)
	// Cancelled entries disappear.
	gt.Equal(t, sum.At(0, 1), 0.0)
	gt.Equal(t, sum.At(0, 2), 1.0)
	gt.Equal(t, sum.NNZ(), 3)

	scaled := m.Scale(2)
	gt.Equal(t, scaled.At(1, 1), 10.0)
	gt.Equal(t, m.At(1, 1), 5.0)

	zeroed := m.Scale(0)
	gt.Equal(t, zeroed.NNZ(), 0)
	gt.Equal(t, zeroed.RowNames(), []string{"r1", "r2", "r3"})
}

func TestSparseSlice(t *testing.T) {
	m := newSparse(t)

	s, err := m.Slice([]int{2, 1}, nil)
	gt.NoError(t, err)
	gt.Equal(t, s.Rows(), 2)
	gt.Equal(t, s.At(0, 0), 7.0)
	gt.Equal(t, s.At(1, 1), 5.0)
	gt.Equal(t, s.RowNames(), []string{"r3", "r2"})

	// Repeated indices duplicate the stored values.
	s, err = m.Slice([]int{1, 1}, []int{1})
	gt.NoError(t, err)
	gt.Equal(t, s.At(0, 0), 5.0)
	gt.Equal(t, s.At(1, 0), 5.0)
	gt.Equal(t, s.NNZ(), 2)

	s, err = m.SliceNames(nil, []string{"b"})
	gt.NoError(t, err)
	gt.Equal(t, s.Cols(), 1)
	gt.Equal(t, s.At(1, 0), 5.0)

	_, err = m.Slice(nil, []int{3})
	gt.Error(t, err)
}

func TestSparseDenseRoundTrip(t *testing.T) {
	m := newSparse(t)

	d := m.ToDense()
	gt.Equal(t, d.At(2, 0), 7.0)
	gt.Equal(t, d.At(2, 2), 0.0)
	gt.Equal(t, d.RowNames(), []string{"r1", "r2", "r3"})

	back := matrix.FromDense(d)
	gt.Equal(t, back.NNZ(), 3)
	gt.Equal(t, back.At(1, 1), 5.0)
	gt.Equal(t, back.ColNames(), []string{"a", "b", "c"})
}

func TestSparseString(t *testing.T) {
	m := newSparse(t)
	gt.String(t, m.String()).Contains("| a b c")

	big, err := matrix.NewSparse(2000, 2000, []matrix.Entry{{Row: 5, Col: 5, Value: 1}})
	gt.NoError(t, err)
	gt.String(t, big.String()).Contains("<Sparse: shape=(2000, 2000), nnz=1>")
}
