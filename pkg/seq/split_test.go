package seq_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/namedseq/pkg/seq"
)

func TestSplitBasic(t *testing.T) {
	x := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	keys := []string{"B", "A", "B", "A", "B", "A"}

	groups, err := seq.Split(x, keys)
	gt.NoError(t, err)
	gt.Equal(t, len(groups), 2)
	gt.Equal(t, groups[0].Key, "A")
	gt.Equal(t, groups[0].Values, []float64{0.2, 0.4, 0.6})
	gt.Equal(t, groups[1].Key, "B")
	gt.Equal(t, groups[1].Values, []float64{0.1, 0.3, 0.5})
}

func TestSplitSkipKeys(t *testing.T) {
	x := []int{1, 2, 3, 4, 5, 6}
	keys := []string{"A", "B", "", "A", "B", ""}

	groups, err := seq.Split(x, keys, seq.SkipKeys(""))
	gt.NoError(t, err)
	gt.Equal(t, len(groups), 2)
	gt.Equal(t, groups[0].Key, "A")
	gt.Equal(t, groups[0].Values, []int{1, 4})
	gt.Equal(t, groups[1].Key, "B")
	gt.Equal(t, groups[1].Values, []int{2, 5})
}

func TestSplitLengthMismatch(t *testing.T) {
	_, err := seq.Split([]int{1, 2, 3}, []string{"A", "B"})
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("lengths")
}

func TestSubsetIndexing(t *testing.T) {
	got, err := seq.Subset([]string{"a", "b", "c", "d"}, []int{3, 0, 2})
	gt.NoError(t, err)
	gt.Equal(t, got, []string{"d", "a", "c"})

	_, err = seq.Subset([]string{"a", "b"}, []int{2})
	gt.Error(t, err)

	_, err = seq.Subset([]string{"a", "b"}, []int{-1})
	gt.Error(t, err)
}

func TestCombineSlices(t *testing.T) {
	gt.Equal(t, seq.Combine([]int{1, 2}, []int{3}, nil, []int{4, 5}), []int{1, 2, 3, 4, 5})
	gt.Equal(t, seq.Combine[int](), []int{})
}
