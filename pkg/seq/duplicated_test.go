package seq_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/namedseq/pkg/seq"
)

func TestDuplicated(t *testing.T) {
	gt.Equal(t,
		seq.Duplicated([]int{1, 2, 1, 2, 3, 2}),
		[]bool{false, false, true, true, false, true})

	gt.Equal(t,
		seq.Duplicated([]int{1, 2, 1, 2, 3, 2}, seq.WithFromLast[int]()),
		[]bool{true, true, false, true, false, false})

	gt.Equal(t,
		seq.Duplicated([]int{1, 2, 0, 0, 3, 2, 3}),
		[]bool{false, false, false, true, false, true, true})

	gt.Equal(t,
		seq.Duplicated([]int{1, 2, 0, 0, 3, 2, 3}, seq.WithIncomparables(0)),
		[]bool{false, false, false, false, false, true, true})
}

func TestUnique(t *testing.T) {
	gt.Equal(t, seq.Unique([]int{1, 2, 1, 2, 3, 2}), []int{1, 2, 3})
	gt.Equal(t, seq.Unique([]int{1, 2, 1, 2, 3, 2}, seq.WithFromLast[int]()), []int{1, 3, 2})
	gt.Equal(t, seq.Unique([]int{1, 2, 0, 0, 3, 2}), []int{1, 2, 0, 3})
	gt.Equal(t,
		seq.Unique([]int{1, 2, 0, 0, 3, 2}, seq.WithIncomparables(0)),
		[]int{1, 2, 0, 0, 3})
}
