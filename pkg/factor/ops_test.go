package factor_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/namedseq/pkg/factor"
	"github.com/m-mizutani/namedseq/pkg/seq"
)

func TestOrder(t *testing.T) {
	f, err := factor.FromSequence([]string{"D", "B", "C", "A"})
	gt.NoError(t, err)
	gt.Equal(t, f.Order(), []int{3, 1, 2, 0})
	gt.Equal(t, f.Order(factor.Decreasing()), []int{0, 2, 1, 3})

	// Level order decides the sort order, not the strings.
	f, err = factor.FromSequence([]string{"D", "B", "C", "A"},
		factor.WithLevels([]string{"D", "C", "B", "A"}))
	gt.NoError(t, err)
	gt.Equal(t, f.Order(), []int{0, 2, 1, 3})

	// Missing elements go last; forced levels join them in positional order.
	f, err = factor.FromSequence([]string{"D", "B", "NA", "C", "A"}, factor.WithMissing("NA"))
	gt.NoError(t, err)
	gt.Equal(t, f.Order(), []int{4, 1, 3, 0, 2})
	gt.Equal(t, f.Order(factor.ForceLastLevels("A")), []int{1, 3, 0, 2, 4})
}

func TestSort(t *testing.T) {
	f, err := factor.FromSequence([]string{"C", "A", "B"})
	gt.NoError(t, err)
	gt.Equal(t, f.Sort().Strings(), []string{"A", "B", "C"})
	gt.Equal(t, f.Sort(factor.Decreasing()).Strings(), []string{"C", "B", "A"})
}

func TestDuplicated(t *testing.T) {
	f, err := factor.FromSequence([]string{"1", "2", "1", "2", "3", "2"})
	gt.NoError(t, err)
	gt.Equal(t, f.Duplicated(), []bool{false, false, true, true, false, true})
	gt.Equal(t, f.Duplicated(factor.FromLast()), []bool{true, true, false, true, false, false})

	// Missing elements compare equal to each other by default.
	f, err = factor.FromSequence([]string{"1", "2", "NA", "NA", "3", "2", "3"},
		factor.WithMissing("NA"))
	gt.NoError(t, err)
	gt.Equal(t, f.Duplicated(), []bool{false, false, false, true, false, true, true})
	gt.Equal(t, f.Duplicated(factor.SkipMissing()),
		[]bool{false, false, false, false, false, true, true})

	gt.Equal(t, f.Duplicated(factor.SkipLevels("2")),
		[]bool{false, false, false, true, false, false, true})
}

func TestUnique(t *testing.T) {
	f, err := factor.FromSequence([]string{"1", "2", "1", "2", "3", "2"})
	gt.NoError(t, err)
	gt.Equal(t, f.Unique().Strings(), []string{"1", "2", "3"})
	gt.Equal(t, f.Unique(factor.FromLast()).Strings(), []string{"1", "3", "2"})
}

func TestMatch(t *testing.T) {
	x, err := factor.FromSequence([]string{"A", "C", "B", "D", "A", "A", "C", "D", "B"})
	gt.NoError(t, err)
	targets, err := factor.FromSequence([]string{"D", "C", "B", "A"})
	gt.NoError(t, err)

	mm, err := factor.Match(x, targets)
	gt.NoError(t, err)
	gt.Equal(t, mm, []int{3, 1, 2, 0, 3, 3, 1, 0, 2})

	// Same result as hashing the expanded strings.
	plain, err := seq.Match(x.Strings(), targets.Strings())
	gt.NoError(t, err)
	gt.Equal(t, mm, plain)
}

func TestMatchDuplicates(t *testing.T) {
	x, err := factor.FromSequence([]string{"5", "1", "2", "3", "5", "6", "7", "7", "2", "1"})
	gt.NoError(t, err)
	targets, err := factor.FromSequence([]string{"1", "2", "3", "3", "5", "6", "1", "7", "6"})
	gt.NoError(t, err)

	mm, err := factor.Match(x, targets)
	gt.NoError(t, err)
	gt.Equal(t, mm, []int{4, 0, 1, 2, 4, 5, 7, 7, 1, 0})

	mm, err = factor.Match(x, targets, factor.WithDuplicateMethod(seq.DuplicateLast))
	gt.NoError(t, err)
	gt.Equal(t, mm, []int{4, 6, 1, 3, 4, 8, 7, 7, 1, 6})
}

func TestMatchMissing(t *testing.T) {
	x, err := factor.FromSequence([]string{"A", "E", "B", "D", "E"})
	gt.NoError(t, err)
	targets, err := factor.FromSequence([]string{"D", "C", "B", "A"})
	gt.NoError(t, err)

	mm, err := factor.Match(x, targets)
	gt.NoError(t, err)
	gt.Equal(t, mm, []int{3, -1, 2, 0, -1})

	_, err = factor.Match(x, targets, factor.WithFailMissing())
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("cannot find")

	// Missing elements of x never match.
	x, err = factor.FromSequence([]string{"A", "NA", "B"}, factor.WithMissing("NA"))
	gt.NoError(t, err)
	mm, err = factor.Match(x, targets)
	gt.NoError(t, err)
	gt.Equal(t, mm, []int{3, -1, 2})
}

func TestSplit(t *testing.T) {
	x := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	f, err := factor.FromSequence([]string{"B", "D", "B", "D", "B", "D"},
		factor.WithLevels([]string{"E", "D", "C", "B", "A"}))
	gt.NoError(t, err)

	// Without dropping, all levels appear, empty groups included.
	groups, err := factor.Split(x, f)
	gt.NoError(t, err)
	gt.Equal(t, len(groups), 5)
	gt.Equal(t, groups[0].Level, "E")
	gt.Equal(t, len(groups[0].Values), 0)
	gt.Equal(t, groups[1].Level, "D")
	gt.Equal(t, groups[1].Values, []float64{0.2, 0.4, 0.6})
	gt.Equal(t, groups[3].Level, "B")
	gt.Equal(t, groups[3].Values, []float64{0.1, 0.3, 0.5})

	// Dropping unused levels keeps level order.
	groups, err = factor.Split(x, f, factor.Drop())
	gt.NoError(t, err)
	gt.Equal(t, len(groups), 2)
	gt.Equal(t, groups[0].Level, "D")
	gt.Equal(t, groups[1].Level, "B")
}

func TestSplitMissingAndSkip(t *testing.T) {
	x := []int{1, 2, 3, 4, 5, 6}
	f, err := factor.FromSequence([]string{"A", "B", "NA", "A", "B", "NA"},
		factor.WithMissing("NA"))
	gt.NoError(t, err)

	groups, err := factor.Split(x, f)
	gt.NoError(t, err)
	gt.Equal(t, len(groups), 2)
	gt.Equal(t, groups[0].Values, []int{1, 4})
	gt.Equal(t, groups[1].Values, []int{2, 5})

	groups, err = factor.Split(x, f, factor.SplitSkipLevels("A"))
	gt.NoError(t, err)
	gt.Equal(t, len(groups), 1)
	gt.Equal(t, groups[0].Level, "B")

	_, err = factor.Split([]int{1}, f)
	gt.Error(t, err)
}
