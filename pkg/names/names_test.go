package names_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/namedseq/pkg/names"
)

func TestNamesBasics(t *testing.T) {
	x := names.Of([]int{1, 2, 3, 4})
	gt.Equal(t, x.Values(), []string{"1", "2", "3", "4"})

	gt.Equal(t, x.Map("1"), 0)
	gt.Equal(t, x.Map("4"), 3)
	gt.Equal(t, x.Map("Aaron"), -1)

	empty := names.New()
	gt.Equal(t, empty.Len(), 0)

	sub := x.Slice(1, 3)
	gt.Equal(t, sub.Values(), []string{"2", "3"})

	// Copies do not share state.
	z := x.Copy()
	z.SetAt(0, "Aaron")
	gt.Equal(t, z.Values(), []string{"Aaron", "2", "3", "4"})
	gt.Equal(t, x.Values(), []string{"1", "2", "3", "4"})
	gt.Equal(t, x.Map("1"), 0)
	gt.Equal(t, z.Map("1"), -1)
}

func TestNamesSetAt(t *testing.T) {
	x := names.Of([]int{1, 2, 3, 4})
	gt.Equal(t, x.Map("1"), 0)

	x.SetAt(0, "12345")
	gt.Equal(t, x.Map("1"), -1)
	gt.Equal(t, x.Map("12345"), 0)
}

func TestNamesMutations(t *testing.T) {
	// Insertion discards and rebuilds the reverse index.
	x := names.Of([]int{1, 2, 3, 4})
	gt.Equal(t, x.Map("3"), 2)
	x.Insert(2, "FOO")
	gt.Equal(t, x.Map("1"), 0)
	gt.Equal(t, x.Map("3"), 3)
	gt.Equal(t, x.Values(), []string{"1", "2", "FOO", "3", "4"})

	// Extension keeps first-occurrence mapping for duplicated names.
	x = names.Of([]int{1, 2, 3, 4})
	x.Extend("X", "1", "Y")
	gt.Equal(t, x.Values(), []string{"1", "2", "3", "4", "X", "1", "Y"})
	gt.Equal(t, x.Map("X"), 4)
	gt.Equal(t, x.Map("1"), 0)
	x.Extend("Y", "Z")
	gt.Equal(t, x.Map("Y"), 6)
	gt.Equal(t, x.Map("Z"), 8)

	// Appending a duplicate keeps the original position.
	x = names.Of([]int{1, 2, 3, 4})
	x.Append("1")
	gt.Equal(t, x.At(4), "1")
	gt.Equal(t, x.Map("1"), 0)
	x.Append("5")
	gt.Equal(t, x.Map("5"), 5)
}

func TestNamesCombine(t *testing.T) {
	x1 := names.Of([]int{1, 2, 3, 4})
	x2 := names.Of([]int{5, 6, 7})

	com := x1.Combine(x2)
	gt.Equal(t, com.Values(), []string{"1", "2", "3", "4", "5", "6", "7"})
	gt.Equal(t, x1.Len(), 4)
}

func TestNamesSubset(t *testing.T) {
	x := names.Of([]int{1, 2, 3, 4})

	sub, err := x.Subset([]int{0, 3, 2, 1})
	gt.NoError(t, err)
	gt.Equal(t, sub.Values(), []string{"1", "4", "3", "2"})

	_, err = x.Subset([]int{4})
	gt.Error(t, err)
}

func TestNamesEqual(t *testing.T) {
	gt.True(t, names.New("a", "b").Equal(names.New("a", "b")))
	gt.Equal(t, names.New("a").Equal(names.New("b")), false)
	gt.Equal(t, names.New("a").Equal(nil), false)
}
