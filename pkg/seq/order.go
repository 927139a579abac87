package seq

import (
	"cmp"
	"slices"
)

type orderConfig[T comparable] struct {
	decreasing bool
	forceLast  map[T]struct{}
}

// OrderOption configures Order and Sort.
type OrderOption[T cmp.Ordered] func(*orderConfig[T])

// Decreasing orders by decreasing value. Ties still keep their original
// relative order.
func Decreasing[T cmp.Ordered]() OrderOption[T] {
	return func(c *orderConfig[T]) {
		c.decreasing = true
	}
}

// ForceLast lists values that are placed after all other values, in their
// original relative order, regardless of direction.
func ForceLast[T cmp.Ordered](vals ...T) OrderOption[T] {
	return func(c *orderConfig[T]) {
		if c.forceLast == nil {
			c.forceLast = make(map[T]struct{}, len(vals))
		}
		for _, v := range vals {
			c.forceLast[v] = struct{}{}
		}
	}
}

// Order returns the stable permutation that sorts x, i.e. Subset(x, Order(x))
// is sorted. Values listed via ForceLast are appended after the comparable
// block without reordering among themselves.
func Order[T cmp.Ordered](x []T, opts ...OrderOption[T]) []int {
	var cfg orderConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	collected := make([]int, 0, len(x))
	var forced []int
	for i, v := range x {
		if _, ok := cfg.forceLast[v]; ok {
			forced = append(forced, i)
		} else {
			collected = append(collected, i)
		}
	}

	slices.SortStableFunc(collected, func(a, b int) int {
		c := cmp.Compare(x[a], x[b])
		if cfg.decreasing {
			c = -c
		}
		return c
	})

	return append(collected, forced...)
}

// Sort returns a sorted copy of x, using the same rules as Order.
func Sort[T cmp.Ordered](x []T, opts ...OrderOption[T]) []T {
	perm := Order(x, opts...)
	out := make([]T, len(x))
	for i, j := range perm {
		out[i] = x[j]
	}
	return out
}
