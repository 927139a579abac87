package seq

// Duplicated reports, for each element of x, whether an equal value occurs
// earlier in the sequence. With WithFromLast the scan runs backwards, so
// only the last occurrence of each value is reported as original. Values
// listed via WithIncomparables are never duplicates.
func Duplicated[T comparable](x []T, opts ...Option[T]) []bool {
	cfg := newConfig[T](opts)

	out := make([]bool, len(x))
	seen := make(map[T]struct{}, len(x))

	process := func(i int) {
		v := x[i]
		if cfg.incomparable(v) {
			return
		}
		if _, ok := seen[v]; ok {
			out[i] = true
			return
		}
		seen[v] = struct{}{}
	}

	if cfg.fromLast {
		for i := len(x) - 1; i >= 0; i-- {
			process(i)
		}
	} else {
		for i := range x {
			process(i)
		}
	}

	return out
}

// Unique returns the elements of x with duplicates removed, keeping the
// occurrence selected by the Duplicated rules. The surviving elements stay
// in their original positional order.
func Unique[T comparable](x []T, opts ...Option[T]) []T {
	dup := Duplicated(x, opts...)
	out := make([]T, 0, len(x))
	for i, d := range dup {
		if !d {
			out = append(out, x[i])
		}
	}
	return out
}
