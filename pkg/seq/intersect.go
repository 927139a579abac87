package seq

// Intersect returns the values present in every sequence, ordered by their
// occurrence in the first sequence and deduplicated. WithDuplicateMethod
// decides whether the first or last occurrence in the first sequence
// determines the order, and WithIncomparables lists values to ignore.
func Intersect[T comparable](seqs [][]T, opts ...Option[T]) []T {
	cfg := newConfig[T](opts)

	if len(seqs) == 0 {
		return []T{}
	}

	first := seqs[0]
	if len(seqs) == 1 {
		present := make(map[T]struct{}, len(first))
		out := make([]T, 0, len(first))
		handle := func(v T) {
			if cfg.incomparable(v) {
				return
			}
			if _, ok := present[v]; ok {
				return
			}
			present[v] = struct{}{}
			out = append(out, v)
		}
		if cfg.method == DuplicateLast {
			for i := len(first) - 1; i >= 0; i-- {
				handle(first[i])
			}
			reverse(out)
		} else {
			for _, v := range first {
				handle(v)
			}
		}
		return out
	}

	// Each entry tracks how many sequences contained the value, and the
	// index of the last sequence that incremented the count. The latter
	// guards against counting a value twice within one sequence.
	type state struct {
		count   int
		lastSeq int
	}
	occurrences := make(map[T]*state, len(first))
	for _, v := range first {
		if cfg.incomparable(v) {
			continue
		}
		if _, ok := occurrences[v]; !ok {
			occurrences[v] = &state{count: 1}
		}
	}

	for i := 1; i < len(seqs); i++ {
		for _, v := range seqs[i] {
			st, ok := occurrences[v]
			if !ok || cfg.incomparable(v) {
				continue
			}
			if st.lastSeq < i {
				st.count++
				st.lastSeq = i
			}
		}
	}

	// Walk the first sequence again to preserve its order.
	out := make([]T, 0, len(occurrences))
	handle := func(v T) {
		st, ok := occurrences[v]
		if !ok {
			return
		}
		if st.count == len(seqs) && st.lastSeq >= 0 {
			out = append(out, v)
			st.lastSeq = -1 // consumed
		}
	}
	if cfg.method == DuplicateLast {
		for i := len(first) - 1; i >= 0; i-- {
			handle(first[i])
		}
		reverse(out)
	} else {
		for _, v := range first {
			handle(v)
		}
	}

	return out
}

// Union returns the first occurrence of every value across all sequences,
// in encounter order. Values listed via WithIncomparables are skipped.
func Union[T comparable](seqs [][]T, opts ...Option[T]) []T {
	cfg := newConfig[T](opts)

	present := make(map[T]struct{})
	out := []T{}
	for _, s := range seqs {
		for _, v := range s {
			if cfg.incomparable(v) {
				continue
			}
			if _, ok := present[v]; ok {
				continue
			}
			present[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

func reverse[T any](x []T) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
