package seq

import (
	"github.com/m-mizutani/goerr/v2"
)

// Subset returns a new slice holding x[i] for each index in indices. An
// out-of-range index is an error carrying the offending index.
func Subset[T any](x []T, indices []int) ([]T, error) {
	out := make([]T, len(indices))
	for i, j := range indices {
		if j < 0 || j >= len(x) {
			return nil, goerr.New("subset index out of range",
				goerr.V("index", j), goerr.V("length", len(x)))
		}
		out[i] = x[j]
	}
	return out, nil
}

// Combine concatenates all sequences into a single new slice.
func Combine[T any](seqs ...[]T) []T {
	total := 0
	for _, s := range seqs {
		total += len(s)
	}
	out := make([]T, 0, total)
	for _, s := range seqs {
		out = append(out, s...)
	}
	return out
}
