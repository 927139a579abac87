package seq

import (
	"cmp"
	"slices"

	"github.com/m-mizutani/goerr/v2"
)

// Group is one bucket produced by Split.
type Group[K cmp.Ordered, T any] struct {
	Key    K
	Values []T
}

type splitConfig[K comparable] struct {
	skip map[K]struct{}
}

// SplitOption configures Split.
type SplitOption[K comparable] func(*splitConfig[K])

// SkipKeys lists group keys whose elements are dropped from the result.
func SkipKeys[K comparable](keys ...K) SplitOption[K] {
	return func(c *splitConfig[K]) {
		if c.skip == nil {
			c.skip = make(map[K]struct{}, len(keys))
		}
		for _, k := range keys {
			c.skip[k] = struct{}{}
		}
	}
}

// Split divides x into groups according to the parallel key slice, with
// groups ordered by sorted unique key. The two slices must have the same
// length.
func Split[T any, K cmp.Ordered](x []T, keys []K, opts ...SplitOption[K]) ([]Group[K, T], error) {
	var cfg splitConfig[K]
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(x) != len(keys) {
		return nil, goerr.New("lengths of values and keys should be the same",
			goerr.V("values", len(x)), goerr.V("keys", len(keys)))
	}

	positions := make(map[K]int)
	levels := []K{}
	for _, k := range keys {
		if _, skip := cfg.skip[k]; skip {
			continue
		}
		if _, ok := positions[k]; !ok {
			positions[k] = 0
			levels = append(levels, k)
		}
	}
	slices.Sort(levels)
	for i, k := range levels {
		positions[k] = i
	}

	out := make([]Group[K, T], len(levels))
	for i, k := range levels {
		out[i].Key = k
	}
	for i, k := range keys {
		pos, ok := positions[k]
		if !ok {
			continue
		}
		out[pos].Values = append(out[pos].Values, x[i])
	}

	return out, nil
}
