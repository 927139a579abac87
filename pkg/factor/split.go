package factor

import (
	"github.com/m-mizutani/goerr/v2"
)

// Group is one bucket produced by Split, keyed by its level.
type Group[T any] struct {
	Level  string
	Values []T
}

type splitConfig struct {
	drop       bool
	skipLevels map[string]struct{}
}

// SplitOption configures Split.
type SplitOption func(*splitConfig)

// Drop removes unused levels before grouping, so the result has no empty
// groups.
func Drop() SplitOption {
	return func(c *splitConfig) {
		c.drop = true
	}
}

// SplitSkipLevels removes the listed levels from the result.
func SplitSkipLevels(levels ...string) SplitOption {
	return func(c *splitConfig) {
		if c.skipLevels == nil {
			c.skipLevels = make(map[string]struct{}, len(levels))
		}
		for _, lev := range levels {
			c.skipLevels[lev] = struct{}{}
		}
	}
}

// Split divides x into one group per level of f, in level order rather
// than sorted key order. Missing elements of f belong to no group. The two
// arguments must have the same length.
func Split[T any](x []T, f *Factor, opts ...SplitOption) ([]Group[T], error) {
	var cfg splitConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(x) != f.Len() {
		return nil, goerr.New("lengths of values and factor should be the same",
			goerr.V("values", len(x)), goerr.V("factor", f.Len()))
	}

	if cfg.drop {
		f = f.DropUnusedLevels()
	}

	groups := make([]Group[T], len(f.levels))
	for i, lev := range f.levels {
		groups[i].Level = lev
	}
	for i, c := range f.codes {
		if c < 0 {
			continue
		}
		groups[c].Values = append(groups[c].Values, x[i])
	}

	if cfg.skipLevels == nil {
		return groups, nil
	}
	kept := groups[:0]
	for _, g := range groups {
		if _, skip := cfg.skipLevels[g.Level]; !skip {
			kept = append(kept, g)
		}
	}
	return kept, nil
}
