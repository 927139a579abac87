package factor

import (
	"cmp"
	"slices"
)

type orderConfig struct {
	decreasing bool
	forceLast  map[string]struct{}
}

// OrderOption configures Order and Sort.
type OrderOption func(*orderConfig)

// Decreasing orders by decreasing level position. Ties keep their original
// relative order.
func Decreasing() OrderOption {
	return func(c *orderConfig) {
		c.decreasing = true
	}
}

// ForceLastLevels pins elements of the given levels after all other
// elements, joining the missing elements in the trailing block.
func ForceLastLevels(levels ...string) OrderOption {
	return func(c *orderConfig) {
		if c.forceLast == nil {
			c.forceLast = make(map[string]struct{}, len(levels))
		}
		for _, lev := range levels {
			c.forceLast[lev] = struct{}{}
		}
	}
}

// Order returns the stable permutation that sorts the factor by level
// position, so level order decides the sort order rather than the level
// strings. Missing elements always come last, together with any levels
// pinned via ForceLastLevels, in their original relative order.
func (f *Factor) Order(opts ...OrderOption) []int {
	var cfg orderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	forcedLevel := make([]bool, len(f.levels))
	for i, lev := range f.levels {
		if _, ok := cfg.forceLast[lev]; ok {
			forcedLevel[i] = true
		}
	}

	collected := make([]int, 0, len(f.codes))
	var forced []int
	for i, c := range f.codes {
		if c < 0 || forcedLevel[c] {
			forced = append(forced, i)
		} else {
			collected = append(collected, i)
		}
	}

	slices.SortStableFunc(collected, func(a, b int) int {
		c := cmp.Compare(f.codes[a], f.codes[b])
		if cfg.decreasing {
			c = -c
		}
		return c
	})

	return append(collected, forced...)
}

// Sort returns a new Factor with its elements permuted into level order.
func (f *Factor) Sort(opts ...OrderOption) *Factor {
	sorted, _ := f.Subset(f.Order(opts...))
	return sorted
}

type dupConfig struct {
	fromLast    bool
	skipMissing bool
	skipLevels  map[string]struct{}
}

// DupOption configures Duplicated and Unique.
type DupOption func(*dupConfig)

// FromLast treats the last occurrence of each level as the original.
func FromLast() DupOption {
	return func(c *dupConfig) {
		c.fromLast = true
	}
}

// SkipMissing prevents missing elements from ever being duplicates of each
// other.
func SkipMissing() DupOption {
	return func(c *dupConfig) {
		c.skipMissing = true
	}
}

// SkipLevels lists levels whose elements are never reported as duplicates.
func SkipLevels(levels ...string) DupOption {
	return func(c *dupConfig) {
		if c.skipLevels == nil {
			c.skipLevels = make(map[string]struct{}, len(levels))
		}
		for _, lev := range levels {
			c.skipLevels[lev] = struct{}{}
		}
	}
}

// Duplicated reports repeated elements by level identity. Missing elements
// compare equal to each other unless SkipMissing is given.
func (f *Factor) Duplicated(opts ...DupOption) []bool {
	var cfg dupConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	skip := make([]bool, len(f.levels))
	for i, lev := range f.levels {
		if _, ok := cfg.skipLevels[lev]; ok {
			skip[i] = true
		}
	}

	out := make([]bool, len(f.codes))
	seen := make([]bool, len(f.levels))
	seenMissing := false

	process := func(i int) {
		c := f.codes[i]
		if c < 0 {
			if cfg.skipMissing {
				return
			}
			if seenMissing {
				out[i] = true
			}
			seenMissing = true
			return
		}
		if skip[c] {
			return
		}
		if seen[c] {
			out[i] = true
			return
		}
		seen[c] = true
	}

	if cfg.fromLast {
		for i := len(f.codes) - 1; i >= 0; i-- {
			process(i)
		}
	} else {
		for i := range f.codes {
			process(i)
		}
	}

	return out
}

// Unique returns a new Factor keeping only the retained occurrence of each
// level, in positional order.
func (f *Factor) Unique(opts ...DupOption) *Factor {
	dup := f.Duplicated(opts...)
	keep := make([]int, 0, len(f.codes))
	for i, d := range dup {
		if !d {
			keep = append(keep, i)
		}
	}
	out, _ := f.Subset(keep)
	return out
}
