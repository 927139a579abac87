package seq

import (
	"github.com/m-mizutani/goerr/v2"
)

// MatchIndex is a reusable hash index for matching values against a fixed
// set of targets. Build it once with NewMatchIndex when the same targets are
// matched repeatedly.
type MatchIndex[T comparable] struct {
	positions   map[T]int
	failMissing bool
	skip        map[T]struct{}
}

// NewMatchIndex builds an index over targets. WithDuplicateMethod decides
// which position is kept for duplicated targets, WithIncomparables excludes
// values from the index, and WithFailMissing is carried over to Match.
func NewMatchIndex[T comparable](targets []T, opts ...Option[T]) *MatchIndex[T] {
	cfg := newConfig[T](opts)

	positions := make(map[T]int, len(targets))
	for i, v := range targets {
		if cfg.incomparable(v) {
			continue
		}
		if cfg.method == DuplicateLast {
			positions[v] = i
		} else if _, ok := positions[v]; !ok {
			positions[v] = i
		}
	}

	return &MatchIndex[T]{
		positions:   positions,
		failMissing: cfg.failMissing,
		skip:        cfg.skip,
	}
}

// Match reports the position of each element of x within the indexed
// targets. Elements that are absent or incomparable are reported as -1,
// unless the index was built with WithFailMissing, in which case they
// produce an error naming the value.
func (m *MatchIndex[T]) Match(x []T) ([]int, error) {
	indices := make([]int, len(x))
	for i, v := range x {
		pos := -1
		if _, skip := m.skip[v]; !skip {
			if p, ok := m.positions[v]; ok {
				pos = p
			}
		}
		if pos < 0 && m.failMissing {
			return nil, goerr.New("cannot find value in targets",
				goerr.V("value", v), goerr.V("position", i))
		}
		indices[i] = pos
	}
	return indices, nil
}

// Match finds the position of each element of x in targets. It is
// equivalent to NewMatchIndex(targets, opts...).Match(x).
func Match[T comparable](x []T, targets []T, opts ...Option[T]) ([]int, error) {
	return NewMatchIndex(targets, opts...).Match(x)
}
