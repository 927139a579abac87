package factor

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/namedseq/pkg/seq"
)

type matchConfig struct {
	method      seq.DuplicateMethod
	failMissing bool
}

// MatchOption configures Match.
type MatchOption func(*matchConfig)

// WithDuplicateMethod selects which occurrence of a duplicated target
// element wins.
func WithDuplicateMethod(m seq.DuplicateMethod) MatchOption {
	return func(c *matchConfig) {
		c.method = m
	}
}

// WithFailMissing turns unmatched elements into an error instead of -1.
func WithFailMissing() MatchOption {
	return func(c *matchConfig) {
		c.failMissing = true
	}
}

// Match reports the position in targets of each element of x. It produces
// the same result as seq.Match over the expanded strings, but works on the
// level sets instead of hashing every element. Missing elements of x, and
// elements whose level is absent from targets, are reported as -1.
func Match(x, targets *Factor, opts ...MatchOption) ([]int, error) {
	var cfg matchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Position of the winning occurrence of each target level.
	targetPos := make([]int, len(targets.levels))
	for i := range targetPos {
		targetPos[i] = -1
	}
	for i, c := range targets.codes {
		if c < 0 {
			continue
		}
		if cfg.method == seq.DuplicateLast || targetPos[c] < 0 {
			targetPos[c] = i
		}
	}

	byLevel := make(map[string]int, len(targets.levels))
	for i, lev := range targets.levels {
		if targetPos[i] >= 0 {
			byLevel[lev] = targetPos[i]
		}
	}

	// Resolve each level of x once, then expand through the codes.
	xPos := make([]int, len(x.levels))
	for i, lev := range x.levels {
		xPos[i] = -1
		if p, ok := byLevel[lev]; ok {
			xPos[i] = p
		}
	}

	indices := make([]int, len(x.codes))
	for i, c := range x.codes {
		pos := -1
		if c >= 0 {
			pos = xPos[c]
		}
		if pos < 0 && cfg.failMissing {
			lev, _ := x.At(i)
			return nil, goerr.New("cannot find value in targets",
				goerr.V("value", lev), goerr.V("position", i))
		}
		indices[i] = pos
	}
	return indices, nil
}
