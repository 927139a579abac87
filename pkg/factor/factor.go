// Package factor provides a vector of integer codes indexing a list of
// unique string levels, equivalent to R's factor. Encoding repeated strings
// as small integers makes grouping and comparison cheap.
package factor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/namedseq/pkg/table"
)

// missingCode marks an element without a level.
const missingCode = -1

const printLimit = 10

// Factor is an immutable sequence of codes into a set of unique levels.
// A code of -1 marks a missing element.
type Factor struct {
	codes   []int
	levels  []string
	ordered bool
}

type config struct {
	ordered    bool
	levels     []string
	haveLevels bool
	keepOrder  bool
	missing    map[string]struct{}
}

// Option configures New and FromSequence.
type Option func(*config)

// Ordered marks the levels as ordered. This refers to their importance,
// not to their sorting.
func Ordered() Option {
	return func(c *config) {
		c.ordered = true
	}
}

// WithLevels fixes the level set for FromSequence. Values absent from the
// levels become missing.
func WithLevels(levels []string) Option {
	return func(c *config) {
		c.levels = levels
		c.haveLevels = true
	}
}

// KeepOrder keeps automatically determined levels in order of first
// appearance instead of sorting them. Ignored when WithLevels is given.
func KeepOrder() Option {
	return func(c *config) {
		c.keepOrder = true
	}
}

// WithMissing lists sentinel values of the input sequence that are encoded
// as missing.
func WithMissing(vals ...string) Option {
	return func(c *config) {
		if c.missing == nil {
			c.missing = make(map[string]struct{}, len(vals))
		}
		for _, v := range vals {
			c.missing[v] = struct{}{}
		}
	}
}

// New creates a Factor from codes and levels. Codes must be -1 (missing)
// or refer to an entry of levels, and levels must be unique. Negative codes
// other than -1 are normalized to missing.
func New(codes []int, levels []string, opts ...Option) (*Factor, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := checkLevels(levels); err != nil {
		return nil, err
	}

	clean := make([]int, len(codes))
	for i, c := range codes {
		if c < 0 {
			clean[i] = missingCode
			continue
		}
		if c >= len(levels) {
			return nil, goerr.New("all codes should refer to an entry of levels",
				goerr.V("code", c), goerr.V("levels", len(levels)))
		}
		clean[i] = c
	}

	return &Factor{
		codes:   clean,
		levels:  slices.Clone(levels),
		ordered: cfg.ordered,
	}, nil
}

// FromSequence encodes a sequence of strings as a Factor. Levels default to
// the sorted unique values; see WithLevels, KeepOrder and WithMissing.
func FromSequence(values []string, opts ...Option) (*Factor, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var levels []string
	if cfg.haveLevels {
		if err := checkLevels(cfg.levels); err != nil {
			return nil, err
		}
		levels = slices.Clone(cfg.levels)
	} else {
		seen := make(map[string]struct{}, len(values))
		for _, v := range values {
			if _, miss := cfg.missing[v]; miss {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			levels = append(levels, v)
		}
		if !cfg.keepOrder {
			slices.Sort(levels)
		}
	}

	index := make(map[string]int, len(levels))
	for i, lev := range levels {
		index[lev] = i
	}

	codes := make([]int, len(values))
	for i, v := range values {
		codes[i] = missingCode
		if _, miss := cfg.missing[v]; miss {
			continue
		}
		if j, ok := index[v]; ok {
			codes[i] = j
		}
	}

	return &Factor{codes: codes, levels: levels, ordered: cfg.ordered}, nil
}

// Len returns the number of codes.
func (f *Factor) Len() int {
	return len(f.codes)
}

// Codes returns a copy of the integer codes. Missing elements are -1.
func (f *Factor) Codes() []int {
	return slices.Clone(f.codes)
}

// Levels returns a copy of the levels.
func (f *Factor) Levels() []string {
	return slices.Clone(f.levels)
}

// Ordered reports whether the levels are ordered.
func (f *Factor) Ordered() bool {
	return f.ordered
}

// At returns the level of the element at position i, and false when the
// element is missing.
func (f *Factor) At(i int) (string, bool) {
	c := f.codes[i]
	if c < 0 {
		return "", false
	}
	return f.levels[c], true
}

// Strings expands the codes back into their levels, with missing elements
// rendered as empty strings. Defined distinguishes a missing element from
// an empty-string level.
func (f *Factor) Strings() []string {
	out := make([]string, len(f.codes))
	for i, c := range f.codes {
		if c >= 0 {
			out[i] = f.levels[c]
		}
	}
	return out
}

// Defined reports, per element, whether it carries a level.
func (f *Factor) Defined() []bool {
	out := make([]bool, len(f.codes))
	for i, c := range f.codes {
		out[i] = c >= 0
	}
	return out
}

// Subset returns a new Factor keeping only the elements at the given
// positions. Levels are retained as-is.
func (f *Factor) Subset(indices []int) (*Factor, error) {
	codes := make([]int, len(indices))
	for i, j := range indices {
		if j < 0 || j >= len(f.codes) {
			return nil, goerr.New("factor index out of range",
				goerr.V("index", j), goerr.V("length", len(f.codes)))
		}
		codes[i] = f.codes[j]
	}
	return &Factor{codes: codes, levels: slices.Clone(f.levels), ordered: f.ordered}, nil
}

// Replace returns a new Factor where the elements at the given positions
// are taken from value. Each replacement level is matched against the
// receiver's levels; levels absent from the receiver become missing.
func (f *Factor) Replace(indices []int, value *Factor) (*Factor, error) {
	if len(indices) != value.Len() {
		return nil, goerr.New("number of indices should equal the length of the replacement",
			goerr.V("indices", len(indices)), goerr.V("replacement", value.Len()))
	}

	codes := slices.Clone(f.codes)

	if slices.Equal(f.levels, value.levels) {
		for i, j := range indices {
			if j < 0 || j >= len(codes) {
				return nil, goerr.New("factor index out of range", goerr.V("index", j))
			}
			codes[j] = value.codes[i]
		}
		return &Factor{codes: codes, levels: slices.Clone(f.levels), ordered: f.ordered}, nil
	}

	mapping := make([]int, len(value.levels))
	index := make(map[string]int, len(f.levels))
	for i, lev := range f.levels {
		index[lev] = i
	}
	for i, lev := range value.levels {
		mapping[i] = missingCode
		if j, ok := index[lev]; ok {
			mapping[i] = j
		}
	}

	for i, j := range indices {
		if j < 0 || j >= len(codes) {
			return nil, goerr.New("factor index out of range", goerr.V("index", j))
		}
		v := value.codes[i]
		if v >= 0 {
			codes[j] = mapping[v]
		} else {
			codes[j] = missingCode
		}
	}
	return &Factor{codes: codes, levels: slices.Clone(f.levels), ordered: f.ordered}, nil
}

// DropUnusedLevels returns a new Factor keeping only the levels referenced
// by at least one code.
func (f *Factor) DropUnusedLevels() *Factor {
	inUse := make([]bool, len(f.levels))
	for _, c := range f.codes {
		if c >= 0 {
			inUse[c] = true
		}
	}

	reindex := make([]int, len(f.levels))
	var levels []string
	for i, used := range inUse {
		reindex[i] = missingCode
		if used {
			reindex[i] = len(levels)
			levels = append(levels, f.levels[i])
		}
	}

	codes := make([]int, len(f.codes))
	for i, c := range f.codes {
		if c >= 0 {
			codes[i] = reindex[c]
		} else {
			codes[i] = missingCode
		}
	}
	return &Factor{codes: codes, levels: levels, ordered: f.ordered}
}

// SetLevels returns a new Factor with the replacement levels. Codes are
// remapped so that each element keeps its level string; elements whose
// level is absent from the new levels become missing.
func (f *Factor) SetLevels(levels []string) (*Factor, error) {
	if err := checkLevels(levels); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(levels))
	for i, lev := range levels {
		index[lev] = i
	}

	mapping := make([]int, len(f.levels))
	for i, lev := range f.levels {
		mapping[i] = missingCode
		if j, ok := index[lev]; ok {
			mapping[i] = j
		}
	}

	codes := make([]int, len(f.codes))
	for i, c := range f.codes {
		if c >= 0 {
			codes[i] = mapping[c]
		} else {
			codes[i] = missingCode
		}
	}
	return &Factor{codes: codes, levels: slices.Clone(levels), ordered: f.ordered}, nil
}

// RelevelFirst returns a new Factor whose levels are permuted so that the
// given level comes first, preserving the order of all other levels. The
// level must already be present.
func (f *Factor) RelevelFirst(level string) (*Factor, error) {
	if !slices.Contains(f.levels, level) {
		return nil, goerr.New("level should already be present",
			goerr.V("level", level))
	}

	levels := make([]string, 0, len(f.levels))
	levels = append(levels, level)
	for _, lev := range f.levels {
		if lev != level {
			levels = append(levels, lev)
		}
	}
	return f.SetLevels(levels)
}

// String pretty-prints the factor with truncated value and level lists.
func (f *Factor) String() string {
	values := make([]string, len(f.codes))
	for i, c := range f.codes {
		if c >= 0 {
			values[i] = f.levels[c]
		} else {
			values[i] = "<NA>"
		}
	}

	var sb strings.Builder
	plural := ""
	if len(f.levels) != 1 {
		plural = "s"
	}
	fmt.Fprintf(&sb, "Factor of length %d with %d level%s\n", len(f.codes), len(f.levels), plural)
	fmt.Fprintf(&sb, "values: %s\n", table.FormatList(values, printLimit))
	fmt.Fprintf(&sb, "levels: %s\n", table.FormatList(f.levels, printLimit))
	fmt.Fprintf(&sb, "ordered: %v", f.ordered)
	return sb.String()
}

func checkLevels(levels []string) error {
	seen := make(map[string]struct{}, len(levels))
	for _, lev := range levels {
		if _, ok := seen[lev]; ok {
			return goerr.New("all levels should be unique", goerr.V("level", lev))
		}
		seen[lev] = struct{}{}
	}
	return nil
}
