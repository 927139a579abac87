// Package namedlist provides a generic list whose elements may carry a
// parallel set of names, allowing access by position or by name.
package namedlist

import (
	"fmt"
	"slices"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/namedseq/pkg/names"
)

// List holds values with an optional parallel names.Names. When names are
// present they always have the same length as the values.
type List[T any] struct {
	values []T
	names  *names.Names
}

// Option configures New.
type Option func(*listConfig)

type listConfig struct {
	names *names.Names
}

// WithNames attaches names to the new list. The names are copied and must
// match the number of values.
func WithNames(n *names.Names) Option {
	return func(c *listConfig) {
		c.names = n
	}
}

// New creates a list from the given values.
func New[T any](values []T, opts ...Option) (*List[T], error) {
	var cfg listConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &List[T]{values: slices.Clone(values)}
	if cfg.names != nil {
		if cfg.names.Len() != len(values) {
			return nil, goerr.New("length of names should equal the length of values",
				goerr.V("names", cfg.names.Len()), goerr.V("values", len(values)))
		}
		l.names = cfg.names.Copy()
	}
	return l, nil
}

// Strings creates a string list by formatting arbitrary values, mirroring
// the coercing behavior of a string list.
func Strings[T any](values []T) *List[string] {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return &List[string]{values: out}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.values)
}

// At returns the value at position i.
func (l *List[T]) At(i int) T {
	return l.values[i]
}

// SetAt replaces the value at position i.
func (l *List[T]) SetAt(i int, v T) {
	l.values[i] = v
}

// Values returns a copy of the values.
func (l *List[T]) Values() []T {
	return slices.Clone(l.values)
}

// HasNames reports whether the list carries names.
func (l *List[T]) HasNames() bool {
	return l.names != nil
}

// Names returns a copy of the names, or nil when the list is unnamed.
func (l *List[T]) Names() *names.Names {
	if l.names == nil {
		return nil
	}
	return l.names.Copy()
}

// SetNames replaces the names in place. Pass nil to drop them.
func (l *List[T]) SetNames(n *names.Names) error {
	if n == nil {
		l.names = nil
		return nil
	}
	if n.Len() != len(l.values) {
		return goerr.New("length of names should equal the length of values",
			goerr.V("names", n.Len()), goerr.V("values", len(l.values)))
	}
	l.names = n.Copy()
	return nil
}

// ByName returns the value carrying the given name. When several elements
// share the name, the first occurrence is returned.
func (l *List[T]) ByName(name string) (T, bool) {
	var zero T
	if l.names == nil {
		return zero, false
	}
	i := l.names.Map(name)
	if i < 0 {
		return zero, false
	}
	return l.values[i], true
}

// SetByName replaces the first value carrying the given name. An unknown
// name appends a new named element instead.
func (l *List[T]) SetByName(name string, v T) {
	l.ensureNames()
	if i := l.names.Map(name); i >= 0 {
		l.values[i] = v
		return
	}
	l.names.Append(name)
	l.values = append(l.values, v)
}

// Append adds a value to the end. When the list is named, the new element
// gets an empty name.
func (l *List[T]) Append(v T) {
	if l.names != nil {
		l.names.Append("")
	}
	l.values = append(l.values, v)
}

// AppendNamed adds a named value to the end.
func (l *List[T]) AppendNamed(name string, v T) {
	l.ensureNames()
	l.names.Append(name)
	l.values = append(l.values, v)
}

// Extend appends all elements of other. Names are transferred when other
// carries them; otherwise appended elements get empty names if the
// receiver is named.
func (l *List[T]) Extend(other *List[T]) {
	switch {
	case other.names != nil:
		l.ensureNames()
		l.names.Extend(other.names.Values()...)
	case l.names != nil:
		for range other.values {
			l.names.Append("")
		}
	}
	l.values = append(l.values, other.values...)
}

// Slice returns a new list holding the half-open range [from, to); names
// follow the values.
func (l *List[T]) Slice(from, to int) *List[T] {
	out := &List[T]{values: slices.Clone(l.values[from:to])}
	if l.names != nil {
		out.names = l.names.Slice(from, to)
	}
	return out
}

// Subset returns a new list holding the values at the given positions;
// names follow the values.
func (l *List[T]) Subset(indices []int) (*List[T], error) {
	values := make([]T, len(indices))
	for i, j := range indices {
		if j < 0 || j >= len(l.values) {
			return nil, goerr.New("list index out of range",
				goerr.V("index", j), goerr.V("length", len(l.values)))
		}
		values[i] = l.values[j]
	}
	out := &List[T]{values: values}
	if l.names != nil {
		sub, err := l.names.Subset(indices)
		if err != nil {
			return nil, err
		}
		out.names = sub
	}
	return out, nil
}

// Copy returns a copy that shares no state with the receiver.
func (l *List[T]) Copy() *List[T] {
	out := &List[T]{values: slices.Clone(l.values)}
	if l.names != nil {
		out.names = l.names.Copy()
	}
	return out
}

func (l *List[T]) ensureNames() {
	if l.names != nil {
		return
	}
	blank := make([]string, len(l.values))
	l.names = names.New(blank...)
}
