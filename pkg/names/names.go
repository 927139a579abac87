// Package names provides an ordered list of strings used to decorate
// sequences, so that callers can address elements by name instead of
// position.
package names

import (
	"fmt"
	"slices"

	"github.com/m-mizutani/goerr/v2"
)

// Names is a list of names. Lookup by name is backed by a reverse index
// that is built lazily on the first call to Map and kept consistent across
// appends; the first occurrence of a duplicated name always wins.
type Names struct {
	values  []string
	reverse map[string]int
}

// New creates a Names from the given strings.
func New(values ...string) *Names {
	return &Names{values: slices.Clone(values)}
}

// Of creates a Names by formatting arbitrary values as strings.
func Of[T any](values []T) *Names {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return &Names{values: out}
}

// Len returns the number of names.
func (n *Names) Len() int {
	return len(n.values)
}

// At returns the name at position i.
func (n *Names) At(i int) string {
	return n.values[i]
}

// SetAt replaces the name at position i.
func (n *Names) SetAt(i int, name string) {
	n.reverse = nil
	n.values[i] = name
}

// Map returns the position of the first occurrence of name, or -1 when the
// name is not present.
func (n *Names) Map(name string) int {
	if n.reverse == nil {
		n.reverse = make(map[string]int, len(n.values))
		for i, v := range n.values {
			if _, ok := n.reverse[v]; !ok {
				n.reverse[v] = i
			}
		}
	}
	if i, ok := n.reverse[name]; ok {
		return i
	}
	return -1
}

// Append adds a name to the end.
func (n *Names) Append(name string) {
	if n.reverse != nil {
		if _, ok := n.reverse[name]; !ok {
			n.reverse[name] = len(n.values)
		}
	}
	n.values = append(n.values, name)
}

// Insert inserts a name before position i.
func (n *Names) Insert(i int, name string) {
	n.reverse = nil
	n.values = slices.Insert(n.values, i, name)
}

// Extend appends all given names.
func (n *Names) Extend(more ...string) {
	for _, name := range more {
		n.Append(name)
	}
}

// Slice returns a new Names holding the half-open range [from, to).
func (n *Names) Slice(from, to int) *Names {
	return New(n.values[from:to]...)
}

// Subset returns a new Names holding the names at the given positions.
func (n *Names) Subset(indices []int) (*Names, error) {
	out := make([]string, len(indices))
	for i, j := range indices {
		if j < 0 || j >= len(n.values) {
			return nil, goerr.New("name index out of range",
				goerr.V("index", j), goerr.V("length", len(n.values)))
		}
		out[i] = n.values[j]
	}
	return &Names{values: out}, nil
}

// Combine returns a new Names holding the contents of the receiver followed
// by other.
func (n *Names) Combine(other *Names) *Names {
	out := n.Copy()
	out.Extend(other.values...)
	return out
}

// Copy returns a copy that shares no state with the receiver.
func (n *Names) Copy() *Names {
	return New(n.values...)
}

// Values returns a copy of the underlying strings.
func (n *Names) Values() []string {
	return slices.Clone(n.values)
}

// Equal reports whether both hold the same names in the same order.
func (n *Names) Equal(other *Names) bool {
	if other == nil {
		return false
	}
	return slices.Equal(n.values, other.values)
}

func (n *Names) String() string {
	return fmt.Sprintf("%v", n.values)
}
