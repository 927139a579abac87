package seq

// DuplicateMethod controls which occurrence of a duplicated value is reported.
type DuplicateMethod int

const (
	// DuplicateFirst reports the first occurrence of each duplicated value.
	DuplicateFirst DuplicateMethod = iota
	// DuplicateLast reports the last occurrence of each duplicated value.
	DuplicateLast
)

type config[T comparable] struct {
	method      DuplicateMethod
	failMissing bool
	fromLast    bool
	skip        map[T]struct{}
}

// Option configures the hash-based sequence operations (Match, Duplicated,
// Unique, Intersect). Not every option applies to every operation; the
// function documentation states which are honored.
type Option[T comparable] func(*config[T])

// WithDuplicateMethod selects which occurrence of a duplicated target wins.
func WithDuplicateMethod[T comparable](m DuplicateMethod) Option[T] {
	return func(c *config[T]) {
		c.method = m
	}
}

// WithFailMissing makes Match return an error when a value cannot be found
// in the targets, instead of reporting -1.
func WithFailMissing[T comparable]() Option[T] {
	return func(c *config[T]) {
		c.failMissing = true
	}
}

// WithFromLast makes Duplicated treat the last occurrence of each value as
// the original, reporting earlier occurrences as duplicates.
func WithFromLast[T comparable]() Option[T] {
	return func(c *config[T]) {
		c.fromLast = true
	}
}

// WithIncomparables lists values that never participate in comparisons.
// Match never indexes or resolves them, Duplicated never reports them as
// duplicates, and Intersect ignores them entirely.
func WithIncomparables[T comparable](vals ...T) Option[T] {
	return func(c *config[T]) {
		if c.skip == nil {
			c.skip = make(map[T]struct{}, len(vals))
		}
		for _, v := range vals {
			c.skip[v] = struct{}{}
		}
	}
}

func newConfig[T comparable](opts []Option[T]) config[T] {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c *config[T]) incomparable(v T) bool {
	if c.skip == nil {
		return false
	}
	_, ok := c.skip[v]
	return ok
}
