// Builder type, constructor, and read-only accessors.

package arraybuilder

import (
	"github.com/arraykit/arraykit/fixedvec"
)

// Builder accumulates up to Cap() pushed items and converts them into a
// slice of exactly Cap() elements via one of the Build* policies.
//
// State model: a Builder is always in one of two observable shapes —
// accumulating (0 ≤ Len() ≤ Cap(), still pushable) or, right after a
// successful build, fresh-empty (indistinguishable from a new Builder, so
// reuse is always safe). There is no distinct "full" state: pushing into a
// full Builder is legal and routes to the excess counter.
//
// Invariants:
//   - Len() ≤ Cap() always; Excess() > 0 implies BuildExact can never succeed
//     until Reset;
//   - a value is owned by exactly one place at a time: the Builder's store,
//     the slice a successful build returned, or the caller (excess items are
//     never stored — they are discarded at the push site);
//   - failed builds mutate nothing.
type Builder[T any] struct {
	inner  *fixedvec.Vec[T]
	excess int

	// clone produces the copy stored for each padded slot and for Clone;
	// nil means plain assignment copy.
	clone func(T) T

	// release observes every value the Builder discards (excess pushes,
	// Reset); nil means discard silently.
	release func(T)
}

// New returns an empty Builder that targets slices of exactly n elements.
// Panics if n is negative (constructor validation; build-time conditions
// surface as errors, never panics). n == 0 is legal: BuildExact on a fresh
// zero-capacity Builder succeeds with an empty slice.
// Complexity: O(1) time, O(n) space.
func New[T any](n int, opts ...Option[T]) *Builder[T] {
	if n < 0 {
		panic("arraybuilder: New(negative capacity)")
	}
	b := &Builder[T]{inner: fixedvec.New[T](n)}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Len reports how many pushed items are currently stored, in [0, Cap()].
// Complexity: O(1).
func (b *Builder[T]) Len() int { return b.inner.Len() }

// Cap reports the target length every successful build produces.
// Complexity: O(1).
func (b *Builder[T]) Cap() int { return b.inner.Cap() }

// Excess reports how many pushes arrived after the store was already full.
// Those items were discarded at the push site and are not recoverable.
// Complexity: O(1).
func (b *Builder[T]) Excess() int { return b.excess }

// Remaining reports how many more pushes will be stored rather than counted
// as excess.
// Complexity: O(1).
func (b *Builder[T]) Remaining() int { return b.inner.Remaining() }

// Full reports whether the store holds Cap() items (excess may still be 0).
// Complexity: O(1).
func (b *Builder[T]) Full() bool { return b.inner.Full() }

// Clone returns an independent Builder with the same capacity, options,
// excess count, and a copy of every stored item (deep copies when a clone
// function is configured). Mutating either Builder never affects the other.
// Complexity: O(Len) time, O(Cap) space.
func (b *Builder[T]) Clone() *Builder[T] {
	c := &Builder[T]{
		inner:   fixedvec.New[T](b.inner.Cap()),
		excess:  b.excess,
		clone:   b.clone,
		release: b.release,
	}
	for i := 0; i < b.inner.Len(); i++ {
		c.inner.Push(b.cloneOf(b.inner.Get(i)))
	}

	return c
}
