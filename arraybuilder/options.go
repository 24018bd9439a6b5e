// options.go — functional options for the Builder.
//
// Contract (strict):
//   - Options are functional (type Option[T] func(*Builder[T])) and are
//     applied once, inside New, in call order.
//   - Option constructors VALIDATE and PANIC on meaningless inputs (nil
//     functions). Build methods themselves never panic.
//   - No hidden globals; everything an option sets lives on the Builder.

package arraybuilder

// Option customizes a Builder at construction time.
// Complexity: applying k options costs O(k) time, O(1) space.
type Option[T any] func(*Builder[T])

// WithCloneFunc sets the copier used for every padded slot and by Clone.
// Without it, copies are plain assignments — fine for value types, but a
// pointerful T padded into several slots would share structure across them;
// supply a deep clone when that matters. Panics on nil.
// Complexity: O(1).
func WithCloneFunc[T any](fn func(T) T) Option[T] {
	if fn == nil {
		// Fail fast: option constructors validate and panic.
		panic("arraybuilder: WithCloneFunc(nil)")
	}

	return func(b *Builder[T]) { b.clone = fn }
}

// WithReleaseFunc sets a hook that observes every value the Builder
// discards: each excess push (at the push site, immediately) and each live
// slot released by Reset, exactly once per value. Values handed out by a
// successful build are never released — ownership moved to the caller.
// Panics on nil.
// Complexity: O(1).
func WithReleaseFunc[T any](fn func(T)) Option[T] {
	if fn == nil {
		// Fail fast: option constructors validate and panic.
		panic("arraybuilder: WithReleaseFunc(nil)")
	}

	return func(b *Builder[T]) { b.release = fn }
}
