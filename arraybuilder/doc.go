// Package arraybuilder provides Builder, an incremental, fixed-capacity
// collector that turns an arbitrary number of pushed items into a slice of
// exactly n elements, or a typed error describing the count mismatch.
//
// 🚀 What is arraybuilder?
//
//	A Builder[T] accepts pushes one at a time. The first n land in a
//	fixed-capacity store (see the fixedvec package); every later push is
//	counted as excess and its item discarded immediately. When the caller is
//	done pushing, one of four build policies converts the accumulated state
//	into a []T of exactly length n:
//	  • BuildExact        — require exactly n pushes, no excess
//	  • BuildPad          — fill the shortfall with clones of a pad item,
//	                        but refuse if any excess occurred
//	  • BuildPadTruncate  — pad the shortfall AND forgive any excess;
//	                        this one cannot fail
//	  • BuildTruncate     — require the store to be full already; forgive
//	                        excess, refuse a shortfall
//
// ✨ Guarantees:
//   - Push never fails and never allocates; overflow is deferred to build time
//   - a failed build leaves the Builder byte-for-byte unchanged, so the
//     caller can retry a more forgiving policy or keep pushing
//   - a successful build transfers ownership of the backing store to the
//     returned slice and resets the Builder to a fresh empty state —
//     the two never alias, and the Builder is immediately reusable
//   - the zero value of T is never fabricated into a result; padding always
//     clones the caller's pad item
//   - every discarded value (excess pushes, Reset) is observable through
//     WithReleaseFunc, exactly once each
//
// ⚙️ Usage:
//
//	b := arraybuilder.New[string](3)
//	arr, err := b.Push("first").BuildPad("padding")
//	// arr == []string{"first", "padding", "padding"}, err == nil
//
// Errors are values: build methods return a *CountError carrying expected
// and actual counts, unwrapping to ErrWrongCount or ErrTooMany for
// errors.Is branching. Nothing in this package panics at runtime; panics
// are confined to constructor validation (New, WithCloneFunc,
// WithReleaseFunc).
//
// Concurrency: a Builder is a single-owner value with no internal locking.
// Confine each instance to one goroutine; distinct instances are fully
// independent.
package arraybuilder
