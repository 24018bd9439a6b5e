// Package fixedvec provides Vec, a generic append-only vector with a fixed
// capacity chosen at construction time.
//
// 🚀 What is fixedvec?
//
//	A Vec[T] owns exactly one backing store, allocated once in New and never
//	resized.  Items are appended to a contiguous occupied prefix; everything
//	past that prefix is inert storage that the API never reads, returns, or
//	passes to callbacks.  Once the prefix reaches capacity, the whole store
//	can be handed to the caller in a single ownership transfer.
//
// ✨ Key features:
//   - TryPush: O(1) append that reports ErrFull instead of growing
//   - Take / IntoArray: move the backing store out, re-arming the Vec with a
//     fresh empty store, so the returned slice never aliases the Vec
//   - Clear: truncate to empty, zeroing the occupied prefix so no reference
//     is retained, with an optional per-item release callback
//   - zero allocation on every operation except New and the re-arm inside
//     Take/IntoArray
//
// ⚙️ Usage:
//
//	v := fixedvec.New[string](3)
//	_ = v.TryPush("a")
//	_ = v.TryPush("b")
//	_ = v.TryPush("c")
//	arr, err := v.IntoArray() // arr == []string{"a","b","c"}, v is empty again
//
// Concurrency: a Vec is a single-owner value. It performs no internal
// locking; confine each instance to one goroutine (distinct instances are
// independent and may be used from distinct goroutines freely).
package fixedvec
