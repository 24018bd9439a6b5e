// Package arraykit is a tiny toolkit for building fixed-length collections
// incrementally — push any number of items, get back a slice of exactly n,
// or a typed error explaining the mismatch.
//
// 🚀 What is arraykit?
//
//	An allocation-disciplined take on the "array builder" pattern:
//		• arraybuilder — the Builder itself: four completion policies
//		  (exact, pad, pad-truncate, truncate), excess accounting, clone
//		  and release hooks for observable padding & cleanup
//		• fixedvec — the capacity-bounded vector underneath: append-only,
//		  a single backing allocation, one-shot ownership transfer
//
// ✨ Why choose arraykit?
//
//   - Overflow-tolerant by contract – Push never fails; the build policy decides later
//   - Lossless failures – a failed build leaves every pushed value in place
//   - No zero-value fabrication – padding always clones a caller-supplied item
//   - Pure Go – no cgo, no hidden deps (testify appears in tests only)
//
// Quick example:
//
//	arr, err := arraybuilder.New[string](3).Push("first").BuildPad("padding")
//	// arr == []string{"first", "padding", "padding"}
//
// Start with the arraybuilder package; fixedvec is exported on its own for
// callers who only need the capacity-bounded vector.
//
//	go get github.com/arraykit/arraykit
package arraykit
