package arraybuilder

// Push — append one item, deferring overflow to build time
//
// Contract:
//   - while Len() < Cap(), the item lands in the next free slot, preserving
//     push order;
//   - once full, the item is discarded immediately (the release hook, if
//     configured, observes it) and Excess() increments — Push itself never
//     fails, never blocks, never allocates.
//
// Returns the receiver for chaining:
//
//	arr, err := arraybuilder.New[int](2).Push(1).Push(2).BuildExact()
//
// Complexity: O(1) time, O(0) space.
func (b *Builder[T]) Push(item T) *Builder[T] {
	if err := b.inner.TryPush(item); err != nil {
		b.excess++
		if b.release != nil {
			b.release(item)
		}
	}

	return b
}

// BuildExact — require exactly Cap() pushes
//
// Succeeds iff Len() == Cap() and Excess() == 0. On success, ownership of
// all Cap() values transfers to the returned slice (in push order) and the
// Builder resets to fresh-empty, so its later Reset or reuse can never touch
// the transferred values. On failure the Builder is unchanged — still
// pushable, still buildable under another policy — and the error is a
// *CountError{WrongCount, Cap(), Len()+Excess()}.
// Complexity: O(1) time, O(Cap) space on success (the store re-arm).
func (b *Builder[T]) BuildExact() ([]T, error) {
	if !b.inner.Full() || b.excess > 0 {
		return nil, &CountError{Kind: WrongCount, Expected: b.inner.Cap(), Actual: b.inner.Len() + b.excess}
	}

	return b.inner.Take(), nil
}

// BuildPad — repair a shortfall with clones of padItem
//
// If any excess occurred the call fails immediately with a
// *CountError{TooMany, Cap(), Len()+Excess()} and the Builder is unchanged:
// padding repairs shortfalls only, it never excuses an overflow. Otherwise
// every remaining slot is filled, in ascending index order, with an
// independent clone of padItem (assignment copy, or the WithCloneFunc
// copier) — real items keep their slots and order, pads only ever follow
// them — and the build completes as a guaranteed-success BuildExact:
// ownership transfers, Builder resets to fresh-empty.
// Complexity: O(Remaining) time, O(Cap) space on success.
func (b *Builder[T]) BuildPad(padItem T) ([]T, error) {
	if b.excess > 0 {
		return nil, &CountError{Kind: TooMany, Expected: b.inner.Cap(), Actual: b.inner.Len() + b.excess}
	}
	b.pad(padItem)

	return b.inner.Take(), nil
}

// BuildPadTruncate — pad the shortfall, forgive the excess
//
// The infallible policy: pads remaining slots exactly as BuildPad would,
// clears the excess counter (the excess items themselves were already
// discarded at their push sites — forgiveness is purely an accounting
// reset), transfers ownership, and leaves the Builder fresh-empty and
// immediately reusable for the next build cycle.
// Complexity: O(Remaining) time, O(Cap) space.
func (b *Builder[T]) BuildPadTruncate(padItem T) []T {
	b.pad(padItem)
	b.excess = 0

	return b.inner.Take()
}

// BuildTruncate — require a full store, forgive the excess
//
// Succeeds iff Len() == Cap(): no padding is ever performed, the first
// Cap() pushed values are the result, and any excess is forgiven on the way
// out. A shortfall fails with *CountError{WrongCount, Cap(), Len()} and
// leaves the Builder unchanged (excess cannot be non-zero on that branch:
// it only accrues once the store is full).
// Complexity: O(1) time, O(Cap) space on success.
func (b *Builder[T]) BuildTruncate() ([]T, error) {
	if !b.inner.Full() {
		return nil, &CountError{Kind: WrongCount, Expected: b.inner.Cap(), Actual: b.inner.Len()}
	}
	b.excess = 0

	return b.inner.Take(), nil
}

// Reset — discard all accumulated state
//
// Releases every stored value exactly once, in slot order, through the
// release hook (when configured), zeroes the occupied slots so no reference
// is retained, and clears the excess counter. This is the explicit cleanup
// path for abandoning a partially-filled Builder; values already handed out
// by a successful build are unreachable from here and cannot be re-released.
// Returns the receiver for chaining.
// Complexity: O(Len) time, O(1) space.
func (b *Builder[T]) Reset() *Builder[T] {
	b.inner.Clear(b.release)
	b.excess = 0

	return b
}

// pad fills every remaining slot with an independent copy of item. Stops
// exactly at capacity, so it can never overflow into excess.
func (b *Builder[T]) pad(item T) {
	for b.inner.Remaining() > 0 {
		b.inner.Push(b.cloneOf(item))
	}
}

// cloneOf applies the configured clone function, defaulting to assignment.
func (b *Builder[T]) cloneOf(item T) T {
	if b.clone != nil {
		return b.clone(item)
	}

	return item
}
