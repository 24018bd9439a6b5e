package fixedvec

// Vec is a fixed-capacity, append-only vector.
//
// Invariants:
//   - the backing store is allocated exactly once per arming (New or the
//     re-arm inside Take) and is never resized;
//   - live values occupy the contiguous prefix [0, Len()); slots in
//     [Len(), Cap()) are never read, returned, or passed to callbacks;
//   - after Take or IntoArray the returned slice and the Vec share no memory.
//
// The zero value of Vec is a valid vector of capacity zero. Use New to pick
// a non-zero capacity.
type Vec[T any] struct {
	// buf holds the live prefix; len(buf) is the occupied count and
	// cap(buf) is the fixed capacity.
	buf []T
}

// New returns an empty Vec able to hold exactly capacity items.
// Panics if capacity is negative (constructor validation; runtime methods
// never panic on ordinary conditions).
// Complexity: O(1) time, O(capacity) space — the only unconditional allocation.
func New[T any](capacity int) *Vec[T] {
	if capacity < 0 {
		panic("fixedvec: New(negative capacity)")
	}

	return &Vec[T]{buf: make([]T, 0, capacity)}
}

// Len reports the occupied prefix length, in [0, Cap()].
// Complexity: O(1).
func (v *Vec[T]) Len() int { return len(v.buf) }

// Cap reports the fixed capacity chosen at construction.
// Complexity: O(1).
func (v *Vec[T]) Cap() int { return cap(v.buf) }

// Remaining reports how many more items TryPush will accept.
// Complexity: O(1).
func (v *Vec[T]) Remaining() int { return cap(v.buf) - len(v.buf) }

// Full reports whether the occupied prefix spans the entire capacity.
// Complexity: O(1).
func (v *Vec[T]) Full() bool { return len(v.buf) == cap(v.buf) }

// TryPush appends item to the occupied prefix, or returns ErrFull without
// storing it. Never allocates: the append below is capacity-guarded.
// Complexity: O(1).
func (v *Vec[T]) TryPush(item T) error {
	if len(v.buf) == cap(v.buf) {
		return ErrFull
	}
	v.buf = append(v.buf, item)

	return nil
}

// Push appends item, panicking if the Vec is full. It is the unchecked
// variant of TryPush for call sites that have already proven spare capacity
// (a full Vec here is a programmer error, not a runtime condition).
// Complexity: O(1).
func (v *Vec[T]) Push(item T) {
	if err := v.TryPush(item); err != nil {
		panic("fixedvec: Push on a full Vec")
	}
}

// At returns the item at index i within the occupied prefix, or
// ErrIndexOutOfRange. Indices in [Len, Cap) are out of range by definition:
// they hold no live value.
// Complexity: O(1).
func (v *Vec[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(v.buf) {
		return zero, ErrIndexOutOfRange
	}

	return v.buf[i], nil
}

// Get returns the item at index i without a bounds check against callers'
// bookkeeping; i must be in [0, Len). Prefer At unless the index was just
// derived from Len.
func (v *Vec[T]) Get(i int) T { return v.buf[i] }

// Take moves the backing store out of the Vec and re-arms it with a fresh
// empty store of the same capacity. The returned slice has length Len() and
// never aliases the Vec afterwards, so later pushes cannot mutate it and a
// later Clear cannot release its values a second time.
// Complexity: O(1) time plus the O(Cap) re-arm allocation.
func (v *Vec[T]) Take() []T {
	out := v.buf
	v.buf = make([]T, 0, cap(out))

	return out
}

// IntoArray is Take restricted to the full case: it succeeds only when the
// occupied prefix spans the entire capacity, so the result is guaranteed to
// hold exactly Cap() live values. On failure the Vec is unchanged and the
// error is a *NotFullError (unwrapping to ErrNotFull).
// Complexity: O(1) time plus the O(Cap) re-arm allocation on success.
func (v *Vec[T]) IntoArray() ([]T, error) {
	if len(v.buf) != cap(v.buf) {
		return nil, &NotFullError{Capacity: cap(v.buf), Len: len(v.buf)}
	}

	return v.Take(), nil
}

// Clear truncates the Vec to empty in place, zeroing every slot of the
// occupied prefix so no reference to a released value is retained. If
// release is non-nil it observes each live value exactly once, in slot
// order, before its slot is zeroed. Slots past the prefix are not touched.
// Complexity: O(Len) time, O(1) space.
func (v *Vec[T]) Clear(release func(T)) {
	var zero T
	for i := range v.buf {
		if release != nil {
			release(v.buf[i])
		}
		v.buf[i] = zero
	}
	v.buf = v.buf[:0]
}
