// errors.go — sentinel errors for the fixedvec package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed for branching.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - NotFullError carries the occupancy detail and unwraps to ErrNotFull,
//     so both errors.Is and errors.As work on IntoArray failures.
//   - Methods never panic on runtime conditions; panics are confined to
//     constructor validation (New with a negative capacity) and to Push,
//     which is documented as the unchecked variant of TryPush.

package fixedvec

import (
	"errors"
	"fmt"
)

// ErrFull indicates a TryPush on a Vec whose occupied prefix already spans
// the full capacity. The rejected item was not stored.
// Usage: if errors.Is(err, ErrFull) { /* route overflow elsewhere */ }.
var ErrFull = errors.New("fixedvec: vector is full")

// ErrNotFull indicates an IntoArray call before the occupied prefix reached
// capacity; the Vec is unchanged.
// Usage: if errors.Is(err, ErrNotFull) { /* keep appending or pad */ }.
var ErrNotFull = errors.New("fixedvec: vector is not full")

// ErrIndexOutOfRange indicates an At call outside the occupied prefix
// [0, Len). Indices in [Len, Cap) are deliberately unreachable: slots there
// hold no live value.
var ErrIndexOutOfRange = errors.New("fixedvec: index out of range")

// NotFullError reports how far from full a Vec was when IntoArray failed.
type NotFullError struct {
	// Capacity is the fixed capacity of the Vec.
	Capacity int

	// Len is the occupied prefix length at the time of the call.
	Len int
}

// Error formats the occupancy shortfall.
func (e *NotFullError) Error() string {
	return fmt.Sprintf("fixedvec: vector is not full: %d of %d slots occupied", e.Len, e.Capacity)
}

// Unwrap lets errors.Is(err, ErrNotFull) match a *NotFullError.
func (e *NotFullError) Unwrap() error { return ErrNotFull }
