// errors.go — sentinel errors and the CountError carrier.
//
// Error policy (explicit and strict):
//   - Overflow and shortfall are ordinary outcomes, not bugs: build methods
//     return errors as values and NEVER panic on them.
//   - Callers branch with errors.Is(err, ErrX) or extract counts with
//     errors.As(err, &countErr); never match error strings.
//   - A failed build leaves the Builder unchanged, so every error here is
//     recoverable: retry a different policy or keep pushing.

package arraybuilder

import (
	"errors"
	"fmt"
)

// ErrWrongCount indicates an exact or truncate build whose total attempted
// push count differs from the capacity, in either direction.
// Usage: if errors.Is(err, ErrWrongCount) { /* pad, truncate, or re-push */ }.
var ErrWrongCount = errors.New("arraybuilder: wrong number of elements")

// ErrTooMany indicates a padding build that refused to run because excess
// pushes occurred; padding only ever repairs a shortfall, never an overflow.
// Usage: if errors.Is(err, ErrTooMany) { /* fall back to BuildPadTruncate */ }.
var ErrTooMany = errors.New("arraybuilder: too many elements")

// Kind classifies a CountError by the sentinel it unwraps to.
type Kind int

const (
	// WrongCount marks errors from BuildExact and BuildTruncate: the total
	// attempted count missed the capacity in either direction.
	WrongCount Kind = iota

	// TooMany marks errors from BuildPad: excess pushes occurred, so padding
	// was refused.
	TooMany
)

// CountError is the detail carrier for every failed build. Expected is the
// Builder's capacity; Actual is the count the failing policy measured
// (occupied plus excess for BuildExact and BuildPad, occupied alone for
// BuildTruncate, whose excess is forgiven rather than counted).
type CountError struct {
	Kind     Kind
	Expected int
	Actual   int
}

// Error renders a direction-aware message: "too few" when Actual fell short
// of Expected, "too many" otherwise.
func (e *CountError) Error() string {
	if e.Kind == WrongCount && e.Actual < e.Expected {
		return fmt.Sprintf("arraybuilder: too few elements, expected %d, got %d", e.Expected, e.Actual)
	}

	return fmt.Sprintf("arraybuilder: too many elements, expected %d, got %d", e.Expected, e.Actual)
}

// Unwrap maps the Kind back to its sentinel so errors.Is works alongside
// errors.As.
func (e *CountError) Unwrap() error {
	if e.Kind == TooMany {
		return ErrTooMany
	}

	return ErrWrongCount
}
