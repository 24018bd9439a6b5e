package fixedvec_test

import (
	"errors"
	"fmt"

	"github.com/arraykit/arraykit/fixedvec"
)

// ExampleVec_TryPush demonstrates capacity-guarded appends: the third push
// is rejected instead of growing the store.
func ExampleVec_TryPush() {
	v := fixedvec.New[string](2)
	fmt.Println(v.TryPush("a"))
	fmt.Println(v.TryPush("b"))
	fmt.Println(errors.Is(v.TryPush("c"), fixedvec.ErrFull))
	// Output:
	// <nil>
	// <nil>
	// true
}

// ExampleVec_IntoArray demonstrates the full-only ownership transfer: the
// Vec hands out its backing store and is immediately reusable.
func ExampleVec_IntoArray() {
	v := fixedvec.New[int](3)
	for i := 1; i <= 3; i++ {
		_ = v.TryPush(i * 10)
	}

	arr, err := v.IntoArray()
	fmt.Println(arr, err)
	fmt.Println(v.Len(), v.Cap())
	// Output:
	// [10 20 30] <nil>
	// 0 3
}
