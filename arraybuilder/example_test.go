package arraybuilder_test

import (
	"errors"
	"fmt"

	"github.com/arraykit/arraykit/arraybuilder"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuilder_BuildExact
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Exactly as many pushes as the capacity — the strict policy succeeds and
//	preserves push order.
//
// Use case:
//
//	Converting a stream you already validated into a fixed-length record.
func ExampleBuilder_BuildExact() {
	arr, err := arraybuilder.New[string](2).Push("just").Push("right").BuildExact()
	fmt.Println(arr, err)
	// Output:
	// [just right] <nil>
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuilder_BuildPad
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One real push into a capacity-3 builder; padding fills the two empty
//	slots with clones of the pad item, after the real values.
//
// Use case:
//
//	Fixed-width rows where missing cells take a placeholder.
func ExampleBuilder_BuildPad() {
	arr, err := arraybuilder.New[string](3).Push("first").BuildPad("padding")
	fmt.Println(arr, err)
	// Output:
	// [first padding padding] <nil>
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuilder_BuildPad_tooMany
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two pushes into a capacity-1 builder: padding refuses because excess
//	occurred, while the forgiving policy on the same state truncates.
//
// Use case:
//
//	Choosing between strict and forgiving completion after the fact —
//	possible because the failed build left the builder unchanged.
func ExampleBuilder_BuildPad_tooMany() {
	b := arraybuilder.New[string](1).Push("first").Push("too many now!")

	_, err := b.BuildPad("")
	fmt.Println(errors.Is(err, arraybuilder.ErrTooMany))
	fmt.Println(err)

	fmt.Println(b.BuildPadTruncate(""))
	// Output:
	// true
	// arraybuilder: too many elements, expected 1, got 2
	// [first]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuilder_BuildTruncate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Five pushes into a capacity-2 builder: the first two win, the rest are
//	forgiven on the way out.
//
// Use case:
//
//	"Take the first n" over a source of unknown length, without a separate
//	counting pass.
func ExampleBuilder_BuildTruncate() {
	b := arraybuilder.New[int](2)
	for i := 1; i <= 5; i++ {
		b.Push(i * 10)
	}

	arr, err := b.BuildTruncate()
	fmt.Println(arr, err)
	// Output:
	// [10 20] <nil>
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuilder_reuse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A successful build resets the builder to fresh-empty, so one builder
//	serves many cycles; the returned slices never alias each other.
func ExampleBuilder_reuse() {
	b := arraybuilder.New[int](2)

	first, _ := b.Push(1).Push(2).BuildExact()
	second, _ := b.Push(3).Push(4).BuildExact()

	fmt.Println(first)
	fmt.Println(second)
	// Output:
	// [1 2]
	// [3 4]
}
