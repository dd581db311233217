package iters_test

import (
	"fmt"
	"strand/iters"
)

func ExampleMap() {
	it := iters.FromSlice([]int{1, 2, 3})

	// Apply a transformation lazily; nothing runs until the drain
	result := iters.Map(it, func(v int) int {
		return v * 10
	})

	for v := range iters.Values(result) {
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
}

func ExampleFilter() {
	it := iters.FromSlice([]int{1, 2, 3, 4, 5, 6})

	evens := iters.Filter(it, func(v int) bool { return v%2 == 0 })

	fmt.Println(iters.Collect(evens))

	// Output:
	// [2 4 6]
}

func ExampleStepBy() {
	it := iters.StepBy(iters.FromSlice([]int{1, 2, 3, 4, 5, 6, 7}), 3)

	// Backward traversal visits the same stepped elements from the far end
	for v := range iters.Backward(it) {
		fmt.Println(v)
	}

	// Output:
	// 7
	// 4
	// 1
}

func ExampleEnumerate() {
	it := iters.Enumerate(iters.FromSlice([]string{"a", "b", "c"}))

	for p := range iters.Values(it) {
		fmt.Printf("%d: %s\n", p.First, p.Second)
	}

	// Output:
	// 0: a
	// 1: b
	// 2: c
}

func ExampleFind() {
	it := iters.FromSlice([]int{1, 3, 4, 5})

	// Find peeks rather than pops: the match stays at the front
	v, ok := iters.Find(it, func(v int) bool { return v%2 == 0 })
	fmt.Println(v, ok)
	fmt.Println(it.Next())

	// Output:
	// 4 true
	// 4
}

func ExampleChain() {
	it := iters.Chain(
		iters.FromSlice([]int{1, 2}),
		iters.FromSlice([]int{3, 4}),
	)

	fmt.Println(iters.Collect(it))

	// Output:
	// [1 2 3 4]
}
