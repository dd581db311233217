package iters

// Iterator is the minimal capability set every stage implements.
// The first seven methods are the traversal primitives; Detach is the
// ownership-transfer primitive used by combinators and by the iteration
// protocol (see [Values]).
//
// The set is open: any type implementing Iterator participates in every
// combinator and terminal operation of this package.
type Iterator[T any] interface {
	// Peek returns the current front element without consuming it.
	// Undefined when Empty.
	Peek() T

	// PeekBack returns the current back element without consuming it.
	// Undefined when Empty.
	PeekBack() T

	// Next consumes and returns the front element. Undefined when Empty.
	Next() T

	// NextBack consumes and returns the back element. Undefined when Empty.
	NextBack() T

	// Empty reports whether no elements remain.
	Empty() bool

	// Len returns the residual distance between the front and back
	// positions of the underlying source. For most stages this is the
	// exact number of elements left; Filter, StepBy and Take report
	// their upstream's residual, an upper bound on their own yield.
	Len() int

	// Stop collapses the iterator to the empty state. Irreversible.
	Stop()

	// Detach moves the iterator's state into a fresh handle and leaves
	// the receiver (and every stage it wraps) exhausted. Detaching an
	// exhausted iterator yields an exhausted one.
	Detach() Iterator[T]
}

// Pair is the element type produced by [Enumerate] (index, element) and
// [Zip] (left element, right element).
type Pair[A, B any] struct {
	First  A
	Second B
}

// claim transfers ownership of it to the caller. Combinator constructors
// and the iteration protocol go through claim so that the handle passed in
// by the caller is left exhausted.
func claim[T any](it Iterator[T]) Iterator[T] {
	return it.Detach()
}

// advanceBy consumes up to n front elements, returning how many were
// actually consumed.
func advanceBy[T any](it Iterator[T], n int) int {
	steps := 0
	for !it.Empty() && steps < n {
		it.Next()
		steps++
	}
	return steps
}

// advanceWhile consumes front elements while pred(front) == expected,
// returning the number consumed. The element that breaks the loop is left
// in place.
func advanceWhile[T any](it Iterator[T], pred func(T) bool, expected bool) int {
	steps := 0
	for !it.Empty() && pred(it.Peek()) == expected {
		it.Next()
		steps++
	}
	return steps
}

// advanceBackWhile is advanceWhile from the back end.
func advanceBackWhile[T any](it Iterator[T], pred func(T) bool, expected bool) int {
	steps := 0
	for !it.Empty() && pred(it.PeekBack()) == expected {
		it.NextBack()
		steps++
	}
	return steps
}
