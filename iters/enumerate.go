package iters

// enumIter pairs each element with its forward index. The forward counter
// i is the index of the current front element; back indices are derived
// from i plus the residual length, so the index attached to an element is
// the same whichever end it leaves from.
type enumIter[T any] struct {
	src Iterator[T]
	i   int
}

// Enumerate wraps it so that each element is yielded as a
// Pair[int, T]{index, element}, indices counting from 0 in original front
// order regardless of which end elements are consumed from.
func Enumerate[T any](it Iterator[T]) Iterator[Pair[int, T]] {
	return &enumIter[T]{src: claim(it)}
}

func (e *enumIter[T]) Peek() Pair[int, T] {
	return Pair[int, T]{First: e.i, Second: e.src.Peek()}
}

func (e *enumIter[T]) PeekBack() Pair[int, T] {
	return Pair[int, T]{First: e.i + e.src.Len() - 1, Second: e.src.PeekBack()}
}

func (e *enumIter[T]) Next() Pair[int, T] {
	p := Pair[int, T]{First: e.i, Second: e.src.Next()}
	e.i++
	return p
}

func (e *enumIter[T]) NextBack() Pair[int, T] {
	v := e.src.NextBack()
	return Pair[int, T]{First: e.i + e.src.Len(), Second: v}
}

func (e *enumIter[T]) Empty() bool { return e.src.Empty() }
func (e *enumIter[T]) Len() int    { return e.src.Len() }
func (e *enumIter[T]) Stop()       { e.src.Stop() }

func (e *enumIter[T]) Detach() Iterator[Pair[int, T]] {
	return &enumIter[T]{src: e.src.Detach(), i: e.i}
}
