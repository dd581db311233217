package iters

// reverseIter swaps the roles of every front/back primitive pair.
type reverseIter[T any] struct {
	Iterator[T]
}

// Reverse yields the elements of it in back-to-front order. Reversing
// twice restores the original order.
func Reverse[T any](it Iterator[T]) Iterator[T] {
	return &reverseIter[T]{Iterator: claim(it)}
}

func (r *reverseIter[T]) Peek() T     { return r.Iterator.PeekBack() }
func (r *reverseIter[T]) PeekBack() T { return r.Iterator.Peek() }
func (r *reverseIter[T]) Next() T     { return r.Iterator.NextBack() }
func (r *reverseIter[T]) NextBack() T { return r.Iterator.Next() }

func (r *reverseIter[T]) Detach() Iterator[T] {
	return &reverseIter[T]{Iterator: r.Iterator.Detach()}
}
