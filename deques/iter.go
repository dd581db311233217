package deques

import "strand/iters"

// dequeIter is a front/back logical-index pair over a Deque. front is the
// logical index of the first remaining element, back is one past the
// last; front == back means empty. The deque itself is never mutated by
// traversal.
//
// Structural modification of the deque while a dequeIter is live is not
// supported.
type dequeIter[T, E any] struct {
	d     *Deque[T]
	front int
	back  int
	elem  func(*Deque[T], int) E
}

// Iter returns a double-ended, read-only iterator over the deque's
// current elements.
func (d *Deque[T]) Iter() iters.Iterator[T] {
	return &dequeIter[T, T]{
		d:    d,
		back: d.size,
		elem: func(d *Deque[T], i int) T { return d.buf[(d.head+i)&d.mask] },
	}
}

// IterMut returns a double-ended iterator over pointers into the deque's
// backing array, permitting in-place modification of elements without
// structural change.
func (d *Deque[T]) IterMut() iters.Iterator[*T] {
	return &dequeIter[T, *T]{
		d:    d,
		back: d.size,
		elem: func(d *Deque[T], i int) *T { return &d.buf[(d.head+i)&d.mask] },
	}
}

func (di *dequeIter[T, E]) Peek() E     { return di.elem(di.d, di.front) }
func (di *dequeIter[T, E]) PeekBack() E { return di.elem(di.d, di.back-1) }

func (di *dequeIter[T, E]) Next() E {
	v := di.elem(di.d, di.front)
	di.front++
	return v
}

func (di *dequeIter[T, E]) NextBack() E {
	di.back--
	return di.elem(di.d, di.back)
}

func (di *dequeIter[T, E]) Empty() bool { return di.front == di.back }
func (di *dequeIter[T, E]) Len() int    { return di.back - di.front }
func (di *dequeIter[T, E]) Stop()       { di.front = di.back }

func (di *dequeIter[T, E]) Detach() iters.Iterator[E] {
	clone := *di
	di.Stop()
	return &clone
}
