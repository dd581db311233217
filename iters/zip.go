package iters

// zipIter pairs up corresponding elements of two iterators. The shorter
// side governs: once either side is exhausted the pair stream ends, even
// if the other still has elements.
type zipIter[A, B any] struct {
	left  Iterator[A]
	right Iterator[B]
}

// Zip pairs element i of a with element i of b, yielding Pair[A, B]
// values for i up to the shorter length. Both arguments are claimed.
func Zip[A, B any](a Iterator[A], b Iterator[B]) Iterator[Pair[A, B]] {
	return &zipIter[A, B]{left: claim(a), right: claim(b)}
}

func (z *zipIter[A, B]) Peek() Pair[A, B] {
	return Pair[A, B]{First: z.left.Peek(), Second: z.right.Peek()}
}

func (z *zipIter[A, B]) PeekBack() Pair[A, B] {
	return Pair[A, B]{First: z.left.PeekBack(), Second: z.right.PeekBack()}
}

func (z *zipIter[A, B]) Next() Pair[A, B] {
	return Pair[A, B]{First: z.left.Next(), Second: z.right.Next()}
}

func (z *zipIter[A, B]) NextBack() Pair[A, B] {
	return Pair[A, B]{First: z.left.NextBack(), Second: z.right.NextBack()}
}

func (z *zipIter[A, B]) Empty() bool { return z.left.Empty() || z.right.Empty() }
func (z *zipIter[A, B]) Len() int    { return min(z.left.Len(), z.right.Len()) }

func (z *zipIter[A, B]) Stop() {
	z.left.Stop()
	z.right.Stop()
}

func (z *zipIter[A, B]) Detach() Iterator[Pair[A, B]] {
	return &zipIter[A, B]{left: z.left.Detach(), right: z.right.Detach()}
}
