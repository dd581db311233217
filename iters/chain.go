package iters

// chainIter yields every element of first, then every element of second.
type chainIter[T any] struct {
	first  Iterator[T]
	second Iterator[T]
}

// Chain concatenates two iterators of the same element type. Front
// operations draw from a until it is empty, then from b; back operations
// draw from b until it is empty, then from a. Both arguments are claimed.
func Chain[T any](a, b Iterator[T]) Iterator[T] {
	return &chainIter[T]{first: claim(a), second: claim(b)}
}

func (c *chainIter[T]) Peek() T {
	if !c.first.Empty() {
		return c.first.Peek()
	}
	return c.second.Peek()
}

func (c *chainIter[T]) PeekBack() T {
	if !c.second.Empty() {
		return c.second.PeekBack()
	}
	return c.first.PeekBack()
}

func (c *chainIter[T]) Next() T {
	if !c.first.Empty() {
		return c.first.Next()
	}
	return c.second.Next()
}

func (c *chainIter[T]) NextBack() T {
	if !c.second.Empty() {
		return c.second.NextBack()
	}
	return c.first.NextBack()
}

func (c *chainIter[T]) Empty() bool { return c.first.Empty() && c.second.Empty() }
func (c *chainIter[T]) Len() int    { return c.first.Len() + c.second.Len() }

func (c *chainIter[T]) Stop() {
	c.first.Stop()
	c.second.Stop()
}

func (c *chainIter[T]) Detach() Iterator[T] {
	return &chainIter[T]{first: c.first.Detach(), second: c.second.Detach()}
}
