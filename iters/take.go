package iters

// takeIter yields at most n elements, counting consumes from either end.
// Once the budget reaches zero the whole chain below it is force-emptied,
// so no more than n elements are ever produced regardless of upstream
// length.
type takeIter[T any] struct {
	Iterator[T]
	n int
}

// Take bounds it to at most n elements. Take with n == 0 returns an
// iterator that is already exhausted, emptying the upstream immediately.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	t := &takeIter[T]{Iterator: claim(it), n: n}
	if n <= 0 {
		t.Stop()
	}
	return t
}

func (t *takeIter[T]) Next() T {
	v := t.Iterator.Next()
	t.n--
	if t.n == 0 {
		t.Stop()
	}
	return v
}

func (t *takeIter[T]) NextBack() T {
	v := t.Iterator.NextBack()
	t.n--
	if t.n == 0 {
		t.Stop()
	}
	return v
}

func (t *takeIter[T]) Detach() Iterator[T] {
	return &takeIter[T]{Iterator: t.Iterator.Detach(), n: t.n}
}
