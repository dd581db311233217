package iters

// filterIter maintains the invariant that, while non-empty, both the
// current front and the current back element satisfy the predicate.
// Non-matching elements are discarded eagerly at construction and after
// every consume, so Peek/PeekBack never re-check the predicate.
type filterIter[T any] struct {
	Iterator[T]
	pred func(T) bool
}

// Filter yields only the elements of it satisfying pred, preserving
// order. Construction eagerly normalizes both ends, consuming leading and
// trailing non-matching elements immediately.
func Filter[T any](it Iterator[T], pred func(T) bool) Iterator[T] {
	f := &filterIter[T]{Iterator: claim(it), pred: pred}
	advanceWhile(f.Iterator, pred, false)
	advanceBackWhile(f.Iterator, pred, false)
	return f
}

func (f *filterIter[T]) Next() T {
	v := f.Iterator.Next()
	advanceWhile(f.Iterator, f.pred, false)
	return v
}

func (f *filterIter[T]) NextBack() T {
	v := f.Iterator.NextBack()
	advanceBackWhile(f.Iterator, f.pred, false)
	return v
}

func (f *filterIter[T]) Detach() Iterator[T] {
	// The upstream is already normalized; rebuilding through Filter would
	// needlessly rescan both ends.
	return &filterIter[T]{Iterator: f.Iterator.Detach(), pred: f.pred}
}
