package iters

// mapIter applies fn to the underlying element on every access, at either
// end. Nothing is pre-computed or cached: peeking the same element twice
// invokes fn twice, so fn should be cheap or idempotent.
type mapIter[T, R any] struct {
	src Iterator[T]
	fn  func(T) R
}

// Map transforms each element of it with fn, lazily. The produced
// elements are fresh values, not views into the original collection.
func Map[T, R any](it Iterator[T], fn func(T) R) Iterator[R] {
	return &mapIter[T, R]{src: claim(it), fn: fn}
}

func (m *mapIter[T, R]) Peek() R     { return m.fn(m.src.Peek()) }
func (m *mapIter[T, R]) PeekBack() R { return m.fn(m.src.PeekBack()) }
func (m *mapIter[T, R]) Next() R     { return m.fn(m.src.Next()) }
func (m *mapIter[T, R]) NextBack() R { return m.fn(m.src.NextBack()) }
func (m *mapIter[T, R]) Empty() bool { return m.src.Empty() }
func (m *mapIter[T, R]) Len() int    { return m.src.Len() }
func (m *mapIter[T, R]) Stop()       { m.src.Stop() }

func (m *mapIter[T, R]) Detach() Iterator[R] {
	return &mapIter[T, R]{src: m.src.Detach(), fn: m.fn}
}
