package iters

// sliceIter is the base source over a slice: a front index and a back
// index (one past the last remaining element). front == back means empty;
// the backing array is never copied or mutated.
type sliceIter[T any] struct {
	items []T
	front int
	back  int
}

// FromSlice wraps items in a read-only double-ended iterator. Elements are
// yielded by value; the slice itself is not copied.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIter[T]{items: items, back: len(items)}
}

// FromSliceMut wraps items in a double-ended iterator over element
// pointers, permitting in-place modification of the elements (but not of
// the slice structure).
func FromSliceMut[T any](items []T) Iterator[*T] {
	ptrs := make([]*T, len(items))
	for i := range items {
		ptrs[i] = &items[i]
	}
	return &sliceIter[*T]{items: ptrs, back: len(ptrs)}
}

func (s *sliceIter[T]) Peek() T     { return s.items[s.front] }
func (s *sliceIter[T]) PeekBack() T { return s.items[s.back-1] }

func (s *sliceIter[T]) Next() T {
	v := s.items[s.front]
	s.front++
	return v
}

func (s *sliceIter[T]) NextBack() T {
	s.back--
	return s.items[s.back]
}

func (s *sliceIter[T]) Empty() bool { return s.front == s.back }
func (s *sliceIter[T]) Len() int    { return s.back - s.front }
func (s *sliceIter[T]) Stop()       { s.front = s.back }

func (s *sliceIter[T]) Detach() Iterator[T] {
	clone := *s
	s.Stop()
	return &clone
}

// rangeIter is an arithmetic source: the integers start, start+step, ...
// up to but excluding end (for positive step; symmetric for negative).
type rangeIter struct {
	next int // value a front consume would yield
	last int // value a back consume would yield
	step int
	size int // remaining count; 0 means empty
}

// RangeOf returns a double-ended iterator over the arithmetic progression
// from start (inclusive) to end (exclusive) with the given step.
// A zero step panics; a step pointing away from end yields an empty
// iterator.
func RangeOf(start, end, step int) Iterator[int] {
	if step == 0 {
		panic("iters: RangeOf step must be non-zero")
	}
	size := 0
	if step > 0 && start < end {
		size = (end - start + step - 1) / step
	} else if step < 0 && start > end {
		size = (start - end + (-step) - 1) / (-step)
	}
	return &rangeIter{
		next: start,
		last: start + (size-1)*step,
		step: step,
		size: size,
	}
}

func (r *rangeIter) Peek() int     { return r.next }
func (r *rangeIter) PeekBack() int { return r.last }

func (r *rangeIter) Next() int {
	v := r.next
	r.next += r.step
	r.size--
	return v
}

func (r *rangeIter) NextBack() int {
	v := r.last
	r.last -= r.step
	r.size--
	return v
}

func (r *rangeIter) Empty() bool { return r.size <= 0 }
func (r *rangeIter) Len() int    { return max(r.size, 0) }
func (r *rangeIter) Stop()       { r.size = 0 }

func (r *rangeIter) Detach() Iterator[int] {
	clone := *r
	r.Stop()
	return &clone
}
