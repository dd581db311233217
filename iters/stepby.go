package iters

// stepIter yields every step-th element. Forward consumption returns one
// element and discards the step-1 that follow. Backward consumption must
// land on the same logical elements forward stepping would visit, which
// requires discarding (Len-1) % step back elements once before the first
// backward yield; aligned records that this offset has been applied.
type stepIter[T any] struct {
	Iterator[T]
	step    int
	aligned bool
}

// StepBy yields the first element of it and every step-th element after
// it. A step below 1 is a contract violation and panics.
func StepBy[T any](it Iterator[T], step int) Iterator[T] {
	if step < 1 {
		panic("iters: StepBy step must be positive")
	}
	return &stepIter[T]{Iterator: claim(it), step: step}
}

func (s *stepIter[T]) Next() T {
	v := s.Iterator.Next()
	for i := 1; i < s.step && !s.Iterator.Empty(); i++ {
		s.Iterator.Next()
	}
	return v
}

// NextBack aligns the back position on first use so that the backward
// walk visits exactly the elements the forward walk would, from the far
// end. PeekBack does not align; peek the back only after a NextBack if
// stepped alignment matters.
func (s *stepIter[T]) NextBack() T {
	s.alignBack()
	v := s.Iterator.NextBack()
	for i := 1; i < s.step && !s.Iterator.Empty(); i++ {
		s.Iterator.NextBack()
	}
	return v
}

func (s *stepIter[T]) alignBack() {
	if s.aligned {
		return
	}
	s.aligned = true
	if s.Iterator.Empty() {
		return
	}
	initial := (s.Iterator.Len() - 1) % s.step
	for i := 0; i < initial && !s.Iterator.Empty(); i++ {
		s.Iterator.NextBack()
	}
}

func (s *stepIter[T]) Detach() Iterator[T] {
	return &stepIter[T]{Iterator: s.Iterator.Detach(), step: s.step, aligned: s.aligned}
}
