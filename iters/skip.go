package iters

// Skip discards up to n front elements immediately and returns the
// advanced iterator. All the work happens at construction; there is no
// steady-state behavior to override, so no wrapper type is needed.
func Skip[T any](it Iterator[T], n int) Iterator[T] {
	src := claim(it)
	advanceBy(src, n)
	return src
}
