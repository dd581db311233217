package iters

// Terminal operations. Each drains (fully or partially) the iterator it is
// given; absence is reported as (value, false), never as an error.

// All reports whether every element satisfies pred, short-circuiting on
// the first that does not. All of an empty iterator is true. Consumes
// through the first failing element.
func All[T any](it Iterator[T], pred func(T) bool) bool {
	return !anyMatches(it, pred, false)
}

// Any reports whether some element satisfies pred, short-circuiting on the
// first that does. Any of an empty iterator is false. Consumes through the
// first matching element.
func Any[T any](it Iterator[T], pred func(T) bool) bool {
	return anyMatches(it, pred, true)
}

func anyMatches[T any](it Iterator[T], pred func(T) bool, want bool) bool {
	for !it.Empty() {
		if pred(it.Next()) == want {
			return true
		}
	}
	return false
}

// Count drains it and returns the number of elements consumed.
func Count[T any](it Iterator[T]) int {
	n := 0
	for !it.Empty() {
		it.Next()
		n++
	}
	return n
}

// Find consumes elements while pred is false and returns the first
// element satisfying pred, or (zero, false) if none does. The match is
// peeked, not consumed: it remains the element the next consume returns.
func Find[T any](it Iterator[T], pred func(T) bool) (T, bool) {
	advanceWhile(it, pred, false)
	return headOf(it)
}

// Fold consumes every element front to back, threading an accumulator:
// acc = fn(acc, element).
func Fold[T, R any](it Iterator[T], init R, fn func(R, T) R) R {
	acc := init
	for !it.Empty() {
		acc = fn(acc, it.Next())
	}
	return acc
}

// ForEach consumes every element front to back, invoking fn on each.
func ForEach[T any](it Iterator[T], fn func(T)) {
	for !it.Empty() {
		fn(it.Next())
	}
}

// Last drains it and returns the final element, or (zero, false) if it
// was already empty.
func Last[T any](it Iterator[T]) (T, bool) {
	var last T
	found := false
	for !it.Empty() {
		last = it.Next()
		found = true
	}
	return last, found
}

// Nth consumes and discards min(n, Len) elements, then returns the next
// front element without consuming it, or (zero, false) if fewer than n+1
// elements remained. Nth(it, 0) peeks the current front.
func Nth[T any](it Iterator[T], n int) (T, bool) {
	advanceBy(it, n)
	return headOf(it)
}

// Partition drains it into two slices: elements satisfying pred and
// elements that do not, each in original relative order.
func Partition[T any](it Iterator[T], pred func(T) bool) (matches, rest []T) {
	for !it.Empty() {
		v := it.Next()
		if pred(v) {
			matches = append(matches, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matches, rest
}

// PartitionInto drains it, inserting elements satisfying pred into
// matches and the others into rest, using each target's own insertion
// discipline.
func PartitionInto[T any](it Iterator[T], pred func(T) bool, matches, rest Inserter[T]) {
	for !it.Empty() {
		v := it.Next()
		if pred(v) {
			matches.Insert(v)
		} else {
			rest.Insert(v)
		}
	}
}

// Position consumes elements while pred is false and returns the number
// consumed, or (0, false) if the iterator exhausted without a match. Like
// Find, the matching element itself is left in place, not consumed.
func Position[T any](it Iterator[T], pred func(T) bool) (int, bool) {
	steps := advanceWhile(it, pred, false)
	if it.Empty() {
		return 0, false
	}
	return steps, true
}

// headOf peeks the current front, reporting absence when exhausted.
func headOf[T any](it Iterator[T]) (T, bool) {
	if it.Empty() {
		var zero T
		return zero, false
	}
	return it.Peek(), true
}
