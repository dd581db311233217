package iters

import (
	"iter"
	"slices"
)

// FromSeq materializes a forward-only sequence into a double-ended
// iterator. The sequence is fully collected at construction; for large or
// unbounded sequences prefer bounding first (e.g. with a slice of known
// size). This is the only admission path for sources that cannot traverse
// backward, which keeps Reverse and the other back-dependent stages legal
// on every Iterator.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	return FromSlice(slices.Collect(seq))
}

// Values begins iteration: it detaches the handle's state and returns a
// forward iter.Seq over the detached snapshot. The handle passed in is
// left exhausted, so ranging over the same iterator twice observes an
// empty second pass. Breaking out of the range loop stops the snapshot.
func Values[T any](it Iterator[T]) iter.Seq[T] {
	snap := claim(it)
	return func(yield func(T) bool) {
		for !snap.Empty() {
			if !yield(snap.Next()) {
				snap.Stop()
				return
			}
		}
	}
}

// Backward is Values from the back end: it detaches the handle and yields
// the remaining elements back to front.
func Backward[T any](it Iterator[T]) iter.Seq[T] {
	snap := claim(it)
	return func(yield func(T) bool) {
		for !snap.Empty() {
			if !yield(snap.NextBack()) {
				snap.Stop()
				return
			}
		}
	}
}
