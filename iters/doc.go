/*
Package iters provides lazy, composable, double-ended iterators.

Unlike iter.Seq, an [Iterator] is pull-based and double-ended: elements can
be peeked and consumed from either the front or the back of the remaining
sequence. Transformation stages ([Map], [Filter], [Chain], [Zip],
[Enumerate], [Reverse], [Skip], [StepBy], [Take]) are lazy wrappers; nothing
is materialized until a terminal operation ([Collect], [Fold], [Count],
[Find], ...) drains the chain.

# Composition

Each combinator claims ownership of its upstream iterator and returns a new
one. The old handle is left exhausted, so there is always exactly one live
handle to any stage:

	it := iters.FromSlice([]int{1, 2, 3, 4, 5, 6, 7})
	evens := iters.Filter(it, func(v int) bool { return v%2 == 0 })
	// it is exhausted here; evens owns the chain
	doubled := iters.Map(evens, func(v int) int { return v * 2 })
	result := iters.Collect(doubled) // [4 8 12]

# Single traversal

An iterator chain can be drained exactly once. Terminal operations consume
the chain, and [Values]/[Backward] detach the handle's state before
iterating, so a second attempt to iterate the same handle observes
immediate emptiness instead of re-traversing.

# Double-ended traversal

Every iterator supports both ends. [Reverse] swaps them, and stages like
[StepBy] keep the two directions consistent: stepping backward visits the
same logical elements forward stepping would, starting from the far end.

# Errors

Missing values are ordinary outcomes, reported as (value, ok) pairs.
Construction contract violations (a non-positive stride) panic immediately.
Peeking or consuming an empty iterator is a caller error with undefined
behavior; guard with Empty.
*/
package iters
