package lists

import "strand/iters"

// listIter is a front/back node-pair source over a LinkedList. front is
// the first remaining node; edge is the node just past the last remaining
// one, so front == edge means empty. remaining is maintained on every
// consume, giving O(1) distance over a structure whose positions cannot
// be subtracted.
//
// The source reads the list but never restructures it; structural
// modification of the list while a listIter is live is not supported.
type listIter[T, E any] struct {
	front     *node[T]
	edge      *node[T]
	remaining int
	elem      func(*node[T]) E
}

// Iter returns a double-ended, read-only iterator over the list's current
// elements.
func (ll *LinkedList[T]) Iter() iters.Iterator[T] {
	return &listIter[T, T]{
		front:     ll.head.next,
		edge:      ll.tail,
		remaining: ll.size,
		elem:      func(n *node[T]) T { return n.val },
	}
}

// IterMut returns a double-ended iterator over pointers to the list's
// elements, permitting in-place modification through the engine (for
// example via Map or ForEach) without structural change.
func (ll *LinkedList[T]) IterMut() iters.Iterator[*T] {
	return &listIter[T, *T]{
		front:     ll.head.next,
		edge:      ll.tail,
		remaining: ll.size,
		elem:      func(n *node[T]) *T { return &n.val },
	}
}

func (li *listIter[T, E]) Peek() E     { return li.elem(li.front) }
func (li *listIter[T, E]) PeekBack() E { return li.elem(li.edge.prev) }

func (li *listIter[T, E]) Next() E {
	v := li.elem(li.front)
	li.front = li.front.next
	li.remaining--
	return v
}

func (li *listIter[T, E]) NextBack() E {
	li.edge = li.edge.prev
	li.remaining--
	return li.elem(li.edge)
}

func (li *listIter[T, E]) Empty() bool { return li.front == li.edge }
func (li *listIter[T, E]) Len() int    { return li.remaining }

func (li *listIter[T, E]) Stop() {
	li.front = li.edge
	li.remaining = 0
}

func (li *listIter[T, E]) Detach() iters.Iterator[E] {
	clone := *li
	li.Stop()
	return &clone
}
