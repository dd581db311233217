// Package lists provides a sentinel-based doubly linked list that plugs
// into the iters engine from both sides: it is a bidirectional traversal
// source ([LinkedList.Iter], [LinkedList.IterMut]) and an ordered-append
// collect target ([LinkedList.Insert]).
package lists

import (
	"fmt"
	"strings"
)

var ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked list with head and tail sentinels, so
// every real node has non-nil neighbors and both ends are reachable in
// O(1).
type LinkedList[T any] struct {
	head *node[T] // sentinel before the first element
	tail *node[T] // sentinel after the last element
	size int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		head: &node[T]{},
		tail: &node[T]{},
	}
	ll.head.next = ll.tail
	ll.tail.prev = ll.head
	return ll
}

// Of builds a list holding the given values in order.
func Of[T any](values ...T) *LinkedList[T] {
	ll := NewLinkedList[T]()
	ll.Add(values...)
	return ll
}

// insertAfter links newNode directly after at.
func (ll *LinkedList[T]) insertAfter(at *node[T], newNode *node[T]) {
	newNode.prev = at
	newNode.next = at.next
	at.next.prev = newNode
	at.next = newNode
	ll.size++
}

// nodeAt returns the node at index, walking from whichever end is closer.
// Bounds checking is the caller's job; index == size yields the tail
// sentinel.
func (ll *LinkedList[T]) nodeAt(index int) *node[T] {
	if index == ll.size {
		return ll.tail
	}
	if index < ll.size/2 {
		current := ll.head.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tail.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

// Add appends values to the end of the list.
func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		ll.insertAfter(ll.tail.prev, &node[T]{val: value})
	}
}

// AddFirst prepends a value to the list.
func (ll *LinkedList[T]) AddFirst(value T) {
	ll.insertAfter(ll.head, &node[T]{val: value})
}

// Insert appends a single value; it implements the iters insertion
// capability (ordered append), so a list can be a collect target.
func (ll *LinkedList[T]) Insert(value T) {
	ll.Add(value)
}

// InsertAt inserts value at the specified index.
func (ll *LinkedList[T]) InsertAt(index int, value T) error {
	if index < 0 || index > ll.size {
		return ErrIndexOutOfBounds
	}
	ll.insertAfter(ll.nodeAt(index).prev, &node[T]{val: value})
	return nil
}

// Get retrieves the element at the specified index. O(min(i, n-i)).
func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, ErrIndexOutOfBounds
	}
	return ll.nodeAt(index).val, nil
}

// Set replaces the element at the specified index.
func (ll *LinkedList[T]) Set(index int, value T) error {
	if index < 0 || index >= ll.size {
		return ErrIndexOutOfBounds
	}
	ll.nodeAt(index).val = value
	return nil
}

// First returns the first element without removing it.
func (ll *LinkedList[T]) First() (val T, err error) {
	if ll.size == 0 {
		return val, ErrIndexOutOfBounds
	}
	return ll.head.next.val, nil
}

// Last returns the last element without removing it.
func (ll *LinkedList[T]) Last() (val T, err error) {
	if ll.size == 0 {
		return val, ErrIndexOutOfBounds
	}
	return ll.tail.prev.val, nil
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	// Unlink all nodes to help GC
	current := ll.head.next
	var zero T
	for current != ll.tail {
		next := current.next
		current.prev = nil
		current.next = nil
		current.val = zero
		current = next
	}
	ll.head.next = ll.tail
	ll.tail.prev = ll.head
	ll.size = 0
}

// ToSlice copies the elements into a native slice in list order.
func (ll *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, ll.size)
	for current := ll.head.next; current != ll.tail; current = current.next {
		out = append(out, current.val)
	}
	return out
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for current := ll.head.next; current != ll.tail; current = current.next {
		fmt.Fprintf(&sb, "%v", current.val)
		if current.next != ll.tail {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
