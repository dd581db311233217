// Package deques provides a ring-buffer double-ended queue that plugs
// into the iters engine from both sides: an indexable bidirectional
// traversal source ([Deque.Iter], [Deque.IterMut]) and an ordered-append
// collect target ([Deque.Insert]).
package deques

import "math/bits"

// Deque is a generic double-ended queue over a circular array. The
// backing array's length is always a power of two so that logical indices
// wrap with a mask instead of a modulo.
type Deque[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// NewDeque creates a Deque with at least the given initial capacity.
func NewDeque[T any](initialCapacity int) *Deque[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := 1
	if initialCapacity > 1 {
		capacity = 1 << uint(bits.Len(uint(initialCapacity-1)))
	}
	return &Deque[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

// DequeOf builds a deque holding the given values front to back.
func DequeOf[T any](values ...T) *Deque[T] {
	d := NewDeque[T](len(values))
	d.PushBackAll(values...)
	return d
}

// grow doubles the buffer until it can hold size+extra elements,
// unwrapping the contents to the start of the new buffer.
func (d *Deque[T]) grow(extra int) {
	newCapacity := 1 << uint(bits.Len(uint(d.size+extra-1)))
	newBuf := make([]T, newCapacity)

	if d.head+d.size <= len(d.buf) {
		copy(newBuf, d.buf[d.head:d.head+d.size])
	} else {
		// wrapped around: head to end, then start to tail
		n := copy(newBuf, d.buf[d.head:])
		tailPos := (d.head + d.size) & d.mask
		copy(newBuf[n:], d.buf[:tailPos])
	}

	clear(d.buf)
	d.buf = newBuf
	d.head = 0
	d.mask = newCapacity - 1
}

// PushBack appends value at the back.
func (d *Deque[T]) PushBack(value T) {
	if d.size == len(d.buf) {
		d.grow(1)
	}
	d.buf[(d.head+d.size)&d.mask] = value
	d.size++
}

// PushBackAll appends values at the back in order.
func (d *Deque[T]) PushBackAll(values ...T) {
	n := len(values)
	if n == 0 {
		return
	}
	if d.size+n > len(d.buf) {
		d.grow(n)
	}
	tail := (d.head + d.size) & d.mask
	if tail+n <= len(d.buf) {
		copy(d.buf[tail:], values)
	} else {
		// wrapped around
		part1 := len(d.buf) - tail
		copy(d.buf[tail:], values[:part1])
		copy(d.buf, values[part1:])
	}
	d.size += n
}

// PushFront prepends value at the front.
func (d *Deque[T]) PushFront(value T) {
	if d.size == len(d.buf) {
		d.grow(1)
	}
	d.head = (d.head - 1) & d.mask
	d.buf[d.head] = value
	d.size++
}

// Insert appends a single value at the back; it implements the iters
// insertion capability (ordered append), so a deque can be a collect
// target.
func (d *Deque[T]) Insert(value T) {
	d.PushBack(value)
}

// PopFront removes and returns the front element.
func (d *Deque[T]) PopFront() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	value = d.buf[d.head]
	var zero T
	d.buf[d.head] = zero // clear reference
	d.head = (d.head + 1) & d.mask
	d.size--
	return value, true
}

// PopBack removes and returns the back element.
func (d *Deque[T]) PopBack() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	tail := (d.head + d.size - 1) & d.mask
	value = d.buf[tail]
	var zero T
	d.buf[tail] = zero // clear reference
	d.size--
	return value, true
}

// Front returns the front element without removing it.
func (d *Deque[T]) Front() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	return d.buf[d.head], true
}

// Back returns the back element without removing it.
func (d *Deque[T]) Back() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	return d.buf[(d.head+d.size-1)&d.mask], true
}

// At returns the element at logical index i (0 is the front). O(1).
func (d *Deque[T]) At(i int) (value T, ok bool) {
	if i < 0 || i >= d.size {
		return value, false
	}
	return d.buf[(d.head+i)&d.mask], true
}

func (d *Deque[T]) Size() int {
	return d.size
}

func (d *Deque[T]) IsEmpty() bool {
	return d.size == 0
}

func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head = 0
	d.size = 0
}

// ToSlice copies the elements into a native slice, front to back.
func (d *Deque[T]) ToSlice() []T {
	out := make([]T, d.size)
	if d.head+d.size <= len(d.buf) {
		copy(out, d.buf[d.head:d.head+d.size])
	} else {
		n := copy(out, d.buf[d.head:])
		copy(out[n:], d.buf[:(d.head+d.size)&d.mask])
	}
	return out
}
