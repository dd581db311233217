package iters

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Inserter is the insertion capability collect targets implement. A target
// decides its own discipline: ordered append (slices, lists, deques) or
// keyed, deduplicating insert (sets, maps).
type Inserter[T any] interface {
	Insert(T)
}

// Collect drains it front to back into a fresh slice, order preserved.
func Collect[T any](it Iterator[T]) []T {
	out := make([]T, 0, it.Len())
	for !it.Empty() {
		out = append(out, it.Next())
	}
	return out
}

// CollectInto drains it front to back into dst using dst's insertion
// discipline.
func CollectInto[T any](it Iterator[T], dst Inserter[T]) {
	for !it.Empty() {
		dst.Insert(it.Next())
	}
}

// SetOf is a deduplicating Inserter over a plain map-backed set.
type SetOf[T comparable] map[T]struct{}

func (s SetOf[T]) Insert(v T) { s[v] = struct{}{} }

// CollectSet drains it into a set; duplicates collapse.
func CollectSet[T comparable](it Iterator[T]) SetOf[T] {
	set := make(SetOf[T], it.Len())
	CollectInto(it, set)
	return set
}

// CollectMap drains an iterator of key/value pairs into a map; a later
// pair overwrites an earlier one with the same key.
func CollectMap[K comparable, V any](it Iterator[Pair[K, V]]) map[K]V {
	m := make(map[K]V, it.Len())
	for !it.Empty() {
		p := it.Next()
		m[p.First] = p.Second
	}
	return m
}

// CollectOrderedMap drains an iterator of key/value pairs into an ordered
// map preserving first-insertion order; a later pair overwrites the value
// of an earlier key without moving it.
func CollectOrderedMap[K comparable, V any](it Iterator[Pair[K, V]]) *orderedmap.OrderedMap[K, V] {
	m := orderedmap.New[K, V]()
	for !it.Empty() {
		p := it.Next()
		m.Set(p.First, p.Second)
	}
	return m
}
