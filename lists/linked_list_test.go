package lists_test

import (
	"slices"
	"strand/iters"
	"strand/lists"
	"testing"
)

func TestLinkedListBasics(t *testing.T) {
	t.Run("AddAndGet", func(t *testing.T) {
		ll := lists.NewLinkedList[int]()
		ll.Add(1, 2, 3)

		if got := ll.Size(); got != 3 {
			t.Errorf("Size = %d, want 3", got)
		}
		for i, want := range []int{1, 2, 3} {
			got, err := ll.Get(i)
			if err != nil || got != want {
				t.Errorf("Get(%d) = (%d, %v), want (%d, nil)", i, got, err, want)
			}
		}
	})

	t.Run("AddFirst", func(t *testing.T) {
		ll := lists.Of(2, 3)
		ll.AddFirst(1)
		if got := ll.ToSlice(); !slices.Equal(got, []int{1, 2, 3}) {
			t.Errorf("ToSlice = %v", got)
		}
	})

	t.Run("InsertAt", func(t *testing.T) {
		ll := lists.Of(1, 3)
		if err := ll.InsertAt(1, 2); err != nil {
			t.Fatal(err)
		}
		if got := ll.ToSlice(); !slices.Equal(got, []int{1, 2, 3}) {
			t.Errorf("ToSlice = %v", got)
		}
		if err := ll.InsertAt(7, 9); err == nil {
			t.Error("InsertAt out of bounds did not error")
		}
	})

	t.Run("SetAndBounds", func(t *testing.T) {
		ll := lists.Of(1, 2)
		if err := ll.Set(1, 20); err != nil {
			t.Fatal(err)
		}
		if got, _ := ll.Get(1); got != 20 {
			t.Errorf("Get(1) = %d, want 20", got)
		}
		if err := ll.Set(5, 0); err == nil {
			t.Error("Set out of bounds did not error")
		}
		if _, err := ll.Get(-1); err == nil {
			t.Error("Get(-1) did not error")
		}
	})

	t.Run("FirstLast", func(t *testing.T) {
		ll := lists.Of("a", "b", "c")
		if v, err := ll.First(); err != nil || v != "a" {
			t.Errorf("First = (%q, %v)", v, err)
		}
		if v, err := ll.Last(); err != nil || v != "c" {
			t.Errorf("Last = (%q, %v)", v, err)
		}

		empty := lists.NewLinkedList[string]()
		if _, err := empty.First(); err == nil {
			t.Error("First of empty did not error")
		}
	})

	t.Run("Clear", func(t *testing.T) {
		ll := lists.Of(1, 2, 3)
		ll.Clear()
		if !ll.IsEmpty() || ll.Size() != 0 {
			t.Error("list not empty after Clear")
		}
		ll.Add(4)
		if got := ll.ToSlice(); !slices.Equal(got, []int{4}) {
			t.Errorf("reuse after Clear = %v", got)
		}
	})

	t.Run("String", func(t *testing.T) {
		if got := lists.Of(1, 2, 3).String(); got != "[1, 2, 3]" {
			t.Errorf("String = %q", got)
		}
	})
}

func TestLinkedListIter(t *testing.T) {
	t.Run("DoubleEnded", func(t *testing.T) {
		it := lists.Of(1, 2, 3, 4).Iter()
		if got := it.Len(); got != 4 {
			t.Errorf("Len = %d, want 4", got)
		}
		if got := it.Next(); got != 1 {
			t.Errorf("Next = %d, want 1", got)
		}
		if got := it.NextBack(); got != 4 {
			t.Errorf("NextBack = %d, want 4", got)
		}
		if got := it.Len(); got != 2 {
			t.Errorf("Len = %d, want 2", got)
		}
	})

	t.Run("ThroughEngine", func(t *testing.T) {
		it := iters.Reverse(lists.Of(1, 2, 3).Iter())
		if got := iters.Collect(it); !slices.Equal(got, []int{3, 2, 1}) {
			t.Errorf("reversed list = %v", got)
		}
	})

	t.Run("EmptyList", func(t *testing.T) {
		it := lists.NewLinkedList[int]().Iter()
		if !it.Empty() {
			t.Error("iterator over empty list is not empty")
		}
	})

	t.Run("SingleTraversal", func(t *testing.T) {
		it := lists.Of(1, 2).Iter()
		_ = iters.Collect(it)
		if got := iters.Count(it); got != 0 {
			t.Errorf("second drain yielded %d elements", got)
		}
	})
}

func TestLinkedListIterMut(t *testing.T) {
	ll := lists.Of(1, 2, 3)
	iters.ForEach(ll.IterMut(), func(p *int) { *p *= 10 })
	if got := ll.ToSlice(); !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("list after in-place update = %v", got)
	}
}

func TestLinkedListAsCollectTarget(t *testing.T) {
	ll := lists.NewLinkedList[int]()
	var _ iters.Inserter[int] = ll

	iters.CollectInto(iters.RangeOf(0, 4, 1), ll)
	if got := ll.ToSlice(); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("collected list = %v", got)
	}
}
