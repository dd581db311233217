package iters_test

import (
	"strand/iters"
	"testing"

	"github.com/stretchr/testify/assert"
)

// These tests pin the ownership and traversal laws every stage must obey,
// independent of what the stage itself does.

func TestSingleTraversalLaw(t *testing.T) {
	t.Run("TerminalDrainsHandle", func(t *testing.T) {
		it := iters.FromSlice([]int{1, 2, 3})
		assert.Equal(t, []int{1, 2, 3}, iters.Collect(it))
		assert.Empty(t, iters.Collect(it), "second drain must observe emptiness")
	})

	t.Run("ValuesDetachesHandle", func(t *testing.T) {
		it := iters.FromSlice([]int{1, 2, 3})
		var first, second []int
		for v := range iters.Values(it) {
			first = append(first, v)
		}
		for v := range iters.Values(it) {
			second = append(second, v)
		}
		assert.Equal(t, []int{1, 2, 3}, first)
		assert.Empty(t, second)
	})

	t.Run("BreakExhaustsHandle", func(t *testing.T) {
		it := iters.FromSlice([]int{1, 2, 3, 4})
		for range iters.Values(it) {
			break
		}
		assert.True(t, it.Empty(), "ranged handle must be exhausted even after break")
	})

	t.Run("HoldsThroughAdapterChain", func(t *testing.T) {
		it := iters.Map(iters.Filter(iters.FromSlice([]int{1, 2, 3, 4}), even), even)
		assert.Equal(t, 2, iters.Count(it))
		assert.Equal(t, 0, iters.Count(it))
	})
}

func TestCombinatorsClaimUpstream(t *testing.T) {
	src := iters.FromSlice([]int{1, 2, 3})
	mapped := iters.Map(src, func(v int) int { return v + 1 })

	assert.True(t, src.Empty(), "composing must exhaust the old handle")
	assert.Equal(t, []int{2, 3, 4}, iters.Collect(mapped), "the new handle owns the elements")
}

func TestDetachMovesWholeChain(t *testing.T) {
	it := iters.Take(iters.Enumerate(iters.FromSlice([]string{"a", "b", "c"})), 2)
	snap := it.Detach()

	assert.True(t, it.Empty())
	assert.Equal(t,
		[]iters.Pair[int, string]{{0, "a"}, {1, "b"}},
		iters.Collect(snap),
		"detached snapshot keeps stage state (take budget, enumerate counter)")
}

func TestBackward(t *testing.T) {
	it := iters.FromSlice([]int{1, 2, 3})
	var got []int
	for v := range iters.Backward(it) {
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
	assert.True(t, it.Empty())
}

func TestLengthLaws(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6}
	for _, n := range []int{0, 1, 3, 6, 9} {
		assert.Equal(t, max(0, len(data)-n),
			iters.Count(iters.Skip(iters.FromSlice(data), n)), "skip(%d)", n)
		assert.Equal(t, min(n, len(data)),
			iters.Count(iters.Take(iters.FromSlice(data), n)), "take(%d)", n)
	}
}

func TestPartitionLaw(t *testing.T) {
	data := []int{3, 1, 4, 1, 5, 9, 2, 6}
	matches, rest := iters.Partition(iters.FromSlice(data), even)

	assert.Len(t, append(matches, rest...), len(data))
	assert.ElementsMatch(t, data, append(append([]int{}, matches...), rest...))
	assert.Equal(t, []int{4, 2, 6}, matches, "relative order within bucket")
	assert.Equal(t, []int{3, 1, 1, 5, 9}, rest, "relative order within bucket")
}

func TestChainLaw(t *testing.T) {
	a := []int{1, 2}
	b := []int{3, 4, 5}
	got := iters.Collect(iters.Chain(iters.FromSlice(a), iters.FromSlice(b)))
	assert.Equal(t, append(append([]int{}, a...), b...), got)
}
