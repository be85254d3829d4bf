package localvec

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// CONSTRUCTION
// =============================================================================

func TestNew(t *testing.T) {
	v := New[int, [10]int]()
	assert.False(t, v.Spilled())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 10, v.Cap())
	assert.Empty(t, v.Slice())
}

func TestFromArray(t *testing.T) {
	t.Run("fits inline", func(t *testing.T) {
		v := FromArray[int, [3]int](0, 1, 2)
		assert.False(t, v.Spilled())
		assert.Equal(t, 3, v.Len())
	})

	t.Run("too large spills", func(t *testing.T) {
		v := FromArray[int, [2]int](0, 1, 2)
		assert.True(t, v.Spilled())
		assert.Equal(t, 3, v.Len())
	})

	t.Run("unused slots hold zero values", func(t *testing.T) {
		v := FromArray[int, [4]int](7, 8)
		assert.Equal(t, [4]int{7, 8, 0, 0}, v.buf)
	})

	t.Run("copies its input", func(t *testing.T) {
		in := []int{1, 2, 3, 4, 5}
		v := FromArray[int, [2]int](in...)
		in[0] = 99
		assert.Equal(t, 1, v.At(0))
	})

	t.Run("zero capacity", func(t *testing.T) {
		v := FromArray[int, [0]int]()
		assert.False(t, v.Spilled())
		v.Push(1)
		assert.True(t, v.Spilled())
	})
}

func TestFromSlice(t *testing.T) {
	v := FromSlice[int, [10]int]([]int{1, 2, 3})
	assert.True(t, v.Spilled(), "a slice never starts inline")

	v = FromSlice[int, [2]int]([]int{1, 2, 3})
	assert.True(t, v.Spilled())
	assert.Equal(t, []int{1, 2, 3}, v.Slice())

	v = FromSlice[int, [2]int](nil)
	assert.True(t, v.Spilled())
	assert.Equal(t, 0, v.Len())
}

func TestSliceViews(t *testing.T) {
	v := FromArray[int, [256]int](make([]int, 128)...)
	assert.Len(t, v.Slice(), 128)
	v = FromArray[int, [32]int](make([]int, 128)...)
	assert.Len(t, v.Slice(), 128)

	v = FromArray[int, [4]int](1, 2, 3)
	v.Slice()[1] = 20
	assert.Equal(t, 20, v.At(1), "slice writes go through to the Vec")

	s := v.Slice()
	assert.Equal(t, 3, cap(s), "appending to the view must not touch unused slots")
}

// =============================================================================
// MUTATION
// =============================================================================

func TestPush(t *testing.T) {
	v := New[int, [128]int]()
	for i := 0; i < 128; i++ {
		v.Push(i)
	}
	assert.False(t, v.Spilled())
	assert.Equal(t, 128, v.Len())

	for i := 128; i < 256; i++ {
		v.Push(i)
	}
	require.True(t, v.Spilled())
	assert.Equal(t, 256, v.Len())
	for i := 0; i < 256; i++ {
		assert.Equal(t, i, v.At(i))
	}
}

func TestPushPromotes(t *testing.T) {
	v := FromArray[int, [4]int](0, 1, 2)
	v.Push(3)
	assert.False(t, v.Spilled())
	assert.Equal(t, 4, v.Len())

	v.Push(4)
	assert.True(t, v.Spilled())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, v.Slice())
	assert.Equal(t, [4]int{}, v.buf, "inline slots are released on promotion")
}

func TestPop(t *testing.T) {
	cases := []struct {
		name string
		vec  *Vec[int, [128]int]
		n    int
	}{
		{"inline", FromArray[int, [128]int](make([]int, 128)...), 128},
		{"spilled from array", FromArray[int, [128]int](make([]int, 256)...), 256},
		{"spilled from slice", FromSlice[int, [128]int](make([]int, 256)), 256},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < tc.n; i++ {
				x, ok := tc.vec.Pop()
				require.True(t, ok)
				assert.Equal(t, 0, x)
			}
			_, ok := tc.vec.Pop()
			assert.False(t, ok)
		})
	}
}

func TestPopReleasesSlot(t *testing.T) {
	a, b := "a", "b"
	v := FromArray[*string, [2]*string](&a, &b)
	x, ok := v.Pop()
	require.True(t, ok)
	assert.Same(t, &b, x)
	assert.Nil(t, v.buf[1])
}

func TestPopDoesNotDemote(t *testing.T) {
	v := FromArray[int, [2]int](1, 2, 3)
	v.Pop()
	v.Pop()
	assert.True(t, v.Spilled())
	assert.Equal(t, []int{1}, v.Slice())
}

func TestInsert(t *testing.T) {
	t.Run("inline with room", func(t *testing.T) {
		v := FromArray[int, [4]int](0, 1, 2)
		v.Insert(1, 3)
		assert.False(t, v.Spilled())
		assert.Equal(t, [4]int{0, 3, 1, 2}, v.buf)
		assert.Equal(t, 4, v.Len())

		v.Insert(0, 9)
		assert.True(t, v.Spilled())
		assert.Equal(t, []int{9, 0, 3, 1, 2}, v.Slice())
	})

	t.Run("inline full", func(t *testing.T) {
		v := FromArray[int, [4]int](0, 1, 2, 3)
		v.Insert(1, 3)
		assert.True(t, v.Spilled())
		assert.Equal(t, []int{0, 3, 1, 2, 3}, v.Slice())
	})

	t.Run("full, at the end", func(t *testing.T) {
		v := FromArray[int, [4]int](0, 1, 2, 3)
		v.Insert(4, 4)
		assert.True(t, v.Spilled())
		assert.Equal(t, []int{0, 1, 2, 3, 4}, v.Slice())
	})

	t.Run("spilled", func(t *testing.T) {
		v := FromArray[int, [4]int](0, 1, 2, 3, 4)
		v.Insert(1, 3)
		assert.Equal(t, []int{0, 3, 1, 2, 3, 4}, v.Slice())
	})

	t.Run("past the end panics", func(t *testing.T) {
		v := FromArray[int, [4]int](0, 1)
		assert.PanicsWithValue(t, "localvec: insert index 3 out of range with length 2", func() {
			v.Insert(3, 7)
		})
		assert.Equal(t, []int{0, 1}, v.Slice())
	})
}

func TestRemove(t *testing.T) {
	v := FromArray[int, [4]int](0, 1, 2)
	x := v.Remove(1)
	assert.Equal(t, 1, x)
	assert.False(t, v.Spilled())
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, [4]int{0, 2, 0, 0}, v.buf)

	w := FromArray[int, [2]int](0, 1, 2)
	x = w.Remove(1)
	assert.Equal(t, 1, x)
	assert.True(t, w.Spilled())
	assert.Equal(t, []int{0, 2}, w.Slice())

	assert.Panics(t, func() { w.Remove(2) })
	assert.Panics(t, func() { New[int, [2]int]().Remove(0) })
}

func TestClear(t *testing.T) {
	v := FromArray[int, [10]int](0, 1, 2, 3)
	assert.False(t, v.Spilled())
	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, [10]int{}, v.buf)

	w := FromArray[int, [3]int](0, 1, 2, 3)
	assert.True(t, w.Spilled())
	w.Clear()
	assert.Equal(t, 0, w.Len())
	assert.True(t, w.Spilled(), "clear keeps the heap storage")
}

// =============================================================================
// OBSERVATION
// =============================================================================

func TestIndexing(t *testing.T) {
	for _, v := range []*Vec[int, [10]int]{
		FromArray[int, [10]int](0, 1, 2, 3, 4, 5),
		FromSlice[int, [10]int]([]int{0, 1, 2, 3, 4, 5}),
	} {
		assert.Equal(t, 1, v.At(1))
		assert.Equal(t, []int{0, 1}, v.RangeTo(2))
		assert.Equal(t, []int{4, 5}, v.RangeFrom(4))
		assert.Equal(t, []int{1, 2}, v.Range(1, 3))
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, v.Range(0, 6), "upper bound equal to Len is valid")
		assert.Empty(t, v.Range(6, 6))
		assert.Empty(t, v.RangeFrom(6))

		assert.Panics(t, func() { v.At(6) })
		assert.Panics(t, func() { v.At(-1) })
		assert.Panics(t, func() { v.Range(2, 7) })
		assert.Panics(t, func() { v.Range(3, 2) })
	}
}

func TestIndexingIgnoresUnusedSlots(t *testing.T) {
	v := FromArray[int, [8]int](1, 2)
	assert.PanicsWithValue(t, "localvec: index 2 out of range with length 2", func() { v.At(2) })
	assert.Panics(t, func() { v.Set(5, 1) })
	v.Set(1, 7)
	assert.Equal(t, []int{1, 7}, v.Slice())
}

func TestIterators(t *testing.T) {
	v := FromArray[string, [10]string]("0", "1", "2", "3", "4", "5")

	var got []string
	for x := range v.Values() {
		got = append(got, x)
	}
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5"}, got)
	assert.Equal(t, 6, v.Len(), "borrowing iteration leaves the Vec intact")

	for i, x := range v.All() {
		assert.Equal(t, strconv.Itoa(i), x)
	}

	for x := range v.Values() {
		if x == "2" {
			break
		}
	}
}

func TestDrain(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		v := FromArray[int, [128]int](make([]int, 32)...)
		n := 0
		for x := range v.Drain() {
			assert.Equal(t, 0, x)
			n++
		}
		assert.Equal(t, 32, n)
		assert.Equal(t, 0, v.Len())
	})

	t.Run("spilled", func(t *testing.T) {
		v := FromSlice[int, [128]int](make([]int, 128))
		assert.Equal(t, 128, len(slices.Collect(v.Drain())))
		assert.Equal(t, 0, v.Len())
		assert.Empty(t, slices.Collect(v.Drain()), "a drained Vec is exhausted")
	})

	t.Run("order", func(t *testing.T) {
		v := FromArray[int, [4]int](3, 1, 4, 1, 5)
		assert.Equal(t, []int{3, 1, 4, 1, 5}, slices.Collect(v.Drain()))
	})

	t.Run("early stop still empties", func(t *testing.T) {
		v := FromArray[int, [4]int](1, 2, 3)
		for range v.Drain() {
			break
		}
		assert.Equal(t, 0, v.Len())
	})
}

func TestChunks(t *testing.T) {
	v := FromArray[int, [8]int](0, 1, 2, 3, 4, 5, 6)
	got := slices.Collect(v.Chunks(3))
	want := [][]int{{0, 1, 2}, {3, 4, 5}, {6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Chunks(3) mismatch (-want +got):\n%s", diff)
	}

	for c := range v.Chunks(2) {
		c[0] = -1
	}
	assert.Equal(t, []int{-1, 1, -1, 3, -1, 5, -1}, v.Slice())

	assert.Empty(t, slices.Collect(New[int, [8]int]().Chunks(4)))
	assert.Panics(t, func() { v.Chunks(0) })
}

func TestSliceOperations(t *testing.T) {
	v := FromArray[int, [128]int](5, 3, 9, 1)
	slices.Sort(v.Slice())
	assert.Equal(t, []int{1, 3, 5, 9}, v.Slice())

	i, found := slices.BinarySearch(v.Slice(), 5)
	assert.True(t, found)
	assert.Equal(t, 2, i)
}

func TestFormat(t *testing.T) {
	v := FromArray[int, [4]int](1, 2)
	assert.Equal(t, "[1 2]", v.String())
	assert.Equal(t, "[1 2]", fmt.Sprintf("%v", v))
	assert.Equal(t, "[01 02]", fmt.Sprintf("%02d", v))
}

// =============================================================================
// PROPERTIES
// =============================================================================

// TestMatchesReferenceSlice drives a Vec and a plain slice with the same random
// operations and requires identical contents after every step.
func TestMatchesReferenceSlice(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 200; round++ {
		v := New[int, [4]int]()
		var ref []int
		wasSpilled := false

		for step := 0; step < 60; step++ {
			switch op := rng.IntN(5); {
			case op == 0 || op == 1:
				x := rng.IntN(1000)
				v.Push(x)
				ref = append(ref, x)
			case op == 2:
				got, ok := v.Pop()
				if len(ref) == 0 {
					require.False(t, ok)
					break
				}
				require.True(t, ok)
				require.Equal(t, ref[len(ref)-1], got)
				ref = ref[:len(ref)-1]
			case op == 3:
				i := rng.IntN(len(ref) + 1)
				x := rng.IntN(1000)
				v.Insert(i, x)
				ref = slices.Insert(ref, i, x)
			case op == 4 && len(ref) > 0:
				i := rng.IntN(len(ref))
				require.Equal(t, ref[i], v.Remove(i))
				ref = slices.Delete(ref, i, i+1)
			}
			if rng.IntN(40) == 0 {
				v.Clear()
				ref = ref[:0]
			}

			if diff := cmp.Diff(ref, v.Slice(), cmpEmpty); diff != "" {
				t.Fatalf("round %d step %d: contents mismatch (-want +got):\n%s", round, step, diff)
			}
			if wasSpilled {
				require.True(t, v.Spilled(), "a spilled Vec must stay spilled")
			}
			if !v.Spilled() {
				require.LessOrEqual(t, v.Len(), 4)
			}
			wasSpilled = v.Spilled()
		}
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	for _, v := range []*Vec[int, [3]int]{
		FromArray[int, [3]int](1, 2),
		FromArray[int, [3]int](1, 2, 3),
		FromArray[int, [3]int](1, 2, 3, 4),
	} {
		before := slices.Clone(v.Slice())
		v.Push(42)
		x, ok := v.Pop()
		require.True(t, ok)
		assert.Equal(t, 42, x)
		assert.Equal(t, before, v.Slice())
	}
}

var cmpEmpty = cmp.Comparer(func(a, b []int) bool {
	return slices.Equal(a, b)
})
