// Package localvec provides a growable sequence that keeps its first N
// elements in an embedded array and moves to a heap slice only once that
// array is full.
//
// The inline capacity is carried by the array type parameter:
//
//	v := localvec.New[int, [4]int]()
//	v.Push(1) // stored inline
//
// A Vec hands out slices that alias its inline array, so it must not be
// copied after first use. Pass *Vec around instead.
package localvec

import (
	"fmt"
	"iter"
	"slices"
	"unsafe"
)

// Inline lists the array shapes usable as inline storage for a Vec of T.
type Inline[T any] interface {
	[0]T | [1]T | [2]T | [3]T | [4]T | [5]T | [6]T | [7]T | [8]T |
		[9]T | [10]T | [11]T | [12]T | [13]T | [14]T | [15]T | [16]T |
		[24]T | [32]T | [48]T | [64]T | [128]T | [256]T
}

// Vec is a sequence of T whose first len(A) elements live inline.
//
// Exactly one representation is active: the inline array (spilled == false,
// n live elements) or the heap slice (spilled == true). A spilled Vec never
// returns to inline storage.
type Vec[T any, A Inline[T]] struct {
	_ [0]func() // incomparable

	buf     A
	n       int
	heap    []T
	spilled bool
}

// New returns an empty, inline Vec.
func New[T any, A Inline[T]]() *Vec[T, A] {
	return &Vec[T, A]{}
}

// FromArray copies items into a new Vec. The result is inline when the items
// fit into A and spilled otherwise.
func FromArray[T any, A Inline[T]](items ...T) *Vec[T, A] {
	v := &Vec[T, A]{}
	if len(items) <= len(v.buf) {
		copy(v.inline(), items)
		v.n = len(items)
		return v
	}
	v.heap = slices.Clone(items)
	v.spilled = true
	return v
}

// FromSlice adopts s as the heap storage of a new, spilled Vec. The caller
// must not use s afterwards.
func FromSlice[T any, A Inline[T]](s []T) *Vec[T, A] {
	if s == nil {
		s = []T{}
	}
	return &Vec[T, A]{heap: s, spilled: true}
}

// inline returns the whole inline array as a slice.
func (v *Vec[T, A]) inline() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.buf)), len(v.buf))
}

// Len returns the number of live elements.
func (v *Vec[T, A]) Len() int {
	if v.spilled {
		return len(v.heap)
	}
	return v.n
}

// Cap returns the inline capacity, or the heap capacity once spilled.
func (v *Vec[T, A]) Cap() int {
	if v.spilled {
		return cap(v.heap)
	}
	return len(v.buf)
}

// Spilled reports whether the elements live on the heap.
func (v *Vec[T, A]) Spilled() bool {
	return v.spilled
}

// Slice returns the live elements. The slice aliases the Vec's storage:
// writes through it are visible in the Vec, and it is invalidated by the next
// call that changes the length.
func (v *Vec[T, A]) Slice() []T {
	if v.spilled {
		return v.heap
	}
	return v.inline()[:v.n:v.n]
}

// At returns the i-th element. It panics if i is outside [0, Len()).
func (v *Vec[T, A]) At(i int) T {
	v.checkIndex(i)
	return v.Slice()[i]
}

// Set replaces the i-th element. It panics if i is outside [0, Len()).
func (v *Vec[T, A]) Set(i int, x T) {
	v.checkIndex(i)
	v.Slice()[i] = x
}

// Range returns a view of the elements in [lo, hi). It panics unless
// 0 <= lo <= hi <= Len().
func (v *Vec[T, A]) Range(lo, hi int) []T {
	if lo < 0 || hi < lo || hi > v.Len() {
		panic(fmt.Sprintf("localvec: slice bounds [%d:%d] out of range with length %d", lo, hi, v.Len()))
	}
	return v.Slice()[lo:hi]
}

// RangeFrom returns a view of the elements in [lo, Len()).
func (v *Vec[T, A]) RangeFrom(lo int) []T {
	return v.Range(lo, v.Len())
}

// RangeTo returns a view of the elements in [0, hi).
func (v *Vec[T, A]) RangeTo(hi int) []T {
	return v.Range(0, hi)
}

func (v *Vec[T, A]) checkIndex(i int) {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("localvec: index %d out of range with length %d", i, v.Len()))
	}
}

// Push appends x, moving the elements to the heap if the inline array is full.
func (v *Vec[T, A]) Push(x T) {
	if v.spilled {
		v.heap = append(v.heap, x)
		return
	}
	if v.n < len(v.buf) {
		v.inline()[v.n] = x
		v.n++
		return
	}
	heap := make([]T, 0, 2*v.n+1)
	heap = append(heap, v.inline()[:v.n]...)
	v.spill(append(heap, x))
}

// Pop removes and returns the last element. The second result is false when
// the Vec is empty. Pop never shrinks the storage.
func (v *Vec[T, A]) Pop() (T, bool) {
	var zero T
	if v.spilled {
		if len(v.heap) == 0 {
			return zero, false
		}
		last := len(v.heap) - 1
		x := v.heap[last]
		v.heap[last] = zero
		v.heap = v.heap[:last]
		return x, true
	}
	if v.n == 0 {
		return zero, false
	}
	v.n--
	buf := v.inline()
	x := buf[v.n]
	buf[v.n] = zero
	return x, true
}

// Insert places x at index i, shifting later elements right. It panics if
// i > Len().
func (v *Vec[T, A]) Insert(i int, x T) {
	if i < 0 || i > v.Len() {
		panic(fmt.Sprintf("localvec: insert index %d out of range with length %d", i, v.Len()))
	}
	if v.spilled {
		v.heap = slices.Insert(v.heap, i, x)
		return
	}
	buf := v.inline()
	if v.n < len(buf) {
		copy(buf[i+1:v.n+1], buf[i:v.n])
		buf[i] = x
		v.n++
		return
	}
	heap := make([]T, 0, 2*v.n+1)
	heap = append(heap, buf[:i]...)
	heap = append(heap, x)
	heap = append(heap, buf[i:v.n]...)
	v.spill(heap)
}

// Remove deletes and returns the element at index i, shifting later elements
// left. It panics if i is outside [0, Len()).
func (v *Vec[T, A]) Remove(i int) T {
	v.checkIndex(i)
	var zero T
	if v.spilled {
		x := v.heap[i]
		v.heap = slices.Delete(v.heap, i, i+1)
		return x
	}
	buf := v.inline()
	x := buf[i]
	copy(buf[i:v.n-1], buf[i+1:v.n])
	v.n--
	buf[v.n] = zero
	return x
}

// Clear drops every element. A spilled Vec keeps its heap storage.
func (v *Vec[T, A]) Clear() {
	if v.spilled {
		clear(v.heap)
		v.heap = v.heap[:0]
		return
	}
	clear(v.inline()[:v.n])
	v.n = 0
}

// spill switches to heap storage and releases the inline slots.
func (v *Vec[T, A]) spill(heap []T) {
	clear(v.inline())
	v.n = 0
	v.heap = heap
	v.spilled = true
}

// All iterates over index/element pairs without consuming the Vec.
func (v *Vec[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.Slice() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values iterates over the elements without consuming the Vec.
func (v *Vec[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.Slice() {
			if !yield(x) {
				return
			}
		}
	}
}

// Drain yields every element in order and leaves the Vec empty, even when the
// loop stops early.
func (v *Vec[T, A]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		items := v.Slice()
		defer v.Clear()
		for _, x := range items {
			if !yield(x) {
				return
			}
		}
	}
}

// Chunks iterates over consecutive sub-slices of at most size elements. The
// sub-slices alias the Vec and may be written to. It panics if size < 1.
func (v *Vec[T, A]) Chunks(size int) iter.Seq[[]T] {
	if size < 1 {
		panic(fmt.Sprintf("localvec: chunk size %d must be positive", size))
	}
	return slices.Chunk(v.Slice(), size)
}

// String formats the live elements like a slice.
func (v *Vec[T, A]) String() string {
	return fmt.Sprint(v.Slice())
}

// Format implements fmt.Formatter.
func (v *Vec[T, A]) Format(state fmt.State, verb rune) {
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.Slice())
}
