// Package heap implements a binary min-heap over a growable slice, ordered
// by a caller-supplied strict less-than predicate rather than a fixed
// ordering, so the same type works as a min-heap, a max-heap, or an
// ordering over a struct field depending on what predicate is supplied.
package heap

import "github.com/pkg/errors"

// ErrEmpty is returned by Pop when the heap holds no elements.
var ErrEmpty = errors.New("heap: pop of empty heap")

// LessFunc reports whether a sorts strictly before b.
type LessFunc[T any] func(a, b T) bool

// BinaryHeap is a binary heap over a growable []T, encoding parent/child
// relationships at indices left(i)=2i+1, right(i)=2i+2, parent(i)=(i-1)/2.
// Not goroutine-safe; use SafeBinaryHeap for concurrent access.
type BinaryHeap[T any] struct {
	arr  []T
	less LessFunc[T]
}

// New creates an empty heap ordered by less.
func New[T any](less LessFunc[T]) *BinaryHeap[T] {
	return &BinaryHeap[T]{less: less}
}

// NewFromSlice takes ownership of items and heapifies it in place in O(n).
func NewFromSlice[T any](less LessFunc[T], items []T) *BinaryHeap[T] {
	h := &BinaryHeap[T]{arr: items, less: less}
	h.makeHeap()
	return h
}

// Len returns the number of elements in the heap.
func (h *BinaryHeap[T]) Len() int { return len(h.arr) }

func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
func parent(i int) int { return (i - 1) / 2 }

// Push inserts v and restores the heap invariant.
func (h *BinaryHeap[T]) Push(v T) {
	h.arr = append(h.arr, v)
	h.siftUp(len(h.arr) - 1)
}

// Pop removes and returns the smallest element. Returns ErrEmpty if the
// heap has no elements.
func (h *BinaryHeap[T]) Pop() (T, error) {
	var zero T
	n := len(h.arr)
	if n == 0 {
		return zero, ErrEmpty
	}
	root := h.arr[0]
	last := h.arr[n-1]
	h.arr[0] = last
	h.arr = h.arr[:n-1]
	if len(h.arr) > 0 {
		h.heapify(0)
	}
	return root, nil
}

// Peek returns the smallest element without removing it.
func (h *BinaryHeap[T]) Peek() (T, error) {
	var zero T
	if len(h.arr) == 0 {
		return zero, ErrEmpty
	}
	return h.arr[0], nil
}

// Update replaces the value at index i and restores the heap invariant in
// whichever direction is needed.
func (h *BinaryHeap[T]) Update(i int, v T) {
	old := h.arr[i]
	h.arr[i] = v
	if h.less(v, old) {
		h.siftUp(i)
	} else {
		h.heapify(i)
	}
}

func (h *BinaryHeap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(h.arr[i], h.arr[p]) {
			break
		}
		h.arr[i], h.arr[p] = h.arr[p], h.arr[i]
		i = p
	}
}

// heapify sifts the element at i down until the subtree rooted there
// satisfies the heap invariant.
func (h *BinaryHeap[T]) heapify(i int) {
	n := len(h.arr)
	for {
		r := i
		l, rt := left(i), right(i)
		if l < n && h.less(h.arr[l], h.arr[r]) {
			r = l
		}
		if rt < n && h.less(h.arr[rt], h.arr[r]) {
			r = rt
		}
		if r == i {
			return
		}
		h.arr[i], h.arr[r] = h.arr[r], h.arr[i]
		i = r
	}
}

func (h *BinaryHeap[T]) makeHeap() {
	for i := parent(len(h.arr) - 1); i >= 0; i-- {
		h.heapify(i)
	}
}

// IsHeapUntil returns the first index that violates the heap invariant, or
// Len() if arr is a valid heap throughout.
func (h *BinaryHeap[T]) IsHeapUntil() int {
	for i := 1; i < len(h.arr); i++ {
		if h.less(h.arr[i], h.arr[parent(i)]) {
			return i
		}
	}
	return len(h.arr)
}
