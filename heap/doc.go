// Package heap implements a binary heap over a growable slice, ordered by
// a caller-supplied strict less-than predicate.
//
// # Basic Usage
//
//	h := heap.New[int](func(a, b int) bool { return a < b })
//	h.Push(5)
//	h.Push(1)
//	v, err := h.Pop() // v == 1
//
// NewFromSlice heapifies an existing slice in place in O(n), rather than
// paying O(n log n) for n individual Pushes.
//
// # Thread Safety
//
// BinaryHeap is not thread-safe. SafeBinaryHeap wraps it in a mutex for
// concurrent callers, following the same pattern as arena.SafeArena.
package heap
