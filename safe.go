package arena

import (
	"runtime"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArena(chunkSize int) *SafeArena {
	return &SafeArena{a: NewArena(chunkSize)}
}

// AllocBytes thread-safely allocates n bytes and returns a slice pointing to them.
// Returns nil if n <= 0.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// EnsureCapacity thread-safely ensures the current chunk has at least n free bytes.
func (s *SafeArena) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Reset thread-safely resets allocation offsets to zero for arena reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Generic allocation functions for SafeArena

// SafeAlloc thread-safely returns a pointer to a T stored inside the arena with zeroed memory.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocZeroed is identical to SafeAlloc - provided for API consistency.
func SafeAllocZeroed[T any](s *SafeArena) *T {
	return SafeAlloc[T](s)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing memory.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n elements with zeroed memory.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafePtrAndKeepAlive thread-safely returns t and calls runtime.KeepAlive on the arena.
func SafePtrAndKeepAlive[T any](s *SafeArena, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.a)
	return t
}

// SafeScratchArena is a mutex-protected wrapper around ScratchArena for
// concurrent access, mirroring SafeArena.
type SafeScratchArena struct {
	mu sync.Mutex
	s  *ScratchArena
}

// NewSafeScratchArena creates a thread-safe ScratchArena draining buf before
// falling back to chunkCapacity-sized chunks.
func NewSafeScratchArena(buf []byte, chunkCapacity int) *SafeScratchArena {
	return &SafeScratchArena{s: NewScratchArena(buf, chunkCapacity)}
}

// AllocBytes thread-safely allocates n bytes, preferring the scratch buffer.
func (s *SafeScratchArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.AllocBytes(n)
}

// Grow thread-safely extends or reallocates oldptr to newlen bytes.
func (s *SafeScratchArena) Grow(oldptr []byte, oldlen, newlen int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Grow(oldptr, oldlen, newlen)
}

// InScratchMode thread-safely reports whether the scratch buffer is still in use.
func (s *SafeScratchArena) InScratchMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.InScratchMode()
}

// EnsureCapacity thread-safely ensures the fallback arena has n free bytes.
func (s *SafeScratchArena) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.EnsureCapacity(n)
}

// Reset thread-safely resets the fallback arena; the scratch buffer, once
// abandoned, is not restored.
func (s *SafeScratchArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Reset()
}

// Release thread-safely releases the fallback arena's chunks.
func (s *SafeScratchArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Release()
}

// SafeScratchAlloc thread-safely returns a zeroed *T from a SafeScratchArena.
func SafeScratchAlloc[T any](s *SafeScratchArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.s)
}

// SafeScratchAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeScratchAllocSlice[T any](s *SafeScratchArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.s, n)
}
