// Package pagealloc supplies the aligned-memory collaborator used by the
// arena and buddy packages. Neither package cares how the bytes were
// obtained, only that the returned slice starts at the requested alignment
// and that Free releases exactly what AllocAligned returned.
package pagealloc

// Allocator hands out aligned, zero-initialized regions of memory and
// releases them. Alignment is always a power of two (16, 32, or 64 in
// practice, per the arena/buddy cache-line requirement).
type Allocator interface {
	// AllocAligned returns a slice of size bytes whose backing array
	// starts at an address that is a multiple of alignment, or an error
	// if the region could not be obtained.
	AllocAligned(size, alignment int) ([]byte, error)

	// Free releases a region previously returned by AllocAligned. Freeing
	// a region not obtained from this allocator, or freeing twice, is
	// undefined behavior.
	Free(b []byte)
}
