//go:build !unix

package pagealloc

// Mmap falls back to the portable Heap allocator on non-unix targets,
// since golang.org/x/sys/unix has no mmap on those platforms.
type Mmap struct {
	Heap
}

// NewMmap returns a ready-to-use Mmap allocator.
func NewMmap() *Mmap { return &Mmap{} }
