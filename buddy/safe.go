package buddy

import (
	"sync"

	"github.com/wjp-dev/primitives/pagealloc"
)

// SafeBuddySystem is a mutex-protected wrapper around BuddySystem for
// concurrent access, mirroring arena.SafeArena: the core stays
// single-threaded, and this wrapper adds one lock around the whole
// structure for hosts that want it.
type SafeBuddySystem struct {
	mu sync.Mutex
	b  *BuddySystem
}

// NewSafe constructs a thread-safe BuddySystem over maxpages pages.
func NewSafe(maxpages int, pages pagealloc.Allocator) (*SafeBuddySystem, error) {
	b, err := New(maxpages, pages)
	if err != nil {
		return nil, err
	}
	return &SafeBuddySystem{b: b}, nil
}

// Alloc thread-safely allocates size bytes.
func (s *SafeBuddySystem) Alloc(size int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Alloc(size)
}

// Free thread-safely releases a block previously returned by Alloc.
func (s *SafeBuddySystem) Free(ptr []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.Free(ptr)
}

// Close thread-safely releases the backing region.
func (s *SafeBuddySystem) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.b.Close()
}
