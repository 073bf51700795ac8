package arena

import (
	"unsafe"

	"github.com/wjp-dev/primitives/pagealloc"
)

// MaxScratchLen is the largest scratch buffer a ScratchArena accepts. The
// original C layout stole the high 16 bits of a 64-bit pointer to store this
// length, which bounded it to 65535; Go cannot alias a live pointer's bits
// like that (the garbage collector would no longer recognize it as a
// pointer), so ScratchArena uses a tagged-variant struct instead — the same
// substitution spec.md anticipates for languages without raw-pointer
// tagging. The external bound is kept identical so callers see the same
// contract.
const MaxScratchLen = 1<<16 - 1

// ScratchArena is an Arena that first drains a caller-supplied buffer before
// falling back to ordinary Arena behavior. The scratch buffer is never
// freed by the arena and is abandoned — not copied — on first overflow:
// pointers handed out while draining it are only valid until that moment.
type ScratchArena struct {
	scratch     []byte
	scratchUsed int
	inScratch   bool
	arena       Arena
}

// NewScratchArena creates a ScratchArena that serves allocations out of buf
// before falling back to chunkCapacity-sized chunks from the default Heap
// allocator. len(buf) must not exceed MaxScratchLen.
func NewScratchArena(buf []byte, chunkCapacity int) *ScratchArena {
	return NewScratchArenaWithAllocator(buf, chunkCapacity, pagealloc.NewHeap())
}

// NewScratchArenaWithAllocator is NewScratchArena with an explicit
// page-allocator collaborator for the Arena fallback.
func NewScratchArenaWithAllocator(buf []byte, chunkCapacity int, pages pagealloc.Allocator) *ScratchArena {
	if len(buf) > MaxScratchLen {
		panic("arena: scratch buffer exceeds MaxScratchLen")
	}
	s := &ScratchArena{}
	if len(buf) > 0 {
		s.scratch = buf
		s.inScratch = true
	}
	s.arena = *NewArenaWithAllocator(chunkCapacity, pages)
	return s
}

// AllocBytes returns align8(size) bytes of word-aligned storage, served from the
// scratch buffer while it has room, and from the underlying Arena once it
// is exhausted or abandoned.
func (s *ScratchArena) AllocBytes(size int) []byte {
	if size <= 0 {
		return nil
	}
	sz := align8(size)
	if s.inScratch {
		if s.scratchUsed+sz <= len(s.scratch) {
			p := s.scratch[s.scratchUsed : s.scratchUsed+sz : s.scratchUsed+sz]
			s.scratchUsed += sz
			return p
		}
		// Overflow: abandon the scratch buffer. No copy of its contents
		// occurs — callers must not rely on prior scratch pointers
		// surviving this transition.
		s.inScratch = false
		s.scratch = nil
		s.scratchUsed = 0
	}
	return s.arena.AllocBytes(size)
}

// Grow behaves like Arena.Grow, using the scratch buffer's remaining
// capacity as the in-place-extension ceiling while in scratch mode.
func (s *ScratchArena) Grow(oldptr []byte, oldlen, newlen int) []byte {
	if oldptr == nil {
		return s.AllocBytes(newlen)
	}
	if newlen <= 0 {
		return nil
	}
	if newlen <= oldlen {
		return oldptr
	}
	if s.inScratch {
		oldAligned := align8(oldlen)
		newAligned := align8(newlen)
		if len(oldptr) > 0 && len(s.scratch) > 0 {
			oldEnd := uintptr(unsafe.Pointer(&oldptr[0])) + uintptr(oldAligned)
			curEnd := uintptr(unsafe.Pointer(&s.scratch[0])) + uintptr(s.scratchUsed)
			if oldEnd == curEnd && s.scratchUsed+(newAligned-oldAligned) <= len(s.scratch) {
				start := s.scratchUsed - oldAligned
				s.scratchUsed += newAligned - oldAligned
				return s.scratch[start : start+newAligned : start+newAligned]
			}
		}
	}
	if !s.inScratch {
		return s.arena.Grow(oldptr, oldlen, newlen)
	}
	newptr := s.AllocBytes(newlen)
	if newptr == nil {
		return nil
	}
	copy(newptr, oldptr[:oldlen])
	return newptr
}

// InScratchMode reports whether allocations are still being served from the
// caller-supplied buffer.
func (s *ScratchArena) InScratchMode() bool { return s.inScratch }

// EnsureCapacity, Reset, and Release delegate to the underlying Arena; the
// scratch buffer, once abandoned, never returns.
func (s *ScratchArena) EnsureCapacity(n int) { s.arena.EnsureCapacity(n) }
func (s *ScratchArena) Reset()               { s.arena.Reset() }
func (s *ScratchArena) Release()             { s.arena.Release() }
