// Package buddy implements a classical power-of-two buddy allocator over a
// single contiguous region acquired from a pagealloc.Allocator.
package buddy

import (
	"unsafe"

	"github.com/pkg/errors"

	"github.com/wjp-dev/primitives/pagealloc"
)

const (
	// PageShift and PageSize describe the page geometry the region is
	// carved into; block sizes are always a power-of-two multiple of a
	// page.
	PageShift = 12
	PageSize  = 1 << PageShift

	// MaxOrder caps a single block at 2^MaxOrder pages so the 8-bit order
	// field and 20-bit page-offset fields in the header never overflow.
	MaxOrder         = 10
	MaxPagesPerBlock = 1 << MaxOrder

	// regionAlignment is the alignment requested from the page allocator
	// for the backing region; block offsets are always measured relative
	// to the region's own start, so any cache-line-or-better alignment
	// suffices.
	regionAlignment = 64
)

// BuddySystem is a buddy allocator over one preallocated region. Not
// goroutine-safe; use SafeBuddySystem for concurrent access.
type BuddySystem struct {
	region   []byte
	pages    pagealloc.Allocator
	maxPages int
	maxOrder int
	bank     []int // bank[order] is the byte offset of that order's free-list head, or -1
}

// New acquires a region of maxpages pages from pages (or pagealloc.NewMmap()
// if pages is nil, since a buddy allocator legitimately owns whole OS
// pages) and populates its free lists. Acquisition failure is fatal and is
// returned wrapped, per the construction-failure contract shared with the
// rest of this module.
func New(maxpages int, pages pagealloc.Allocator) (*BuddySystem, error) {
	if maxpages <= 0 {
		return nil, errors.New("buddy: maxpages must be positive")
	}
	if pages == nil {
		pages = pagealloc.NewMmap()
	}

	region, err := pages.AllocAligned(maxpages<<PageShift, regionAlignment)
	if err != nil {
		return nil, errors.Wrap(err, "buddy: acquire region")
	}

	maxorder := MaxOrder
	for maxorder > 0 && maxpages>>uint(maxorder) == 0 {
		maxorder--
	}
	bank := make([]int, maxorder+1)
	for i := range bank {
		bank[i] = -1
	}

	s := &BuddySystem{region: region, pages: pages, maxPages: maxpages, maxOrder: maxorder, bank: bank}
	s.populate(maxpages)
	return s, nil
}

// populate greedily emplaces free blocks from the highest order down,
// exactly covering maxpages pages even when maxpages isn't itself a power
// of two.
func (s *BuddySystem) populate(maxpages int) {
	remaining := maxpages
	cursor := 0
	for order := s.maxOrder; order >= 0; order-- {
		nrblocks := remaining >> uint(order)
		if nrblocks == 0 {
			continue
		}
		for i := 0; i < nrblocks; i++ {
			s.emplace(cursor, order)
			cursor += (1 << uint(order)) << PageShift
		}
		remaining -= nrblocks << uint(order)
	}
}

func (s *BuddySystem) emplace(off, order int) {
	h := newHeader(order, s.isLeftBuddy(off, order))
	writeHeader(s.region, off, h)
	s.push(off)
}

func (s *BuddySystem) isLeftBuddy(off, order int) bool {
	blockNumber := (off >> PageShift) >> uint(order)
	return blockNumber&1 == 0
}

func (s *BuddySystem) blockSize(order int) int {
	return (1 << uint(order)) << PageShift
}

// push prepends off's block onto its order's free list.
func (s *BuddySystem) push(off int) {
	order := headerOrder(readHeader(s.region, off))
	head := s.bank[order]
	s.bank[order] = off

	h := readHeader(s.region, off)
	h = setHeaderFirst(h, true)
	h = setHeaderFree(h, true)
	if head == -1 {
		h = setHeaderLast(h, true)
	} else {
		h = setHeaderLast(h, false)
		h = setHeaderNext(h, head>>PageShift)
		oldHead := readHeader(s.region, head)
		oldHead = setHeaderPrev(oldHead, off>>PageShift)
		oldHead = setHeaderFirst(oldHead, false)
		writeHeader(s.region, head, oldHead)
	}
	writeHeader(s.region, off, h)
}

// erase unlinks off's block from its order's free list, patching first/last
// flags for all four cases: sole entry, list head, list tail, or interior.
func (s *BuddySystem) erase(off int) {
	h := readHeader(s.region, off)
	order := headerOrder(h)
	first := headerFirst(h)
	last := headerLast(h)

	switch {
	case first && last:
		s.bank[order] = -1
	case first:
		nextOff := headerNext(h) << PageShift
		s.bank[order] = nextOff
		nh := readHeader(s.region, nextOff)
		nh = setHeaderFirst(nh, true)
		writeHeader(s.region, nextOff, nh)
	case last:
		prevOff := headerPrev(h) << PageShift
		ph := readHeader(s.region, prevOff)
		ph = setHeaderLast(ph, true)
		writeHeader(s.region, prevOff, ph)
	default:
		prevOff := headerPrev(h) << PageShift
		nextOff := headerNext(h) << PageShift
		ph := readHeader(s.region, prevOff)
		ph = setHeaderNext(ph, nextOff>>PageShift)
		writeHeader(s.region, prevOff, ph)
		nh := readHeader(s.region, nextOff)
		nh = setHeaderPrev(nh, prevOff>>PageShift)
		writeHeader(s.region, nextOff, nh)
	}

	h = setHeaderFree(h, false)
	writeHeader(s.region, off, h)
}

// pop removes and returns the head of order's free list.
func (s *BuddySystem) pop(order int) (int, bool) {
	head := s.bank[order]
	if head == -1 {
		return 0, false
	}
	s.erase(head)
	return head, true
}

func decideOrder(pages int) int {
	for i := 0; i <= MaxOrder; i++ {
		if pages <= 1<<uint(i) {
			return i
		}
	}
	return 0
}

// split halves off's block in place, returning the byte offset of the new
// free block covering its second half.
func (s *BuddySystem) split(off int) int {
	h := readHeader(s.region, off)
	order := headerOrder(h)
	newOrder := order - 1
	h = setHeaderOrder(h, newOrder)
	h = setHeaderLeft(h, s.isLeftBuddy(off, newOrder))
	writeHeader(s.region, off, h)

	second := off + s.blockSize(newOrder)
	sh := newHeader(newOrder, s.isLeftBuddy(second, newOrder))
	writeHeader(s.region, second, sh)
	return second
}

func (s *BuddySystem) shrink(off, targetOrder int) {
	for headerOrder(readHeader(s.region, off)) > targetOrder {
		second := s.split(off)
		s.push(second)
	}
}

// getBuddy returns the offset of off's buddy block if it is currently free
// at the same order, erasing it from its free list as a side effect.
func (s *BuddySystem) getBuddy(off int) (int, bool) {
	h := readHeader(s.region, off)
	order := headerOrder(h)
	var buddyOff int
	if headerLeft(h) {
		buddyOff = off + s.blockSize(order)
	} else {
		buddyOff = off - s.blockSize(order)
	}
	if buddyOff < 0 || buddyOff+headerSize > len(s.region) {
		return 0, false
	}
	bh := readHeader(s.region, buddyOff)
	if headerOrder(bh) == order && headerFree(bh) {
		s.erase(buddyOff)
		return buddyOff, true
	}
	return 0, false
}

// merge combines two equal-order buddies into one free block at order+1,
// returning the offset of the surviving (left) half.
func (s *BuddySystem) merge(a, b int) int {
	bh := readHeader(s.region, b)
	winner := a
	if headerLeft(bh) {
		winner = b
	}
	wh := readHeader(s.region, winner)
	order := headerOrder(wh) + 1
	wh = setHeaderOrder(wh, order)
	wh = setHeaderLeft(wh, s.isLeftBuddy(winner, order))
	writeHeader(s.region, winner, wh)
	return winner
}

// Alloc returns a slice of size bytes, or nil if no block of sufficient
// size is currently free.
func (s *BuddySystem) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	needed := size + headerSize
	pages := needed >> PageShift
	if needed > pages<<PageShift {
		pages++
	}
	if pages > MaxPagesPerBlock {
		return nil
	}
	minorder := decideOrder(pages)
	for order := minorder; order <= s.maxOrder; order++ {
		off, ok := s.pop(order)
		if !ok {
			continue
		}
		if order > minorder {
			s.shrink(off, minorder)
		}
		start := off + headerSize
		return s.region[start : start+size : start+size]
	}
	return nil
}

// Free returns a block previously returned by Alloc, coalescing with its
// buddy chain as far as possible. Freeing a slice not obtained from this
// BuddySystem, or freeing twice, is undefined behavior; corrupted magic
// fields panic.
func (s *BuddySystem) Free(ptr []byte) {
	if len(ptr) == 0 {
		return
	}
	off := s.offsetOf(ptr) - headerSize
	h := readHeader(s.region, off)
	if !headerValidMagic(h) {
		panic("buddy: corrupted block header")
	}

	for headerOrder(h) < s.maxOrder {
		buddyOff, ok := s.getBuddy(off)
		if !ok {
			break
		}
		off = s.merge(off, buddyOff)
		h = readHeader(s.region, off)
	}
	s.push(off)
}

func (s *BuddySystem) offsetOf(ptr []byte) int {
	base := uintptr(unsafe.Pointer(&s.region[0]))
	p := uintptr(unsafe.Pointer(&ptr[0]))
	return int(p - base)
}

// FreeOrders reports how many distinct orders currently have a non-empty
// free list, for callers that want a cheap fragmentation signal without
// reaching into the allocator's internals.
func (s *BuddySystem) FreeOrders() int {
	n := 0
	for _, head := range s.bank {
		if head != -1 {
			n++
		}
	}
	return n
}

// Close releases the backing region. The BuddySystem must not be used
// afterward.
func (s *BuddySystem) Close() {
	if s.region == nil {
		return
	}
	s.pages.Free(s.region)
	s.region = nil
}
