//go:build unix

package pagealloc

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Mmap backs BuddySystem by default: a buddy allocator genuinely owns a
// dedicated region of OS pages for its lifetime, so it maps one anonymous
// region per BuddySystem and unmaps it on Free, the same shape as
// alexlewtschuk/balloc's buddy pool.
type Mmap struct{}

// NewMmap returns a ready-to-use Mmap allocator.
func NewMmap() *Mmap { return &Mmap{} }

// AllocAligned implements Allocator. mmap regions are always page-aligned,
// which satisfies any alignment this package is asked for (16/32/64).
func (Mmap) AllocAligned(size, alignment int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, errors.Wrap(err, "pagealloc: mmap failed")
	}
	return b, nil
}

// Free unmaps a region previously returned by AllocAligned.
func (Mmap) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	_ = unix.Munmap(b)
}
