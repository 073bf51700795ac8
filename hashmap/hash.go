package hashmap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// HashFunc is the hash functor collaborator: a pure function from a key to
// a 64-bit hash. The zero value of a HashMap is not usable; a HashFunc must
// always be supplied at construction.
type HashFunc[K comparable] func(key K) uint64

// HashString is a ready-made HashFunc for string keys, backed by xxhash.
// HashBytes hashes a byte slice with xxhash; since []byte is not comparable
// it cannot be a HashMap key itself, but it can back a HashFunc for other
// key types.
func HashString(s string) uint64 { return xxhash.Sum64String(s) }

func HashBytes(b []byte) uint64 { return xxhash.Sum64(b) }

// HashUint64 hashes a fixed-width integer key via its little-endian byte
// encoding, for callers who want the xxhash avalanche rather than using the
// integer's bits directly as a hash.
func HashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}
