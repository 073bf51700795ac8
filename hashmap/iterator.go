package hashmap

// Iterator walks every entry of a HashMap. It follows the bufio.Scanner
// shape: call Next until it returns false, reading Key/Value in between.
//
// While an Iterator is open, rehashOnEveryOperation is a no-op on the
// owning map, so the bucket layout an Iterator has already scanned past
// cannot be disturbed mid-walk. Close must be called (directly, or via
// exhausting Next to false, which calls it automatically) to let rehashing
// resume.
type Iterator[K comparable, V any] struct {
	m      *HashMap[K, V]
	table  int
	bucket int
	cur    *entry[K, V]
	closed bool
}

// Iter returns an Iterator positioned before the first entry.
func (m *HashMap[K, V]) Iter() *Iterator[K, V] {
	m.nriters++
	return &Iterator[K, V]{m: m, bucket: -1}
}

// Next advances the iterator to the next entry, returning false once
// exhausted. On exhaustion it closes the iterator automatically.
func (it *Iterator[K, V]) Next() bool {
	if it.closed {
		return false
	}
	if it.cur != nil {
		it.cur = it.cur.next
		if it.cur != nil {
			return true
		}
	}
	for tbl := it.table; tbl < 2; tbl++ {
		t := it.m.tables[tbl]
		if t == nil {
			continue
		}
		start := it.bucket + 1
		if tbl != it.table {
			start = 0
		}
		for b := start; b < len(t.buckets); b++ {
			if t.buckets[b] != nil {
				it.table = tbl
				it.bucket = b
				it.cur = t.buckets[b]
				return true
			}
		}
		it.bucket = -1
	}
	it.Close()
	return false
}

// Key returns the current entry's key. Only valid after Next returns true.
func (it *Iterator[K, V]) Key() K { return it.cur.key }

// Value returns the current entry's value. Only valid after Next returns true.
func (it *Iterator[K, V]) Value() V { return it.cur.value }

// Close releases the iterator's hold on the map's rehash suspension. Safe
// to call more than once.
func (it *Iterator[K, V]) Close() {
	if it.closed {
		return
	}
	it.closed = true
	it.m.nriters--
}
