// Package hashmap implements a chained hash map that rehashes
// incrementally: growth work is spread across the operations that follow
// a load-factor trip rather than paid in one pause.
//
// # Basic Usage
//
//	m := hashmap.New[string, int](hashmap.HashString, 0)
//	m.Set("a", 1)
//	v, ok := m.Get("a")
//
// # Incremental Rehashing
//
// When the primary table's load factor reaches 1, a second, double-sized
// table is allocated and every subsequent Get/Set/Contains/Erase migrates
// a bounded slice of buckets from the old table into the new one before
// doing its own work. Lookups check both tables while a rehash is in
// flight. An open Iterator suspends migration until it is closed, so a
// walk never observes a bucket moving mid-scan.
//
// # Thread Safety
//
// HashMap is not thread-safe. SafeHashMap wraps it in a mutex for
// concurrent callers, following the same pattern as arena.SafeArena.
package hashmap
