package hashmap

import "sync"

// SafeHashMap wraps a HashMap in a mutex for concurrent callers, following
// the same pattern as arena.SafeArena.
type SafeHashMap[K comparable, V any] struct {
	mu sync.Mutex
	m  *HashMap[K, V]
}

// NewSafe creates a SafeHashMap using hash as its hash functor.
func NewSafe[K comparable, V any](hash HashFunc[K], initialOrder int) *SafeHashMap[K, V] {
	return &SafeHashMap[K, V]{m: New[K, V](hash, initialOrder)}
}

func (s *SafeHashMap[K, V]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Contains(key)
}

func (s *SafeHashMap[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Get(key)
}

func (s *SafeHashMap[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Set(key, value)
}

func (s *SafeHashMap[K, V]) Erase(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Erase(key)
}

func (s *SafeHashMap[K, V]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Size()
}

func (s *SafeHashMap[K, V]) NrBuckets() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.NrBuckets()
}

// Snapshot returns a copy of every key/value pair under lock, since the
// map's Iterator is not itself safe to share across goroutines with
// concurrent SafeHashMap mutation.
func (s *SafeHashMap[K, V]) Snapshot() map[K]V {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[K]V, s.m.Size())
	it := s.m.Iter()
	for it.Next() {
		out[it.Key()] = it.Value()
	}
	return out
}
