package cache

import "sync"

// Map is a concurrency-safe store of decoded corpus entries keyed by their
// source URL.
type Map[K comparable, V any] struct {
	mu   sync.RWMutex
	data map[K]*V
}

// NewMap creates an empty cache
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{data: make(map[K]*V)}
}

// Get retrieves a cached value, with existence check
func (m *Map[K, V]) Get(key K) (*V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

// Set stores a value under the given key, replacing any previous entry
func (m *Map[K, V]) Set(key K, value *V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

// Size returns the number of cached entries
func (m *Map[K, V]) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
