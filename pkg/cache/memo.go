package cache

import "sync"

// Memo is a thread-safe memoization map. Entries are only ever added, never
// evicted or replaced, so a value read once stays valid for the lifetime of
// the process and readers never contend beyond the RWMutex.
type Memo[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// NewMemo creates an empty memoization map.
func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{items: make(map[K]V)}
}

// Get retrieves a previously computed value.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	return v, ok
}

// GetOrCompute returns the cached value for key, computing and storing it on
// first use. Concurrent callers for the same key may race to compute, but
// exactly one result is stored and all callers observe it afterwards. Failed
// computations are not stored, so a later call retries.
func (m *Memo[K, V]) GetOrCompute(key K, compute func() (V, error)) (V, error) {
	m.mu.RLock()
	v, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return v, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.items[key]; ok {
		return v, nil
	}

	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}

	m.items[key] = v
	return v, nil
}

// Len reports how many entries have been memoized.
func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
