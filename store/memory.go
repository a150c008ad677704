package store

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Memory is an in-memory Store with an optional byte budget. With a
// budget set it mimics the quota behavior of constrained host stores,
// which makes it the store of choice for tests exercising the engine's
// eviction-and-retry path.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
	budget  int
	used    int

	// Statistics (atomic for zero-allocation reads)
	sets      atomic.Uint64
	rejected  atomic.Uint64
	deletions atomic.Uint64
}

// NewMemory creates an in-memory store. A budget <= 0 means unlimited.
// The budget counts value bytes only, not keys.
func NewMemory(budget int) *Memory {
	return &Memory{
		entries: make(map[string][]byte),
		budget:  budget,
	}
}

// Get implements Store.
func (m *Memory) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set implements Store. Returns ErrQuotaExceeded when writing the value
// would exceed the byte budget, counting the replaced value as freed.
func (m *Memory) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	old := len(m.entries[key])
	if m.budget > 0 && m.used-old+len(value) > m.budget {
		m.rejected.Add(1)
		return ErrQuotaExceeded
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.entries[key] = stored
	m.used += len(value) - old
	m.sets.Add(1)
	return nil
}

// Delete implements Store.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.entries[key]; ok {
		m.used -= len(v)
		delete(m.entries, key)
		m.deletions.Add(1)
	}
	return nil
}

// Keys implements Store.
func (m *Memory) Keys(prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Used returns the number of value bytes currently stored.
func (m *Memory) Used() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.used
}

// Stats returns operation counters for monitoring.
func (m *Memory) Stats() MemoryStats {
	return MemoryStats{
		Sets:      m.sets.Load(),
		Rejected:  m.rejected.Load(),
		Deletions: m.deletions.Load(),
	}
}

// MemoryStats holds Memory operation counters.
type MemoryStats struct {
	Sets      uint64
	Rejected  uint64
	Deletions uint64
}
