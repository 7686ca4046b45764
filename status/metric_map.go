package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap is a named set of atomically updated values. Entries are created
// on first access and never removed.
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func newMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the value registered under name, creating it when absent
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	v, ok := m.items[name]
	m.mu.RUnlock()
	if ok {
		return v
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok = m.items[name]; ok {
		return v
	}
	v = new(T)
	m.items[name] = v
	return v
}

// Has reports whether name has been registered
func (m *MetricMap[T]) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[name]
	return ok
}

// Range calls fn for every entry in name order
func (m *MetricMap[T]) Range(fn func(name string, v *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(m.items)) {
		fn(k, m.items[k])
	}
}

// Count returns the number of registered entries
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
