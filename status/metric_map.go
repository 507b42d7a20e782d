package status

import (
	"slices"
	"strings"
	"sync"
)

type metricEntry[T any] struct {
	key string
	ptr *T
}

// MetricMap hands out one stable pointer per key
// Entries stay sorted by key so iteration order is fixed
type MetricMap[T any] struct {
	mu      sync.RWMutex
	entries []metricEntry[T]
}

// NewMetricMap creates an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

func (m *MetricMap[T]) find(key string) (int, bool) {
	return slices.BinarySearchFunc(m.entries, key, func(e metricEntry[T], k string) int {
		return strings.Compare(e.key, k)
	})
}

// Get returns the pointer for key, allocating it on first use
// Callers cache the pointer and write to it without further lookups
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	i, ok := m.find(key)
	if ok {
		ptr := m.entries[i].ptr
		m.mu.RUnlock()
		return ptr
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok = m.find(key)
	if !ok {
		m.entries = slices.Insert(m.entries, i, metricEntry[T]{key: key, ptr: new(T)})
	}
	return m.entries[i].ptr
}

// Range calls fn for each metric in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	entries := slices.Clone(m.entries)
	m.mu.RUnlock()

	for _, e := range entries {
		fn(e.key, e.ptr)
	}
}

// Count returns the number of keys
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
