package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Snapshot copies every metric into a plain map, ints converted to float64
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = float64(ptr.Load())
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		out[key] = ptr.Load()
	})
	return out
}
