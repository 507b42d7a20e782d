package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as its IEEE bits; the zero value reads 0
type AtomicFloat atomic.Uint64

// Store sets v
func (f *AtomicFloat) Store(v float64) {
	(*atomic.Uint64)(f).Store(math.Float64bits(v))
}

// Load returns the current value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits((*atomic.Uint64)(f).Load())
}
