package status

import (
	"strings"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes a Registry to prometheus
// Keys map to metric names: "pipeline.live" -> "<namespace>_pipeline_live"
// Counter-like keys (spawned, culled, evicted, frames) are reported as counters
type Collector struct {
	reg       *Registry
	namespace string
}

// NewCollector creates a collector over reg
func NewCollector(reg *Registry, namespace string) *Collector {
	return &Collector{reg: reg, namespace: namespace}
}

var counterKeys = map[string]bool{
	KeyFrames:  true,
	KeySpawned: true,
	KeyCulled:  true,
	KeyEvicted: true,
}

// Describe sends no descriptors, making this an unchecked collector
// The key set grows as systems register metrics
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect emits one const metric per registry entry
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.reg.Ints.Range(func(key string, ptr *atomic.Int64) {
		c.emit(ch, key, float64(ptr.Load()))
	})
	c.reg.Floats.Range(func(key string, ptr *AtomicFloat) {
		c.emit(ch, key, ptr.Load())
	})
}

func (c *Collector) emit(ch chan<- prometheus.Metric, key string, val float64) {
	name := prometheus.BuildFQName(c.namespace, "", strings.ReplaceAll(key, ".", "_"))
	kind := prometheus.GaugeValue
	if counterKeys[key] {
		kind = prometheus.CounterValue
		name += "_total"
	}
	desc := prometheus.NewDesc(name, "orf-cloud status metric "+key, nil, nil)
	m, err := prometheus.NewConstMetric(desc, kind, val)
	if err != nil {
		return
	}
	ch <- m
}
