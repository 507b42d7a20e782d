package system

import (
	"sync/atomic"

	"github.com/lixenwraith/orf-cloud/engine"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/pipeline"
	"github.com/lixenwraith/orf-cloud/status"
)

// TelemetrySystem publishes pipeline counters to the status registry once per frame
type TelemetrySystem struct {
	engine.SystemBase

	pipeline *pipeline.StreamingPipeline

	statQueue    *atomic.Int64
	statLive     *atomic.Int64
	statSpawned  *atomic.Int64
	statCulled   *atomic.Int64
	statEvicted  *atomic.Int64
	statCatalog  *atomic.Int64
	statCapacity *atomic.Int64
}

func NewTelemetrySystem(world *engine.World, p *pipeline.StreamingPipeline) engine.System {
	reg := world.Resource.Status
	s := &TelemetrySystem{
		SystemBase:   engine.NewSystemBase(world),
		pipeline:     p,
		statQueue:    reg.Ints.Get(status.KeyQueue),
		statLive:     reg.Ints.Get(status.KeyLive),
		statSpawned:  reg.Ints.Get(status.KeySpawned),
		statCulled:   reg.Ints.Get(status.KeyCulled),
		statEvicted:  reg.Ints.Get(status.KeyEvicted),
		statCatalog:  reg.Ints.Get(status.KeyCatalog),
		statCapacity: reg.Ints.Get(status.KeyCapacity),
	}
	s.Init()
	return s
}

func (s *TelemetrySystem) Init() {
	s.statCatalog.Store(int64(s.pipeline.Catalog().Len()))
}

func (s *TelemetrySystem) Name() string {
	return "telemetry"
}

func (s *TelemetrySystem) Priority() int {
	return parameter.PriorityTelemetry
}

func (s *TelemetrySystem) Update() {
	st := s.pipeline.Stats()
	s.statQueue.Store(int64(st.Queue))
	s.statLive.Store(int64(st.Live))
	s.statSpawned.Store(int64(st.Spawned))
	s.statCulled.Store(int64(st.Culled))
	s.statEvicted.Store(int64(st.Evicted))
	s.statCapacity.Store(int64(st.Capacity))
}
