package pipeline

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/orf-cloud/parameter"
)

// Options are the per-run pipeline settings
type Options struct {
	BatchSize       int
	DrainFromFront  bool
	CapacityCap     int
	EvictionEnabled bool
	SpawnInterval   time.Duration
	TimerMode       TimerMode
}

// DefaultOptions returns the stock run settings
func DefaultOptions() Options {
	return Options{
		BatchSize:       parameter.DefaultBatchSize,
		CapacityCap:     parameter.DefaultCapacityCap,
		EvictionEnabled: true,
		SpawnInterval:   parameter.SpawnInterval,
		TimerMode:       TimerOnce,
	}
}

// Stats is a point-in-time view of pipeline counters
type Stats struct {
	Fires     uint64
	Spawned   uint64
	Culled    uint64
	Evicted   uint64
	Queue     int
	Live      int
	Capacity  int
	Exhausted bool
}

// StreamingPipeline owns all streaming state for one run
type StreamingPipeline struct {
	catalog          *Catalog
	queue            *DrainQueue
	timer            SpawnTimer
	registry         *Registry
	opts             Options
	chromosomeLength uint64
	nextSpawnOrder   uint64

	fires   uint64
	spawned uint64
	culled  uint64
	evicted uint64

	exhaustedLogged bool
}

// NewStreamingPipeline prepares a run over catalog; the timer stays idle until Start
func NewStreamingPipeline(catalog *Catalog, chromosomeLength uint64, opts Options) *StreamingPipeline {
	if opts.BatchSize < 1 {
		opts.BatchSize = 1
	}
	return &StreamingPipeline{
		catalog:          catalog,
		queue:            NewDrainQueue(catalog),
		timer:            NewSpawnTimer(opts.SpawnInterval, opts.TimerMode),
		registry:         NewRegistry(),
		opts:             opts,
		chromosomeLength: chromosomeLength,
	}
}

// Start arms the spawn timer
func (p *StreamingPipeline) Start() {
	p.timer.Arm()
}

// Tick advances the spawn timer by dt and fires a batch when due
// Returns the number of objects spawned this tick
func (p *StreamingPipeline) Tick(dt time.Duration, scene Scene) int {
	if !p.timer.Tick(dt) {
		return 0
	}
	return p.Fire(scene)
}

// Fire releases up to BatchSize features from the drain queue into scene
// An exhausted queue makes this a no-op
func (p *StreamingPipeline) Fire(scene Scene) int {
	if p.queue.Exhausted() {
		if !p.exhaustedLogged {
			p.exhaustedLogged = true
			log.Debug().
				Uint64("spawned", p.spawned).
				Int("live", p.registry.Len()).
				Msg("drain queue exhausted")
		}
		return 0
	}

	p.fires++
	maxLen := p.catalog.MaxLength()
	n := 0
	for n < p.opts.BatchSize {
		f, ok := p.queue.Pop(p.opts.DrainFromFront)
		if !ok {
			break
		}
		order := p.nextSpawnOrder
		p.nextSpawnOrder++

		vs := Place(f, order, p.chromosomeLength, maxLen)
		obj := scene.CreateVisualObject(vs)
		p.registry.Append(obj, order, f)
		n++
	}
	p.spawned += uint64(n)
	return n
}

// Cull destroys every live object the scene reports as not visible
// Must run after the frame's visibility pass. Returns the number culled
func (p *StreamingPipeline) Cull(scene Scene) int {
	n := p.registry.RemoveIf(
		func(r Record) bool { return !scene.Visible(r.Object) },
		func(r Record) { scene.DestroyVisualObject(r.Object) },
	)
	p.culled += uint64(n)
	return n
}

// Evict destroys the oldest live objects until the population is within the cap
// No-op while eviction is disabled. Returns the number evicted
func (p *StreamingPipeline) Evict(scene Scene) int {
	if !p.opts.EvictionEnabled {
		return 0
	}
	n := 0
	for p.registry.Len() > p.opts.CapacityCap {
		rec, ok := p.registry.PopOldest()
		if !ok {
			break
		}
		scene.DestroyVisualObject(rec.Object)
		n++
	}
	p.evicted += uint64(n)
	return n
}

// Teardown destroys every live object and empties the registry
func (p *StreamingPipeline) Teardown(scene Scene) {
	p.registry.RemoveIf(
		func(Record) bool { return true },
		func(r Record) { scene.DestroyVisualObject(r.Object) },
	)
}

// SetCapacityCap changes the cap; applied on the next Evict
func (p *StreamingPipeline) SetCapacityCap(limit int) {
	if limit < 0 {
		limit = 0
	}
	p.opts.CapacityCap = limit
}

// SetEvictionEnabled toggles the evictor
func (p *StreamingPipeline) SetEvictionEnabled(enabled bool) {
	p.opts.EvictionEnabled = enabled
}

// Options returns the current run settings
func (p *StreamingPipeline) Options() Options {
	return p.opts
}

// Catalog returns the catalog this run drains
func (p *StreamingPipeline) Catalog() *Catalog {
	return p.catalog
}

// Registry exposes the live registry for inspection
func (p *StreamingPipeline) Registry() *Registry {
	return p.registry
}

// TimerState returns the spawn timer state
func (p *StreamingPipeline) TimerState() TimerState {
	return p.timer.State()
}

// ChromosomeLength returns the sequence length used for x placement
func (p *StreamingPipeline) ChromosomeLength() uint64 {
	return p.chromosomeLength
}

// Stats returns current counters
func (p *StreamingPipeline) Stats() Stats {
	return Stats{
		Fires:     p.fires,
		Spawned:   p.spawned,
		Culled:    p.culled,
		Evicted:   p.evicted,
		Queue:     p.queue.Len(),
		Live:      p.registry.Len(),
		Capacity:  p.opts.CapacityCap,
		Exhausted: p.queue.Exhausted(),
	}
}
