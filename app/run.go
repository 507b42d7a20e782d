package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/orf-cloud/config"
	"github.com/lixenwraith/orf-cloud/engine"
	"github.com/lixenwraith/orf-cloud/genome"
	"github.com/lixenwraith/orf-cloud/orf"
	"github.com/lixenwraith/orf-cloud/pipeline"
	"github.com/lixenwraith/orf-cloud/render"
	"github.com/lixenwraith/orf-cloud/status"
	"github.com/lixenwraith/orf-cloud/system"
)

// RunDeps are collaborators shared across runs; zero values get defaults
type RunDeps struct {
	Clock  engine.TimeProvider
	Status *status.Registry
	Camera *render.Camera
	Cues   system.CueSink
	Finder pipeline.Finder
}

// Run is one streaming session over one genome
type Run struct {
	ID       string
	GenomeID string
	Length   uint64

	World    *engine.World
	Loop     *engine.FrameLoop
	Pipeline *pipeline.StreamingPipeline
	Scene    *system.SceneAdapter
}

// ScanResult summarizes a genome's catalog without running the scene
type ScanResult struct {
	GenomeID string
	Length   uint64
	Catalog  *pipeline.Catalog
}

// Scan loads the configured genome and builds its catalog
func Scan(cfg config.Config, finder pipeline.Finder) (ScanResult, error) {
	if !cfg.Genome.HasData() {
		return ScanResult{}, ErrNoGenomeData
	}
	if finder == nil {
		finder = orf.FindAll
	}
	seq, err := genome.Load(cfg.Genome)
	if err != nil {
		return ScanResult{}, err
	}
	return ScanResult{
		GenomeID: seq.ID,
		Length:   seq.Len(),
		Catalog:  pipeline.NewCatalogFromSequence(seq.Bases, cfg.MinFeatureLength, finder),
	}, nil
}

// StartRun builds the full run state; nothing is left behind on error
func StartRun(cfg config.Config, deps RunDeps) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("start run: %w", err)
	}

	began := time.Now()
	scan, err := Scan(cfg, deps.Finder)
	if err != nil {
		return nil, fmt.Errorf("start run: %w", err)
	}

	clock := deps.Clock
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	camera := deps.Camera
	if camera == nil {
		camera = render.NewCamera()
	}

	world := engine.NewWorld()
	if deps.Status != nil {
		world.Resource.Status = deps.Status
	}

	scene := system.NewSceneAdapter(world)
	scene.SpawnChromosome(scan.GenomeID, scan.Length)

	p := pipeline.NewStreamingPipeline(scan.Catalog, scan.Length, cfg.PipelineOptions())
	system.RegisterRun(world, p, scene, camera, deps.Cues)
	p.Start()

	r := &Run{
		ID:       uuid.NewString(),
		GenomeID: scan.GenomeID,
		Length:   scan.Length,
		World:    world,
		Loop:     engine.NewFrameLoop(world, clock),
		Pipeline: p,
		Scene:    scene,
	}

	log.Info().
		Str("run_id", r.ID).
		Str("genome", cfg.Genome.Kind.String()).
		Str("sequence", scan.GenomeID).
		Uint64("length", scan.Length).
		Int("features", scan.Catalog.Len()).
		Uint64("min_len", scan.Catalog.MinLength()).
		Uint64("max_len", scan.Catalog.MaxLength()).
		Int("batch", cfg.BatchSize).
		Int("cap", cfg.CapacityCap).
		Bool("eviction", cfg.EvictionEnabled).
		Dur("setup", time.Since(began)).
		Msg("run started")
	return r, nil
}

// Stop destroys every live object and detaches all systems
func (r *Run) Stop() {
	st := r.Pipeline.Stats()
	r.Pipeline.Teardown(r.Scene)
	r.World.RemoveSystems()
	r.World.Clear()

	log.Info().
		Str("run_id", r.ID).
		Int64("frames", r.Loop.Frame()).
		Uint64("spawned", st.Spawned).
		Uint64("culled", st.Culled).
		Uint64("evicted", st.Evicted).
		Msg("run stopped")
}

// RunHeadless streams cfg for a fixed number of frames of dt each
func RunHeadless(cfg config.Config, deps RunDeps, frames int, dt time.Duration) (pipeline.Stats, error) {
	r, err := StartRun(cfg, deps)
	if err != nil {
		return pipeline.Stats{}, err
	}
	r.World.Resource.View.Width = 0
	r.World.Resource.View.Height = 0

	for i := 0; i < frames; i++ {
		r.Loop.StepDelta(dt)
	}
	st := r.Pipeline.Stats()
	r.Stop()
	return st, nil
}
