package system

import (
	"github.com/lixenwraith/orf-cloud/audio"
	"github.com/lixenwraith/orf-cloud/engine"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/pipeline"
)

// SpawnSystem advances the spawn timer and releases batches into the scene
type SpawnSystem struct {
	engine.SystemBase

	pipeline *pipeline.StreamingPipeline
	scene    pipeline.Scene
	cues     CueSink

	exhaustedCued bool
}

func NewSpawnSystem(world *engine.World, p *pipeline.StreamingPipeline, scene pipeline.Scene, cues CueSink) engine.System {
	s := &SpawnSystem{
		SystemBase: engine.NewSystemBase(world),
		pipeline:   p,
		scene:      scene,
		cues:       cues,
	}
	s.Init()
	return s
}

func (s *SpawnSystem) Init() {
	s.exhaustedCued = false
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	if n := s.pipeline.Tick(s.Resource.Time.DeltaTime, s.scene); n > 0 {
		playCue(s.cues, audio.CueSpawn)
		return
	}
	if !s.exhaustedCued && s.pipeline.Stats().Exhausted && s.pipeline.TimerState() == pipeline.TimerDone {
		s.exhaustedCued = true
		playCue(s.cues, audio.CueExhausted)
	}
}
