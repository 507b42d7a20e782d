package system

import (
	"github.com/lixenwraith/orf-cloud/audio"
	"github.com/lixenwraith/orf-cloud/engine"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/pipeline"
)

// EvictSystem trims the oldest live objects once the population exceeds the cap
type EvictSystem struct {
	engine.SystemBase

	pipeline *pipeline.StreamingPipeline
	scene    pipeline.Scene
	cues     CueSink
}

func NewEvictSystem(world *engine.World, p *pipeline.StreamingPipeline, scene pipeline.Scene, cues CueSink) engine.System {
	s := &EvictSystem{
		SystemBase: engine.NewSystemBase(world),
		pipeline:   p,
		scene:      scene,
		cues:       cues,
	}
	s.Init()
	return s
}

func (s *EvictSystem) Init() {}

func (s *EvictSystem) Name() string {
	return "evict"
}

func (s *EvictSystem) Priority() int {
	return parameter.PriorityEvict
}

func (s *EvictSystem) Update() {
	if n := s.pipeline.Evict(s.scene); n > 0 {
		playCue(s.cues, audio.CueEvict)
	}
}
