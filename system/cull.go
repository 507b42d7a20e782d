package system

import (
	"github.com/lixenwraith/orf-cloud/engine"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/pipeline"
)

// CullSystem destroys feature objects that left the view this frame
type CullSystem struct {
	engine.SystemBase

	pipeline *pipeline.StreamingPipeline
	scene    pipeline.Scene
}

func NewCullSystem(world *engine.World, p *pipeline.StreamingPipeline, scene pipeline.Scene) engine.System {
	s := &CullSystem{
		SystemBase: engine.NewSystemBase(world),
		pipeline:   p,
		scene:      scene,
	}
	s.Init()
	return s
}

func (s *CullSystem) Init() {}

func (s *CullSystem) Name() string {
	return "cull"
}

func (s *CullSystem) Priority() int {
	return parameter.PriorityCull
}

func (s *CullSystem) Update() {
	s.pipeline.Cull(s.scene)
}
