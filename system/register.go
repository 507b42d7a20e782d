package system

import (
	"github.com/lixenwraith/orf-cloud/engine"
	"github.com/lixenwraith/orf-cloud/pipeline"
	"github.com/lixenwraith/orf-cloud/render"
)

// RegisterRun adds the full per-frame system set for one pipeline run
func RegisterRun(world *engine.World, p *pipeline.StreamingPipeline, scene *SceneAdapter, camera *render.Camera, cues CueSink) {
	world.AddSystem(NewSpawnSystem(world, p, scene, cues))
	world.AddSystem(NewPhysicsSystem(world))
	world.AddSystem(NewVisibilitySystem(world, camera))
	world.AddSystem(NewCullSystem(world, p, scene))
	world.AddSystem(NewEvictSystem(world, p, scene, cues))
	world.AddSystem(NewTelemetrySystem(world, p))
}
