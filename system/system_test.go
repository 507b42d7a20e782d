package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/orf-cloud/audio"
	"github.com/lixenwraith/orf-cloud/component"
	"github.com/lixenwraith/orf-cloud/engine"
	"github.com/lixenwraith/orf-cloud/pipeline"
	"github.com/lixenwraith/orf-cloud/render"
	"github.com/lixenwraith/orf-cloud/status"
	"github.com/lixenwraith/orf-cloud/vmath"
)

type recordingSink struct {
	cues []audio.CueType
}

func (r *recordingSink) Play(cue audio.CueType) bool {
	r.cues = append(r.cues, cue)
	return true
}

func (r *recordingSink) count(cue audio.CueType) int {
	n := 0
	for _, c := range r.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type harness struct {
	world *engine.World
	loop  *engine.FrameLoop
	pipe  *pipeline.StreamingPipeline
	scene *SceneAdapter
	sink  *recordingSink
}

func newHarness(features int, opts pipeline.Options) *harness {
	fs := make([]pipeline.Feature, 0, features)
	for i := 0; i < features; i++ {
		start := uint64(i) * 1000
		fs = append(fs, pipeline.Feature{Start: start, End: start + 300 + uint64(i%7)*50})
	}
	world := engine.NewWorld()
	world.Resource.View.Width = 120
	world.Resource.View.Height = 40

	p := pipeline.NewStreamingPipeline(pipeline.BuildCatalog(fs), uint64(features)*1000, opts)
	scene := NewSceneAdapter(world)
	sink := &recordingSink{}
	RegisterRun(world, p, scene, render.NewCamera(), sink)
	p.Start()

	return &harness{
		world: world,
		loop:  engine.NewFrameLoop(world, engine.NewMockTimeProvider(time.Unix(0, 0))),
		pipe:  p,
		scene: scene,
		sink:  sink,
	}
}

func TestRegisterRunOrder(t *testing.T) {
	h := newHarness(1, pipeline.DefaultOptions())
	var names []string
	for _, s := range h.world.Systems() {
		names = append(names, s.Name())
	}
	want := []string{"spawn", "physics", "visibility", "cull", "evict", "telemetry"}
	if len(names) != len(want) {
		t.Fatalf("systems = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("systems = %v, want %v", names, want)
		}
	}
}

func TestSceneAdapterLifecycle(t *testing.T) {
	world := engine.NewWorld()
	scene := NewSceneAdapter(world)

	spec := pipeline.Place(pipeline.Feature{Start: 0, End: 100}, 3, 2_000_000, 100)
	e := scene.CreateVisualObject(spec)

	feat, ok := world.Components.Feature.Get(e)
	if !ok || feat.SpawnOrder != 3 || feat.End != 100 {
		t.Fatalf("feature component = %+v %v", feat, ok)
	}
	tr, _ := world.Components.Transform.Get(e)
	if tr.Position.X != -1.0 {
		t.Errorf("x = %v, want -1", tr.Position.X)
	}
	if !scene.Visible(e) {
		t.Error("new object not visible before first pass")
	}

	scene.DestroyVisualObject(e)
	if world.Exists(e) || scene.Visible(e) {
		t.Error("destroyed object still present")
	}
	// Double destroy is harmless
	scene.DestroyVisualObject(e)
}

func TestSpawnChromosome(t *testing.T) {
	world := engine.NewWorld()
	e := NewSceneAdapter(world).SpawnChromosome("chr1", 3_000_000)

	vis, ok := world.Components.Visual.Get(e)
	if !ok || vis.Shape != component.ShapeAxis || vis.Length != 3.0 {
		t.Fatalf("visual = %+v", vis)
	}
	if world.Components.Kinetic.Has(e) || world.Components.Feature.Has(e) {
		t.Error("chromosome must be static and not a live feature")
	}
}

func TestPhysicsIntegratesVelocity(t *testing.T) {
	world := engine.NewWorld()
	e := world.CreateEntity()
	world.Components.Transform.Set(e, component.TransformComponent{})
	world.Components.Kinetic.Set(e, component.KineticComponent{Velocity: vmath.Vec3F{Y: 6}})
	world.AddSystem(NewPhysicsSystem(world))

	loop := engine.NewFrameLoop(world, engine.NewMockTimeProvider(time.Unix(0, 0)))
	loop.StepDelta(500 * time.Millisecond)

	tr, _ := world.Components.Transform.Get(e)
	if d := tr.Position.Y - 3; d > 1e-9 || d < -1e-9 {
		t.Errorf("y = %v, want 3", tr.Position.Y)
	}
}

func TestVisibilityCullsOffscreenSameFrame(t *testing.T) {
	h := newHarness(2, pipeline.Options{BatchSize: 2, CapacityCap: 100, EvictionEnabled: true})
	h.loop.StepDelta(0)
	if h.pipe.Registry().Len() != 2 {
		t.Fatalf("live = %d, want 2", h.pipe.Registry().Len())
	}

	// Throw one object far out of view; next frame it must be gone
	victim := h.pipe.Registry().Records()[0].Object
	h.world.Components.Transform.Set(victim, component.TransformComponent{Position: vmath.Vec3F{Y: 500}})
	h.loop.StepDelta(16 * time.Millisecond)

	if h.world.Exists(victim) {
		t.Error("offscreen object survived the frame")
	}
	if h.pipe.Registry().Len() != 1 {
		t.Errorf("live = %d, want 1", h.pipe.Registry().Len())
	}
}

func TestObjectsDriftOutAndAreCulled(t *testing.T) {
	h := newHarness(10, pipeline.Options{BatchSize: 10, CapacityCap: 100, EvictionEnabled: true})
	h.loop.StepDelta(0)
	if h.pipe.Registry().Len() != 10 {
		t.Fatalf("live = %d", h.pipe.Registry().Len())
	}
	for i := 0; i < 60*20; i++ {
		h.loop.StepDelta(16 * time.Millisecond)
	}
	if h.pipe.Registry().Len() != 0 || h.world.Components.Feature.Count() != 0 {
		t.Errorf("after 20s live = %d, features = %d", h.pipe.Registry().Len(), h.world.Components.Feature.Count())
	}
	if h.pipe.Stats().Culled != 10 {
		t.Errorf("culled = %d, want 10", h.pipe.Stats().Culled)
	}
}

func TestFrameInvariants(t *testing.T) {
	h := newHarness(400, pipeline.Options{
		BatchSize:       28,
		CapacityCap:     50,
		EvictionEnabled: true,
		SpawnInterval:   2 * time.Second,
	})
	for i := 0; i < 600; i++ {
		h.loop.StepDelta(16 * time.Millisecond)

		live := h.pipe.Registry().Len()
		if live > 50 {
			t.Fatalf("frame %d: live %d over cap", i, live)
		}
		if got := h.world.Components.Feature.Count(); got != live {
			t.Fatalf("frame %d: %d feature components, %d records", i, got, live)
		}
	}
	if h.sink.count(audio.CueSpawn) == 0 {
		t.Error("no spawn cue")
	}
	if h.sink.count(audio.CueEvict) == 0 {
		t.Error("no evict cue with 28 per frame against cap 50")
	}
	if h.sink.count(audio.CueExhausted) != 1 {
		t.Errorf("exhausted cues = %d, want 1", h.sink.count(audio.CueExhausted))
	}
}

func TestTelemetryPublishes(t *testing.T) {
	h := newHarness(5, pipeline.Options{BatchSize: 2, CapacityCap: 100, EvictionEnabled: true})
	h.loop.StepDelta(0)

	snap := h.world.Resource.Status.Snapshot()
	checks := map[string]float64{
		status.KeyCatalog:  5,
		status.KeySpawned:  2,
		status.KeyLive:     2,
		status.KeyQueue:    3,
		status.KeyCapacity: 100,
		status.KeyFrames:   1,
	}
	for key, want := range checks {
		if snap[key] != want {
			t.Errorf("%s = %v, want %v", key, snap[key], want)
		}
	}
}
