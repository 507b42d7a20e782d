package system

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orf-cloud/component"
	"github.com/lixenwraith/orf-cloud/core"
	"github.com/lixenwraith/orf-cloud/engine"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/pipeline"
	"github.com/lixenwraith/orf-cloud/vmath"
)

// Feature and backbone appearance
const (
	featureGlyph    = '='
	chromosomeGlyph = '#'
)

var (
	featureColor    = tcell.ColorAqua
	chromosomeColor = tcell.ColorYellow
)

// SceneAdapter exposes the ECS world to the streaming pipeline
type SceneAdapter struct {
	world *engine.World
}

var _ pipeline.Scene = (*SceneAdapter)(nil)

// NewSceneAdapter wraps world
func NewSceneAdapter(world *engine.World) *SceneAdapter {
	return &SceneAdapter{world: world}
}

// CreateVisualObject spawns a dynamic feature rod
// New objects count as visible until the next visibility pass evaluates them
func (a *SceneAdapter) CreateVisualObject(spec pipeline.VisualSpec) core.Entity {
	w := a.world
	e := w.CreateEntity()

	w.Components.Transform.Set(e, component.TransformComponent{Position: spec.Position})
	w.Components.Kinetic.Set(e, component.KineticComponent{Velocity: spec.Velocity, Mass: spec.Mass})
	w.Components.Visual.Set(e, component.VisualComponent{
		Shape:  component.ShapeCylinder,
		Length: spec.Length,
		Radius: spec.Radius,
		Color:  featureColor,
		Glyph:  featureGlyph,
	})
	w.Components.Visibility.Set(e, component.VisibilityComponent{Visible: true, Frame: w.Resource.Time.FrameNumber})
	w.Components.Feature.Set(e, component.FeatureComponent{
		Start:      spec.Feature.Start,
		End:        spec.Feature.End,
		SpawnOrder: spec.SpawnOrder,
	})
	return e
}

// DestroyVisualObject removes obj and all its components; unknown objects are ignored
func (a *SceneAdapter) DestroyVisualObject(obj core.Entity) {
	a.world.DestroyEntity(obj)
}

// Visible reports the latest visibility result; destroyed objects are not visible
func (a *SceneAdapter) Visible(obj core.Entity) bool {
	vis, ok := a.world.Components.Visibility.Get(obj)
	return ok && vis.Visible
}

// SpawnChromosome places the static backbone along X, centred on the origin
func (a *SceneAdapter) SpawnChromosome(id string, length uint64) core.Entity {
	w := a.world
	e := w.CreateEntity()

	w.Components.Transform.Set(e, component.TransformComponent{Position: vmath.Vec3F{}})
	w.Components.Visual.Set(e, component.VisualComponent{
		Shape:  component.ShapeAxis,
		Length: float64(length) / parameter.ChromosomeScale,
		Radius: parameter.ChromosomeRadius,
		Color:  chromosomeColor,
		Glyph:  chromosomeGlyph,
	})
	w.Components.Chromosome.Set(e, component.ChromosomeComponent{ID: id, Length: length})
	return e
}
