package system

import (
	"github.com/lixenwraith/orf-cloud/component"
	"github.com/lixenwraith/orf-cloud/engine"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/render"
)

// VisibilitySystem evaluates every feature object against the camera view
// Runs after physics so the cull pass sees this frame's positions
type VisibilitySystem struct {
	engine.SystemBase

	camera *render.Camera
}

func NewVisibilitySystem(world *engine.World, camera *render.Camera) engine.System {
	s := &VisibilitySystem{
		SystemBase: engine.NewSystemBase(world),
		camera:     camera,
	}
	s.Init()
	return s
}

func (s *VisibilitySystem) Init() {}

func (s *VisibilitySystem) Name() string {
	return "visibility"
}

func (s *VisibilitySystem) Priority() int {
	return parameter.PriorityVisibility
}

func (s *VisibilitySystem) Update() {
	width, height := s.Resource.View.Width, s.Resource.View.Height
	if width <= 0 || height <= 0 {
		width, height = parameter.DefaultViewWidth, parameter.DefaultViewHeight
	}
	frame := s.Resource.Time.FrameNumber

	for _, e := range s.Component.Feature.All() {
		tr, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}
		length := 0.0
		if vis, ok := s.Component.Visual.Get(e); ok {
			length = vis.Length
		}
		a, b := render.AxisSegment(tr.Position, length)
		s.Component.Visibility.Set(e, component.VisibilityComponent{
			Visible: s.camera.SegmentVisible(a, b, width, height),
			Frame:   frame,
		})
	}
}
