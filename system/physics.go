package system

import (
	"time"

	"github.com/lixenwraith/orf-cloud/component"
	"github.com/lixenwraith/orf-cloud/engine"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/vmath"
)

// PhysicsSystem integrates dynamic bodies; gravity is zero so objects drift
type PhysicsSystem struct {
	engine.SystemBase

	substeps int
	gravity  vmath.Vec3F
}

func NewPhysicsSystem(world *engine.World) engine.System {
	s := &PhysicsSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.Init()
	return s
}

func (s *PhysicsSystem) Init() {
	s.substeps = parameter.PhysicsSubsteps
	s.gravity = vmath.Vec3F{}
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Update() {
	dt := s.Resource.Time.DeltaTime
	if dt <= 0 {
		return
	}
	h := float64(dt) / float64(time.Second) / float64(s.substeps)

	for _, e := range s.Component.Kinetic.All() {
		kin, ok := s.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		tr, ok := s.Component.Transform.Get(e)
		if !ok {
			continue
		}
		for i := 0; i < s.substeps; i++ {
			kin.Velocity = vmath.V3FMulAdd(kin.Velocity, s.gravity, h)
			tr.Position = vmath.V3FMulAdd(tr.Position, kin.Velocity, h)
		}
		s.Component.Kinetic.Set(e, kin)
		s.Component.Transform.Set(e, tr)
	}
}
