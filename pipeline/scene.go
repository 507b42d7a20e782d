package pipeline

import (
	"github.com/lixenwraith/orf-cloud/core"
	"github.com/lixenwraith/orf-cloud/vmath"
)

// Scene is the world the pipeline spawns into
// Implementations must make destruction take effect before the next frame
type Scene interface {
	CreateVisualObject(vs VisualSpec) core.Entity
	DestroyVisualObject(obj core.Entity)
	// Visible reports whether obj was inside the view during the latest visibility pass
	Visible(obj core.Entity) bool
}

// VisualSpec describes one object to create: a cylinder along x with an initial velocity
type VisualSpec struct {
	Feature    Feature
	SpawnOrder uint64
	Position   vmath.Vec3F
	Velocity   vmath.Vec3F
	Length     float64 // Cylinder length, normalized feature size
	Radius     float64
	Mass       float64
}
