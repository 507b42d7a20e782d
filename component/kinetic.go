package component

import (
	"github.com/lixenwraith/orf-cloud/vmath"
)

// KineticComponent holds linear motion for dynamic bodies
// Static bodies carry a TransformComponent only
type KineticComponent struct {
	Velocity vmath.Vec3F // World units per second
	Mass     float64
}
