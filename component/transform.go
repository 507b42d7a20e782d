package component

import (
	"github.com/lixenwraith/orf-cloud/vmath"
)

// TransformComponent is the world-space placement of an object
// Objects are cylinders lying along the X axis, so only position is tracked
type TransformComponent struct {
	Position vmath.Vec3F
}
