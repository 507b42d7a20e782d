package render

import (
	"math"

	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/vmath"
)

// Camera is a fixed perspective view projected onto the terminal grid
type Camera struct {
	Eye    vmath.Vec3F
	Target vmath.Vec3F
	FovY   float64
	Near   float64
	Far    float64
	// CellAspect is cell height over width; compensates non-square cells
	CellAspect float64

	basis vmath.Basis
	focal float64
}

// NewCamera returns the stock scene camera
func NewCamera() *Camera {
	return NewCameraAt(
		vmath.Vec3F{X: parameter.CameraEyeX, Y: parameter.CameraEyeY, Z: parameter.CameraEyeZ},
		vmath.Vec3F{X: parameter.CameraTargetX, Y: parameter.CameraTargetY, Z: parameter.CameraTargetZ},
	)
}

// NewCameraAt creates a camera at eye looking at target with world +Y up
func NewCameraAt(eye, target vmath.Vec3F) *Camera {
	c := &Camera{
		Eye:        eye,
		Target:     target,
		FovY:       parameter.CameraFovY,
		Near:       parameter.CameraNear,
		Far:        parameter.CameraFar,
		CellAspect: parameter.CellAspect,
	}
	c.basis = vmath.LookAt(eye, target, vmath.Vec3F{Y: 1})
	c.focal = 1 / math.Tan(c.FovY/2)
	return c
}

// NDC projects p to normalized device coordinates for a width x height cell grid
// ok is false when p is behind the near plane or past the far plane
func (c *Camera) NDC(p vmath.Vec3F, width, height int) (x, y, depth float64, ok bool) {
	v := c.basis.ToView(c.Eye, p)
	if v.Z < c.Near || v.Z > c.Far || width <= 0 || height <= 0 {
		return 0, 0, v.Z, false
	}
	aspect := float64(width) / (float64(height) * c.CellAspect)
	x = v.X * c.focal / (v.Z * aspect)
	y = v.Y * c.focal / v.Z
	return x, y, v.Z, true
}

// Project maps p to a cell; ok is false when p falls outside the grid
func (c *Camera) Project(p vmath.Vec3F, width, height int) (col, row int, depth float64, ok bool) {
	x, y, depth, ok := c.NDC(p, width, height)
	if !ok || x < -1 || x > 1 || y < -1 || y > 1 {
		return 0, 0, depth, false
	}
	col = int((x + 1) / 2 * float64(width))
	row = int((1 - y) / 2 * float64(height))
	if col >= width {
		col = width - 1
	}
	if row >= height {
		row = height - 1
	}
	return col, row, depth, true
}

// SegmentVisible reports whether any sampled point of segment a-b lies in the view
// Segments are short relative to the frustum, so endpoints and midpoint suffice
func (c *Camera) SegmentVisible(a, b vmath.Vec3F, width, height int) bool {
	mid := vmath.V3FScale(vmath.V3FAdd(a, b), 0.5)
	for _, p := range [3]vmath.Vec3F{a, mid, b} {
		if _, _, _, ok := c.Project(p, width, height); ok {
			return true
		}
	}
	return false
}

// AxisSegment returns the endpoints of a rod of length centred at pos along X
func AxisSegment(pos vmath.Vec3F, length float64) (vmath.Vec3F, vmath.Vec3F) {
	h := length / 2
	return vmath.Vec3F{X: pos.X - h, Y: pos.Y, Z: pos.Z}, vmath.Vec3F{X: pos.X + h, Y: pos.Y, Z: pos.Z}
}
