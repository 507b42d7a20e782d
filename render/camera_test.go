package render

import (
	"testing"

	"github.com/lixenwraith/orf-cloud/vmath"
)

func TestCameraTargetProjectsToCenter(t *testing.T) {
	cam := NewCamera()
	col, row, depth, ok := cam.Project(cam.Target, 120, 40)
	if !ok {
		t.Fatal("target not visible")
	}
	if col != 60 || row != 20 {
		t.Errorf("target at (%d,%d), want (60,20)", col, row)
	}
	if depth <= 0 {
		t.Errorf("depth = %f", depth)
	}
}

func TestCameraOriginVisible(t *testing.T) {
	cam := NewCamera()
	if _, _, _, ok := cam.Project(vmath.Vec3F{}, 120, 40); !ok {
		t.Fatal("origin not visible from stock camera")
	}
}

func TestCameraRejectsBehindAndFar(t *testing.T) {
	cam := NewCamera()
	behind := vmath.Vec3F{Y: 6, Z: 40}
	if _, _, _, ok := cam.Project(behind, 120, 40); ok {
		t.Error("point behind camera visible")
	}
	offside := vmath.Vec3F{X: 500}
	if _, _, _, ok := cam.Project(offside, 120, 40); ok {
		t.Error("point far to the side visible")
	}
	if _, _, _, ok := cam.Project(vmath.Vec3F{}, 0, 0); ok {
		t.Error("zero viewport reported visible")
	}
}

func TestSegmentVisible(t *testing.T) {
	cam := NewCamera()
	// Long rod crossing the view with both ends off-screen still shows its middle
	a, b := AxisSegment(vmath.Vec3F{}, 400)
	if !cam.SegmentVisible(a, b, 120, 40) {
		t.Error("rod through origin not visible")
	}
	a, b = AxisSegment(vmath.Vec3F{Y: 300}, 1)
	if cam.SegmentVisible(a, b, 120, 40) {
		t.Error("rod far above visible")
	}
}
