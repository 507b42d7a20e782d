package vmath

import (
	"math"
	"testing"
)

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestV3FNormalize(t *testing.T) {
	v := V3FNormalize(Vec3F{3, 0, 4})
	if !nearly(v.X, 0.6) || !nearly(v.Z, 0.8) {
		t.Errorf("Expected (0.6, 0, 0.8), got %+v", v)
	}

	zero := V3FNormalize(Vec3F{})
	if zero != (Vec3F{}) {
		t.Errorf("Expected zero vector, got %+v", zero)
	}
}

func TestV3FCross(t *testing.T) {
	x := Vec3F{1, 0, 0}
	y := Vec3F{0, 1, 0}
	z := V3FCross(x, y)
	if z != (Vec3F{0, 0, 1}) {
		t.Errorf("Expected +Z, got %+v", z)
	}
}

func TestLookAtToView(t *testing.T) {
	eye := Vec3F{0, 0, 10}
	b := LookAt(eye, Vec3F{}, Vec3F{0, 1, 0})

	// Target lies straight ahead
	v := b.ToView(eye, Vec3F{})
	if !nearly(v.X, 0) || !nearly(v.Y, 0) || !nearly(v.Z, 10) {
		t.Errorf("Expected target at (0,0,10) in view, got %+v", v)
	}

	// +X world is to the right when looking down -Z
	v = b.ToView(eye, Vec3F{1, 0, 0})
	if v.X <= 0 {
		t.Errorf("Expected positive view X, got %+v", v)
	}

	// Point behind the eye has negative depth
	v = b.ToView(eye, Vec3F{0, 0, 20})
	if v.Z >= 0 {
		t.Errorf("Expected negative depth, got %+v", v)
	}
}
