package vmath

// Basis is an orthonormal right-handed view frame
// Forward points from the eye toward the target
type Basis struct {
	Right, Up, Forward Vec3F
}

// LookAt builds a view basis for an eye looking at target with the given world up
// Degenerate input (target == eye, or up parallel to forward) yields the zero basis
func LookAt(eye, target, up Vec3F) Basis {
	f := V3FNormalize(V3FSub(target, eye))
	r := V3FNormalize(V3FCross(f, up))
	u := V3FCross(r, f)
	return Basis{Right: r, Up: u, Forward: f}
}

// ToView expresses world point p in the basis anchored at eye
// Result: X right, Y up, Z distance along forward
func (b Basis) ToView(eye, p Vec3F) Vec3F {
	d := V3FSub(p, eye)
	return Vec3F{
		X: V3FDot(d, b.Right),
		Y: V3FDot(d, b.Up),
		Z: V3FDot(d, b.Forward),
	}
}
