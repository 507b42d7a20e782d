package component

// VisibilityComponent is the per-frame view visibility result
// Written by the visibility pass, read by the cull pass of the same frame
type VisibilityComponent struct {
	Visible bool
	Frame   int64 // Frame the flag was computed for
}
