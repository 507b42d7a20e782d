package parameter

// System Execution Priorities (lower runs first)
// Spawn must precede cull, and cull must precede evict, within one frame
const (
	PrioritySpawn      = 10
	PriorityPhysics    = 20
	PriorityVisibility = 30 // After all movement for the frame is applied
	PriorityCull       = 40 // Observes this frame's visibility, never a stale one
	PriorityEvict      = 50 // Trims only what culling left
	PriorityTelemetry  = 1000
)
