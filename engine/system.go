package engine

// System is a per-frame update step
// Systems run sequentially in ascending Priority order
type System interface {
	Init()
	Name() string
	Priority() int
	Update()
}

// SystemBase provides common dependencies for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependencies from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resource,
		Component: w.Components,
	}
}
