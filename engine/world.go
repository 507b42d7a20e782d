package engine

import (
	"sort"
	"sync"

	"github.com/lixenwraith/orf-cloud/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resource   *Resource

	allStores []AnyStore
	systems   []System
}

// NewWorld creates a new world with all component stores and resources initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resource:     newResource(),
		systems:      make([]System, 0),
	}
	w.allStores = w.Components.all()
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Exists reports whether any store holds a component for e
func (w *World) Exists(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
// Entity IDs keep increasing so stale handles never alias new objects
func (w *World) Clear() {
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem adds a system to the world, keeping systems sorted by priority
// Stable sort keeps registration order for equal priorities
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RemoveSystems drops every registered system
func (w *World) RemoveSystems() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.systems = w.systems[:0]
}

// Update runs all systems sequentially
func (w *World) Update() {
	for _, system := range w.Systems() {
		system.Update()
	}
}
