package engine

import (
	"github.com/lixenwraith/orf-cloud/component"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per world; pointers remain valid for the world's lifetime
type ComponentStore struct {
	Feature    *Store[component.FeatureComponent]
	Transform  *Store[component.TransformComponent]
	Kinetic    *Store[component.KineticComponent]
	Visual     *Store[component.VisualComponent]
	Visibility *Store[component.VisibilityComponent]
	Chromosome *Store[component.ChromosomeComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Feature:    NewStore[component.FeatureComponent](),
		Transform:  NewStore[component.TransformComponent](),
		Kinetic:    NewStore[component.KineticComponent](),
		Visual:     NewStore[component.VisualComponent](),
		Visibility: NewStore[component.VisibilityComponent](),
		Chromosome: NewStore[component.ChromosomeComponent](),
	}
}

// all lists every store for uniform destroy/clear
func (c ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Feature,
		c.Transform,
		c.Kinetic,
		c.Visual,
		c.Visibility,
		c.Chromosome,
	}
}
