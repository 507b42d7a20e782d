package engine

import (
	"testing"

	"github.com/lixenwraith/orf-cloud/component"
	"github.com/lixenwraith/orf-cloud/core"
)

// recordingSystem appends its name to a shared log on Update
type recordingSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordingSystem) Init()         {}
func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update()       { *s.log = append(*s.log, s.name) }

func TestCreateEntityUnique(t *testing.T) {
	world := NewWorld()
	seen := make(map[core.Entity]bool)
	for i := 0; i < 100; i++ {
		e := world.CreateEntity()
		if e == 0 {
			t.Fatal("Entity 0 must never be issued")
		}
		if seen[e] {
			t.Fatalf("Duplicate entity %d", e)
		}
		seen[e] = true
	}
}

func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	world := NewWorld()
	e := world.CreateEntity()

	world.Components.Feature.Set(e, component.FeatureComponent{Start: 1, End: 10})
	world.Components.Transform.Set(e, component.TransformComponent{})
	world.Components.Visibility.Set(e, component.VisibilityComponent{Visible: true})

	if !world.Exists(e) {
		t.Fatal("Expected entity to exist")
	}

	world.DestroyEntity(e)

	if world.Exists(e) {
		t.Error("Expected entity to be gone after destroy")
	}
	if world.Components.Feature.Count() != 0 {
		t.Errorf("Expected empty feature store, got %d", world.Components.Feature.Count())
	}
}

func TestStoreSwapRemoveKeepsIndex(t *testing.T) {
	store := NewStore[component.FeatureComponent]()
	for i := core.Entity(1); i <= 5; i++ {
		store.Set(i, component.FeatureComponent{SpawnOrder: uint64(i)})
	}

	store.Remove(2)
	store.Remove(5)
	store.Remove(2) // Second remove is a no-op

	if store.Count() != 3 {
		t.Fatalf("Expected 3 entries, got %d", store.Count())
	}
	for _, e := range []core.Entity{1, 3, 4} {
		v, ok := store.Get(e)
		if !ok || v.SpawnOrder != uint64(e) {
			t.Errorf("Entity %d lost or corrupted: %+v %v", e, v, ok)
		}
	}

	// Removing the moved element must still work
	store.Remove(4)
	if store.Has(4) || store.Count() != 2 {
		t.Errorf("Expected entity 4 removed, count 2, got count %d", store.Count())
	}
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	world := NewWorld()
	var log []string

	world.AddSystem(&recordingSystem{name: "evict", priority: 50, log: &log})
	world.AddSystem(&recordingSystem{name: "spawn", priority: 10, log: &log})
	world.AddSystem(&recordingSystem{name: "cull", priority: 40, log: &log})

	world.Update()

	want := []string{"spawn", "cull", "evict"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], log[i])
		}
	}
}
