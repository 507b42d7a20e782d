package pipeline

import (
	"github.com/lixenwraith/orf-cloud/core"
)

// fakeScene records created objects and lets tests flip visibility per object
type fakeScene struct {
	next    core.Entity
	live    map[core.Entity]VisualSpec
	hidden  map[core.Entity]bool
	created []VisualSpec
	killed  []core.Entity
}

func newFakeScene() *fakeScene {
	return &fakeScene{
		live:   make(map[core.Entity]VisualSpec),
		hidden: make(map[core.Entity]bool),
	}
}

func (s *fakeScene) CreateVisualObject(spec VisualSpec) core.Entity {
	s.next++
	s.live[s.next] = spec
	s.created = append(s.created, spec)
	return s.next
}

func (s *fakeScene) DestroyVisualObject(obj core.Entity) {
	delete(s.live, obj)
	delete(s.hidden, obj)
	s.killed = append(s.killed, obj)
}

func (s *fakeScene) Visible(obj core.Entity) bool {
	_, ok := s.live[obj]
	return ok && !s.hidden[obj]
}

func (s *fakeScene) hideAll() {
	for e := range s.live {
		s.hidden[e] = true
	}
}
