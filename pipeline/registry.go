package pipeline

import (
	"github.com/lixenwraith/orf-cloud/core"
)

// compactThreshold is the minimum dead prefix before the order slice is compacted
const compactThreshold = 1024

// Handle addresses a registry slot; stale handles fail lookup after the slot is reused
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h was never issued
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// Record binds one live scene object to the feature it represents
type Record struct {
	Handle     Handle
	Object     core.Entity
	SpawnOrder uint64
	Feature    Feature
}

type slot struct {
	rec  Record
	gen  uint32
	live bool
}

// Registry tracks live objects in spawn order
// Append at tail, remove anywhere via RemoveIf, remove oldest via PopOldest
type Registry struct {
	slots []slot
	free  []uint32
	order []uint32 // Slot indices oldest-first, live entries start at head
	head  int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		slots: make([]slot, 0, 256),
		order: make([]uint32, 0, 256),
	}
}

// Append records a newly spawned object as the youngest entry
func (r *Registry) Append(obj core.Entity, spawnOrder uint64, f Feature) Handle {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{gen: 1})
	}

	s := &r.slots[idx]
	h := Handle{index: idx, gen: s.gen}
	s.rec = Record{Handle: h, Object: obj, SpawnOrder: spawnOrder, Feature: f}
	s.live = true
	r.order = append(r.order, idx)
	return h
}

// Get returns the record for h if it is still live
func (r *Registry) Get(h Handle) (Record, bool) {
	if h.IsZero() || int(h.index) >= len(r.slots) {
		return Record{}, false
	}
	s := &r.slots[h.index]
	if !s.live || s.gen != h.gen {
		return Record{}, false
	}
	return s.rec, true
}

// Len returns the number of live records
func (r *Registry) Len() int {
	return len(r.order) - r.head
}

// Oldest returns the head record without removing it
func (r *Registry) Oldest() (Record, bool) {
	if r.Len() == 0 {
		return Record{}, false
	}
	return r.slots[r.order[r.head]].rec, true
}

// PopOldest removes and returns the head record
func (r *Registry) PopOldest() (Record, bool) {
	if r.Len() == 0 {
		return Record{}, false
	}
	idx := r.order[r.head]
	r.head++
	rec := r.slots[idx].rec
	r.release(idx)
	r.compact()
	return rec, true
}

// RemoveIf removes every record matching pred in a single pass, preserving
// the relative order of survivors. onRemove is called for each removed record
// in oldest-first order. Returns the number removed
func (r *Registry) RemoveIf(pred func(Record) bool, onRemove func(Record)) int {
	live := r.order[r.head:]
	kept := live[:0]
	removed := 0
	for _, idx := range live {
		rec := r.slots[idx].rec
		if !pred(rec) {
			kept = append(kept, idx)
			continue
		}
		r.release(idx)
		removed++
		if onRemove != nil {
			onRemove(rec)
		}
	}
	if removed == 0 {
		return 0
	}
	// kept aliases order[head:], shift to front so head resets
	n := copy(r.order, kept)
	r.order = r.order[:n]
	r.head = 0
	return removed
}

// Records returns a snapshot of live records oldest-first
func (r *Registry) Records() []Record {
	out := make([]Record, 0, r.Len())
	for _, idx := range r.order[r.head:] {
		out = append(out, r.slots[idx].rec)
	}
	return out
}

// Clear drops every record without touching the scene; handles all go stale
func (r *Registry) Clear() {
	for _, idx := range r.order[r.head:] {
		r.release(idx)
	}
	r.order = r.order[:0]
	r.head = 0
}

func (r *Registry) release(idx uint32) {
	s := &r.slots[idx]
	s.live = false
	s.rec = Record{}
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	r.free = append(r.free, idx)
}

func (r *Registry) compact() {
	if r.head < compactThreshold || r.head*2 < len(r.order) {
		return
	}
	n := copy(r.order, r.order[r.head:])
	r.order = r.order[:n]
	r.head = 0
}
