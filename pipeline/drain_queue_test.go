package pipeline

import (
	"slices"
	"testing"
)

func sampleCatalog() *Catalog {
	return BuildCatalog([]Feature{
		{Start: 1000, End: 1600},
		{Start: 10, End: 200},
		{Start: 500, End: 700},
		{Start: 40, End: 90},
		{Start: 3000, End: 3300},
	})
}

func TestDrainQueuePopBackReverseOrder(t *testing.T) {
	c := sampleCatalog()
	q := NewDrainQueue(c)

	var got []Feature
	for {
		f, ok := q.PopBack()
		if !ok {
			break
		}
		got = append(got, f)
	}

	want := c.Features()
	slices.Reverse(want)
	if !slices.Equal(got, want) {
		t.Fatalf("pop_back order = %v, want %v", got, want)
	}
}

func TestDrainQueuePopFrontSortedOrder(t *testing.T) {
	c := sampleCatalog()
	q := NewDrainQueue(c)

	var got []Feature
	for {
		f, ok := q.PopFront()
		if !ok {
			break
		}
		got = append(got, f)
	}
	if !slices.Equal(got, c.Features()) {
		t.Fatalf("pop_front order = %v, want %v", got, c.Features())
	}
}

func TestDrainQueueMixedEndsReleaseOnce(t *testing.T) {
	c := sampleCatalog()
	q := NewDrainQueue(c)

	seen := make(map[Feature]int)
	front := true
	for !q.Exhausted() {
		f, ok := q.Pop(front)
		if !ok {
			t.Fatal("pop failed before exhaustion")
		}
		seen[f]++
		front = !front
	}

	if len(seen) != c.Len() {
		t.Fatalf("released %d distinct, want %d", len(seen), c.Len())
	}
	for f, n := range seen {
		if n != 1 {
			t.Errorf("%v released %d times", f, n)
		}
	}
	if _, ok := q.PopFront(); ok {
		t.Error("pop after exhaustion succeeded")
	}
	if _, ok := q.PopBack(); ok {
		t.Error("pop after exhaustion succeeded")
	}
}

func TestDrainQueueDoesNotMutateCatalog(t *testing.T) {
	c := sampleCatalog()
	before := c.Features()
	q := NewDrainQueue(c)
	for !q.Exhausted() {
		q.PopBack()
	}
	if !slices.Equal(c.Features(), before) {
		t.Error("catalog changed after draining")
	}
}
