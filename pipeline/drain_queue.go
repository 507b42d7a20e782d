package pipeline

// DrainQueue releases catalog features from either end, each exactly once
// Backed by a private copy of the catalog; head and tail only move inward
type DrainQueue struct {
	items []Feature
	head  int // Next front index
	tail  int // One past the next back index
}

// NewDrainQueue seeds a queue with the catalog's features in sorted order
func NewDrainQueue(c *Catalog) *DrainQueue {
	items := c.Features()
	return &DrainQueue{
		items: items,
		tail:  len(items),
	}
}

// PopFront removes and returns the lowest-start remaining feature
func (q *DrainQueue) PopFront() (Feature, bool) {
	if q.head >= q.tail {
		return Feature{}, false
	}
	f := q.items[q.head]
	q.head++
	q.release()
	return f, true
}

// PopBack removes and returns the highest-start remaining feature
func (q *DrainQueue) PopBack() (Feature, bool) {
	if q.head >= q.tail {
		return Feature{}, false
	}
	q.tail--
	f := q.items[q.tail]
	q.release()
	return f, true
}

// Pop removes from the front when fromFront is set, otherwise from the back
func (q *DrainQueue) Pop(fromFront bool) (Feature, bool) {
	if fromFront {
		return q.PopFront()
	}
	return q.PopBack()
}

// Len returns the number of features not yet released
func (q *DrainQueue) Len() int {
	return q.tail - q.head
}

// Exhausted reports whether every feature has been released
func (q *DrainQueue) Exhausted() bool {
	return q.head >= q.tail
}

// release drops the backing array once empty so a drained run holds no feature memory
func (q *DrainQueue) release() {
	if q.head >= q.tail {
		q.items = nil
		q.head, q.tail = 0, 0
	}
}
