// Package assets: FIFO queue with deduplication.
// Used by watch mode to collapse bursts of file events into one build per asset.
package assets

// Queue is a FIFO of asset names that ignores names already pending.
type Queue struct {
	items   []string
	pending map[string]bool
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		pending: make(map[string]bool),
	}
}

// Add enqueues name unless it is already pending.
func (q *Queue) Add(name string) {
	if q.pending[name] {
		return
	}
	q.pending[name] = true
	q.items = append(q.items, name)
}

// Len returns the number of pending names.
func (q *Queue) Len() int {
	return len(q.items)
}

// Drain returns all pending names in insertion order and empties the queue.
func (q *Queue) Drain() []string {
	items := q.items
	q.items = nil
	clear(q.pending)
	return items
}
