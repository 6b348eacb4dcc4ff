package midi

import (
	"sync"

	"gitlab.com/gomidi/midi/v2"
)

// Queue buffers raw messages between a producer (a host's event source) and
// the once-per-cycle delivery into the plugin. Arrival order is preserved:
// note-on/note-off are order-sensitive for the gate counter.
type Queue struct {
	mu      sync.Mutex
	events  []midi.Message
	scratch []midi.Message
}

// NewQueue creates an event queue with room for a typical cycle's batch.
func NewQueue() *Queue {
	return &Queue{
		events:  make([]midi.Message, 0, 128),
		scratch: make([]midi.Message, 0, 128),
	}
}

// Push appends a message in arrival order.
func (q *Queue) Push(msg midi.Message) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.events = append(q.events, msg)
}

// Drain returns all buffered messages in arrival order and empties the
// queue. The returned slice is reused by the next Drain, so callers must
// finish with it before draining again. Steady-state drains do not allocate.
func (q *Queue) Drain() []midi.Message {
	q.mu.Lock()
	defer q.mu.Unlock()

	batch := q.events
	q.events = q.scratch[:0]
	q.scratch = batch

	return batch
}

// Len returns the number of buffered messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.events)
}

// Clear drops all buffered messages.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.events = q.events[:0]
}
