package events

import "sync"

// QueueSize is the ring capacity; oldest events are overwritten when full
const QueueSize = 64

// Queue is a bounded FIFO ring buffer for carousel events
// Producers are timer callbacks and navigation calls; the consumer is the
// adapter's dispatch loop. Overflow drops the oldest event rather than
// blocking a producer
type Queue struct {
	mu     sync.Mutex
	events [QueueSize]Event
	head   uint64 // read index
	tail   uint64 // write index
}

// NewQueue creates an empty event queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event, overwriting the oldest unread event when full
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.events[q.tail%QueueSize] = ev
	q.tail++
	if q.tail-q.head > QueueSize {
		q.head = q.tail - QueueSize
	}
}

// Consume returns all pending events in FIFO order and advances the read index
func (q *Queue) Consume() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.tail == q.head {
		return nil
	}

	result := make([]Event, 0, q.tail-q.head)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.events[i%QueueSize])
	}
	q.head = q.tail
	return result
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int(q.tail - q.head)
}
