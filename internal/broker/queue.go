package broker

import "sync"

// Queue is an ordered, unbounded buffer of Envelopes for one (kind, target)
// pair. Delivery order is strict FIFO: no priorities, no deduplication by
// MsgID. Dequeue never blocks; callers wanting wait-for-data semantics poll.
//
// Each Queue carries its own lock so operations on different targets never
// contend with each other.
type Queue struct {
	mu    sync.Mutex
	items []Envelope
	head  int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue { return &Queue{} }

// Enqueue appends env to the tail. It always succeeds.
func (q *Queue) Enqueue(env Envelope) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, env)
}

// Dequeue removes and returns the head Envelope. The second return is false
// when the queue is empty.
func (q *Queue) Dequeue() (Envelope, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.head >= len(q.items) {
		return Envelope{}, false
	}
	env := q.items[q.head]
	q.items[q.head] = Envelope{} // release references held by consumed slots
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return env, true
}

// NonEmpty reports whether at least one Envelope is waiting.
func (q *Queue) NonEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.head < len(q.items)
}

// Depth returns the number of waiting Envelopes.
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Drain removes all Envelopes. Idempotent.
func (q *Queue) Drain() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
	q.head = 0
}
