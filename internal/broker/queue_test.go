package broker

import (
	"fmt"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Enqueue(Envelope{MsgID: fmt.Sprintf("m-%d", i)})
	}
	for i := 0; i < 5; i++ {
		env, ok := q.Dequeue()
		if !ok {
			t.Fatalf("dequeue %d: empty", i)
		}
		if want := fmt.Sprintf("m-%d", i); env.MsgID != want {
			t.Fatalf("order: want %s got %s", want, env.MsgID)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("expected empty after draining")
	}
}

func TestQueueDequeueEmpty(t *testing.T) {
	q := NewQueue()
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("dequeue on empty queue returned data")
	}
	if q.NonEmpty() {
		t.Fatalf("empty queue reported non-empty")
	}
	if q.Depth() != 0 {
		t.Fatalf("empty queue depth %d", q.Depth())
	}
}

func TestQueueInterleavedEnqueueDequeue(t *testing.T) {
	q := NewQueue()
	next := 0
	for round := 0; round < 10; round++ {
		for i := 0; i < 3; i++ {
			q.Enqueue(Envelope{MsgID: fmt.Sprintf("m-%d", round*3+i)})
		}
		for i := 0; i < 2; i++ {
			env, ok := q.Dequeue()
			if !ok {
				t.Fatalf("round %d: unexpected empty", round)
			}
			if want := fmt.Sprintf("m-%d", next); env.MsgID != want {
				t.Fatalf("round %d: want %s got %s", round, want, env.MsgID)
			}
			next++
		}
	}
	// 10 left over, still in order
	for ; next < 30; next++ {
		env, ok := q.Dequeue()
		if !ok {
			t.Fatalf("drain: unexpected empty at %d", next)
		}
		if want := fmt.Sprintf("m-%d", next); env.MsgID != want {
			t.Fatalf("drain: want %s got %s", want, env.MsgID)
		}
	}
}

func TestQueueDrainIdempotent(t *testing.T) {
	q := NewQueue()
	q.Enqueue(Envelope{MsgID: "a"})
	q.Enqueue(Envelope{MsgID: "b"})
	q.Drain()
	if q.NonEmpty() {
		t.Fatalf("queue non-empty after drain")
	}
	q.Drain()
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("dequeue after double drain returned data")
	}
	// usable again after drain
	q.Enqueue(Envelope{MsgID: "c"})
	if env, ok := q.Dequeue(); !ok || env.MsgID != "c" {
		t.Fatalf("enqueue after drain broken: %v %v", env, ok)
	}
}

func TestQueueDepth(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 4; i++ {
		q.Enqueue(Envelope{})
	}
	if q.Depth() != 4 {
		t.Fatalf("depth: want 4 got %d", q.Depth())
	}
	q.Dequeue()
	q.Dequeue()
	if q.Depth() != 2 {
		t.Fatalf("depth after two dequeues: want 2 got %d", q.Depth())
	}
}
