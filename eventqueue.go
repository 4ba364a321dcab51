package epidemicgo

import "container/heap"

// EventKind distinguishes the two kinds of scheduled per-individual
// transitions the engine tracks between contact arrivals.
type EventKind int

const (
	// BecomeInfectious fires when an Exposed individual's incubation
	// period elapses; consumed only if the subject is still Exposed.
	BecomeInfectious EventKind = iota + 1
	// Recover fires when an Infectious individual's recovery/removal
	// period elapses; consumed only if the subject is still Infectious.
	Recover
)

// scheduledEvent is one entry in the event queue: a (fire_time, kind,
// subject) triple.
type scheduledEvent struct {
	fireTime float64
	kind     EventKind
	subject  int
	seq      uint64 // insertion order, used only to break fireTime ties deterministically
}

// eventHeap is a strict min-heap on fireTime implementing heap.Interface.
// Ties are broken by insertion order so that, for a fixed seed, pop order
// is deterministic regardless of the underlying heap implementation's
// sift behavior.
type eventHeap []*scheduledEvent

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].fireTime != h[j].fireTime {
		return h[i].fireTime < h[j].fireTime
	}
	return h[i].seq < h[j].seq
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(*scheduledEvent))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// EventQueue is the engine's priority queue of scheduled per-individual
// transitions (C2). Stale pops (subject no longer in the expected
// compartment) are the caller's responsibility to discard; the queue
// itself only orders and returns entries.
type EventQueue struct {
	h    eventHeap
	next uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{}
	heap.Init(&q.h)
	return q
}

// Push schedules an event at the given fire time.
func (q *EventQueue) Push(fireTime float64, kind EventKind, subject int) {
	heap.Push(&q.h, &scheduledEvent{fireTime: fireTime, kind: kind, subject: subject, seq: q.next})
	q.next++
}

// Peek returns the earliest-scheduled event without removing it, and
// false if the queue is empty.
func (q *EventQueue) Peek() (*scheduledEvent, bool) {
	if len(q.h) == 0 {
		return nil, false
	}
	return q.h[0], true
}

// Pop removes and returns the earliest-scheduled event.
func (q *EventQueue) Pop() (*scheduledEvent, bool) {
	if len(q.h) == 0 {
		return nil, false
	}
	return heap.Pop(&q.h).(*scheduledEvent), true
}

// Len reports the number of outstanding events.
func (q *EventQueue) Len() int { return len(q.h) }
