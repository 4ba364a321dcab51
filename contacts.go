package epidemicgo

import "github.com/pkg/errors"

// ContactEvent is one (timestamp, u, v) record from the input contact
// stream. The stream is required to be sorted non-decreasing by
// Timestamp; multiple events may share a timestamp.
type ContactEvent struct {
	Timestamp int64
	U, V      int
}

// ContactIterator is a lazy, forward-only, restartable view over a
// pre-sorted contact stream, grouping consecutive events that share a
// timestamp. It mirrors the pull-iterator shape used by
// InfectionIterator in the exposure-notifications reference
// (Next() (item, done, err)), adapted to return a whole same-timestamp
// group per call since the stepper processes a group atomically.
type ContactIterator struct {
	events []ContactEvent
	pos    int
}

// NewContactIterator validates that events is sorted non-decreasing by
// timestamp and wraps it for grouped iteration.
func NewContactIterator(events []ContactEvent) (*ContactIterator, error) {
	for i := 1; i < len(events); i++ {
		if events[i].Timestamp < events[i-1].Timestamp {
			return nil, errors.Errorf(UnsortedContactStreamError, i)
		}
	}
	return &ContactIterator{events: events}, nil
}

// Reset rewinds the iterator to the start of the stream.
func (it *ContactIterator) Reset() {
	it.pos = 0
}

// Next returns the next (timestamp, group) pair, where group is the
// sequence of events sharing that timestamp in their original stream
// order. ok is false once the stream is exhausted.
func (it *ContactIterator) Next() (timestamp int64, group []ContactEvent, ok bool) {
	if it.pos >= len(it.events) {
		return 0, nil, false
	}
	start := it.pos
	timestamp = it.events[start].Timestamp
	end := start
	for end < len(it.events) && it.events[end].Timestamp == timestamp {
		end++
	}
	it.pos = end
	return timestamp, it.events[start:end], true
}

// Empty reports whether the underlying stream has no events.
func (it *ContactIterator) Empty() bool {
	return len(it.events) == 0
}

// StartTime returns the timestamp of the first event in the stream.
func (it *ContactIterator) StartTime() int64 {
	return it.events[0].Timestamp
}

// EndTime returns the timestamp of the last event in the stream.
func (it *ContactIterator) EndTime() int64 {
	return it.events[len(it.events)-1].Timestamp
}

// UniqueIds returns every distinct individual id appearing in the
// stream, in first-seen order.
func (it *ContactIterator) UniqueIds() []int {
	seen := make(map[int]bool)
	var ids []int
	add := func(id int) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, e := range it.events {
		add(e.U)
		add(e.V)
	}
	return ids
}
