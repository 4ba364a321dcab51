package epidemicgo

import (
	"context"

	"github.com/segmentio/ksuid"
)

const (
	drainTickSeconds   = 20
	maxDrainIterations = 1000
)

// Driver is the simulation driver (C8): it owns a single run end to end,
// from seeding patient zero through the drain phase, and exposes the
// resulting delta sequence as a channel the caller pulls from one value
// at a time, mirroring a generator's lazy, one-value-per-pull contract
// with a channel the caller ranges or selects over.
type Driver struct {
	params    Parameters
	contacts  []ContactEvent
	community map[int]int

	// RunID correlates this run's log lines and sink rows.
	RunID ksuid.KSUID
}

// NewDriver creates a driver for one run. community is required for the
// airborne model and ignored otherwise.
func NewDriver(params Parameters, contacts []ContactEvent, community map[int]int) *Driver {
	return &Driver{
		params:    params,
		contacts:  contacts,
		community: community,
		RunID:     ksuid.New(),
	}
}

// Run starts the simulation and returns a channel of deltas. The
// channel is closed after either a single error delta, or a normal
// sequence of step deltas followed by a done marker. No partial delta
// is ever emitted: every value sent on the channel is one complete,
// internally consistent Delta.
//
// Cancelling ctx stops the run between deltas; no partial-step mutation
// survives a cancellation, since each delta is only emitted once its
// step has fully applied.
func (d *Driver) Run(ctx context.Context) <-chan Delta {
	out := make(chan Delta)
	go d.run(ctx, out)
	return out
}

func (d *Driver) run(ctx context.Context, out chan<- Delta) {
	defer close(out)

	if len(d.contacts) == 0 {
		send(ctx, out, Delta{Err: DataNotLoadedError})
		return
	}
	it, err := NewContactIterator(d.contacts)
	if err != nil {
		send(ctx, out, Delta{Err: err.Error()})
		return
	}
	if err := d.params.Validate(); err != nil {
		send(ctx, out, Delta{Err: err.Error()})
		return
	}

	ids := it.UniqueIds()
	n := 0
	for _, id := range ids {
		if id+1 > n {
			n = id + 1
		}
	}
	engine := NewEngine(d.params, n, d.community)

	hooks := seirHooks()
	if d.params.Model == ModelAirborne {
		hooks = measlesHooks()
	}

	startTime := it.StartTime()
	seeded := engine.Stream.SampleWithoutReplacement(ids, d.params.PatientZeroCount)
	for _, id := range seeded {
		engine.Pop.Seed(id, Infectious)
		engine.Queue.Push(float64(startTime)+d.params.recoverySample(engine.Stream), Recover, id)
	}
	initial := Delta{
		Time:     startTime,
		Infected: seeded,
	}
	if !send(ctx, out, initial) {
		return
	}

	var lastTimestamp int64 = startTime
	for {
		timestamp, group, ok := it.Next()
		if !ok {
			break
		}
		lastTimestamp = timestamp
		delta := step(engine, float64(timestamp), group, hooks)
		if delta.HasChanges() {
			if !send(ctx, out, delta) {
				return
			}
		}
	}

	for i := 0; i < maxDrainIterations && engine.Queue.Len() > 0; i++ {
		lastTimestamp += drainTickSeconds
		delta := step(engine, float64(lastTimestamp), nil, hooks)
		if delta.HasChanges() {
			if !send(ctx, out, delta) {
				return
			}
		}
	}

	send(ctx, out, Delta{Done: true})
}

// send delivers a delta unless ctx is canceled first, returning false
// when the caller should stop (the run is being abandoned).
func send(ctx context.Context, out chan<- Delta, d Delta) bool {
	select {
	case out <- d:
		return true
	case <-ctx.Done():
		return false
	}
}
