package epidemicgo

// InfectionMethod distinguishes how a new exposure arose, for the
// airborne model's new_infections records.
type InfectionMethod string

const (
	MethodContact  InfectionMethod = "contact"
	MethodAirborne InfectionMethod = "airborne"
)

// InfectionRecord describes a single new exposure, for the airborne
// model's new_infections list. Source is set for contact infections,
// Zone for airborne ones; the other is left nil.
type InfectionRecord struct {
	ID     int
	Method InfectionMethod
	Source *int
	Zone   *int
}

// Delta is the per-timestamp incremental report of state changes
// emitted by the stepper. A single struct serves both the SEIR and
// airborne models; fields unused by SEIR (NewDead, Infections,
// ZoneUpdates, Stats, TotalDead) are simply left at their zero value.
//
// Err is set only for the single terminating error delta a run can
// produce; Done marks the terminating success marker. A Delta never
// carries both Err and ordinary step data.
type Delta struct {
	Time int64

	// Initial delta only: seeded patient-zero ids.
	Infected []int

	NewExposed   []int
	NewInfected  []int
	NewRecovered []int
	NewDead      []int

	// Infections records the method (contact/airborne) behind each id in
	// NewExposed, in the same order they were produced. Only populated
	// by the airborne stepper.
	Infections []InfectionRecord

	TotalExposed   int
	TotalInfected  int
	TotalRecovered int
	TotalDead      int

	// ZoneUpdates carries only zones whose load exceeds the reporting
	// threshold.
	ZoneUpdates map[int]float64
	Stats       EnvironmentalSummary

	Err  string
	Done bool
}

// HasChanges reports whether any of the delta's change lists or zone
// updates are nonempty, i.e. whether it is worth emitting.
func (d Delta) HasChanges() bool {
	return len(d.NewExposed) > 0 ||
		len(d.NewInfected) > 0 ||
		len(d.NewRecovered) > 0 ||
		len(d.NewDead) > 0 ||
		len(d.ZoneUpdates) > 0
}
