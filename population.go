package epidemicgo

import "fmt"

// Compartment is the epidemiological class of an individual at a given
// instant. The SEIR core uses Susceptible/Exposed/Infectious/Recovered;
// the airborne model additionally uses Dead.
type Compartment int

const (
	Susceptible Compartment = iota
	Exposed
	Infectious
	Recovered
	Dead
)

func (c Compartment) String() string {
	switch c {
	case Susceptible:
		return "susceptible"
	case Exposed:
		return "exposed"
	case Infectious:
		return "infectious"
	case Recovered:
		return "recovered"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// permittedTransitions enumerates the only compartment changes the
// engine allows: S->E, E->I, I->R, I->D. No reinfection, no direct S->I.
var permittedTransitions = map[Compartment]map[Compartment]bool{
	Susceptible: {Exposed: true},
	Exposed:     {Infectious: true},
	Infectious:  {Recovered: true, Dead: true},
}

// Population is the dense per-individual compartment vector (C3).
// Individuals are addressed by a compact non-negative integer id
// (0..N-1); a flat slice is used instead of a map, since ids are known
// up front to be dense.
type Population struct {
	compartments []Compartment
	counts       [5]int
}

// NewPopulation creates a population of n individuals, all Susceptible.
func NewPopulation(n int) *Population {
	p := &Population{compartments: make([]Compartment, n)}
	p.counts[Susceptible] = n
	return p
}

// Get returns the current compartment of id.
func (p *Population) Get(id int) Compartment {
	return p.compartments[id]
}

// Set transitions id to newCompartment, keeping the aggregate counters
// in sync. In debug builds this panics on a transition outside the
// permitted set; in release builds the caller is trusted to only
// request permitted transitions, since stepper.go never calls Set with
// anything else.
func (p *Population) Set(id int, newCompartment Compartment) {
	old := p.compartments[id]
	assertPermittedTransition(old, newCompartment)
	p.counts[old]--
	p.counts[newCompartment]++
	p.compartments[id] = newCompartment
}

// Seed assigns an individual's initial compartment directly, bypassing
// the guarded-transition check Set enforces. It exists solely for
// patient-zero seeding at the start of a run, which places an
// individual straight into Infectious from its zero-value Susceptible
// state without passing through Exposed; that is not a transition the
// stepper ever performs mid-run, so it is not part of the set Set
// guards against.
func (p *Population) Seed(id int, newCompartment Compartment) {
	old := p.compartments[id]
	p.counts[old]--
	p.counts[newCompartment]++
	p.compartments[id] = newCompartment
}

// Counts returns the current (S, E, I, R, D) aggregate counts.
func (p *Population) Counts() (s, e, i, r, d int) {
	return p.counts[Susceptible], p.counts[Exposed], p.counts[Infectious], p.counts[Recovered], p.counts[Dead]
}

// Len returns the population size N.
func (p *Population) Len() int { return len(p.compartments) }

// Ids returns every individual id, 0..N-1.
func (p *Population) Ids() []int {
	ids := make([]int, len(p.compartments))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

func assertPermittedTransition(from, to Compartment) {
	if from == to {
		return
	}
	if !permittedTransitions[from][to] {
		panicOrIgnore(fmt.Sprintf("invalid transition %s -> %s", from, to))
	}
}
