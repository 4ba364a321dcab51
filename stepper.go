package epidemicgo

// stepHooks factors the bulk of per-step work shared between the SEIR
// and airborne models from the two points where they diverge: what
// happens before the event queue is drained (ventilation decay +
// shedding, airborne only) and what happens after direct-contact
// transmission is processed (the airborne roll over susceptibles). In
// the SEIR model both hooks are no-ops.
type stepHooks struct {
	pre  func(e *Engine)
	post func(e *Engine, t float64) (newExposed []int, infections []InfectionRecord)
}

var noopHooks = stepHooks{
	pre:  func(e *Engine) {},
	post: func(e *Engine, t float64) ([]int, []InfectionRecord) { return nil, nil },
}

// step runs one timestamp of simulation: drain due events, process the
// contact group, run the model-specific pre/post hooks around those two
// phases, and assemble the resulting Delta. t is in seconds.
func step(e *Engine, t float64, group []ContactEvent, hooks stepHooks) Delta {
	var newExposed, newInfected, newRecovered, newDead []int
	var infections []InfectionRecord

	hooks.pre(e)

	drainDueEvents(e, t, &newInfected, &newRecovered, &newDead)

	processContacts(e, t, group, &newExposed, &infections)

	postExposed, postInfections := hooks.post(e, t)
	newExposed = append(newExposed, postExposed...)
	infections = append(infections, postInfections...)

	s, exp, i, r, d := e.Pop.Counts()
	_ = s
	_ = i

	delta := Delta{
		Time:           int64(t),
		NewExposed:     newExposed,
		NewInfected:    newInfected,
		NewRecovered:   newRecovered,
		NewDead:        newDead,
		TotalExposed:   exp,
		TotalInfected:  i,
		TotalRecovered: r,
		TotalDead:      d,
	}
	if e.Zones != nil {
		// Only the airborne model ever has a non-nil zone map.
		delta.Infections = infections
		delta.ZoneUpdates = e.Zones.Updates(zoneAirborneReport)
		delta.Stats = e.Zones.Summary()
	}
	return delta
}

// drainDueEvents repeatedly pops the earliest-scheduled event while its
// fire time is <= t. A BecomeInfectious event is discarded unless the
// subject is still Exposed; a Recover event is discarded unless the
// subject is still Infectious. In the airborne model Recover transitions
// to Dead with probability Params.MortalityRate, Recovered otherwise; the
// SEIR model ignores MortalityRate and never produces a Dead id.
func drainDueEvents(e *Engine, t float64, newInfected, newRecovered, newDead *[]int) {
	for {
		ev, ok := e.Queue.Peek()
		if !ok || ev.fireTime > t {
			return
		}
		e.Queue.Pop()

		switch ev.kind {
		case BecomeInfectious:
			if e.Pop.Get(ev.subject) != Exposed {
				continue
			}
			e.Pop.Set(ev.subject, Infectious)
			*newInfected = append(*newInfected, ev.subject)
			e.Queue.Push(t+e.Params.recoverySample(e.Stream), Recover, ev.subject)

		case Recover:
			if e.Pop.Get(ev.subject) != Infectious {
				continue
			}
			if e.Params.Model == ModelAirborne && e.Params.MortalityRate > 0 && e.Stream.Bernoulli(e.Params.MortalityRate) {
				e.Pop.Set(ev.subject, Dead)
				*newDead = append(*newDead, ev.subject)
			} else {
				e.Pop.Set(ev.subject, Recovered)
				*newRecovered = append(*newRecovered, ev.subject)
			}
		}
	}
}

// processContacts walks the contact group in stream order, rolling a
// transmission trial whenever exactly one endpoint is Infectious and the
// other Susceptible. Compartments are read once per
// pair so that an S->E transition fired earlier in the same group is
// immediately visible to later pairs in the group, preventing a
// same-step reinfection.
func processContacts(e *Engine, t float64, group []ContactEvent, newExposed *[]int, infections *[]InfectionRecord) {
	for _, c := range group {
		su, sv := e.Pop.Get(c.U), e.Pop.Get(c.V)

		var infectious, susceptible int
		switch {
		case su == Infectious && sv == Susceptible:
			infectious, susceptible = c.U, c.V
		case sv == Infectious && su == Susceptible:
			infectious, susceptible = c.V, c.U
		default:
			continue
		}

		if !e.Stream.Bernoulli(e.Params.TransmissionProb) {
			continue
		}
		exposeIndividual(e, susceptible, t)
		*newExposed = append(*newExposed, susceptible)
		src := infectious
		*infections = append(*infections, InfectionRecord{ID: susceptible, Method: MethodContact, Source: &src})
	}
}

// exposeIndividual transitions id from Susceptible to Exposed and
// schedules its BecomeInfectious event, shared by both the contact and
// airborne transmission paths.
func exposeIndividual(e *Engine, id int, t float64) {
	e.Pop.Set(id, Exposed)
	e.Queue.Push(t+e.Params.incubationSample(e.Stream), BecomeInfectious, id)
}
