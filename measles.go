package epidemicgo

// measlesHooks returns the airborne (measles) model's pre/post hooks:
// ventilation decay + shedding before the event queue is drained, and
// the per-susceptible airborne infection roll after direct-contact
// transmission. Running decay-then-shed before drain+contacts ensures an infectious
// individual's shedding this step is fully present in the same step's
// airborne roll; running the airborne roll after contacts ensures an
// individual freshly exposed by contact this step is already Exposed
// and is not re-rolled for airborne infection.
func measlesHooks() stepHooks {
	return stepHooks{
		pre:  decayAndShed,
		post: rollAirborneTransmission,
	}
}

func decayAndShed(e *Engine) {
	e.Zones.Decay(e.Params.VentilationRate)
	for _, id := range e.Pop.Ids() {
		if e.Pop.Get(id) == Infectious {
			e.Zones.Shed(e.zoneOf(id), e.Params.SheddingRate)
		}
	}
}

// rollAirborneTransmission iterates every currently-susceptible
// individual in ascending id order (deterministic given the dense
// population representation) and rolls one Bernoulli trial per
// individual whose zone has nonzero load.
func rollAirborneTransmission(e *Engine, t float64) (newExposed []int, infections []InfectionRecord) {
	for _, id := range e.Pop.Ids() {
		if e.Pop.Get(id) != Susceptible {
			continue
		}
		zone := e.zoneOf(id)
		if e.Zones.Load(zone) <= 0 {
			continue
		}
		prob := e.Zones.InfectionProb(zone, e.Params.BetaAir)
		if !e.Stream.Bernoulli(prob) {
			continue
		}
		exposeIndividual(e, id, t)
		newExposed = append(newExposed, id)
		z := zone
		infections = append(infections, InfectionRecord{ID: id, Method: MethodAirborne, Zone: &z})
	}
	return newExposed, infections
}
