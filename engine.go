package epidemicgo

// Engine bundles the four pieces of mutable state a run owns exclusively
// for its duration: the RNG stream, the event queue, the population, and
// (for the airborne model) the zone map and community assignment. Both
// steppers operate on an *Engine rather than threading these four
// collections through free functions.
type Engine struct {
	Params Parameters

	Stream *Stream
	Queue  *EventQueue
	Pop    *Population

	// Zones and Community are nil/empty for a pure SEIR engine; the
	// airborne stepper requires both.
	Zones     *ZoneMap
	Community map[int]int // individual id -> zone id
}

// NewEngine constructs an engine over the given population size. For the
// airborne model, community must map every individual id to a zone id;
// pass a nil map for the SEIR model.
func NewEngine(params Parameters, populationSize int, community map[int]int) *Engine {
	e := &Engine{
		Params:    params,
		Stream:    NewStream(params.Seed),
		Queue:     NewEventQueue(),
		Pop:       NewPopulation(populationSize),
		Community: community,
	}
	if params.Model == ModelAirborne {
		zoneSet := make(map[int]bool)
		for _, zoneID := range community {
			zoneSet[zoneID] = true
		}
		zoneIds := make([]int, 0, len(zoneSet))
		for id := range zoneSet {
			zoneIds = append(zoneIds, id)
		}
		e.Zones = NewZoneMap(zoneIds)
	}
	return e
}

// zoneOf returns the zone id of an individual, defaulting to 0 when the
// community assignment omits it (mirrors
// original_source/backend/measles_model.py's communities.get(node, 0)).
func (e *Engine) zoneOf(id int) int {
	if e.Community == nil {
		return 0
	}
	return e.Community[id]
}
