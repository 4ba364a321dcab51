package epidemicgo

import "math"

// zoneAirborneReport is the load threshold below which a zone is
// omitted from a Delta's zone_updates, to keep negligible-load zones
// out of the reported diff.
const zoneAirborneReport = 0.1

// ZoneMap is the per-community airborne viral load (C4). Zones are
// created at engine init from the distinct zone ids in the community
// assignment; load starts at 0 and is mutated every step by ventilation
// decay and infectious-resident shedding.
type ZoneMap struct {
	load map[int]float64
}

// NewZoneMap creates a zone map with the given zone ids, all starting at
// load 0.
func NewZoneMap(zoneIds []int) *ZoneMap {
	z := &ZoneMap{load: make(map[int]float64, len(zoneIds))}
	for _, id := range zoneIds {
		z.load[id] = 0
	}
	return z
}

// Load returns the current load of a zone, 0 if the zone is unknown.
func (z *ZoneMap) Load(zoneID int) float64 {
	return z.load[zoneID]
}

// Decay applies load <- load * (1 - rate) to every zone.
func (z *ZoneMap) Decay(rate float64) {
	for id, l := range z.load {
		z.load[id] = l * (1 - rate)
	}
}

// Shed adds amount to a zone's load.
func (z *ZoneMap) Shed(zoneID int, amount float64) {
	z.load[zoneID] += amount
}

// InfectionProb returns the probability that a susceptible individual in
// zoneID is infected by airborne exposure this step: 1 - exp(-betaAir * load).
func (z *ZoneMap) InfectionProb(zoneID int, betaAir float64) float64 {
	load := z.load[zoneID]
	if load <= 0 {
		return 0
	}
	return 1 - math.Exp(-betaAir*load)
}

// Updates returns the zones whose load exceeds threshold, for inclusion
// in a Delta's zone_updates.
func (z *ZoneMap) Updates(threshold float64) map[int]float64 {
	updates := make(map[int]float64)
	for id, l := range z.load {
		if l > threshold {
			updates[id] = l
		}
	}
	return updates
}

// Summary computes an environmental summary: mean load across nonzero
// zones, total load, and count of contaminated zones.
type EnvironmentalSummary struct {
	AvgLoad           float64
	TotalLoad         float64
	ContaminatedZones int
}

func (z *ZoneMap) Summary() EnvironmentalSummary {
	var total float64
	var nonzero int
	for _, l := range z.load {
		total += l
		if l > 0 {
			nonzero++
		}
	}
	var avg float64
	if nonzero > 0 {
		avg = total / float64(nonzero)
	}
	return EnvironmentalSummary{AvgLoad: avg, TotalLoad: total, ContaminatedZones: nonzero}
}

// Ids returns the zone ids known to this map.
func (z *ZoneMap) Ids() []int {
	ids := make([]int, 0, len(z.load))
	for id := range z.load {
		ids = append(ids, id)
	}
	return ids
}
