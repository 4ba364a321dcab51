package epidemicgo

import "testing"

func TestZoneMap_DecayAndShed(t *testing.T) {
	z := NewZoneMap([]int{0, 1})
	z.Shed(0, 1.0)
	z.Decay(0.5)
	if got := z.Load(0); got != 0.5 {
		t.Errorf(UnequalFloatParameterError, "zone 0 load", 0.5, got)
	}
	if got := z.Load(1); got != 0 {
		t.Errorf(UnequalFloatParameterError, "zone 1 load", 0.0, got)
	}
}

func TestZoneMap_InfectionProb_ZeroLoad(t *testing.T) {
	z := NewZoneMap([]int{0})
	if got := z.InfectionProb(0, 0.1); got != 0 {
		t.Errorf(UnequalFloatParameterError, "infection probability at zero load", 0.0, got)
	}
}

func TestZoneMap_InfectionProb_Monotonic(t *testing.T) {
	z := NewZoneMap([]int{0})
	z.Shed(0, 1.0)
	low := z.InfectionProb(0, 0.1)
	z.Shed(0, 1.0)
	high := z.InfectionProb(0, 0.1)
	if !(high > low) {
		t.Errorf(InvalidFloatParameterError, "infection probability", high, "must increase with zone load")
	}
}

func TestZoneMap_Updates_FiltersByThreshold(t *testing.T) {
	z := NewZoneMap([]int{0, 1, 2})
	z.Shed(0, 0.05)
	z.Shed(1, 0.5)
	updates := z.Updates(0.1)
	if len(updates) != 1 {
		t.Fatalf(UnequalIntParameterError, "zones above threshold", 1, len(updates))
	}
	if _, ok := updates[1]; !ok {
		t.Errorf(IntKeyNotFoundError, 1)
	}
}

func TestZoneMap_Summary(t *testing.T) {
	z := NewZoneMap([]int{0, 1})
	z.Shed(0, 2.0)
	z.Shed(1, 4.0)
	summary := z.Summary()
	if summary.TotalLoad != 6.0 {
		t.Errorf(UnequalFloatParameterError, "total load", 6.0, summary.TotalLoad)
	}
	if summary.AvgLoad != 3.0 {
		t.Errorf(UnequalFloatParameterError, "average load", 3.0, summary.AvgLoad)
	}
	if summary.ContaminatedZones != 2 {
		t.Errorf(UnequalIntParameterError, "contaminated zones", 2, summary.ContaminatedZones)
	}
}
