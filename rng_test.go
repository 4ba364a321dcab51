package epidemicgo

import "testing"

func TestStream_Bernoulli_Deterministic(t *testing.T) {
	a := NewStream(42)
	b := NewStream(42)
	for i := 0; i < 50; i++ {
		ra := a.Bernoulli(0.5)
		rb := b.Bernoulli(0.5)
		if ra != rb {
			t.Fatalf(UnequalStringParameterError, "bernoulli trial", "same stream of trials", "diverging streams")
		}
	}
}

func TestStream_Bernoulli_Bounds(t *testing.T) {
	s := NewStream(1)
	for i := 0; i < 1000; i++ {
		if s.Bernoulli(0) {
			t.Errorf(UnequalStringParameterError, "bernoulli(0)", "always false", "true")
		}
	}
	s = NewStream(2)
	for i := 0; i < 1000; i++ {
		if !s.Bernoulli(1) {
			t.Errorf(UnequalStringParameterError, "bernoulli(1)", "always true", "false")
		}
	}
}

func TestStream_TruncatedNormal_Floor(t *testing.T) {
	s := NewStream(3)
	for i := 0; i < 1000; i++ {
		days := s.TruncatedNormal(0, 1, 1) / secondsPerDay
		if days < 1 {
			t.Errorf(InvalidFloatParameterError, "sampled duration", days, "must be >= floor of 1 day")
		}
	}
}

func TestStream_TruncatedNormal_ConvertsToSeconds(t *testing.T) {
	s := NewStream(4)
	secs := s.TruncatedNormal(7, 0, 1)
	if secs != 7*secondsPerDay {
		t.Errorf(UnequalFloatParameterError, "sampled seconds", float64(7*secondsPerDay), secs)
	}
}

func TestStream_SampleWithoutReplacement_Distinct(t *testing.T) {
	s := NewStream(5)
	pop := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	picked := s.SampleWithoutReplacement(pop, 4)
	if len(picked) != 4 {
		t.Fatalf(UnequalIntParameterError, "sample size", 4, len(picked))
	}
	seen := make(map[int]bool)
	for _, id := range picked {
		if seen[id] {
			t.Errorf(IntKeyExists, id)
		}
		seen[id] = true
	}
}

func TestStream_SampleWithoutReplacement_ClampsToPopulation(t *testing.T) {
	s := NewStream(6)
	pop := []int{0, 1, 2}
	picked := s.SampleWithoutReplacement(pop, 10)
	if len(picked) != 3 {
		t.Errorf(UnequalIntParameterError, "sample size", 3, len(picked))
	}
}
