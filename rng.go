package epidemicgo

import "math/rand"

// Stream is the single seeded source of randomness backing every
// stochastic choice made during a run: transmission and mortality
// trials, incubation/recovery duration sampling, and patient-zero
// selection. Fixing the seed, the parameters, and the contact stream
// reproduces an identical delta sequence bit-for-bit, since nothing in
// the engine consults any other source of randomness.
type Stream struct {
	r *rand.Rand
}

// NewStream creates a Stream seeded with the given value.
func NewStream(seed int64) *Stream {
	return &Stream{r: rand.New(rand.NewSource(seed))}
}

// Uniform01 draws a float64 in [0, 1).
func (s *Stream) Uniform01() float64 {
	return s.r.Float64()
}

// Bernoulli reports whether a trial with success probability p succeeds,
// using a strict u < p comparison so p == 0 never succeeds.
func (s *Stream) Bernoulli(p float64) bool {
	return s.r.Float64() < p
}

// TruncatedNormal draws days from a normal distribution with the given
// mean and standard deviation, floored at lower, and returns the value
// in seconds (days * 86400). This matches
// original_source/backend/sir_model.py's sample_recovery_duration and
// measles_model.py's sample_incubation_duration: sample in days, clamp
// to a lower bound, convert to seconds.
func (s *Stream) TruncatedNormal(meanDays, sdDays, lowerDays float64) float64 {
	days := s.r.NormFloat64()*sdDays + meanDays
	if days < lowerDays {
		days = lowerDays
	}
	return days * secondsPerDay
}

const secondsPerDay = 86400

// SampleWithoutReplacement picks k distinct ids from population without
// replacement, using a Fisher-Yates partial shuffle so that repeated
// calls on the same Stream continue to consume the stream deterministically.
func (s *Stream) SampleWithoutReplacement(population []int, k int) []int {
	pool := make([]int, len(population))
	copy(pool, population)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + s.r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return append([]int(nil), pool[:k]...)
}
