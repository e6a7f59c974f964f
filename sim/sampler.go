package sim

import (
	"fmt"
	"math"
	"math/rand"
)

// IntervalSampler draws waiting times for Poisson processes. Both
// transaction arrivals and block discoveries are modeled as event streams
// with exponentially distributed gaps, so a single sampler serves both,
// interleaving its draws the way the simulation loop requests them.
type IntervalSampler struct {
	rng *rand.Rand
}

// NewIntervalSampler returns a sampler seeded with the given value.
func NewIntervalSampler(seed int64) *IntervalSampler {
	return &IntervalSampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns one exponentially distributed interval in seconds for
// the given event rate (events per second), via the inverse CDF
// -ln(1-u)/rate with u uniform in [0,1). rate must be positive.
func (s *IntervalSampler) Sample(rate float64) float64 {
	if rate <= 0 {
		panic(fmt.Sprintf("IntervalSampler.Sample: rate must be positive, got %v", rate))
	}
	u := s.rng.Float64()
	return -math.Log(1.0-u) / rate
}

// Reseed re-sources the underlying generator. Used when the per-block
// reseed cadence is enabled; otherwise the batch seed set at construction
// is the only one the sampler ever sees.
func (s *IntervalSampler) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}
