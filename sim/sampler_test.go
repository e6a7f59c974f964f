package sim

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestIntervalSampler_NonNegative_MeanMatchesRate(t *testing.T) {
	// GIVEN a sampler with a fixed seed and rate 0.1 events/sec
	s := NewIntervalSampler(42)
	rate := 0.1

	// WHEN 100000 intervals are drawn
	n := 100000
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = s.Sample(rate)
		if samples[i] < 0 {
			t.Fatalf("sample %d = %v, want non-negative", i, samples[i])
		}
	}

	// THEN the empirical mean converges to 1/rate (within 2%)
	mean := stat.Mean(samples, nil)
	want := 1.0 / rate
	if math.Abs(mean-want)/want > 0.02 {
		t.Errorf("mean interval = %.3f s, want ~ %.3f s (within 2%%)", mean, want)
	}

	// AND the empirical variance converges to 1/rate^2 (within 5%)
	variance := stat.Variance(samples, nil)
	wantVar := want * want
	if math.Abs(variance-wantVar)/wantVar > 0.05 {
		t.Errorf("variance = %.1f, want ~ %.1f (within 5%%)", variance, wantVar)
	}
}

func TestIntervalSampler_SameSeed_SameDraws(t *testing.T) {
	// GIVEN two samplers with the same seed
	a := NewIntervalSampler(7)
	b := NewIntervalSampler(7)

	// THEN their draw sequences are bit-identical
	for i := 0; i < 1000; i++ {
		x, y := a.Sample(1.5), b.Sample(1.5)
		if x != y {
			t.Fatalf("draw %d diverged: %v vs %v", i, x, y)
		}
	}
}

func TestIntervalSampler_Reseed_RestartsSequence(t *testing.T) {
	// GIVEN a sampler that already consumed part of its sequence
	s := NewIntervalSampler(13)
	first := s.Sample(1.0)
	for i := 0; i < 100; i++ {
		s.Sample(1.0)
	}

	// WHEN it is reseeded with its original seed
	s.Reseed(13)

	// THEN the sequence restarts from the first draw
	if got := s.Sample(1.0); got != first {
		t.Errorf("after Reseed first draw = %v, want %v", got, first)
	}
}

func TestIntervalSampler_NonPositiveRate_Panics(t *testing.T) {
	s := NewIntervalSampler(1)
	for _, rate := range []float64{0, -1.0} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Sample(%v) did not panic", rate)
				}
			}()
			s.Sample(rate)
		}()
	}
}
