package sim

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// SeedSource produces seeds for the interval sampler. The simulator pulls
// one seed at construction and, when per-block reseeding is enabled, one
// more before every block-discovery event.
type SeedSource interface {
	Next() (int64, error)
}

// EntropySource draws seeds from the operating system's entropy pool.
// Unavailability of the pool is the one unrecoverable resource error the
// simulation has; callers treat it as fatal.
type EntropySource struct{}

func (EntropySource) Next() (int64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("reading OS entropy source: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

// DerivedSeeds expands one master seed into a deterministic seed stream.
// Two executions with the same master seed consume identical seed
// sequences and therefore produce bit-identical histograms.
type DerivedSeeds struct {
	rng *rand.Rand
}

func NewDerivedSeeds(master int64) *DerivedSeeds {
	return &DerivedSeeds{rng: rand.New(rand.NewSource(master))}
}

func (d *DerivedSeeds) Next() (int64, error) {
	return d.rng.Int63(), nil
}

// FixedSeeds replays an explicit seed sequence and errors when it runs
// out. Only tests use it.
type FixedSeeds struct {
	seeds []int64
	next  int
}

func NewFixedSeeds(seeds ...int64) *FixedSeeds {
	return &FixedSeeds{seeds: seeds}
}

func (f *FixedSeeds) Next() (int64, error) {
	if f.next >= len(f.seeds) {
		return 0, fmt.Errorf("fixed seed sequence exhausted after %d seeds", len(f.seeds))
	}
	s := f.seeds[f.next]
	f.next++
	return s, nil
}
