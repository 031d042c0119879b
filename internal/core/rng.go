package core

// Random is the source of randomness consumed by the simulation.
// Implementations must be deterministic for a given seed so runs can be replayed.
type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// RNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG (Linear Congruential Generator).
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
// Only the high 53 bits are used; the low bits of an LCG are weak.
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Uniform returns a value drawn from [lo, hi) using src.
func Uniform(src Random, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// State returns the internal state, for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}
