package core

// RNG is a seeded 32-bit generator (the mulberry32 mixer). Two RNGs built
// from the same seed produce the same sequence for the same call order.
type RNG struct {
	state uint32
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Uint32 advances the generator and returns the next mixed value.
func (r *RNG) Uint32() uint32 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Uint32()) / 4294967296
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.Float64() < 0.5
}

// Uint64 joins two draws so the RNG can back a math/rand/v2 Rand.
func (r *RNG) Uint64() uint64 {
	hi := uint64(r.Uint32())
	return hi<<32 | uint64(r.Uint32())
}
