package core

// RandomSource is a seedable uniform random provider.
// Implementations are not safe for concurrent use; give each goroutine its own.
type RandomSource interface {
	// Float returns a value in [0, 1).
	Float() float64
	// FloatRange returns a value in [min, max). Returns min when min == max.
	FloatRange(min, max float64) float64
	// IntRange returns a value in [min, max], both ends inclusive.
	IntRange(min, max int) int
	// Chance returns true with probability p. p <= 0 never fires, p >= 1 always does.
	Chance(p float64) bool
}

// RNG is a deterministic pseudo-random number generator (xorshift64).
type RNG struct {
	state uint64
	draws uint64
}

// defaultSeed replaces a zero seed, which would lock xorshift at zero.
const defaultSeed = 88172645463325252

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{state: seed}
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.draws++
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Draws returns how many values have been drawn since creation.
func (r *RNG) Draws() uint64 {
	return r.draws
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// FloatRange returns a random float64 in [min, max).
func (r *RNG) FloatRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.Float()*(max-min)
}

// IntRange returns a random int in [min, max].
// Draws below 2^64 mod n are redrawn so every value is equally likely.
func (r *RNG) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	n := uint64(max) - uint64(min) + 1
	if n == 0 {
		return int(r.Next())
	}
	threshold := -n % n
	for {
		if v := r.Next(); v >= threshold {
			return min + int(v%n)
		}
	}
}

// Chance returns true with probability p.
// A value is always drawn so the stream position does not depend on p.
func (r *RNG) Chance(p float64) bool {
	return r.Float() < p
}

// RandomPointInBox returns a uniformly distributed point inside b.
// Draws are taken in x, y, z order.
func RandomPointInBox(rng RandomSource, b Box) Vec3 {
	x := rng.Float() - 0.5
	y := rng.Float() - 0.5
	z := rng.Float() - 0.5
	return b.Center.Add(V(x, y, z).Mul(b.Size))
}
