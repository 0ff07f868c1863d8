package sound

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// softSat applies gentle tanh-like saturation at the master stage so
// overlapping effects and music never clip harshly.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// rand64 is a tiny deterministic RNG (xorshift64*) used to fill noise
// buffers. Seeded per voice so rendered output is reproducible.
type rand64 struct {
	s uint64
}

func newRand64(seed uint64) *rand64 {
	if seed == 0 {
		seed = 1
	}
	return &rand64{s: seed}
}

func (r *rand64) nextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

// float11 returns a sample uniformly distributed in [-1, 1).
func (r *rand64) float11() float64 {
	return float64(r.nextU64()>>11)*(2.0/(1<<53)) - 1.0
}
