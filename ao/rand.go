package ao

// Scramble is a 32-bit integer hash with full avalanche.
func Scramble(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

// Seed derives the random seed for the worker that renders the rows
// starting at y0.
func Seed(worker, y0 uint32) uint32 {
	return Scramble(1 + worker + (y0 << (worker & 15)))
}

// Rng is a counter based generator. It is not safe for concurrent use; each
// worker must own its own instance.
type Rng struct {
	state uint32
}

func NewRng(seed uint32) *Rng {
	return &Rng{state: seed}
}

// Float32 advances the generator and returns a value in [0, 1).
func (r *Rng) Float32() float32 {
	r.state++
	return float32(Scramble(r.state)>>8) * (1.0 / (1 << 24))
}
