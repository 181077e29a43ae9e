// Package rng provides the deterministic PRNG the engine embeds in game
// state. Every consumption advances a counter, so a generator rebuilt from
// {seed, counter} continues the exact sequence.
package rng

// State is the serializable generator state.
type State struct {
	Seed    int64  `json:"seed"`
	Counter uint64 `json:"counter"`
}

// RNG is a counter-based splitmix64 generator. math/rand is unsuitable
// here because its internal position cannot be exported for replay.
type RNG struct {
	seed    int64
	counter uint64
}

// New creates a generator from a seed with the counter at zero.
func New(seed int64) *RNG {
	return &RNG{seed: seed}
}

// FromState rebuilds a generator mid-sequence.
func FromState(s State) *RNG {
	return &RNG{seed: s.Seed, counter: s.Counter}
}

// State exports the current position.
func (r *RNG) State() State {
	return State{Seed: r.seed, Counter: r.counter}
}

// next64 produces the next raw 64-bit value (splitmix64 over seed+counter).
func (r *RNG) next64() uint64 {
	r.counter++
	z := uint64(r.seed) + r.counter*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// NextInt returns a uniform value in [0, n). Panics if n <= 0.
func (r *RNG) NextInt(n int) int {
	if n <= 0 {
		panic("rng: NextInt called with n <= 0")
	}
	// Rejection sampling keeps the distribution uniform; each attempt
	// advances the counter, which stays deterministic.
	bound := uint64(n)
	limit := (^uint64(0) / bound) * bound
	for {
		v := r.next64()
		if v < limit {
			return int(v % bound)
		}
	}
}

// Shuffle permutes the slice in place with Fisher-Yates.
func (r *RNG) Shuffle(seq []int) {
	for i := len(seq) - 1; i > 0; i-- {
		j := r.NextInt(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
}
