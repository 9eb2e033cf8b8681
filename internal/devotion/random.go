package devotion

import (
	"math/rand/v2"
)

// Randomizer picks uniformly from [0, n). *rand.Rand satisfies it.
type Randomizer interface {
	IntN(n int) int
}

// NewRandomizer returns a PCG-backed Randomizer. A zero seed draws one from
// the runtime's entropy source.
func NewRandomizer(seed uint64) Randomizer {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pick[T any](r Randomizer, choices []T) T {
	return choices[r.IntN(len(choices))]
}
