package breakout

import "math/rand/v2"

// Rand is the randomness the simulation draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed source. Equal seeds replay equal games.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func coinSign(r Rand) float64 {
	if r.IntN(2) == 0 {
		return 1
	}
	return -1
}

// bounceFactor is uniform in [PaddleMinFactor, PaddleMinFactor+PaddleFactorSpread).
func bounceFactor(r Rand) float64 {
	return PaddleMinFactor + r.Float64()*PaddleFactorSpread
}
