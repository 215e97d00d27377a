package signal

import "math/rand"

// Noise draws uniform values in [-Amplitude, Amplitude] from a generator
// seeded at construction.
//
// Draws are call-indexed, not time-indexed: every ValueAt advances the
// generator by one draw and the time argument is ignored, so the n-th call
// determines the value. Two instances built with the same seed produce
// identical sequences; re-evaluating the same time on one instance does not
// repeat the previous value.
type Noise struct {
	amplitude float64
	rng       *rand.Rand
}

func NewNoise(amplitude float64, seed int64) *Noise {
	return &Noise{
		amplitude: amplitude,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (n *Noise) ValueAt(_ float64) float64 {
	return n.amplitude * (2*n.rng.Float64() - 1)
}
