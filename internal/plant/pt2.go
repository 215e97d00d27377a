package plant

import (
	"fmt"
	"math"
)

// PT2 is a second-order lag element discretized with forward Euler on the
// two-state form
//
//	v += dt * (-2*d*w*v - w²*y + gain*w²*u)
//	y += dt * w * v
//
// where w² = 1/(t1*t2) and d = (t1+t2)/(2*t1*t2). Like PT1, accuracy for
// large dt relative to the time constants is the caller's responsibility.
type PT2 struct {
	t1   float64
	t2   float64
	gain float64
	y    float64
	v    float64
}

// NewPT2 builds a second-order lag. Both time constants must be positive.
func NewPT2(t1, t2, gain float64) (*PT2, error) {
	if t1 <= 0 || t2 <= 0 {
		return nil, fmt.Errorf("%w: time constants %g, %g must be positive", ErrInvalidParameter, t1, t2)
	}
	return &PT2{t1: t1, t2: t2, gain: gain}, nil
}

// Output returns the current output without stepping.
func (p *PT2) Output() float64 { return p.y }

// Step advances the element by dt with input u and returns the new output.
// A zero or negative dt returns ErrInvalidTimeStep and leaves both state
// variables unchanged.
func (p *PT2) Step(u, dt float64) (float64, error) {
	if dt <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidTimeStep, dt)
	}
	w2 := 1 / (p.t1 * p.t2)
	w := math.Sqrt(w2)
	d := (p.t1 + p.t2) / (2 * p.t1 * p.t2)

	v := p.v + dt*(-2*d*w*p.v-w2*p.y+p.gain*w2*u)
	y := p.y + dt*w*p.v
	p.v = v
	p.y = y
	return y, nil
}
