package plant

import "fmt"

// PT1 is a first-order lag element: tau*dy/dt + y = gain*u, discretized
// with one explicit (forward) Euler update per Step:
//
//	y += dt/tau * (gain*u - y)
//
// Explicit Euler keeps Step an O(1) state update. If dt is large relative
// to tau the discrete response diverges from the continuous one; choosing
// a small enough dt is the caller's responsibility.
type PT1 struct {
	tau  float64
	gain float64
	y    float64
}

// NewPT1 builds a first-order lag with the given time constant and gain.
// The time constant must be positive. Initial output is 0; see Reset.
func NewPT1(timeConstant, gain float64) (*PT1, error) {
	if timeConstant <= 0 {
		return nil, fmt.Errorf("%w: time constant %g must be positive", ErrInvalidParameter, timeConstant)
	}
	return &PT1{tau: timeConstant, gain: gain}, nil
}

// Reset sets the current output to y0 without stepping.
func (p *PT1) Reset(y0 float64) { p.y = y0 }

// Output returns the current output without stepping.
func (p *PT1) Output() float64 { return p.y }

// Step advances the element by dt with input u and returns the new output.
// A zero or negative dt returns ErrInvalidTimeStep and leaves the output
// unchanged.
func (p *PT1) Step(u, dt float64) (float64, error) {
	if dt <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrInvalidTimeStep, dt)
	}
	p.y += dt / p.tau * (p.gain*u - p.y)
	return p.y, nil
}
