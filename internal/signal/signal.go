// Package signal provides time-domain input waveforms for driving
// control-system simulations.
//
// A Signal is a pure function of time: calling ValueAt twice with the same
// time yields the same value. Noise is the documented exception, see [Noise].
// Signals never fail at evaluation; invalid parameters are rejected at
// construction instead.
package signal

// Signal evaluates a waveform at an arbitrary time, typically in seconds.
type Signal interface {
	ValueAt(t float64) float64
}

// Superposition sums an ordered list of child signals.
// An empty superposition evaluates to 0 everywhere.
type Superposition struct {
	children []Signal
}

func NewSuperposition(children ...Signal) *Superposition {
	return &Superposition{children: children}
}

// Add appends further children. The receiver is returned for chaining.
func (s *Superposition) Add(children ...Signal) *Superposition {
	s.children = append(s.children, children...)
	return s
}

func (s *Superposition) Len() int { return len(s.children) }

func (s *Superposition) ValueAt(t float64) float64 {
	sum := 0.0
	for _, c := range s.children {
		sum += c.ValueAt(t)
	}
	return sum
}
