package plant

import "fmt"

// PT0 is a dead-time element: the output is the input from delay steps ago,
// scaled by gain. A delay of 0 is a pure gain. The element is sample-based
// and time-independent; dt is ignored by Step.
type PT0 struct {
	gain float64
	buf  []float64
	head int
}

// NewPT0 builds a dead-time element delaying the input by delay samples.
// The delay must be non-negative.
func NewPT0(gain float64, delay int) (*PT0, error) {
	if delay < 0 {
		return nil, fmt.Errorf("%w: delay %d must be non-negative", ErrInvalidParameter, delay)
	}
	return &PT0{gain: gain, buf: make([]float64, delay)}, nil
}

// Step implements Element. dt is ignored.
func (p *PT0) Step(u, _ float64) (float64, error) {
	if len(p.buf) == 0 {
		return p.gain * u, nil
	}
	out := p.buf[p.head]
	p.buf[p.head] = p.gain * u
	p.head = (p.head + 1) % len(p.buf)
	return out, nil
}
