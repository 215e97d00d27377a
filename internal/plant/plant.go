// Package plant provides simple stateful dynamical elements for feeding
// signal values through simplified plant behavior.
//
// An Element carries internal state across calls, unlike a signal. Elements
// are exclusively owned by one caller and are not safe for concurrent use.
// NaN and Inf inputs are not trapped; IEEE floating-point semantics
// propagate through every element.
package plant

// Element transforms an input value over an elapsed time step dt and
// returns the new output. Elements whose behavior does not depend on time
// (Hysteresis, PT0) document how they treat dt.
type Element interface {
	Step(u, dt float64) (float64, error)
}

// Chain applies elements in order, feeding each output into the next.
// It composes elements only; it keeps no clock and records no trace.
type Chain struct {
	elements []Element
}

func NewChain(elements ...Element) *Chain {
	return &Chain{elements: elements}
}

func (c *Chain) Len() int { return len(c.elements) }

func (c *Chain) Step(u, dt float64) (float64, error) {
	y := u
	var err error
	for _, e := range c.elements {
		y, err = e.Step(y, dt)
		if err != nil {
			return 0, err
		}
	}
	return y, nil
}
