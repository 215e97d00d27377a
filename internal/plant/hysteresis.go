package plant

import "fmt"

// Direction records which way the input last left the dead band.
type Direction int

const (
	DirectionUndefined Direction = iota
	DirectionRising
	DirectionFalling
)

func (d Direction) String() string {
	switch d {
	case DirectionRising:
		return "rising"
	case DirectionFalling:
		return "falling"
	default:
		return "undefined"
	}
}

// Hysteresis is a dead-band memory element. The output holds its last
// committed value while the input stays within band/2 of it; when the input
// leaves the band, the output snaps to the input (snap-to-input policy) and
// the direction records whether the exit was upward or downward.
type Hysteresis struct {
	band      float64
	last      float64
	direction Direction
}

// NewHysteresis builds a dead-band element with the given band width and
// initial output. The band width must be non-negative.
func NewHysteresis(bandWidth, initial float64) (*Hysteresis, error) {
	if bandWidth < 0 {
		return nil, fmt.Errorf("%w: band width %g must be non-negative", ErrInvalidParameter, bandWidth)
	}
	return &Hysteresis{band: bandWidth, last: initial}, nil
}

// Output returns the last committed output without stepping.
func (h *Hysteresis) Output() float64 { return h.last }

// Direction returns which way the input last left the band, or
// DirectionUndefined if it never has.
func (h *Hysteresis) Direction() Direction { return h.direction }

// Transfer feeds one input through the dead band and returns the committed
// output. The element is time-independent.
func (h *Hysteresis) Transfer(u float64) float64 {
	half := h.band / 2
	if u > h.last+half {
		h.last = u
		h.direction = DirectionRising
	} else if u < h.last-half {
		h.last = u
		h.direction = DirectionFalling
	}
	return h.last
}

// Step implements Element. dt is ignored.
func (h *Hysteresis) Step(u, _ float64) (float64, error) {
	return h.Transfer(u), nil
}
