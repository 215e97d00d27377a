package signal

// epsilonWidth stands in for an idealized zero-width impulse so that
// evaluation never depends on an exact floating-point time match.
const epsilonWidth = 1e-9

// Impulse is Amplitude for at <= t <= at+width (inclusive on both ends)
// and Rest everywhere else. A non-positive Width is evaluated as a small
// epsilon window around At rather than an exact-equality test.
type Impulse struct {
	Rest      float64
	Amplitude float64
	At        float64
	Width     float64
}

// NewImpulse returns an impulse of the given amplitude and width starting
// at time at, resting at 0.
func NewImpulse(amplitude, at, width float64) *Impulse {
	return &Impulse{Amplitude: amplitude, At: at, Width: width}
}

func (i *Impulse) ValueAt(t float64) float64 {
	w := i.Width
	if w <= 0 {
		w = epsilonWidth
	}
	if t >= i.At && t <= i.At+w {
		return i.Amplitude
	}
	return i.Rest
}
