package signal

// Step holds Pre before the onset time and Post at and after it.
type Step struct {
	Pre  float64
	Post float64
	At   float64
}

// NewStep returns a step from 0 to amplitude at time at.
func NewStep(amplitude, at float64) *Step {
	return &Step{Post: amplitude, At: at}
}

func (s *Step) ValueAt(t float64) float64 {
	if t >= s.At {
		return s.Post
	}
	return s.Pre
}
