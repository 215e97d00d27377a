package signal

import "fmt"

// TimeRange is a uniform sampling grid [Start, End] with spacing Dt.
type TimeRange struct {
	Start float64
	End   float64
	Dt    float64
}

// NewTimeRange validates the grid parameters. End must be greater than
// Start and Dt must be positive and no larger than the span.
func NewTimeRange(start, end, dt float64) (TimeRange, error) {
	if end <= start {
		return TimeRange{}, fmt.Errorf("time range end must be greater than start, got [%g, %g]", start, end)
	}
	if dt <= 0 {
		return TimeRange{}, fmt.Errorf("sampling interval must be positive, got %g", dt)
	}
	if dt > end-start {
		return TimeRange{}, fmt.Errorf("sampling interval %g larger than range span %g", dt, end-start)
	}
	return TimeRange{Start: start, End: end, Dt: dt}, nil
}

// gridEpsilon guards the sample count against quotients that land just
// below an integer (0.3/0.1 is 2.999... in float64).
const gridEpsilon = 1e-9

// Len is the number of sample points, including both endpoints when the
// span is a multiple of Dt.
func (r TimeRange) Len() int {
	return int((r.End-r.Start)/r.Dt+gridEpsilon) + 1
}

// Times materializes the grid.
func (r TimeRange) Times() []float64 {
	n := r.Len()
	ts := make([]float64, n)
	for i := 0; i < n; i++ {
		ts[i] = r.Start + float64(i)*r.Dt
	}
	return ts
}

// Sample evaluates sig at every grid point.
func (r TimeRange) Sample(sig Signal) []float64 {
	n := r.Len()
	vs := make([]float64, n)
	for i := 0; i < n; i++ {
		vs[i] = sig.ValueAt(r.Start + float64(i)*r.Dt)
	}
	return vs
}
