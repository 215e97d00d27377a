package signal

import "testing"

func TestStep(t *testing.T) {
	tests := []struct {
		name     string
		sig      *Step
		time     float64
		expected float64
	}{
		{"before onset", NewStep(2.0, 1.0), 0.5, 0.0},
		{"at onset", NewStep(2.0, 1.0), 1.0, 2.0},
		{"after onset", NewStep(2.0, 1.0), 5.0, 2.0},
		{"negative time", NewStep(1.0, 0.0), -3.0, 0.0},
		{"pre value", &Step{Pre: -1.0, Post: 1.0, At: 0.0}, -0.1, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sig.ValueAt(tt.time); got != tt.expected {
				t.Errorf("ValueAt(%v) = %v, want %v", tt.time, got, tt.expected)
			}
		})
	}
}

func TestStep_Deterministic(t *testing.T) {
	s := NewStep(2.0, 1.0)
	for i := 0; i < 3; i++ {
		if got := s.ValueAt(1.5); got != 2.0 {
			t.Fatalf("call %d: ValueAt(1.5) = %v, want 2.0", i, got)
		}
	}
}

func TestImpulse(t *testing.T) {
	tests := []struct {
		name     string
		sig      *Impulse
		time     float64
		expected float64
	}{
		{"before", NewImpulse(3.0, 1.0, 2.0), 0.5, 0.0},
		{"at start", NewImpulse(3.0, 1.0, 2.0), 1.0, 3.0},
		{"inside", NewImpulse(3.0, 1.0, 2.0), 2.0, 3.0},
		{"at end", NewImpulse(3.0, 1.0, 2.0), 3.0, 3.0},
		{"after", NewImpulse(3.0, 1.0, 2.0), 3.1, 0.0},
		{"rest level", &Impulse{Rest: 2.0, Amplitude: 3.0, At: 1.0, Width: 1.0}, 0.0, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sig.ValueAt(tt.time); got != tt.expected {
				t.Errorf("ValueAt(%v) = %v, want %v", tt.time, got, tt.expected)
			}
		})
	}
}

func TestImpulse_ZeroWidth(t *testing.T) {
	// A non-positive width degrades to an epsilon window around At.
	i := NewImpulse(1.0, 2.0, 0.0)

	if got := i.ValueAt(2.0); got != 1.0 {
		t.Errorf("ValueAt(At) = %v, want 1.0", got)
	}
	if got := i.ValueAt(2.1); got != 0.0 {
		t.Errorf("ValueAt outside window = %v, want 0.0", got)
	}
	if got := i.ValueAt(1.9999); got != 0.0 {
		t.Errorf("ValueAt before window = %v, want 0.0", got)
	}
}

func TestSuperposition_Empty(t *testing.T) {
	s := NewSuperposition()
	for _, tm := range []float64{-1.0, 0.0, 42.0} {
		if got := s.ValueAt(tm); got != 0.0 {
			t.Errorf("empty superposition ValueAt(%v) = %v, want 0", tm, got)
		}
	}
}

func TestSuperposition_Sum(t *testing.T) {
	s := NewSuperposition(NewStep(1.0, 0.0), NewStep(1.0, 0.0))
	if got := s.ValueAt(5.0); got != 2.0 {
		t.Errorf("ValueAt(5) = %v, want 2.0", got)
	}
	if got := s.ValueAt(-1.0); got != 0.0 {
		t.Errorf("ValueAt(-1) = %v, want 0.0", got)
	}
}

func TestSuperposition_Mixed(t *testing.T) {
	s := NewSuperposition(
		NewStep(1.0, 0.0),
		NewImpulse(2.0, 1.0, 1.0),
	).Add(&Step{Pre: 0, Post: -0.5, At: 3.0})

	if s.Len() != 3 {
		t.Fatalf("expected 3 children, got %d", s.Len())
	}

	tests := []struct {
		time     float64
		expected float64
	}{
		{-1.0, 0.0},
		{0.0, 1.0},
		{1.5, 3.0},
		{4.0, 0.5},
	}
	for _, tt := range tests {
		if got := s.ValueAt(tt.time); got != tt.expected {
			t.Errorf("ValueAt(%v) = %v, want %v", tt.time, got, tt.expected)
		}
	}
}

func TestSuperposition_Nested(t *testing.T) {
	inner := NewSuperposition(NewStep(1.0, 0.0), NewStep(2.0, 0.0))
	outer := NewSuperposition(inner, NewStep(3.0, 0.0))
	if got := outer.ValueAt(1.0); got != 6.0 {
		t.Errorf("nested ValueAt(1) = %v, want 6.0", got)
	}
}
