package percent

import (
	"testing"
)

func TestScalarValue(t *testing.T) {
	s := NewScalar(0, 10)
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		// extrapolation
		{-0.5, -5},
		{2, 20},
	}
	for _, tt := range tests {
		if got := s.Value(tt.p); got != tt.want {
			t.Errorf("Value(%g) = %g, want %g", tt.p, got, tt.want)
		}
	}
}

func TestNewScalarNormalizes(t *testing.T) {
	s := NewScalar(5, 5)
	if s.Min() != 5 || s.Max() != 6 {
		t.Fatalf("got %v, want [5, 6]", s)
	}
	if v := s.Value(0); v != 5 {
		t.Errorf("Value(0) = %g, want 5", v)
	}
	if v := s.Value(1); v != 6 {
		t.Errorf("Value(1) = %g, want 6", v)
	}

	s = NewScalar(3, -2)
	if s.Min() != 3 || s.Max() != 4 {
		t.Errorf("got %v, want [3, 4]", s)
	}
}

func TestScalarSetters(t *testing.T) {
	s := NewScalar(0, 10)

	s.SetMin(2)
	diff(t, [2]float64{2, 10}, [2]float64{s.Min(), s.Max()})

	// Assigning min past max moves max.
	s.SetMin(20)
	diff(t, [2]float64{20, 21}, [2]float64{s.Min(), s.Max()})

	// Assigning max below min moves min.
	s.SetMax(-4)
	diff(t, [2]float64{-5, -4}, [2]float64{s.Min(), s.Max()})

	// Equal bounds are invalid too.
	s.SetMax(-5)
	diff(t, [2]float64{-6, -5}, [2]float64{s.Min(), s.Max()})

	s.SetMax(100)
	diff(t, [2]float64{-6, 100}, [2]float64{s.Min(), s.Max()})
}

func TestScalarIdempotent(t *testing.T) {
	s := NewScalar(-3.7, 12.25)
	for _, p := range []float64{0, 0.1, 0.333, 0.5, 0.9, 1} {
		if a, b := s.Value(p), s.Value(p); a != b {
			t.Errorf("Value(%g) returned %g then %g", p, a, b)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0.1, 0.3, 1); got != 0.3 {
		t.Errorf("Lerp(0.1, 0.3, 1) = %g, want exactly 0.3", got)
	}
	if got := Lerp(0.1, 0.3, 0); got != 0.1 {
		t.Errorf("Lerp(0.1, 0.3, 0) = %g, want exactly 0.1", got)
	}
	// Decreasing ranges are not normalized.
	if got := Lerp(1, 0, 0.25); got != 0.75 {
		t.Errorf("Lerp(1, 0, 0.25) = %g, want 0.75", got)
	}
}
