package percent

import "fmt"

// Lerp linearly interpolates between a and b. It returns a for t = 0 and b
// for t = 1, exactly, and extrapolates for t outside of [0, 1].
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Scalar interpolates linearly between two bounds, min and max.
//
// A Scalar maintains the invariant max > min. Assigning a bound that would
// violate it moves the other bound so that the two are exactly 1 apart; the
// bound that was just assigned is kept as is. No error is reported.
//
// The zero value has min = max = 0 and is not normalized; use [NewScalar].
type Scalar struct {
	min float64
	max float64
}

// NewScalar returns a scalar interpolator from min to max. If max <= min,
// max is set to min+1.
func NewScalar(min, max float64) *Scalar {
	s := &Scalar{min: min, max: max}
	if s.max <= s.min {
		s.max = s.min + 1
	}
	return s
}

func (s Scalar) Min() float64 { return s.min }
func (s Scalar) Max() float64 { return s.max }

// SetMin assigns the lower bound. If the upper bound is no longer greater
// than v, it becomes v+1.
func (s *Scalar) SetMin(v float64) {
	s.min = v
	if s.max <= s.min {
		s.max = s.min + 1
	}
}

// SetMax assigns the upper bound. If the lower bound is no longer less than
// v, it becomes v-1.
func (s *Scalar) SetMax(v float64) {
	s.max = v
	if s.max <= s.min {
		s.min = s.max - 1
	}
}

// Value returns min + p*(max-min).
func (s Scalar) Value(p float64) float64 {
	return Lerp(s.min, s.max, p)
}

func (s Scalar) String() string {
	return fmt.Sprintf("[%g, %g]", s.min, s.max)
}
