package percent

import "iter"

// Interpolator is implemented by values that can be sampled at a percent p.
// By convention p runs from 0 (start) to 1 (end), but no implementation in
// this package restricts it; values outside of [0, 1] extrapolate.
//
// The type parameter is the type of the sampled value: float64 for
// [Scalar], [Point] for curves, and a color for [ColorInterpolator].
type Interpolator[T any] interface {
	Value(p float64) T
}

// Orienter is implemented by curves that can report their direction of
// travel.
type Orienter interface {
	// Orientation returns the first derivative of the curve at p. The vector
	// is not normalized; its magnitude is the speed at p.
	Orientation(p float64) Vec2
}

// Curve is a path through 2D space with distinct start and end points.
type Curve interface {
	Interpolator[Point]
	Start() Point
	End() Point
}

var (
	_ Interpolator[float64] = (*Scalar)(nil)
	_ Curve                 = Line{}
	_ Curve                 = QuadBez{}
	_ Curve                 = CubicBez{}
	_ Curve                 = Segment{}
	_ Orienter              = QuadBez{}
	_ Orienter              = CubicBez{}
)

// Samples returns an iterator over n+1 evenly spaced samples of ip, from
// p = 0 to p = 1 inclusive. The final sample is taken at exactly p = 1. For
// n <= 0, only the sample at p = 0 is produced.
func Samples[T any](ip Interpolator[T], n int) iter.Seq2[float64, T] {
	return func(yield func(float64, T) bool) {
		if n <= 0 {
			yield(0, ip.Value(0))
			return
		}
		// Counting up to n inclusive without computing n+1 keeps
		// n = math.MaxInt from overflowing.
		for i := 0; ; i++ {
			p := float64(i) / float64(n)
			if i == n {
				p = 1
			}
			if !yield(p, ip.Value(p)) || i == n {
				return
			}
		}
	}
}
