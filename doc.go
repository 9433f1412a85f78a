// Package percent provides interpolators that map a percent p, the progress
// of an animation, to a value. It is meant to be sampled by an animation
// driver at increasing values of p; the package itself has no notion of time.
//
// By convention p runs from 0 to 1, where 0 produces the start value and 1
// the end value. Values outside of that range are not rejected; they
// extrapolate, and it is up to the driver to clamp p if that is undesired.
//
// # Interpolators
//
// [Interpolator] is the common interface, parametrized by the type of the
// produced value. This package provides:
//
//   - [Scalar], which interpolates between two numbers
//   - [Line], a straight path between two points
//   - [QuadBez], a quadratic Bézier curve with one control point
//   - [CubicBez], a cubic Bézier curve with two control points
//   - [ColorInterpolator], which blends two colors channel by channel
//
// [Samples] turns any interpolator into an iterator over evenly spaced
// samples.
//
// # Curves and orientation
//
// The Bézier curves also implement [Orienter]. The orientation at p is the
// curve's first derivative, its tangent, which points in the direction of
// travel. Its [Vec2.Angle] is the angle by which to rotate an object that
// follows the curve. Lines do not report an orientation.
//
// [Segment] is a tagged union of the three curve types, for storing curves
// of mixed kinds.
//
// Curves can be moved into another coordinate space with [Affine]
// transforms. A common pattern is to author a curve in the unit square and
// map it onto the screen with [MapUnitSquare].
//
// # Scalar bounds
//
// A [Scalar] always has max > min. Instead of failing, assigning an invalid
// bound adjusts the other bound, keeping the bounds 1 apart. See
// [Scalar.SetMin] and [Scalar.SetMax].
//
// # Colors
//
// [ColorInterpolator] works on non-premultiplied sRGB channels as provided
// by [github.com/lucasb-eyer/go-colorful]. The produced colors are always
// opaque. Colors whose channels cannot be recovered, such as fully
// transparent ones, are rejected with [ErrUnrepresentableColor].
//
// # Declaring interpolators
//
// Interpolators can be declared in YAML and loaded with [Decode]. See
// [Document] for the format.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package percent
