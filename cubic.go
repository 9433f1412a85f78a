package percent

import "slices"

// CubicBez is a cubic Bézier curve from P0 to P3 with the control points P1
// and P2. The curve leaves P0 heading towards P1 and arrives at P3 coming
// from P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Value evaluates (1−p)³P0 + 3(1−p)²pP1 + 3(1−p)p²P2 + p³P3.
func (c CubicBez) Value(p float64) Point {
	mt := 1.0 - p
	w0 := mt * mt * mt
	w1 := 3.0 * mt * mt * p
	w2 := 3.0 * mt * p * p
	w3 := p * p * p
	return Point{
		X: w0*c.P0.X + w1*c.P1.X + w2*c.P2.X + w3*c.P3.X,
		Y: w0*c.P0.Y + w1*c.P1.Y + w2*c.P2.Y + w3*c.P3.Y,
	}
}

// Orientation returns the tangent
// 3(1−p)²(P1−P0) + 6(1−p)p(P2−P1) + 3p²(P3−P2).
func (c CubicBez) Orientation(p float64) Vec2 {
	mt := 1.0 - p
	d0 := c.P1.Sub(c.P0).Mul(3 * mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(6 * mt * p)
	d2 := c.P3.Sub(c.P2).Mul(3 * p * p)
	return d0.Add(d1).Add(d2)
}

// Differentiate returns the hodograph of c: the quadratic Bézier whose value
// at p is the orientation of c at p.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Value(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Subsegment returns the part of the curve between t0 and t1, reparametrized
// to [0, 1].
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Value(t0)
	p3 := c.Value(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.Orientation(t0).Mul(scale))
	p2 := p3.Translate(c.Orientation(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Extrema returns the parameters in (0, 1) at which the curve turns around
// on either axis, in increasing order.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	var outN int
	// The derivative on each axis is a quadratic in Bernstein form with
	// coefficients d0, d1, d2.
	oneCoord := func(d0, d1, d2 float64) {
		roots, n := SolveQuadratic(d0, 2*(d1-d0), d0-2*d1+d2)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	slices.Sort(out[:outN])
	return out, outN
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the curve
// for p in [0, 1].
func (c CubicBez) BoundingBox() Rect {
	return boundingBox(c)
}

func (c CubicBez) Translate(v Vec2) CubicBez {
	return CubicBez{
		P0: c.P0.Translate(v),
		P1: c.P1.Translate(v),
		P2: c.P2.Translate(v),
		P3: c.P3.Translate(v),
	}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Seg returns the curve as a [Segment].
func (c CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}
