package percent

// QuadBez is a quadratic Bézier curve from P0 to P2, pulled towards the
// control point P1.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Value evaluates (1−p)²P0 + 2(1−p)pP1 + p²P2.
func (q QuadBez) Value(p float64) Point {
	mt := 1.0 - p
	w0 := mt * mt
	w1 := 2.0 * mt * p
	w2 := p * p
	return Point{
		X: w0*q.P0.X + w1*q.P1.X + w2*q.P2.X,
		Y: w0*q.P0.Y + w1*q.P1.Y + w2*q.P2.Y,
	}
}

// Orientation returns the tangent 2(1−p)(P1−P0) + 2p(P2−P1).
func (q QuadBez) Orientation(p float64) Vec2 {
	d0 := q.P1.Sub(q.P0).Mul(2 * (1.0 - p))
	d1 := q.P2.Sub(q.P1).Mul(2 * p)
	return d0.Add(d1)
}

// Differentiate returns the hodograph of q: the line whose value at p is the
// orientation of q at p.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// Raise returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Value(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

// Subsegment returns the part of the curve between t0 and t1, reparametrized
// to [0, 1].
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Value(t0)
	p2 := q.Value(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

// Extrema returns the parameters in (0, 1) at which the curve turns around
// on either axis, in increasing order.
func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// The derivative is a line, so each axis has at most one root.
	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the curve
// for p in [0, 1]. It is usually smaller than the box around the control
// points.
func (q QuadBez) BoundingBox() Rect {
	return boundingBox(q)
}

func (q QuadBez) Translate(v Vec2) QuadBez {
	return QuadBez{
		P0: q.P0.Translate(v),
		P1: q.P1.Translate(v),
		P2: q.P2.Translate(v),
	}
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Seg returns the curve as a [Segment].
func (q QuadBez) Seg() Segment {
	return Segment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}

// boundingBox returns the box around c's end points and interior extrema.
func boundingBox(c interface {
	Curve
	Extrema() ([MaxExtrema]float64, int)
}) Rect {
	bbox := NewRectFromPoints(c.Start(), c.End())
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Value(t))
	}
	return bbox
}
