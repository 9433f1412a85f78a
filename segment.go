package percent

import "fmt"

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "line"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// numPoints returns the number of points used by segments of kind k,
// or 0 for invalid kinds.
func (k SegmentKind) numPoints() int {
	switch k {
	case LineKind:
		return 2
	case QuadKind:
		return 3
	case CubicKind:
		return 4
	default:
		return 0
	}
}

// Segment is any one of [Line], [QuadBez] and [CubicBez]. This type acts as
// a tagged union: Kind selects the variant, and only as many of the points
// as the variant needs are used, in order. The end point is P1 for lines,
// P2 for quadratic Béziers and P3 for cubic Béziers.
//
// Segment allows storing curves of different kinds in one slice or field
// without boxing them in an interface.
type Segment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// LineSeg returns a line segment from p0 to p1.
func LineSeg(p0, p1 Point) Segment {
	return Segment{Kind: LineKind, P0: p0, P1: p1}
}

// QuadSeg returns a quadratic Bézier segment from p0 to p2 with control point p1.
func QuadSeg(p0, p1, p2 Point) Segment {
	return Segment{Kind: QuadKind, P0: p0, P1: p1, P2: p2}
}

// CubicSeg returns a cubic Bézier segment from p0 to p3 with control points
// p1 and p2.
func CubicSeg(p0, p1, p2, p3 Point) Segment {
	return Segment{Kind: CubicKind, P0: p0, P1: p1, P2: p2, P3: p3}
}

// Line returns the segment as a line. The result is only meaningful if Kind
// is LineKind.
func (seg Segment) Line() Line {
	return Line{seg.P0, seg.P1}
}

// Quad returns the segment as a quadratic Bézier. The result is only
// meaningful if Kind is QuadKind.
func (seg Segment) Quad() QuadBez {
	return QuadBez{seg.P0, seg.P1, seg.P2}
}

// Cubic returns the segment as a cubic Bézier. The result is only meaningful
// if Kind is CubicKind.
func (seg Segment) Cubic() CubicBez {
	return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
}

// Points returns the points of the segment that its kind uses.
func (seg Segment) Points() []Point {
	pts := [4]Point{seg.P0, seg.P1, seg.P2, seg.P3}
	return pts[:seg.Kind.numPoints()]
}

func (seg Segment) Value(p float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Value(p)
	case QuadKind:
		return seg.Quad().Value(p)
	case CubicKind:
		return seg.Cubic().Value(p)
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// Orientation returns the tangent of the segment at p. It returns false for
// lines, which do not report an orientation.
func (seg Segment) Orientation(p float64) (Vec2, bool) {
	switch seg.Kind {
	case LineKind:
		return Vec2{}, false
	case QuadKind:
		return seg.Quad().Orientation(p), true
	case CubicKind:
		return seg.Cubic().Orientation(p), true
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

func (seg Segment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case QuadKind:
		return seg.Quad().BoundingBox()
	case CubicKind:
		return seg.Cubic().BoundingBox()
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

// Transform applies aff to the points the segment uses. Unused points stay
// zero.
func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Transform(aff).Seg()
	case QuadKind:
		return seg.Quad().Transform(aff).Seg()
	case CubicKind:
		return seg.Cubic().Transform(aff).Seg()
	default:
		panic(fmt.Sprintf("invalid Segment kind %v", seg.Kind))
	}
}

func (seg Segment) String() string {
	return fmt.Sprintf("%v%v", seg.Kind, seg.Points())
}
