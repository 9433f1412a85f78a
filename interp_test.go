package percent

import (
	"math"
	"testing"
)

func TestSamples(t *testing.T) {
	var ps []float64
	var vs []float64
	for p, v := range Samples[float64](NewScalar(0, 10), 4) {
		ps = append(ps, p)
		vs = append(vs, v)
	}
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, ps)
	diff(t, []float64{0, 2.5, 5, 7.5, 10}, vs)
}

func TestSamplesDegenerate(t *testing.T) {
	var n int
	for p, pt := range Samples[Point](Line{Pt(1, 1), Pt(2, 2)}, 0) {
		n++
		diff(t, 0.0, p)
		diff(t, Pt(1, 1), pt)
	}
	diff(t, 1, n)
}

func TestSamplesBreak(t *testing.T) {
	var n int
	for range Samples[Point](CubicBez{}, 100) {
		n++
		if n == 3 {
			break
		}
	}
	diff(t, 3, n)
}

func TestSamplesMaxInt(t *testing.T) {
	var ps []float64
	for p := range Samples[float64](NewScalar(0, 1), math.MaxInt) {
		ps = append(ps, p)
		if len(ps) == 2 {
			break
		}
	}
	diff(t, []float64{0, 1 / float64(math.MaxInt)}, ps)
}

func TestSamplesOne(t *testing.T) {
	var ps []float64
	for p := range Samples[float64](NewScalar(0, 1), 1) {
		ps = append(ps, p)
	}
	diff(t, []float64{0, 1}, ps)
}

func TestCurveBoundaries(t *testing.T) {
	curves := []Curve{
		Line{Pt(0.1, 0.2), Pt(0.7, -0.3)},
		QuadBez{Pt(0.1, 0.2), Pt(5, 5), Pt(0.7, -0.3)},
		CubicBez{Pt(0.1, 0.2), Pt(5, 5), Pt(-3, 1), Pt(0.7, -0.3)},
		CubicSeg(Pt(0.1, 0.2), Pt(5, 5), Pt(-3, 1), Pt(0.7, -0.3)),
	}
	const epsilon = 1e-12
	for _, c := range curves {
		assertNear(t, c.Value(0), c.Start(), epsilon)
		assertNear(t, c.Value(1), c.End(), epsilon)
	}
}
