package percent

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const testDocument = `
scalars:
  opacity: {min: 0, max: 1}
  stuck: {min: 5, max: 5}
  width: {max: 300}
curves:
  slide:
    kind: cubic
    points: [[0, 0], [10, 40], [60, 40], [100, 0]]
  drop: {kind: quadratic, points: [[0, 0], [50, 100], [100, 0]]}
  straight: {kind: line, points: [[1, 2], [3, 4]]}
colors:
  fade: {start: "#000", end: white}
`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(testDocument))
	if err != nil {
		t.Fatal(err)
	}

	diff(t, 0.5, doc.Scalars["opacity"].Value(0.5))
	diff(t, [2]float64{5, 6}, [2]float64{doc.Scalars["stuck"].Min(), doc.Scalars["stuck"].Max()})
	diff(t, [2]float64{0, 300}, [2]float64{doc.Scalars["width"].Min(), doc.Scalars["width"].Max()})

	diff(t, CubicSeg(Pt(0, 0), Pt(10, 40), Pt(60, 40), Pt(100, 0)), doc.Curves["slide"])
	diff(t, QuadSeg(Pt(0, 0), Pt(50, 100), Pt(100, 0)), doc.Curves["drop"])
	diff(t, LineSeg(Pt(1, 2), Pt(3, 4)), doc.Curves["straight"])
	diff(t, Pt(50, 50), doc.Curves["drop"].Value(0.5))

	diff(t, colorful.Color{R: 0.5, G: 0.5, B: 0.5}, doc.Colors["fade"].Value(0.5), cmpopts.EquateApprox(0, 1e-9))
}

func TestDecodeEmpty(t *testing.T) {
	doc, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Scalars)+len(doc.Curves)+len(doc.Colors) != 0 {
		t.Errorf("got non-empty document %+v", doc)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"wrong point count", "curves:\n  c: {kind: cubic, points: [[0, 0], [1, 1]]}\n", "cubic segment needs 4 points, got 2"},
		{"bad point", "curves:\n  c: {kind: line, points: [[0, 0, 0], [1, 1]]}\n", "point needs 2 coordinates, got 3"},
		{"unknown kind", "curves:\n  c: {kind: spline, points: [[0, 0], [1, 1]]}\n", `unknown segment kind "spline"`},
		{"missing kind", "curves:\n  c: {points: [[0, 0], [1, 1]]}\n", "segment has no kind"},
		{"unknown key", "easings: {}\n", `line 1: unknown field "easings"`},
		{"bad color", "colors:\n  c: {start: \"#000\", end: chartreuse-ish}\n", "line 2: end color"},
		{"empty curve", "curves:\n  c:\n", `line 2: curves entry "c" is empty`},
		{"null color", "colors:\n  f: ~\n", `line 2: colors entry "f" is empty`},
		{"null scalar", "scalars:\n  s: null\n", `line 2: scalars entry "s" is empty`},
		{"null point", "curves:\n  c: {kind: line, points: [~, [1, 1]]}\n", "line 2: empty point"},
		{"unknown scalar field", "scalars:\n  s: {mini: 3, max: 10}\n", `line 2: unknown field "mini"`},
		{"unknown segment field", "curves:\n  c:\n    kind: line\n    point: [[0, 0], [1, 1]]\n", `line 4: unknown field "point"`},
		{"unknown color field", "colors:\n  c: {start: black, stop: white}\n", `line 2: unknown field "stop"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got error %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestDecodeUnrepresentableColor(t *testing.T) {
	_, err := Decode(strings.NewReader("colors:\n  c: {start: nope, end: white}\n"))
	if !errors.Is(err, ErrUnrepresentableColor) {
		t.Fatalf("got error %v, want ErrUnrepresentableColor", err)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc, err := Decode(strings.NewReader(testDocument))
	if err != nil {
		t.Fatal(err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	const slide = "slide: {kind: cubic, points: [[0, 0], [10, 40], [60, 40], [100, 0]]}\n"
	if !strings.Contains(string(out), slide) {
		t.Errorf("output doesn't contain %q:\n%s", slide, out)
	}
	again, err := Decode(strings.NewReader(string(out)))
	if err != nil {
		t.Fatalf("decoding %s: %v", out, err)
	}
	diff(t, doc.Curves, again.Curves)
	diff(t, doc.Scalars["stuck"].Max(), again.Scalars["stuck"].Max())
	diff(t, doc.Colors["fade"].Value(0.25), again.Colors["fade"].Value(0.25), cmpopts.EquateApprox(0, 1e-9))
}
