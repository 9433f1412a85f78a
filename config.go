package percent

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a set of named interpolators declared in YAML:
//
//	scalars:
//	  opacity: {min: 0, max: 1}
//	curves:
//	  slide: {kind: cubic, points: [[0, 0], [10, 40], [60, 40], [100, 0]]}
//	colors:
//	  fade: {start: "#000", end: white}
type Document struct {
	Scalars map[string]*Scalar            `yaml:"scalars,omitempty"`
	Curves  map[string]Segment            `yaml:"curves,omitempty"`
	Colors  map[string]*ColorInterpolator `yaml:"colors,omitempty"`
}

// Decode reads a [Document] from r. Unknown keys and empty entries are
// rejected. An empty input yields an empty document.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("decoding interpolators: %w", err)
	}
	return &doc, nil
}

type documentYAML Document

func (doc *Document) UnmarshalYAML(value *yaml.Node) error {
	if err := checkFields(value, "scalars", "curves", "colors"); err != nil {
		return err
	}
	if value.Kind == yaml.MappingNode {
		// yaml.v3 doesn't call UnmarshalYAML for null values and stores the
		// zero value instead, which for curves is a segment without a kind.
		for i := 1; i < len(value.Content); i += 2 {
			entries := value.Content[i]
			if entries.Kind != yaml.MappingNode {
				continue
			}
			for j := 0; j+1 < len(entries.Content); j += 2 {
				if isNull(entries.Content[j+1]) {
					key := entries.Content[j]
					return fmt.Errorf("line %d: %s entry %q is empty", key.Line, value.Content[i-1].Value, key.Value)
				}
			}
		}
	}
	return value.Decode((*documentYAML)(doc))
}

// checkFields rejects mapping keys not in fields. Node.Decode doesn't honor
// the decoder's KnownFields setting.
func checkFields(value *yaml.Node, fields ...string) error {
	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		if !slices.Contains(fields, key.Value) {
			return fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
		}
	}
	return nil
}

func isNull(n *yaml.Node) bool {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// UnmarshalYAML decodes a point from a sequence of two numbers, [x, y].
func (pt *Point) UnmarshalYAML(value *yaml.Node) error {
	var xy []float64
	if err := value.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("line %d: point needs 2 coordinates, got %d", value.Line, len(xy))
	}
	pt.X, pt.Y = xy[0], xy[1]
	return nil
}

func (pt Point) MarshalYAML() (any, error) {
	return flowNode([]float64{pt.X, pt.Y})
}

// flowNode encodes v in flow style, [x, y] for points and {...} for mappings.
func flowNode(v any) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle
	return &n, nil
}

func (k SegmentKind) MarshalText() ([]byte, error) {
	if k.numPoints() == 0 {
		return nil, fmt.Errorf("invalid segment kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText accepts "line", "quad" and "cubic", as well as the long
// forms "linear" and "quadratic".
func (k *SegmentKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "line", "linear":
		*k = LineKind
	case "quad", "quadratic":
		*k = QuadKind
	case "cubic":
		*k = CubicKind
	default:
		return fmt.Errorf("unknown segment kind %q", text)
	}
	return nil
}

type segmentYAML struct {
	Kind   SegmentKind `yaml:"kind"`
	Points []Point     `yaml:"points"`
}

// UnmarshalYAML decodes a segment from a mapping with a kind and the list of
// its points, start point first and end point last.
func (seg *Segment) UnmarshalYAML(value *yaml.Node) error {
	if err := checkFields(value, "kind", "points"); err != nil {
		return err
	}
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			if pts := value.Content[i+1]; value.Content[i].Value == "points" && pts.Kind == yaml.SequenceNode {
				for _, pt := range pts.Content {
					if isNull(pt) {
						return fmt.Errorf("line %d: empty point", pt.Line)
					}
				}
			}
		}
	}
	var aux segmentYAML
	if err := value.Decode(&aux); err != nil {
		return err
	}
	want := aux.Kind.numPoints()
	if want == 0 {
		return fmt.Errorf("line %d: segment has no kind", value.Line)
	}
	if len(aux.Points) != want {
		return fmt.Errorf("line %d: %v segment needs %d points, got %d", value.Line, aux.Kind, want, len(aux.Points))
	}
	var pts [4]Point
	copy(pts[:], aux.Points)
	*seg = Segment{Kind: aux.Kind, P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}
	return nil
}

func (seg Segment) MarshalYAML() (any, error) {
	if seg.Kind.numPoints() == 0 {
		return nil, fmt.Errorf("invalid segment kind %d", int(seg.Kind))
	}
	return flowNode(segmentYAML{Kind: seg.Kind, Points: seg.Points()})
}

type scalarYAML struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// UnmarshalYAML decodes a scalar from a mapping with min and max. Missing
// bounds default to 0 and 1. The bounds are normalized like [NewScalar].
func (s *Scalar) UnmarshalYAML(value *yaml.Node) error {
	if err := checkFields(value, "min", "max"); err != nil {
		return err
	}
	aux := scalarYAML{Min: 0, Max: 1}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*s = *NewScalar(aux.Min, aux.Max)
	return nil
}

func (s Scalar) MarshalYAML() (any, error) {
	return scalarYAML{Min: s.min, Max: s.max}, nil
}

type colorYAML struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// UnmarshalYAML decodes a color interpolator from a mapping with start and
// end colors, each accepted by [ParseColor].
func (ci *ColorInterpolator) UnmarshalYAML(value *yaml.Node) error {
	if err := checkFields(value, "start", "end"); err != nil {
		return err
	}
	var aux colorYAML
	if err := value.Decode(&aux); err != nil {
		return err
	}
	start, err := ParseColor(aux.Start)
	if err != nil {
		return fmt.Errorf("line %d: start color: %w", value.Line, err)
	}
	end, err := ParseColor(aux.End)
	if err != nil {
		return fmt.Errorf("line %d: end color: %w", value.Line, err)
	}
	return ci.set(start, end)
}

func (ci *ColorInterpolator) MarshalYAML() (any, error) {
	return colorYAML{Start: ci.from.Hex(), End: ci.to.Hex()}, nil
}
