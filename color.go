package percent

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnrepresentableColor is matched by every [UnrepresentableColorError].
var ErrUnrepresentableColor = errors.New("color cannot be decomposed into red, green and blue channels")

// UnrepresentableColorError reports a color whose red, green and blue
// channels cannot be recovered. This is the case for nil colors and for
// fully transparent ones, whose alpha-premultiplied channels are all zero.
type UnrepresentableColorError struct {
	// Color is the offending color. It is nil if the color was given as a
	// string.
	Color color.Color
	// Text is the offending color string, if any.
	Text string
}

func (e *UnrepresentableColorError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("unrepresentable color %q", e.Text)
	}
	if e.Color == nil {
		return "unrepresentable color <nil>"
	}
	return fmt.Sprintf("unrepresentable color %v", e.Color)
}

func (e *UnrepresentableColorError) Is(target error) bool {
	return target == ErrUnrepresentableColor
}

// channels decomposes c into non-premultiplied sRGB channels in [0, 1].
func channels(c color.Color) (colorful.Color, error) {
	if c == nil {
		return colorful.Color{}, &UnrepresentableColorError{}
	}
	if col, ok := c.(colorful.Color); ok {
		return col, nil
	}
	col, ok := colorful.MakeColor(c)
	if !ok {
		return colorful.Color{}, &UnrepresentableColorError{Color: c}
	}
	return col, nil
}

// ParseColor parses a hex color of the form #rgb or #rrggbb, or one of the
// SVG 1.1 color keywords such as "white" or "cornflowerblue". Keywords are
// matched case-insensitively.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		col, err := colorful.Hex(strings.ToLower(s))
		if err != nil || (len(s) != 4 && len(s) != 7) {
			return colorful.Color{}, &UnrepresentableColorError{Text: s}
		}
		return col, nil
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return channels(named)
	}
	return colorful.Color{}, &UnrepresentableColorError{Text: s}
}

// ColorInterpolator blends between two colors, one red, green and blue
// channel at a time. Alpha is not interpolated: every color it produces is
// fully opaque.
//
// Each channel changes linearly from its start to its end value, whether
// that is an increase, a decrease, or no change at all.
//
// The zero value is not usable; use [NewColorInterpolator].
type ColorInterpolator struct {
	start color.Color
	end   color.Color
	// channel values of start and end
	from colorful.Color
	to   colorful.Color
}

// NewColorInterpolator returns an interpolator from start to end. It returns
// an [*UnrepresentableColorError] if either color cannot be decomposed into
// channels.
func NewColorInterpolator(start, end color.Color) (*ColorInterpolator, error) {
	ci := &ColorInterpolator{}
	if err := ci.set(start, end); err != nil {
		return nil, err
	}
	return ci, nil
}

func (ci *ColorInterpolator) set(start, end color.Color) error {
	from, err := channels(start)
	if err != nil {
		return fmt.Errorf("start color: %w", err)
	}
	to, err := channels(end)
	if err != nil {
		return fmt.Errorf("end color: %w", err)
	}
	ci.start, ci.end = start, end
	ci.from, ci.to = from, to
	return nil
}

// Start returns the start color as it was passed in.
func (ci *ColorInterpolator) Start() color.Color { return ci.start }

// End returns the end color as it was passed in.
func (ci *ColorInterpolator) End() color.Color { return ci.end }

// SetStart replaces the start color. On error, the interpolator is left
// unchanged.
func (ci *ColorInterpolator) SetStart(c color.Color) error {
	return ci.set(c, ci.end)
}

// SetEnd replaces the end color. On error, the interpolator is left
// unchanged.
func (ci *ColorInterpolator) SetEnd(c color.Color) error {
	return ci.set(ci.start, c)
}

// Value returns the color at p. Channels are not clamped: for p outside of
// [0, 1] they may leave [0, 1] as well. Use [colorful.Color.Clamped] before
// displaying such colors.
func (ci *ColorInterpolator) Value(p float64) colorful.Color {
	return colorful.Color{
		R: Lerp(ci.from.R, ci.to.R, p),
		G: Lerp(ci.from.G, ci.to.G, p),
		B: Lerp(ci.from.B, ci.to.B, p),
	}
}
