package paint

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidArgument is returned when a colour component or style is unusable.
var ErrInvalidArgument = errors.New("invalid argument")

// Paint is a colour descriptor handed to a renderer's fill or stroke style,
// e.g. "rgb(255,128,0)". It is never parsed back by the chart core.
type Paint struct {
	style string
}

// DefaultStroke is the outline every entry starts with.
var DefaultStroke = Paint{style: "black"}

const markupChars = "\"'<>&"

// New wraps a renderer style string. Styles end up inside markup attributes,
// so quotes, angle brackets and ampersands are rejected.
func New(style string) (Paint, error) {
	if strings.TrimSpace(style) == "" {
		return Paint{}, fmt.Errorf("style string cannot be empty: %w", ErrInvalidArgument)
	}
	if strings.ContainsAny(style, markupChars) {
		return Paint{}, fmt.Errorf("style %q contains one of %s: %w", style, markupChars, ErrInvalidArgument)
	}
	return Paint{style: style}, nil
}

// String returns the style string.
func (p Paint) String() string {
	return p.style
}

// IsZero reports whether p was never assigned a style.
func (p Paint) IsZero() bool {
	return p.style == ""
}

// FromRGB builds a descriptor from red, green and blue channels. Channels are
// clamped to [0,255] and rounded.
func FromRGB(red, green, blue float64) (Paint, error) {
	if !finite(red, green, blue) {
		return Paint{}, fmt.Errorf("RGB values must be numeric: %w", ErrInvalidArgument)
	}
	return rgb(clampChannel(red), clampChannel(green), clampChannel(blue)), nil
}

// FromHSV builds a descriptor from hue in degrees and saturation/value given
// either as fractions in [0,1] or percentages in (1,100].
func FromHSV(hue, saturation, value float64) (Paint, error) {
	if !finite(hue, saturation, value) {
		return Paint{}, fmt.Errorf("HSV values must be numeric: %w", ErrInvalidArgument)
	}
	r, g, b := HSVToRGB(NormalizeHue(hue), NormalizeSatVal(saturation), NormalizeSatVal(value))
	return rgb(r, g, b), nil
}

// NormalizeHue folds a hue in degrees into the [0,1) fraction of a turn.
func NormalizeHue(degrees float64) float64 {
	return math.Mod(math.Mod(degrees, 360)+360, 360) / 360
}

// NormalizeSatVal clamps s to [0,100] and scales percentages down to [0,1].
func NormalizeSatVal(s float64) float64 {
	s = math.Max(0, math.Min(100, s))
	if s > 1 {
		return s / 100
	}
	return s
}

// HSVToRGB converts h, s and v, each in [0,1], to 8-bit channels using the
// six-sector algorithm.
func HSVToRGB(h, s, v float64) (uint8, uint8, uint8) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return clampChannel(r * 255), clampChannel(g * 255), clampChannel(b * 255)
}

func rgb(r, g, b uint8) Paint {
	return Paint{style: fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)}
}

func clampChannel(c float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, c))))
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
