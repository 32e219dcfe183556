package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gittymo/charaph/internal/paint"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// LabelColor is used for label text on terminals, where the default black
// stroke would disappear on dark backgrounds.
var LabelColor = lipgloss.Color("#66CCEE")

// ParseColor turns a style string into a colour. It understands rgb(r,g,b),
// #rgb, #rrggbb and the CSS colour names.
func ParseColor(style string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(style))

	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return color.RGBA{}, fmt.Errorf("parsing colour %q: want 3 or 6 hex digits", style)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parsing colour %q: %w", style, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}

	// colorful has no rgb() notation
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[len("rgb("):len(s)-1], ",")
		if len(parts) != 3 {
			return color.RGBA{}, fmt.Errorf("parsing colour %q: want three channels", style)
		}
		var ch [3]uint8
		for i, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("parsing colour %q: %w", style, err)
			}
			ch[i] = uint8(math.Round(math.Max(0, math.Min(255, v))))
		}
		return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
	}

	return color.RGBA{}, fmt.Errorf("unsupported colour %q", style)
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	col, _ := colorful.MakeColor(c)
	return col.Hex()
}

// Style returns a lipgloss style whose foreground is p. Unparseable paints get
// the terminal's default colour.
func Style(p paint.Paint) lipgloss.Style {
	c, err := ParseColor(p.String())
	if err != nil {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(c)))
}
