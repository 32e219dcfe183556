package render

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"
	"github.com/gittymo/charaph/internal/charts"
	"github.com/gittymo/charaph/internal/paint"
)

// PNG draws a chart into an in-memory image.
type PNG struct {
	dc  *gg.Context
	err error
}

func NewPNG(width, height int) *PNG {
	return &PNG{dc: gg.NewContext(width, height)}
}

// Background clears the image to p.
func (p *PNG) Background(bg paint.Paint) {
	if !p.setColor(bg) {
		return
	}
	p.dc.Clear()
}

func (p *PNG) FillRect(r charts.Rect, fill paint.Paint) {
	if !p.setColor(fill) {
		return
	}
	p.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	p.dc.Fill()
}

func (p *PNG) StrokeRect(r charts.Rect, stroke paint.Paint) {
	if !p.setColor(stroke) {
		return
	}
	p.dc.SetLineWidth(1)
	p.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	p.dc.Stroke()
}

func (p *PNG) DrawText(r charts.Rect, text string, fg paint.Paint) {
	if !p.setColor(fg) {
		return
	}
	p.dc.DrawStringAnchored(text, r.X+r.Width/2, r.Y+r.Height/2, 0.5, 0.5)
}

func (p *PNG) Size() (float64, float64, bool) {
	return float64(p.dc.Width()), float64(p.dc.Height()), p.dc.Width() > 0 && p.dc.Height() > 0
}

// Err returns the first colour that could not be parsed.
func (p *PNG) Err() error {
	return p.err
}

// Encode writes the image as PNG, failing if any paint was unusable.
func (p *PNG) Encode(w io.Writer) error {
	if p.err != nil {
		return p.err
	}
	if err := p.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

func (p *PNG) setColor(pt paint.Paint) bool {
	c, err := ParseColor(pt.String())
	if err != nil {
		if p.err == nil {
			p.err = err
		}
		return false
	}
	p.dc.SetColor(c)
	return true
}
