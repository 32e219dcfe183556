package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/gittymo/charaph/internal/charts"
	"github.com/gittymo/charaph/internal/paint"
)

// SVG writes a chart as an SVG document. Close must be called to finish it.
type SVG struct {
	canvas   *svg.SVG
	width    int
	height   int
	fontSize int
}

// NewSVG starts a width x height document on w.
func NewSVG(w io.Writer, width, height int) *SVG {
	canvas := svg.New(w)
	canvas.Start(width, height)
	return &SVG{canvas: canvas, width: width, height: height, fontSize: 12}
}

// Title adds a document title.
func (s *SVG) Title(title string) {
	s.canvas.Title(title)
}

// Background fills the whole document with p.
func (s *SVG) Background(p paint.Paint) {
	s.canvas.Rect(0, 0, s.width, s.height, "fill:"+p.String())
}

func (s *SVG) FillRect(r charts.Rect, p paint.Paint) {
	x, y, w, h := pixels(r)
	s.canvas.Rect(x, y, w, h, "fill:"+p.String()+";stroke:none")
}

func (s *SVG) StrokeRect(r charts.Rect, p paint.Paint) {
	x, y, w, h := pixels(r)
	s.canvas.Rect(x, y, w, h, "fill:none;stroke-width:1;stroke:"+p.String())
}

func (s *SVG) DrawText(r charts.Rect, text string, p paint.Paint) {
	cx := int(math.Round(r.X + r.Width/2))
	cy := int(math.Round(r.Y + r.Height/2))
	style := fmt.Sprintf("text-anchor:middle;dominant-baseline:middle;font-family:sans-serif;font-size:%dpx;fill:%s", s.fontSize, p)
	s.canvas.Text(cx, cy, text, style)
}

// Size reports the document size.
func (s *SVG) Size() (float64, float64, bool) {
	return float64(s.width), float64(s.height), s.width > 0 && s.height > 0
}

// Close ends the document.
func (s *SVG) Close() error {
	s.canvas.End()
	return nil
}

// pixels rounds r's edges to whole pixels.
func pixels(r charts.Rect) (x, y, w, h int) {
	x0, y0 := math.Round(r.X), math.Round(r.Y)
	x1, y1 := math.Round(r.X+r.Width), math.Round(r.Y+r.Height)
	return int(x0), int(y0), int(x1 - x0), int(y1 - y0)
}
