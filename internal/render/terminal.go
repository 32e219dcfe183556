package render

import (
	"math"
	"os"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/charmbracelet/lipgloss"
	"github.com/gittymo/charaph/internal/charts"
	"github.com/gittymo/charaph/internal/paint"
	"golang.org/x/term"
)

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// DefaultTerminalHeight is the fallback terminal height when detection fails.
	DefaultTerminalHeight = 24
)

// Terminal draws a chart onto a character grid, one cell per unit.
type Terminal struct {
	canvas canvas.Model
	cols   int
	rows   int
}

// NewTerminal returns a cols x rows grid. A zero dimension is taken from the
// terminal on stdout; Size reports not ok if there is none.
func NewTerminal(cols, rows int) *Terminal {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols == 0 || rows == 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 1 {
			if cols == 0 {
				cols = w
			}
			if rows == 0 {
				// leave the last line for the shell prompt
				rows = h - 1
			}
		}
	}
	return &Terminal{
		canvas: canvas.New(max(cols, 1), max(rows, 1)),
		cols:   cols,
		rows:   rows,
	}
}

func (t *Terminal) FillRect(r charts.Rect, p paint.Paint) {
	x0, y0, x1, y1 := t.cells(r)
	style := Style(p)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.canvas.SetCell(canvas.Point{X: x, Y: y}, canvas.NewCellWithStyle(runes.FullBlock, style))
		}
	}
}

// StrokeRect does nothing: an outline one cell wide would cover the fill.
func (t *Terminal) StrokeRect(charts.Rect, paint.Paint) {}

func (t *Terminal) DrawText(r charts.Rect, text string, _ paint.Paint) {
	x0, y0, x1, y1 := t.cells(r)
	width := x1 - x0
	if width <= 0 || y0 >= t.rows {
		return
	}
	label := []rune(text)
	if len(label) > width {
		label = label[:width]
	}
	x := x0 + (width-len(label))/2
	y := y0 + max(y1-y0-1, 0)/2
	t.canvas.SetStringWithStyle(canvas.Point{X: x, Y: y}, string(label), lipgloss.NewStyle().Foreground(LabelColor))
}

// Size reports the grid size; ok is false if no terminal could be measured.
func (t *Terminal) Size() (float64, float64, bool) {
	return float64(t.cols), float64(t.rows), t.cols > 0 && t.rows > 0
}

// View returns the grid as a string.
func (t *Terminal) View() string {
	return t.canvas.View()
}

// cells rounds r to a half-open cell range clipped to the grid.
func (t *Terminal) cells(r charts.Rect) (x0, y0, x1, y1 int) {
	x0 = clamp(int(math.Round(r.X)), 0, t.cols)
	y0 = clamp(int(math.Round(r.Y)), 0, t.rows)
	x1 = clamp(int(math.Round(r.X+r.Width)), 0, t.cols)
	y1 = clamp(int(math.Round(r.Y+r.Height)), 0, t.rows)
	return x0, y0, x1, y1
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
