package charts

import (
	"errors"
	"fmt"
	"math"

	"github.com/gittymo/charaph/internal/dataset"
	"github.com/gittymo/charaph/internal/paint"
)

var (
	// ErrNotReady is returned by Layout before the chart has a size.
	ErrNotReady = errors.New("chart size not resolved")

	// ErrPaintInProgress is returned when Paint is re-entered for the same chart.
	ErrPaintInProgress = errors.New("paint already in progress")

	ErrInvalidArgument = paint.ErrInvalidArgument
)

// Rect is an axis-aligned rectangle in surface units, origin top-left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Bar is the geometry computed for one entry.
type Bar struct {
	Entry *dataset.Entry
	Index int
	Rect  Rect
	// Label is where the entry's label goes; zero when labels are hidden.
	Label Rect
}

// Renderer is the drawing surface a chart paints onto.
type Renderer interface {
	FillRect(r Rect, p paint.Paint)
	StrokeRect(r Rect, p paint.Paint)
	// DrawText draws text centred within r.
	DrawText(r Rect, text string, p paint.Paint)
}

// Sizer is implemented by renderers that can report the size of the surface
// they are attached to. ok is false while that size is unknown.
type Sizer interface {
	Size() (width, height float64, ok bool)
}

// Chart is implemented by every chart variant.
type Chart interface {
	SetSize(width, height float64) error
	SetWidth(width float64) error
	SetHeight(height float64) error
	Width() float64
	Height() float64
	Sized() bool
	Layout() ([]Bar, error)
	Paint(r Renderer) error
}

// frame holds surface dimensions shared by all chart variants. A zero
// dimension means unset.
type frame struct {
	width  float64
	height float64
}

func (f *frame) setWidth(width float64) error {
	if err := checkDimension("width", width); err != nil {
		return err
	}
	f.width = width
	return nil
}

func (f *frame) setHeight(height float64) error {
	if err := checkDimension("height", height); err != nil {
		return err
	}
	f.height = height
	return nil
}

func (f *frame) Width() float64 {
	return f.width
}

func (f *frame) Height() float64 {
	return f.height
}

// Sized reports whether both dimensions are known.
func (f *frame) Sized() bool {
	return f.width > 0 && f.height > 0
}

// resolve adopts the renderer's surface size when the frame has none.
func (f *frame) resolve(r Renderer) bool {
	if f.Sized() {
		return true
	}
	if f.width != 0 || f.height != 0 {
		return false
	}
	sizer, ok := r.(Sizer)
	if !ok {
		return false
	}
	w, h, ok := sizer.Size()
	if !ok || checkDimension("width", w) != nil || checkDimension("height", h) != nil {
		return false
	}
	f.width, f.height = w, h
	return true
}

func checkDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be numeric: %w", name, ErrInvalidArgument)
	}
	if v <= 0 {
		return fmt.Errorf("%s must be greater than zero: %w", name, ErrInvalidArgument)
	}
	return nil
}
