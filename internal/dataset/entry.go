package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/gittymo/charaph/internal/paint"
)

// Entry is one labeled observation in a data set.
type Entry struct {
	label      string
	value      float64
	startIndex int
	endIndex   int
	fill       paint.Paint
	stroke     paint.Paint
}

// NewEntry validates label and value and assigns the next default fill from
// seq. A nil seq draws from paint.DefaultSequence.
func NewEntry(label string, value float64, seq *paint.HueSequence) (*Entry, error) {
	if strings.TrimSpace(label) == "" {
		return nil, ErrInvalidLabel
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("entry %q: %w", label, ErrInvalidValue)
	}
	if seq == nil {
		seq = paint.DefaultSequence
	}
	return &Entry{
		label:  label,
		value:  value,
		fill:   seq.NextPaint(),
		stroke: paint.DefaultStroke,
	}, nil
}

func (e *Entry) Label() string {
	return e.label
}

func (e *Entry) Value() float64 {
	return e.value
}

// StartIndex is the position the owning data set assigned on insertion.
func (e *Entry) StartIndex() int {
	return e.startIndex
}

func (e *Entry) EndIndex() int {
	return e.endIndex
}

func (e *Entry) FillStyle() paint.Paint {
	return e.fill
}

func (e *Entry) StrokeStyle() paint.Paint {
	return e.stroke
}

func (e *Entry) SetStartIndex(index int) error {
	if index < 0 {
		return fmt.Errorf("start index %d: %w", index, ErrInvalidArgument)
	}
	e.startIndex = index
	return nil
}

func (e *Entry) SetEndIndex(index int) error {
	if index < 0 {
		return fmt.Errorf("end index %d: %w", index, ErrInvalidArgument)
	}
	e.endIndex = index
	return nil
}

// SetFillStyle replaces the fill descriptor.
func (e *Entry) SetFillStyle(p paint.Paint) error {
	if p.IsZero() {
		return fmt.Errorf("fill style: %w", ErrInvalidArgument)
	}
	e.fill = p
	return nil
}

// SetStrokeStyle replaces the stroke descriptor.
func (e *Entry) SetStrokeStyle(p paint.Paint) error {
	if p.IsZero() {
		return fmt.Errorf("stroke style: %w", ErrInvalidArgument)
	}
	e.stroke = p
	return nil
}

// foldLabel is the key used for uniqueness and label ordering.
func foldLabel(label string) string {
	return strings.ToLower(label)
}
