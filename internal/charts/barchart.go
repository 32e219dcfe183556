package charts

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gittymo/charaph/internal/dataset"
)

// Orientation selects the direction bars grow in.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "Unknown"
	}
}

// BarChart lays the entries of a data set out as one bar per entry, scaled
// against the data set's maximum value. The data set is shared, so changes to
// it show up on the next Layout or Paint.
type BarChart struct {
	frame

	data          *dataset.DataSet
	orientation   Orientation
	padding       float64
	barThickness  float64
	labelsVisible bool
	labelHeight   float64
	labelWidth    float64

	painting atomic.Bool
}

var _ Chart = (*BarChart)(nil)

// Option configures a BarChart.
type Option func(*BarChart) error

// WithHorizontalBars makes bars grow left to right.
func WithHorizontalBars() Option {
	return func(c *BarChart) error {
		return c.SetOrientation(Horizontal)
	}
}

func WithPadding(padding float64) Option {
	return func(c *BarChart) error {
		return c.SetPadding(padding)
	}
}

func WithBarThickness(fraction float64) Option {
	return func(c *BarChart) error {
		return c.SetBarThickness(fraction)
	}
}

func WithLabels(visible bool) Option {
	return func(c *BarChart) error {
		c.SetLabelsVisible(visible)
		return nil
	}
}

func WithLabelHeight(height float64) Option {
	return func(c *BarChart) error {
		return c.SetLabelHeight(height)
	}
}

func WithLabelWidth(width float64) Option {
	return func(c *BarChart) error {
		return c.SetLabelWidth(width)
	}
}

// WithSize sizes the chart up front instead of waiting for the renderer.
func WithSize(width, height float64) Option {
	return func(c *BarChart) error {
		return c.SetSize(width, height)
	}
}

// NewBarChart returns an unsized vertical bar chart over data.
func NewBarChart(data *dataset.DataSet, opts ...Option) (*BarChart, error) {
	if data == nil {
		return nil, fmt.Errorf("bar chart needs a data set: %w", ErrInvalidArgument)
	}
	c := &BarChart{
		data:          data,
		orientation:   Vertical,
		padding:       DefaultPadding,
		barThickness:  DefaultBarThickness,
		labelsVisible: true,
		labelHeight:   DefaultLabelHeight,
		labelWidth:    DefaultLabelWidth,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *BarChart) DataSet() *dataset.DataSet {
	return c.data
}

func (c *BarChart) SetWidth(width float64) error {
	return c.setWidth(width)
}

func (c *BarChart) SetHeight(height float64) error {
	return c.setHeight(height)
}

// SetSize sets both dimensions, or neither if either is invalid.
func (c *BarChart) SetSize(width, height float64) error {
	if err := checkDimension("width", width); err != nil {
		return err
	}
	if err := checkDimension("height", height); err != nil {
		return err
	}
	c.width, c.height = width, height
	return nil
}

func (c *BarChart) Orientation() Orientation {
	return c.orientation
}

func (c *BarChart) SetOrientation(o Orientation) error {
	if o != Vertical && o != Horizontal {
		return fmt.Errorf("orientation %d: %w", o, ErrInvalidArgument)
	}
	c.orientation = o
	return nil
}

func (c *BarChart) Padding() float64 {
	return c.padding
}

func (c *BarChart) SetPadding(padding float64) error {
	if math.IsNaN(padding) || math.IsInf(padding, 0) || padding < 0 {
		return fmt.Errorf("padding %v: %w", padding, ErrInvalidArgument)
	}
	c.padding = padding
	return nil
}

func (c *BarChart) BarThickness() float64 {
	return c.barThickness
}

// SetBarThickness sets the share of half a section a bar spans, in (0,1].
func (c *BarChart) SetBarThickness(fraction float64) error {
	if math.IsNaN(fraction) || fraction <= 0 || fraction > 1 {
		return fmt.Errorf("bar thickness %v: %w", fraction, ErrInvalidArgument)
	}
	c.barThickness = fraction
	return nil
}

func (c *BarChart) LabelsVisible() bool {
	return c.labelsVisible
}

func (c *BarChart) SetLabelsVisible(visible bool) {
	c.labelsVisible = visible
}

func (c *BarChart) SetLabelHeight(height float64) error {
	if math.IsNaN(height) || math.IsInf(height, 0) || height < 0 {
		return fmt.Errorf("label height %v: %w", height, ErrInvalidArgument)
	}
	c.labelHeight = height
	return nil
}

func (c *BarChart) SetLabelWidth(width float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || width < 0 {
		return fmt.Errorf("label width %v: %w", width, ErrInvalidArgument)
	}
	c.labelWidth = width
	return nil
}

// SectionWidth is the extent of one entry's section along the category axis:
// width/(n+1) for vertical charts, height/(n+1) for horizontal ones.
func (c *BarChart) SectionWidth() float64 {
	extent := c.width
	if c.orientation == Horizontal {
		extent = c.height
	}
	return extent / float64(c.data.Len()+1)
}

// AvailableHeight is the surface height inside the padding.
func (c *BarChart) AvailableHeight() float64 {
	return c.height - 2*c.padding
}

// AvailableWidth is the surface width inside the padding.
func (c *BarChart) AvailableWidth() float64 {
	return c.width - 2*c.padding
}

// Layout computes one bar per entry in display order.
func (c *BarChart) Layout() ([]Bar, error) {
	if !c.Sized() {
		return nil, ErrNotReady
	}
	return c.layout(), nil
}

// Paint draws every bar onto r, sizing the chart from r first if it implements
// Sizer and no size has been set. Painting an unsized chart or an empty data
// set draws nothing.
func (c *BarChart) Paint(r Renderer) error {
	if r == nil {
		return fmt.Errorf("nil renderer: %w", ErrInvalidArgument)
	}
	if !c.painting.CompareAndSwap(false, true) {
		return ErrPaintInProgress
	}
	defer c.painting.Store(false)

	if c.data.Len() == 0 || !c.resolve(r) {
		return nil
	}
	for _, bar := range c.layout() {
		r.FillRect(bar.Rect, bar.Entry.FillStyle())
		r.StrokeRect(bar.Rect, bar.Entry.StrokeStyle())
		if c.labelsVisible {
			r.DrawText(bar.Label, bar.Entry.Label(), bar.Entry.StrokeStyle())
		}
	}
	return nil
}

func (c *BarChart) layout() []Bar {
	entries := c.data.Entries()
	if len(entries) == 0 {
		return []Bar{}
	}
	if c.orientation == Horizontal {
		return c.layoutHorizontal(entries)
	}
	return c.layoutVertical(entries)
}

func (c *BarChart) layoutVertical(entries []*dataset.Entry) []Bar {
	section := c.SectionWidth()
	half := section / 2
	barWidth := math.Floor(half * c.barThickness)
	xOffset := (section - barWidth) / 2

	maxBarHeight := c.AvailableHeight()
	if c.labelsVisible {
		maxBarHeight -= c.labelHeight + c.padding
	}
	maxBarHeight = math.Max(maxBarHeight, 0)

	labelWidth := section * labelShare
	labelOffset := (section - labelWidth) / 2

	bars := make([]Bar, 0, len(entries))
	for i, e := range entries {
		left := c.padding + half + section*float64(i)
		barHeight := c.barLength(maxBarHeight, e.Value())
		bar := Bar{
			Entry: e,
			Index: i,
			Rect: Rect{
				X:      left + xOffset,
				Y:      c.padding + (maxBarHeight - barHeight),
				Width:  barWidth,
				Height: barHeight,
			},
		}
		if c.labelsVisible {
			bar.Label = Rect{
				X:      left + labelOffset,
				Y:      c.padding + maxBarHeight + c.padding,
				Width:  labelWidth,
				Height: c.labelHeight,
			}
		}
		bars = append(bars, bar)
	}
	return bars
}

func (c *BarChart) layoutHorizontal(entries []*dataset.Entry) []Bar {
	section := c.SectionWidth()
	half := section / 2
	barHeight := math.Floor(half * c.barThickness)
	yOffset := (section - barHeight) / 2

	band := 0.0
	if c.labelsVisible {
		band = c.labelWidth + c.padding
	}
	maxBarWidth := math.Max(c.AvailableWidth()-band, 0)

	labelHeight := section * labelShare
	labelOffset := (section - labelHeight) / 2

	bars := make([]Bar, 0, len(entries))
	for i, e := range entries {
		top := c.padding + half + section*float64(i)
		bar := Bar{
			Entry: e,
			Index: i,
			Rect: Rect{
				X:      c.padding + band,
				Y:      top + yOffset,
				Width:  c.barLength(maxBarWidth, e.Value()),
				Height: barHeight,
			},
		}
		if c.labelsVisible {
			bar.Label = Rect{
				X:      c.padding,
				Y:      top + labelOffset,
				Width:  c.labelWidth,
				Height: labelHeight,
			}
		}
		bars = append(bars, bar)
	}
	return bars
}

// barLength scales value against the data set maximum. Without a positive
// maximum there is nothing to scale against and bars collapse to zero; values
// below zero do too.
func (c *BarChart) barLength(extent, value float64) float64 {
	maxValue := c.data.MaxValue()
	if maxValue <= 0 || value <= 0 {
		return 0
	}
	return extent * (value / maxValue)
}
