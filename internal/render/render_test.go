package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/color"
	"io"
	"image/png"
	"strings"
	"testing"

	"github.com/gittymo/charaph/internal/charts"
	"github.com/gittymo/charaph/internal/dataset"
	"github.com/gittymo/charaph/internal/paint"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		style   string
		want    color.RGBA
		wantErr bool
	}{
		{"rgb", "rgb(255,128,0)", color.RGBA{255, 128, 0, 255}, false},
		{"rgb with spaces", " RGB( 1, 2 ,3 ) ", color.RGBA{1, 2, 3, 255}, false},
		{"rgb clamped", "rgb(300,-4,12.6)", color.RGBA{255, 0, 13, 255}, false},
		{"long hex", "#4477AA", color.RGBA{0x44, 0x77, 0xaa, 255}, false},
		{"short hex", "#fa0", color.RGBA{0xff, 0xaa, 0x00, 255}, false},
		{"name", "Black", color.RGBA{0, 0, 0, 255}, false},
		{"css name", "steelblue", color.RGBA{0x46, 0x82, 0xb4, 255}, false},
		{"navy", "navy", color.RGBA{0, 0, 0x80, 255}, false},
		{"teal", "teal", color.RGBA{0, 0x80, 0x80, 255}, false},
		{"crimson", "Crimson", color.RGBA{0xdc, 0x14, 0x3c, 255}, false},
		{"bad hex digit", "#12x456", color.RGBA{}, true},
		{"bad hex", "#12345", color.RGBA{}, true},
		{"two channels", "rgb(1,2)", color.RGBA{}, true},
		{"bad channel", "rgb(1,x,2)", color.RGBA{}, true},
		{"unknown", "chartreuse-ish", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.style)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.style, got, tt.want)
			}
		})
	}
}

func TestParseColorRoundTripsDefaults(t *testing.T) {
	seq := paint.NewHueSequence()
	for i := 0; i < 12; i++ {
		p := seq.NextPaint()
		if _, err := ParseColor(p.String()); err != nil {
			t.Errorf("ParseColor(%s) returned error: %v", p, err)
		}
	}
	if got := Hex(color.RGBA{255, 128, 0, 255}); got != "#ff8000" {
		t.Errorf("Hex() = %s, want #ff8000", got)
	}
}

func sampleChart(t *testing.T, opts ...charts.Option) *charts.BarChart {
	t.Helper()
	seq := paint.NewHueSequence()
	ds := dataset.New()
	for i, v := range []float64{3, 6, 9} {
		e, err := dataset.NewEntry([]string{"one", "two", "three"}[i], v, seq)
		if err != nil {
			t.Fatalf("NewEntry() returned error: %v", err)
		}
		if err := ds.Add(e); err != nil {
			t.Fatalf("Add() returned error: %v", err)
		}
	}
	c, err := charts.NewBarChart(ds, opts...)
	if err != nil {
		t.Fatalf("NewBarChart() returned error: %v", err)
	}
	return c
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	s := NewSVG(&buf, 300, 200)
	c := sampleChart(t)

	if err := c.Paint(s); err != nil {
		t.Fatalf("Paint() returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
	if !c.Sized() || c.Width() != 300 || c.Height() != 200 {
		t.Errorf("chart not sized from SVG: %vx%v", c.Width(), c.Height())
	}

	out := buf.String()
	if n := strings.Count(out, "<rect"); n != 6 {
		t.Errorf("SVG has %d rects, want 6", n)
	}
	for _, want := range []string{"fill:rgb(255,0,0)", "stroke:black", ">three</text>", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestSVGWellFormed(t *testing.T) {
	seq := paint.NewHueSequence()
	ds := dataset.New()
	for _, label := range []string{"a < b", "R&D", `"quoted"`} {
		e, err := dataset.NewEntry(label, 1, seq)
		if err != nil {
			t.Fatalf("NewEntry() returned error: %v", err)
		}
		if err := ds.Add(e); err != nil {
			t.Fatalf("Add() returned error: %v", err)
		}
	}
	fill, err := paint.New("steelblue")
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	_ = ds.Entries()[0].SetFillStyle(fill)
	c, err := charts.NewBarChart(ds)
	if err != nil {
		t.Fatalf("NewBarChart() returned error: %v", err)
	}

	var buf bytes.Buffer
	s := NewSVG(&buf, 300, 200)
	s.Title("Q&A <draft>")
	if err := c.Paint(s); err != nil {
		t.Fatalf("Paint() returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}

	dec := xml.NewDecoder(&buf)
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("SVG is not well-formed XML: %v", err)
		}
	}
}

func TestPNG(t *testing.T) {
	p := NewPNG(120, 80)
	white, _ := paint.New("white")
	p.Background(white)
	c := sampleChart(t, charts.WithLabels(false), charts.WithPadding(4))

	if err := c.Paint(p); err != nil {
		t.Fatalf("Paint() returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatalf("Encode() returned error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() returned error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("image bounds = %v, want 120x80", b)
	}

	// Tallest bar: section 30, x from 4+15+60+9 = 88 to 100, full height,
	// filled with the third default colour (hue 60).
	r, g, b, _ := img.At(91, 40).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 0 {
		t.Errorf("pixel inside third bar = (%d,%d,%d), want (255,255,0)", r>>8, g>>8, b>>8)
	}
}

func TestPNGNamedColour(t *testing.T) {
	p := NewPNG(10, 10)
	fill, _ := paint.New("steelblue")
	p.FillRect(charts.Rect{Width: 10, Height: 10}, fill)

	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatalf("Encode() returned error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() returned error: %v", err)
	}
	r, g, b, _ := img.At(5, 5).RGBA()
	if r>>8 != 0x46 || g>>8 != 0x82 || b>>8 != 0xb4 {
		t.Errorf("pixel = (%d,%d,%d), want steelblue (70,130,180)", r>>8, g>>8, b>>8)
	}
}

func TestPNGBadColour(t *testing.T) {
	p := NewPNG(10, 10)
	bad, _ := paint.New("not-a-colour")
	p.FillRect(charts.Rect{Width: 5, Height: 5}, bad)
	if p.Err() == nil {
		t.Fatal("Err() = nil after unparseable paint")
	}
	if err := p.Encode(&bytes.Buffer{}); err == nil {
		t.Error("Encode() = nil after unparseable paint")
	}
}

func TestTerminal(t *testing.T) {
	term := NewTerminal(40, 12)
	if w, h, ok := term.Size(); !ok || w != 40 || h != 12 {
		t.Fatalf("Size() = %v, %v, %v, want 40, 12, true", w, h, ok)
	}

	c := sampleChart(t, charts.WithPadding(1), charts.WithLabelHeight(1))
	if err := c.Paint(term); err != nil {
		t.Fatalf("Paint() returned error: %v", err)
	}

	view := term.View()
	if !strings.Contains(view, "█") {
		t.Error("terminal view has no bar cells")
	}
	if !strings.Contains(view, "one") {
		t.Error("terminal view missing label")
	}
}

func TestTerminalKeepsGivenDimension(t *testing.T) {
	// tests have no terminal on stdout, so only the given width is known
	term := NewTerminal(30, 0)
	w, h, ok := term.Size()
	if w != 30 {
		t.Errorf("Size() width = %v, want 30", w)
	}
	if ok && h <= 0 {
		t.Errorf("Size() = %v, %v, true with no height", w, h)
	}
}

func TestTerminalClipsToGrid(t *testing.T) {
	term := NewTerminal(5, 5)
	x0, y0, x1, y1 := term.cells(charts.Rect{X: -3, Y: 2.4, Width: 20, Height: 20})
	if x0 != 0 || y0 != 2 || x1 != 5 || y1 != 5 {
		t.Errorf("cells() = %d,%d,%d,%d, want 0,2,5,5", x0, y0, x1, y1)
	}
}
