package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gittymo/charaph/internal/charts"
	"github.com/gittymo/charaph/internal/dataset"
	"github.com/gittymo/charaph/internal/paint"
	"github.com/gittymo/charaph/internal/render"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// white is the image background.
var white, _ = paint.FromRGB(255, 255, 255)

type RenderCmd struct {
	Input string `arg:"" name:"input" help:"YAML or JSON data set file, - for stdin."`

	ChartFlags `embed:""`
}

func (r *RenderCmd) Run(ctx *Context) error {
	ds, title, err := dataset.LoadFile(r.Input, nil)
	if err != nil {
		return err
	}
	ctx.logger().Debug("loaded data set",
		zap.String("input", r.Input),
		zap.Int("entries", ds.Len()),
		zap.Float64("min", ds.MinValue()),
		zap.Float64("max", ds.MaxValue()),
	)
	return r.ChartFlags.write(ctx, ds, title)
}

// write charts ds in the selected format to --out or stdout.
func (f ChartFlags) write(ctx *Context, ds *dataset.DataSet, title string) (err error) {
	f.sort(ds)
	chart, err := charts.NewBarChart(ds, f.options(ds)...)
	if err != nil {
		return fmt.Errorf("configuring chart: %w", err)
	}

	w := ctx.stdout()
	if f.Out != "" {
		file, ferr := os.Create(f.Out)
		if ferr != nil {
			return fmt.Errorf("creating output file: %w", ferr)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		w = file
	}

	if ds.Len() == 0 {
		ctx.logger().Warn("data set has no entries", zap.String("title", title))
	}

	switch f.Output {
	case OutputSVG:
		return f.writeSVG(w, chart, title)
	case OutputPNG:
		return f.writePNG(w, chart)
	case OutputJSON, OutputYAML:
		return f.writeLayout(w, chart)
	default:
		return f.writeTerminal(w, chart, title)
	}
}

func (f ChartFlags) writeTerminal(w io.Writer, chart *charts.BarChart, title string) error {
	if chart.DataSet().Len() == 0 {
		_, err := fmt.Fprintln(w, "No Data")
		return err
	}

	grid := render.NewTerminal(f.Width, f.Height)
	if _, _, ok := grid.Size(); !ok {
		grid = render.NewTerminal(orDefault(f.Width, render.DefaultTerminalWidth), orDefault(f.Height, render.DefaultTerminalHeight))
	}
	if err := chart.Paint(grid); err != nil {
		return err
	}
	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, grid.View())
	return err
}

func (f ChartFlags) writeSVG(w io.Writer, chart *charts.BarChart, title string) error {
	width, height := f.imageSize()
	doc := render.NewSVG(w, width, height)
	doc.Background(white)
	if title != "" {
		doc.Title(title)
	}
	if err := chart.Paint(doc); err != nil {
		return err
	}
	return doc.Close()
}

func (f ChartFlags) writePNG(w io.Writer, chart *charts.BarChart) error {
	width, height := f.imageSize()
	img := render.NewPNG(width, height)
	img.Background(white)
	if err := chart.Paint(img); err != nil {
		return err
	}
	return img.Encode(w)
}

func (f ChartFlags) writeLayout(w io.Writer, chart *charts.BarChart) error {
	width, height := f.imageSize()
	if err := chart.SetSize(float64(width), float64(height)); err != nil {
		return err
	}
	bars, err := chart.Layout()
	if err != nil {
		return err
	}

	var out []byte
	if f.Output == OutputYAML {
		out, err = toYAML(bars)
	} else {
		out, err = toJSON(bars)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

type layoutRecord struct {
	Label  string  `json:"label" yaml:"label"`
	Value  float64 `json:"value" yaml:"value"`
	Fill   string  `json:"fill" yaml:"fill"`
	Stroke string  `json:"stroke" yaml:"stroke"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

func massageLayout(bars []charts.Bar) []layoutRecord {
	data := make([]layoutRecord, 0, len(bars))
	for _, bar := range bars {
		data = append(data, layoutRecord{
			Label:  bar.Entry.Label(),
			Value:  bar.Entry.Value(),
			Fill:   bar.Entry.FillStyle().String(),
			Stroke: bar.Entry.StrokeStyle().String(),
			X:      bar.Rect.X,
			Y:      bar.Rect.Y,
			Width:  bar.Rect.Width,
			Height: bar.Rect.Height,
		})
	}
	return data
}

func toJSON(bars []charts.Bar) ([]byte, error) {
	return json.MarshalIndent(massageLayout(bars), "", "  ")
}

func toYAML(bars []charts.Bar) ([]byte, error) {
	return yaml.Marshal(massageLayout(bars))
}
