package commands

import (
	"unicode/utf8"

	"github.com/gittymo/charaph/internal/charts"
	"github.com/gittymo/charaph/internal/dataset"
)

// Output formats.
const (
	OutputTerm = "term"
	OutputSVG  = "svg"
	OutputPNG  = "png"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Sort orders.
const (
	SortNone  = "none"
	SortValue = "value"
	SortLabel = "label"
)

// ChartFlags are the chart and output flags shared by render and query.
type ChartFlags struct {
	Width        int     `help:"Chart width, in pixels or terminal cells. 0 picks a default." default:"0"`
	Height       int     `help:"Chart height, in pixels or terminal cells. 0 picks a default." default:"0"`
	Horizontal   bool    `help:"Draw bars left to right."`
	NoLabels     bool    `name:"no-labels" help:"Hide entry labels."`
	Padding      float64 `help:"Padding around the plot area. Negative picks 8 for images and 1 in the terminal." default:"-1"`
	BarThickness float64 `name:"bar-thickness" help:"Share of half a section a bar spans, in (0,1]." default:"0.8"`
	Sort         string  `help:"Entry order." default:"none" enum:"none,value,label"`
	Desc         bool    `help:"Sort in descending order."`
	Output       string  `name:"output" short:"o" help:"Output format." default:"term" enum:"term,svg,png,json,yaml"`
	Out          string  `help:"Write output to this file instead of stdout." type:"path"`
}

func (f ChartFlags) sort(ds *dataset.DataSet) {
	switch f.Sort {
	case SortValue:
		ds.SortByValue(!f.Desc)
	case SortLabel:
		ds.SortByLabel(!f.Desc)
	}
}

func (f ChartFlags) options(ds *dataset.DataSet) []charts.Option {
	opts := []charts.Option{
		charts.WithBarThickness(f.BarThickness),
		charts.WithLabels(!f.NoLabels),
	}
	if f.Horizontal {
		opts = append(opts, charts.WithHorizontalBars())
	}

	padding := f.Padding
	if f.Output == OutputTerm {
		if padding < 0 {
			padding = 1
		}
		opts = append(opts,
			charts.WithLabelHeight(1),
			charts.WithLabelWidth(float64(terminalLabelWidth(ds))),
		)
	} else if padding < 0 {
		padding = charts.DefaultPadding
	}
	return append(opts, charts.WithPadding(padding))
}

// imageSize is the size for every output but term, where 0 means detect.
func (f ChartFlags) imageSize() (int, int) {
	return orDefault(f.Width, DefaultImageWidth), orDefault(f.Height, DefaultImageHeight)
}

// orDefault treats zero and negative sizes as unset.
func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func terminalLabelWidth(ds *dataset.DataSet) int {
	longest := 0
	for _, e := range ds.Entries() {
		longest = max(longest, utf8.RuneCountInString(e.Label()))
	}
	return min(longest+1, MaxTerminalLabelWidth)
}
