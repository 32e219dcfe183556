package commands

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gittymo/charaph/internal/dataset"
	"github.com/gittymo/charaph/internal/paint"
	"github.com/gittymo/charaph/internal/prometheus"
	"github.com/gittymo/charaph/internal/tui"
	"go.uber.org/zap"
)

var errNoSource = errors.New("view needs an input file or --query")

// ViewCmd is the Kong command for the interactive viewer.
type ViewCmd struct {
	Input         string `arg:"" optional:"" name:"input" help:"YAML or JSON data set file."`
	Query         string `name:"query" short:"q" help:"Chart an instant query instead of a file."`
	PrometheusURL string `help:"URL of the Prometheus endpoint." short:"p" env:"CHARAPH_PROMETHEUS_URL" name:"prometheus-url"`
}

// Run starts the interactive viewer.
func (v *ViewCmd) Run(ctx *Context) error {
	source, load, err := v.loader(ctx)
	if err != nil {
		return err
	}

	model := tui.New(source, load)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()
	return err
}

// loader picks the data source. Every load rewinds the hue sequence so a
// reload keeps its colors; the viewer never runs two loads at once.
func (v *ViewCmd) loader(ctx *Context) (string, tui.Loader, error) {
	seq := paint.NewHueSequence()
	switch {
	case v.Query != "":
		client, err := prometheus.NewClient(v.PrometheusURL)
		if err != nil {
			return "", nil, err
		}
		// log lines would tear the alternate screen
		quiet := &Context{Timeout: ctx.Timeout, Logger: zap.NewNop()}
		return v.Query, func() (*dataset.DataSet, error) {
			seq.Reset()
			return queryDataSet(quiet, client, v.Query, seq)
		}, nil
	case v.Input != "" && v.Input != "-":
		return v.Input, func() (*dataset.DataSet, error) {
			seq.Reset()
			ds, _, err := dataset.LoadFile(v.Input, seq)
			return ds, err
		}, nil
	default:
		return "", nil, errNoSource
	}
}
