package commands

import (
	"fmt"

	"github.com/gittymo/charaph/internal/dataset"
	"github.com/gittymo/charaph/internal/paint"
	"github.com/gittymo/charaph/internal/prometheus"
	"go.uber.org/zap"
)

type QueryCmd struct {
	PrometheusURL string `help:"URL of the Prometheus endpoint." short:"p" env:"CHARAPH_PROMETHEUS_URL" name:"prometheus-url"`
	Query         string `arg:"" name:"query" help:"Query to run." required:"true"`

	ChartFlags `embed:""`
}

func (q *QueryCmd) Run(ctx *Context) error {
	client, err := prometheus.NewClient(q.PrometheusURL)
	if err != nil {
		return err
	}
	return q.run(ctx, client)
}

func (q *QueryCmd) run(ctx *Context, client prometheus.Client) error {
	ds, err := queryDataSet(ctx, client, q.Query, nil)
	if err != nil {
		return err
	}
	return q.ChartFlags.write(ctx, ds, q.Query)
}

// queryDataSet runs an instant query and turns each sample into an entry.
func queryDataSet(ctx *Context, client prometheus.Client, query string, seq *paint.HueSequence) (*dataset.DataSet, error) {
	log := ctx.logger()
	log.Debug("running query", zap.String("query", prometheus.FormatQuery(query)), zap.Duration("timeout", ctx.Timeout))

	warnings, vector, err := client.Query(query, ctx.Timeout)
	if err != nil {
		return nil, fmt.Errorf("querying prometheus: %w", err)
	}
	for _, w := range warnings {
		log.Warn("prometheus returned a warning", zap.String("warning", w))
	}

	ds, skipped, err := prometheus.DataSetFromVector(vector, seq)
	if err != nil {
		return nil, err
	}
	for _, series := range skipped {
		log.Warn("skipping sample that cannot be charted", zap.String("series", series))
	}
	log.Debug("query returned", zap.Int("samples", len(vector)), zap.Int("entries", ds.Len()))
	return ds, nil
}
