package prometheus

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gittymo/charaph/internal/dataset"
	"github.com/gittymo/charaph/internal/paint"
	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/prometheus/prometheus/promql/parser"
)

type prometheusClient struct {
	v1api v1.API
}

// Client runs instant queries, the only kind that maps onto one bar per series.
type Client interface {
	Query(query string, timeout time.Duration) (v1.Warnings, model.Vector, error)
}

func NewClient(url string) (Client, error) {
	client, err := api.NewClient(api.Config{
		Address: url,
	})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus client: %w", err)
	}
	v1api := v1.NewAPI(client)
	return &prometheusClient{v1api: v1api}, nil
}

func (c *prometheusClient) Query(query string, timeout time.Duration) (v1.Warnings, model.Vector, error) {
	var vector model.Vector
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	result, warnings, err := c.v1api.Query(ctx, query, time.Now(), v1.WithTimeout(timeout))
	if err != nil {
		return warnings, vector, err
	}

	switch result.Type() {
	case model.ValVector:
		v := result.(model.Vector)
		return warnings, v, nil
	case model.ValNone, model.ValScalar, model.ValMatrix, model.ValString:
		return warnings, vector, fmt.Errorf("unexpected result type: %s", result.Type())
	default:
		return warnings, vector, fmt.Errorf("unknown result type: %s", result.Type())
	}
}

// DataSetFromVector builds one entry per sample, labelled by its metric.
// Samples that cannot be charted are left out and their labels returned
// instead: NaN or infinite values, and series whose label matches an earlier
// one ignoring case.
func DataSetFromVector(vector model.Vector, seq *paint.HueSequence) (*dataset.DataSet, []string, error) {
	ds := dataset.New()
	var skipped []string
	for _, sample := range vector {
		label := sample.Metric.String()
		value := float64(sample.Value)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			skipped = append(skipped, label)
			continue
		}
		// label values are case-sensitive, entry labels are not
		if _, taken := ds.Get(label); taken {
			skipped = append(skipped, label)
			continue
		}
		e, err := dataset.NewEntry(label, value, seq)
		if err != nil {
			return nil, skipped, fmt.Errorf("sample %s: %w", label, err)
		}
		if err := ds.Add(e); err != nil {
			return nil, skipped, fmt.Errorf("sample %s: %w", label, err)
		}
	}
	return ds, skipped, nil
}

func FormatQuery(query string) string {
	ast, err := parser.ParseExpr(query)
	if err != nil {
		return query
	}
	return ast.Pretty(0)
}
