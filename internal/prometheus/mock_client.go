package prometheus

import (
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

// MockClient is a Client for tests. It records every query; QueryFunc answers
// them when set, otherwise the canned Warnings and Vector are returned.
type MockClient struct {
	QueryFunc func(query string, timeout time.Duration) (v1.Warnings, model.Vector, error)

	Warnings v1.Warnings
	Vector   model.Vector

	Queries []string
}

func (m *MockClient) Query(query string, timeout time.Duration) (v1.Warnings, model.Vector, error) {
	m.Queries = append(m.Queries, query)
	if m.QueryFunc != nil {
		return m.QueryFunc(query, timeout)
	}
	return m.Warnings, m.Vector, nil
}
