package instrumentation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys
const (
	attrMethod = "method"
	attrRoute  = "route"
	attrStatus = "status"
	attrKind   = "kind"
	attrResult = "result"
)

// Metrics provides methods for recording observability metrics.
// The zero value is usable and records nothing.
type Metrics struct {
	apiRequestsTotal   metric.Int64Counter
	apiRequestDuration metric.Float64Histogram

	clusterFetchesTotal metric.Int64Counter
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.apiRequestsTotal, err = meter.Int64Counter(
		"api_requests_total",
		metric.WithDescription("Total number of control-plane API requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create api_requests_total counter: %w", err)
	}

	m.apiRequestDuration, err = meter.Float64Histogram(
		"api_request_duration_seconds",
		metric.WithDescription("Control-plane API request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create api_request_duration_seconds histogram: %w", err)
	}

	m.clusterFetchesTotal, err = meter.Int64Counter(
		"aggregation_cluster_fetches_total",
		metric.WithDescription("Per-cluster collection fetches made while aggregating"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create aggregation_cluster_fetches_total counter: %w", err)
	}

	return m, nil
}

// RecordAPIRequest records one API round trip. route must already be
// normalized with NormalizeRoute. A statusCode of 0 means the request never
// produced a response.
func (m *Metrics) RecordAPIRequest(ctx context.Context, method, route string, statusCode int, duration time.Duration) {
	if m == nil || m.apiRequestsTotal == nil || m.apiRequestDuration == nil {
		return
	}

	status := StatusError
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}

	attrs := metric.WithAttributes(
		attribute.String(attrMethod, method),
		attribute.String(attrRoute, route),
		attribute.String(attrStatus, status),
	)

	m.apiRequestsTotal.Add(ctx, 1, attrs)
	m.apiRequestDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordClusterFetch records the outcome of fetching one kind's collection
// from one cluster. result is StatusSuccess, StatusEmpty or StatusError.
func (m *Metrics) RecordClusterFetch(ctx context.Context, kind, result string) {
	if m == nil || m.clusterFetchesTotal == nil {
		return
	}

	m.clusterFetchesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrKind, kind),
		attribute.String(attrResult, result),
	))
}
