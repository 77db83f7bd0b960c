// Package instrumentation provides opt-in OpenTelemetry instrumentation for
// mmaictl.
//
// # Metrics
//
//   - api_requests_total: Counter of control-plane API requests by method, route and status
//   - api_request_duration_seconds: Histogram of API request durations
//   - aggregation_cluster_fetches_total: Counter of per-cluster fetches by kind and result
//
// Route labels never carry cluster uids or resource names; see NormalizeRoute.
//
// # Tracing
//
// Every API call runs in a client span, and every aggregated listing in a
// parent span covering its per-cluster fetches.
//
// # Configuration
//
// Instrumentation is configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: false)
//   - METRICS_EXPORTER: prometheus, otlp, stdout, none (default: stdout)
//   - METRICS_TEXTFILE: Output file for the prometheus exporter (default: mmaictl.prom)
//   - TRACING_EXPORTER: otlp, stdout, none (default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 1.0)
//   - OTEL_SERVICE_NAME: Service name (default: mmaictl)
//
// # Example Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	provider.Metrics().RecordAPIRequest(ctx, "GET", instrumentation.NormalizeRoute(path), 200, time.Since(start))
package instrumentation
