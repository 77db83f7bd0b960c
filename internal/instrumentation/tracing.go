package instrumentation

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the tracer name used for all mmaictl spans.
const TracerName = "github.com/giantswarm/mmaictl"

// Span attribute keys.
const (
	// SpanAttrMethod is the HTTP method of an API call.
	SpanAttrMethod = "http.request.method"

	// SpanAttrRoute is the normalized API route.
	SpanAttrRoute = "mmai.route"

	// SpanAttrStatusCode is the HTTP response status code.
	SpanAttrStatusCode = "http.response.status_code"

	// SpanAttrRequestID is the X-Request-Id sent with the call.
	SpanAttrRequestID = "mmai.request_id"

	// SpanAttrKind is the resource kind being aggregated.
	SpanAttrKind = "mmai.kind"

	// SpanAttrCluster is the cluster selector, empty for all clusters.
	SpanAttrCluster = "mmai.cluster"

	// SpanAttrItems is the number of items an operation produced.
	SpanAttrItems = "mmai.items"
)

// StartSpan starts a new span with the given name and attributes.
// The caller is responsible for ending the span with defer span.End().
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// StartAPISpan starts a client span for one control-plane API call.
func StartAPISpan(ctx context.Context, method, route string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := make([]attribute.KeyValue, 0, len(attrs)+2)
	allAttrs = append(allAttrs,
		attribute.String(SpanAttrMethod, method),
		attribute.String(SpanAttrRoute, route),
	)
	allAttrs = append(allAttrs, attrs...)

	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, "api."+method,
		trace.WithAttributes(allAttrs...),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

// StartAggregateSpan starts a span covering one aggregated listing.
func StartAggregateSpan(ctx context.Context, kind, cluster string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, "aggregate."+kind,
		trace.WithAttributes(
			attribute.String(SpanAttrKind, kind),
			attribute.String(SpanAttrCluster, cluster),
		),
	)
}

// SetSpanError records an error on the span and sets the status to error.
func SetSpanError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// SetSpanSuccess sets the span status to OK.
func SetSpanSuccess(span trace.Span) {
	span.SetStatus(codes.Ok, "")
}

// GetTraceID returns the trace ID from the current span in context.
// Returns empty string if no valid span is present.
func GetTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		return span.SpanContext().TraceID().String()
	}
	return ""
}
