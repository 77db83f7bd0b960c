package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/oauth2"

	"github.com/giantswarm/mmaictl/internal/instrumentation"
	"github.com/giantswarm/mmaictl/internal/logging"
	"github.com/giantswarm/mmaictl/internal/record"
)

// HeaderRequestID carries a per-call uuid so server logs can be correlated
// with --verbose client output.
const HeaderRequestID = "X-Request-Id"

// Client issues requests against the control-plane REST API. Every method
// blocks until the response is read; no retries are attempted.
type Client struct {
	rc      *resty.Client
	logger  *slog.Logger
	metrics *instrumentation.Metrics
}

type options struct {
	token      string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *instrumentation.Metrics
	userAgent  string
}

// Option configures a Client.
type Option func(*options)

// WithToken sends token as a bearer credential on every request.
// An empty token sends no Authorization header.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithHTTPClient sets the underlying HTTP client. The bearer transport, if
// any, wraps its transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithLogger sets the logger used for request tracing at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics records request counts and latencies.
func WithMetrics(m *instrumentation.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// New returns a Client for baseURL. A trailing slash on baseURL is ignored.
func New(baseURL string, opts ...Option) *Client {
	o := options{httpClient: &http.Client{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}

	hc := o.httpClient
	if o.token != "" {
		hc = &http.Client{
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.token}),
				Base:   hc.Transport,
			},
			Timeout:       hc.Timeout,
			CheckRedirect: hc.CheckRedirect,
			Jar:           hc.Jar,
		}
	}

	rc := resty.NewWithClient(hc).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if o.userAgent != "" {
		rc.SetHeader("User-Agent", o.userAgent)
	}

	o.logger.Debug("api client configured",
		logging.Host(baseURL),
		slog.String("token", logging.SanitizeToken(o.token)))

	return &Client{rc: rc, logger: o.logger, metrics: o.metrics}
}

// Get fetches path and decodes the JSON response.
func (c *Client) Get(ctx context.Context, path string) (record.Value, error) {
	return c.doJSON(ctx, http.MethodGet, path, record.Missing())
}

// Post sends body as JSON to path and decodes the response.
func (c *Client) Post(ctx context.Context, path string, body record.Value) (record.Value, error) {
	return c.doJSON(ctx, http.MethodPost, path, body)
}

// Put sends body as JSON to path and decodes the response. A Missing body
// sends a request without payload.
func (c *Client) Put(ctx context.Context, path string, body record.Value) (record.Value, error) {
	return c.doJSON(ctx, http.MethodPut, path, body)
}

// Delete removes the resource at path. Only 204 No Content counts as
// success; any other 2xx returns ErrDeleteNotConfirmed.
func (c *Client) Delete(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodDelete, path, record.Missing())
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("%w: DELETE %s returned %d", ErrDeleteNotConfirmed, path, resp.StatusCode())
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body record.Value) (record.Value, error) {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return record.Missing(), err
	}
	v, err := record.Parse(resp.Body())
	if err != nil {
		return record.Missing(), fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
	}
	return v, nil
}

func (c *Client) do(ctx context.Context, method, path string, body record.Value) (*resty.Response, error) {
	route := instrumentation.NormalizeRoute(path)
	requestID := uuid.NewString()

	ctx, span := instrumentation.StartAPISpan(ctx, method, route,
		attribute.String(instrumentation.SpanAttrRequestID, requestID))
	defer span.End()

	req := c.rc.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID)
	if !body.IsMissing() {
		data, err := body.MarshalJSON()
		if err != nil {
			instrumentation.SetSpanError(span, err)
			return nil, fmt.Errorf("%s %s: failed to encode request body: %w", method, path, err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(data)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode()
	}
	c.metrics.RecordAPIRequest(ctx, method, route, status, elapsed)

	log := c.logger.With(
		logging.Method(method),
		logging.Path(path),
		logging.RequestID(requestID),
		logging.Duration(elapsed))

	if err != nil {
		log.Debug("api request failed", logging.SanitizedErr(err))
		instrumentation.SetSpanError(span, err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	span.SetAttributes(attribute.Int(instrumentation.SpanAttrStatusCode, status))
	log.Debug("api request completed", logging.StatusCode(status))

	if status < 200 || status > 299 {
		statusErr := newStatusError(method, path, status, resp.Body())
		instrumentation.SetSpanError(span, statusErr)
		return nil, statusErr
	}

	instrumentation.SetSpanSuccess(span)
	return resp, nil
}
