// Package httpclient builds the outbound HTTP client used for provider calls.
package httpclient

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/pkg/metrics"
	"github.com/Ramsey-B/rose/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds HTTP client configuration
type Config struct {
	// Zero means no client-side timeout; the request context still applies.
	Timeout            time.Duration
	MaxIdleConns       int
	IdleConnTimeout    time.Duration
	DisableCompression bool
}

// DefaultConfig returns default HTTP client configuration
func DefaultConfig() Config {
	return Config{
		MaxIdleConns:    100,
		IdleConnTimeout: 90 * time.Second,
	}
}

// Transport records a span, a log line and Prometheus metrics for every outbound request.
type Transport struct {
	next   http.RoundTripper
	logger ectologger.Logger
}

func NewTransport(next http.RoundTripper, logger ectologger.Logger) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{next: next, logger: logger}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, span := tracing.StartSpan(req.Context(), "HTTP "+req.Method,
		attribute.String("http.method", req.Method),
		attribute.String("http.host", req.URL.Host),
		attribute.String("http.path", req.URL.Path),
	)
	defer span.End()

	start := time.Now()
	resp, err := t.next.RoundTrip(req.WithContext(ctx))
	duration := time.Since(start)

	if err != nil {
		tracing.RecordError(span, err)
		metrics.RecordHTTPRequest(req.Method, "error", duration.Seconds())
		t.logger.WithContext(ctx).WithError(err).Errorf("HTTP request failed: %s %s", req.Method, req.URL.Redacted())
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	metrics.RecordHTTPRequest(req.Method, strconv.Itoa(resp.StatusCode), duration.Seconds())
	t.logger.WithContext(ctx).Debugf("HTTP %s %s -> %d (%s)", req.Method, req.URL.Redacted(), resp.StatusCode, duration)

	return resp, nil
}

// NewClient creates an *http.Client whose transport is instrumented.
func NewClient(cfg Config, logger ectologger.Logger) *http.Client {
	base := &http.Transport{
		Proxy:              http.ProxyFromEnvironment,
		MaxIdleConns:       cfg.MaxIdleConns,
		IdleConnTimeout:    cfg.IdleConnTimeout,
		DisableCompression: cfg.DisableCompression,
		ForceAttemptHTTP2:  true,
	}

	return &http.Client{
		Transport: NewTransport(base, logger),
		Timeout:   cfg.Timeout,
	}
}
