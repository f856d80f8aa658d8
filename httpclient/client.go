// Package httpclient provides shared HTTP client constructors and retry
// support for the notion client and CLI.
package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
)

// Default configuration values.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultBackoff    = 1 * time.Second
	MaxBackoff        = 30 * time.Second
)

// RetryConfig controls retry behavior.
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     DefaultMaxRetries,
		InitialBackoff: DefaultBackoff,
		MaxBackoff:     MaxBackoff,
	}
}

// New creates an http.Client with pooled transport and the default timeout.
func New() *http.Client {
	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = DefaultTimeout
	return hc
}

// NewWithTimeout creates an http.Client with a custom timeout.
func NewWithTimeout(timeout time.Duration) *http.Client {
	hc := cleanhttp.DefaultPooledClient()
	hc.Timeout = timeout
	return hc
}

// NewRetryingTransport creates a round tripper that retries rate-limit and
// transient server failures with exponential backoff. It respects request
// context cancellation between attempts.
func NewRetryingTransport(config RetryConfig) http.RoundTripper {
	rc := retryablehttp.NewClient()
	rc.HTTPClient = New()
	rc.RetryMax = config.MaxRetries
	rc.RetryWaitMin = config.InitialBackoff
	rc.RetryWaitMax = config.MaxBackoff
	rc.Logger = nil
	rc.CheckRetry = checkRetry

	return &retryablehttp.RoundTripper{Client: rc}
}

// NewRetrying creates an http.Client with the retrying transport installed.
func NewRetrying(config RetryConfig) *http.Client {
	return &http.Client{
		Timeout:   DefaultTimeout,
		Transport: NewRetryingTransport(config),
	}
}

// checkRetry retries network errors, rate limiting (429), and the transient
// 5xx statuses. Auth and client errors are never retried.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return true, nil
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true, nil
	}

	return false, nil
}
