// Package http serves the documentation site over HTTP and retrieves
// documents and pages from remote origins.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docsite"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements docsite.Fetcher at compile time.
var _ docsite.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves content from URLs using HTTP GET requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit caps requests at rps per second. Zero or negative rps
// disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithClient replaces the HTTP client. The timeout option is ignored.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the body of url. Any status other than 200 is an error
// naming the status: ENOTFOUND for 404 and 410, EUNAVAILABLE for 429 and
// server errors, EINVALID for other client errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", docsite.Errorf(statusCode(resp.StatusCode), "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// statusCode maps an unexpected HTTP status to an error code.
func statusCode(status int) string {
	switch {
	case status == http.StatusNotFound || status == http.StatusGone:
		return docsite.ENOTFOUND
	case status == http.StatusTooManyRequests || status >= 500:
		return docsite.EUNAVAILABLE
	case status >= 400:
		return docsite.EINVALID
	}
	return docsite.EINTERNAL
}
