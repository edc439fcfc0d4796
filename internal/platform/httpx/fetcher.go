package httpx

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultAttemptTimeout bounds a single network attempt.
	DefaultAttemptTimeout = 10 * time.Second
	// DefaultMaxRetries is the number of retries after the first attempt.
	DefaultMaxRetries = 2
	// DefaultBaseDelay is the base for the exponential inter-attempt delay.
	DefaultBaseDelay = 500 * time.Millisecond
)

// RateLimiter throttles outbound attempts. Following Go convention the
// interface is defined on the consumer side.
type RateLimiter interface {
	WaitIfNeeded()
}

// Config holds the retry and timeout policy for a Fetcher.
type Config struct {
	AttemptTimeout time.Duration // per-attempt budget, independent of retries
	MaxRetries     int           // retries after the first attempt
	BaseDelay      time.Duration // backoff base: BaseDelay * 2^attempt
}

// withDefaults fills zero fields with the package defaults. A negative
// MaxRetries means "no retries" and is kept as zero.
func (c Config) withDefaults() Config {
	if c.AttemptTimeout <= 0 {
		c.AttemptTimeout = DefaultAttemptTimeout
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	} else if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = DefaultBaseDelay
	}
	return c
}

// Fetcher performs GET requests against the upstream service with a hard
// per-attempt timeout and a bounded, sequential retry loop. Client errors
// (4xx) terminate the loop immediately; server errors, network failures and
// timeouts are retried with exponential backoff.
type Fetcher struct {
	client  *http.Client
	cfg     Config
	limiter RateLimiter
}

// NewFetcher creates a Fetcher. limiter may be nil.
func NewFetcher(client *http.Client, cfg Config, limiter RateLimiter) *Fetcher {
	if client == nil {
		client = NewHTTPClient()
	}
	return &Fetcher{client: client, cfg: cfg.withDefaults(), limiter: limiter}
}

// Get fetches url, retrying retryable failures up to MaxRetries times.
// On exhaustion the last observed *FetchError is returned. Retries are
// strictly sequential; between attempt n and n+1 the fetcher waits
// BaseDelay * 2^n.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	var last *FetchError
	for attempt := 0; attempt <= f.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := f.cfg.BaseDelay * (1 << (attempt - 1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, classify(url, 0, ctx.Err())
			}
			slog.Debug("retrying fetch", "url", url, "attempt", attempt, "kind", last.Kind.String())
		}
		body, ferr := f.attempt(ctx, http.MethodGet, url, nil)
		if ferr == nil {
			return body, nil
		}
		last = ferr
		if !ferr.Retryable() {
			break
		}
	}
	return nil, last
}

// Do issues a single attempt with the given method and JSON body and no
// retry. Administrative writes are not idempotent, so the retry policy of
// Get deliberately does not apply to them.
func (f *Fetcher) Do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	b, ferr := f.attempt(ctx, method, url, body)
	if ferr != nil {
		return nil, ferr
	}
	return b, nil
}

// attempt performs one round trip. The context deadline covers the whole
// attempt including body read; cancellation closes the underlying
// connection so an abandoned request does not leak a socket.
func (f *Fetcher) attempt(ctx context.Context, method, url string, body []byte) ([]byte, *FetchError) {
	if f.limiter != nil {
		f.limiter.WaitIfNeeded()
	}

	ctx, cancel := context.WithTimeout(ctx, f.cfg.AttemptTimeout)
	defer cancel()

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return nil, &FetchError{Kind: KindNetworkError, URL: url, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, classify(url, 0, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if ferr := classify(url, res.StatusCode, nil); ferr != nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return nil, ferr
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, classify(url, 0, err)
	}
	return b, nil
}
