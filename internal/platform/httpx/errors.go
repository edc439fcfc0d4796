// Package httpx provides the outbound HTTP layer for the upstream tracker
// service: a tuned http.Client, a fetcher with timeout enforcement and
// classification-aware retry, and the error taxonomy shared by callers.
package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed fetch attempt. ClientError is terminal;
// the other kinds are worth retrying.
type ErrorKind int

const (
	KindNetworkError ErrorKind = iota
	KindTimeout
	KindClientError
	KindServerError
)

// String returns a short human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindClientError:
		return "client_error"
	case KindServerError:
		return "server_error"
	default:
		return "network_error"
	}
}

// FetchError is the failure type returned by the fetcher after its retry
// budget is spent. Status is zero when no HTTP response was received.
type FetchError struct {
	Kind   ErrorKind
	Status int
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("fetch %s: %s (http %d)", e.URL, e.Kind, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Kind)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Retryable reports whether another attempt could reasonably succeed.
func (e *FetchError) Retryable() bool { return e.Kind != KindClientError }

// classify converts a transport error or HTTP status into a FetchError.
func classify(url string, status int, err error) *FetchError {
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &FetchError{Kind: KindTimeout, URL: url, Err: err}
		}
		return &FetchError{Kind: KindNetworkError, URL: url, Err: err}
	}
	switch {
	case status >= http.StatusInternalServerError:
		return &FetchError{Kind: KindServerError, Status: status, URL: url}
	case status >= http.StatusBadRequest:
		return &FetchError{Kind: KindClientError, Status: status, URL: url}
	}
	return nil
}
