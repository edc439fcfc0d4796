package httpx

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client configured for upstream API calls.
//
// Settings:
//   - Proxy: taken from the environment (HTTP_PROXY etc.) when set
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - Dialer.KeepAlive: how long reusable TCP connections are kept
//   - MaxIdleConns: 100 to avoid exhaustion under load
//   - IdleConnTimeout: how long idle connections are kept
//   - TLSHandshakeTimeout: upper bound on the HTTPS handshake
//
// Note: http.DefaultClient has no timeout, so always use a custom client.
// The overall request timeout is enforced per attempt with a context
// deadline by the Fetcher, not via Client.Timeout, so that a single
// client can serve attempts with different budgets.
func NewHTTPClient() *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Transport: t}
}
