package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dahldoescards/bowman-tracker/internal/feature/assets/usecase"
)

// maxAssetBytes bounds how much of an origin response is read into memory.
const maxAssetBytes = 16 << 20

// HTTPOrigin fetches assets from the frontend origin over HTTP.
type HTTPOrigin struct {
	baseURL string
	client  *http.Client
}

var _ usecase.Origin = (*HTTPOrigin)(nil)

// NewHTTPOrigin creates an origin rooted at baseURL. If client is nil,
// http.DefaultClient is used.
func NewHTTPOrigin(baseURL string, client *http.Client) *HTTPOrigin {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPOrigin{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Fetch retrieves the asset at path from the origin. Non-2xx statuses are
// errors so that failed responses never enter the cache.
func (o *HTTPOrigin) Fetch(ctx context.Context, path string) (usecase.AssetEntry, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+path, nil)
	if err != nil {
		return usecase.AssetEntry{}, fmt.Errorf("build origin request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return usecase.AssetEntry{}, fmt.Errorf("fetch origin asset %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return usecase.AssetEntry{}, fmt.Errorf("origin returned status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
	if err != nil {
		return usecase.AssetEntry{}, fmt.Errorf("read origin asset %s: %w", path, err)
	}

	return usecase.AssetEntry{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
