// Package usecase implements the asset cache proxy: static assets are
// served cache-first with background revalidation, so the frontend keeps
// loading when the network is gone.
package usecase

import (
	"context"
	"log/slog"
	"time"
)

// OfflineBody is the fail-soft payload synthesized for API reads that fail
// at the transport level while offline. Callers above this layer treat it
// exactly like a normal unsuccessful payload.
const OfflineBody = `{"success":false,"error":"offline"}`

// AssetEntry is one cached static asset.
type AssetEntry struct {
	Body        []byte
	ContentType string
}

// AssetStore is the versioned persistent cache behind the proxy.
// Following Go convention the interface is defined on the consumer side.
type AssetStore interface {
	Get(ctx context.Context, path string) (AssetEntry, bool)
	Put(ctx context.Context, path string, entry AssetEntry)
	// ActivateVersion purges every entry stored under a different cache
	// version than the current one.
	ActivateVersion(ctx context.Context) error
}

// Origin fetches an asset from the network.
type Origin interface {
	Fetch(ctx context.Context, path string) (AssetEntry, error)
}

// Proxy serves static assets cache-first with stale-while-revalidate
// semantics: a cached asset is returned immediately and refreshed in the
// background, and a miss falls through to the origin.
type Proxy struct {
	store             AssetStore
	origin            Origin
	revalidateTimeout time.Duration
}

// NewProxy creates a Proxy. revalidateTimeout bounds each background
// refresh; zero uses 30 seconds.
func NewProxy(store AssetStore, origin Origin, revalidateTimeout time.Duration) *Proxy {
	if revalidateTimeout <= 0 {
		revalidateTimeout = 30 * time.Second
	}
	return &Proxy{store: store, origin: origin, revalidateTimeout: revalidateTimeout}
}

// Activate purges entries left over from previous cache versions. Called
// once on startup.
func (p *Proxy) Activate(ctx context.Context) error {
	return p.store.ActivateVersion(ctx)
}

// ServeAsset returns the asset at path. A cache hit is returned at once
// and revalidated in the background; the revalidation never blocks or
// fails the response it accompanies. On a miss the origin is consulted
// and only successful responses are cached.
func (p *Proxy) ServeAsset(ctx context.Context, path string) (AssetEntry, error) {
	if entry, ok := p.store.Get(ctx, path); ok {
		go p.revalidate(path)
		return entry, nil
	}

	entry, err := p.origin.Fetch(ctx, path)
	if err != nil {
		return AssetEntry{}, err
	}
	p.store.Put(ctx, path, entry)
	return entry, nil
}

// revalidate re-fetches path and overwrites the cached copy. Runs in its
// own goroutine with a fresh context: the request that triggered it may
// already be finished.
func (p *Proxy) revalidate(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), p.revalidateTimeout)
	defer cancel()

	entry, err := p.origin.Fetch(ctx, path)
	if err != nil {
		slog.Debug("asset revalidation failed, keeping cached copy", "path", path, "error", err)
		return
	}
	p.store.Put(ctx, path, entry)
}
