// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/dahldoescards/bowman-tracker/internal/feature/sales/adapters/trackerapi"
	"github.com/dahldoescards/bowman-tracker/internal/platform/cache"
	"github.com/dahldoescards/bowman-tracker/internal/platform/config"
	"github.com/dahldoescards/bowman-tracker/internal/platform/httpx"
	"github.com/dahldoescards/bowman-tracker/internal/shared/ratelimiter"
)

// NewFetcher creates the shared backoff fetcher, rate limited to what the
// upstream tracker tolerates.
func NewFetcher(cfg config.TrackerConfig) *httpx.Fetcher {
	var rl httpx.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		rl = ratelimiter.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	}
	return httpx.NewFetcher(httpx.NewHTTPClient(), httpx.Config{}, rl)
}

// NewTrackerRepository creates the upstream API client behind the shared
// response cache.
func NewTrackerRepository(cfg config.TrackerConfig, fetcher *httpx.Fetcher) *trackerapi.Repository {
	respCache := cache.New(fetcher, cfg.SummaryTTL)
	return trackerapi.NewRepository(trackerapi.Config{
		BaseURL:    cfg.APIBaseURL,
		SummaryTTL: cfg.SummaryTTL,
		ChartTTL:   cfg.ChartTTL,
		StartDate:  cfg.StartDate,
	}, respCache, fetcher)
}
