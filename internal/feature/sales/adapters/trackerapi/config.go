// Package trackerapi provides the client for the tracker service API. All
// reads go through the response cache; administrative writes go straight
// to the fetcher and are never retried.
package trackerapi

import "time"

// Config holds the client-side settings for the tracker service API.
type Config struct {
	BaseURL    string        // e.g. "http://127.0.0.1:5000"
	SummaryTTL time.Duration // freshness window for the summary payload
	ChartTTL   time.Duration // freshness window for chart and sales payloads
	StartDate  string        // earliest sale date requested (YYYY-MM-DD)
}

// withDefaults fills zero fields with the values the original deployment
// used.
func (c Config) withDefaults() Config {
	if c.SummaryTTL <= 0 {
		c.SummaryTTL = 60 * time.Second
	}
	if c.ChartTTL <= 0 {
		c.ChartTTL = 30 * time.Second
	}
	if c.StartDate == "" {
		c.StartDate = "2025-11-01"
	}
	return c
}
