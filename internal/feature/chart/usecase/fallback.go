package usecase

import (
	"sort"

	salesentity "github.com/dahldoescards/bowman-tracker/internal/feature/sales/domain/entity"
)

// DefaultFallbackDays bounds the tabular fallback view regardless of how
// much history the upstream returns.
const DefaultFallbackDays = 10

// DailySummary is one row of the tabular fallback: aggregate statistics of
// the raw sale points (not the synthetic candles) for a single day.
type DailySummary struct {
	Date  string // YYYY-MM-DD
	Count int
	Mean  float64
	Min   float64
	Max   float64
}

// SummarizeDaily groups raw points per day and returns the rows most
// recent first, capped to maxDays. Points without a date key or with a
// non-positive price are skipped.
func SummarizeDaily(points []salesentity.SalePoint, maxDays int) []DailySummary {
	if maxDays <= 0 {
		maxDays = DefaultFallbackDays
	}

	type bucket struct {
		count    int
		sum      float64
		min, max float64
	}
	buckets := make(map[string]*bucket)
	for _, p := range points {
		if p.DateKey == "" || p.Price <= 0 {
			continue
		}
		b, ok := buckets[p.DateKey]
		if !ok {
			buckets[p.DateKey] = &bucket{count: 1, sum: p.Price, min: p.Price, max: p.Price}
			continue
		}
		b.count++
		b.sum += p.Price
		if p.Price < b.min {
			b.min = p.Price
		}
		if p.Price > b.max {
			b.max = p.Price
		}
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	// YYYY-MM-DD sorts lexicographically; most recent first.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > maxDays {
		dates = dates[:maxDays]
	}

	rows := make([]DailySummary, 0, len(dates))
	for _, d := range dates {
		b := buckets[d]
		rows = append(rows, DailySummary{
			Date:  d,
			Count: b.count,
			Mean:  b.sum / float64(b.count),
			Min:   b.min,
			Max:   b.max,
		})
	}
	return rows
}
