// Package entity defines the domain models for the candles feature.
package entity

import salesentity "github.com/dahldoescards/bowman-tracker/internal/feature/sales/domain/entity"

// Candle is a synthetic OHLC record derived from a single sale price.
// Time is in epoch seconds and strictly increasing within a series. The
// high/low spread is cosmetic only; the sale price is both real endpoints.
type Candle struct {
	Time  int64 // synthetic time, epoch seconds
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Series is the ordered candle sequence for one variant. Series are
// rebuilt wholesale on every refresh, never patched incrementally.
type Series struct {
	Variant salesentity.Variant
	Candles []Candle
}
