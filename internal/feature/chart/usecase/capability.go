// Package usecase implements the chart capability manager: a small state
// machine that decides between live candle rendering and a tabular
// fallback, and contains every render failure inside its own boundary.
package usecase

import (
	candleentity "github.com/dahldoescards/bowman-tracker/internal/feature/candles/domain/entity"
)

// Capability is the injected charting engine surface. Making the probe an
// explicit method turns the fallback path into a first-class, testable
// branch instead of an accident of a missing symbol.
// Following Go convention the interfaces are defined on the consumer side.
type Capability interface {
	// Available reports whether the engine can be used at all.
	Available() bool
	// CreateChart constructs a chart instance.
	CreateChart(opts ChartOptions) (Chart, error)
}

// Chart is a live chart handle.
type Chart interface {
	AddSeries(opts SeriesOptions) (Series, error)
	RemoveSeries(s Series) error
	// FitContent adjusts the visible time range to the loaded data.
	FitContent() error
}

// Series is a single candlestick track on a chart.
type Series interface {
	SetData(candles []candleentity.Candle) error
}

// ChartOptions configures chart construction.
type ChartOptions struct {
	Width  int
	Height int
}

// SeriesOptions configures one candlestick series.
type SeriesOptions struct {
	Title     string
	UpColor   string
	DownColor string
}
