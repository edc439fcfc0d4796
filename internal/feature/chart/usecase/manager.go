package usecase

import (
	"log/slog"
	"sync"

	candleentity "github.com/dahldoescards/bowman-tracker/internal/feature/candles/domain/entity"
	salesentity "github.com/dahldoescards/bowman-tracker/internal/feature/sales/domain/entity"
)

// RenderState is the manager's position in its lifecycle.
type RenderState int

const (
	StateUninitialized RenderState = iota
	StateLive
	StateFallback
)

// String returns a short name for the state.
func (s RenderState) String() string {
	switch s {
	case StateLive:
		return "live"
	case StateFallback:
		return "fallback"
	default:
		return "uninitialized"
	}
}

// Manager owns the render state for one session. Once a render failure
// demotes it to fallback it stays there; a fresh session starts from
// Uninitialized again. The manager never propagates a render failure to
// its caller: the data must stay visible even when the charting engine
// misbehaves.
type Manager struct {
	capability   Capability
	chartOpts    ChartOptions
	fallbackDays int

	mu      sync.Mutex
	state   RenderState
	chart   Chart
	handles []Series
	rows    []DailySummary
}

// NewManager creates a Manager around an injected capability. capability
// may be nil, which is treated the same as an unavailable engine.
func NewManager(capability Capability, chartOpts ChartOptions, fallbackDays int) *Manager {
	if fallbackDays <= 0 {
		fallbackDays = DefaultFallbackDays
	}
	return &Manager{
		capability:   capability,
		chartOpts:    chartOpts,
		fallbackDays: fallbackDays,
		state:        StateUninitialized,
	}
}

// Init probes the capability and constructs the chart instance. An absent
// capability or a construction failure moves the manager straight to
// fallback; no chart handle method is ever called in that case.
func (m *Manager) Init() RenderState {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.capability == nil || !m.capability.Available() {
		slog.Info("charting capability unavailable, using tabular fallback")
		m.state = StateFallback
		return m.state
	}

	chart, err := m.capability.CreateChart(m.chartOpts)
	if err != nil {
		m.demote(&RenderError{Op: "CreateChart", Err: err})
		return m.state
	}
	m.chart = chart
	m.state = StateLive
	return m.state
}

// Update replaces the rendered data wholesale. While live it re-attaches
// one series per non-empty variant and fits the view; any render failure
// demotes to fallback for the rest of the session. While in fallback the
// raw points are summarized into the bounded tabular view instead.
func (m *Manager) Update(series []candleentity.Series, raw []salesentity.SalePoint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateLive {
		if err := m.renderLive(series); err != nil {
			m.demote(err)
		}
	}
	if m.state == StateFallback {
		m.rows = SummarizeDaily(raw, m.fallbackDays)
	}
}

// State returns the current render state.
func (m *Manager) State() RenderState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// FallbackRows returns the current tabular fallback view. Empty unless the
// manager is in fallback and has seen data.
func (m *Manager) FallbackRows() []DailySummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := make([]DailySummary, len(m.rows))
	copy(rows, m.rows)
	return rows
}

// renderLive clears the previous series handles, attaches the new ones and
// fits the view. Called with the lock held.
func (m *Manager) renderLive(series []candleentity.Series) error {
	for _, h := range m.handles {
		if err := m.chart.RemoveSeries(h); err != nil {
			return &RenderError{Op: "RemoveSeries", Err: err}
		}
	}
	m.handles = nil

	for _, s := range series {
		if len(s.Candles) == 0 {
			continue
		}
		h, err := m.chart.AddSeries(SeriesOptions{Title: string(s.Variant)})
		if err != nil {
			return &RenderError{Op: "AddSeries", Err: err}
		}
		if err := h.SetData(s.Candles); err != nil {
			return &RenderError{Op: "SetData", Err: err}
		}
		m.handles = append(m.handles, h)
	}

	if err := m.chart.FitContent(); err != nil {
		return &RenderError{Op: "FitContent", Err: err}
	}
	return nil
}

// demote moves to fallback for the remainder of the session. Called with
// the lock held.
func (m *Manager) demote(err error) {
	slog.Warn("chart rendering failed, demoting to tabular fallback", "error", err)
	m.state = StateFallback
	m.chart = nil
	m.handles = nil
}
