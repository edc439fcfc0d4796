package trackerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dahldoescards/bowman-tracker/internal/feature/sales/adapters/trackerapi/dto"
	"github.com/dahldoescards/bowman-tracker/internal/feature/sales/domain"
	"github.com/dahldoescards/bowman-tracker/internal/feature/sales/domain/entity"
	"github.com/dahldoescards/bowman-tracker/internal/platform/cache"
	"github.com/dahldoescards/bowman-tracker/internal/platform/httpx"
)

// MaxSalesLimit caps the number of sale rows requested per call, matching
// the service-side cap.
const MaxSalesLimit = 500

// Repository is the tracker service API client. Read methods are served
// through the injected response cache keyed by full request URL; cache
// misses reach the network via the cache's fetcher with its retry policy.
type Repository struct {
	cfg     Config
	cache   *cache.ResponseCache
	fetcher *httpx.Fetcher
}

// NewRepository creates a Repository over the shared response cache and
// fetcher.
func NewRepository(cfg Config, respCache *cache.ResponseCache, fetcher *httpx.Fetcher) *Repository {
	return &Repository{cfg: cfg.withDefaults(), cache: respCache, fetcher: fetcher}
}

// Summary fetches the per-variant aggregate statistics. bypass forces a
// network round trip even when a fresh cached payload exists.
func (r *Repository) Summary(ctx context.Context, bypass bool) (map[entity.Variant]entity.VariantSummary, error) {
	body, err := r.get(ctx, r.cfg.BaseURL+"/api/summary", r.cfg.SummaryTTL, bypass)
	if err != nil {
		return nil, err
	}

	var res dto.SummaryResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, &domain.DataShapeError{Endpoint: "summary", Reason: err.Error()}
	}
	if !res.Success {
		return nil, fmt.Errorf("summary: %w: %s", domain.ErrUnsuccessful, res.Error)
	}
	if res.Summary == nil {
		return nil, &domain.DataShapeError{Endpoint: "summary", Reason: "missing summary block"}
	}

	out := make(map[entity.Variant]entity.VariantSummary, len(res.Summary))
	for name, s := range res.Summary {
		v := entity.Variant(name)
		if !v.Valid() {
			slog.Debug("dropping summary for unknown variant", "variant", name)
			continue
		}
		out[v] = entity.VariantSummary{
			TotalSales:   s.TotalSales,
			AvgPrice:     s.AvgPrice,
			MinPrice:     s.MinPrice,
			MaxPrice:     s.MaxPrice,
			EarliestSale: s.EarliestSale,
			LatestSale:   s.LatestSale,
			CasesSold:    s.CasesSold,
			BoxesSold:    s.BoxesSold,
			TotalBoxes:   s.TotalBoxes,
		}
	}
	return out, nil
}

// ChartPoints fetches the raw sale points for one variant ("all" for every
// variant) starting at the configured start date. Points failing shape
// validation are dropped, not surfaced as errors.
func (r *Repository) ChartPoints(ctx context.Context, variant string, bypass bool) ([]entity.SalePoint, error) {
	q := url.Values{}
	q.Set("start_date", r.cfg.StartDate)
	u := fmt.Sprintf("%s/api/chart/%s?%s", r.cfg.BaseURL, url.PathEscape(variant), q.Encode())

	body, err := r.get(ctx, u, r.cfg.ChartTTL, bypass)
	if err != nil {
		return nil, err
	}

	var res dto.ChartResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, &domain.DataShapeError{Endpoint: "chart", Reason: err.Error()}
	}
	if !res.Success {
		return nil, fmt.Errorf("chart %s: %w: %s", variant, domain.ErrUnsuccessful, res.Error)
	}
	if res.DataPoints == nil {
		return nil, &domain.DataShapeError{Endpoint: "chart", Reason: "missing data_points"}
	}

	points := make([]entity.SalePoint, 0, len(res.DataPoints))
	for _, p := range res.DataPoints {
		v := entity.Variant(p.Variant)
		if p.X <= 0 || p.Y <= 0 || p.Date == "" || !v.Valid() {
			slog.Debug("dropping malformed chart point", "variant", p.Variant, "x", p.X, "y", p.Y)
			continue
		}
		points = append(points, entity.SalePoint{
			TimestampMillis: p.X,
			Price:           p.Y,
			Variant:         v,
			DateKey:         p.Date,
		})
	}
	return points, nil
}

// Sales fetches stored sale rows, optionally filtered by variant and date
// range. limit is capped at MaxSalesLimit.
func (r *Repository) Sales(ctx context.Context, variant, startDate, endDate string, limit int) ([]entity.SaleRecord, error) {
	if limit <= 0 || limit > MaxSalesLimit {
		limit = MaxSalesLimit
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if startDate != "" {
		q.Set("start_date", startDate)
	}
	if endDate != "" {
		q.Set("end_date", endDate)
	}
	u := r.cfg.BaseURL + "/api/sales"
	if variant != "" && variant != "all" {
		u += "/" + url.PathEscape(variant)
	}
	u += "?" + q.Encode()

	body, err := r.get(ctx, u, r.cfg.ChartTTL, false)
	if err != nil {
		return nil, err
	}

	var res dto.SalesResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, &domain.DataShapeError{Endpoint: "sales", Reason: err.Error()}
	}
	if !res.Success {
		return nil, fmt.Errorf("sales: %w: %s", domain.ErrUnsuccessful, res.Error)
	}

	out := make([]entity.SaleRecord, 0, len(res.Sales))
	for _, s := range res.Sales {
		out = append(out, entity.SaleRecord{
			UniqueID:      s.UniqueID,
			Source:        s.Source,
			SourceURL:     s.SourceURL,
			Title:         s.Title,
			SalePrice:     s.SalePrice,
			BoxCount:      s.BoxCount,
			PerBoxPrice:   s.PerBoxPrice,
			Variant:       entity.Variant(s.VariantType),
			SaleDate:      s.SaleDate,
			SaleTimestamp: s.SaleTimestamp,
		})
	}
	return out, nil
}

// TriggerFetch asks the service to run one fetch cycle now. Administrative
// writes make exactly one attempt; the read-path retry policy does not
// apply to them.
func (r *Repository) TriggerFetch(ctx context.Context) (entity.FetchStats, error) {
	body, err := r.fetcher.Do(ctx, http.MethodPost, r.cfg.BaseURL+"/api/fetch", nil)
	if err != nil {
		return entity.FetchStats{}, err
	}

	var res dto.FetchResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return entity.FetchStats{}, &domain.DataShapeError{Endpoint: "fetch", Reason: err.Error()}
	}
	if !res.Success {
		return entity.FetchStats{}, fmt.Errorf("fetch: %w: %s", domain.ErrUnsuccessful, res.Error)
	}
	return entity.FetchStats{
		TotalFetched: res.Stats.TotalFetched,
		NewSales:     res.Stats.NewSales,
		Duplicates:   res.Stats.Duplicates,
	}, nil
}

// StartScheduler starts the service-side background fetch job.
func (r *Repository) StartScheduler(ctx context.Context) (entity.SchedulerStatus, error) {
	return r.schedulerPost(ctx, "/api/scheduler/start")
}

// StopScheduler stops the service-side background fetch job.
func (r *Repository) StopScheduler(ctx context.Context) (entity.SchedulerStatus, error) {
	return r.schedulerPost(ctx, "/api/scheduler/stop")
}

// SchedulerStatus reports the service-side job state. The status is
// volatile, so the cache is bypassed, but the read still flows through it
// to keep coalescing in one place.
func (r *Repository) SchedulerStatus(ctx context.Context) (entity.SchedulerStatus, error) {
	body, err := r.get(ctx, r.cfg.BaseURL+"/api/scheduler/status", r.cfg.ChartTTL, true)
	if err != nil {
		return entity.SchedulerStatus{}, err
	}
	return decodeScheduler("scheduler status", body)
}

// Health checks the upstream service, bypassing the cache so a stale
// payload never masks an outage.
func (r *Repository) Health(ctx context.Context) error {
	body, err := r.fetcher.Do(ctx, http.MethodGet, r.cfg.BaseURL+"/api/health", nil)
	if err != nil {
		return err
	}

	var res struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return &domain.DataShapeError{Endpoint: "health", Reason: err.Error()}
	}
	if !res.Success {
		return fmt.Errorf("health: %w: %s", domain.ErrUnsuccessful, res.Error)
	}
	return nil
}

func (r *Repository) schedulerPost(ctx context.Context, path string) (entity.SchedulerStatus, error) {
	body, err := r.fetcher.Do(ctx, http.MethodPost, r.cfg.BaseURL+path, nil)
	if err != nil {
		return entity.SchedulerStatus{}, err
	}
	return decodeScheduler("scheduler", body)
}

func decodeScheduler(endpoint string, body []byte) (entity.SchedulerStatus, error) {
	var res dto.SchedulerResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return entity.SchedulerStatus{}, &domain.DataShapeError{Endpoint: endpoint, Reason: err.Error()}
	}
	if !res.Success {
		return entity.SchedulerStatus{}, fmt.Errorf("%s: %w: %s", endpoint, domain.ErrUnsuccessful, res.Error)
	}
	return entity.SchedulerStatus{
		Running:         res.Status.Running,
		IntervalSeconds: res.Status.IntervalSeconds,
		LastRun:         res.Status.LastRun,
		NextRun:         res.Status.NextRun,
	}, nil
}

// get routes a read through the response cache with the given freshness
// window.
func (r *Repository) get(ctx context.Context, u string, ttl time.Duration, bypass bool) ([]byte, error) {
	opts := []cache.GetOption{cache.WithTTL(ttl)}
	if bypass {
		opts = append(opts, cache.WithBypass())
	}
	return r.cache.Get(ctx, u, opts...)
}
