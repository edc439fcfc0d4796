// Package usecase implements the refresh pipeline: fetch the summary and
// the raw sale points, synthesize candle series, and hand both to the
// renderer. A failed fetch leaves the previously displayed data in place.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	candleentity "github.com/dahldoescards/bowman-tracker/internal/feature/candles/domain/entity"
	candlesusecase "github.com/dahldoescards/bowman-tracker/internal/feature/candles/usecase"
	"github.com/dahldoescards/bowman-tracker/internal/feature/sales/domain/entity"
)

// AllVariants selects the overlay view with every variant.
const AllVariants = "all"

// SalesRepository is the read surface of the tracker service client.
// Following Go convention the interface is defined on the consumer side.
type SalesRepository interface {
	Summary(ctx context.Context, bypass bool) (map[entity.Variant]entity.VariantSummary, error)
	ChartPoints(ctx context.Context, variant string, bypass bool) ([]entity.SalePoint, error)
}

// Renderer receives the freshly built series and the raw points backing
// them. The chart capability manager satisfies it.
type Renderer interface {
	Update(series []candleentity.Series, raw []entity.SalePoint)
}

// RefreshUsecase drives one full data refresh cycle. Overlapping calls are
// tolerated deliberately: every affected state is overwritten wholesale,
// never merged, so the last writer simply wins.
type RefreshUsecase struct {
	repo     SalesRepository
	renderer Renderer

	mu      sync.Mutex
	variant string
	summary map[entity.Variant]entity.VariantSummary
}

// NewRefreshUsecase creates a RefreshUsecase starting on the overlay view.
func NewRefreshUsecase(repo SalesRepository, renderer Renderer) *RefreshUsecase {
	return &RefreshUsecase{repo: repo, renderer: renderer, variant: AllVariants}
}

// Refresh runs one fetch-transform-render cycle for the current variant
// selection. Summary and chart fetches fail independently: whichever part
// succeeds is applied, whichever fails leaves its previous state visible.
// The combined error is returned for logging only.
func (u *RefreshUsecase) Refresh(ctx context.Context, bypass bool) error {
	u.mu.Lock()
	variant := u.variant
	u.mu.Unlock()

	summary, sumErr := u.repo.Summary(ctx, bypass)
	if sumErr != nil {
		slog.Warn("summary refresh failed, keeping previous values", "error", sumErr)
	} else {
		u.mu.Lock()
		u.summary = summary
		u.mu.Unlock()
	}

	points, chartErr := u.repo.ChartPoints(ctx, variant, bypass)
	if chartErr != nil {
		slog.Warn("chart refresh failed, keeping previous series", "variant", variant, "error", chartErr)
	} else {
		mode := candlesusecase.ModeSingle
		if variant == AllVariants {
			mode = candlesusecase.ModeOverlay
		}
		u.renderer.Update(candlesusecase.Synthesize(points, mode), points)
	}

	return errors.Join(sumErr, chartErr)
}

// SelectVariant switches the view and re-runs the pipeline. An unknown
// variant name falls back to the overlay view.
func (u *RefreshUsecase) SelectVariant(ctx context.Context, variant string) error {
	if variant != AllVariants && !entity.Variant(variant).Valid() {
		variant = AllVariants
	}
	u.mu.Lock()
	u.variant = variant
	u.mu.Unlock()
	return u.Refresh(ctx, false)
}

// Variant returns the current variant selection.
func (u *RefreshUsecase) Variant() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.variant
}

// Summary returns the last successfully fetched summary; it survives
// failed refreshes so the UI never blanks on an upstream error.
func (u *RefreshUsecase) Summary() map[entity.Variant]entity.VariantSummary {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make(map[entity.Variant]entity.VariantSummary, len(u.summary))
	for k, v := range u.summary {
		out[k] = v
	}
	return out
}
