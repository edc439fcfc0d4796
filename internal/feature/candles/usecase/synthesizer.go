// Package usecase implements the candle synthesis transform: irregular,
// possibly colliding sale timestamps in, ordered synthetic OHLC series out.
package usecase

import (
	"sort"

	candleentity "github.com/dahldoescards/bowman-tracker/internal/feature/candles/domain/entity"
	salesentity "github.com/dahldoescards/bowman-tracker/internal/feature/sales/domain/entity"
)

// Mode selects how the synthesized candles will be displayed.
type Mode int

const (
	// ModeSingle renders one series for a single variant.
	ModeSingle Mode = iota
	// ModeOverlay renders every variant as its own overlaid series.
	ModeOverlay
)

const (
	// spacingSeconds separates consecutive candles inside one series. It
	// dominates any same-variant timestamp jitter, which guarantees
	// strictly increasing synthetic time.
	spacingSeconds = 3600

	// OverlayVarianceFraction keeps candle bodies visually tight when
	// several variants share one chart.
	OverlayVarianceFraction = 0.002
	// SingleVarianceFraction gives a single series a slightly wider body.
	SingleVarianceFraction = 0.005
)

// variantOffsetSeconds nudges each variant's synthetic times apart so two
// variants never land on the same synthetic second. The offsets carry no
// temporal meaning.
var variantOffsetSeconds = map[salesentity.Variant]int64{
	salesentity.VariantJumbo:           0,
	salesentity.VariantBreakersDelight: 300,
	salesentity.VariantHobby:           600,
}

// Synthesize converts raw sale points into ordered candle series. It is
// pure and deterministic: identical input always yields identical output.
// Points with an unknown variant, a non-positive price or a zero timestamp
// are dropped, not reported. Variants with no surviving points are omitted
// entirely so the renderer never draws an empty track. Empty input yields
// an empty result.
func Synthesize(points []salesentity.SalePoint, mode Mode) []candleentity.Series {
	if mode == ModeSingle {
		return synthesizeSingle(points)
	}
	return synthesizeOverlay(points)
}

func synthesizeOverlay(points []salesentity.SalePoint) []candleentity.Series {
	grouped := make(map[salesentity.Variant][]salesentity.SalePoint)
	for _, p := range points {
		if !valid(p) {
			continue
		}
		grouped[p.Variant] = append(grouped[p.Variant], p)
	}

	out := make([]candleentity.Series, 0, len(grouped))
	for _, v := range salesentity.Variants {
		pts := grouped[v]
		if len(pts) == 0 {
			continue
		}
		out = append(out, candleentity.Series{
			Variant: v,
			Candles: buildCandles(pts, variantOffsetSeconds[v], OverlayVarianceFraction),
		})
	}
	return out
}

func synthesizeSingle(points []salesentity.SalePoint) []candleentity.Series {
	pts := make([]salesentity.SalePoint, 0, len(points))
	for _, p := range points {
		if !valid(p) {
			continue
		}
		pts = append(pts, p)
	}
	if len(pts) == 0 {
		return []candleentity.Series{}
	}
	return []candleentity.Series{{
		Variant: pts[0].Variant,
		Candles: buildCandles(pts, 0, SingleVarianceFraction),
	}}
}

// buildCandles sorts the points of one group by their original timestamp
// (stable, so collisions keep input order) and emits one degenerate candle
// per point at synthetic time floor(ms/1000) + i*spacing + offset. The
// symmetric variance around the price guarantees high >= open,close >= low
// by construction.
func buildCandles(pts []salesentity.SalePoint, offset int64, varianceFraction float64) []candleentity.Candle {
	sorted := make([]salesentity.SalePoint, len(pts))
	copy(sorted, pts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimestampMillis < sorted[j].TimestampMillis
	})

	candles := make([]candleentity.Candle, 0, len(sorted))
	for i, p := range sorted {
		v := p.Price * varianceFraction
		candles = append(candles, candleentity.Candle{
			Time:  p.TimestampMillis/1000 + int64(i)*spacingSeconds + offset,
			Open:  p.Price - v,
			High:  p.Price + v,
			Low:   p.Price - v,
			Close: p.Price + v,
		})
	}
	return candles
}

func valid(p salesentity.SalePoint) bool {
	return p.Variant.Valid() && p.Price > 0 && p.TimestampMillis > 0
}
