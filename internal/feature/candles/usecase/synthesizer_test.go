package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	candleentity "github.com/dahldoescards/bowman-tracker/internal/feature/candles/domain/entity"
	salesentity "github.com/dahldoescards/bowman-tracker/internal/feature/sales/domain/entity"
)

func point(variant salesentity.Variant, price float64, ms int64) salesentity.SalePoint {
	return salesentity.SalePoint{
		TimestampMillis: ms,
		Price:           price,
		Variant:         variant,
		DateKey:         "2026-01-15",
	}
}

// TestSynthesize_Overlay_Example verifies the canonical overlay case: two
// variants in, one series per non-empty variant, strictly increasing
// synthetic time within a series.
func TestSynthesize_Overlay_Example(t *testing.T) {
	t.Parallel()

	points := []salesentity.SalePoint{
		point(salesentity.VariantJumbo, 100, 1000),
		point(salesentity.VariantBreakersDelight, 200, 1000),
		point(salesentity.VariantJumbo, 110, 2000),
	}

	series := Synthesize(points, ModeOverlay)
	require.Len(t, series, 2)

	require.Equal(t, salesentity.VariantJumbo, series[0].Variant)
	require.Len(t, series[0].Candles, 2)
	require.Equal(t, salesentity.VariantBreakersDelight, series[1].Variant)
	require.Len(t, series[1].Candles, 1)

	gap := series[0].Candles[1].Time - series[0].Candles[0].Time
	assert.GreaterOrEqual(t, gap, int64(3600), "consecutive candles must be at least one spacing apart")
}

// TestSynthesize_CandleInvariants checks the OHLC ordering invariant for
// every synthesized candle.
func TestSynthesize_CandleInvariants(t *testing.T) {
	t.Parallel()

	points := []salesentity.SalePoint{
		point(salesentity.VariantJumbo, 250.50, 1700000000000),
		point(salesentity.VariantJumbo, 180.25, 1700000500000),
		point(salesentity.VariantBreakersDelight, 95.75, 1700001000000),
		point(salesentity.VariantHobby, 420.00, 1700001500000),
		point(salesentity.VariantHobby, 410.10, 1700001500000),
	}

	for _, mode := range []Mode{ModeSingle, ModeOverlay} {
		for _, s := range Synthesize(points, mode) {
			var prev int64
			for i, c := range s.Candles {
				assert.GreaterOrEqual(t, c.High, c.Open)
				assert.GreaterOrEqual(t, c.High, c.Close)
				assert.LessOrEqual(t, c.Low, c.Open)
				assert.LessOrEqual(t, c.Low, c.Close)
				if i > 0 {
					assert.Greater(t, c.Time, prev, "synthetic time must strictly increase within %s", s.Variant)
				}
				prev = c.Time
			}
		}
	}
}

// TestSynthesize_VariantOffsetsPreventCollisions verifies that two variants
// selling at the exact same millisecond never share a synthetic second.
func TestSynthesize_VariantOffsetsPreventCollisions(t *testing.T) {
	t.Parallel()

	const ms = int64(1700000000000)
	points := []salesentity.SalePoint{
		point(salesentity.VariantJumbo, 100, ms),
		point(salesentity.VariantBreakersDelight, 100, ms),
		point(salesentity.VariantHobby, 100, ms),
	}

	series := Synthesize(points, ModeOverlay)
	require.Len(t, series, 3)

	seen := map[int64]salesentity.Variant{}
	for _, s := range series {
		require.Len(t, s.Candles, 1)
		tme := s.Candles[0].Time
		if other, dup := seen[tme]; dup {
			t.Fatalf("synthetic time collision between %s and %s at %d", other, s.Variant, tme)
		}
		seen[tme] = s.Variant
	}
}

func TestSynthesize_DropsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points []salesentity.SalePoint
		want   int // series count in overlay mode
	}{
		{
			name:   "empty input",
			points: nil,
			want:   0,
		},
		{
			name: "unknown variant dropped silently",
			points: []salesentity.SalePoint{
				point("mega", 100, 1000),
				point(salesentity.VariantHobby, 100, 1000),
			},
			want: 1,
		},
		{
			name: "non-positive price dropped",
			points: []salesentity.SalePoint{
				point(salesentity.VariantJumbo, 0, 1000),
				point(salesentity.VariantJumbo, -5, 2000),
			},
			want: 0,
		},
		{
			name: "zero timestamp dropped",
			points: []salesentity.SalePoint{
				point(salesentity.VariantJumbo, 100, 0),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			series := Synthesize(tt.points, ModeOverlay)
			assert.Len(t, series, tt.want)
			for _, s := range series {
				assert.NotEmpty(t, s.Candles, "empty variants must be omitted, not emitted as placeholders")
			}
		})
	}
}

// TestSynthesize_Deterministic re-runs the transform on identical input and
// expects byte-for-byte identical output, including tie-breaking for
// colliding timestamps.
func TestSynthesize_Deterministic(t *testing.T) {
	t.Parallel()

	points := []salesentity.SalePoint{
		point(salesentity.VariantJumbo, 100, 5000),
		point(salesentity.VariantJumbo, 105, 5000), // same millisecond: input order wins
		point(salesentity.VariantJumbo, 95, 1000),
		point(salesentity.VariantBreakersDelight, 300, 2000),
	}

	first := Synthesize(points, ModeOverlay)
	second := Synthesize(points, ModeOverlay)
	assert.Equal(t, first, second)

	// Stable sort: the two colliding jumbo points keep their input order
	// after the earlier point.
	require.Len(t, first[0].Candles, 3)
	assert.InDelta(t, 95.0, mid(first[0].Candles[0]), 1e-9)
	assert.InDelta(t, 100.0, mid(first[0].Candles[1]), 1e-9)
	assert.InDelta(t, 105.0, mid(first[0].Candles[2]), 1e-9)
}

func TestSynthesize_SingleMode(t *testing.T) {
	t.Parallel()

	points := []salesentity.SalePoint{
		point(salesentity.VariantHobby, 200, 1000),
		point(salesentity.VariantHobby, 210, 2000),
	}

	series := Synthesize(points, ModeSingle)
	require.Len(t, series, 1)
	assert.Equal(t, salesentity.VariantHobby, series[0].Variant)
	require.Len(t, series[0].Candles, 2)

	// Single mode uses the wider variance fraction.
	c := series[0].Candles[0]
	assert.InDelta(t, 200*SingleVarianceFraction, (c.High-c.Low)/2, 1e-9)
}

func mid(c candleentity.Candle) float64 { return (c.Open + c.Close) / 2 }
