// Package entity defines the domain models for the sales feature.
package entity

// Variant is one of the fixed, closed set of box sub-types a sale belongs
// to. The set mirrors what the tracker service stores; anything else is
// dropped at the boundary, never surfaced as an error.
type Variant string

const (
	VariantJumbo           Variant = "jumbo"
	VariantBreakersDelight Variant = "breakers_delight"
	VariantHobby           Variant = "hobby"
)

// Variants lists every known variant in display order.
var Variants = []Variant{VariantJumbo, VariantBreakersDelight, VariantHobby}

// Valid reports whether v belongs to the known variant set.
func (v Variant) Valid() bool {
	switch v {
	case VariantJumbo, VariantBreakersDelight, VariantHobby:
		return true
	}
	return false
}

// SalePoint is a single sale-price event as served by the chart endpoint.
// Immutable once received; points are discarded after each transform cycle.
type SalePoint struct {
	TimestampMillis int64   // original sale time, epoch milliseconds
	Price           float64 // per-box price, > 0
	Variant         Variant
	DateKey         string // YYYY-MM-DD of the sale
}

// VariantSummary holds the aggregate statistics the service computes per
// variant.
type VariantSummary struct {
	TotalSales   int
	AvgPrice     float64
	MinPrice     float64
	MaxPrice     float64
	EarliestSale string
	LatestSale   string
	CasesSold    int
	BoxesSold    int
	TotalBoxes   int
}

// SaleRecord is a full sale row from the sales endpoints.
type SaleRecord struct {
	UniqueID      string
	Source        string
	SourceURL     string
	Title         string
	SalePrice     float64
	BoxCount      int
	PerBoxPrice   float64
	Variant       Variant
	SaleDate      string // YYYY-MM-DD
	SaleTimestamp int64  // epoch seconds
}

// FetchStats summarizes one upstream fetch cycle as reported by the
// administrative fetch endpoint.
type FetchStats struct {
	TotalFetched int
	NewSales     int
	Duplicates   int
}

// SchedulerStatus reports the state of the service-side background fetch
// job.
type SchedulerStatus struct {
	Running         bool
	IntervalSeconds int
	LastRun         string
	NextRun         string
}
