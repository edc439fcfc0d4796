// Package dto holds the wire representations returned by the tracker
// service API.
package dto

// SummaryResponse is the envelope of GET /api/summary.
type SummaryResponse struct {
	Success    bool                      `json:"success"`
	Error      string                    `json:"error"`
	Summary    map[string]VariantSummary `json:"summary"`
	TotalSales int                       `json:"total_sales"`
}

// VariantSummary is the per-variant aggregate block inside the summary.
type VariantSummary struct {
	TotalSales   int     `json:"total_sales"`
	AvgPrice     float64 `json:"avg_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	EarliestSale string  `json:"earliest_sale"`
	LatestSale   string  `json:"latest_sale"`
	CasesSold    int     `json:"cases_sold"`
	BoxesSold    int     `json:"boxes_sold"`
	TotalBoxes   int     `json:"total_boxes"`
}
