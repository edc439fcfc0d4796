package dto

// ChartResponse is the envelope of GET /api/chart/{variant}.
type ChartResponse struct {
	Success    bool         `json:"success"`
	Error      string       `json:"error"`
	Variant    string       `json:"variant"`
	DataPoints []ChartPoint `json:"data_points"`
	DailyStats []DailyStat  `json:"daily_stats"`
}

// ChartPoint is one sale-price event formatted for charting. X is a
// JavaScript-style epoch-milliseconds timestamp.
type ChartPoint struct {
	X          int64   `json:"x"`
	Y          float64 `json:"y"`
	Date       string  `json:"date"`
	Title      string  `json:"title"`
	BoxCount   int     `json:"box_count"`
	TotalPrice float64 `json:"total_price"`
	Variant    string  `json:"variant"`
}

// DailyStat is the per-day aggregate block the chart endpoint computes
// alongside the raw points.
type DailyStat struct {
	Date       string  `json:"date"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
	AvgPrice   float64 `json:"avg_price"`
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
}
