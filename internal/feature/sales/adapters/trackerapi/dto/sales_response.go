package dto

// SalesResponse is the envelope of GET /api/sales and /api/sales/{variant}.
type SalesResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Count   int    `json:"count"`
	Variant string `json:"variant"`
	Sales   []Sale `json:"sales"`
}

// Sale is one stored sale row.
type Sale struct {
	UniqueID      string  `json:"unique_id"`
	Source        string  `json:"source"`
	SourceURL     string  `json:"source_url"`
	Title         string  `json:"title"`
	SalePrice     float64 `json:"sale_price"`
	BoxCount      int     `json:"box_count"`
	PerBoxPrice   float64 `json:"per_box_price"`
	VariantType   string  `json:"variant_type"`
	SaleDate      string  `json:"sale_date"`
	SaleTimestamp int64   `json:"sale_timestamp"`
}
