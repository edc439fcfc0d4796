package dto

// FetchResponse is the envelope of POST /api/fetch.
type FetchResponse struct {
	Success bool       `json:"success"`
	Error   string     `json:"error"`
	Message string     `json:"message"`
	Stats   FetchStats `json:"stats"`
}

// FetchStats summarizes one manual fetch cycle.
type FetchStats struct {
	TotalFetched int `json:"total_fetched"`
	NewSales     int `json:"new_sales"`
	Duplicates   int `json:"duplicates"`
}

// SchedulerResponse is the envelope of the scheduler status and control
// endpoints.
type SchedulerResponse struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Status  SchedulerStatus `json:"status"`
}

// SchedulerStatus mirrors the service-side background job state.
type SchedulerStatus struct {
	Running         bool   `json:"running"`
	IntervalSeconds int    `json:"interval_seconds"`
	LastRun         string `json:"last_run"`
	NextRun         string `json:"next_run"`
}
