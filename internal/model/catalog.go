package model

// RootInfo describes the service and the endpoints it exposes.
type RootInfo struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthStatus is the liveness probe body.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Item is a single sample record.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Value       int    `json:"value"`
}

// DataPayload wraps the sample items returned by GET /api/data.
// Timestamp is an ISO-8601 string rather than time.Time so the wire value
// stays byte-identical across requests.
type DataPayload struct {
	Data       []Item `json:"data"`
	TotalItems int    `json:"total_items"`
	Timestamp  string `json:"timestamp"`
}
