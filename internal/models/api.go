package models

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse reports liveness and result store reachability.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
