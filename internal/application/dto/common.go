package dto

import "time"

// ErrorResponse cuerpo de error HTTP: {"error": "...", "code": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// IDResponse respuesta de las altas.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse respuesta de modificaciones y bajas.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse cuerpo de GET /api/health.
type HealthResponse struct {
	Status    string     `json:"status"`
	Database  string     `json:"database"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// StatsResponse contadores del dashboard.
type StatsResponse struct {
	Customers  int `json:"customers"`
	Services   int `json:"services"`
	Quotations int `json:"quotations"`
	Invoices   int `json:"invoices"`
}
