package handlers

import (
	"net/http"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	service string
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{
		service: serviceName,
		version: version,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ServeHTTP reports liveness. It does not probe the model or the board
// service and always answers 200.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.service,
		Version: h.version,
	})
}
