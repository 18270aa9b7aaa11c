package handlers

import (
	"net/http"
	"time"

	httpContracts "github.com/orthorun/orthorun/internal/http"
)

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response := httpContracts.HealthResponse{
		Status:         "healthy",
		Timestamp:      time.Now().UTC(),
		Uptime:         time.Since(h.started).Round(time.Second).String(),
		RequestsServed: int64(h.metrics.RequestCount()),
	}

	h.writeJSON(w, http.StatusOK, response)
}
