package handlers

import (
	"net/http"

	httpContracts "github.com/orthorun/orthorun/internal/http"
)

// Root handles GET /, returning the service banner and endpoint listing.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	response := httpContracts.RootResponse{
		Message: "Orthonormal Basis Finder API",
		Status:  "running",
		Endpoints: map[string]string{
			"POST /orthonormal":       "Find orthonormal basis from vectors",
			"POST /check-orthonormal": "Check if vectors are orthonormal",
			"GET /health":             "Health check",
			"GET /metrics":            "Prometheus metrics",
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}
