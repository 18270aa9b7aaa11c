package handlers

import (
	"net/http"
	"time"

	"github.com/orthorun/orthorun/internal/domain/basis"
	httpContracts "github.com/orthorun/orthorun/internal/http"
)

// CheckOrthonormal handles POST /check-orthonormal: a pure diagnostic that
// reports whether the request vectors already form an orthonormal set.
func (h *Handlers) CheckOrthonormal(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeVectors(w, r)
	if !ok {
		return
	}

	start := time.Now()
	report, err := basis.CheckOrthonormal(req.Vectors)
	if err != nil {
		h.metrics.RecordCompute("check", "error", time.Since(start))
		h.writeComputeError(w, r, "check", err)
		return
	}
	h.metrics.RecordCompute("check", "ok", time.Since(start))

	response := httpContracts.CheckResponse{
		IsOrthonormal:   report.IsOrthonormal,
		Details:         report.Details,
		NumberOfVectors: report.InputCount,
		VectorSize:      report.VectorSize,
	}

	h.writeJSON(w, http.StatusOK, response)
}
