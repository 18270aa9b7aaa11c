package handlers

import (
	"net/http"
	"time"

	"github.com/orthorun/orthorun/internal/domain/basis"
	httpContracts "github.com/orthorun/orthorun/internal/http"
)

// Orthonormal handles POST /orthonormal: it runs the Gram-Schmidt process
// over the request vectors and returns the resulting basis.
func (h *Handlers) Orthonormal(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeVectors(w, r)
	if !ok {
		return
	}

	start := time.Now()
	result, err := basis.ComputeBasis(req.Vectors)
	if err != nil {
		h.metrics.RecordCompute("orthonormal", "error", time.Since(start))
		h.writeComputeError(w, r, "orthonormal", err)
		return
	}
	h.metrics.RecordCompute("orthonormal", "ok", time.Since(start))
	h.metrics.ObserveBasisSize(result.OutputCount)

	response := httpContracts.OrthonormalResponse{
		OrthonormalBasis:      result.Basis,
		OriginalVectors:       req.Vectors,
		IsLinearlyIndependent: result.IsIndependent,
		Dimension:             result.Dimension,
		NumberOfVectors:       result.InputCount,
		VectorSize:            result.VectorSize,
		NumberOfOutputVectors: result.OutputCount,
	}

	h.writeJSON(w, http.StatusOK, response)
}
