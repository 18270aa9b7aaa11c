// Package handlers implements the HTTP endpoint handlers for the basis
// service, bridging the wire contracts to the core computation package.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/orthorun/orthorun/internal/domain/basis"
	httpContracts "github.com/orthorun/orthorun/internal/http"
)

// Metrics is the slice of the metrics registry the handlers record into.
type Metrics interface {
	RecordCompute(operation, result string, duration time.Duration)
	RecordComputeError(operation, kind string)
	ObserveBasisSize(n int)
	RequestCount() float64
}

// Handlers manages all HTTP endpoint handlers.
type Handlers struct {
	metrics Metrics
	started time.Time
}

// NewHandlers creates a new handlers instance.
func NewHandlers(metrics Metrics) *Handlers {
	return &Handlers{
		metrics: metrics,
		started: time.Now(),
	}
}

// writeJSON writes a JSON response with proper error handling.
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"json_encoding_failed"}`, http.StatusInternalServerError)
	}
}

// writeError writes the standardized error envelope.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	requestID := r.Context().Value("request_id")
	if requestID == nil {
		requestID = "unknown"
	}

	errorResp := httpContracts.ErrorResponse{
		Error:     http.StatusText(status),
		Message:   message,
		Code:      code,
		RequestID: requestID.(string),
		Timestamp: time.Now().UTC(),
	}

	h.writeJSON(w, status, errorResp)
}

// writeComputeError maps core errors onto the wire: tagged client errors keep
// their descriptive message, anything else surfaces as an opaque 500.
func (h *Handlers) writeComputeError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	switch {
	case errors.Is(err, basis.ErrInvalidInput):
		h.metrics.RecordComputeError(operation, "invalid_input")
		h.writeError(w, r, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, basis.ErrDegenerateInput):
		h.metrics.RecordComputeError(operation, "degenerate_input")
		h.writeError(w, r, http.StatusBadRequest, "degenerate_input", err.Error())
	default:
		h.metrics.RecordComputeError(operation, "internal")
		log.Error().Err(err).Str("operation", operation).Msg("unexpected computation failure")
		h.writeError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}

// decodeVectors parses the shared request body for both compute endpoints.
func (h *Handlers) decodeVectors(w http.ResponseWriter, r *http.Request) (httpContracts.VectorsRequest, bool) {
	var req httpContracts.VectorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "malformed_request",
			`Request body must be a JSON object with a numeric "vectors" array`)
		return req, false
	}
	return req, true
}

// NotFound handles 404 responses.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusNotFound, "endpoint_not_found",
		"The requested endpoint does not exist")
}

// TooManyRequests handles rate-limited responses.
func (h *Handlers) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusTooManyRequests, "rate_limited",
		"Too many requests, slow down")
}

// MethodNotAllowed handles 405 responses.
func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed",
		"The requested method is not allowed on this endpoint")
}
