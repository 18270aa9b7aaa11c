// Package http defines the wire contracts shared by the HTTP server and its
// handlers. Field names mirror the public API payloads.
package http

import "time"

// VectorsRequest is the request body for both compute endpoints.
type VectorsRequest struct {
	Vectors [][]float64 `json:"vectors"`
}

// OrthonormalResponse is the response body for POST /orthonormal.
type OrthonormalResponse struct {
	OrthonormalBasis      [][]float64 `json:"orthonormal_basis"`
	OriginalVectors       [][]float64 `json:"original_vectors"`
	IsLinearlyIndependent bool        `json:"is_linearly_independent"`
	Dimension             int         `json:"dimension"`
	NumberOfVectors       int         `json:"number_of_vectors"`
	VectorSize            int         `json:"vector_size"`
	NumberOfOutputVectors int         `json:"number_of_output_vectors"`
}

// CheckResponse is the response body for POST /check-orthonormal.
type CheckResponse struct {
	IsOrthonormal   bool     `json:"is_orthonormal"`
	Details         []string `json:"details"`
	NumberOfVectors int      `json:"number_of_vectors"`
	VectorSize      int      `json:"vector_size"`
}

// RootResponse is the service banner returned by GET /.
type RootResponse struct {
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	Uptime         string    `json:"uptime"`
	RequestsServed int64     `json:"requests_served"`
}

// ErrorResponse is the standardized error envelope for all failures.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
