// ABOUTME: Standardized error response types and helpers for HTTP handlers
// ABOUTME: Provides consistent JSON error formatting for the seed API

package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the standardized error response structure returned by the seed API.
//
// Usage:
//
//	WriteError(w, http.StatusBadRequest, ErrUnknownModule, "Invalid module: foo")
type ErrorResponse struct {
	Code    string   `json:"code"`              // Machine-readable error code (e.g., "unknown_module")
	Message string   `json:"message"`           // Human-readable error message
	Status  int      `json:"status"`            // HTTP status code
	Valid   []string `json:"valid,omitempty"`   // Optional: accepted values (for enum-style fields)
	Details string   `json:"details,omitempty"` // Optional: additional error details
}

// WriteError writes a standardized error response to the HTTP response writer.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	writeErrorResponse(w, ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
	})
}

// WriteErrorWithValid writes an error response listing the accepted values.
// Use this when a request names something that does not exist, such as an unknown module.
func WriteErrorWithValid(w http.ResponseWriter, status int, code, message string, valid []string) {
	writeErrorResponse(w, ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
		Valid:   valid,
	})
}

// WriteErrorWithDetails writes a standardized error response with additional details.
func WriteErrorWithDetails(w http.ResponseWriter, status int, code, message, details string) {
	writeErrorResponse(w, ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
		Details: details,
	})
}

func writeErrorResponse(w http.ResponseWriter, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	json.NewEncoder(w).Encode(resp)
}

// Error codes used by the seed API
const (
	// Client errors (4xx)
	ErrInvalidBody      = "invalid_request_body"
	ErrUnknownModule    = "unknown_module"
	ErrValidationFailed = "validation_failed"
	ErrUnauthorized     = "unauthorized"

	// Server errors (5xx)
	ErrInternal      = "internal_error"
	ErrSeedFailed    = "seed_failed"
	ErrDatabaseError = "database_error"
)
