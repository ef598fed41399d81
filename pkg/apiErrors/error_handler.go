package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned by the REST surface. Tool-level failures
// (authentication, upstream errors, timeouts) stay inside the tool
// result envelope, so only request-shape and dispatch errors surface
// here.
const (
	ErrInvalidRequest      = "VAL_001" // malformed request body
	ErrMissingRequiredData = "VAL_002" // required parameter absent
	ErrUnknownTool         = "VAL_003" // tool name not registered
	ErrInternalServer      = "SRV_001" // unexpected internal failure
)

// Error code to HTTP status mapping
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrUnknownTool:         http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError is the standardized error body of the REST surface
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr) //nolint:errcheck
}
