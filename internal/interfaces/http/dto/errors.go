package dto

import "net/http"

// Error code constants organized by category

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeGenerationFailed is used when a document job fails downstream
	ErrCodeGenerationFailed = "ERR_GENERATION_FAILED"
)

// domainCodeStatus maps domain error codes to HTTP status codes.
// Unknown codes fall through to 400: document generation takes its
// inputs from the request, so a rejected input is the caller's fault
// unless we know better.
var domainCodeStatus = map[string]int{
	"NOT_FOUND":       http.StatusNotFound,
	"INVALID_STATE":   http.StatusConflict,
	"FIELD_COLLISION": http.StatusUnprocessableEntity,
}

// GetHTTPStatus derives an HTTP status code from a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := domainCodeStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}
