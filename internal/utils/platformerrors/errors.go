// Package platformerrors defines the error taxonomy shared by the HTTP
// layer and maps error types to response status codes.
package platformerrors

import "net/http"

// ErrorType classifies an error for transport-level handling.
type ErrorType int

const (
	ErrorTypeInternal ErrorType = iota
	ErrorTypeValidation
	ErrorTypeUnauthorized
	ErrorTypeForbidden
	ErrorTypeNotFound
	ErrorTypeConflict
)

// ErrorTypeToHTTPStatus maps an ErrorType to an HTTP status code.
func ErrorTypeToHTTPStatus(t ErrorType) int {
	switch t {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case ErrorTypeForbidden:
		return http.StatusForbidden
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// String returns the snake_case name used in API responses.
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeValidation:
		return "validation_error"
	case ErrorTypeUnauthorized:
		return "unauthorized_error"
	case ErrorTypeForbidden:
		return "forbidden_error"
	case ErrorTypeNotFound:
		return "not_found_error"
	case ErrorTypeConflict:
		return "conflict_error"
	default:
		return "internal_error"
	}
}
