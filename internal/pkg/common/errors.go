package common

import (
	"net/http"
)

// ErrorResponse is the API error payload.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CustomError carries an error code and HTTP status alongside the cause.
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError creates a CustomError.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// Response renders the error as the API error payload.
func (e *CustomError) Response(details string) ErrorResponse {
	return ErrorResponse{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// ValidationError marks a recipe submission that failed input validation.
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// Predefined error codes.
const (
	// client errors (4xx)
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeRequestTimeout  = "REQUEST_TIMEOUT"   // 408
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	// server errors (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503

	// domain errors
	ErrCodeInputNotFound      = "INPUT_NOT_FOUND"
	ErrCodeTranslationFailed  = "TRANSLATION_FAILED"
	ErrCodeExportFailed       = "EXPORT_FAILED"
	ErrCodeStoreWriteFailed   = "STORE_WRITE_FAILED"
	ErrCodeCacheDisabledState = "CACHE_DISABLED"
)

// Predefined errors.
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "request timed out", http.StatusRequestTimeout, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "too many requests", http.StatusTooManyRequests, nil)

	ErrInternalError      = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "service temporarily unavailable", http.StatusServiceUnavailable, nil)

	ErrInputNotFound     = NewError(ErrCodeInputNotFound, "input recipe file not found", http.StatusNotFound, nil)
	ErrTranslationFailed = NewError(ErrCodeTranslationFailed, "translation service unavailable", http.StatusServiceUnavailable, nil)
	ErrExportFailed      = NewError(ErrCodeExportFailed, "failed to write export artifact", http.StatusInternalServerError, nil)
	ErrStoreWriteFailed  = NewError(ErrCodeStoreWriteFailed, "failed to append recipe to store", http.StatusInternalServerError, nil)
	ErrCacheDisabled     = NewError(ErrCodeCacheDisabledState, "cache disabled", http.StatusServiceUnavailable, nil)
)
