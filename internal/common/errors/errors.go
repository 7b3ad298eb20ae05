// Package errors provides the standardized error taxonomy for the helper
// directory screens.
package errors

import (
	"fmt"
	"time"

	"helper-directory/internal/models"
)

// ==========================
// 1. Error Codes
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Local validation rejected the input; no network call was made.
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// A geo-reference lookup failed. The error carries the attempted
	// scope (country/state/city); the dependent option list stays empty
	// and the screen remains usable.
	ErrCodeGeoLookupFailed ErrorCode = "GEO_LOOKUP_FAILED"

	// The create call to the directory service failed.
	ErrCodeSubmissionFailed ErrorCode = "SUBMISSION_FAILED"

	// The pincode-scoped candidate fetch failed.
	ErrCodeSearchFetchFailed ErrorCode = "SEARCH_FETCH_FAILED"
)

// ==========================
// 2. Standard Error Type
// ==========================

// AppError is a structured application error. Every failure a screen can
// surface is an AppError; nothing is allowed to propagate past the action
// boundary as an unhandled fault.
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Scope     models.GeoScope        `json:"scope,omitempty"`
	Fields    []FieldError           `json:"fields,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// FieldError names a single field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("AppError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 3. Error Constructors
// ==========================

// NewValidationError creates a local validation error. No network call is
// implied.
func NewValidationError(fields []FieldError) *AppError {
	return &AppError{
		Code:      ErrCodeValidationFailed,
		Message:   "Please fill in all required fields",
		Fields:    fields,
		Timestamp: time.Now().UTC(),
	}
}

// NewLookupError creates a geo lookup error carrying the attempted scope.
func NewLookupError(scope models.GeoScope, err error) *AppError {
	return &AppError{
		Code:      ErrCodeGeoLookupFailed,
		Message:   fmt.Sprintf("Error loading %s list", scope),
		Details:   err.Error(),
		Scope:     scope,
		Timestamp: time.Now().UTC(),
	}
}

// NewSubmissionError creates a create-call error. serverMessage is the
// error string the directory service returned, if any; when present it is
// what the user sees.
func NewSubmissionError(serverMessage string, err error) *AppError {
	msg := serverMessage
	if msg == "" {
		msg = "Failed to add helper. Please try again."
	}
	e := &AppError{
		Code:      ErrCodeSubmissionFailed,
		Message:   msg,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

// NewSearchError creates a candidate-fetch error.
func NewSearchError(err error) *AppError {
	e := &AppError{
		Code:      ErrCodeSearchFetchFailed,
		Message:   "An error occurred while fetching the helpers.",
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

// ==========================
// 4. Utility Functions
// ==========================

// IsCode reports whether err is an *AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}

// AsAppError unwraps err to an *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	appErr, ok := err.(*AppError)
	return appErr, ok
}
