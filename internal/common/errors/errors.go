// Package errors provides standardized error handling for the triage service.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeTicketRecordInvalid  ErrorCode = "TICKET_RECORD_INVALID"
	ErrCodeDatasetLoadFailed    ErrorCode = "DATASET_LOAD_FAILED"
	ErrCodeDatasetSchemaInvalid ErrorCode = "DATASET_SCHEMA_INVALID"
	ErrCodeTemplateRenderFailed ErrorCode = "TEMPLATE_RENDER_FAILED"
	ErrCodeMethodNotAllowed     ErrorCode = "METHOD_NOT_ALLOWED"
	ErrCodeInternal             ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. HTTP Integration
// ==========================

// HTTPStatus maps an error code to the response status the web layer
// should return for it.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeTicketRecordInvalid, ErrCodeDatasetSchemaInvalid:
		return http.StatusBadRequest
	case ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 3. Error Constructors
// ==========================

// NewTicketRecordInvalidError creates a non-retryable error for a ticket
// record that is missing its identifier, subject, or body.
func NewTicketRecordInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTicketRecordInvalid,
		Message:   "Invalid ticket record",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatasetLoadFailedError creates a non-retryable dataset read error.
func NewDatasetLoadFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatasetLoadFailed,
		Message:   "Failed to load ticket dataset",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatasetSchemaInvalidError creates a non-retryable schema validation error.
func NewDatasetSchemaInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatasetSchemaInvalid,
		Message:   "Ticket dataset failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateRenderFailedError creates an error for a failed page render.
func NewTemplateRenderFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateRenderFailed,
		Message:   "Failed to render page template",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
