// Package errors provides standardized error handling for the
// onboarding engine and its HTTP surface.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeRecordFetchFailed  ErrorCode = "RECORD_FETCH_FAILED"
	ErrCodeRecordFetchTimeout ErrorCode = "RECORD_FETCH_TIMEOUT"
	ErrCodeRecordNotFound     ErrorCode = "RECORD_NOT_FOUND"

	ErrCodeDraftDecodeFailed     ErrorCode = "DRAFT_DECODE_FAILED"
	ErrCodeDraftValidationFailed ErrorCode = "DRAFT_VALIDATION_FAILED"
	ErrCodeDraftSubmitInFlight   ErrorCode = "DRAFT_SUBMIT_IN_FLIGHT"
	ErrCodeDraftSubmitFailed     ErrorCode = "DRAFT_SUBMIT_FAILED"

	ErrCodeStorageReadFailed  ErrorCode = "STORAGE_READ_FAILED"
	ErrCodeStorageWriteFailed ErrorCode = "STORAGE_WRITE_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"

	ErrCodeSessionExpired  ErrorCode = "SESSION_EXPIRED"
	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"

	ErrCodeStepLocked   ErrorCode = "STEP_LOCKED"
	ErrCodeMenuNotFound ErrorCode = "MENU_NOT_FOUND"
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
// 2. Error Constructors
// ==========================

// NewRecordFetchFailedError creates a retryable upstream fetch error.
func NewRecordFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecordFetchFailed,
		Message:   "Company record fetch failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRecordFetchTimeoutError creates a retryable upstream timeout error.
func NewRecordFetchTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeRecordFetchTimeout,
		Message:   "Company record fetch timeout",
		Details:   "upstream call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRecordNotFoundError creates a non-retryable missing record error.
func NewRecordNotFoundError(companyID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRecordNotFound,
		Message:   "Company record not found",
		Details:   fmt.Sprintf("companyId: %s", companyID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDraftDecodeFailedError creates a non-retryable draft decode error.
func NewDraftDecodeFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftDecodeFailed,
		Message:   "Stored partner draft is unreadable",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDraftValidationFailedError creates a non-retryable validation error.
func NewDraftValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftValidationFailed,
		Message:   "Partner draft validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDraftSubmitInFlightError creates a non-retryable concurrent submit error.
func NewDraftSubmitInFlightError() *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftSubmitInFlight,
		Message:   "A draft submission is already in progress",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDraftSubmitFailedError creates a retryable submit error.
func NewDraftSubmitFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDraftSubmitFailed,
		Message:   "Partner draft submission failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageReadFailedError creates a retryable storage read error.
func NewStorageReadFailedError(key string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageReadFailed,
		Message:   "Persisted storage read failed",
		Details:   fmt.Sprintf("key: %s, error: %s", key, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStorageWriteFailedError creates a retryable storage write error.
func NewStorageWriteFailedError(key string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStorageWriteFailed,
		Message:   "Persisted storage write failed",
		Details:   fmt.Sprintf("key: %s, error: %s", key, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionExpiredError creates a non-retryable expired session error.
func NewSessionExpiredError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionExpired,
		Message:   "Session has expired",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError creates a non-retryable missing session error.
func NewSessionNotFoundError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "No active session for token",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStepLockedError creates a non-retryable step gating error.
func NewStepLockedError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStepLocked,
		Message:   "Requested step is not yet unlocked",
		Details:   fmt.Sprintf("path: %s", path),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMenuNotFoundError creates a non-retryable unknown menu error.
func NewMenuNotFoundError(menuID int) *StandardError {
	return &StandardError{
		Code:      ErrCodeMenuNotFound,
		Message:   "Menu not found",
		Details:   fmt.Sprintf("menuId: %d", menuID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewAuthenticationError(details string) *StandardError {
	return &StandardError{
		Code:      "AUTHENTICATION_ERROR",
		Message:   "Authentication failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatus maps internal error codes to HTTP response codes.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeRecordNotFound, ErrCodeMenuNotFound:
		return http.StatusNotFound
	case ErrCodeDraftValidationFailed, ErrCodeDraftDecodeFailed:
		return http.StatusUnprocessableEntity
	case ErrCodeDraftSubmitInFlight:
		return http.StatusConflict
	case ErrCodeStepLocked:
		return http.StatusForbidden
	case ErrCodeSessionExpired, ErrCodeSessionNotFound, "AUTHENTICATION_ERROR":
		return http.StatusUnauthorized
	case ErrCodeRecordFetchTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeRecordFetchFailed, "EXTERNAL_SERVICE_ERROR":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// GetRetryCount returns the recommended retry count for a code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeRecordFetchFailed,
		ErrCodeStorageReadFailed,
		ErrCodeStorageWriteFailed,
		ErrCodeDatabaseConnectionFailed,
		ErrCodeQueryExecutionFailed:
		return 3

	case ErrCodeRecordFetchTimeout,
		ErrCodeDraftSubmitFailed:
		return 2

	default:
		return 0
	}
}

// ==========================
// 4. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "SESSION") || strings.Contains(codeStr, "AUTHENTICATION"):
		return "AUTH/SESSION"
	case strings.Contains(codeStr, "DRAFT"):
		return "DRAFT"
	case strings.Contains(codeStr, "STORAGE"):
		return "STORAGE"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY"):
		return "DATABASE"
	case strings.Contains(codeStr, "RECORD") || strings.Contains(codeStr, "EXTERNAL"):
		return "UPSTREAM"
	case strings.Contains(codeStr, "STEP") || strings.Contains(codeStr, "MENU"):
		return "NAVIGATION"
	default:
		return "GENERAL"
	}
}

// Normalize ensures any error surfaces as a StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
