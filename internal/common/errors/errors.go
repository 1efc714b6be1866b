// Package errors provides standardized error handling for upstream integrations.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInterpreterUnavailable ErrorCode = "INTERPRETER_UNAVAILABLE"
	ErrCodeInterpreterTimeout     ErrorCode = "INTERPRETER_TIMEOUT"
	ErrCodeInterpreterBadOutput   ErrorCode = "INTERPRETER_BAD_OUTPUT"

	ErrCodeBookSearchFailed    ErrorCode = "BOOK_SEARCH_FAILED"
	ErrCodeBookSearchTimeout   ErrorCode = "BOOK_SEARCH_TIMEOUT"
	ErrCodeCatalogLookupFailed ErrorCode = "CATALOG_LOOKUP_FAILED"

	ErrCodeGourmetSearchFailed  ErrorCode = "GOURMET_SEARCH_FAILED"
	ErrCodeGourmetSearchTimeout ErrorCode = "GOURMET_SEARCH_TIMEOUT"

	ErrCodePriceLookupFailed ErrorCode = "PRICE_LOOKUP_FAILED"
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

// NewInterpreterUnavailableError creates a retryable interpreter connection error.
func NewInterpreterUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInterpreterUnavailable,
		Message:   "Query interpreter API error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInterpreterTimeoutError creates a retryable interpreter timeout error.
func NewInterpreterTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInterpreterTimeout,
		Message:   "Query interpreter timeout",
		Details:   "API call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInterpreterBadOutputError creates a non-retryable malformed output error.
func NewInterpreterBadOutputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInterpreterBadOutput,
		Message:   "Query interpreter returned malformed output",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewBookSearchFailedError creates a retryable book search error.
func NewBookSearchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBookSearchFailed,
		Message:   "Book search API error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBookSearchTimeoutError creates a non-retryable (returns empty) search timeout error.
func NewBookSearchTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeBookSearchTimeout,
		Message:   "Book search API timeout",
		Details:   "Search call exceeded timeout threshold",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLookupFailedError creates a non-retryable catalog lookup error.
func NewCatalogLookupFailedError(isbn string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLookupFailed,
		Message:   "Catalog ISBN lookup error",
		Details:   fmt.Sprintf("isbn: %s, error: %s", isbn, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGourmetSearchFailedError creates a retryable restaurant search error.
func NewGourmetSearchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGourmetSearchFailed,
		Message:   "Restaurant search API error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGourmetSearchTimeoutError creates a non-retryable restaurant search timeout error.
func NewGourmetSearchTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeGourmetSearchTimeout,
		Message:   "Restaurant search API timeout",
		Details:   "Search call exceeded timeout threshold",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPriceLookupFailedError creates a non-retryable price source error.
func NewPriceLookupFailedError(source string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePriceLookupFailed,
		Message:   "Price source lookup error",
		Details:   fmt.Sprintf("source: %s, error: %s", source, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
