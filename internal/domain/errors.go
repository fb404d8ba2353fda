package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInvalidQuery       = "INVALID_QUERY"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	ErrCodeTimeout            = "TIMEOUT"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Query errors
var (
	ErrInvalidQuery = NewDomainError(ErrCodeInvalidQuery, "query must not be empty")
)

// Validation errors
var (
	ErrInvalidContentType     = NewDomainError(ErrCodeValidation, "invalid content type")
	ErrInvalidInteractionType = NewDomainError(ErrCodeValidation, "invalid interaction type")
	ErrMissingUserID          = NewDomainError(ErrCodeValidation, "user id is required")
)

// Not found errors
var (
	ErrContentNotFound = NewDomainError(ErrCodeNotFound, "content item not found")
)

// Storage errors
var (
	ErrStorageUnavailable = NewDomainError(ErrCodeStorageUnavailable, "storage backend unavailable")
	ErrLookupTimeout      = NewDomainError(ErrCodeTimeout, "lookup timed out")
)
