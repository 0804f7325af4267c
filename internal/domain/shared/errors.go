package shared

import "fmt"

// DomainError represents a business logic error with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewDomainErrorf creates a new domain error with a formatted message
func NewDomainErrorf(code, format string, args ...interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Common domain errors
var (
	ErrNotFound     = &DomainError{Code: "NOT_FOUND", Message: "resource not found"}
	ErrInvalidInput = &DomainError{Code: "INVALID_INPUT", Message: "invalid input"}
	ErrBadRequest   = &DomainError{Code: "BAD_REQUEST", Message: "bad request"}
	ErrUpstream     = &DomainError{Code: "UPSTREAM_ERROR", Message: "upstream service error"}
	ErrConfig       = &DomainError{Code: "CONFIG_ERROR", Message: "service not configured"}
)
