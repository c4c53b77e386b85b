package apperrors

import "fmt"

// AppError carries an HTTP-ish status code and a message alongside the
// wrapped cause. Repositories use it to surface storage failures without
// leaking driver details to handlers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewForbiddenError creates an AppError that matches ErrForbidden via errors.Is.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: 403, Message: message, Err: ErrForbidden}
}

// NewConflictError creates an AppError that matches ErrDuplicate via errors.Is.
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError creates an AppError that matches ErrValidation via errors.Is.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewUpstreamError creates an AppError that matches ErrUpstream via errors.Is.
func NewUpstreamError(message string, err error) *AppError {
	if err == nil {
		return &AppError{Code: 502, Message: message, Err: ErrUpstream}
	}
	return &AppError{Code: 502, Message: message, Err: fmt.Errorf("%w: %w", ErrUpstream, err)}
}
