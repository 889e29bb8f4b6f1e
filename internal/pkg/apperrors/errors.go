package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrBadRequest       = errors.New("bad request")
	ErrValidationFailed = errors.New("validation failed")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
)

// Registration errors
var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrRegNoAlreadyExists   = errors.New("registration number already exists")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("registration already has an enrollment")
)

// Payment errors
var (
	// ErrSignatureMismatch is the expected outcome for a forged or corrupted
	// gateway callback. It is a rejected request, not an internal fault.
	ErrSignatureMismatch = errors.New("payment signature mismatch")
)

// Admin errors
var (
	ErrAdminNotFound = errors.New("admin not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
