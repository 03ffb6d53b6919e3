package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Authentication errors
	ErrInvalidPassword = errors.New("invalid password")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
)

// Account errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrFacultyNotFound      = errors.New("faculty not found")
	ErrStudentAlreadyExists = errors.New("student already exists")
	ErrFacultyAlreadyExists = errors.New("faculty already exists")
)

// Internship record errors
var (
	ErrInternshipNotFound = errors.New("internship not found")
	ErrInternshipExists   = errors.New("internship already exists for this roll number")
)

// NewValidationError creates a validation error with a human-readable message.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidation,
		Message: message,
	}
}

// NewForbiddenError creates a permission-denied error with a message.
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
