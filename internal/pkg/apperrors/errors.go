package apperrors

import "errors"

// Resource errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
)

// Authentication errors
var (
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrTokenInvalid             = errors.New("invalid token")
	ErrTokenNotFound            = errors.New("token not found")
	ErrMissingSessionIdentifier = errors.New("session identifier is missing")
	ErrMissingToken             = errors.New("session token is missing")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Server errors
var (
	// ErrConfiguration is returned when the server is missing required
	// settings at request time (e.g. the signing secret).
	ErrConfiguration = errors.New("server configuration error")
)

// Student errors
var (
	ErrStudentNotFound    = NewResourceNotFoundError("Student not found")
	ErrNoStudents         = NewResourceNotFoundError("No users found.")
	ErrNoStudentsInPage   = NewResourceNotFoundError("No accounts found.")
	ErrEmailAlreadyExists = NewConflictError("This email is already in use by a student.")
	ErrUnderage           = NewValidationError("You must be at least 18 years old to register.")
)

// Course and language errors
var (
	ErrLanguageNotFound   = NewResourceNotFoundError("Programming language not found")
	ErrLanguageExists     = NewConflictError("A programming language with this name already exists")
	ErrLanguageInUse      = NewConflictError("The programming language is referenced by existing courses")
	ErrCourseNotFound     = NewResourceNotFoundError("Course not found")
	ErrInvalidLanguageRef = NewValidationError("Invalid language_id. The specified language does not exist.")
)

// Enrollment errors
var (
	ErrAlreadyEnrolled = NewConflictError("The student is already enrolled in this course.")
	ErrNotEnrolled     = NewResourceNotFoundError("Enrollment not found. The student is not enrolled in this course.")
)

// NewResourceNotFoundError creates a not-found error carrying a client message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a conflict error carrying a client message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a permission error carrying a client message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error carrying a client message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying a client message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// Message returns the client-facing message of a CustomError found in the
// chain, or fallback.
func Message(err error, fallback string) string {
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
