package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Application errors
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("school already has an application")
)

// School errors
var (
	ErrSchoolNotFound = errors.New("school not found")
	ErrOkulNotFound   = errors.New("school not found in national directory")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Post errors
var (
	ErrPostNotFound         = errors.New("post not found")
	ErrPostCategoryNotFound = errors.New("post category not found")
)

// Admin errors
var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
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

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// NewValidationError creates a validation failure with a specific message
// naming the missing field and, where relevant, the offending student.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewApplicationExistsError creates the conflict error returned when a
// school already has an application. The existing application id travels
// in the details so the response can surface it.
func NewApplicationExistsError(existingID int64) error {
	return &CustomError{
		Err:     ErrApplicationExists,
		Message: "school already has an application",
		Details: map[string]interface{}{
			"existingApplicationId": existingID,
		},
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
