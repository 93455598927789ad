package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrAdmissionNoExists      = errors.New("admission number already exists")
	ErrStudentNotGraduated    = errors.New("student is not graduated")
	ErrTerminalForm           = errors.New("terminal form cannot be promoted")
	ErrUnknownForm            = errors.New("unknown form")
	ErrUnknownPromotionAction = errors.New("unknown promotion action")
)

// Admin errors
var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Campaign errors
var (
	ErrCampaignNotFound         = errors.New("campaign not found")
	ErrCampaignAlreadyPublished = errors.New("campaign already published")
	ErrNoRecipients             = errors.New("recipient list is empty")
)

// Resource errors
var (
	ErrLearningResourceNotFound = errors.New("learning resource not found")
	ErrNoFilesAttached          = errors.New("no files attached")
)

// Council errors
var (
	ErrCouncilMemberNotFound = errors.New("council member not found")
	ErrUnknownPosition       = errors.New("unknown council position")
	ErrClassMismatch         = errors.New("position class does not match student class")
)

// News errors
var (
	ErrNewsItemNotFound = errors.New("news item not found")
	ErrEventDateMissing = errors.New("events require an event date")
)

// Subscriber errors
var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrAlreadySubscribed  = errors.New("email already subscribed")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
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

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}
