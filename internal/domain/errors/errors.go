package errors

import (
	"net/http"

	"addressbook/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying details
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors that share the same business code, so copies made by
// WithDetails still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Search input errors
	ErrSearchFieldsRequired = NewBaseError(
		http.StatusBadRequest,
		"SEARCH_FIELDS_REQUIRED",
		"Postcode and house number fields mandatory!",
		"",
	)

	ErrSearchFieldsNotDigits = NewBaseError(
		http.StatusBadRequest,
		"SEARCH_FIELDS_NOT_DIGITS",
		"Postcode and house number must be all digits!",
		"",
	)

	ErrPostcodeTooShort = NewBaseError(
		http.StatusBadRequest,
		"POSTCODE_TOO_SHORT",
		"Postcode must be at least 4 digits",
		"",
	)

	// Person and selection errors
	ErrPersonNameRequired = NewBaseError(
		http.StatusBadRequest,
		"PERSON_NAME_REQUIRED",
		"First name and last name fields mandatory!",
		"",
	)

	ErrNoAddressSelected = NewBaseError(
		http.StatusBadRequest,
		"NO_ADDRESS_SELECTED",
		"No address selected, try to select an address or find one if you haven't",
		"",
	)

	ErrSelectedAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"SELECTED_ADDRESS_NOT_FOUND",
		"Selected address not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DefaultLookupMessage is shown when the lookup source fails without a message.
const DefaultLookupMessage = "Unexpected error"

// LookupError is a failure reported by the address search source.
// Its message is surfaced to the user verbatim.
type LookupError struct {
	message    string
	statusCode int
	err        error
}

// NewLookupError creates a lookup error with the upstream message and status.
// An empty message falls back to DefaultLookupMessage.
func NewLookupError(message string, statusCode int, cause error) *LookupError {
	if message == "" {
		message = DefaultLookupMessage
	}

	return &LookupError{
		message:    message,
		statusCode: statusCode,
		err:        cause,
	}
}

// Error implements the error interface
func (e *LookupError) Error() string {
	if e.err != nil {
		return errors.Wrap(e.err, e.message).Error()
	}

	return e.message
}

// Unwrap returns the underlying transport or decoding error, if any
func (e *LookupError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *LookupError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *LookupError) ErrorCode() string {
	return "ADDRESS_LOOKUP_FAILED"
}

// Message returns the upstream message
func (e *LookupError) Message() string {
	return e.message
}

// Details returns the upstream status code, when one was received
func (e *LookupError) Details() string {
	if e.statusCode == 0 {
		return ""
	}

	return http.StatusText(e.statusCode)
}

// StatusCode returns the status the lookup source replied with, or 0 on transport failure
func (e *LookupError) StatusCode() int {
	return e.statusCode
}
