package errors

import (
	"addressbook/internal/errors"
)

// AsAppError returns err as an AppError when one is found in its chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// IsUserFacing reports whether err should be shown to the user as is.
// Every AppError except internal ones qualifies.
func IsUserFacing(err error) bool {
	appErr, ok := AsAppError(err)
	if !ok {
		return false
	}

	return appErr.HTTPCode() < 500 || appErr.ErrorCode() == "ADDRESS_LOOKUP_FAILED"
}
