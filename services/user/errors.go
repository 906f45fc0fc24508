package user

import "errors"

const (
	CodeValidation         = "validationError"
	CodeEmailTaken         = "emailTaken"
	CodeUserNotFound       = "userNotFound"
	CodeInvalidCredentials = "invalidCredentials"
)

type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the code from a service error, or "" for foreign errors.
func CodeOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
