package connection

import "errors"

const (
	CodeValidation               = "validationError"
	CodeNotFound                 = "connectionNotFound"
	CodeSelfConnection           = "selfConnection"
	CodeConnectionExists         = "connectionExists"
	CodeNotAuthorized            = "notAuthorized"
	CodeNotPending               = "notPending"
	CodeNotAccepted              = "notAccepted"
	CodeNotScheduled             = "notScheduled"
	CodeSlotNotFound             = "slotNotFound"
	CodeSlotNotMutuallyAvailable = "slotNotMutuallyAvailable"
	CodeBookingFailed            = "bookingFailed"
)

// Error carries a stable machine-readable code alongside a human message.
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
