package availability

import "errors"

// Caller-facing error codes. Anything not on this list is an infrastructure
// fault and is propagated unwrapped.
const (
	CodeValidation       = "validationError"
	CodeInvalidRange     = "invalidRange"
	CodeRangeTooLarge    = "rangeTooLarge"
	CodeAllSlotsInPast   = "allSlotsInPast"
	CodeSlotNotFound     = "slotNotFound"
	CodeSlotBooked       = "slotBooked"
	CodeInvalidDayOfWeek = "invalidDayOfWeek"
	CodeNoSlotsGenerated = "noSlotsGenerated"
)

// Error is a recoverable, caller-facing availability failure.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func newError(code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// CodeOf extracts the domain error code, or "" for infrastructure errors.
func CodeOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
