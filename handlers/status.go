package handlers

import (
	"net/http"

	"skillswap/services/availability"
	"skillswap/services/connection"
	"skillswap/services/user"
)

// availabilityStatus maps availability service error codes to HTTP statuses.
func availabilityStatus(err error) int {
	switch availability.CodeOf(err) {
	case availability.CodeValidation,
		availability.CodeInvalidRange,
		availability.CodeRangeTooLarge,
		availability.CodeAllSlotsInPast,
		availability.CodeInvalidDayOfWeek,
		availability.CodeNoSlotsGenerated:
		return http.StatusBadRequest
	case availability.CodeSlotNotFound:
		return http.StatusNotFound
	case availability.CodeSlotBooked:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// connectionStatus maps connection service error codes to HTTP statuses.
func connectionStatus(err error) int {
	switch connection.CodeOf(err) {
	case connection.CodeValidation, connection.CodeSelfConnection:
		return http.StatusBadRequest
	case connection.CodeNotFound, connection.CodeSlotNotFound:
		return http.StatusNotFound
	case connection.CodeNotAuthorized:
		return http.StatusForbidden
	case connection.CodeConnectionExists,
		connection.CodeNotPending,
		connection.CodeNotAccepted,
		connection.CodeNotScheduled,
		connection.CodeSlotNotMutuallyAvailable,
		connection.CodeBookingFailed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// userStatus maps user service error codes to HTTP statuses.
func userStatus(err error) int {
	switch user.CodeOf(err) {
	case user.CodeValidation:
		return http.StatusBadRequest
	case user.CodeEmailTaken:
		return http.StatusConflict
	case user.CodeUserNotFound:
		return http.StatusNotFound
	case user.CodeInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
