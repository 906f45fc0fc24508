package connection

import (
	"context"
	"fmt"

	"skillswap/models"
	"skillswap/utils"

	"go.uber.org/zap"
)

const defaultSessionDuration = 60 // minutes

// ScheduleSession books the same slot on both users' calendars and appends a
// scheduled session to the connection. If the second booking or the append
// fails, the bookings made so far are rolled back so neither calendar is left
// half-committed.
func (s *DefaultService) ScheduleSession(ctx context.Context, connectionID, actingUserID string, input models.ScheduleSessionInput) (*models.Connection, error) {
	conn, err := s.mustFind(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.Status != models.ConnectionAccepted {
		return nil, newError(CodeNotAccepted, "connection must be accepted before scheduling sessions")
	}
	if !conn.Involves(actingUserID) {
		return nil, newError(CodeNotAuthorized, "not authorized to schedule for this connection")
	}
	otherUserID := conn.OtherParty(actingUserID)

	if _, err := utils.ParseDate(input.Date); err != nil {
		return nil, newError(CodeValidation, err.Error())
	}
	if !utils.ValidTimeSlotLabel(input.TimeSlot) {
		return nil, newError(CodeValidation, fmt.Sprintf("invalid time slot %q: expected HH:MM-HH:MM", input.TimeSlot))
	}

	mineFree, err := s.slotFree(ctx, actingUserID, input.Date, input.TimeSlot)
	if err != nil {
		return nil, err
	}
	theirsFree, err := s.slotFree(ctx, otherUserID, input.Date, input.TimeSlot)
	if err != nil {
		return nil, err
	}
	if !mineFree || !theirsFree {
		return nil, newError(CodeSlotNotMutuallyAvailable, "this time slot is not available for both users")
	}

	booked, err := s.Availability.BookSlot(ctx, actingUserID, input.Date, input.TimeSlot, otherUserID, connectionID)
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, newError(CodeBookingFailed, "failed to book time slots")
	}

	booked, err = s.Availability.BookSlot(ctx, otherUserID, input.Date, input.TimeSlot, actingUserID, connectionID)
	if err != nil || !booked {
		s.compensateBookings(ctx, connectionID, input.Date, input.TimeSlot, actingUserID)
		if err != nil {
			return nil, err
		}
		return nil, newError(CodeBookingFailed, "failed to book time slots")
	}

	duration := input.Duration
	if duration <= 0 {
		duration = defaultSessionDuration
	}
	session := models.ScheduledSession{
		Date:        input.Date,
		TimeSlot:    input.TimeSlot,
		Duration:    duration,
		Status:      models.SessionScheduled,
		MeetingLink: input.MeetingLink,
		Notes:       input.Notes,
	}

	updated, err := s.Repo.AddScheduledSession(ctx, connectionID, session)
	if err != nil || updated == nil {
		s.compensateBookings(ctx, connectionID, input.Date, input.TimeSlot, actingUserID, otherUserID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", newError(CodeBookingFailed, "failed to schedule session"), err)
		}
		return nil, newError(CodeBookingFailed, "failed to schedule session")
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleSessionReminder(ctx, updated, session); err != nil {
			utils.GetLogger().Warn("failed to enqueue session reminder",
				zap.String("connectionId", connectionID),
				zap.Error(err))
		}
	}
	return updated, nil
}

// CancelSession releases the slot on both calendars and marks the session
// cancelled. Store errors during release are surfaced so the caller can
// retry; UnbookSlot is idempotent.
func (s *DefaultService) CancelSession(ctx context.Context, connectionID string, slotIndex int, actingUserID string) (*models.Connection, error) {
	conn, session, err := s.sessionForUpdate(ctx, connectionID, slotIndex, actingUserID)
	if err != nil {
		return nil, err
	}

	for _, userID := range []string{conn.Requester, conn.Recipient} {
		if _, err := s.Availability.UnbookSlot(ctx, userID, session.Date, session.TimeSlot); err != nil {
			return nil, err
		}
	}

	return s.Repo.UpdateScheduledSession(ctx, connectionID, slotIndex, map[string]interface{}{
		"status": models.SessionCancelled,
	})
}

// CompleteSession marks the session done. The calendar slots stay booked as a
// record of the session having taken place.
func (s *DefaultService) CompleteSession(ctx context.Context, connectionID string, slotIndex int, actingUserID, notes string) (*models.Connection, error) {
	if _, _, err := s.sessionForUpdate(ctx, connectionID, slotIndex, actingUserID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"status": models.SessionCompleted}
	if notes != "" {
		fields["notes"] = notes
	}
	return s.Repo.UpdateScheduledSession(ctx, connectionID, slotIndex, fields)
}

// sessionForUpdate loads the connection and validates that actingUserID may
// modify the session at slotIndex and that it is still scheduled.
func (s *DefaultService) sessionForUpdate(ctx context.Context, connectionID string, slotIndex int, actingUserID string) (*models.Connection, *models.ScheduledSession, error) {
	conn, err := s.mustFind(ctx, connectionID)
	if err != nil {
		return nil, nil, err
	}
	if !conn.Involves(actingUserID) {
		return nil, nil, newError(CodeNotAuthorized, "not authorized to manage sessions for this connection")
	}
	if slotIndex < 0 || slotIndex >= len(conn.ScheduledSlots) {
		return nil, nil, newError(CodeSlotNotFound, "scheduled slot not found")
	}
	session := &conn.ScheduledSlots[slotIndex]
	if session.Status != models.SessionScheduled {
		return nil, nil, newError(CodeNotScheduled, "session is not in scheduled status")
	}
	return conn, session, nil
}

func (s *DefaultService) slotFree(ctx context.Context, userID, date, timeSlot string) (bool, error) {
	record, err := s.Availability.FindByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if record == nil {
		return false, nil
	}
	slot := record.FindSlot(date, timeSlot)
	return slot != nil && !slot.IsBooked, nil
}

// compensateBookings unbooks the given users' slots after a partial booking.
// Failures are logged; the slot stays booked until a later cancel retries.
func (s *DefaultService) compensateBookings(ctx context.Context, connectionID, date, timeSlot string, userIDs ...string) {
	for _, userID := range userIDs {
		if _, err := s.Availability.UnbookSlot(ctx, userID, date, timeSlot); err != nil {
			utils.GetLogger().Error("failed to roll back slot booking",
				zap.String("connectionId", connectionID),
				zap.String("userId", userID),
				zap.String("date", date),
				zap.String("timeSlot", timeSlot),
				zap.Error(err))
		}
	}
}
