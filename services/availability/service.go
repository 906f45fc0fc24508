package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skillswap/models"
	"skillswap/utils"

	"go.uber.org/zap"
)

// maxRangeDays caps availability range queries.
const maxRangeDays = 90

// commonAvailabilityTTL bounds staleness of cached intersection results.
const commonAvailabilityTTL = 30 * time.Second

func (s *DefaultService) GetUserAvailability(ctx context.Context, userID string) (*models.UserAvailability, error) {
	return s.Repo.FindByUserID(ctx, userID)
}

func (s *DefaultService) SetUserAvailability(ctx context.Context, userID string, req models.SetAvailabilityRequest) (*models.UserAvailability, error) {
	if req.Timezone == "" {
		return nil, newError(CodeValidation, "timezone is required")
	}
	if err := validateTemplates(req.RecurringAvailability); err != nil {
		return nil, err
	}
	for _, slot := range req.AvailableSlots {
		if _, err := utils.ParseDate(slot.Date); err != nil {
			return nil, newError(CodeValidation, err.Error())
		}
	}

	record := models.UserAvailability{
		UserID:                userID,
		Timezone:              req.Timezone,
		RecurringAvailability: req.RecurringAvailability,
		AvailableSlots:        req.AvailableSlots,
	}
	return s.Repo.Upsert(ctx, userID, record)
}

func (s *DefaultService) AddAvailableSlots(ctx context.Context, userID string, slots []models.NewSlot) (*models.UserAvailability, error) {
	if len(slots) == 0 {
		return nil, newError(CodeValidation, "no slots provided")
	}

	today := s.today()
	var future []models.NewSlot
	for _, slot := range slots {
		d, err := utils.ParseDate(slot.Date)
		if err != nil {
			return nil, newError(CodeValidation, err.Error())
		}
		if !utils.ValidTimeSlotLabel(slot.TimeSlot) {
			return nil, newError(CodeValidation, fmt.Sprintf("invalid time slot %q: expected HH:MM-HH:MM", slot.TimeSlot))
		}
		if d.After(today) {
			future = append(future, slot)
		}
	}
	if len(future) == 0 {
		return nil, newError(CodeAllSlotsInPast, "all provided slots are in the past")
	}

	existing, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Duplicate (date, timeSlot) pairs are merged away, both against the
	// stored record and within the batch itself.
	fresh := dedupeNewSlots(existing, future)
	if len(fresh) == 0 {
		return existing, nil
	}
	return s.Repo.AddSlots(ctx, userID, fresh)
}

func (s *DefaultService) RemoveAvailableSlot(ctx context.Context, userID, date, timeSlot string) error {
	record, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if record == nil {
		return newError(CodeSlotNotFound, "user availability not found")
	}
	if slot := record.FindSlot(date, timeSlot); slot != nil && slot.IsBooked {
		return newError(CodeSlotBooked, "cannot remove a booked time slot")
	}

	removed, err := s.Repo.RemoveSlot(ctx, userID, date, timeSlot)
	if err != nil {
		return err
	}
	if !removed {
		return newError(CodeSlotNotFound, fmt.Sprintf("no slot at %s %s", date, timeSlot))
	}
	return nil
}

func (s *DefaultService) GetAvailableSlots(ctx context.Context, userID, startDate, endDate string) ([]models.AvailabilitySlot, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}
	return s.slotsInRange(ctx, userID, startDate, endDate, false)
}

func (s *DefaultService) GetUserBookedSlots(ctx context.Context, userID, startDate, endDate string) ([]models.AvailabilitySlot, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}
	return s.slotsInRange(ctx, userID, startDate, endDate, true)
}

func (s *DefaultService) SetRecurringAvailability(ctx context.Context, userID string, templates []models.RecurringAvailability) (*models.UserAvailability, error) {
	if err := validateTemplates(templates); err != nil {
		return nil, err
	}
	return s.Repo.SetRecurring(ctx, userID, templates)
}

func (s *DefaultService) GetCommonAvailability(ctx context.Context, userIDA, userIDB, startDate, endDate string) ([]models.AvailabilitySlot, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("commonAvail:%s:%s:%s:%s", userIDA, userIDB, startDate, endDate)
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached []models.AvailabilitySlot
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	slotsA, err := s.slotsInRange(ctx, userIDA, startDate, endDate, false)
	if err != nil {
		return nil, err
	}
	slotsB, err := s.slotsInRange(ctx, userIDB, startDate, endDate, false)
	if err != nil {
		return nil, err
	}

	theirs := make(map[[2]string]bool, len(slotsB))
	for _, slot := range slotsB {
		theirs[[2]string{slot.Date, slot.TimeSlot}] = true
	}

	common := []models.AvailabilitySlot{}
	for _, slot := range slotsA {
		if theirs[[2]string{slot.Date, slot.TimeSlot}] {
			common = append(common, slot)
		}
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(common); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, raw, commonAvailabilityTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache common availability", zap.Error(err))
			}
		}
	}
	return common, nil
}

func (s *DefaultService) IsSlotAvailable(ctx context.Context, userID, date, timeSlot string) (bool, error) {
	record, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if record == nil {
		return false, nil
	}
	slot := record.FindSlot(date, timeSlot)
	return slot != nil && !slot.IsBooked, nil
}

// slotsInRange filters the user's slots by date window and booked state.
// A missing record yields an empty result, not an error.
func (s *DefaultService) slotsInRange(ctx context.Context, userID, startDate, endDate string, booked bool) ([]models.AvailabilitySlot, error) {
	record, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := []models.AvailabilitySlot{}
	if record == nil {
		return result, nil
	}
	for _, slot := range record.AvailableSlots {
		if slot.IsBooked == booked && slot.Date >= startDate && slot.Date <= endDate {
			result = append(result, slot)
		}
	}
	return result, nil
}

// today returns the current calendar date at midnight UTC.
func (s *DefaultService) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// validateRange rejects malformed, inverted, or oversized date windows.
// Dates are lexicographically comparable in their wire form; parsing is only
// needed to measure the span.
func validateRange(startDate, endDate string) error {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return newError(CodeValidation, err.Error())
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return newError(CodeValidation, err.Error())
	}
	if start.After(end) {
		return newError(CodeInvalidRange, "start date must be before end date")
	}
	if utils.DaysBetween(start, end) > maxRangeDays {
		return newError(CodeRangeTooLarge, fmt.Sprintf("date range too large, maximum %d days allowed", maxRangeDays))
	}
	return nil
}

// validateTemplates rejects the whole batch when any dayOfWeek is out of
// range; no partial apply.
func validateTemplates(templates []models.RecurringAvailability) error {
	for _, t := range templates {
		if t.DayOfWeek < 0 || t.DayOfWeek > 6 {
			return newError(CodeInvalidDayOfWeek, fmt.Sprintf("invalid day of week %d: must be 0-6 (Sunday-Saturday)", t.DayOfWeek))
		}
	}
	return nil
}

// dedupeNewSlots drops batch entries whose (date, timeSlot) already exists in
// the stored record or earlier in the batch, returning ready-to-store slots.
func dedupeNewSlots(existing *models.UserAvailability, batch []models.NewSlot) []models.AvailabilitySlot {
	seen := make(map[[2]string]bool)
	if existing != nil {
		for _, slot := range existing.AvailableSlots {
			seen[[2]string{slot.Date, slot.TimeSlot}] = true
		}
	}

	var fresh []models.AvailabilitySlot
	for _, slot := range batch {
		key := [2]string{slot.Date, slot.TimeSlot}
		if seen[key] {
			continue
		}
		seen[key] = true
		fresh = append(fresh, models.AvailabilitySlot{
			Date:     slot.Date,
			TimeSlot: slot.TimeSlot,
			IsBooked: false,
			Notes:    slot.Notes,
		})
	}
	return fresh
}
