package availability

import (
	"context"

	"skillswap/models"
	"skillswap/utils"
)

// GenerateSlotsFromRecurring expands the user's active weekly templates into
// concrete slots across [startDate, endDate]. Generation is idempotent:
// dates already holding a slot with the same time label are skipped, so
// re-running over an overlapping window adds nothing twice.
func (s *DefaultService) GenerateSlotsFromRecurring(ctx context.Context, userID, startDate, endDate string) (*models.UserAvailability, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, newError(CodeValidation, err.Error())
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, newError(CodeValidation, err.Error())
	}
	if start.After(end) {
		return nil, newError(CodeInvalidRange, "start date must be before end date")
	}
	if today := s.today(); start.Before(today) {
		start = today
	}

	record, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record == nil || len(record.RecurringAvailability) == 0 {
		return record, nil
	}

	seen := make(map[[2]string]bool, len(record.AvailableSlots))
	for _, slot := range record.AvailableSlots {
		seen[[2]string{slot.Date, slot.TimeSlot}] = true
	}

	var generated []models.AvailabilitySlot
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := utils.FormatDate(day)
		weekday := int(day.Weekday())
		for _, template := range record.RecurringAvailability {
			if !template.IsActive || template.DayOfWeek != weekday {
				continue
			}
			for _, timeSlot := range template.TimeSlots {
				key := [2]string{date, timeSlot}
				if seen[key] {
					continue
				}
				seen[key] = true
				generated = append(generated, models.AvailabilitySlot{
					Date:     date,
					TimeSlot: timeSlot,
				})
			}
		}
	}

	if len(generated) == 0 {
		return record, nil
	}
	return s.Repo.AddSlots(ctx, userID, generated)
}

// BulkGenerateSlots creates slots for every combination of requested weekday
// and time label inside the window, minus excluded dates.
func (s *DefaultService) BulkGenerateSlots(ctx context.Context, userID string, cfg models.BulkGenerateConfig) (*models.UserAvailability, error) {
	start, err := utils.ParseDate(cfg.StartDate)
	if err != nil {
		return nil, newError(CodeValidation, err.Error())
	}
	end, err := utils.ParseDate(cfg.EndDate)
	if err != nil {
		return nil, newError(CodeValidation, err.Error())
	}
	if start.After(end) {
		return nil, newError(CodeInvalidRange, "start date must be before end date")
	}
	for _, day := range cfg.DaysOfWeek {
		if day < 0 || day > 6 {
			return nil, newError(CodeInvalidDayOfWeek, "days of week must be 0-6 (Sunday-Saturday)")
		}
	}

	wantedDays := make(map[int]bool, len(cfg.DaysOfWeek))
	for _, day := range cfg.DaysOfWeek {
		wantedDays[day] = true
	}
	excluded := make(map[string]bool, len(cfg.ExcludeDates))
	for _, date := range cfg.ExcludeDates {
		excluded[date] = true
	}

	var batch []models.NewSlot
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := utils.FormatDate(day)
		if excluded[date] || !wantedDays[int(day.Weekday())] {
			continue
		}
		for _, timeSlot := range cfg.TimeSlots {
			batch = append(batch, models.NewSlot{Date: date, TimeSlot: timeSlot})
		}
	}
	if len(batch) == 0 {
		return nil, newError(CodeNoSlotsGenerated, "no valid slots generated with the provided configuration")
	}

	existing, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	fresh := dedupeNewSlots(existing, batch)
	if len(fresh) == 0 {
		return existing, nil
	}
	return s.Repo.AddSlots(ctx, userID, fresh)
}
