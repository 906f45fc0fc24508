package models

import "time"

// DateLayout is the wire format for calendar dates. Slots are date-granular;
// the time of day lives in the TimeSlot label (e.g. "09:00-10:00").
const DateLayout = "2006-01-02"

// AvailabilitySlot is one declared free window inside a user's availability
// record. A booked slot always carries both the counterpart and the owning
// connection.
type AvailabilitySlot struct {
	Date         string `bson:"date" json:"date"` // "2006-01-02"
	TimeSlot     string `bson:"timeSlot" json:"timeSlot"`
	IsBooked     bool   `bson:"isBooked" json:"isBooked"`
	BookedBy     string `bson:"bookedBy,omitempty" json:"bookedBy,omitempty"`
	ConnectionID string `bson:"connectionId,omitempty" json:"connectionId,omitempty"`
	Notes        string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Matches reports whether the slot occupies the given (date, timeSlot) pair.
func (s AvailabilitySlot) Matches(date, timeSlot string) bool {
	return s.Date == date && s.TimeSlot == timeSlot
}

// RecurringAvailability is a weekday-keyed template. Inactive templates are
// ignored by slot generation but kept for later reactivation.
type RecurringAvailability struct {
	DayOfWeek int      `bson:"dayOfWeek" json:"dayOfWeek"` // 0 (Sunday) .. 6 (Saturday)
	TimeSlots []string `bson:"timeSlots" json:"timeSlots"`
	IsActive  bool     `bson:"isActive" json:"isActive"`
}

// UserAvailability is the per-user availability record, one document per user.
type UserAvailability struct {
	UserID                string                  `bson:"userId" json:"userId"`
	Timezone              string                  `bson:"timezone" json:"timezone"`
	RecurringAvailability []RecurringAvailability `bson:"recurringAvailability" json:"recurringAvailability"`
	AvailableSlots        []AvailabilitySlot      `bson:"availableSlots" json:"availableSlots"`
	CreatedAt             time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// FindSlot returns the first slot at (date, timeSlot), or nil.
func (a *UserAvailability) FindSlot(date, timeSlot string) *AvailabilitySlot {
	for i := range a.AvailableSlots {
		if a.AvailableSlots[i].Matches(date, timeSlot) {
			return &a.AvailableSlots[i]
		}
	}
	return nil
}

// HasSlot reports whether any slot occupies (date, timeSlot).
func (a *UserAvailability) HasSlot(date, timeSlot string) bool {
	return a.FindSlot(date, timeSlot) != nil
}

// SetAvailabilityRequest is the payload for replacing a user's availability
// record wholesale.
type SetAvailabilityRequest struct {
	Timezone              string                  `json:"timezone" binding:"required"`
	RecurringAvailability []RecurringAvailability `json:"recurringAvailability,omitempty"`
	AvailableSlots        []AvailabilitySlot      `json:"availableSlots,omitempty"`
}

// NewSlot is one entry in an add-slots batch.
type NewSlot struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
	Notes    string `json:"notes,omitempty"`
}

// BulkGenerateConfig drives cartesian slot generation: every matching weekday
// in [StartDate, EndDate] crossed with TimeSlots, minus ExcludeDates.
type BulkGenerateConfig struct {
	StartDate    string   `json:"startDate" binding:"required"`
	EndDate      string   `json:"endDate" binding:"required"`
	DaysOfWeek   []int    `json:"daysOfWeek" binding:"required"`
	TimeSlots    []string `json:"timeSlots" binding:"required"`
	ExcludeDates []string `json:"excludeDates,omitempty"`
}
