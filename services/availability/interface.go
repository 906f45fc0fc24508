package availability

import (
	"context"
	"time"

	availabilityRepo "skillswap/database/repository/availability"
	"skillswap/models"

	"github.com/go-redis/redis/v8"
)

// Service defines all reads and writes of a user's availability, with the
// validation the store itself does not enforce.
type Service interface {
	// GetUserAvailability returns the full record, or nil when never set.
	GetUserAvailability(ctx context.Context, userID string) (*models.UserAvailability, error)
	// SetUserAvailability upserts the whole record. Timezone is required.
	SetUserAvailability(ctx context.Context, userID string, req models.SetAvailabilityRequest) (*models.UserAvailability, error)
	// AddAvailableSlots appends future-dated slots, dropping past dates and
	// duplicate (date, timeSlot) pairs.
	AddAvailableSlots(ctx context.Context, userID string, slots []models.NewSlot) (*models.UserAvailability, error)
	// RemoveAvailableSlot deletes an unbooked slot.
	RemoveAvailableSlot(ctx context.Context, userID, date, timeSlot string) error
	// GetAvailableSlots returns unbooked slots within [startDate, endDate].
	GetAvailableSlots(ctx context.Context, userID, startDate, endDate string) ([]models.AvailabilitySlot, error)
	// GetUserBookedSlots returns booked slots within [startDate, endDate].
	GetUserBookedSlots(ctx context.Context, userID, startDate, endDate string) ([]models.AvailabilitySlot, error)
	// SetRecurringAvailability replaces the weekly templates; the whole batch
	// is rejected if any dayOfWeek is out of range.
	SetRecurringAvailability(ctx context.Context, userID string, templates []models.RecurringAvailability) (*models.UserAvailability, error)
	// GenerateSlotsFromRecurring expands active weekly templates into dated
	// slots over [startDate, endDate]; re-running the same range is a no-op.
	GenerateSlotsFromRecurring(ctx context.Context, userID, startDate, endDate string) (*models.UserAvailability, error)
	// BulkGenerateSlots cross-multiplies matching weekdays with time slots.
	BulkGenerateSlots(ctx context.Context, userID string, cfg models.BulkGenerateConfig) (*models.UserAvailability, error)
	// GetCommonAvailability intersects two users' unbooked slots, ordered by
	// the first user's slot order.
	GetCommonAvailability(ctx context.Context, userIDA, userIDB, startDate, endDate string) ([]models.AvailabilitySlot, error)
	// IsSlotAvailable reports whether the user holds an unbooked slot at
	// (date, timeSlot).
	IsSlotAvailable(ctx context.Context, userID, date, timeSlot string) (bool, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo availabilityRepo.AvailabilityRepository
	// Cache, when set, holds short-lived common-availability results.
	Cache *redis.Client
	// Now is the clock; overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

// NewService constructs a DefaultService with the real clock.
func NewService(repo availabilityRepo.AvailabilityRepository, cache *redis.Client) *DefaultService {
	return &DefaultService{Repo: repo, Cache: cache, Now: time.Now}
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
