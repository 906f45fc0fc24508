package availability_test

import (
	"context"
	"sync"

	"skillswap/models"
)

// fakeRepo is an in-memory stand-in for the Mongo repository. All reads hand
// out copies so tests cannot mutate stored state by accident.
type fakeRepo struct {
	mu      sync.Mutex
	records map[string]*models.UserAvailability
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*models.UserAvailability)}
}

func (f *fakeRepo) snapshot(userID string) *models.UserAvailability {
	r, ok := f.records[userID]
	if !ok {
		return nil
	}
	cp := *r
	cp.AvailableSlots = append([]models.AvailabilitySlot(nil), r.AvailableSlots...)
	cp.RecurringAvailability = append([]models.RecurringAvailability(nil), r.RecurringAvailability...)
	return &cp
}

func (f *fakeRepo) ensure(userID string) *models.UserAvailability {
	r, ok := f.records[userID]
	if !ok {
		r = &models.UserAvailability{UserID: userID, Timezone: "UTC"}
		f.records[userID] = r
	}
	return r
}

func (f *fakeRepo) FindByUserID(ctx context.Context, userID string) (*models.UserAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot(userID), nil
}

func (f *fakeRepo) Upsert(ctx context.Context, userID string, record models.UserAvailability) (*models.UserAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record.UserID = userID
	f.records[userID] = &record
	return f.snapshot(userID), nil
}

func (f *fakeRepo) AddSlots(ctx context.Context, userID string, slots []models.AvailabilitySlot) (*models.UserAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.ensure(userID)
	r.AvailableSlots = append(r.AvailableSlots, slots...)
	return f.snapshot(userID), nil
}

func (f *fakeRepo) RemoveSlot(ctx context.Context, userID, date, timeSlot string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[userID]
	if !ok {
		return false, nil
	}
	for i, slot := range r.AvailableSlots {
		if slot.Matches(date, timeSlot) {
			r.AvailableSlots = append(r.AvailableSlots[:i], r.AvailableSlots[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) SetRecurring(ctx context.Context, userID string, templates []models.RecurringAvailability) (*models.UserAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.ensure(userID)
	r.RecurringAvailability = templates
	return f.snapshot(userID), nil
}

func (f *fakeRepo) BookSlot(ctx context.Context, userID, date, timeSlot, bookedBy, connectionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[userID]
	if !ok {
		return false, nil
	}
	for i := range r.AvailableSlots {
		slot := &r.AvailableSlots[i]
		if slot.Matches(date, timeSlot) && !slot.IsBooked {
			slot.IsBooked = true
			slot.BookedBy = bookedBy
			slot.ConnectionID = connectionID
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) UnbookSlot(ctx context.Context, userID, date, timeSlot string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[userID]
	if !ok {
		return false, nil
	}
	for i := range r.AvailableSlots {
		slot := &r.AvailableSlots[i]
		if slot.Matches(date, timeSlot) {
			slot.IsBooked = false
			slot.BookedBy = ""
			slot.ConnectionID = ""
			return true, nil
		}
	}
	return false, nil
}
