package connection_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	connectionRepo "skillswap/database/repository/connection"
	"skillswap/models"
)

// fakeConnRepo is an in-memory ConnectionRepository. Reads return copies so
// service code cannot mutate stored state in place.
type fakeConnRepo struct {
	mu          sync.Mutex
	byID        map[string]*models.Connection
	failAppend  bool
	failUpdates bool
}

func newFakeConnRepo() *fakeConnRepo {
	return &fakeConnRepo{byID: make(map[string]*models.Connection)}
}

func copyConn(c *models.Connection) *models.Connection {
	cp := *c
	cp.ScheduledSlots = append([]models.ScheduledSession(nil), c.ScheduledSlots...)
	return &cp
}

func (f *fakeConnRepo) Create(ctx context.Context, conn *models.Connection) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	pairKey := models.PairKeyFor(conn.Requester, conn.Recipient)
	for _, existing := range f.byID {
		if existing.PairKey == pairKey {
			return connectionRepo.ErrDuplicatePair
		}
	}
	conn.PairKey = pairKey
	f.byID[conn.ID] = copyConn(conn)
	return nil
}

func (f *fakeConnRepo) FindByID(ctx context.Context, id string) (*models.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return copyConn(c), nil
}

func (f *fakeConnRepo) FindBetween(ctx context.Context, userA, userB string) (*models.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pairKey := models.PairKeyFor(userA, userB)
	for _, c := range f.byID {
		if c.PairKey == pairKey {
			return copyConn(c), nil
		}
	}
	return nil, nil
}

func (f *fakeConnRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdates {
		return nil, errors.New("store unavailable")
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	c.Status = status
	return copyConn(c), nil
}

func (f *fakeConnRepo) list(match func(*models.Connection) bool) []models.Connection {
	var out []models.Connection
	for _, c := range f.byID {
		if match(c) {
			out = append(out, *copyConn(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeConnRepo) FindUserConnections(ctx context.Context, userID, status string) ([]models.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list(func(c *models.Connection) bool {
		return c.Involves(userID) && (status == "" || c.Status == status)
	}), nil
}

func (f *fakeConnRepo) FindPendingForRecipient(ctx context.Context, userID string) ([]models.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list(func(c *models.Connection) bool {
		return c.Recipient == userID && c.Status == models.ConnectionPending
	}), nil
}

func (f *fakeConnRepo) FindPendingForRequester(ctx context.Context, userID string) ([]models.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list(func(c *models.Connection) bool {
		return c.Requester == userID && c.Status == models.ConnectionPending
	}), nil
}

func (f *fakeConnRepo) AddScheduledSession(ctx context.Context, id string, session models.ScheduledSession) (*models.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAppend {
		return nil, errors.New("store unavailable")
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	c.ScheduledSlots = append(c.ScheduledSlots, session)
	return copyConn(c), nil
}

func (f *fakeConnRepo) UpdateScheduledSession(ctx context.Context, id string, index int, fields map[string]interface{}) (*models.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.byID[id]
	if !ok || index < 0 || index >= len(c.ScheduledSlots) {
		return nil, nil
	}
	session := &c.ScheduledSlots[index]
	if v, ok := fields["status"]; ok {
		session.Status = v.(string)
	}
	if v, ok := fields["notes"]; ok {
		session.Notes = v.(string)
	}
	return copyConn(c), nil
}

func (f *fakeConnRepo) FindUpcomingSessions(ctx context.Context, date string) ([]models.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list(func(c *models.Connection) bool {
		if c.Status != models.ConnectionAccepted {
			return false
		}
		for _, s := range c.ScheduledSlots {
			if s.Date == date && s.Status == models.SessionScheduled {
				return true
			}
		}
		return false
	}), nil
}

func (f *fakeConnRepo) FindAll(ctx context.Context) ([]models.Connection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list(func(*models.Connection) bool { return true }), nil
}

// fakeAvailRepo is the minimal in-memory availability store the booking flow
// touches. failBookFor makes BookSlot fail for one user to exercise rollback.
type fakeAvailRepo struct {
	mu          sync.Mutex
	records     map[string]*models.UserAvailability
	failBookFor string
}

func newFakeAvailRepo() *fakeAvailRepo {
	return &fakeAvailRepo{records: make(map[string]*models.UserAvailability)}
}

func (f *fakeAvailRepo) seed(userID string, slots ...models.AvailabilitySlot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[userID] = &models.UserAvailability{
		UserID:         userID,
		Timezone:       "UTC",
		AvailableSlots: slots,
	}
}

func (f *fakeAvailRepo) slotAt(userID, date, timeSlot string) *models.AvailabilitySlot {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[userID]
	if !ok {
		return nil
	}
	if slot := r.FindSlot(date, timeSlot); slot != nil {
		cp := *slot
		return &cp
	}
	return nil
}

func (f *fakeAvailRepo) FindByUserID(ctx context.Context, userID string) (*models.UserAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	cp := *r
	cp.AvailableSlots = append([]models.AvailabilitySlot(nil), r.AvailableSlots...)
	return &cp, nil
}

func (f *fakeAvailRepo) Upsert(ctx context.Context, userID string, record models.UserAvailability) (*models.UserAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record.UserID = userID
	f.records[userID] = &record
	return &record, nil
}

func (f *fakeAvailRepo) AddSlots(ctx context.Context, userID string, slots []models.AvailabilitySlot) (*models.UserAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[userID]
	if !ok {
		r = &models.UserAvailability{UserID: userID, Timezone: "UTC"}
		f.records[userID] = r
	}
	r.AvailableSlots = append(r.AvailableSlots, slots...)
	return r, nil
}

func (f *fakeAvailRepo) RemoveSlot(ctx context.Context, userID, date, timeSlot string) (bool, error) {
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

func (f *fakeAvailRepo) SetRecurring(ctx context.Context, userID string, templates []models.RecurringAvailability) (*models.UserAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[userID]
	if !ok {
		r = &models.UserAvailability{UserID: userID, Timezone: "UTC"}
		f.records[userID] = r
	}
	r.RecurringAvailability = templates
	return r, nil
}

func (f *fakeAvailRepo) BookSlot(ctx context.Context, userID, date, timeSlot, bookedBy, connectionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failBookFor == userID {
		return false, errors.New("store unavailable")
	}
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

func (f *fakeAvailRepo) UnbookSlot(ctx context.Context, userID, date, timeSlot string) (bool, error) {
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

// fakeReminders records reminder enqueues.
type fakeReminders struct {
	mu    sync.Mutex
	calls []models.ScheduledSession
	fail  bool
}

func (f *fakeReminders) ScheduleSessionReminder(ctx context.Context, conn *models.Connection, session models.ScheduledSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("queue unavailable")
	}
	f.calls = append(f.calls, session)
	return nil
}
