package connection

import (
	"context"

	availabilityRepo "skillswap/database/repository/availability"
	connectionRepo "skillswap/database/repository/connection"
	"skillswap/models"
)

// Service manages connection requests between users and the sessions
// scheduled under them.
type Service interface {
	CreateConnectionRequest(ctx context.Context, requesterID string, input models.ConnectionRequestInput) (*models.Connection, error)
	AcceptConnection(ctx context.Context, connectionID, actingUserID string) (*models.Connection, error)
	DeclineConnection(ctx context.Context, connectionID, actingUserID string) (*models.Connection, error)
	CancelConnection(ctx context.Context, connectionID, actingUserID string) (*models.Connection, error)

	ScheduleSession(ctx context.Context, connectionID, actingUserID string, input models.ScheduleSessionInput) (*models.Connection, error)
	CancelSession(ctx context.Context, connectionID string, slotIndex int, actingUserID string) (*models.Connection, error)
	CompleteSession(ctx context.Context, connectionID string, slotIndex int, actingUserID, notes string) (*models.Connection, error)

	GetUserConnections(ctx context.Context, userID, status string) ([]models.Connection, error)
	GetPendingRequests(ctx context.Context, userID string) ([]models.Connection, error)
	GetSentRequests(ctx context.Context, userID string) ([]models.Connection, error)
}

// ReminderEnqueuer schedules a reminder notification for a booked session.
// Enqueue failures are logged, never surfaced to the caller.
type ReminderEnqueuer interface {
	ScheduleSessionReminder(ctx context.Context, conn *models.Connection, session models.ScheduledSession) error
}

type DefaultService struct {
	Repo         connectionRepo.ConnectionRepository
	Availability availabilityRepo.AvailabilityRepository
	Reminders    ReminderEnqueuer
}

func NewService(repo connectionRepo.ConnectionRepository, avail availabilityRepo.AvailabilityRepository, reminders ReminderEnqueuer) *DefaultService {
	return &DefaultService{Repo: repo, Availability: avail, Reminders: reminders}
}
