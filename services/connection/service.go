package connection

import (
	"context"
	"errors"
	"fmt"

	connectionRepo "skillswap/database/repository/connection"
	"skillswap/models"
	"skillswap/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultService) CreateConnectionRequest(ctx context.Context, requesterID string, input models.ConnectionRequestInput) (*models.Connection, error) {
	if !models.ValidConnectionType(input.ConnectionType) {
		return nil, newError(CodeValidation, fmt.Sprintf("invalid connection type %q", input.ConnectionType))
	}
	if requesterID == input.RecipientID {
		return nil, newError(CodeSelfConnection, "cannot connect to yourself")
	}

	existing, err := s.Repo.FindBetween(ctx, requesterID, input.RecipientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, newError(CodeConnectionExists, "connection already exists between these users")
	}

	conn := &models.Connection{
		ID:              uuid.New().String(),
		Requester:       requesterID,
		Recipient:       input.RecipientID,
		Status:          models.ConnectionPending,
		ConnectionType:  input.ConnectionType,
		Message:         input.Message,
		SkillsOffered:   input.SkillsOffered,
		SkillsRequested: input.SkillsRequested,
		ScheduledSlots:  []models.ScheduledSession{},
	}
	if err := s.Repo.Create(ctx, conn); err != nil {
		// The unique pair index closes the race between the existence check
		// and the insert.
		if errors.Is(err, connectionRepo.ErrDuplicatePair) {
			return nil, newError(CodeConnectionExists, "connection already exists between these users")
		}
		return nil, err
	}
	return conn, nil
}

func (s *DefaultService) AcceptConnection(ctx context.Context, connectionID, actingUserID string) (*models.Connection, error) {
	return s.answerRequest(ctx, connectionID, actingUserID, models.ConnectionAccepted)
}

func (s *DefaultService) DeclineConnection(ctx context.Context, connectionID, actingUserID string) (*models.Connection, error) {
	return s.answerRequest(ctx, connectionID, actingUserID, models.ConnectionDeclined)
}

// answerRequest resolves a pending request one way or the other. Only the
// recipient may answer, and only while the request is still pending.
func (s *DefaultService) answerRequest(ctx context.Context, connectionID, actingUserID, outcome string) (*models.Connection, error) {
	conn, err := s.mustFind(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.Recipient != actingUserID {
		return nil, newError(CodeNotAuthorized, "only the recipient can answer this connection request")
	}
	if conn.Status != models.ConnectionPending {
		return nil, newError(CodeNotPending, fmt.Sprintf("connection is %s, not pending", conn.Status))
	}

	updated, err := s.Repo.UpdateStatus(ctx, connectionID, outcome)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, newError(CodeNotFound, "connection not found")
	}
	return updated, nil
}

// CancelConnection releases every scheduled slot on both sides before moving
// the connection to cancelled. Compensation failures are collected and logged
// but do not block the transition; UnbookSlot is idempotent so a retry via a
// second cancel is safe.
func (s *DefaultService) CancelConnection(ctx context.Context, connectionID, actingUserID string) (*models.Connection, error) {
	conn, err := s.mustFind(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !conn.Involves(actingUserID) {
		return nil, newError(CodeNotAuthorized, "not authorized to cancel this connection")
	}

	var compErrs []error
	for i, session := range conn.ScheduledSlots {
		if session.Status != models.SessionScheduled {
			continue
		}
		for _, userID := range []string{conn.Requester, conn.Recipient} {
			if _, err := s.Availability.UnbookSlot(ctx, userID, session.Date, session.TimeSlot); err != nil {
				compErrs = append(compErrs, fmt.Errorf("session %d, user %s: %w", i, userID, err))
			}
		}
	}
	if len(compErrs) > 0 {
		utils.GetLogger().Warn("partial compensation while cancelling connection",
			zap.String("connectionId", connectionID),
			zap.Error(errors.Join(compErrs...)))
	}

	updated, err := s.Repo.UpdateStatus(ctx, connectionID, models.ConnectionCancelled)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, newError(CodeNotFound, "connection not found")
	}
	return updated, nil
}

func (s *DefaultService) GetUserConnections(ctx context.Context, userID, status string) ([]models.Connection, error) {
	return s.Repo.FindUserConnections(ctx, userID, status)
}

func (s *DefaultService) GetPendingRequests(ctx context.Context, userID string) ([]models.Connection, error) {
	return s.Repo.FindPendingForRecipient(ctx, userID)
}

func (s *DefaultService) GetSentRequests(ctx context.Context, userID string) ([]models.Connection, error) {
	return s.Repo.FindPendingForRequester(ctx, userID)
}

func (s *DefaultService) mustFind(ctx context.Context, connectionID string) (*models.Connection, error) {
	conn, err := s.Repo.FindByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, newError(CodeNotFound, "connection not found")
	}
	return conn, nil
}
