package notification

import (
	"context"
	"time"

	messageRepo "skillswap/database/repository/message"
	"skillswap/models"

	"github.com/google/uuid"
)

// NotificationService delivers platform messages to users. Delivery is
// in-app only; messages land in the user's inbox and are fetched over HTTP.
type NotificationService interface {
	SendToUser(ctx context.Context, userID, title, content, messageType, sentBy string) error
	Broadcast(ctx context.Context, input models.BroadcastInput, sentBy string) (*models.PlatformMessage, error)
	GetUserMessages(ctx context.Context, userID string) ([]models.PlatformMessage, error)
	MarkMessageRead(ctx context.Context, messageID, userID string) (bool, error)
}

type DefaultNotificationService struct {
	Repo messageRepo.MessageRepository
}

func NewService(repo messageRepo.MessageRepository) *DefaultNotificationService {
	return &DefaultNotificationService{Repo: repo}
}

func (s *DefaultNotificationService) SendToUser(ctx context.Context, userID, title, content, messageType, sentBy string) error {
	if messageType == "" {
		messageType = models.MessageAnnouncement
	}
	msg := &models.PlatformMessage{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		Type:      messageType,
		SentBy:    sentBy,
		CreatedAt: time.Now().UTC(),
	}
	return s.Repo.Create(ctx, msg)
}

// Broadcast stores a message with no recipient; every user's inbox query
// picks it up.
func (s *DefaultNotificationService) Broadcast(ctx context.Context, input models.BroadcastInput, sentBy string) (*models.PlatformMessage, error) {
	messageType := input.Type
	if messageType == "" {
		messageType = models.MessageAnnouncement
	}
	msg := &models.PlatformMessage{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Content:   input.Content,
		Type:      messageType,
		SentBy:    sentBy,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *DefaultNotificationService) GetUserMessages(ctx context.Context, userID string) ([]models.PlatformMessage, error) {
	return s.Repo.FindForUser(ctx, userID)
}

func (s *DefaultNotificationService) MarkMessageRead(ctx context.Context, messageID, userID string) (bool, error) {
	return s.Repo.MarkRead(ctx, messageID, userID)
}
