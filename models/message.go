package models

import "time"

// Platform message kinds.
const (
	MessageAnnouncement = "announcement"
	MessageMaintenance  = "maintenance"
	MessageReminder     = "reminder"
	MessageWarning      = "warning"
)

// PlatformMessage is an in-app notification delivered to one user or, for
// admin broadcasts, to everyone (empty UserID).
type PlatformMessage struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId,omitempty" json:"userId,omitempty"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Type      string    `bson:"type" json:"type"`
	SentBy    string    `bson:"sentBy" json:"sentBy"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// BroadcastInput is the admin payload for a platform-wide message.
type BroadcastInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Type    string `json:"type,omitempty"`
}
