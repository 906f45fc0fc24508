package models

import (
	"strings"
	"time"
)

// Connection status lifecycle.
const (
	ConnectionPending   = "pending"
	ConnectionAccepted  = "accepted"
	ConnectionDeclined  = "declined"
	ConnectionCancelled = "cancelled"
)

// Connection types.
const (
	ConnectionSkillSwap     = "skill-swap"
	ConnectionMentorship    = "mentorship"
	ConnectionCollaboration = "collaboration"
)

// Scheduled session statuses.
const (
	SessionScheduled = "scheduled"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// ScheduledSession is one agreed meeting inside a connection, identified by
// its index in the ScheduledSlots list.
type ScheduledSession struct {
	Date        string `bson:"date" json:"date"` // "2006-01-02"
	TimeSlot    string `bson:"timeSlot" json:"timeSlot"`
	Duration    int    `bson:"duration" json:"duration"` // minutes
	Status      string `bson:"status" json:"status"`
	MeetingLink string `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	Notes       string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Connection is a bilateral skill-exchange agreement between two users.
// At most one connection exists per unordered user pair; PairKey is the
// canonical form backing that unique index.
type Connection struct {
	ID              string             `bson:"id" json:"id"`
	PairKey         string             `bson:"pairKey" json:"-"`
	Requester       string             `bson:"requester" json:"requester"`
	Recipient       string             `bson:"recipient" json:"recipient"`
	Status          string             `bson:"status" json:"status"`
	ConnectionType  string             `bson:"connectionType" json:"connectionType"`
	Message         string             `bson:"message,omitempty" json:"message,omitempty"`
	SkillsOffered   []string           `bson:"skillsOffered" json:"skillsOffered"`
	SkillsRequested []string           `bson:"skillsRequested" json:"skillsRequested"`
	ScheduledSlots  []ScheduledSession `bson:"scheduledSlots" json:"scheduledSlots"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PairKeyFor canonicalises an unordered user pair into a single index key.
func PairKeyFor(userA, userB string) string {
	if strings.Compare(userA, userB) > 0 {
		userA, userB = userB, userA
	}
	return userA + ":" + userB
}

// Involves reports whether the given user is a party to the connection.
func (c *Connection) Involves(userID string) bool {
	return c.Requester == userID || c.Recipient == userID
}

// OtherParty returns the counterpart of userID, or "" when userID is not a
// party at all.
func (c *Connection) OtherParty(userID string) string {
	switch userID {
	case c.Requester:
		return c.Recipient
	case c.Recipient:
		return c.Requester
	}
	return ""
}

// ValidConnectionType reports whether t is one of the supported kinds.
func ValidConnectionType(t string) bool {
	switch t {
	case ConnectionSkillSwap, ConnectionMentorship, ConnectionCollaboration:
		return true
	}
	return false
}

// ConnectionRequestInput is the payload for creating a connection request.
type ConnectionRequestInput struct {
	RecipientID     string   `json:"recipientId" binding:"required"`
	ConnectionType  string   `json:"connectionType" binding:"required"`
	Message         string   `json:"message,omitempty"`
	SkillsOffered   []string `json:"skillsOffered"`
	SkillsRequested []string `json:"skillsRequested"`
}

// ScheduleSessionInput is the payload for scheduling a session on an
// accepted connection.
type ScheduleSessionInput struct {
	Date        string `json:"date" binding:"required"`
	TimeSlot    string `json:"timeSlot" binding:"required"`
	Duration    int    `json:"duration,omitempty"`
	MeetingLink string `json:"meetingLink,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
