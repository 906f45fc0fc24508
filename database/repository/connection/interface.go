// File: database/repository/connection/interface.go
package connectionRepo

import (
	"context"
	"fmt"

	"skillswap/database"
	"skillswap/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ConnectionRepository defines data access for connection records and their
// embedded scheduled sessions.
type ConnectionRepository interface {
	// Create inserts a new connection. Violating the unordered-pair unique
	// index surfaces as a duplicate-key error.
	Create(ctx context.Context, conn *models.Connection) error
	// FindByID returns the connection, or (nil, nil) when none exists.
	FindByID(ctx context.Context, id string) (*models.Connection, error)
	// FindBetween returns the connection between two users in either
	// direction, any status, or (nil, nil).
	FindBetween(ctx context.Context, userA, userB string) (*models.Connection, error)
	// UpdateStatus transitions the connection and returns the updated record.
	UpdateStatus(ctx context.Context, id, status string) (*models.Connection, error)
	// FindUserConnections lists connections the user is party to, newest
	// first, optionally filtered by status ("" for all).
	FindUserConnections(ctx context.Context, userID, status string) ([]models.Connection, error)
	// FindPendingForRecipient lists pending requests addressed to the user.
	FindPendingForRecipient(ctx context.Context, userID string) ([]models.Connection, error)
	// FindPendingForRequester lists pending requests the user has sent.
	FindPendingForRequester(ctx context.Context, userID string) ([]models.Connection, error)
	// AddScheduledSession appends a session and returns the updated record.
	AddScheduledSession(ctx context.Context, id string, session models.ScheduledSession) (*models.Connection, error)
	// UpdateScheduledSession patches fields of the session at index and
	// returns the updated record.
	UpdateScheduledSession(ctx context.Context, id string, index int, fields map[string]interface{}) (*models.Connection, error)
	// FindUpcomingSessions lists connections holding scheduled sessions on
	// the given date, for reminder fan-out.
	FindUpcomingSessions(ctx context.Context, date string) ([]models.Connection, error)
	// FindAll lists every connection, newest first (admin moderation).
	FindAll(ctx context.Context) ([]models.Connection, error)
}

// MongoConnectionRepo implements ConnectionRepository using MongoDB.
type MongoConnectionRepo struct {
	coll *mongo.Collection
}

// NewMongoConnectionRepo constructs the MongoDB-backed repository.
func NewMongoConnectionRepo() ConnectionRepository {
	coll := database.DB().Collection("connections")
	repo := &MongoConnectionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create connection indexes: %v\n", err)
	}
	return repo
}
