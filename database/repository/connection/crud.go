// File: database/repository/connection/crud.go
package connectionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillswap/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicatePair is returned when an insert collides with the unique
// unordered-pair index.
var ErrDuplicatePair = errors.New("connection already exists for user pair")

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoConnectionRepo) Create(ctx context.Context, conn *models.Connection) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	conn.CreatedAt = now
	conn.UpdatedAt = now
	conn.PairKey = models.PairKeyFor(conn.Requester, conn.Recipient)
	if conn.ScheduledSlots == nil {
		conn.ScheduledSlots = []models.ScheduledSession{}
	}

	if _, err := r.coll.InsertOne(ctx, conn); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicatePair
		}
		return fmt.Errorf("failed to create connection: %w", err)
	}
	return nil
}

func (r *MongoConnectionRepo) FindByID(ctx context.Context, id string) (*models.Connection, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var conn models.Connection
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&conn)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch connection %s: %w", id, err)
	}
	return &conn, nil
}

func (r *MongoConnectionRepo) FindBetween(ctx context.Context, userA, userB string) (*models.Connection, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var conn models.Connection
	err := r.coll.FindOne(ctx, bson.M{"pairKey": models.PairKeyFor(userA, userB)}).Decode(&conn)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch connection between %s and %s: %w", userA, userB, err)
	}
	return &conn, nil
}

func (r *MongoConnectionRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Connection, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	return r.findOneAndUpdate(ctx, id, update)
}

// findOneAndUpdate applies update to the connection and returns the
// post-update document, or (nil, nil) when the connection does not exist.
func (r *MongoConnectionRepo) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*models.Connection, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var conn models.Connection
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&conn)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update connection %s: %w", id, err)
	}
	return &conn, nil
}
