// File: database/repository/message/message_mongo.go
package messageRepo

import (
	"context"
	"fmt"
	"time"

	"skillswap/database"
	"skillswap/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository stores platform messages (reminders, admin broadcasts).
type MessageRepository interface {
	Create(ctx context.Context, msg *models.PlatformMessage) error
	// FindForUser lists a user's messages plus broadcasts, newest first.
	FindForUser(ctx context.Context, userID string) ([]models.PlatformMessage, error)
	MarkRead(ctx context.Context, id, userID string) (bool, error)
}

// MongoMessageRepo implements MessageRepository using MongoDB.
type MongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo constructs the MongoDB-backed repository.
func NewMongoMessageRepo() MessageRepository {
	return &MongoMessageRepo{coll: database.DB().Collection("platform_messages")}
}

func (r *MongoMessageRepo) Create(ctx context.Context, msg *models.PlatformMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	msg.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to create platform message: %w", err)
	}
	return nil
}

func (r *MongoMessageRepo) FindForUser(ctx context.Context, userID string) ([]models.PlatformMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"userId": userID},
		bson.M{"userId": bson.M{"$exists": false}},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var msgs []models.PlatformMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return msgs, nil
}

func (r *MongoMessageRepo) MarkRead(ctx context.Context, id, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "userId": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark message %s read: %w", id, err)
	}
	return res.ModifiedCount > 0, nil
}
