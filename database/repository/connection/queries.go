// File: database/repository/connection/queries.go
package connectionRepo

import (
	"context"
	"fmt"
	"time"

	"skillswap/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (r *MongoConnectionRepo) FindUserConnections(ctx context.Context, userID, status string) ([]models.Connection, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"requester": userID},
			bson.M{"recipient": userID},
		},
	}
	if status != "" {
		filter["status"] = status
	}
	return r.findMany(ctx, filter)
}

func (r *MongoConnectionRepo) FindPendingForRecipient(ctx context.Context, userID string) ([]models.Connection, error) {
	return r.findMany(ctx, bson.M{"recipient": userID, "status": models.ConnectionPending})
}

func (r *MongoConnectionRepo) FindPendingForRequester(ctx context.Context, userID string) ([]models.Connection, error) {
	return r.findMany(ctx, bson.M{"requester": userID, "status": models.ConnectionPending})
}

func (r *MongoConnectionRepo) FindUpcomingSessions(ctx context.Context, date string) ([]models.Connection, error) {
	filter := bson.M{
		"status": models.ConnectionAccepted,
		"scheduledSlots": bson.M{
			"$elemMatch": bson.M{
				"date":   date,
				"status": models.SessionScheduled,
			},
		},
	}
	return r.findMany(ctx, filter)
}

func (r *MongoConnectionRepo) FindAll(ctx context.Context) ([]models.Connection, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoConnectionRepo) findMany(ctx context.Context, filter bson.M) ([]models.Connection, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	defer cursor.Close(ctx)

	var conns []models.Connection
	if err := cursor.All(ctx, &conns); err != nil {
		return nil, fmt.Errorf("failed to decode connections: %w", err)
	}
	return conns, nil
}
