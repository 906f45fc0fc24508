// File: database/repository/connection/sessions.go
package connectionRepo

import (
	"context"
	"fmt"
	"time"

	"skillswap/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *MongoConnectionRepo) AddScheduledSession(ctx context.Context, id string, session models.ScheduledSession) (*models.Connection, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"scheduledSlots": session},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	return r.findOneAndUpdate(ctx, id, update)
}

// UpdateScheduledSession patches individual fields of the session at index.
// Sessions have no identity of their own; the index within scheduledSlots is
// the reference.
func (r *MongoConnectionRepo) UpdateScheduledSession(ctx context.Context, id string, index int, fields map[string]interface{}) (*models.Connection, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[fmt.Sprintf("scheduledSlots.%d.%s", index, k)] = v
	}
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": set})
}
