// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"skillswap/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoAvailabilityRepo) FindByUserID(ctx context.Context, userID string) (*models.UserAvailability, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var record models.UserAvailability
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for user %s: %w", userID, err)
	}
	return &record, nil
}

func (r *MongoAvailabilityRepo) Upsert(ctx context.Context, userID string, record models.UserAvailability) (*models.UserAvailability, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if record.RecurringAvailability == nil {
		record.RecurringAvailability = []models.RecurringAvailability{}
	}
	if record.AvailableSlots == nil {
		record.AvailableSlots = []models.AvailabilitySlot{}
	}

	update := bson.M{
		"$set": bson.M{
			"timezone":              record.Timezone,
			"recurringAvailability": record.RecurringAvailability,
			"availableSlots":        record.AvailableSlots,
			"updatedAt":             time.Now(),
		},
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	return r.findOneAndUpsert(ctx, userID, update)
}

func (r *MongoAvailabilityRepo) AddSlots(ctx context.Context, userID string, slots []models.AvailabilitySlot) (*models.UserAvailability, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"availableSlots": bson.M{"$each": slots}},
		"$set":  bson.M{"updatedAt": time.Now()},
		"$setOnInsert": bson.M{
			"timezone":              "UTC",
			"recurringAvailability": []models.RecurringAvailability{},
			"createdAt":             time.Now(),
		},
	}
	return r.findOneAndUpsert(ctx, userID, update)
}

func (r *MongoAvailabilityRepo) SetRecurring(ctx context.Context, userID string, templates []models.RecurringAvailability) (*models.UserAvailability, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if templates == nil {
		templates = []models.RecurringAvailability{}
	}
	update := bson.M{
		"$set": bson.M{
			"recurringAvailability": templates,
			"updatedAt":             time.Now(),
		},
		"$setOnInsert": bson.M{
			"timezone":       "UTC",
			"availableSlots": []models.AvailabilitySlot{},
			"createdAt":      time.Now(),
		},
	}
	return r.findOneAndUpsert(ctx, userID, update)
}

func (r *MongoAvailabilityRepo) RemoveSlot(ctx context.Context, userID, date, timeSlot string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{
			"availableSlots": bson.M{"date": date, "timeSlot": timeSlot},
		},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return false, fmt.Errorf("failed to remove slot for user %s: %w", userID, err)
	}
	return res.ModifiedCount > 0, nil
}

// findOneAndUpsert applies update to the user's record, inserting on first
// write, and returns the post-update document.
func (r *MongoAvailabilityRepo) findOneAndUpsert(ctx context.Context, userID string, update bson.M) (*models.UserAvailability, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var record models.UserAvailability
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"userId": userID}, update, opts).Decode(&record)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert availability for user %s: %w", userID, err)
	}
	return &record, nil
}
