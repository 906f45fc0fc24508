// File: database/repository/availability/slots.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// BookSlot flips a single unbooked slot to booked via a positional update.
// The isBooked guard in the filter makes check-and-set atomic per record: a
// slot consumed by a concurrent writer simply fails to match.
func (r *MongoAvailabilityRepo) BookSlot(ctx context.Context, userID, date, timeSlot, bookedBy, connectionID string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"userId": userID,
		"availableSlots": bson.M{
			"$elemMatch": bson.M{
				"date":     date,
				"timeSlot": timeSlot,
				"isBooked": false,
			},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"availableSlots.$.isBooked":     true,
			"availableSlots.$.bookedBy":     bookedBy,
			"availableSlots.$.connectionId": connectionID,
			"updatedAt":                     time.Now(),
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to book slot %s %s for user %s: %w", date, timeSlot, userID, err)
	}
	return res.ModifiedCount > 0, nil
}

// UnbookSlot clears booking state regardless of who holds it. Compensation
// paths rely on this being idempotent.
func (r *MongoAvailabilityRepo) UnbookSlot(ctx context.Context, userID, date, timeSlot string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"userId": userID,
		"availableSlots": bson.M{
			"$elemMatch": bson.M{
				"date":     date,
				"timeSlot": timeSlot,
			},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"availableSlots.$.isBooked": false,
			"updatedAt":                 time.Now(),
		},
		"$unset": bson.M{
			"availableSlots.$.bookedBy":     "",
			"availableSlots.$.connectionId": "",
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to unbook slot %s %s for user %s: %w", date, timeSlot, userID, err)
	}
	return res.MatchedCount > 0, nil
}
