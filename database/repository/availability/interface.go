// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"fmt"

	"skillswap/database"
	"skillswap/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository defines data access for per-user availability
// records. Booking state transitions are array-element updates matched on
// (date, timeSlot) so concurrent writers cannot resurrect a consumed slot.
type AvailabilityRepository interface {
	// FindByUserID returns the user's record, or (nil, nil) when none exists.
	FindByUserID(ctx context.Context, userID string) (*models.UserAvailability, error)
	// Upsert replaces timezone, recurring templates and slots wholesale,
	// creating the record if needed.
	Upsert(ctx context.Context, userID string, record models.UserAvailability) (*models.UserAvailability, error)
	// AddSlots appends slots to the record, creating it lazily.
	AddSlots(ctx context.Context, userID string, slots []models.AvailabilitySlot) (*models.UserAvailability, error)
	// RemoveSlot pulls the slot at (date, timeSlot); false when nothing matched.
	RemoveSlot(ctx context.Context, userID, date, timeSlot string) (bool, error)
	// SetRecurring replaces the weekly templates, creating the record lazily.
	SetRecurring(ctx context.Context, userID string, templates []models.RecurringAvailability) (*models.UserAvailability, error)
	// BookSlot marks an unbooked slot as consumed by (bookedBy, connectionID).
	// Returns false when the slot is missing or already booked.
	BookSlot(ctx context.Context, userID, date, timeSlot, bookedBy, connectionID string) (bool, error)
	// UnbookSlot clears booking state at (date, timeSlot); false when no slot matched.
	UnbookSlot(ctx context.Context, userID, date, timeSlot string) (bool, error)
}

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs the MongoDB-backed repository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.DB().Collection("user_availability")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}
