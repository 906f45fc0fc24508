package availability_test

import (
	"context"
	"testing"

	"skillswap/models"
	"skillswap/services/availability"

	"github.com/stretchr/testify/require"
)

// The pinned clock makes 2026-03-16 a Monday and 2026-03-18 a Wednesday.

func TestGenerateSlotsFromRecurring_ExpandsActiveTemplates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SetRecurringAvailability(ctx, "u1", []models.RecurringAvailability{
		{DayOfWeek: 1, TimeSlots: []string{"09:00-10:00", "10:00-11:00"}, IsActive: true},
		{DayOfWeek: 3, TimeSlots: []string{"14:00-15:00"}, IsActive: true},
		{DayOfWeek: 5, TimeSlots: []string{"16:00-17:00"}, IsActive: false}, // inactive
	})
	require.NoError(t, err)

	record, err := svc.GenerateSlotsFromRecurring(ctx, "u1", "2026-03-16", "2026-03-22")
	require.NoError(t, err)

	// One Monday with two labels plus one Wednesday with one label.
	require.Len(t, record.AvailableSlots, 3)
	require.True(t, record.HasSlot("2026-03-16", "09:00-10:00"))
	require.True(t, record.HasSlot("2026-03-16", "10:00-11:00"))
	require.True(t, record.HasSlot("2026-03-18", "14:00-15:00"))
}

func TestGenerateSlotsFromRecurring_Idempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SetRecurringAvailability(ctx, "u1", []models.RecurringAvailability{
		{DayOfWeek: 1, TimeSlots: []string{"09:00-10:00"}, IsActive: true},
	})
	require.NoError(t, err)

	first, err := svc.GenerateSlotsFromRecurring(ctx, "u1", "2026-03-16", "2026-03-29")
	require.NoError(t, err)

	second, err := svc.GenerateSlotsFromRecurring(ctx, "u1", "2026-03-16", "2026-03-29")
	require.NoError(t, err)
	require.Equal(t, len(first.AvailableSlots), len(second.AvailableSlots))
}

func TestGenerateSlotsFromRecurring_ClampsPastStart(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SetRecurringAvailability(ctx, "u1", []models.RecurringAvailability{
		// Every day of the week.
		{DayOfWeek: 0, TimeSlots: []string{"09:00-10:00"}, IsActive: true},
		{DayOfWeek: 1, TimeSlots: []string{"09:00-10:00"}, IsActive: true},
		{DayOfWeek: 2, TimeSlots: []string{"09:00-10:00"}, IsActive: true},
		{DayOfWeek: 3, TimeSlots: []string{"09:00-10:00"}, IsActive: true},
		{DayOfWeek: 4, TimeSlots: []string{"09:00-10:00"}, IsActive: true},
		{DayOfWeek: 5, TimeSlots: []string{"09:00-10:00"}, IsActive: true},
		{DayOfWeek: 6, TimeSlots: []string{"09:00-10:00"}, IsActive: true},
	})
	require.NoError(t, err)

	// Window starts a week in the past; generation must not reach back
	// before today (2026-03-10).
	record, err := svc.GenerateSlotsFromRecurring(ctx, "u1", "2026-03-03", "2026-03-12")
	require.NoError(t, err)
	require.Len(t, record.AvailableSlots, 3)
	for _, slot := range record.AvailableSlots {
		require.GreaterOrEqual(t, slot.Date, "2026-03-10")
	}
}

func TestGenerateSlotsFromRecurring_NoTemplates(t *testing.T) {
	svc, _ := newTestService()

	record, err := svc.GenerateSlotsFromRecurring(context.Background(), "u1", "2026-03-16", "2026-03-22")
	require.NoError(t, err)
	require.Nil(t, record)
}

func TestGenerateSlotsFromRecurring_InvertedRange(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GenerateSlotsFromRecurring(context.Background(), "u1", "2026-03-22", "2026-03-16")
	require.Error(t, err)
	require.Equal(t, availability.CodeInvalidRange, availability.CodeOf(err))
}

func TestBulkGenerateSlots(t *testing.T) {
	svc, _ := newTestService()

	record, err := svc.BulkGenerateSlots(context.Background(), "u1", models.BulkGenerateConfig{
		StartDate:    "2026-03-16",
		EndDate:      "2026-03-29",
		DaysOfWeek:   []int{1}, // Mondays: 03-16 and 03-23
		TimeSlots:    []string{"09:00-10:00", "10:00-11:00"},
		ExcludeDates: []string{"2026-03-23"},
	})
	require.NoError(t, err)
	require.Len(t, record.AvailableSlots, 2)
	require.True(t, record.HasSlot("2026-03-16", "09:00-10:00"))
	require.True(t, record.HasSlot("2026-03-16", "10:00-11:00"))
}

func TestBulkGenerateSlots_InvalidDayOfWeek(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.BulkGenerateSlots(context.Background(), "u1", models.BulkGenerateConfig{
		StartDate:  "2026-03-16",
		EndDate:    "2026-03-22",
		DaysOfWeek: []int{8},
		TimeSlots:  []string{"09:00-10:00"},
	})
	require.Error(t, err)
	require.Equal(t, availability.CodeInvalidDayOfWeek, availability.CodeOf(err))
}

func TestBulkGenerateSlots_NothingGenerated(t *testing.T) {
	svc, _ := newTestService()

	// Window contains no Monday.
	_, err := svc.BulkGenerateSlots(context.Background(), "u1", models.BulkGenerateConfig{
		StartDate:  "2026-03-17",
		EndDate:    "2026-03-19",
		DaysOfWeek: []int{1},
		TimeSlots:  []string{"09:00-10:00"},
	})
	require.Error(t, err)
	require.Equal(t, availability.CodeNoSlotsGenerated, availability.CodeOf(err))
}

func TestBulkGenerateSlots_SkipsExistingSlots(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	seedSlots(t, svc, "u1", models.NewSlot{Date: "2026-03-16", TimeSlot: "09:00-10:00"})

	record, err := svc.BulkGenerateSlots(ctx, "u1", models.BulkGenerateConfig{
		StartDate:  "2026-03-16",
		EndDate:    "2026-03-16",
		DaysOfWeek: []int{1},
		TimeSlots:  []string{"09:00-10:00", "10:00-11:00"},
	})
	require.NoError(t, err)
	require.Len(t, record.AvailableSlots, 2)
}
