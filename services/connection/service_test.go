package connection_test

import (
	"context"
	"testing"

	"skillswap/models"
	"skillswap/services/connection"

	"github.com/stretchr/testify/require"
)

func newTestService() (*connection.DefaultService, *fakeConnRepo, *fakeAvailRepo, *fakeReminders) {
	connRepo := newFakeConnRepo()
	availRepo := newFakeAvailRepo()
	reminders := &fakeReminders{}
	return connection.NewService(connRepo, availRepo, reminders), connRepo, availRepo, reminders
}

func swapInput(recipient string) models.ConnectionRequestInput {
	return models.ConnectionRequestInput{
		RecipientID:    recipient,
		ConnectionType: models.ConnectionSkillSwap,
		Message:        "let's trade",
	}
}

func TestCreateConnectionRequest(t *testing.T) {
	svc, _, _, _ := newTestService()

	conn, err := svc.CreateConnectionRequest(context.Background(), "alice", swapInput("bob"))
	require.NoError(t, err)
	require.NotEmpty(t, conn.ID)
	require.Equal(t, models.ConnectionPending, conn.Status)
	require.Equal(t, "alice", conn.Requester)
	require.Equal(t, "bob", conn.Recipient)
	require.Empty(t, conn.ScheduledSlots)
}

func TestCreateConnectionRequest_RejectsSelf(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.CreateConnectionRequest(context.Background(), "alice", swapInput("alice"))
	require.Error(t, err)
	require.Equal(t, connection.CodeSelfConnection, connection.CodeOf(err))
}

func TestCreateConnectionRequest_RejectsInvalidType(t *testing.T) {
	svc, _, _, _ := newTestService()

	input := swapInput("bob")
	input.ConnectionType = "penpal"
	_, err := svc.CreateConnectionRequest(context.Background(), "alice", input)
	require.Error(t, err)
	require.Equal(t, connection.CodeValidation, connection.CodeOf(err))
}

func TestCreateConnectionRequest_RejectsDuplicatePairEitherDirection(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateConnectionRequest(ctx, "alice", swapInput("bob"))
	require.NoError(t, err)

	_, err = svc.CreateConnectionRequest(ctx, "alice", swapInput("bob"))
	require.Equal(t, connection.CodeConnectionExists, connection.CodeOf(err))

	// Same pair, reversed roles.
	_, err = svc.CreateConnectionRequest(ctx, "bob", swapInput("alice"))
	require.Equal(t, connection.CodeConnectionExists, connection.CodeOf(err))
}

func TestAcceptConnection(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	conn, err := svc.CreateConnectionRequest(ctx, "alice", swapInput("bob"))
	require.NoError(t, err)

	accepted, err := svc.AcceptConnection(ctx, conn.ID, "bob")
	require.NoError(t, err)
	require.Equal(t, models.ConnectionAccepted, accepted.Status)
}

func TestAcceptConnection_OnlyRecipient(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	conn, err := svc.CreateConnectionRequest(ctx, "alice", swapInput("bob"))
	require.NoError(t, err)

	_, err = svc.AcceptConnection(ctx, conn.ID, "alice")
	require.Equal(t, connection.CodeNotAuthorized, connection.CodeOf(err))

	_, err = svc.AcceptConnection(ctx, conn.ID, "mallory")
	require.Equal(t, connection.CodeNotAuthorized, connection.CodeOf(err))
}

func TestDeclineConnection_OnlyWhilePending(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	conn, err := svc.CreateConnectionRequest(ctx, "alice", swapInput("bob"))
	require.NoError(t, err)

	_, err = svc.DeclineConnection(ctx, conn.ID, "bob")
	require.NoError(t, err)

	// A resolved request cannot be answered again.
	_, err = svc.AcceptConnection(ctx, conn.ID, "bob")
	require.Equal(t, connection.CodeNotPending, connection.CodeOf(err))
}

func TestAnswerConnection_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.AcceptConnection(context.Background(), "missing", "bob")
	require.Equal(t, connection.CodeNotFound, connection.CodeOf(err))
}

func TestCancelConnection_ReleasesBookedSlots(t *testing.T) {
	svc, _, availRepo, _ := newTestService()
	ctx := context.Background()

	availRepo.seed("alice", models.AvailabilitySlot{Date: "2026-04-01", TimeSlot: "10:00-11:00"})
	availRepo.seed("bob", models.AvailabilitySlot{Date: "2026-04-01", TimeSlot: "10:00-11:00"})

	conn, err := svc.CreateConnectionRequest(ctx, "alice", swapInput("bob"))
	require.NoError(t, err)
	_, err = svc.AcceptConnection(ctx, conn.ID, "bob")
	require.NoError(t, err)
	_, err = svc.ScheduleSession(ctx, conn.ID, "alice", models.ScheduleSessionInput{
		Date: "2026-04-01", TimeSlot: "10:00-11:00",
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelConnection(ctx, conn.ID, "alice")
	require.NoError(t, err)
	require.Equal(t, models.ConnectionCancelled, cancelled.Status)

	for _, userID := range []string{"alice", "bob"} {
		slot := availRepo.slotAt(userID, "2026-04-01", "10:00-11:00")
		require.NotNil(t, slot)
		require.False(t, slot.IsBooked)
		require.Empty(t, slot.BookedBy)
	}
}

func TestCancelConnection_RequiresParticipant(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	conn, err := svc.CreateConnectionRequest(ctx, "alice", swapInput("bob"))
	require.NoError(t, err)

	_, err = svc.CancelConnection(ctx, conn.ID, "mallory")
	require.Equal(t, connection.CodeNotAuthorized, connection.CodeOf(err))
}

func TestGetPendingAndSentRequests(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateConnectionRequest(ctx, "alice", swapInput("bob"))
	require.NoError(t, err)
	_, err = svc.CreateConnectionRequest(ctx, "carol", swapInput("bob"))
	require.NoError(t, err)

	pending, err := svc.GetPendingRequests(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, pending, 2)

	sent, err := svc.GetSentRequests(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, sent, 1)
	require.Equal(t, "bob", sent[0].Recipient)

	none, err := svc.GetPendingRequests(ctx, "alice")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestGetUserConnections_StatusFilter(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.CreateConnectionRequest(ctx, "alice", swapInput("bob"))
	require.NoError(t, err)
	_, err = svc.AcceptConnection(ctx, first.ID, "bob")
	require.NoError(t, err)

	_, err = svc.CreateConnectionRequest(ctx, "alice", swapInput("carol"))
	require.NoError(t, err)

	all, err := svc.GetUserConnections(ctx, "alice", "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	accepted, err := svc.GetUserConnections(ctx, "alice", models.ConnectionAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	require.Equal(t, first.ID, accepted[0].ID)
}
