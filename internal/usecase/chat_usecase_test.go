package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/pkg/errors"
)

func newChatFixture() (*ChatUseCase, *fakeChatRepo, *fakeEngagementRepo, *recordingBroadcaster) {
	chatRepo := newFakeChatRepo()
	architectRepo := newFakeEngagementRepo(entity.VariantArchitect)
	broadcaster := newRecordingBroadcaster()

	uc := NewChatUseCase(chatRepo, newTestRegistry(architectRepo), broadcaster, nil)
	return uc, chatRepo, architectRepo, broadcaster
}

func seedAcceptedHiring(t *testing.T, repo *fakeEngagementRepo) *entity.ArchitectHiring {
	t.Helper()
	hiring := &entity.ArchitectHiring{Customer: "cust-1", Worker: "arch-1", Status: "Accepted"}
	require.NoError(t, repo.Create(context.Background(), hiring))
	return hiring
}

func TestProvisionRequiresAcceptedEngagement(t *testing.T) {
	uc, chatRepo, architectRepo, _ := newChatFixture()
	ctx := context.Background()

	pending := &entity.ArchitectHiring{Customer: "cust-1", Worker: "arch-1", Status: "Pending"}
	require.NoError(t, architectRepo.Create(ctx, pending))

	_, err := uc.ProvisionEngagementRoom(ctx, pending.ID, entity.VariantArchitect)
	assert.True(t, errors.Is(err, "INVALID_STATE"))
	assert.Empty(t, chatRepo.rooms)
}

func TestProvisionCreatesDeterministicRoom(t *testing.T) {
	uc, chatRepo, architectRepo, _ := newChatFixture()
	ctx := context.Background()

	hiring := seedAcceptedHiring(t, architectRepo)

	room, err := uc.ProvisionEngagementRoom(ctx, hiring.ID, entity.VariantArchitect)
	require.NoError(t, err)

	assert.Equal(t, "room-"+hiring.ID+"-architect", room.RoomID)
	assert.Equal(t, entity.ChatRoomProject, room.Kind)
	assert.Equal(t, "cust-1", room.CustomerID)
	assert.Equal(t, "arch-1", room.WorkerID)
	assert.ElementsMatch(t, []string{"cust-1", "arch-1"}, room.Participants)
	assert.NotNil(t, room.Messages)
	assert.Len(t, chatRepo.rooms, 1)
}

func TestProvisionIsIdempotent(t *testing.T) {
	uc, chatRepo, architectRepo, _ := newChatFixture()
	ctx := context.Background()

	hiring := seedAcceptedHiring(t, architectRepo)

	first, err := uc.ProvisionEngagementRoom(ctx, hiring.ID, entity.VariantArchitect)
	require.NoError(t, err)

	second, err := uc.ProvisionEngagementRoom(ctx, hiring.ID, entity.VariantArchitect)
	require.NoError(t, err)

	assert.Equal(t, first.RoomID, second.RoomID)
	assert.Len(t, chatRepo.rooms, 1)
}

func TestProvisionLostRaceReReadsWinner(t *testing.T) {
	uc, chatRepo, architectRepo, _ := newChatFixture()
	ctx := context.Background()

	hiring := seedAcceptedHiring(t, architectRepo)
	roomID := entity.ProjectRoomID(hiring.ID, entity.VariantArchitect)

	// Another provisioner wins between the lookup and our create.
	winner := &entity.ChatRoom{
		RoomID:       roomID,
		Kind:         entity.ChatRoomProject,
		CustomerID:   "cust-1",
		WorkerID:     "arch-1",
		Participants: []string{"cust-1", "arch-1"},
		Messages:     []entity.Message{{ID: "m-1", Text: "hello"}},
	}
	chatRepo.conflictNext = winner

	room, err := uc.ProvisionEngagementRoom(ctx, hiring.ID, entity.VariantArchitect)
	require.NoError(t, err)

	assert.Equal(t, roomID, room.RoomID)
	require.Len(t, room.Messages, 1)
	assert.Equal(t, "hello", room.Messages[0].Text)
	assert.Len(t, chatRepo.rooms, 1)
}

func TestHiringRoomIDIsOrderIndependent(t *testing.T) {
	uc, chatRepo, _, _ := newChatFixture()
	ctx := context.Background()

	first, err := uc.ProvisionHiringRoom(ctx, "work-9", "comp-2")
	require.NoError(t, err)

	second, err := uc.ProvisionHiringRoom(ctx, "work-9", "comp-2")
	require.NoError(t, err)

	assert.Equal(t, "room-hiring-comp-2-work-9", first.RoomID)
	assert.Equal(t, first.RoomID, second.RoomID)
	assert.Equal(t, []string{"comp-2", "work-9"}, first.Participants)
	assert.Len(t, chatRepo.rooms, 1)
}

func TestAuthorizeAccessParticipantsOnly(t *testing.T) {
	uc, _, architectRepo, _ := newChatFixture()
	ctx := context.Background()

	hiring := seedAcceptedHiring(t, architectRepo)
	room, err := uc.ProvisionEngagementRoom(ctx, hiring.ID, entity.VariantArchitect)
	require.NoError(t, err)

	_, err = uc.AuthorizeAccess(ctx, room.RoomID, "cust-1", entity.RoleCustomer)
	assert.NoError(t, err)
	_, err = uc.AuthorizeAccess(ctx, room.RoomID, "arch-1", entity.RoleWorker)
	assert.NoError(t, err)

	_, err = uc.AuthorizeAccess(ctx, room.RoomID, "stranger", entity.RoleCustomer)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.AuthorizeAccess(ctx, "room-missing", "cust-1", entity.RoleCustomer)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestAuthorizeAccessMatchesIDAndRoleTogether(t *testing.T) {
	uc, _, architectRepo, _ := newChatFixture()
	ctx := context.Background()

	hiring := seedAcceptedHiring(t, architectRepo)
	room, err := uc.ProvisionEngagementRoom(ctx, hiring.ID, entity.VariantArchitect)
	require.NoError(t, err)

	// the right id under the wrong role is still an outsider
	_, err = uc.AuthorizeAccess(ctx, room.RoomID, "cust-1", entity.RoleWorker)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	_, err = uc.AuthorizeAccess(ctx, room.RoomID, "arch-1", entity.RoleCustomer)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.SendMessage(ctx, room.RoomID, "arch-1", entity.RoleCustomer, "hello")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestSendMessageAppendsAndBroadcasts(t *testing.T) {
	uc, chatRepo, architectRepo, broadcaster := newChatFixture()
	ctx := context.Background()

	hiring := seedAcceptedHiring(t, architectRepo)
	room, err := uc.ProvisionEngagementRoom(ctx, hiring.ID, entity.VariantArchitect)
	require.NoError(t, err)

	msg, err := uc.SendMessage(ctx, room.RoomID, "cust-1", entity.RoleCustomer, "when can you start?")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "cust-1", msg.Sender)
	assert.Equal(t, entity.RoleCustomer, msg.SenderRole)

	stored := chatRepo.rooms[room.RoomID]
	require.Len(t, stored.Messages, 1)
	assert.Equal(t, "when can you start?", stored.Messages[0].Text)

	require.Len(t, broadcaster.payloads[room.RoomID], 1)
}

func TestSendMessageRejectsOutsiders(t *testing.T) {
	uc, chatRepo, architectRepo, broadcaster := newChatFixture()
	ctx := context.Background()

	hiring := seedAcceptedHiring(t, architectRepo)
	room, err := uc.ProvisionEngagementRoom(ctx, hiring.ID, entity.VariantArchitect)
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, room.RoomID, "stranger", entity.RoleCustomer, "let me in")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.Empty(t, chatRepo.rooms[room.RoomID].Messages)
	assert.Empty(t, broadcaster.payloads[room.RoomID])
}

func TestMessagesKeepArrivalOrder(t *testing.T) {
	uc, chatRepo, architectRepo, _ := newChatFixture()
	ctx := context.Background()

	hiring := seedAcceptedHiring(t, architectRepo)
	room, err := uc.ProvisionEngagementRoom(ctx, hiring.ID, entity.VariantArchitect)
	require.NoError(t, err)

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		_, err := uc.SendMessage(ctx, room.RoomID, "arch-1", entity.RoleWorker, text)
		require.NoError(t, err)
	}

	stored := chatRepo.rooms[room.RoomID]
	require.Len(t, stored.Messages, 3)
	for i, text := range texts {
		assert.Equal(t, text, stored.Messages[i].Text)
	}
}

func TestSendMessageThrottled(t *testing.T) {
	chatRepo := newFakeChatRepo()
	architectRepo := newFakeEngagementRepo(entity.VariantArchitect)
	uc := NewChatUseCase(chatRepo, newTestRegistry(architectRepo), newRecordingBroadcaster(), &stubLimiter{budget: 2})
	ctx := context.Background()

	hiring := seedAcceptedHiring(t, architectRepo)
	room, err := uc.ProvisionEngagementRoom(ctx, hiring.ID, entity.VariantArchitect)
	require.NoError(t, err)

	for _, text := range []string{"one", "two"} {
		_, err := uc.SendMessage(ctx, room.RoomID, "cust-1", entity.RoleCustomer, text)
		require.NoError(t, err)
	}

	_, err = uc.SendMessage(ctx, room.RoomID, "cust-1", entity.RoleCustomer, "three")
	assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))
	assert.Len(t, chatRepo.rooms[room.RoomID].Messages, 2)
}
