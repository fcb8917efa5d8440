package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/domain/repository"
	"buildandbeyond/pkg/errors"
	"buildandbeyond/pkg/logger"
)

// MessageBroadcaster pushes a payload to every live connection in a room.
// Delivery is best-effort; persistence already happened by the time it runs.
type MessageBroadcaster interface {
	BroadcastToRoom(roomID string, payload []byte)
}

// ActionLimiter throttles per-user actions. A nil limiter means no throttling.
type ActionLimiter interface {
	Allow(userID, action string) (bool, time.Duration)
}

type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	registry    *repository.EngagementRegistry
	broadcaster MessageBroadcaster
	limiter     ActionLimiter
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	registry *repository.EngagementRegistry,
	broadcaster MessageBroadcaster,
	limiter ActionLimiter,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:    chatRepo,
		registry:    registry,
		broadcaster: broadcaster,
		limiter:     limiter,
	}
}

// ProvisionEngagementRoom finds or creates the chat room for an accepted
// engagement. The room id is derived from the engagement, so every caller
// converges on the same document; a lost create race falls through to a
// re-read of the winner's room.
func (uc *ChatUseCase) ProvisionEngagementRoom(ctx context.Context, engagementID string, projectType entity.EngagementVariant) (*entity.ChatRoom, error) {
	if projectType != entity.VariantArchitect && projectType != entity.VariantInterior {
		return nil, errors.BadRequest("Chat rooms are only provisioned for architect and interior engagements", nil)
	}

	repo, err := uc.registry.ForVariant(projectType)
	if err != nil {
		return nil, err
	}

	e, err := repo.FindByID(ctx, engagementID)
	if err != nil {
		return nil, err
	}

	current, ok := e.CurrentStatus()
	if !ok || current != entity.StatusAccepted {
		return nil, errors.InvalidState("Chat is only available once the engagement is accepted", nil)
	}

	roomID := entity.ProjectRoomID(engagementID, projectType)

	existing, err := uc.chatRepo.GetByRoomID(ctx, roomID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	now := time.Now()
	room := &entity.ChatRoom{
		RoomID:       roomID,
		Kind:         entity.ChatRoomProject,
		CustomerID:   e.InitiatorID(),
		WorkerID:     e.AssigneeID(),
		Participants: []string{e.InitiatorID(), e.AssigneeID()},
		ProjectID:    engagementID,
		ProjectType:  string(projectType),
		Messages:     []entity.Message{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.chatRepo.Create(ctx, room); err != nil {
		if errors.Is(err, "CONFLICT") {
			return uc.chatRepo.GetByRoomID(ctx, roomID)
		}
		return nil, err
	}

	return room, nil
}

// ProvisionHiringRoom finds or creates the employment chat for a
// worker/company pair. The id is derived from the sorted pair, so whichever
// side provisions first, both land on the same room.
func (uc *ChatUseCase) ProvisionHiringRoom(ctx context.Context, workerID, companyID string) (*entity.ChatRoom, error) {
	if workerID == "" || companyID == "" {
		return nil, errors.BadRequest("Worker and company are required", nil)
	}

	roomID := entity.HiringRoomID(workerID, companyID)

	existing, err := uc.chatRepo.GetByRoomID(ctx, roomID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	pair := []string{workerID, companyID}
	if pair[0] > pair[1] {
		pair[0], pair[1] = pair[1], pair[0]
	}

	now := time.Now()
	room := &entity.ChatRoom{
		RoomID:       roomID,
		Kind:         entity.ChatRoomHiring,
		WorkerID:     workerID,
		CompanyID:    companyID,
		Participants: pair,
		Messages:     []entity.Message{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.chatRepo.Create(ctx, room); err != nil {
		if errors.Is(err, "CONFLICT") {
			return uc.chatRepo.GetByRoomID(ctx, roomID)
		}
		return nil, err
	}

	return room, nil
}

// AuthorizeAccess loads a room and verifies the principal is one of its
// participants. Project rooms match id and role together, so a worker cannot
// read a room by holding the customer's id. Every chat read and write goes
// through this gate.
func (uc *ChatUseCase) AuthorizeAccess(ctx context.Context, roomID, userID, role string) (*entity.ChatRoom, error) {
	room, err := uc.chatRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if !isParticipant(room, userID, role) {
		return nil, errors.Forbidden("You do not have access to this chat room", nil)
	}

	return room, nil
}

func isParticipant(room *entity.ChatRoom, userID, role string) bool {
	switch room.Kind {
	case entity.ChatRoomProject:
		isCustomer := room.CustomerID == userID && role == entity.RoleCustomer
		isWorker := room.WorkerID == userID && role == entity.RoleWorker
		return isCustomer || isWorker
	case entity.ChatRoomHiring:
		if len(room.Participants) != 2 {
			return false
		}
		return room.Participants[0] == userID || room.Participants[1] == userID
	default:
		return false
	}
}

// GetRoom returns the room with its full message history in stored order.
func (uc *ChatUseCase) GetRoom(ctx context.Context, roomID, userID, role string) (*entity.ChatRoom, error) {
	return uc.AuthorizeAccess(ctx, roomID, userID, role)
}

// SendMessage persists a message and then fans it out to live connections.
// A broadcast failure never surfaces to the sender.
func (uc *ChatUseCase) SendMessage(ctx context.Context, roomID, userID, role, text string) (*entity.Message, error) {
	if text == "" {
		return nil, errors.BadRequest("Message text is required", nil)
	}

	if _, err := uc.AuthorizeAccess(ctx, roomID, userID, role); err != nil {
		return nil, err
	}

	if uc.limiter != nil {
		if ok, wait := uc.limiter.Allow(userID, "send_message"); !ok {
			return nil, errors.TooManyRequests(fmt.Sprintf("Too many messages, retry in %s", wait.Round(time.Second)))
		}
	}

	msg := entity.Message{
		ID:         uuid.New().String(),
		Sender:     userID,
		SenderRole: role,
		Text:       text,
		CreatedAt:  time.Now(),
	}

	if err := uc.chatRepo.AppendMessage(ctx, roomID, msg); err != nil {
		return nil, err
	}

	uc.broadcast(roomID, msg)

	return &msg, nil
}

// ListRooms returns every room the user participates in.
func (uc *ChatUseCase) ListRooms(ctx context.Context, userID string) ([]*entity.ChatRoom, error) {
	return uc.chatRepo.ListByParticipant(ctx, userID)
}

func (uc *ChatUseCase) broadcast(roomID string, msg entity.Message) {
	if uc.broadcaster == nil {
		return
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		logger.Error("Failed to encode chat message %s: %v", msg.ID, err)
		return
	}

	uc.broadcaster.BroadcastToRoom(roomID, payload)
}
