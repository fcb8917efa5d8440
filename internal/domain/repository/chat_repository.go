package repository

import (
	"context"

	"buildandbeyond/internal/domain/entity"
)

type ChatRepository interface {
	// Create fails with Conflict when a room with the same roomId already
	// exists; the caller re-reads. That store-level uniqueness is the only
	// guard against two concurrent provisioners.
	Create(ctx context.Context, room *entity.ChatRoom) error

	GetByRoomID(ctx context.Context, roomID string) (*entity.ChatRoom, error)

	// AppendMessage appends to the embedded messages array; existing
	// messages are never modified.
	AppendMessage(ctx context.Context, roomID string, message entity.Message) error

	ListByParticipant(ctx context.Context, userID string) ([]*entity.ChatRoom, error)
}
