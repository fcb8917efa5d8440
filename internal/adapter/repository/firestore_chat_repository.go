package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/domain/repository"
	"buildandbeyond/pkg/errors"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{client: client}
}

// Create inserts the room under its deterministic id. Firestore's Create
// refuses an existing document, which is what makes concurrent provisioning
// safe: the loser surfaces a conflict and re-reads the winner's room.
func (r *firestoreChatRepository) Create(ctx context.Context, room *entity.ChatRoom) error {
	_, err := r.client.Collection("chatRooms").Doc(room.RoomID).Create(ctx, room)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("Chat room already exists")
		}
		return errors.Internal("Failed to create chat room", err)
	}
	return nil
}

func (r *firestoreChatRepository) GetByRoomID(ctx context.Context, roomID string) (*entity.ChatRoom, error) {
	doc, err := r.client.Collection("chatRooms").Doc(roomID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat room", err)
		}
		return nil, errors.Internal("Failed to get chat room", err)
	}

	var room entity.ChatRoom
	if err := doc.DataTo(&room); err != nil {
		return nil, errors.Internal("Failed to parse chat room data", err)
	}
	room.RoomID = doc.Ref.ID
	return &room, nil
}

// AppendMessage pushes onto the embedded messages array. ArrayUnion keeps
// the append atomic; message ids are unique so no element ever collides.
func (r *firestoreChatRepository) AppendMessage(ctx context.Context, roomID string, message entity.Message) error {
	_, err := r.client.Collection("chatRooms").Doc(roomID).Update(ctx, []firestore.Update{
		{Path: "messages", Value: firestore.ArrayUnion(message)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Chat room", err)
		}
		return errors.Internal("Failed to append message", err)
	}
	return nil
}

func (r *firestoreChatRepository) ListByParticipant(ctx context.Context, userID string) ([]*entity.ChatRoom, error) {
	iter := r.client.Collection("chatRooms").
		Where("participants", "array-contains", userID).
		Documents(ctx)
	defer iter.Stop()

	var rooms []*entity.ChatRoom
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list chat rooms", err)
		}

		var room entity.ChatRoom
		if err := doc.DataTo(&room); err != nil {
			return nil, errors.Internal("Failed to parse chat room data", err)
		}
		room.RoomID = doc.Ref.ID
		rooms = append(rooms, &room)
	}
	return rooms, nil
}
