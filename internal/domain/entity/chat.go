package entity

import (
	"fmt"
	"sort"
	"time"
)

// Chat room kinds.
const (
	ChatRoomProject = "project" // customer <-> worker, tied to an accepted engagement
	ChatRoomHiring  = "hiring"  // worker <-> company employment pairing
)

// Message is one chat entry. The Messages array is append-only; nothing ever
// edits or removes an entry.
type Message struct {
	ID         string    `json:"id" firestore:"id"`
	Sender     string    `json:"sender" firestore:"sender"`
	SenderRole string    `json:"sender_role" firestore:"senderRole"`
	Text       string    `json:"text" firestore:"text"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}

// ChatRoom is an append-only message channel scoped to exactly one accepted
// engagement or one employment pairing. RoomID is deterministic so repeated
// provisioning always targets the same document.
type ChatRoom struct {
	RoomID       string    `json:"room_id" firestore:"roomId"`
	Kind         string    `json:"kind" firestore:"kind"`
	CustomerID   string    `json:"customer_id,omitempty" firestore:"customerId,omitempty"`
	WorkerID     string    `json:"worker_id,omitempty" firestore:"workerId,omitempty"`
	CompanyID    string    `json:"company_id,omitempty" firestore:"companyId,omitempty"`
	Participants []string  `json:"participants,omitempty" firestore:"participants,omitempty"` // hiring rooms: sorted pair
	ProjectID    string    `json:"project_id,omitempty" firestore:"projectId,omitempty"`
	ProjectType  string    `json:"project_type,omitempty" firestore:"projectType,omitempty"` // architect | interior
	Messages     []Message `json:"messages" firestore:"messages"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}

// ProjectRoomID derives the room id for an engagement chat,
// e.g. "room-60d0fe4f-architect".
func ProjectRoomID(engagementID string, projectType EngagementVariant) string {
	return fmt.Sprintf("room-%s-%s", engagementID, projectType)
}

// HiringRoomID derives the room id for an employment chat from the sorted
// participant pair, so either side provisioning first lands on the same room.
func HiringRoomID(workerID, companyID string) string {
	pair := []string{workerID, companyID}
	sort.Strings(pair)
	return fmt.Sprintf("room-hiring-%s-%s", pair[0], pair[1])
}
