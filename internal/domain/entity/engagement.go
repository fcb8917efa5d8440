package entity

import "time"

// Proposal is a priced, described offer attached to an engagement before
// acceptance.
type Proposal struct {
	Price       float64   `json:"price" firestore:"price"`
	Description string    `json:"description" firestore:"description"`
	SentAt      time.Time `json:"sent_at" firestore:"sentAt"`
}

// ProjectUpdate is one progress entry on an accepted engagement. Entries are
// kept newest-first.
type ProjectUpdate struct {
	Text      string    `json:"text" firestore:"text"`
	Image     string    `json:"image,omitempty" firestore:"image,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// Engagement is the capability set shared by the four engagement variants.
// The lifecycle engine works exclusively through this interface; the variant
// structs own their field names and status spellings.
type Engagement interface {
	EngagementID() string
	SetEngagementID(id string)
	Variant() EngagementVariant

	// CurrentStatus parses the stored literal; ok is false on corrupt data.
	CurrentStatus() (EngagementStatus, bool)
	SetStatus(s EngagementStatus)

	// InitiatorID is the customer or company that created the engagement;
	// AssigneeID is the worker or company being engaged. Together they are
	// the chat participant pair.
	InitiatorID() string
	AssigneeID() string

	AttachProposal(p Proposal)
	PrependUpdate(u ProjectUpdate)
	UpdateEntries() []ProjectUpdate

	Touch(t time.Time)
}
