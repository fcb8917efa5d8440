package entity

import "time"

// RoomSize holds the dimensions for an interior design request, in feet.
type RoomSize struct {
	Length float64 `json:"length" firestore:"length"`
	Width  float64 `json:"width" firestore:"width"`
}

// DesignRequest is a customer's interior design request to a specific
// designer. Status literals are lower-cased.
type DesignRequest struct {
	ID             string          `json:"id" firestore:"id"`
	CustomerID     string          `json:"customer_id" firestore:"customerId"`
	WorkerID       string          `json:"worker_id" firestore:"workerId"`
	RoomType       string          `json:"room_type" firestore:"roomType"`
	RoomSize       RoomSize        `json:"room_size" firestore:"roomSize"`
	StylePrefs     string          `json:"style_prefs,omitempty" firestore:"stylePrefs,omitempty"`
	Status         string          `json:"status" firestore:"status"`
	Proposal       *Proposal       `json:"proposal,omitempty" firestore:"proposal,omitempty"`
	ProjectUpdates []ProjectUpdate `json:"project_updates,omitempty" firestore:"projectUpdates,omitempty"`
	CreatedAt      time.Time       `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time       `json:"updated_at" firestore:"updatedAt"`
}

func (d *DesignRequest) EngagementID() string      { return d.ID }
func (d *DesignRequest) SetEngagementID(id string) { d.ID = id }
func (d *DesignRequest) Variant() EngagementVariant {
	return VariantInterior
}

func (d *DesignRequest) CurrentStatus() (EngagementStatus, bool) {
	return ParseStatusLiteral(VariantInterior, d.Status)
}

func (d *DesignRequest) SetStatus(s EngagementStatus) {
	if lit, ok := StatusLiteral(VariantInterior, s); ok {
		d.Status = lit
	}
}

func (d *DesignRequest) InitiatorID() string { return d.CustomerID }
func (d *DesignRequest) AssigneeID() string  { return d.WorkerID }

func (d *DesignRequest) AttachProposal(p Proposal) { d.Proposal = &p }

func (d *DesignRequest) PrependUpdate(u ProjectUpdate) {
	d.ProjectUpdates = append([]ProjectUpdate{u}, d.ProjectUpdates...)
}

func (d *DesignRequest) UpdateEntries() []ProjectUpdate { return d.ProjectUpdates }

func (d *DesignRequest) Touch(t time.Time) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = t
	}
	d.UpdatedAt = t
}
