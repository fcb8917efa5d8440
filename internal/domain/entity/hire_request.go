package entity

import "time"

// CompanyHireRequest is a company's offer to employ a specific worker.
// Status literals are title-cased and the variant has no proposal or
// completed state: the engagement resolves at Accepted/Rejected.
type CompanyHireRequest struct {
	ID        string    `json:"id" firestore:"id"`
	Company   string    `json:"company" firestore:"company"`
	Worker    string    `json:"worker" firestore:"worker"`
	Position  string    `json:"position" firestore:"position"`
	Location  string    `json:"location" firestore:"location"`
	Salary    float64   `json:"salary" firestore:"salary"`
	Status    string    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (h *CompanyHireRequest) EngagementID() string      { return h.ID }
func (h *CompanyHireRequest) SetEngagementID(id string) { h.ID = id }
func (h *CompanyHireRequest) Variant() EngagementVariant {
	return VariantCompanyHire
}

func (h *CompanyHireRequest) CurrentStatus() (EngagementStatus, bool) {
	return ParseStatusLiteral(VariantCompanyHire, h.Status)
}

func (h *CompanyHireRequest) SetStatus(s EngagementStatus) {
	if lit, ok := StatusLiteral(VariantCompanyHire, s); ok {
		h.Status = lit
	}
}

func (h *CompanyHireRequest) InitiatorID() string { return h.Company }
func (h *CompanyHireRequest) AssigneeID() string  { return h.Worker }

// Hire requests carry no proposal and no progress feed; the lifecycle engine
// never routes these calls here because the variant's status domain lacks the
// states that gate them.
func (h *CompanyHireRequest) AttachProposal(Proposal)        {}
func (h *CompanyHireRequest) PrependUpdate(ProjectUpdate)    {}
func (h *CompanyHireRequest) UpdateEntries() []ProjectUpdate { return nil }

func (h *CompanyHireRequest) Touch(t time.Time) {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = t
	}
	h.UpdatedAt = t
}
