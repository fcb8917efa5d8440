package entity

import "time"

// ArchitectHiring is a customer's request to hire a specific architect.
// Status literals are title-cased: Pending, Accepted, Rejected, Completed.
type ArchitectHiring struct {
	ID             string          `json:"id" firestore:"id"`
	Customer       string          `json:"customer" firestore:"customer"`
	Worker         string          `json:"worker" firestore:"worker"`
	ProjectName    string          `json:"project_name" firestore:"projectName"`
	Requirements   string          `json:"requirements,omitempty" firestore:"requirements,omitempty"`
	Budget         float64         `json:"budget,omitempty" firestore:"budget,omitempty"`
	Timeline       string          `json:"timeline,omitempty" firestore:"timeline,omitempty"`
	Status         string          `json:"status" firestore:"status"`
	Proposal       *Proposal       `json:"proposal,omitempty" firestore:"proposal,omitempty"`
	ProjectUpdates []ProjectUpdate `json:"project_updates,omitempty" firestore:"projectUpdates,omitempty"`
	CreatedAt      time.Time       `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time       `json:"updated_at" firestore:"updatedAt"`
}

func (a *ArchitectHiring) EngagementID() string      { return a.ID }
func (a *ArchitectHiring) SetEngagementID(id string) { a.ID = id }
func (a *ArchitectHiring) Variant() EngagementVariant {
	return VariantArchitect
}

func (a *ArchitectHiring) CurrentStatus() (EngagementStatus, bool) {
	return ParseStatusLiteral(VariantArchitect, a.Status)
}

func (a *ArchitectHiring) SetStatus(s EngagementStatus) {
	if lit, ok := StatusLiteral(VariantArchitect, s); ok {
		a.Status = lit
	}
}

func (a *ArchitectHiring) InitiatorID() string { return a.Customer }
func (a *ArchitectHiring) AssigneeID() string  { return a.Worker }

func (a *ArchitectHiring) AttachProposal(p Proposal) { a.Proposal = &p }

func (a *ArchitectHiring) PrependUpdate(u ProjectUpdate) {
	a.ProjectUpdates = append([]ProjectUpdate{u}, a.ProjectUpdates...)
}

func (a *ArchitectHiring) UpdateEntries() []ProjectUpdate { return a.ProjectUpdates }

func (a *ArchitectHiring) Touch(t time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = t
	}
	a.UpdatedAt = t
}
