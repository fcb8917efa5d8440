package entity

import "time"

// Floor describes one floor of a construction project.
type Floor struct {
	Number  int    `json:"number" firestore:"number"`
	Details string `json:"details,omitempty" firestore:"details,omitempty"`
}

// ConstructionProject is a customer's construction request assigned to a
// company, either directly or as the snapshot created when a bid listing is
// awarded. The only variant with a proposal_sent state.
type ConstructionProject struct {
	ID                     string          `json:"id" firestore:"id"`
	CustomerID             string          `json:"customer_id" firestore:"customerId"`
	CompanyID              string          `json:"company_id,omitempty" firestore:"companyId,omitempty"`
	ProjectName            string          `json:"project_name" firestore:"projectName"`
	CustomerName           string          `json:"customer_name,omitempty" firestore:"customerName,omitempty"`
	CustomerEmail          string          `json:"customer_email,omitempty" firestore:"customerEmail,omitempty"`
	CustomerPhone          string          `json:"customer_phone,omitempty" firestore:"customerPhone,omitempty"`
	ProjectAddress         string          `json:"project_address" firestore:"projectAddress"`
	ProjectLocationPincode string          `json:"project_location_pincode,omitempty" firestore:"projectLocationPincode,omitempty"`
	TotalArea              float64         `json:"total_area" firestore:"totalArea"`
	BuildingType           string          `json:"building_type,omitempty" firestore:"buildingType,omitempty"`
	EstimatedBudget        float64         `json:"estimated_budget" firestore:"estimatedBudget"`
	ProjectTimeline        int             `json:"project_timeline" firestore:"projectTimeline"` // months
	TotalFloors            int             `json:"total_floors,omitempty" firestore:"totalFloors,omitempty"`
	Floors                 []Floor         `json:"floors,omitempty" firestore:"floors,omitempty"`
	SpecialRequirements    string          `json:"special_requirements,omitempty" firestore:"specialRequirements,omitempty"`
	AccessibilityNeeds     string          `json:"accessibility_needs,omitempty" firestore:"accessibilityNeeds,omitempty"`
	EnergyEfficiency       string          `json:"energy_efficiency,omitempty" firestore:"energyEfficiency,omitempty"`
	SiteFilepaths          []string        `json:"site_filepaths,omitempty" firestore:"siteFilepaths,omitempty"`
	Status                 string          `json:"status" firestore:"status"`
	Proposal               *Proposal       `json:"proposal,omitempty" firestore:"proposal,omitempty"`
	ProjectUpdates         []ProjectUpdate `json:"project_updates,omitempty" firestore:"projectUpdates,omitempty"`
	CreatedAt              time.Time       `json:"created_at" firestore:"createdAt"`
	UpdatedAt              time.Time       `json:"updated_at" firestore:"updatedAt"`
}

func (p *ConstructionProject) EngagementID() string      { return p.ID }
func (p *ConstructionProject) SetEngagementID(id string) { p.ID = id }
func (p *ConstructionProject) Variant() EngagementVariant {
	return VariantConstruction
}

func (p *ConstructionProject) CurrentStatus() (EngagementStatus, bool) {
	return ParseStatusLiteral(VariantConstruction, p.Status)
}

func (p *ConstructionProject) SetStatus(s EngagementStatus) {
	if lit, ok := StatusLiteral(VariantConstruction, s); ok {
		p.Status = lit
	}
}

func (p *ConstructionProject) InitiatorID() string { return p.CustomerID }
func (p *ConstructionProject) AssigneeID() string  { return p.CompanyID }

func (p *ConstructionProject) AttachProposal(pr Proposal) { p.Proposal = &pr }

func (p *ConstructionProject) PrependUpdate(u ProjectUpdate) {
	p.ProjectUpdates = append([]ProjectUpdate{u}, p.ProjectUpdates...)
}

func (p *ConstructionProject) UpdateEntries() []ProjectUpdate { return p.ProjectUpdates }

func (p *ConstructionProject) Touch(t time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = t
	}
	p.UpdatedAt = t
}
