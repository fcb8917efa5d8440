package entity

import "time"

// Bid listing states. A listing is resolved exactly once: accept awards it,
// reject closes it.
const (
	BidStatusOpen    = "open"
	BidStatusAwarded = "awarded"
	BidStatusClosed  = "closed"
)

// CompanyBid is one company's price entry inside a listing. Entries keep
// arrival order; a company may submit more than one.
type CompanyBid struct {
	ID          string    `json:"id" firestore:"id"`
	CompanyID   string    `json:"company_id" firestore:"companyId"`
	CompanyName string    `json:"company_name" firestore:"companyName"`
	BidPrice    float64   `json:"bid_price" firestore:"bidPrice"`
	BidDate     time.Time `json:"bid_date" firestore:"bidDate"`
}

// BidListing is an open call for company price proposals on a construction
// project. Company bids live embedded in the listing document; appends are
// whole-document writes with last-writer-wins semantics.
type BidListing struct {
	ID              string       `json:"id" firestore:"id"`
	CustomerID      string       `json:"customer_id" firestore:"customerId"`
	ProjectName     string       `json:"project_name" firestore:"projectName"`
	ProjectAddress  string       `json:"project_address" firestore:"projectAddress"`
	TotalArea       float64      `json:"total_area" firestore:"totalArea"`
	BuildingType    string       `json:"building_type,omitempty" firestore:"buildingType,omitempty"`
	EstimatedBudget float64      `json:"estimated_budget" firestore:"estimatedBudget"`
	ProjectTimeline int          `json:"project_timeline" firestore:"projectTimeline"` // months
	TotalFloors     int          `json:"total_floors,omitempty" firestore:"totalFloors,omitempty"`
	Floors          []Floor      `json:"floors,omitempty" firestore:"floors,omitempty"`
	Description     string       `json:"description,omitempty" firestore:"description,omitempty"`
	Status          string       `json:"status" firestore:"status"`
	CompanyBids     []CompanyBid `json:"company_bids" firestore:"companyBids"`
	WinningBidID    string       `json:"winning_bid_id,omitempty" firestore:"winningBidId,omitempty"`
	CreatedAt       time.Time    `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time    `json:"updated_at" firestore:"updatedAt"`
}

// BidOfCompany returns the first embedded bid placed by the given company.
func (l *BidListing) BidOfCompany(companyID string) *CompanyBid {
	for i := range l.CompanyBids {
		if l.CompanyBids[i].CompanyID == companyID {
			return &l.CompanyBids[i]
		}
	}
	return nil
}
