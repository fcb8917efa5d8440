package entity

import "time"

type CompanyLocation struct {
	City  string `json:"city,omitempty" firestore:"city,omitempty"`
	State string `json:"state,omitempty" firestore:"state,omitempty"`
}

// Company is a construction firm: it bids on customer listings, runs
// construction projects and employs workers.
type Company struct {
	ID                string          `json:"id" firestore:"id"`
	CompanyName       string          `json:"company_name" firestore:"companyName"`
	Email             string          `json:"email" firestore:"email"`
	Location          CompanyLocation `json:"location,omitempty" firestore:"location,omitempty"`
	Size              string          `json:"size,omitempty" firestore:"size,omitempty"`
	Specialization    []string        `json:"specialization,omitempty" firestore:"specialization,omitempty"`
	CurrentOpenings   []string        `json:"current_openings,omitempty" firestore:"currentOpenings,omitempty"`
	AboutCompany      string          `json:"about_company,omitempty" firestore:"aboutCompany,omitempty"`
	WhyJoinUs         string          `json:"why_join_us,omitempty" firestore:"whyJoinUs,omitempty"`
	AboutForCustomers string          `json:"about_for_customers,omitempty" firestore:"aboutForCustomers,omitempty"`
	DidYouKnow        string          `json:"did_you_know,omitempty" firestore:"didYouKnow,omitempty"`
	ProjectsCompleted int             `json:"projects_completed,omitempty" firestore:"projectsCompleted,omitempty"`
	YearsInBusiness   int             `json:"years_in_business,omitempty" firestore:"yearsInBusiness,omitempty"`
	CreatedAt         time.Time       `json:"created_at" firestore:"createdAt"`
	UpdatedAt         time.Time       `json:"updated_at" firestore:"updatedAt"`
}
