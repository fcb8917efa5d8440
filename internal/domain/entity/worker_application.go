package entity

import "time"

// Worker application status literals (lower-cased).
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// WorkerApplication is a worker's job application to a company.
type WorkerApplication struct {
	ID               string    `json:"id" firestore:"id"`
	WorkerID         string    `json:"worker_id" firestore:"workerId"`
	CompanyID        string    `json:"company_id" firestore:"companyId"`
	CompName         string    `json:"comp_name" firestore:"compName"`
	FullName         string    `json:"full_name" firestore:"fullName"`
	Email            string    `json:"email" firestore:"email"`
	Location         string    `json:"location" firestore:"location"`
	Linkedin         string    `json:"linkedin,omitempty" firestore:"linkedin,omitempty"`
	Experience       int       `json:"experience" firestore:"experience"`
	ExpectedSalary   int       `json:"expected_salary" firestore:"expectedSalary"`
	PositionApplying string    `json:"position_applying" firestore:"positionApplying"`
	PrimarySkills    []string  `json:"primary_skills" firestore:"primarySkills"`
	WorkExperience   string    `json:"work_experience" firestore:"workExperience"`
	Resume           string    `json:"resume,omitempty" firestore:"resume,omitempty"`
	Status           string    `json:"status" firestore:"status"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt"`
}
