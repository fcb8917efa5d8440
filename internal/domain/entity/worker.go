package entity

import "time"

// Worker availability tri-state.
const (
	AvailabilityAvailable   = "available"
	AvailabilityBusy        = "busy"
	AvailabilityUnavailable = "unavailable"
)

func ValidAvailability(s string) bool {
	switch s {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	}
	return false
}

// Worker is an individual professional: an architect when IsArchitect is set,
// an interior designer otherwise.
type Worker struct {
	ID           string    `json:"id" firestore:"id"`
	Name         string    `json:"name" firestore:"name"`
	Email        string    `json:"email" firestore:"email"`
	Title        string    `json:"title,omitempty" firestore:"title,omitempty"`
	About        string    `json:"about,omitempty" firestore:"about,omitempty"`
	Specialties  []string  `json:"specialties,omitempty" firestore:"specialties,omitempty"`
	Location     string    `json:"location,omitempty" firestore:"location,omitempty"`
	Linkedin     string    `json:"linkedin,omitempty" firestore:"linkedin,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty" firestore:"profileImage,omitempty"`
	Rating       float64   `json:"rating,omitempty" firestore:"rating,omitempty"`
	IsArchitect  bool      `json:"is_architect" firestore:"isArchitect"`
	Availability string    `json:"availability" firestore:"availability"`
	CreatedAt    time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updated_at" firestore:"updatedAt"`
}
