package entity

import "time"

// DesignRef is one favorited design, keyed by the application-level designId
// string (e.g. "LivingRoom-1"), not a store id.
type DesignRef struct {
	DesignID string `json:"design_id" firestore:"designId"`
	Category string `json:"category" firestore:"category"`
	Title    string `json:"title" firestore:"title"`
	ImageURL string `json:"image_url" firestore:"imageUrl"`
}

// FavoriteDesign is a customer's favorites document: a single document per
// customer holding an embedded set of designs, unique by designId.
type FavoriteDesign struct {
	CustomerID string      `json:"customer_id" firestore:"customerId"`
	Designs    []DesignRef `json:"designs" firestore:"designs"`
	CreatedAt  time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time   `json:"updated_at" firestore:"updatedAt"`
}

// HasDesign reports whether designID is already favorited.
func (f *FavoriteDesign) HasDesign(designID string) bool {
	for _, d := range f.Designs {
		if d.DesignID == designID {
			return true
		}
	}
	return false
}
