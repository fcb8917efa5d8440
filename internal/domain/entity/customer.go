package entity

import "time"

// Principal roles as carried in auth tokens and chat messages.
const (
	RoleCustomer = "customer"
	RoleWorker   = "worker"
	RoleCompany  = "company"
	RoleAdmin    = "admin"
)

type Customer struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Phone     string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Address   string    `json:"address,omitempty" firestore:"address,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
