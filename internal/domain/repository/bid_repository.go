package repository

import (
	"context"

	"buildandbeyond/internal/domain/entity"
)

type BidRepository interface {
	Create(ctx context.Context, listing *entity.BidListing) error
	GetByID(ctx context.Context, id string) (*entity.BidListing, error)

	// Save writes the whole listing document back, embedded bids included.
	// Concurrent saves race on last-writer-wins of the full array.
	Save(ctx context.Context, listing *entity.BidListing) error

	// ListByStatus filters listings by state; empty status lists everything.
	ListByStatus(ctx context.Context, status string) ([]*entity.BidListing, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.BidListing, error)
	ListWithCompanyBid(ctx context.Context, companyID string) ([]*entity.BidListing, error)
}
