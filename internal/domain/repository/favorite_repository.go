package repository

import (
	"context"

	"buildandbeyond/internal/domain/entity"
)

type FavoriteRepository interface {
	// GetByCustomer returns the customer's favorites document, or an empty
	// one when the customer has never favorited anything.
	GetByCustomer(ctx context.Context, customerID string) (*entity.FavoriteDesign, error)

	// AddDesign adds the design to the customer's set, creating the document
	// on first use. Adding an already-present designId is a no-op; added
	// reports whether the set changed.
	AddDesign(ctx context.Context, customerID string, design entity.DesignRef) (added bool, err error)

	// RemoveDesign pulls the design from the set; NotFound when the document
	// or the designId is absent.
	RemoveDesign(ctx context.Context, customerID, designID string) error
}
