package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/domain/repository"
	"buildandbeyond/pkg/errors"
)

// firestoreFavoriteRepository keeps one favorites document per customer,
// keyed by the customer id.
type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{client: client}
}

func (r *firestoreFavoriteRepository) GetByCustomer(ctx context.Context, customerID string) (*entity.FavoriteDesign, error) {
	doc, err := r.client.Collection("favoriteDesigns").Doc(customerID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &entity.FavoriteDesign{
				CustomerID: customerID,
				Designs:    []entity.DesignRef{},
			}, nil
		}
		return nil, errors.Internal("Failed to get favorites", err)
	}

	var fav entity.FavoriteDesign
	if err := doc.DataTo(&fav); err != nil {
		return nil, errors.Internal("Failed to parse favorites data", err)
	}
	fav.CustomerID = doc.Ref.ID
	return &fav, nil
}

// AddDesign reports added=false when the designId is already present and
// leaves the document untouched in that case.
func (r *firestoreFavoriteRepository) AddDesign(ctx context.Context, customerID string, design entity.DesignRef) (bool, error) {
	fav, err := r.GetByCustomer(ctx, customerID)
	if err != nil {
		return false, err
	}

	if fav.HasDesign(design.DesignID) {
		return false, nil
	}

	now := time.Now()
	if fav.CreatedAt.IsZero() {
		fav.CreatedAt = now
	}
	fav.UpdatedAt = now
	fav.Designs = append(fav.Designs, design)

	_, err = r.client.Collection("favoriteDesigns").Doc(customerID).Set(ctx, fav)
	if err != nil {
		return false, errors.Internal("Failed to save favorites", err)
	}
	return true, nil
}

func (r *firestoreFavoriteRepository) RemoveDesign(ctx context.Context, customerID, designID string) error {
	fav, err := r.GetByCustomer(ctx, customerID)
	if err != nil {
		return err
	}

	kept := fav.Designs[:0]
	removed := false
	for _, d := range fav.Designs {
		if d.DesignID == designID {
			removed = true
			continue
		}
		kept = append(kept, d)
	}

	if !removed {
		return errors.NotFound("Design in favorites", nil)
	}

	fav.Designs = kept
	fav.UpdatedAt = time.Now()

	_, err = r.client.Collection("favoriteDesigns").Doc(customerID).Set(ctx, fav)
	if err != nil {
		return errors.Internal("Failed to save favorites", err)
	}
	return nil
}
