package usecase

import (
	"context"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/domain/repository"
	"buildandbeyond/pkg/errors"
)

// FavoriteUseCase manages a customer's saved design gallery picks.
type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
}

func NewFavoriteUseCase(favoriteRepo repository.FavoriteRepository) *FavoriteUseCase {
	return &FavoriteUseCase{favoriteRepo: favoriteRepo}
}

// GetFavorites returns the customer's favorites document; a customer with no
// saved designs gets an empty one.
func (uc *FavoriteUseCase) GetFavorites(ctx context.Context, customerID string) (*entity.FavoriteDesign, error) {
	return uc.favoriteRepo.GetByCustomer(ctx, customerID)
}

// AddFavorite saves a design, idempotent by designId: re-adding an already
// saved design reports a conflict without touching the document.
func (uc *FavoriteUseCase) AddFavorite(ctx context.Context, customerID string, design entity.DesignRef) error {
	if design.DesignID == "" {
		return errors.BadRequest("Design id is required", nil)
	}

	added, err := uc.favoriteRepo.AddDesign(ctx, customerID, design)
	if err != nil {
		return err
	}
	if !added {
		return errors.Conflict("Design is already in favorites")
	}
	return nil
}

// RemoveFavorite pulls a design by designId; removing one that was never
// saved is NotFound.
func (uc *FavoriteUseCase) RemoveFavorite(ctx context.Context, customerID, designID string) error {
	if designID == "" {
		return errors.BadRequest("Design id is required", nil)
	}
	return uc.favoriteRepo.RemoveDesign(ctx, customerID, designID)
}
