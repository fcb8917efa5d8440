package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/pkg/errors"
)

func TestFavoritesStartEmpty(t *testing.T) {
	uc := NewFavoriteUseCase(newFakeFavoriteRepo())

	fav, err := uc.GetFavorites(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, "cust-1", fav.CustomerID)
	assert.Empty(t, fav.Designs)
}

func TestAddFavoriteIsIdempotentByDesignID(t *testing.T) {
	uc := NewFavoriteUseCase(newFakeFavoriteRepo())
	ctx := context.Background()

	design := entity.DesignRef{DesignID: "LivingRoom-1", Category: "LivingRoom", Title: "Scandinavian"}

	require.NoError(t, uc.AddFavorite(ctx, "cust-1", design))

	err := uc.AddFavorite(ctx, "cust-1", design)
	assert.True(t, errors.Is(err, "CONFLICT"))

	fav, err := uc.GetFavorites(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, fav.Designs, 1)
	assert.Equal(t, "LivingRoom-1", fav.Designs[0].DesignID)
}

func TestRemoveFavorite(t *testing.T) {
	uc := NewFavoriteUseCase(newFakeFavoriteRepo())
	ctx := context.Background()

	require.NoError(t, uc.AddFavorite(ctx, "cust-1", entity.DesignRef{DesignID: "Bedroom-3"}))
	require.NoError(t, uc.RemoveFavorite(ctx, "cust-1", "Bedroom-3"))

	err := uc.RemoveFavorite(ctx, "cust-1", "Bedroom-3")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestFavoriteRequiresDesignID(t *testing.T) {
	uc := NewFavoriteUseCase(newFakeFavoriteRepo())
	ctx := context.Background()

	err := uc.AddFavorite(ctx, "cust-1", entity.DesignRef{})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	err = uc.RemoveFavorite(ctx, "cust-1", "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
