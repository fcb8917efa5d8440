package handler

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/usecase"
	"buildandbeyond/pkg/errors"
	"buildandbeyond/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) GetFavorites(c echo.Context) error {
	customerID := c.Get("uid").(string)

	favorites, err := h.favoriteUseCase.GetFavorites(c.Request().Context(), customerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favorites)
}

type addFavoriteRequest struct {
	DesignID string `json:"design_id" validate:"required"`
	Category string `json:"category"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	var req addFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	customerID := c.Get("uid").(string)

	design := entity.DesignRef{
		DesignID: req.DesignID,
		Category: req.Category,
		Title:    req.Title,
		ImageURL: req.ImageURL,
	}

	if err := h.favoriteUseCase.AddFavorite(c.Request().Context(), customerID, design); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{
		"message": "Design added to favorites",
	})
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	customerID := c.Get("uid").(string)
	designID := c.Param("designId")

	if designID == "" {
		return response.Error(c, errors.BadRequest("Design id is required", nil))
	}

	if err := h.favoriteUseCase.RemoveFavorite(c.Request().Context(), customerID, designID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Design removed from favorites",
	})
}
