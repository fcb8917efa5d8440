package handler

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/infrastructure/firebase"
	"buildandbeyond/internal/usecase"
	"buildandbeyond/pkg/errors"
	"buildandbeyond/pkg/response"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
	authClient   *firebase.FirebaseAuthClient
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase, authClient *firebase.FirebaseAuthClient) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		authClient:   authClient,
	}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	overview, err := h.adminUseCase.Overview(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, overview)
}

// PurgeEngagement hard-deletes an engagement of the variant in the path.
func (h *AdminHandler) PurgeEngagement(c echo.Context) error {
	variant, ok := entity.ParseVariant(c.Param("type"))
	if !ok {
		return response.Error(c, errors.BadRequest("Unknown engagement type", nil))
	}

	if err := h.adminUseCase.PurgeEngagement(c.Request().Context(), variant, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Engagement deleted",
	})
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer worker company admin"`
}

// SetUserRole stores the role claim on the Firebase account, so the user's
// next ID token carries it.
func (h *AdminHandler) SetUserRole(c echo.Context) error {
	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.authClient.SetRole(c.Request().Context(), c.Param("uid"), req.Role); err != nil {
		return response.Error(c, errors.Internal("Failed to set user role", err))
	}

	return response.Success(c, map[string]string{
		"uid":  c.Param("uid"),
		"role": req.Role,
	})
}
