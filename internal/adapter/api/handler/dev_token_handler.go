package handler

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/domain/entity"
	"buildandbeyond/internal/infrastructure/firebase"
	"buildandbeyond/pkg/errors"
	"buildandbeyond/pkg/response"
)

// DevTokenHandler mints local session tokens so the API can be exercised
// without a Firebase project. Mounted only in development.
type DevTokenHandler struct {
	devTokens *firebase.DevTokenService
}

var devTokenHandler *DevTokenHandler

func SetupDevTokenHandler(devTokens *firebase.DevTokenService) {
	devTokenHandler = &DevTokenHandler{devTokens: devTokens}
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	uid := c.QueryParam("uid")
	if uid == "" {
		return response.Error(c, errors.BadRequest("uid query parameter is required", nil))
	}

	role := c.QueryParam("role")
	switch role {
	case entity.RoleCustomer, entity.RoleWorker, entity.RoleCompany, entity.RoleAdmin:
	default:
		return response.Error(c, errors.BadRequest("role must be customer, worker, company or admin", nil))
	}

	token, err := h.devTokens.Mint(uid, role)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to mint token", err))
	}

	return response.Success(c, map[string]string{
		"token": token,
		"uid":   uid,
		"role":  role,
	})
}
