package router

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupEngagementRouter(e, authMiddleware)
	SetupBidRouter(e, authMiddleware)
	SetupFavoriteRouter(e, authMiddleware)
	SetupHiringRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
