package router

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/adapter/api/handler"
	"buildandbeyond/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	e.GET("/admindashboard", adminHandler.Dashboard, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	e.DELETE("/admin/projects/:type/:id", adminHandler.PurgeEngagement, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
	e.PATCH("/admin/users/:uid/role", adminHandler.SetUserRole, authMiddleware.Authenticate, adminMiddleware.AdminOnly)
}
