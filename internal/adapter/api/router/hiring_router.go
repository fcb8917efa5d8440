package router

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/adapter/api/handler"
	"buildandbeyond/internal/adapter/api/middleware"
)

func SetupHiringRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	hiringHandler := handler.GetHiringHandler()

	// Company -> worker offers
	e.POST("/companytoworker", hiringHandler.CreateHireRequest, authMiddleware.Authenticate)
	e.PATCH("/api/hire-offers/:id", hiringHandler.RespondHireRequest, authMiddleware.Authenticate)
	e.GET("/api/hire-offers", hiringHandler.ListHireOffers, authMiddleware.Authenticate)
	e.GET("/api/company/hire-requests", hiringHandler.ListCompanyHireRequests, authMiddleware.Authenticate)
	e.DELETE("/api/company/hire-requests/:id", hiringHandler.WithdrawHireRequest, authMiddleware.Authenticate)

	// Worker -> company applications
	e.POST("/worker_request/:companyId", hiringHandler.CreateWorkerApplication, authMiddleware.Authenticate)
	e.PATCH("/worker-request/:requestId", hiringHandler.HandleWorkerApplication, authMiddleware.Authenticate)
	e.DELETE("/api/worker-requests/:id", hiringHandler.CancelWorkerApplication, authMiddleware.Authenticate)
	e.GET("/api/worker-requests", hiringHandler.ListMyApplications, authMiddleware.Authenticate)
	e.GET("/api/company/applications", hiringHandler.ListCompanyApplications, authMiddleware.Authenticate)

	// Worker profile
	e.PATCH("/api/worker/availability", hiringHandler.UpdateAvailability, authMiddleware.Authenticate)
}
