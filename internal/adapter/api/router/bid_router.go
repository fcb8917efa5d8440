package router

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/adapter/api/handler"
	"buildandbeyond/internal/adapter/api/middleware"
)

func SetupBidRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	bidHandler := handler.GetBidHandler()

	e.POST("/bidform", bidHandler.CreateBidListing, authMiddleware.Authenticate)
	e.POST("/submit-bid", bidHandler.SubmitBid, authMiddleware.Authenticate)

	bids := e.Group("/api/bids")
	bids.Use(authMiddleware.Authenticate)
	bids.GET("/open", bidHandler.ListOpenListings)
	bids.GET("/:bidId", bidHandler.GetListing)
	bids.PATCH("/:bidId/:status", bidHandler.ResolveBid)

	e.GET("/api/customer/bids", bidHandler.ListMyListings, authMiddleware.Authenticate)
	e.GET("/api/company/bids", bidHandler.ListCompanyBids, authMiddleware.Authenticate)
}
