package router

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/adapter/api/handler"
	"buildandbeyond/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/api/customer/favorites")
	favorites.Use(authMiddleware.Authenticate)

	favorites.GET("", favoriteHandler.GetFavorites)
	favorites.POST("", favoriteHandler.AddFavorite)
	favorites.DELETE("/:designId", favoriteHandler.RemoveFavorite)
}
