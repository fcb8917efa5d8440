package router

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/adapter/api/handler"
	"buildandbeyond/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware) {
	e.GET("/chat/:roomId", chatHandler.GetChatRoom, authMiddleware.Authenticate)
	e.POST("/chat/:roomId/messages", chatHandler.SendMessage, authMiddleware.Authenticate)
	e.GET("/api/chats", chatHandler.ListRooms, authMiddleware.Authenticate)
}
