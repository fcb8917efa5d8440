package handler

import (
	"context"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "buildandbeyond/internal/infrastructure/websocket"
	"buildandbeyond/internal/usecase"
	"buildandbeyond/pkg/errors"
	"buildandbeyond/pkg/logger"
)

type WebSocketHandler struct {
	wsManager   *ws.Manager
	chatUseCase *usecase.ChatUseCase
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // You should restrict this in production
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, chatUseCase *usecase.ChatUseCase) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:   wsManager,
		chatUseCase: chatUseCase,
	}
}

// HandleChatSocket upgrades the connection and joins the caller to the
// room's live feed. Room access is checked before the upgrade; frames sent
// by the client are persisted through the same path as the REST endpoint.
func (h *WebSocketHandler) HandleChatSocket(c echo.Context) error {
	userID, ok := c.Get("uid").(string)
	if !ok || userID == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	role, _ := c.Get("role").(string)
	roomID := c.Param("roomId")

	if _, err := h.chatUseCase.AuthorizeAccess(c.Request().Context(), roomID, userID, role); err != nil {
		return err
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: userID,
		RoomID: roomID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	// The request context dies with this handler; pumps outlive it.
	go client.ReadPump(h.wsManager, func(roomID, userID string, payload []byte) {
		if _, err := h.chatUseCase.SendMessage(context.Background(), roomID, userID, role, string(payload)); err != nil {
			logger.Error("Failed to handle socket message in room %s: %v", roomID, err)
		}
	})
	go client.WritePump()

	return nil
}
