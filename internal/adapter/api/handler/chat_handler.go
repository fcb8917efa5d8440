package handler

import (
	"github.com/labstack/echo/v4"

	"buildandbeyond/internal/usecase"
	"buildandbeyond/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

// GetChatRoom returns the room with its full message history. Access is
// limited to the room's participants.
func (h *ChatHandler) GetChatRoom(c echo.Context) error {
	userID := c.Get("uid").(string)
	role, _ := c.Get("role").(string)

	room, err := h.chatUseCase.GetRoom(c.Request().Context(), c.Param("roomId"), userID, role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, room)
}

type sendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)
	role, _ := c.Get("role").(string)

	msg, err := h.chatUseCase.SendMessage(c.Request().Context(), c.Param("roomId"), userID, role, req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, msg)
}

func (h *ChatHandler) ListRooms(c echo.Context) error {
	userID := c.Get("uid").(string)

	rooms, err := h.chatUseCase.ListRooms(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, rooms)
}
