package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	hub "taskboard/infrastructure/websocket"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type WebSocketHandler struct {
	hub *hub.Hub
}

func NewWebSocketHandler(h *hub.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: h}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleWebSocket subscribes the connection to the broadcast hub and holds
// it open until the peer goes away. The channel is push-only; the one inbound
// frame honored is a "ping" text, answered with a pong event.
func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	var userID uuid.UUID

	if userContext := c.Locals("user"); userContext != nil {
		if user, ok := userContext.(*utils.UserContext); ok {
			userID = user.ID
		}
	}

	sessionID := h.hub.Subscribe(c, userID)
	defer h.hub.Unsubscribe(sessionID)

	for {
		_, payload, err := c.ReadMessage()
		if err != nil {
			logger.Debug("WebSocket read ended", "session_id", sessionID, "error", err)
			break
		}
		if string(payload) == "ping" {
			h.hub.Send(sessionID, "pong", nil)
		}
	}
}
