package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	hub "taskboard/infrastructure/websocket"
	"taskboard/interfaces/api/middleware"
	websocketHandler "taskboard/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, broadcastHub *hub.Hub) {
	wsHandler := websocketHandler.NewWebSocketHandler(broadcastHub)

	// Authentication is optional; anonymous sessions still receive events.
	app.Use("/ws", middleware.Optional(), wsHandler.WebSocketUpgrade)
	app.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
