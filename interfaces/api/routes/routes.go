package routes

import (
	"github.com/gofiber/fiber/v2"

	hub "taskboard/infrastructure/websocket"
	"taskboard/interfaces/api/handlers"
)

// SetupRoutes mounts everything at the root, mirroring the original API
// surface the frontend already speaks.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, broadcastHub *hub.Hub) {
	SetupHealthRoutes(app)

	SetupAuthRoutes(app, h)
	SetupUserRoutes(app, h)
	SetupTaskRoutes(app, h)

	SetupWebSocketRoutes(app, broadcastHub)
}
