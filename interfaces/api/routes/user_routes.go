package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
)

func SetupUserRoutes(app fiber.Router, h *handlers.Handlers) {
	// The directory endpoint is unauthenticated so the assignee picker works
	// before login. Only id, name and email are exposed.
	app.Get("/users", h.UserHandler.ListUsers)
}
