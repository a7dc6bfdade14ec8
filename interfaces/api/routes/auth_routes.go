package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
)

func SetupAuthRoutes(app fiber.Router, h *handlers.Handlers) {
	auth := app.Group("/auth")
	auth.Post("/register", h.UserHandler.Register)
	auth.Post("/login", h.UserHandler.Login)
	auth.Post("/reset-password", h.UserHandler.ResetPassword)

	app.Get("/me", middleware.Protected(), h.UserHandler.GetProfile)
}
