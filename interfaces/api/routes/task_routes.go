package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
	"taskboard/interfaces/api/middleware"
)

func SetupTaskRoutes(app fiber.Router, h *handlers.Handlers) {
	tasks := app.Group("/tasks")
	tasks.Use(middleware.Protected())
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Patch("/:id/status", h.TaskHandler.UpdateStatus)
	tasks.Patch("/:id/assign", h.TaskHandler.AssignTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
