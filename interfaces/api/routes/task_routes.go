package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sathvik89/Taskease/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, g Guards) {
	tasks := api.Group("/tasks", g.protected)

	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Post("/", h.TaskHandler.CreateTask)

	// static paths before /:id
	tasks.Get("/search", h.TaskHandler.SearchTasks)
	tasks.Get("/stats", h.TaskHandler.GetStats)
	tasks.Get("/trash", h.TaskHandler.ListTrash)
	tasks.Get("/export", h.TaskHandler.ExportTasks)

	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Patch("/:id/status", h.TaskHandler.UpdateTaskStatus)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
	tasks.Put("/:id/restore", h.TaskHandler.RestoreTask)
	tasks.Delete("/:id/permanent", h.TaskHandler.PermanentDeleteTask)
}
