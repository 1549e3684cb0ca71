package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/handlers"
	"github.com/justlearn/backend/middleware"
)

func ProjectRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	projects := api.Group("/projects", middleware.Protected())
	projects.Get("", handlers.ListMyProjects)
	projects.Post("", middleware.StudentRequired(), handlers.UploadProject)
}
