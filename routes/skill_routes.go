package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/handlers"
	"github.com/justlearn/backend/middleware"
)

func SkillRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	skills := api.Group("/skills", middleware.Protected())
	skills.Get("", handlers.ListSkills)
	skills.Post("", handlers.CreateSkill)
}
