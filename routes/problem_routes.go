package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/handlers"
	"github.com/justlearn/backend/middleware"
)

func ProblemRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	problems := api.Group("/problems", middleware.Protected())
	problems.Get("", handlers.ListProblems)
	problems.Post("", middleware.StudentRequired(), handlers.CreateProblem)
	problems.Get("/:problemId", handlers.GetProblem)
	problems.Patch("/:problemId", handlers.UpdateProblem)
	problems.Delete("/:problemId", handlers.DeleteProblem)
}
