package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/handlers"
	"github.com/justlearn/backend/middleware"
)

func LessonRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	lessons := api.Group("/lessons", middleware.Protected())
	lessons.Get("", handlers.ListLessons)
	lessons.Post("", middleware.TeacherRequired(), handlers.CreateLesson)
	lessons.Get("/my_lessons", handlers.MyLessons)
	lessons.Get("/my_past_lessons", handlers.MyPastLessons)
	lessons.Get("/:lessonId", handlers.GetLesson)
	lessons.Patch("/:lessonId", handlers.UpdateLesson)
	lessons.Delete("/:lessonId", handlers.DeleteLesson)

	lessons.Get("/:lessonId/exercises", handlers.ListLessonExercises)
	lessons.Post("/:lessonId/exercises", middleware.TeacherRequired(), handlers.UploadExercise)

	lessons.Get("/:lessonId/reviews", handlers.ListLessonReviews)
	lessons.Post("/:lessonId/reviews", middleware.StudentRequired(), handlers.CreateReview)
}
