package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/handlers"
	"github.com/justlearn/backend/middleware"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.MyProfile)
	profile.Patch("", handlers.UpdateMyProfile)
	profile.Post("/upload_image", handlers.UploadProfileImage)
	profile.Post("/skills/:skillId", handlers.AddSkillToProfile)
	profile.Delete("/skills/:skillId", handlers.RemoveSkillFromProfile)

	students := api.Group("/students", middleware.Protected())
	students.Get("", handlers.ListStudents)
	students.Get("/:studentId", handlers.GetStudent)
	students.Patch("/:studentId", handlers.UpdateStudent)

	teachers := api.Group("/teachers", middleware.Protected())
	teachers.Get("", handlers.ListTeachers)
	teachers.Get("/:teacherId", handlers.GetTeacher)
}
