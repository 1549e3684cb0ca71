package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/models"
	"github.com/justlearn/backend/policy"
	"github.com/justlearn/backend/utils"
)

// UploadExercise attaches a file to a lesson. Only the lesson's teacher may
// hand out exercises.
func UploadExercise(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", c.Params("lessonId")).Error; err != nil {
		return notFound(c, "Lesson")
	}
	if !policy.CanAccessLesson(caller, lesson, policy.OpRead) {
		return notFound(c, "Lesson")
	}
	if !policy.CanAccessLesson(caller, lesson, policy.OpWrite) {
		return forbidden(c)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Exercise file is required"})
	}

	path, err := utils.SaveUpload(c, file, utils.ExerciseFolder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store file"})
	}

	exercise := models.Exercise{LessonID: lesson.ID, File: path}
	if err := database.DB.Create(&exercise).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create exercise"})
	}
	return c.Status(fiber.StatusCreated).JSON(exercise)
}

func ListLessonExercises(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var lesson models.Lesson
	if err := database.DB.First(&lesson, "id = ?", c.Params("lessonId")).Error; err != nil {
		return notFound(c, "Lesson")
	}
	if !policy.CanAccessLesson(caller, lesson, policy.OpRead) {
		return notFound(c, "Lesson")
	}

	var exercises []models.Exercise
	if err := database.DB.Where("lesson_id = ?", lesson.ID).Order("created_at asc").Find(&exercises).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch exercises"})
	}
	return c.JSON(exercises)
}
