package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/models"
	"github.com/justlearn/backend/policy"
	"gorm.io/gorm"
)

type CreateLessonRequest struct {
	StudentID   string     `json:"student_id" validate:"required,uuid"`
	Topic       string     `json:"topic"`
	Description string     `json:"description"`
	Duration    int        `json:"duration" validate:"omitempty,gt=0"`
	LessonDate  *time.Time `json:"lesson_date"`
	MeetingLink *string    `json:"meeting_link"`
}

type UpdateLessonRequest struct {
	Topic       *string    `json:"topic"`
	Description *string    `json:"description"`
	Duration    *int       `json:"duration" validate:"omitempty,gt=0"`
	LessonDate  *time.Time `json:"lesson_date"`
	MeetingLink *string    `json:"meeting_link"`
}

// lessonScope is the caller-visible slice of lessons. Lessons are private to
// their two participants, so everyone else sees an empty set.
func lessonScope(caller policy.Caller) *gorm.DB {
	switch caller.Role {
	case policy.RoleStudent:
		return database.DB.Where("student_id = ?", caller.Student.ID)
	case policy.RoleTeacher:
		return database.DB.Where("teacher_id = ?", caller.Teacher.ID)
	}
	return database.DB.Where("1 = 0")
}

func ListLessons(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}
	if !policy.CanAccessLessons(caller, policy.OpRead) {
		return forbidden(c)
	}

	var lessons []models.Lesson
	if err := lessonScope(caller).Preload("Exercises").Order("lesson_date asc").Find(&lessons).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch lessons"})
	}
	return c.JSON(lessons)
}

// CreateLesson stamps the authenticated teacher as the lesson's teacher; the
// client cannot schedule a lesson on another teacher's behalf.
func CreateLesson(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}
	if !policy.CanAccessLessons(caller, policy.OpWrite) {
		return forbidden(c)
	}

	var req CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, _ := uuid.Parse(req.StudentID)
	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return notFound(c, "Student")
	}

	duration := req.Duration
	if duration == 0 {
		duration = 60
	}

	lesson := models.Lesson{
		StudentID:   student.ID,
		TeacherID:   caller.Teacher.ID,
		Topic:       req.Topic,
		Description: req.Description,
		Duration:    duration,
		LessonDate:  req.LessonDate,
		MeetingLink: req.MeetingLink,
	}
	if err := database.DB.Create(&lesson).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create lesson"})
	}
	return c.Status(fiber.StatusCreated).JSON(lesson)
}

func GetLesson(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var lesson models.Lesson
	if err := database.DB.Preload("Exercises").First(&lesson, "id = ?", c.Params("lessonId")).Error; err != nil {
		return notFound(c, "Lesson")
	}
	// Non-participants get the same answer as a missing id.
	if !policy.CanAccessLesson(caller, lesson, policy.OpRead) {
		return notFound(c, "Lesson")
	}
	return c.JSON(lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
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

	var req UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Topic != nil {
		lesson.Topic = *req.Topic
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.Duration != nil {
		lesson.Duration = *req.Duration
	}
	if req.LessonDate != nil {
		lesson.LessonDate = req.LessonDate
	}
	if req.MeetingLink != nil {
		lesson.MeetingLink = req.MeetingLink
	}

	if err := database.DB.Save(&lesson).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update lesson"})
	}
	return c.JSON(lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
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

	if err := database.DB.Delete(&lesson).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete lesson"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MyLessons returns the caller's lessons scheduled today or later. Lessons
// with no date yet cannot be placed on either side of the boundary and are
// excluded.
func MyLessons(c *fiber.Ctx) error {
	return lessonsSplit(c, true)
}

// MyPastLessons returns the caller's lessons scheduled before today.
func MyPastLessons(c *fiber.Ctx) error {
	return lessonsSplit(c, false)
}

func lessonsSplit(c *fiber.Ctx, upcoming bool) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}
	if !policy.CanAccessLessons(caller, policy.OpRead) {
		return forbidden(c)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	query := lessonScope(caller).Where("lesson_date IS NOT NULL")
	if upcoming {
		query = query.Where("lesson_date >= ?", today)
	} else {
		query = query.Where("lesson_date < ?", today)
	}

	var lessons []models.Lesson
	if err := query.Order("lesson_date asc").Find(&lessons).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch lessons"})
	}
	return c.JSON(lessons)
}
