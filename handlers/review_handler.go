package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/models"
	"github.com/justlearn/backend/policy"
	"gorm.io/gorm"
)

type ReviewRequest struct {
	Text   string `json:"text" validate:"max=255"`
	Rating *int   `json:"rating" validate:"required,gte=0,lte=10"`
}

// CreateReview lets the lesson's student rate it. Ratings outside [0,10] are
// rejected at the boundary. The teacher's aggregate rating is recomputed in
// the same transaction.
func CreateReview(c *fiber.Ctx) error {
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
	if caller.Role != policy.RoleStudent {
		return forbidden(c)
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var review models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		review = models.Review{
			LessonID: lesson.ID,
			Text:     req.Text,
			Rating:   *req.Rating,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var result struct {
			Avg float64
		}
		if err := tx.Model(&models.Review{}).
			Joins("JOIN lessons ON lessons.id = reviews.lesson_id").
			Where("lessons.teacher_id = ?", lesson.TeacherID).
			Select("avg(reviews.rating) as avg").
			Scan(&result).Error; err != nil {
			return err
		}

		return tx.Model(&models.Teacher{}).
			Where("id = ?", lesson.TeacherID).
			Update("rating", result.Avg).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create review"})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// ListLessonReviews is visible to the lesson's participants only, like the
// lesson itself.
func ListLessonReviews(c *fiber.Ctx) error {
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

	var reviews []models.Review
	if err := database.DB.Where("lesson_id = ?", lesson.ID).Order("created_at asc").Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch reviews"})
	}
	return c.JSON(reviews)
}
