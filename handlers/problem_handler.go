package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/models"
	"github.com/justlearn/backend/policy"
)

type ProblemRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Link        string `json:"link" validate:"omitempty,url"`
	Description string `json:"description"`
}

type UpdateProblemRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Link        *string `json:"link" validate:"omitempty,url"`
	Description *string `json:"description"`
}

// Problems are public postings: anyone authenticated can browse them.
func ListProblems(c *fiber.Ctx) error {
	var problems []models.Problem
	if err := database.DB.Order("created_at desc").Find(&problems).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch problems"})
	}
	return c.JSON(problems)
}

// CreateProblem stamps the resolved student as the author, ignoring any
// client-supplied student field.
func CreateProblem(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}
	if !policy.CanAccessProblems(caller, policy.OpWrite) {
		return forbidden(c)
	}

	var req ProblemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	problem := models.Problem{
		StudentID:   caller.Student.ID,
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	}
	if err := database.DB.Create(&problem).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create problem"})
	}
	return c.Status(fiber.StatusCreated).JSON(problem)
}

func GetProblem(c *fiber.Ctx) error {
	var problem models.Problem
	if err := database.DB.First(&problem, "id = ?", c.Params("problemId")).Error; err != nil {
		return notFound(c, "Problem")
	}
	return c.JSON(problem)
}

func UpdateProblem(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var problem models.Problem
	if err := database.DB.First(&problem, "id = ?", c.Params("problemId")).Error; err != nil {
		return notFound(c, "Problem")
	}
	if !policy.CanAccessProblem(caller, problem, policy.OpWrite) {
		return forbidden(c)
	}

	var req UpdateProblemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Title != nil {
		problem.Title = *req.Title
	}
	if req.Link != nil {
		problem.Link = *req.Link
	}
	if req.Description != nil {
		problem.Description = *req.Description
	}

	if err := database.DB.Save(&problem).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update problem"})
	}
	return c.JSON(problem)
}

func DeleteProblem(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var problem models.Problem
	if err := database.DB.First(&problem, "id = ?", c.Params("problemId")).Error; err != nil {
		return notFound(c, "Problem")
	}
	if !policy.CanAccessProblem(caller, problem, policy.OpWrite) {
		return forbidden(c)
	}

	if err := database.DB.Delete(&problem).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete problem"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
