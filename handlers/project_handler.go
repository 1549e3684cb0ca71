package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/models"
	"github.com/justlearn/backend/policy"
	"github.com/justlearn/backend/utils"
)

// UploadProject stores a project file for the calling student.
func UploadProject(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}
	if caller.Role != policy.RoleStudent {
		return forbidden(c)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Project file is required"})
	}

	path, err := utils.SaveUpload(c, file, utils.ProjectFolder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store file"})
	}

	project := models.Project{StudentID: caller.Student.ID, File: path}
	if err := database.DB.Create(&project).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create project"})
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func ListMyProjects(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}
	if caller.Role != policy.RoleStudent {
		return c.JSON([]models.Project{})
	}

	var projects []models.Project
	if err := database.DB.Where("student_id = ?", caller.Student.ID).Order("created_at desc").Find(&projects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch projects"})
	}
	return c.JSON(projects)
}
