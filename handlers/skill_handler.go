package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/models"
	"github.com/justlearn/backend/policy"
)

type SkillRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Proficiency string `json:"proficiency" validate:"omitempty,oneof=junior mid senior"`
}

func ListSkills(c *fiber.Ctx) error {
	var skills []models.Skill
	if err := database.DB.Order("name asc").Find(&skills).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch skills"})
	}
	return c.JSON(skills)
}

func CreateSkill(c *fiber.Ctx) error {
	var req SkillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	skill := models.Skill{Name: req.Name, Proficiency: req.Proficiency}
	if skill.Proficiency == "" {
		skill.Proficiency = models.ProficiencyJunior
	}
	if err := database.DB.Create(&skill).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create skill"})
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

// AddSkillToProfile attaches an existing skill to the caller's own profile.
func AddSkillToProfile(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var skill models.Skill
	if err := database.DB.First(&skill, "id = ?", c.Params("skillId")).Error; err != nil {
		return notFound(c, "Skill")
	}

	var err error
	switch caller.Role {
	case policy.RoleStudent:
		err = database.DB.Model(caller.Student).Association("Skills").Append(&skill)
	case policy.RoleTeacher:
		err = database.DB.Model(caller.Teacher).Association("Skills").Append(&skill)
	default:
		return notFound(c, "Profile")
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add skill"})
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

func RemoveSkillFromProfile(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var skill models.Skill
	if err := database.DB.First(&skill, "id = ?", c.Params("skillId")).Error; err != nil {
		return notFound(c, "Skill")
	}

	var err error
	switch caller.Role {
	case policy.RoleStudent:
		err = database.DB.Model(caller.Student).Association("Skills").Delete(&skill)
	case policy.RoleTeacher:
		err = database.DB.Model(caller.Teacher).Association("Skills").Delete(&skill)
	default:
		return notFound(c, "Profile")
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove skill"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
