package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/models"
	"github.com/justlearn/backend/policy"
	"github.com/justlearn/backend/utils"
)

type UpdateProfileRequest struct {
	GithubLink   *string `json:"github_link" validate:"omitempty,url"`
	LinkedinLink *string `json:"linkedin_link" validate:"omitempty,url"`
	Description  *string `json:"description" validate:"omitempty,max=510"`
}

// MyProfile returns the caller's own role profile. Staff accounts have no
// profile to show.
func MyProfile(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	switch caller.Role {
	case policy.RoleStudent:
		var student models.Student
		if err := database.DB.Preload("Skills").Preload("User").First(&student, "id = ?", caller.Student.ID).Error; err != nil {
			return notFound(c, "Profile")
		}
		return c.JSON(student)
	case policy.RoleTeacher:
		var teacher models.Teacher
		if err := database.DB.Preload("Skills").Preload("User").First(&teacher, "id = ?", caller.Teacher.ID).Error; err != nil {
			return notFound(c, "Profile")
		}
		return c.JSON(teacher)
	}
	return notFound(c, "Profile")
}

func UpdateMyProfile(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	switch caller.Role {
	case policy.RoleStudent:
		student := caller.Student
		applyProfileUpdate(&student.GithubLink, &student.LinkedinLink, &student.Description, req)
		if err := database.DB.Save(student).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
		}
		return c.JSON(student)
	case policy.RoleTeacher:
		teacher := caller.Teacher
		applyProfileUpdate(&teacher.GithubLink, &teacher.LinkedinLink, &teacher.Description, req)
		if err := database.DB.Save(teacher).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
		}
		return c.JSON(teacher)
	}
	return notFound(c, "Profile")
}

func applyProfileUpdate(github, linkedin **string, description *string, req UpdateProfileRequest) {
	if req.GithubLink != nil {
		*github = req.GithubLink
	}
	if req.LinkedinLink != nil {
		*linkedin = req.LinkedinLink
	}
	if req.Description != nil {
		*description = *req.Description
	}
}

// UploadProfileImage stores the image under a generated unique path and
// attaches it to the caller's profile.
func UploadProfileImage(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}
	if caller.Role == policy.RoleNone {
		return notFound(c, "Profile")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image file is required"})
	}

	path, err := utils.SaveUpload(c, file, utils.ProfilePicFolder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store image"})
	}

	switch caller.Role {
	case policy.RoleStudent:
		caller.Student.Image = &path
		if err := database.DB.Save(caller.Student).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
		}
		return c.JSON(caller.Student)
	default:
		caller.Teacher.Image = &path
		if err := database.DB.Save(caller.Teacher).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
		}
		return c.JSON(caller.Teacher)
	}
}

func ListStudents(c *fiber.Ctx) error {
	var students []models.Student
	if err := database.DB.Preload("Skills").Preload("User").Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(students)
}

func GetStudent(c *fiber.Ctx) error {
	var student models.Student
	if err := database.DB.Preload("Skills").Preload("User").First(&student, "id = ?", c.Params("studentId")).Error; err != nil {
		return notFound(c, "Student")
	}
	return c.JSON(student)
}

// UpdateStudent only lets a student edit their own profile record.
func UpdateStudent(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var student models.Student
	if err := database.DB.First(&student, "id = ?", c.Params("studentId")).Error; err != nil {
		return notFound(c, "Student")
	}
	if caller.Role != policy.RoleStudent || caller.Student.ID != student.ID {
		return forbidden(c)
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	applyProfileUpdate(&student.GithubLink, &student.LinkedinLink, &student.Description, req)
	if err := database.DB.Save(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
	}
	return c.JSON(student)
}

func ListTeachers(c *fiber.Ctx) error {
	var teachers []models.Teacher
	if err := database.DB.Preload("Skills").Preload("User").Find(&teachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}
	return c.JSON(teachers)
}

func GetTeacher(c *fiber.Ctx) error {
	var teacher models.Teacher
	if err := database.DB.Preload("Skills").Preload("User").First(&teacher, "id = ?", c.Params("teacherId")).Error; err != nil {
		return notFound(c, "Teacher")
	}
	return c.JSON(teacher)
}
