package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/models"
	"github.com/justlearn/backend/policy"
)

type AdvertisementRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Link        string `json:"link" validate:"omitempty,url"`
	Description string `json:"description"`
}

type UpdateAdvertisementRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Link        *string `json:"link" validate:"omitempty,url"`
	Description *string `json:"description"`
}

func ListAdvertisements(c *fiber.Ctx) error {
	var ads []models.Advertisement
	if err := database.DB.Order("created_at desc").Find(&ads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch advertisements"})
	}
	return c.JSON(ads)
}

// CreateAdvertisement stamps the resolved teacher as the author, ignoring
// any client-supplied teacher field.
func CreateAdvertisement(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}
	if !policy.CanAccessAdvertisements(caller, policy.OpWrite) {
		return forbidden(c)
	}

	var req AdvertisementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ad := models.Advertisement{
		TeacherID:   caller.Teacher.ID,
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	}
	if err := database.DB.Create(&ad).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create advertisement"})
	}
	return c.Status(fiber.StatusCreated).JSON(ad)
}

func GetAdvertisement(c *fiber.Ctx) error {
	var ad models.Advertisement
	if err := database.DB.First(&ad, "id = ?", c.Params("advertisementId")).Error; err != nil {
		return notFound(c, "Advertisement")
	}
	return c.JSON(ad)
}

func UpdateAdvertisement(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var ad models.Advertisement
	if err := database.DB.First(&ad, "id = ?", c.Params("advertisementId")).Error; err != nil {
		return notFound(c, "Advertisement")
	}
	if !policy.CanAccessAdvertisement(caller, ad, policy.OpWrite) {
		return forbidden(c)
	}

	var req UpdateAdvertisementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Title != nil {
		ad.Title = *req.Title
	}
	if req.Link != nil {
		ad.Link = *req.Link
	}
	if req.Description != nil {
		ad.Description = *req.Description
	}

	if err := database.DB.Save(&ad).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update advertisement"})
	}
	return c.JSON(ad)
}

func DeleteAdvertisement(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var ad models.Advertisement
	if err := database.DB.First(&ad, "id = ?", c.Params("advertisementId")).Error; err != nil {
		return notFound(c, "Advertisement")
	}
	if !policy.CanAccessAdvertisement(caller, ad, policy.OpWrite) {
		return forbidden(c)
	}

	if err := database.DB.Delete(&ad).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete advertisement"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
