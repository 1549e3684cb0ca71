package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/models"
	"github.com/justlearn/backend/policy"
)

type CreateOfferRequest struct {
	Name            string  `json:"name" validate:"required,max=255"`
	AdvertisementID *string `json:"advertisement_id" validate:"omitempty,uuid"`
	ProblemID       *string `json:"problem_id" validate:"omitempty,uuid"`
}

// CreateOffer records a proposed engagement. The direction must be coherent:
// a student answers an advertisement, a teacher answers a problem. The
// answering party is stamped from the resolved caller.
func CreateOffer(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var req CreateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	offer := models.Offer{Name: req.Name}

	switch caller.Role {
	case policy.RoleStudent:
		if req.AdvertisementID == nil || req.ProblemID != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A student offer must reference exactly one advertisement"})
		}
		adID, _ := uuid.Parse(*req.AdvertisementID)
		var ad models.Advertisement
		if err := database.DB.First(&ad, "id = ?", adID).Error; err != nil {
			return notFound(c, "Advertisement")
		}
		offer.StudentID = &caller.Student.ID
		offer.AdvertisementID = &ad.ID
	case policy.RoleTeacher:
		if req.ProblemID == nil || req.AdvertisementID != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A teacher offer must reference exactly one problem"})
		}
		problemID, _ := uuid.Parse(*req.ProblemID)
		var problem models.Problem
		if err := database.DB.First(&problem, "id = ?", problemID).Error; err != nil {
			return notFound(c, "Problem")
		}
		offer.TeacherID = &caller.Teacher.ID
		offer.ProblemID = &problem.ID
	default:
		return forbidden(c)
	}

	if err := database.DB.Create(&offer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create offer"})
	}
	return c.Status(fiber.StatusCreated).JSON(offer)
}

// ListMyOffers returns offers the caller made plus offers answering the
// caller's own postings.
func ListMyOffers(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var offers []models.Offer
	var err error
	switch caller.Role {
	case policy.RoleStudent:
		myProblems := database.DB.Model(&models.Problem{}).Select("id").Where("student_id = ?", caller.Student.ID)
		err = database.DB.
			Where("student_id = ? OR problem_id IN (?)", caller.Student.ID, myProblems).
			Order("created_at desc").
			Find(&offers).Error
	case policy.RoleTeacher:
		myAds := database.DB.Model(&models.Advertisement{}).Select("id").Where("teacher_id = ?", caller.Teacher.ID)
		err = database.DB.
			Where("teacher_id = ? OR advertisement_id IN (?)", caller.Teacher.ID, myAds).
			Order("created_at desc").
			Find(&offers).Error
	default:
		return c.JSON([]models.Offer{})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch offers"})
	}
	return c.JSON(offers)
}

// DeleteOffer lets the party who made the offer withdraw it.
func DeleteOffer(c *fiber.Ctx) error {
	caller, ok := resolveCaller(c)
	if !ok {
		return nil
	}

	var offer models.Offer
	if err := database.DB.First(&offer, "id = ?", c.Params("offerId")).Error; err != nil {
		return notFound(c, "Offer")
	}

	mine := false
	switch caller.Role {
	case policy.RoleStudent:
		mine = offer.StudentID != nil && *offer.StudentID == caller.Student.ID
	case policy.RoleTeacher:
		mine = offer.TeacherID != nil && *offer.TeacherID == caller.Teacher.ID
	}
	if !mine {
		return forbidden(c)
	}

	if err := database.DB.Delete(&offer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete offer"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
