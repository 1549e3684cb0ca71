package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/policy"
	"github.com/justlearn/backend/utils"
)

var validate = validator.New()

// resolveCaller threads the authenticated caller's resolved role and profile
// into a handler. On failure the response has already been written and the
// handler should return nil. Integrity faults (role flag without a profile
// row) are logged and surfaced as server errors, never as anonymous access.
func resolveCaller(c *fiber.Ctx) (policy.Caller, bool) {
	userID, err := utils.UserIDFromToken(c)
	if err != nil {
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		return policy.Caller{}, false
	}

	caller, err := policy.Resolve(database.DB, userID)
	if err != nil {
		if errors.Is(err, policy.ErrProfileNotFound) {
			log.Printf("[ERROR] data inconsistency for user %s: %v", userID, err)
			_ = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		} else {
			_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unknown user"})
		}
		return policy.Caller{}, false
	}
	return caller, true
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": what + " not found"})
}
