package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/handlers"
	"github.com/justlearn/backend/middleware"
)

func OfferRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	offers := api.Group("/offers", middleware.Protected())
	offers.Get("", handlers.ListMyOffers)
	offers.Post("", handlers.CreateOffer)
	offers.Delete("/:offerId", handlers.DeleteOffer)
}
