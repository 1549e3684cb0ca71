package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/handlers"
	"github.com/justlearn/backend/middleware"
)

func AdvertisementRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	ads := api.Group("/advertisements", middleware.Protected())
	ads.Get("", handlers.ListAdvertisements)
	ads.Post("", middleware.TeacherRequired(), handlers.CreateAdvertisement)
	ads.Get("/:advertisementId", handlers.GetAdvertisement)
	ads.Patch("/:advertisementId", handlers.UpdateAdvertisement)
	ads.Delete("/:advertisementId", handlers.DeleteAdvertisement)
}
