package routes

import (
	"digikala-dashboard/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterAPIRoutes(app *fiber.App, d *controllers.Dashboard) {
	api := app.Group("/api")
	api.Get("/health", d.Health)
	api.Get("/categories", d.GetCategories) // Category dropdown options
	api.Get("/brands", d.GetBrands)         // Brands for the selected category
	api.Post("/predict", d.Predict)
}
