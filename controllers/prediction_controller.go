package controllers

import (
	"github.com/gofiber/fiber/v2"

	"digikala-dashboard/models"
)

// Predict answers a press of the predict button. Prediction problems are
// reported in the output text with status 200; only an unreadable body is a 400.
func (d *Dashboard) Predict(c *fiber.Ctx) error {
	var req models.PredictionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request format"})
	}

	return c.JSON(d.service.Handle(req.NClicks, req.Brand, req.Category))
}
