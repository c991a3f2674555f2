package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"digikala-dashboard/charts"
)

func (d *Dashboard) ScatterChart(c *fiber.Ctx) error {
	return sendPNG(c, "scatter", d.charts.Scatter)
}

func (d *Dashboard) ImportanceChart(c *fiber.Ctx) error {
	return sendPNG(c, "importance", d.charts.Importance)
}

func sendPNG(c *fiber.Ctx, name string, render func() ([]byte, error)) error {
	png, err := render()
	if errors.Is(err, charts.ErrNoData) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if err != nil {
		log.Error().Err(err).Str("chart", name).Msg("❌ Failed to render chart")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render chart"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Send(png)
}
