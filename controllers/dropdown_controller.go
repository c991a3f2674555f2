package controllers

import (
	"github.com/gofiber/fiber/v2"

	"digikala-dashboard/models"
)

// GetCategories lists the options of the independent dropdown.
func (d *Dashboard) GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"options": models.NewOptions(d.data.Categories())})
}

// GetBrands lists the brands seen with ?category= and clears the brand selection.
func (d *Dashboard) GetBrands(c *fiber.Ctx) error {
	brands := d.data.BrandsForCategory(c.Query("category"))
	return c.JSON(models.BrandOptionsResponse{
		Options: models.NewOptions(brands),
		Value:   nil,
	})
}
