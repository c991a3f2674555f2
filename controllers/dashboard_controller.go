package controllers

import (
	"github.com/gofiber/fiber/v2"

	"digikala-dashboard/charts"
	"digikala-dashboard/dataset"
	"digikala-dashboard/models"
	"digikala-dashboard/predictor"
)

// RegressionTab is the only tab the dashboard currently has.
const RegressionTab = "tab-regression"

var tabs = []models.Option{
	{Label: "Price Prediction Analysis", Value: RegressionTab},
}

// Dashboard serves the page and its JSON endpoints. Everything it holds is
// read-only after startup.
type Dashboard struct {
	data    *dataset.Dataset
	service *predictor.Service
	charts  *charts.Cache
}

func NewDashboard(data *dataset.Dataset, service *predictor.Service, cache *charts.Cache) *Dashboard {
	return &Dashboard{data: data, service: service, charts: cache}
}

// Index renders the dashboard. ?tab= picks the tab; unknown tabs render with
// no content.
func (d *Dashboard) Index(c *fiber.Ctx) error {
	active := c.Query("tab", RegressionTab)

	return c.Render("index", fiber.Map{
		"Title":      "Digikala Analysis Dashboard",
		"Tabs":       tabs,
		"ActiveTab":  active,
		"Categories": models.NewOptions(d.data.Categories()),
	})
}

// Health reports dataset size and whether predictions are enabled.
func (d *Dashboard) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":       "ok",
		"dataset_rows": d.data.Len(),
		"model_loaded": d.service.Loaded(),
	})
}
