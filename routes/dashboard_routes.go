package routes

import (
	"digikala-dashboard/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterDashboardRoutes(app *fiber.App, d *controllers.Dashboard) {
	app.Get("/", d.Index)

	charts := app.Group("/charts")
	charts.Get("/scatter.png", d.ScatterChart)
	charts.Get("/importance.png", d.ImportanceChart)
}
