package routes

import (
	"digikala-dashboard/controllers"
	"digikala-dashboard/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber app with middleware and every dashboard route.
func NewApp(d *controllers.Dashboard, allowOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Digikala Analysis Dashboard",
		Views:   views.Engine(),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET, POST, OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	app.Use(logger.New())

	RegisterDashboardRoutes(app, d)
	RegisterAPIRoutes(app, d)
	return app
}
