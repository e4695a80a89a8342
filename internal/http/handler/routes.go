package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"foodkeeper/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, items service.FoodItemService, locations service.LocationService, transfer service.TransferService) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	api.Get("/food-items", ListFoodItems(items))
	api.Post("/food-items", CreateFoodItem(items))
	api.Put("/food-items/:id", UpdateFoodItem(items))
	api.Delete("/food-items/:id", DeleteFoodItem(items))

	api.Get("/storage-locations", ListLocations(locations))
	api.Post("/storage-locations", CreateLocation(locations))
	api.Put("/storage-locations/:id", UpdateLocation(locations))
	api.Delete("/storage-locations/:id", DeleteLocation(locations))

	api.Get("/location-stats", LocationStats(items))

	api.Get("/export", ExportData(transfer))
	api.Post("/import", ImportData(transfer))
	api.Post("/backup", BackupData(transfer))
	api.Post("/backup/restore", RestoreBackup(transfer))
}
