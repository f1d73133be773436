package routes

import (
	"merchant-dashboard-backend/config"
	"merchant-dashboard-backend/controllers"
	"merchant-dashboard-backend/database"
	"merchant-dashboard-backend/middleware"
	"merchant-dashboard-backend/utils"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/swaggo/swag"
)

func SetupRoutes(app *fiber.App, cfg *config.Config, catalog *database.Catalog, suggester *utils.Suggester) {

	// Controllers
	storeController := controllers.NewStoreController(catalog)
	categoryController := controllers.NewCategoryController(catalog)
	menuItemController := controllers.NewMenuItemController(catalog)
	profileController := controllers.NewProfileController(catalog)
	suggestionController := controllers.NewSuggestionController(suggester)
	qrController := controllers.NewQRController()

	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"Aplication":  cfg.AppName,
			"Version":     "1.0.0",
			"message":     "Health check successful",
			"status":      "ok",
			"stores":      catalog.CountStores(),
			"suggestions": suggester.Enabled(),
			"Time":        time.Now().Format("02-01-2006 15:04:05"),
		})
	})

	// API Documentation routes
	app.Get("/docs/doc.json", func(c fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load API documentation")
		}
		c.Set("Content-Type", "application/json")
		return c.SendString(doc)
	})

	// Swagger UI HTML page
	app.Get("/docs", func(c fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <meta name="description" content="SwaggerUI" />
  <title>Merchant Dashboard API - Swagger UI</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '/docs/doc.json',
      dom_id: '#swagger-ui',
    });
  };
</script>
</body>
</html>`
		c.Set("Content-Type", "text/html")
		return c.SendString(html)
	})

	// RapiDoc HTML page
	app.Get("/rapidoc", func(c fiber.Ctx) error {
		html := `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Merchant Dashboard API Documentation</title>
  <script type="module" src="https://unpkg.com/rapidoc/dist/rapidoc-min.js"></script>
</head>
<body>
  <rapi-doc
        spec-url="/docs/doc.json"
        theme="dark"
        render-style="read"
        layout="column"
        schema-style="tree"
        allow-try="true"
        heading-text="Merchant Dashboard API Documentation"
    >
    </rapi-doc>
</body>
</html>`
		c.Set("Content-Type", "text/html")
		return c.SendString(html)
	})

	// Redirect root to rapidoc
	app.Get("/", func(c fiber.Ctx) error {
		return c.Redirect().Status(fiber.StatusMovedPermanently).To("/rapidoc")
	})

	// Store routes
	stores := api.Group("/stores")
	stores.Get("/", storeController.GetStores)
	stores.Post("/", storeController.CreateStore)
	stores.Get("/:id", storeController.GetStore)
	stores.Put("/:id", storeController.UpdateStore)

	// Store scoped routes, the store must exist
	store := stores.Group("/:id", middleware.RequireStore(catalog))
	store.Get("/categories", categoryController.GetCategories)
	store.Post("/categories", categoryController.CreateCategory)
	store.Get("/items", menuItemController.GetItems)
	store.Post("/items", menuItemController.CreateItem)
	store.Get("/qr", qrController.GetStoreQR)
	store.Get("/qr-link", qrController.GetStoreQRLink)

	// Menu item routes
	items := api.Group("/items")
	items.Put("/:id", menuItemController.UpdateItem)
	items.Delete("/:id", menuItemController.DeleteItem)

	// Profile routes
	profile := api.Group("/profile")
	profile.Get("/", profileController.GetProfile)
	profile.Patch("/", profileController.UpdateProfile)

	// Suggestion routes
	suggestions := api.Group("/suggestions")
	suggestions.Post("/description", suggestionController.SuggestDescription)
	suggestions.Post("/price", suggestionController.SuggestPrice)
}
