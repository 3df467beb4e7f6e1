package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"siteapi/internal/auth"
	"siteapi/internal/http/middleware"
	"siteapi/internal/service"
)

// Deps bundles everything the route table needs injected.
type Deps struct {
	Auth          service.AuthService
	Contacts      service.ContactService
	Applications  service.ApplicationService
	Opportunities service.OpportunityService
	Stats         service.StatsService
	Tokens        *auth.TokenService
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Handlers stay thin; business rules live in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, d Deps) {
	// Serve OpenAPI spec and a minimal docs page
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

	requireAuth := middleware.RequireAuth(d.Tokens)
	optionalAuth := middleware.OptionalAuth(d.Tokens)

	api := app.Group("/api")

	// API index, handy for smoke tests
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "siteapi",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"auth":          "/api/auth/login",
				"contacts":      "/api/contacts",
				"applications":  "/api/applications",
				"opportunities": "/api/opportunities",
				"stats":         "/api/stats",
			},
		})
	})

	authGroup := api.Group("/auth")
	authGroup.Post("/login", Login(d.Auth))
	authGroup.Get("/verify", requireAuth, VerifyToken())

	contacts := api.Group("/contacts")
	contacts.Post("/", CreateContact(d.Contacts))
	contacts.Get("/", requireAuth, ListContacts(d.Contacts))
	contacts.Patch("/:id", requireAuth, UpdateContactStatus(d.Contacts))
	contacts.Delete("/:id", requireAuth, DeleteContact(d.Contacts))

	applications := api.Group("/applications")
	applications.Post("/", CreateApplication(d.Applications))
	applications.Get("/", requireAuth, ListApplications(d.Applications))
	applications.Patch("/:id", requireAuth, UpdateApplicationStatus(d.Applications))
	applications.Delete("/:id", requireAuth, DeleteApplication(d.Applications))

	opportunities := api.Group("/opportunities")
	opportunities.Get("/", optionalAuth, ListOpportunities(d.Opportunities))
	opportunities.Post("/", requireAuth, CreateOpportunity(d.Opportunities))
	opportunities.Patch("/:id/toggle-publish", requireAuth, TogglePublish(d.Opportunities))
	opportunities.Patch("/:id", requireAuth, UpdateOpportunity(d.Opportunities))
	opportunities.Delete("/:id", requireAuth, DeleteOpportunity(d.Opportunities))

	api.Get("/stats", requireAuth, GetStats(d.Stats))
}
