package handler

import (
	"github.com/gofiber/fiber/v2"

	"commentapi/internal/service"
)

// BasePath is where the comment resource is mounted.
const BasePath = "/api/comments"

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay minimal: parse, delegate to the service, format the response.
func RegisterRoutes(app *fiber.App, client Pinger, commentSvc service.CommentService) {
	// Serve the OpenAPI spec and a Swagger UI page for it
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		// Pinned swagger-ui-dist so the page does not break on a major bump
		const html = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Comment API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: "/openapi.yaml",
      dom_id: "#swagger-ui"
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint: checks store connectivity only
	app.Get("/health", HealthCheck(client))

	// Simple liveness probe
	app.Get("/healthz", LivenessProbe())

	comments := app.Group(BasePath)
	comments.Get("/", ListComments(commentSvc))
	comments.Post("/", CreateComment(commentSvc))
	comments.Get("/:id", GetComment(commentSvc))
	comments.Put("/:id", UpdateComment(commentSvc))
	comments.Delete("/:id", DeleteComment(commentSvc))
}
