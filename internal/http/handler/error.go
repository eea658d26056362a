package handler

import (
	"github.com/gofiber/fiber/v2"
)

// errorResponse is the error body for every failed request:
// {"error": "<human-readable message>"}.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError writes the standardized JSON error response without leaking
// internal error details.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorResponse{Error: message})
}

// ErrorHandler returns a Fiber global error handler so that framework-level
// failures (unknown route, method not allowed, panics surfaced as errors)
// use the same error body shape as the comment handlers.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "Bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "Resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed")
		default:
			return writeError(c, status, "Internal server error")
		}
	}
}
