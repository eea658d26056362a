package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the key under which the request ID is stored in
	// Fiber's context locals.
	RequestIDLocalKey = "request_id"
)

// RequestID tags every request with an ID so log lines and error responses
// can be correlated. A caller-provided X-Request-ID wins; otherwise a fresh
// UUID is minted. The ID ends up in three places: the context locals, the
// response header, and (via the logger middleware) the request log line.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.New().String()
		}

		c.Set(RequestIDHeader, rid)
		c.Locals(RequestIDLocalKey, rid)

		return c.Next()
	}
}
