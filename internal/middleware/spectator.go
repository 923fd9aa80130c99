package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnsureSpectatorID stores the caller's spectator id in c.Locals. It is read
// from the X-Spectator-ID header or the spectatorId query parameter, and
// generated when neither is present.
func EnsureSpectatorID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("spectatorID") != nil {
			return c.Next()
		}

		spectatorID := c.Get("X-Spectator-ID")
		if spectatorID == "" {
			spectatorID = c.Query("spectatorId")
		}
		if spectatorID == "" {
			spectatorID = uuid.New().String()
		}

		c.Locals("spectatorID", spectatorID)
		c.Set("X-Spectator-ID", spectatorID)
		return c.Next()
	}
}
