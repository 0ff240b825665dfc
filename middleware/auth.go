// middleware/auth.go
package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Locals keys set by UserContextMiddleware.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
)

// UserContextMiddleware requires the chat identity forwarded by the gateway
// (X-User-ID) and picks up the display name (X-User-Name, URL-encoded).
func UserContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			log.Warn().Str("path", c.Path()).Msg("❌ [USER_CTX] X-User-ID required but missing")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing X-User-ID: request must come through gateway with user context",
			})
		}

		name := c.Get("X-User-Name")
		if decoded, err := url.QueryUnescape(name); err == nil {
			name = decoded
		}

		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserName, name)

		log.Debug().Str("user_id", userID).Str("path", c.Path()).Msg("👤 [USER_CTX]")
		return c.Next()
	}
}

// UserID returns the identity stored by UserContextMiddleware.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

// UserName returns the display name stored by UserContextMiddleware.
func UserName(c *fiber.Ctx) string {
	name, _ := c.Locals(LocalUserName).(string)
	return name
}
