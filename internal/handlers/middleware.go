package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"campuschat/config"
	"campuschat/pkg/utils"
)

const localsUserID = "userID"

// AuthRequired binds the request to the authenticated session identity. The
// token travels in the Authorization header, or in the "token" query
// parameter for websocket upgrades (browsers cannot set headers there).
func AuthRequired(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		userID, err := utils.ParseAccessToken(token, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(localsUserID, userID)
		return c.Next()
	}
}
