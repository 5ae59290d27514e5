package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ianishdubey/FitZoneBack/internal/httperr"
	"github.com/ianishdubey/FitZoneBack/pkg/utils"
)

// AuthRequired verifies the bearer token and attaches the decoded identity
// to the request context. A missing header is 401, a failed verification
// (bad signature or expired) is 403.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(httperr.New(httperr.MsgTokenRequired, httperr.CodeUnauthenticated))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(httperr.New(httperr.MsgTokenRequired, httperr.CodeUnauthenticated))
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			return c.Status(fiber.StatusForbidden).
				JSON(httperr.New(httperr.MsgInvalidToken, httperr.CodeInvalidToken))
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("email", claims.Email)

		return c.Next()
	}
}
