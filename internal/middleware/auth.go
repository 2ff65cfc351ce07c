package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/laibam4/reelico/internal/auth"
)

// UserIDKey is the Locals key the JWT middleware stores the caller id under.
const UserIDKey = "userID"

// JWTAuth guards a route with bearer authentication. Every failure mode
// (missing header, malformed scheme, bad signature, expired token) collapses
// to the same 401; the distinct cause is only logged.
func JWTAuth(tokens *auth.TokenManager, logger *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c)
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			logger.Warnw("malformed authorization header", "path", c.Path())
			return unauthorized(c)
		}
		userID, err := tokens.Verify(parts[1])
		if err != nil {
			logger.Warnw("token rejected", "path", c.Path(), "err", err)
			return unauthorized(c)
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
}
