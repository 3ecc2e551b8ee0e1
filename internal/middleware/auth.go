package middleware

import (
	"github.com/fittrackhq/fittrack-backend/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// BearerProtected validates RS256 bearer tokens against the provider's JWKS.
// Mounted on /api only when AUTH_ENFORCE is set; the endpoints historically
// ran open and existing clients do not send tokens.
func BearerProtected(jwks *services.JWKSClient) fiber.Handler {
	return jwtware.New(jwtware.Config{
		KeyFunc: jwks.Keyfunc,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized: invalid or expired token",
			})
		},
	})
}
