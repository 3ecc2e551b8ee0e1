package handlers

import (
	"errors"
	"strings"

	"github.com/fittrackhq/fittrack-backend/internal/dto"
	"github.com/fittrackhq/fittrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Authorize handles POST /authorize - verifies the bearer token and upserts
// the local user. 200 for a known email, 201 for a first-seen one.
func (h *AuthHandler) Authorize(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing authorization header",
		})
	}

	// "Bearer <token>"; a header without a token part is just an invalid token.
	parts := strings.Fields(header)
	token := ""
	if len(parts) >= 2 {
		token = parts[1]
	}

	result, err := h.authService.Authorize(token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}
		return err
	}

	if result.Created {
		return c.Status(fiber.StatusCreated).JSON(dto.AuthorizeResponse{
			Message: "User created successfully",
			UserID:  result.UserID,
		})
	}
	return c.JSON(dto.AuthorizeResponse{
		Message: "User already exists",
		UserID:  result.UserID,
	})
}
