package handlers

import (
	"errors"
	"log"

	"resale-market/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles token issuance.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRoutes registers the token route with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/jwt", h.HandleIssueToken)
}

// HandleIssueToken issues a bearer token for a known user email. Unknown
// emails get 401, so tokens can only be minted for provisioned accounts.
func (h *AuthHandler) HandleIssueToken(c *fiber.Ctx) error {
	email := c.Query("email")

	token, err := h.authService.IssueToken(c.Context(), email)
	if err != nil {
		if errors.Is(err, services.ErrUnknownUser) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		log.Printf("Error issuing token for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not issue token",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}
