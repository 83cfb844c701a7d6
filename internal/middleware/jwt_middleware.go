package middleware

import (
	"log"
	"strings"

	"resale-market/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LocalsEmail is the fiber locals key holding the authenticated email.
const LocalsEmail = "email"

// AuthRequired is a Fiber middleware to check for a valid bearer token.
// A missing or malformed Authorization header is 401; a token that fails
// verification (bad signature, expired) is 403.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		email, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		// Store the authenticated email for subsequent handlers
		c.Locals(LocalsEmail, email)

		return c.Next()
	}
}

// RoleRequired gates a route on the caller's stored role. The role is read
// from the users collection on every request, never from the token, so role
// changes take effect immediately.
func RoleRequired(userService *services.UserService, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals(LocalsEmail).(string)
		if email == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden",
			})
		}

		ok, err := userService.HasRole(c.Context(), email, role)
		if err != nil {
			log.Printf("Role lookup failed for %s: %v", email, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not verify role",
				"error":   err.Error(),
			})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden",
			})
		}

		return c.Next()
	}
}
