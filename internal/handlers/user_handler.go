package handlers

import (
	"fmt"
	"log"

	"resale-market/internal/models"
	"resale-market/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user accounts and role checks.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. Account
// creation is public; role listings need authentication; mutation is
// admin-gated.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth, adminOnly fiber.Handler) {
	users := router.Group("/users")

	users.Post("/", h.HandleRegister)

	users.Get("/admin/:email", auth, h.HandleIsAdmin)
	users.Get("/buyer", auth, h.HandleListBuyers)
	users.Get("/buyer/:email", auth, h.HandleIsBuyer)
	users.Get("/seller", auth, h.HandleListSellers)
	users.Get("/seller/:email", auth, h.HandleIsSeller)

	users.Put("/seller/:id", auth, adminOnly, h.HandleUpdateSeller)
	users.Delete("/:id", auth, adminOnly, h.HandleDelete)
}

// HandleRegister stores a new user account. Posting an email that already
// exists is an idempotent no-op answered with 200 and the existing record
// untouched. An absent role defaults to buyer.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		log.Printf("Error parsing user body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(user); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	created, err := h.service.Register(c.Context(), &user)
	if err != nil {
		log.Printf("Error registering user %s: %v", user.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
			"error":   err.Error(),
		})
	}

	if !created {
		return c.JSON(fiber.Map{
			"message": "User already exists!",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

// HandleIsAdmin reports whether the email belongs to an admin.
func (h *UserHandler) HandleIsAdmin(c *fiber.Ctx) error {
	return h.roleCheck(c, models.RoleAdmin, "isAdmin")
}

// HandleIsBuyer reports whether the email belongs to a buyer.
func (h *UserHandler) HandleIsBuyer(c *fiber.Ctx) error {
	return h.roleCheck(c, models.RoleBuyer, "isBuyer")
}

// HandleIsSeller reports whether the email belongs to a seller.
func (h *UserHandler) HandleIsSeller(c *fiber.Ctx) error {
	return h.roleCheck(c, models.RoleSeller, "isSeller")
}

// roleCheck answers {key: bool} for the email path parameter. An unknown
// email is false, never an error.
func (h *UserHandler) roleCheck(c *fiber.Ctx, role, key string) error {
	email := c.Params("email")

	ok, err := h.service.HasRole(c.Context(), email, role)
	if err != nil {
		log.Printf("Error checking role of %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not check role",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{key: ok})
}

// HandleListBuyers returns all users with the buyer role.
func (h *UserHandler) HandleListBuyers(c *fiber.Ctx) error {
	return h.listByRole(c, models.RoleBuyer)
}

// HandleListSellers returns all users with the seller role.
func (h *UserHandler) HandleListSellers(c *fiber.Ctx) error {
	return h.listByRole(c, models.RoleSeller)
}

func (h *UserHandler) listByRole(c *fiber.Ctx, role string) error {
	users, err := h.service.ListByRole(c.Context(), role)
	if err != nil {
		log.Printf("Error listing %s users: %v", role, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
			"error":   err.Error(),
		})
	}
	return c.JSON(users)
}

// HandleUpdateSeller applies an arbitrary field set to the user with the
// given id (upsert, matching the historical behavior) and cascades the same
// field set to every product owned by the email query parameter.
func (h *UserHandler) HandleUpdateSeller(c *fiber.Ctx) error {
	id := c.Params("id")
	email := c.Query("email")

	fields := map[string]interface{}{}
	if err := c.BodyParser(&fields); err != nil {
		log.Printf("Error parsing user update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	// Client payloads must not rewrite the document id.
	delete(fields, "_id")

	userRes, productRes, err := h.service.UpdateSeller(c.Context(), id, email, fields)
	if err != nil {
		log.Printf("Error updating seller %s (%s): %v", id, email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update user",
			"error":   err.Error(),
		})
	}

	resp := updateResultJSON(userRes)
	resp["cascadedProducts"] = productRes.Modified
	return c.JSON(resp)
}

// HandleDelete removes a user account by id.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")

	count, err := h.service.Delete(c.Context(), id)
	if err != nil {
		log.Printf("Error deleting user %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete user",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"deletedCount": count})
}
