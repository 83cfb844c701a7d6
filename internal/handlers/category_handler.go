package handlers

import (
	"log"

	"resale-market/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the category routes with the Fiber app. The
// listing route is public; browsing a category requires authentication.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	categories := router.Group("/categories")
	categories.Get("/", h.HandleList)
	categories.Get("/:id", auth, h.HandleProductsIn)
}

// HandleList returns all categories, capped by the optional limit query
// parameter. An omitted limit means unlimited.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 0))

	categories, err := h.service.List(c.Context(), limit)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}

// HandleProductsIn returns the unsold products whose category contains the
// path parameter as a substring.
func (h *CategoryHandler) HandleProductsIn(c *fiber.Ctx) error {
	category := c.Params("id")

	products, err := h.service.ProductsIn(c.Context(), category)
	if err != nil {
		log.Printf("Error browsing category %s: %v", category, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}
