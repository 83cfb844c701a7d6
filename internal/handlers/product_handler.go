package handlers

import (
	"fmt"
	"log"

	"resale-market/internal/models"
	"resale-market/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for product listings.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app. Literal
// segments are registered before the :id parameter so /reported and
// /advertisement never match as ids.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth, sellerOnly, adminOnly fiber.Handler) {
	products := router.Group("/products")

	products.Get("/reported", auth, adminOnly, h.HandleGetReported)
	products.Delete("/reported/:id", auth, adminOnly, h.HandleDeleteReported)
	products.Get("/advertisement", h.HandleGetAdvertised)
	products.Put("/advertisement/:id", auth, sellerOnly, h.HandleAdvertise)

	products.Post("/", auth, sellerOnly, h.HandleCreate)
	products.Get("/", auth, sellerOnly, h.HandleGetBySeller)
	products.Put("/:id", auth, h.HandleUpdate)
	products.Delete("/:id", auth, sellerOnly, h.HandleDeleteOwned)
}

// HandleCreate inserts a new listing posted by a seller.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
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

	if err := h.service.Create(c.Context(), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleGetBySeller returns the listings owned by the email query parameter.
// An absent email matches nothing.
func (h *ProductHandler) HandleGetBySeller(c *fiber.Ctx) error {
	email := c.Query("email")

	products, err := h.service.GetBySeller(c.Context(), email)
	if err != nil {
		log.Printf("Error getting products of seller %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetReported returns the listings buyers have reported.
func (h *ProductHandler) HandleGetReported(c *fiber.Ctx) error {
	products, err := h.service.GetReported(c.Context())
	if err != nil {
		log.Printf("Error getting reported products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reported products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetAdvertised returns the listings flagged as advertised.
func (h *ProductHandler) HandleGetAdvertised(c *fiber.Ctx) error {
	products, err := h.service.GetAdvertised(c.Context())
	if err != nil {
		log.Printf("Error getting advertised products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve advertised products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleUpdate applies an arbitrary field set to a listing by id. A missing
// id creates a new document (upsert), matching the historical behavior of
// this route.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	fields := map[string]interface{}{}
	if err := c.BodyParser(&fields); err != nil {
		log.Printf("Error parsing product update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	// Client payloads must not rewrite the document id.
	delete(fields, "_id")

	res, err := h.service.UpdateFields(c.Context(), id, fields)
	if err != nil {
		log.Printf("Error updating product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(updateResultJSON(res))
}

// HandleAdvertise flags a listing as advertised, scoped to the owning
// seller given by the email query parameter.
func (h *ProductHandler) HandleAdvertise(c *fiber.Ctx) error {
	id := c.Params("id")
	email := c.Query("email")

	res, err := h.service.Advertise(c.Context(), id, email)
	if err != nil {
		log.Printf("Error advertising product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not advertise product",
			"error":   err.Error(),
		})
	}
	return c.JSON(updateResultJSON(res))
}

// HandleDeleteReported deletes a reported listing by id (admin moderation).
func (h *ProductHandler) HandleDeleteReported(c *fiber.Ctx) error {
	id := c.Params("id")

	count, err := h.service.Delete(c.Context(), id)
	if err != nil {
		log.Printf("Error deleting reported product %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"deletedCount": count})
}

// HandleDeleteOwned deletes a listing by id, scoped to the owning seller
// given by the email query parameter. A mismatched owner yields a zero
// deleted count, not an error.
func (h *ProductHandler) HandleDeleteOwned(c *fiber.Ctx) error {
	id := c.Params("id")
	email := c.Query("email")

	count, err := h.service.DeleteOwned(c.Context(), id, email)
	if err != nil {
		log.Printf("Error deleting product %s of seller %s: %v", id, email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"deletedCount": count})
}
