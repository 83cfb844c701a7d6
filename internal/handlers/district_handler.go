package handlers

import (
	"log"

	"resale-market/internal/districts"

	"github.com/gofiber/fiber/v2"
)

// DistrictHandler serves the static district lookup.
type DistrictHandler struct{}

// NewDistrictHandler creates a new DistrictHandler.
func NewDistrictHandler() *DistrictHandler {
	return &DistrictHandler{}
}

// RegisterRoutes registers the district lookup route with the Fiber app.
func (h *DistrictHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/bd/districtNames", h.HandleDistrictNames)
}

// HandleDistrictNames returns the embedded district list.
func (h *DistrictHandler) HandleDistrictNames(c *fiber.Ctx) error {
	list, err := districts.All()
	if err != nil {
		log.Printf("Error loading district data: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not load district data",
			"error":   err.Error(),
		})
	}
	return c.JSON(list)
}
