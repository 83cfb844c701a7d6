package handlers

import (
	"resale-market/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// updateResultJSON renders an update result in the driver's count shape.
func updateResultJSON(res repositories.UpdateResult) fiber.Map {
	m := fiber.Map{
		"matchedCount":  res.Matched,
		"modifiedCount": res.Modified,
	}
	if res.UpsertedID != "" {
		m["upsertedId"] = res.UpsertedID
	}
	return m
}
