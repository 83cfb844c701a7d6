package repositories

import (
	"context"

	"resale-market/internal/models"
)

// CategoryRepository defines the interface for category data access.
// Categories are read-only; the collection is seeded outside the API.
type CategoryRepository interface {
	// GetAll returns categories, capped at limit when limit > 0.
	GetAll(ctx context.Context, limit int64) ([]models.Category, error)
}
