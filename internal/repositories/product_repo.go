package repositories

import (
	"context"

	"resale-market/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	// FindByCategory returns unsold products whose category field contains
	// the given substring.
	FindByCategory(ctx context.Context, category string) ([]models.Product, error)
	FindBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error)
	FindReported(ctx context.Context) ([]models.Product, error)
	FindAdvertised(ctx context.Context) ([]models.Product, error)
	// UpdateFields sets the given fields on the product with the given id.
	// With upsert true a missing id creates a new document.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}, upsert bool) (UpdateResult, error)
	// UpdateBySeller sets the given fields on every product owned by the
	// given seller email.
	UpdateBySeller(ctx context.Context, sellerEmail string, fields map[string]interface{}) (UpdateResult, error)
	// SetAdvertised flags the product as advertised, scoped to its owner.
	SetAdvertised(ctx context.Context, id, sellerEmail string) (UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
	// DeleteOwned deletes the product only when its sellerEmail matches;
	// a mismatch yields a zero deleted count, not an error.
	DeleteOwned(ctx context.Context, id, sellerEmail string) (int64, error)
}
