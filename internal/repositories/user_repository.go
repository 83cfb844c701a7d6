package repositories

import (
	"context"

	"resale-market/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByRole(ctx context.Context, role string) ([]models.User, error)
	// UpdateFields sets the given fields on the user with the given id.
	// With upsert true a missing id creates a new document.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}, upsert bool) (UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}
