package repositories

import (
	"context"
	"sync"

	"resale-market/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockCategoryRepository is an in-memory implementation of CategoryRepository.
type MockCategoryRepository struct {
	categories []models.Category
	mu         sync.RWMutex
}

// NewMockCategoryRepository creates a mock repository seeded with the given
// categories, assigning ids to any that lack one.
func NewMockCategoryRepository(categories ...models.Category) *MockCategoryRepository {
	for i := range categories {
		if categories[i].ID.IsZero() {
			categories[i].ID = primitive.NewObjectID()
		}
	}
	return &MockCategoryRepository{categories: categories}
}

// GetAll returns categories, capped at limit when limit > 0.
func (r *MockCategoryRepository) GetAll(_ context.Context, limit int64) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}
