package repositories

import (
	"context"
	"fmt"

	"resale-market/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCategoryRepository is a MongoDB implementation of CategoryRepository.
type MongoCategoryRepository struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepository creates a new instance of MongoCategoryRepository.
func NewMongoCategoryRepository(db *mongo.Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{
		coll: db.Collection("categories"),
	}
}

// GetAll returns categories, capped at limit when limit > 0.
func (r *MongoCategoryRepository) GetAll(ctx context.Context, limit int64) ([]models.Category, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find categories: %w", err)
	}
	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}
