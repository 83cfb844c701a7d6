package services

import (
	"context"

	"resale-market/internal/models"
	"resale-market/internal/repositories"
)

// CategoryService handles category listing and category-scoped browsing.
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// List returns categories, capped at limit when limit > 0.
func (s *CategoryService) List(ctx context.Context, limit int64) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx, limit)
}

// ProductsIn returns the unsold products whose category contains the given
// name as a substring.
func (s *CategoryService) ProductsIn(ctx context.Context, category string) ([]models.Product, error) {
	return s.productRepo.FindByCategory(ctx, category)
}
