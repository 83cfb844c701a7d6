package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"resale-market/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product // keyed by hex id
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// Create adds a new product.
func (r *MockProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	r.products[product.ID.Hex()] = *product
	return nil
}

// FindByCategory returns unsold products whose category contains the substring.
func (r *MockProductRepository) FindByCategory(_ context.Context, category string) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool {
		return !p.IsSold && strings.Contains(p.Category, category)
	}), nil
}

// FindBySeller returns all products owned by the given seller email.
func (r *MockProductRepository) FindBySeller(_ context.Context, sellerEmail string) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool {
		return p.SellerEmail == sellerEmail
	}), nil
}

// FindReported returns all products flagged as reported.
func (r *MockProductRepository) FindReported(_ context.Context) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.IsReported }), nil
}

// FindAdvertised returns all products flagged as advertised.
func (r *MockProductRepository) FindAdvertised(_ context.Context) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.IsAdvertised }), nil
}

func (r *MockProductRepository) filter(keep func(models.Product) bool) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []models.Product{}
	for _, p := range r.products {
		if keep(p) {
			products = append(products, p)
		}
	}
	return products
}

// UpdateFields sets the given fields on the product with the given id,
// creating the document when upsert is true and the id is unknown.
func (r *MockProductRepository) UpdateFields(_ context.Context, id string, fields map[string]interface{}, upsert bool) (UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		if !upsert {
			return UpdateResult{}, nil
		}
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return UpdateResult{}, fmt.Errorf("invalid product id %q: %w", id, err)
		}
		created := models.Product{ID: oid}
		if err := mergeFields(&created, fields, &created); err != nil {
			return UpdateResult{}, err
		}
		r.products[id] = created
		return UpdateResult{UpsertedID: id}, nil
	}

	var updated models.Product
	if err := mergeFields(&product, fields, &updated); err != nil {
		return UpdateResult{}, err
	}
	r.products[id] = updated
	return UpdateResult{Matched: 1, Modified: 1}, nil
}

// UpdateBySeller sets the given fields on every product owned by the seller.
func (r *MockProductRepository) UpdateBySeller(_ context.Context, sellerEmail string, fields map[string]interface{}) (UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res UpdateResult
	for id, p := range r.products {
		if p.SellerEmail != sellerEmail {
			continue
		}
		var updated models.Product
		if err := mergeFields(&p, fields, &updated); err != nil {
			return UpdateResult{}, err
		}
		r.products[id] = updated
		res.Matched++
		res.Modified++
	}
	return res, nil
}

// SetAdvertised flags the product as advertised, scoped to its owner.
func (r *MockProductRepository) SetAdvertised(_ context.Context, id, sellerEmail string) (UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok || p.SellerEmail != sellerEmail {
		return UpdateResult{}, nil
	}
	p.IsAdvertised = true
	r.products[id] = p
	return UpdateResult{Matched: 1, Modified: 1}, nil
}

// Delete removes the product with the given id.
func (r *MockProductRepository) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return 0, nil
	}
	delete(r.products, id)
	return 1, nil
}

// DeleteOwned removes the product only when its sellerEmail matches.
func (r *MockProductRepository) DeleteOwned(_ context.Context, id, sellerEmail string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok || p.SellerEmail != sellerEmail {
		return 0, nil
	}
	delete(r.products, id)
	return 1, nil
}
