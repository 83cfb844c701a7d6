package services_test

import (
	"context"
	"fmt"
	"testing"

	"resale-market/internal/models"
	"resale-market/internal/repositories"
	"resale-market/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error) {
	args := m.Called(ctx, sellerEmail)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindReported(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindAdvertised(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}, upsert bool) (repositories.UpdateResult, error) {
	args := m.Called(ctx, id, fields, upsert)
	return args.Get(0).(repositories.UpdateResult), args.Error(1)
}

func (m *MockProductRepository) UpdateBySeller(ctx context.Context, sellerEmail string, fields map[string]interface{}) (repositories.UpdateResult, error) {
	args := m.Called(ctx, sellerEmail, fields)
	return args.Get(0).(repositories.UpdateResult), args.Error(1)
}

func (m *MockProductRepository) SetAdvertised(ctx context.Context, id, sellerEmail string) (repositories.UpdateResult, error) {
	args := m.Called(ctx, id, sellerEmail)
	return args.Get(0).(repositories.UpdateResult), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) DeleteOwned(ctx context.Context, id, sellerEmail string) (int64, error) {
	args := m.Called(ctx, id, sellerEmail)
	return args.Get(0).(int64), args.Error(1)
}

func TestProductService_Create(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	product := &models.Product{
		Name:        "Walton Primo RX7",
		SellerEmail: "mina@example.com",
		Category:    "phones",
		ResalePrice: 4500,
	}

	mockRepo.On("Create", mock.Anything, product).Return(nil).Once()
	err := service.Create(context.Background(), product)
	assert.NoError(t, err)
	assert.False(t, product.PostedAt.IsZero())
	mockRepo.AssertExpectations(t)

	// Repository failure propagates
	mockRepo.On("Create", mock.Anything, product).Return(fmt.Errorf("database error")).Once()
	err = service.Create(context.Background(), product)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateFields_Upserts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	fields := map[string]interface{}{"isReported": true}

	// Upsert stays enabled on the generic update path
	mockRepo.On("UpdateFields", mock.Anything, "64b1f0a2c3d4e5f601234567", fields, true).
		Return(repositories.UpdateResult{Matched: 1, Modified: 1}, nil).Once()

	res, err := service.UpdateFields(context.Background(), "64b1f0a2c3d4e5f601234567", fields)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.Modified)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteOwned(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	// Owner mismatch is a zero count, not an error
	mockRepo.On("DeleteOwned", mock.Anything, "64b1f0a2c3d4e5f601234567", "other@example.com").
		Return(int64(0), nil).Once()

	count, err := service.DeleteOwned(context.Background(), "64b1f0a2c3d4e5f601234567", "other@example.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
	mockRepo.AssertExpectations(t)
}

func TestProductService_Advertise(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("SetAdvertised", mock.Anything, "64b1f0a2c3d4e5f601234567", "mina@example.com").
		Return(repositories.UpdateResult{Matched: 1, Modified: 1}, nil).Once()

	res, err := service.Advertise(context.Background(), "64b1f0a2c3d4e5f601234567", "mina@example.com")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.Matched)
	mockRepo.AssertExpectations(t)
}
