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

func notFoundErr(email string) error {
	return fmt.Errorf("user with email %s: %w", email, repositories.ErrNotFound)
}

func TestUserService_Register(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewUserService(mockUsers, mockProducts, nil)
	ctx := context.Background()

	// New email is stored with the buyer default and a creation stamp
	user := &models.User{Name: "Rafi", Email: "rafi@example.com"}
	mockUsers.On("GetByEmail", mock.Anything, user.Email).Return(nil, notFoundErr(user.Email)).Once()
	mockUsers.On("Create", mock.Anything, user).Return(nil).Once()

	created, err := service.Register(ctx, user)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleBuyer, user.Role)
	assert.False(t, user.CreatedAt.IsZero())
	mockUsers.AssertExpectations(t)

	// A provided role is kept
	seller := &models.User{Name: "Mina", Email: "mina@example.com", Role: models.RoleSeller}
	mockUsers.On("GetByEmail", mock.Anything, seller.Email).Return(nil, notFoundErr(seller.Email)).Once()
	mockUsers.On("Create", mock.Anything, seller).Return(nil).Once()

	created, err = service.Register(ctx, seller)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleSeller, seller.Role)
	mockUsers.AssertExpectations(t)

	// Existing email is a no-op: no Create call, no error
	existing := &models.User{Email: "rafi@example.com"}
	mockUsers.On("GetByEmail", mock.Anything, existing.Email).
		Return(&models.User{Email: existing.Email, Role: models.RoleBuyer}, nil).Once()

	created, err = service.Register(ctx, existing)
	assert.NoError(t, err)
	assert.False(t, created)
	mockUsers.AssertExpectations(t)
	mockUsers.AssertNotCalled(t, "Create", mock.Anything, existing)
}

func TestUserService_HasRole(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewUserService(mockUsers, mockProducts, nil)
	ctx := context.Background()

	admin := &models.User{Email: "admin@example.com", Role: models.RoleAdmin}

	mockUsers.On("GetByEmail", mock.Anything, admin.Email).Return(admin, nil).Twice()
	ok, err := service.HasRole(ctx, admin.Email, models.RoleAdmin)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.HasRole(ctx, admin.Email, models.RoleSeller)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Unknown email is false, not an error
	mockUsers.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, notFoundErr("ghost@example.com")).Once()
	ok, err = service.HasRole(ctx, "ghost@example.com", models.RoleAdmin)
	assert.NoError(t, err)
	assert.False(t, ok)
	mockUsers.AssertExpectations(t)
}

func TestUserService_UpdateSeller_Cascades(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewUserService(mockUsers, mockProducts, nil)
	ctx := context.Background()

	id := "64b1f0a2c3d4e5f601234567"
	email := "mina@example.com"
	fields := map[string]interface{}{"role": "seller", "verified": true}

	// The exact field set applied to the user is cascaded to the products
	mockUsers.On("UpdateFields", mock.Anything, id, fields, true).
		Return(repositories.UpdateResult{Matched: 1, Modified: 1}, nil).Once()
	mockProducts.On("UpdateBySeller", mock.Anything, email, fields).
		Return(repositories.UpdateResult{Matched: 3, Modified: 3}, nil).Once()

	userRes, productRes, err := service.UpdateSeller(ctx, id, email, fields)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), userRes.Modified)
	assert.Equal(t, int64(3), productRes.Modified)
	mockUsers.AssertExpectations(t)
	mockProducts.AssertExpectations(t)

	// A failing user write stops the cascade
	mockUsers.On("UpdateFields", mock.Anything, id, fields, true).
		Return(repositories.UpdateResult{}, fmt.Errorf("database error")).Once()

	_, _, err = service.UpdateSeller(ctx, id, email, fields)
	assert.Error(t, err)
	mockProducts.AssertNumberOfCalls(t, "UpdateBySeller", 1)
	mockUsers.AssertExpectations(t)
}

func TestUserService_Delete(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewUserService(mockUsers, mockProducts, nil)

	mockUsers.On("Delete", mock.Anything, "64b1f0a2c3d4e5f601234567").Return(int64(1), nil).Once()
	count, err := service.Delete(context.Background(), "64b1f0a2c3d4e5f601234567")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	mockUsers.AssertExpectations(t)
}
