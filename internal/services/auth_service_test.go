package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"resale-market/internal/models"
	"resale-market/internal/repositories"
	"resale-market/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByRole(ctx context.Context, role string) ([]models.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}, upsert bool) (repositories.UpdateResult, error) {
	args := m.Called(ctx, id, fields, upsert)
	return args.Get(0).(repositories.UpdateResult), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthService_IssueToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)
	ctx := context.Background()

	user := &models.User{Email: "seller@example.com", Role: models.RoleSeller}

	// Known email gets a token carrying the email claim
	mockRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil).Once()
	tokenString, err := authService.IssueToken(ctx, user.Email)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	mockRepo.AssertExpectations(t)

	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.Email, claims["email"])

	// Expiry sits ten hours out
	exp, err := claims.GetExpirationTime()
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(10*time.Hour), exp.Time, time.Minute)

	// Unknown email is refused
	mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, fmt.Errorf("user with email ghost@example.com: %w", repositories.ErrNotFound)).Once()
	_, err = authService.IssueToken(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, services.ErrUnknownUser)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Valid token round trip
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "buyer@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	email, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "buyer@example.com", email)

	// Garbage token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Wrong secret
	wrongSecret, _ := token.SignedString([]byte("other_secret"))
	_, err = authService.ValidateToken(wrongSecret)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Expired token
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "buyer@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expired.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Token without an email claim
	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	anonymousTokenString, _ := anonymous.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(anonymousTokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}
