package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"resale-market/internal/models"
	"resale-market/internal/repositories"
	"resale-market/pkg/rabbitmq"
)

// UserService handles business logic for user accounts and roles.
type UserService struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
}

// NewUserService creates a new UserService. The RabbitMQ client may be nil;
// events are then skipped.
func NewUserService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *UserService {
	return &UserService{
		userRepo:    userRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// Register stores the user unless the email is already taken. It reports
// whether a record was created; an existing email is a no-op, never an
// error, and the stored record is left untouched. An absent role defaults
// to buyer.
func (s *UserService) Register(ctx context.Context, user *models.User) (bool, error) {
	_, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}

	if user.Role == "" {
		user.Role = models.RoleBuyer
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}

// HasRole reports whether the user with the given email holds the role.
// An unknown email is simply false, matching the empty-result convention.
func (s *UserService) HasRole(ctx context.Context, email, role string) (bool, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == role, nil
}

// ListByRole returns all users holding the given role.
func (s *UserService) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.userRepo.GetByRole(ctx, role)
}

// UpdateSeller applies the field set to the user with the given id (upsert,
// preserving the original update semantics) and cascades the same field set
// to every product owned by sellerEmail. The two writes are independent;
// there is no transaction across collections.
func (s *UserService) UpdateSeller(ctx context.Context, id, sellerEmail string, fields map[string]interface{}) (repositories.UpdateResult, repositories.UpdateResult, error) {
	userRes, err := s.userRepo.UpdateFields(ctx, id, fields, true)
	if err != nil {
		return repositories.UpdateResult{}, repositories.UpdateResult{}, err
	}

	productRes, err := s.productRepo.UpdateBySeller(ctx, sellerEmail, fields)
	if err != nil {
		return userRes, repositories.UpdateResult{}, err
	}

	if role, ok := fields["role"].(string); ok && role == models.RoleSeller && s.mqClient != nil {
		payload := map[string]interface{}{
			"userId": id,
			"email":  sellerEmail,
		}
		if err := s.mqClient.PublishSellerPromoted(payload); err != nil {
			log.Printf("Failed to publish seller promotion for %s: %v", sellerEmail, err)
		}
	}

	return userRes, productRes, nil
}

// Delete removes the user with the given id, returning the deleted count.
func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
	return s.userRepo.Delete(ctx, id)
}
