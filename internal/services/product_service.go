package services

import (
	"context"
	"log"
	"time"

	"resale-market/internal/models"
	"resale-market/internal/repositories"
	"resale-market/pkg/rabbitmq"
)

// ProductService handles business logic related to product listings.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. The RabbitMQ client may be
// nil; events are then skipped.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// Create stores a new listing and announces it on the event queue.
// Publishing is best effort and never fails the request.
func (s *ProductService) Create(ctx context.Context, product *models.Product) error {
	if product.PostedAt.IsZero() {
		product.PostedAt = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return err
	}

	if s.mqClient != nil {
		payload := map[string]interface{}{
			"productId":   product.ID.Hex(),
			"name":        product.Name,
			"sellerEmail": product.SellerEmail,
			"category":    product.Category,
		}
		if err := s.mqClient.PublishProductListed(payload); err != nil {
			log.Printf("Failed to publish listing event for product %s: %v", product.ID.Hex(), err)
		}
	}
	return nil
}

// GetBySeller returns all listings owned by the seller email.
func (s *ProductService) GetBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error) {
	return s.repo.FindBySeller(ctx, sellerEmail)
}

// GetReported returns all listings flagged by buyers.
func (s *ProductService) GetReported(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindReported(ctx)
}

// GetAdvertised returns all listings the sellers paid to advertise.
func (s *ProductService) GetAdvertised(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAdvertised(ctx)
}

// UpdateFields applies an arbitrary field set to the listing with the given
// id. A missing id creates a new document (upsert), preserving the original
// update semantics.
func (s *ProductService) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (repositories.UpdateResult, error) {
	return s.repo.UpdateFields(ctx, id, fields, true)
}

// Advertise flags the listing as advertised, scoped to its owner. A
// mismatched owner matches nothing.
func (s *ProductService) Advertise(ctx context.Context, id, sellerEmail string) (repositories.UpdateResult, error) {
	return s.repo.SetAdvertised(ctx, id, sellerEmail)
}

// Delete removes the listing with the given id, returning the deleted count.
func (s *ProductService) Delete(ctx context.Context, id string) (int64, error) {
	return s.repo.Delete(ctx, id)
}

// DeleteOwned removes the listing only when sellerEmail owns it. Deleting
// another seller's listing yields a zero deleted count, not an error.
func (s *ProductService) DeleteOwned(ctx context.Context, id, sellerEmail string) (int64, error) {
	return s.repo.DeleteOwned(ctx, id, sellerEmail)
}
