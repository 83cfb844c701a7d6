package repositories

import (
	"context"
	"fmt"
	"regexp"

	"resale-market/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		coll: db.Collection("products"),
	}
}

// Create inserts a new product document.
func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	res, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

// FindByCategory returns unsold products whose category contains the given
// substring. The substring is quote-escaped so callers cannot inject regex
// syntax into the filter.
func (r *MongoProductRepository) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.M{
		"category": primitive.Regex{Pattern: regexp.QuoteMeta(category)},
		"isSold":   false,
	}
	return r.find(ctx, filter)
}

// FindBySeller returns all products owned by the given seller email.
func (r *MongoProductRepository) FindBySeller(ctx context.Context, sellerEmail string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"sellerEmail": sellerEmail})
}

// FindReported returns all products flagged as reported.
func (r *MongoProductRepository) FindReported(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{"isReported": true})
}

// FindAdvertised returns all products flagged as advertised.
func (r *MongoProductRepository) FindAdvertised(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{"isAdvertised": true})
}

func (r *MongoProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// UpdateFields sets the given fields on the product with the given id.
func (r *MongoProductRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}, upsert bool) (UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("invalid product id %q: %w", id, err)
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.Update().SetUpsert(upsert),
	)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return toUpdateResult(res), nil
}

// UpdateBySeller sets the given fields on every product owned by the seller.
func (r *MongoProductRepository) UpdateBySeller(ctx context.Context, sellerEmail string, fields map[string]interface{}) (UpdateResult, error) {
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"sellerEmail": sellerEmail},
		bson.M{"$set": fields},
	)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to update products of seller %s: %w", sellerEmail, err)
	}
	return toUpdateResult(res), nil
}

// SetAdvertised flags the product as advertised, scoped to its owner.
func (r *MongoProductRepository) SetAdvertised(ctx context.Context, id, sellerEmail string) (UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("invalid product id %q: %w", id, err)
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "sellerEmail": sellerEmail},
		bson.M{"$set": bson.M{"isAdvertised": true}},
	)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to advertise product %s: %w", id, err)
	}
	return toUpdateResult(res), nil
}

// Delete removes the product with the given id, returning the deleted count.
func (r *MongoProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q: %w", id, err)
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return res.DeletedCount, nil
}

// DeleteOwned removes the product only when its sellerEmail matches.
func (r *MongoProductRepository) DeleteOwned(ctx context.Context, id, sellerEmail string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q: %w", id, err)
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "sellerEmail": sellerEmail})
	if err != nil {
		return 0, fmt.Errorf("failed to delete product %s of seller %s: %w", id, sellerEmail, err)
	}
	return res.DeletedCount, nil
}
