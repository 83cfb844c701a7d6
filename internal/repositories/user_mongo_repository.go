package repositories

import (
	"context"
	"fmt"

	"resale-market/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepository is a MongoDB implementation of UserRepository.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a new instance of MongoUserRepository.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		coll: db.Collection("users"),
	}
}

// Create inserts a new user document.
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// GetByEmail retrieves a user by their email.
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByRole retrieves all users with the given role.
func (r *MongoUserRepository) GetByRole(ctx context.Context, role string) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, fmt.Errorf("failed to find users by role %s: %w", role, err)
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users by role %s: %w", role, err)
	}
	return users, nil
}

// UpdateFields sets the given fields on the user with the given id.
func (r *MongoUserRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}, upsert bool) (UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("invalid user id %q: %w", id, err)
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
		options.Update().SetUpsert(upsert),
	)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return toUpdateResult(res), nil
}

// Delete removes the user with the given id, returning the deleted count.
func (r *MongoUserRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", id, err)
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return res.DeletedCount, nil
}

// toUpdateResult flattens the driver result into the repository shape.
func toUpdateResult(res *mongo.UpdateResult) UpdateResult {
	out := UpdateResult{
		Matched:  res.MatchedCount,
		Modified: res.ModifiedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = oid.Hex()
	}
	return out
}
