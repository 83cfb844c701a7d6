package repositories

import (
	"context"
	"fmt"
	"sync"

	"resale-market/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User // keyed by hex id
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID.Hex()] = *user
	return nil
}

// GetByEmail returns the user with the given email.
func (r *MockUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
}

// GetByRole returns all users with the given role.
func (r *MockUserRepository) GetByRole(_ context.Context, role string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []models.User{}
	for _, u := range r.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

// UpdateFields sets the given fields on the user with the given id,
// creating the document when upsert is true and the id is unknown.
func (r *MockUserRepository) UpdateFields(_ context.Context, id string, fields map[string]interface{}, upsert bool) (UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		if !upsert {
			return UpdateResult{}, nil
		}
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return UpdateResult{}, fmt.Errorf("invalid user id %q: %w", id, err)
		}
		created := models.User{ID: oid}
		if err := mergeFields(&created, fields, &created); err != nil {
			return UpdateResult{}, err
		}
		r.users[id] = created
		return UpdateResult{UpsertedID: id}, nil
	}

	var updated models.User
	if err := mergeFields(&user, fields, &updated); err != nil {
		return UpdateResult{}, err
	}
	r.users[id] = updated
	return UpdateResult{Matched: 1, Modified: 1}, nil
}

// Delete removes the user with the given id.
func (r *MockUserRepository) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return 0, nil
	}
	delete(r.users, id)
	return 1, nil
}

// mergeFields applies a partial field set onto a document through a BSON
// round trip, the same way a $set lands on a stored document.
func mergeFields(doc interface{}, fields map[string]interface{}, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("failed to unmarshal document: %w", err)
	}
	for k, v := range fields {
		m[k] = v
	}
	merged, err := bson.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal merged document: %w", err)
	}
	if err := bson.Unmarshal(merged, out); err != nil {
		return fmt.Errorf("failed to unmarshal merged document: %w", err)
	}
	return nil
}
