package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user record may carry.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User represents an account in the marketplace. Email is the unique key;
// the role governs which routes the account may call.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty" validate:"omitempty,max=100"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty" validate:"omitempty,url"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty" validate:"omitempty,oneof=buyer seller admin"`
	Verified  bool               `bson:"verified" json:"verified"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
