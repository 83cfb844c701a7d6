package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a second-hand listing posted by a seller.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name" validate:"required,min=2,max=200"`
	SellerEmail   string             `bson:"sellerEmail" json:"sellerEmail" validate:"required,email"`
	SellerName    string             `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	Category      string             `bson:"category" json:"category" validate:"required"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	ResalePrice   float64            `bson:"resalePrice" json:"resalePrice" validate:"gte=0"`
	YearsOfUse    int                `bson:"yearsOfUse,omitempty" json:"yearsOfUse,omitempty" validate:"omitempty,gte=0"`
	Condition     string             `bson:"condition,omitempty" json:"condition,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL      string             `bson:"imageURL,omitempty" json:"imageURL,omitempty" validate:"omitempty,url"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	// Verified mirrors the owning seller's verification badge; the admin
	// role-update cascade keeps it in sync.
	Verified     bool      `bson:"verified" json:"verified"`
	IsSold       bool      `bson:"isSold" json:"isSold"`
	IsAdvertised bool      `bson:"isAdvertised" json:"isAdvertised"`
	IsReported   bool      `bson:"isReported" json:"isReported"`
	PostedAt     time.Time `bson:"postedAt,omitempty" json:"postedAt,omitempty"`
}
