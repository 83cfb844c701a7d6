package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is a browsable product grouping. The API never writes categories;
// the collection is seeded externally.
type Category struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	ImageURL string             `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
}
