package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a testimonial, one per account email (upsert-on-write).
type Review struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Rating float64            `bson:"rating,omitempty" json:"rating,omitempty"`
	Text   string             `bson:"text,omitempty" json:"text,omitempty"`
}
