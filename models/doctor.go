package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a practitioner profile, keyed by email. Applications are
// upserted without a role; an administrator approval sets Role to "doctor".
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Specialty string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
}
