package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a bookable offering with a fixed catalogue of time slots.
// Services are configured by administrators and treated as immutable by
// the booking path; Name is the key bookings reference.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"` // full list of bookable time-of-day values, in display order
}

// ServiceAvailability is the resolver output for one service on one date.
// Slots holds only the slots still free, preserving catalogue order.
type ServiceAvailability struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"`
	Slots []string `json:"slots"`
}
