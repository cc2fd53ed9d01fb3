package models

import "time"

// Booking status values. Transitions only move forward:
// pending -> {accepted, ongoing} -> completed.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Booking is one admitted appointment request.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	Service         string    `bson:"service" json:"service"` // references Service.Name
	Email           string    `bson:"email" json:"email"`
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate"` // "YYYY-MM-DD"
	Slot            string    `bson:"slot" json:"slot"`                       // one of the service's catalogue slots
	PatientName     string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Status          string    `bson:"status" json:"status"`
	TransactionID   string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the admission payload.
type BookingRequest struct {
	Service         string `json:"service"`
	Email           string `json:"email"`
	AppointmentDate string `json:"appointmentDate"`
	Slot            string `json:"slot"`
	PatientName     string `json:"patientName"`
	Phone           string `json:"phone"`
}
