package models

import "time"

// Payment methods recorded by the confirmation endpoints.
const (
	PaymentMethodCard   = "card"
	PaymentMethodCrypto = "crypto"
)

// Payment records a settled transaction for a booking. Keyed by BookingID
// so a retried confirmation overwrites rather than duplicates.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Amount        float64   `bson:"amount,omitempty" json:"amount,omitempty"`
	Method        string    `bson:"method" json:"method"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// PaymentConfirmation is the payload of the payment confirmation PATCH.
// The card path sends "transactionId", the crypto path "transactionID";
// JSON field matching is case-insensitive so one field covers both.
type PaymentConfirmation struct {
	TransactionID string  `json:"transactionId"`
	Email         string  `json:"email"`
	Amount        float64 `json:"amount"`
}
