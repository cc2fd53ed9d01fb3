package paymentRepo

import (
	"context"

	"quickmed/models"
)

// PaymentRepository defines data access for settled payment records.
type PaymentRepository interface {
	// UpsertByBooking writes the payment record for a booking, replacing
	// any previous one, so a retried confirmation stays idempotent.
	UpsertByBooking(ctx context.Context, p *models.Payment) error
	// GetByBooking retrieves the payment for a booking; (nil, nil) when absent.
	GetByBooking(ctx context.Context, bookingID string) (*models.Payment, error)
}
